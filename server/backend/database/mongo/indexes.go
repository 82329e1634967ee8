/*
 * Copyright 2026 The Folio Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	// ColDocuments represents the documents collection in the database.
	ColDocuments = "documents"
)

// listingIndex serves ListDocuments, which sorts by creation time and then
// by ID.
var listingIndex = mongo.IndexModel{
	Keys: bson.D{
		{Key: "created_at", Value: int32(1)},
		{Key: "_id", Value: int32(1)},
	},
	Options: options.Index().SetName("listing"),
}

// indexes lists the indexes of each collection. Creating an index that
// already exists with the same keys and name is a no-op, so this runs on
// every start.
var indexes = map[string][]mongo.IndexModel{
	ColDocuments: {listingIndex},
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes of %s: %w", coll, err)
		}
	}
	return nil
}
