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

// Package mongo implements database interfaces using MongoDB.
package mongo

import (
	"context"
	"errors"
	"fmt"
	gotime "time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/pkg/resume"
	"github.com/folio-team/folio/server/backend/database"
	"github.com/folio-team/folio/server/logging"
)

// DefaultCacheSize is the number of documents kept in the read cache when
// the configuration does not say otherwise.
const DefaultCacheSize = 1000

// Client is a client that connects to Mongo DB and reads or saves Folio data.
type Client struct {
	config *Config
	client *mongo.Client

	docCache *lru.Cache[types.ID, *resume.Document]
}

// Dial creates an instance of Client and dials the given MongoDB.
func Dial(conf *Config) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), conf.ParseConnectionTimeout())
	defer cancel()

	clientOptions := options.Client().ApplyURI(conf.ConnectionURI)

	if conf.MonitoringEnabled {
		threshold, err := gotime.ParseDuration(conf.MonitoringSlowQueryThreshold)
		if err != nil {
			return nil, fmt.Errorf("parse slow query threshold: %w", err)
		}

		monitor := newCommandMonitor(logging.New("mongo"), threshold)
		clientOptions.SetMonitor(monitor.CommandMonitor())
	}

	client, err := mongo.Connect(clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	ctxPing, cancelPing := context.WithTimeout(ctx, conf.ParsePingTimeout())
	defer cancelPing()

	if err := client.Ping(ctxPing, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	if err := ensureIndexes(ctx, client.Database(conf.FolioDatabase)); err != nil {
		return nil, err
	}

	size := conf.CacheSize
	if size == 0 {
		size = DefaultCacheSize
	}
	docCache, err := lru.New[types.ID, *resume.Document](size)
	if err != nil {
		return nil, fmt.Errorf("initialize document cache: %w", err)
	}

	logging.DefaultLogger().Infof("MongoDB connected, URI: %s, DB: %s", conf.ConnectionURI, conf.FolioDatabase)

	return &Client{
		config:   conf,
		client:   client,
		docCache: docCache,
	}, nil
}

// Close all resources of this client.
func (c *Client) Close() error {
	if err := c.client.Disconnect(context.Background()); err != nil {
		return fmt.Errorf("close mongo client: %w", err)
	}

	c.docCache.Purge()

	return nil
}

// ListDocuments returns all documents in listing order.
func (c *Client) ListDocuments(ctx context.Context) ([]*resume.Document, error) {
	cursor, err := c.collection(ColDocuments).Find(
		ctx,
		bson.M{},
		options.Find().SetSort(bson.D{
			{Key: "created_at", Value: 1},
			{Key: "_id", Value: 1},
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	var docs []*resume.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("fetch documents: %w", err)
	}

	return docs, nil
}

// FindDocumentByID finds the document of the given ID.
func (c *Client) FindDocumentByID(ctx context.Context, id types.ID) (*resume.Document, error) {
	if doc, ok := c.docCache.Get(id); ok {
		return doc.DeepCopy(), nil
	}

	result := c.collection(ColDocuments).FindOne(ctx, bson.M{"_id": id})
	if errors.Is(result.Err(), mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", id, database.ErrDocumentNotFound)
	}
	if result.Err() != nil {
		return nil, fmt.Errorf("find document %s: %w", id, result.Err())
	}

	doc := &resume.Document{}
	if err := result.Decode(doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	c.docCache.Add(id, doc)

	return doc.DeepCopy(), nil
}

// UpsertDocument replaces the stored document of the same ID, or inserts it.
func (c *Client) UpsertDocument(ctx context.Context, doc *resume.Document) error {
	if doc == nil || doc.ID == "" {
		return fmt.Errorf("upsert document: %w", database.ErrInvalidDocument)
	}

	c.docCache.Remove(doc.ID)
	if _, err := c.collection(ColDocuments).ReplaceOne(
		ctx,
		bson.M{"_id": doc.ID},
		doc,
		options.Replace().SetUpsert(true),
	); err != nil {
		return fmt.Errorf("upsert document %s: %w", doc.ID, err)
	}

	return nil
}

// RemoveDocument removes the document of the given ID if it exists.
func (c *Client) RemoveDocument(ctx context.Context, id types.ID) error {
	c.docCache.Remove(id)
	if _, err := c.collection(ColDocuments).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("remove document %s: %w", id, err)
	}

	return nil
}

func (c *Client) collection(
	name string,
	opts ...options.Lister[options.CollectionOptions],
) *mongo.Collection {
	return c.client.
		Database(c.config.FolioDatabase).
		Collection(name, opts...)
}
