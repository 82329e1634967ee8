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

// Package redis implements database interfaces using Redis. Each document is
// a JSON value; a sorted set scored by creation time keeps the listing order.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/pkg/resume"
	"github.com/folio-team/folio/server/backend/database"
	"github.com/folio-team/folio/server/logging"
)

// Client is a client that connects to Redis and reads or saves Folio data.
type Client struct {
	config *Config
	client *redis.Client
	prefix string
}

// Dial creates an instance of Client and pings the given Redis.
func Dial(conf *Config) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        conf.Addr,
		Password:    conf.Password,
		DB:          conf.DB,
		DialTimeout: conf.ParseDialTimeout(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), conf.ParseDialTimeout())
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	prefix := conf.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	logging.DefaultLogger().Infof("Redis connected, Addr: %s, DB: %d", conf.Addr, conf.DB)

	return &Client{
		config: conf,
		client: client,
		prefix: prefix,
	}, nil
}

// Close all resources of this client.
func (c *Client) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("close redis client: %w", err)
	}
	return nil
}

// ListDocuments returns all documents in listing order. Members of the index
// with equal scores are ordered by ID.
func (c *Client) ListDocuments(ctx context.Context) ([]*resume.Document, error) {
	ids, err := c.client.ZRange(ctx, c.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, c.docKey(types.ID(id)))
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch documents: %w", err)
	}

	docs := make([]*resume.Document, 0, len(values))
	for i, value := range values {
		// Removed between the two reads.
		if value == nil {
			continue
		}

		raw, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("fetch document %s: unexpected %T", ids[i], value)
		}
		doc, err := decode([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("decode document %s: %w", ids[i], err)
		}
		docs = append(docs, doc)
	}

	// Scores have millisecond precision, creation times do not.
	database.SortDocuments(docs)

	return docs, nil
}

// FindDocumentByID finds the document of the given ID.
func (c *Client) FindDocumentByID(ctx context.Context, id types.ID) (*resume.Document, error) {
	raw, err := c.client.Get(ctx, c.docKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%s: %w", id, database.ErrDocumentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find document %s: %w", id, err)
	}

	doc, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	return doc, nil
}

// UpsertDocument stores the document and its position in the listing order
// in a single transaction.
func (c *Client) UpsertDocument(ctx context.Context, doc *resume.Document) error {
	if doc == nil || doc.ID == "" {
		return fmt.Errorf("upsert document: %w", database.ErrInvalidDocument)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", doc.ID, err)
	}

	if _, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, c.docKey(doc.ID), raw, 0)
		pipe.ZAdd(ctx, c.indexKey(), redis.Z{
			Score:  float64(doc.CreatedAt.UnixMilli()),
			Member: doc.ID.String(),
		})
		return nil
	}); err != nil {
		return fmt.Errorf("upsert document %s: %w", doc.ID, err)
	}

	return nil
}

// RemoveDocument removes the document of the given ID if it exists.
func (c *Client) RemoveDocument(ctx context.Context, id types.ID) error {
	if _, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, c.docKey(id))
		pipe.ZRem(ctx, c.indexKey(), id.String())
		return nil
	}); err != nil {
		return fmt.Errorf("remove document %s: %w", id, err)
	}

	return nil
}

func (c *Client) docKey(id types.ID) string {
	return c.prefix + "documents:" + id.String()
}

func (c *Client) indexKey() string {
	return c.prefix + "documents"
}

func decode(raw []byte) (*resume.Document, error) {
	doc := &resume.Document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
