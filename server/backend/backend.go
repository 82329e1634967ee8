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

// Package backend provides the backend implementation of Folio.
// This package is responsible for managing the database and other
// resources required to run Folio.
package backend

import (
	"errors"
	"time"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/pkg/editor"
	"github.com/folio-team/folio/pkg/export"
	"github.com/folio-team/folio/pkg/locker"
	"github.com/folio-team/folio/server/backend/database"
	memdb "github.com/folio-team/folio/server/backend/database/memory"
	"github.com/folio-team/folio/server/backend/database/mongo"
	"github.com/folio-team/folio/server/backend/database/redis"
	"github.com/folio-team/folio/server/logging"
	"github.com/folio-team/folio/server/profiling/prometheus"
	"github.com/folio-team/folio/server/surfaces"
)

// Backend manages Folio's backend such as Database, the editing engine and
// the registry of rendered surfaces.
type Backend struct {
	Config *Config

	// DB is the database instance.
	DB database.Database
	// Editor applies operations to documents.
	Editor *editor.Editor
	// Surfaces holds the latest rendered layout of each document.
	Surfaces *surfaces.Registry
	// DocLocker serializes the read-modify-write cycles of a document.
	DocLocker *locker.Locker[types.ID]
	// Rasterizer draws layouts for export.
	Rasterizer export.Rasterizer

	// Metrics is used to expose metrics.
	Metrics *prometheus.Metrics

	// IDs generates identifiers of new documents, entries and items.
	IDs types.IDGenerator
	// Clock returns the current time.
	Clock func() time.Time
}

// Option configures a Backend.
type Option func(*Backend)

// WithIDGenerator sets the identifier generator, overriding the configured
// one.
func WithIDGenerator(ids types.IDGenerator) Option {
	return func(b *Backend) { b.IDs = ids }
}

// WithClock sets the clock.
func WithClock(clock func() time.Time) Option {
	return func(b *Backend) { b.Clock = clock }
}

// WithDatabase sets the database, overriding the configured ones.
func WithDatabase(db database.Database) Option {
	return func(b *Backend) { b.DB = db }
}

// New creates a new instance of Backend. The database is MongoDB when
// mongoConf is given, otherwise Redis when redisConf is given, otherwise an
// in-memory database.
func New(
	conf *Config,
	mongoConf *mongo.Config,
	redisConf *redis.Config,
	metrics *prometheus.Metrics,
	opts ...Option,
) (*Backend, error) {
	b := &Backend{
		Config:  conf,
		Metrics: metrics,
		Clock:   time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}

	// 01. Choose the identifier generator.
	if b.IDs == nil {
		if conf.IDGenerator == IDGeneratorXID {
			b.IDs = types.NewXIDGenerator()
		} else {
			b.IDs = types.NewUUIDGenerator()
		}
	}

	// 02. Create the editing engine, the surface registry, the document locker
	// and the rasterizer.
	b.Editor = editor.New(b.IDs, b.Clock)

	registry, err := surfaces.New(conf.SurfaceCacheSize)
	if err != nil {
		return nil, err
	}
	b.Surfaces = registry
	b.DocLocker = locker.New[types.ID]()

	rasterizer, err := export.NewRasterizer()
	if err != nil {
		return nil, err
	}
	b.Rasterizer = rasterizer

	// 03. Create the database instance.
	dbInfo := "memory"
	switch {
	case b.DB != nil:
		dbInfo = "custom"
	case mongoConf != nil:
		if b.DB, err = mongo.Dial(mongoConf); err != nil {
			return nil, err
		}
		dbInfo = mongoConf.ConnectionURI
	case redisConf != nil:
		if b.DB, err = redis.Dial(redisConf); err != nil {
			return nil, err
		}
		dbInfo = "redis://" + redisConf.Addr
	default:
		if b.DB, err = memdb.New(); err != nil {
			return nil, err
		}
	}

	logging.DefaultLogger().Infof("backend created: db: %s", dbInfo)

	return b, nil
}

// ExportScale returns the configured capture magnification.
func (b *Backend) ExportScale() float64 {
	if b.Config.ExportScale == 0 {
		return export.DefaultScale
	}
	return b.Config.ExportScale
}

// Shutdown closes all resources of this instance.
func (b *Backend) Shutdown() error {
	var errs []error

	if err := b.DB.Close(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	logging.DefaultLogger().Infof("backend stopped")
	return nil
}
