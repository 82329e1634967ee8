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

package server

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/folio-team/folio/server/backend"
	"github.com/folio-team/folio/server/backend/database/mongo"
	"github.com/folio-team/folio/server/backend/database/redis"
	"github.com/folio-team/folio/server/profiling"
	"github.com/folio-team/folio/server/rpc"
	"github.com/folio-team/folio/server/surfaces"
)

// ErrMultipleDatabases occurs when more than one database is configured.
var ErrMultipleDatabases = errors.New("only one of Mongo and Redis can be configured")

// Below are the values of the default values of Folio config.
const (
	DefaultRPCPort           = 11101
	DefaultRPCMaxRequestSize = 4 * 1024 * 1024
	DefaultRPCRequestTimeout = 30 * time.Second

	DefaultProfilingPort = 11102

	DefaultSurfaceCacheSize = surfaces.DefaultSize
	DefaultExportScale      = 2.0
	DefaultIDGenerator      = backend.IDGeneratorUUID

	DefaultMongoConnectionURI                = "mongodb://localhost:27017"
	DefaultMongoConnectionTimeout            = 5 * time.Second
	DefaultMongoPingTimeout                  = 5 * time.Second
	DefaultMongoFolioDatabase                = "folio-meta"
	DefaultMongoCacheSize                    = mongo.DefaultCacheSize
	DefaultMongoMonitoringSlowQueryThreshold = 100 * time.Millisecond

	DefaultRedisAddr        = "localhost:6379"
	DefaultRedisKeyPrefix   = redis.DefaultKeyPrefix
	DefaultRedisDialTimeout = 5 * time.Second
)

// Config is the configuration for creating a Folio instance.
type Config struct {
	RPC       *rpc.Config       `yaml:"RPC"`
	Profiling *profiling.Config `yaml:"Profiling"`
	Backend   *backend.Config   `yaml:"Backend"`
	Mongo     *mongo.Config     `yaml:"Mongo"`
	Redis     *redis.Config     `yaml:"Redis"`
}

// NewConfig returns a Config struct that contains reasonable defaults
// for most of the configurations.
func NewConfig() *Config {
	return newConfig(DefaultRPCPort, DefaultProfilingPort)
}

// NewConfigFromFile returns a Config struct for the given conf file.
func NewConfigFromFile(path string) (*Config, error) {
	conf := &Config{}
	bytes, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err = yaml.Unmarshal(bytes, conf); err != nil {
		return nil, fmt.Errorf("unmarshal config file: %w", err)
	}

	conf.ensureDefaultValue()
	return conf, nil
}

// RPCAddr returns the RPC address.
func (c *Config) RPCAddr() string {
	return fmt.Sprintf("localhost:%d", c.RPC.Port)
}

// Validate returns an error if the provided Config is invalidated.
func (c *Config) Validate() error {
	if err := c.RPC.Validate(); err != nil {
		return err
	}

	if c.Profiling != nil {
		if err := c.Profiling.Validate(); err != nil {
			return err
		}
	}

	if err := c.Backend.Validate(); err != nil {
		return err
	}

	if c.Mongo != nil && c.Redis != nil {
		return ErrMultipleDatabases
	}

	if c.Mongo != nil {
		if err := c.Mongo.Validate(); err != nil {
			return err
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// ensureDefaultValue sets the value of the option to which the default value
// should be applied when the user does not input it.
func (c *Config) ensureDefaultValue() {
	if c.RPC == nil {
		c.RPC = &rpc.Config{}
	}
	if c.RPC.Port == 0 {
		c.RPC.Port = DefaultRPCPort
	}
	if c.RPC.MaxRequestBytes == 0 {
		c.RPC.MaxRequestBytes = DefaultRPCMaxRequestSize
	}
	if c.RPC.RequestTimeout == "" {
		c.RPC.RequestTimeout = DefaultRPCRequestTimeout.String()
	}

	if c.Profiling != nil && c.Profiling.Port == 0 {
		c.Profiling.Port = DefaultProfilingPort
	}

	if c.Backend == nil {
		c.Backend = &backend.Config{}
	}
	if c.Backend.SurfaceCacheSize == 0 {
		c.Backend.SurfaceCacheSize = DefaultSurfaceCacheSize
	}
	if c.Backend.ExportScale == 0 {
		c.Backend.ExportScale = DefaultExportScale
	}
	if c.Backend.IDGenerator == "" {
		c.Backend.IDGenerator = DefaultIDGenerator
	}

	if c.Mongo != nil {
		if c.Mongo.ConnectionURI == "" {
			c.Mongo.ConnectionURI = DefaultMongoConnectionURI
		}

		if c.Mongo.ConnectionTimeout == "" {
			c.Mongo.ConnectionTimeout = DefaultMongoConnectionTimeout.String()
		}

		if c.Mongo.FolioDatabase == "" {
			c.Mongo.FolioDatabase = DefaultMongoFolioDatabase
		}

		if c.Mongo.PingTimeout == "" {
			c.Mongo.PingTimeout = DefaultMongoPingTimeout.String()
		}

		if c.Mongo.CacheSize == 0 {
			c.Mongo.CacheSize = DefaultMongoCacheSize
		}

		if c.Mongo.MonitoringEnabled {
			if c.Mongo.MonitoringSlowQueryThreshold == "" {
				c.Mongo.MonitoringSlowQueryThreshold = DefaultMongoMonitoringSlowQueryThreshold.String()
			}
		}
	}

	if c.Redis != nil {
		if c.Redis.Addr == "" {
			c.Redis.Addr = DefaultRedisAddr
		}
		if c.Redis.KeyPrefix == "" {
			c.Redis.KeyPrefix = DefaultRedisKeyPrefix
		}
		if c.Redis.DialTimeout == "" {
			c.Redis.DialTimeout = DefaultRedisDialTimeout.String()
		}
	}
}

func newConfig(port int, profilingPort int) *Config {
	return &Config{
		RPC: &rpc.Config{
			Port:            port,
			MaxRequestBytes: DefaultRPCMaxRequestSize,
			RequestTimeout:  DefaultRPCRequestTimeout.String(),
		},
		Profiling: &profiling.Config{
			Port: profilingPort,
		},
		Backend: &backend.Config{
			SurfaceCacheSize: DefaultSurfaceCacheSize,
			ExportScale:      DefaultExportScale,
			IDGenerator:      DefaultIDGenerator,
		},
	}
}
