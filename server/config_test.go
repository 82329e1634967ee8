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

package server_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-team/folio/server"
	"github.com/folio-team/folio/server/backend/database/redis"
	"github.com/folio-team/folio/server/rpc"
)

func TestNewConfigFromFile(t *testing.T) {
	t.Run("fail read config file test", func(t *testing.T) {
		conf := server.NewConfig()
		assert.Equal(t, conf.RPCAddr(), "localhost:"+strconv.Itoa(server.DefaultRPCPort))
		_, err := server.NewConfigFromFile("nowhere.yml")
		assert.Error(t, err)
		assert.Equal(t, conf.RPC.Port, server.DefaultRPCPort)
		assert.Equal(t, conf.RPC.CertFile, "")
		assert.Equal(t, conf.RPC.KeyFile, "")

		assert.Equal(t, conf.Backend.SurfaceCacheSize, server.DefaultSurfaceCacheSize)
		assert.Equal(t, conf.Backend.ExportScale, server.DefaultExportScale)
		assert.NoError(t, conf.Validate())
	})

	t.Run("read config file test", func(t *testing.T) {
		filePath := "config.sample.yml"
		conf, err := server.NewConfigFromFile(filePath)
		require.NoError(t, err)

		assert.Equal(t, conf.RPC.Port, server.DefaultRPCPort)
		assert.Equal(t, conf.RPC.CertFile, "")
		assert.Equal(t, conf.RPC.KeyFile, "")
		assert.Equal(t, conf.RPC.MaxRequestBytes, uint64(server.DefaultRPCMaxRequestSize))
		assert.Equal(t, conf.RPC.ParseRequestTimeout(), server.DefaultRPCRequestTimeout)

		assert.Equal(t, conf.Profiling.Port, server.DefaultProfilingPort)
		assert.Equal(t, conf.Profiling.MetricsPath, "/metrics")
		assert.False(t, conf.Profiling.EnablePprof)

		connTimeout, err := time.ParseDuration(conf.Mongo.ConnectionTimeout)
		assert.NoError(t, err)
		assert.Equal(t, connTimeout, server.DefaultMongoConnectionTimeout)
		assert.Equal(t, conf.Mongo.ConnectionURI, server.DefaultMongoConnectionURI)
		assert.Equal(t, conf.Mongo.FolioDatabase, server.DefaultMongoFolioDatabase)

		pingTimeout, err := time.ParseDuration(conf.Mongo.PingTimeout)
		assert.NoError(t, err)
		assert.Equal(t, pingTimeout, server.DefaultMongoPingTimeout)

		assert.Nil(t, conf.Redis)
		assert.Equal(t, conf.Backend.IDGenerator, server.DefaultIDGenerator)
		assert.NoError(t, conf.Validate())
	})

	t.Run("default values of partial config test", func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "folio.yml")
		require.NoError(t, os.WriteFile(filePath, []byte("Redis:\n  DB: 2\n"), 0o600))

		conf, err := server.NewConfigFromFile(filePath)
		require.NoError(t, err)

		assert.Equal(t, server.DefaultRPCPort, conf.RPC.Port)
		assert.Equal(t, server.DefaultSurfaceCacheSize, conf.Backend.SurfaceCacheSize)
		assert.Nil(t, conf.Mongo)
		require.NotNil(t, conf.Redis)
		assert.Equal(t, server.DefaultRedisAddr, conf.Redis.Addr)
		assert.Equal(t, redis.DefaultKeyPrefix, conf.Redis.KeyPrefix)
		assert.Equal(t, 2, conf.Redis.DB)
		assert.NoError(t, conf.Validate())
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("multiple databases test", func(t *testing.T) {
		conf, err := server.NewConfigFromFile("config.sample.yml")
		require.NoError(t, err)

		conf.Redis = &redis.Config{Addr: server.DefaultRedisAddr, DialTimeout: "1s"}
		assert.ErrorIs(t, conf.Validate(), server.ErrMultipleDatabases)
	})

	t.Run("invalid rpc test", func(t *testing.T) {
		conf := server.NewConfig()
		conf.RPC.Port = 0
		assert.ErrorIs(t, conf.Validate(), rpc.ErrInvalidRPCPort)
	})
}
