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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/folio-team/folio/server"
	"github.com/folio-team/folio/server/backend/database/mongo"
	"github.com/folio-team/folio/server/backend/database/redis"
	"github.com/folio-team/folio/server/logging"
	"github.com/folio-team/folio/server/profiling"
)

var (
	gracefulTimeout = 10 * time.Second
)

var (
	flagConfPath  string
	flagLogLevel  string
	flagLogFormat string

	rpcRequestTimeout time.Duration

	mongoConnectionURI     string
	mongoConnectionTimeout time.Duration
	mongoFolioDatabase     string
	mongoPingTimeout       time.Duration

	redisAddr        string
	redisPassword    string
	redisDB          int
	redisDialTimeout time.Duration

	conf = server.NewConfig()
)

func newServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server [options]",
		Short: "Start Folio server",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf.RPC.RequestTimeout = rpcRequestTimeout.String()

			if mongoConnectionURI != "" {
				conf.Mongo = &mongo.Config{
					ConnectionURI:     mongoConnectionURI,
					ConnectionTimeout: mongoConnectionTimeout.String(),
					FolioDatabase:     mongoFolioDatabase,
					PingTimeout:       mongoPingTimeout.String(),
					CacheSize:         server.DefaultMongoCacheSize,
				}
			}

			if redisAddr != "" {
				conf.Redis = &redis.Config{
					Addr:        redisAddr,
					Password:    redisPassword,
					DB:          redisDB,
					KeyPrefix:   server.DefaultRedisKeyPrefix,
					DialTimeout: redisDialTimeout.String(),
				}
			}

			// If config file is given, command-line arguments will be overwritten.
			if flagConfPath != "" {
				parsed, err := server.NewConfigFromFile(flagConfPath)
				if err != nil {
					return err
				}
				conf = parsed
			}

			if err := logging.SetLogLevel(flagLogLevel); err != nil {
				return err
			}
			if err := logging.SetFormat(flagLogFormat); err != nil {
				return err
			}

			f, err := server.New(conf)
			if err != nil {
				return err
			}

			if err := f.Start(); err != nil {
				return err
			}

			if code := handleSignal(f); code != 0 {
				return fmt.Errorf("exit code: %d", code)
			}

			return nil
		},
	}
}

func handleSignal(r *server.Folio) int {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	var sig os.Signal
	select {
	case s := <-sigCh:
		sig = s
	case <-r.ShutdownCh():
		// folio is already shutdown
		return 0
	}

	graceful := false
	if sig == syscall.SIGINT || sig == syscall.SIGTERM {
		graceful = true
	}

	gracefulCh := make(chan struct{})
	go func() {
		if err := r.Shutdown(graceful); err != nil {
			return
		}
		close(gracefulCh)
	}()

	select {
	case <-sigCh:
		return 1
	case <-time.After(gracefulTimeout):
		return 1
	case <-gracefulCh:
		return 0
	}
}

func init() {
	cmd := newServerCmd()
	cmd.Flags().StringVarP(
		&flagConfPath,
		"config",
		"c",
		"",
		"Config path",
	)
	cmd.Flags().StringVarP(
		&flagLogLevel,
		"log-level",
		"l",
		"info",
		"Log level: debug, info, warn, error, panic, fatal",
	)
	cmd.Flags().StringVar(
		&flagLogFormat,
		"log-format",
		string(logging.FormatConsole),
		"Log format: console, json",
	)
	cmd.Flags().IntVar(
		&conf.RPC.Port,
		"rpc-port",
		server.DefaultRPCPort,
		"RPC port",
	)
	cmd.Flags().StringVar(
		&conf.RPC.CertFile,
		"rpc-cert-file",
		"",
		"RPC certification file's path",
	)
	cmd.Flags().StringVar(
		&conf.RPC.KeyFile,
		"rpc-key-file",
		"",
		"RPC key file's path",
	)
	cmd.Flags().Uint64Var(
		&conf.RPC.MaxRequestBytes,
		"rpc-max-requests-bytes",
		server.DefaultRPCMaxRequestSize,
		"Maximum client request size in bytes the server will accept.",
	)
	cmd.Flags().DurationVar(
		&rpcRequestTimeout,
		"rpc-request-timeout",
		server.DefaultRPCRequestTimeout,
		"Duration after which a request is canceled.",
	)
	cmd.Flags().IntVar(
		&conf.Profiling.Port,
		"profiling-port",
		server.DefaultProfilingPort,
		"Profiling port",
	)
	cmd.Flags().StringVar(
		&conf.Profiling.MetricsPath,
		"profiling-metrics-path",
		profiling.DefaultMetricsPath,
		"Path to serve Prometheus metrics on.",
	)
	cmd.Flags().BoolVar(
		&conf.Profiling.EnablePprof,
		"enable-pprof",
		false,
		"Enable runtime profiling data via HTTP server.",
	)
	cmd.Flags().IntVar(
		&conf.Backend.SurfaceCacheSize,
		"surface-cache-size",
		server.DefaultSurfaceCacheSize,
		"The number of rendered layouts kept for export.",
	)
	cmd.Flags().Float64Var(
		&conf.Backend.ExportScale,
		"export-scale",
		server.DefaultExportScale,
		"The magnification layouts are captured at when exported.",
	)
	cmd.Flags().StringVar(
		&conf.Backend.IDGenerator,
		"id-generator",
		server.DefaultIDGenerator,
		"The kind of identifiers given to new documents: uuid or xid.",
	)
	cmd.Flags().StringVar(
		&mongoConnectionURI,
		"mongo-connection-uri",
		"",
		"MongoDB's connection URI",
	)
	cmd.Flags().DurationVar(
		&mongoConnectionTimeout,
		"mongo-connection-timeout",
		server.DefaultMongoConnectionTimeout,
		"Mongo DB's connection timeout",
	)
	cmd.Flags().StringVar(
		&mongoFolioDatabase,
		"mongo-folio-database",
		server.DefaultMongoFolioDatabase,
		"Folio's database name in MongoDB",
	)
	cmd.Flags().DurationVar(
		&mongoPingTimeout,
		"mongo-ping-timeout",
		server.DefaultMongoPingTimeout,
		"Mongo DB's ping timeout",
	)
	cmd.Flags().StringVar(
		&redisAddr,
		"redis-addr",
		"",
		"Redis address, e.g. localhost:6379",
	)
	cmd.Flags().StringVar(
		&redisPassword,
		"redis-password",
		"",
		"Redis password",
	)
	cmd.Flags().IntVar(
		&redisDB,
		"redis-db",
		0,
		"Redis database number",
	)
	cmd.Flags().DurationVar(
		&redisDialTimeout,
		"redis-dial-timeout",
		server.DefaultRedisDialTimeout,
		"Redis dial timeout",
	)

	rootCmd.AddCommand(cmd)
}
