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

package profiling

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/folio-team/folio/server/logging"
	"github.com/folio-team/folio/server/profiling/prometheus"
)

// pprofPrefix is where chi's profiler mounts the pprof endpoints.
const pprofPrefix = "/debug"

const shutdownTimeout = 10 * time.Second

// Server serves information for profiling, such as metrics and pprof information.
type Server struct {
	conf       *Config
	router     chi.Router
	httpServer *http.Server
	listener   net.Listener
}

// NewServer creates an instance of Server.
func NewServer(conf *Config, metrics *prometheus.Metrics) *Server {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	if metrics != nil {
		r.Method(http.MethodGet, conf.metricsPath(), promhttp.HandlerFor(
			metrics.Registry(),
			promhttp.HandlerOpts{ErrorLog: zapErrorLog{}},
		))
	}
	if conf.EnablePprof {
		r.Mount(pprofPrefix, chimiddleware.Profiler())
	}

	return &Server{
		conf:   conf,
		router: r,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", conf.Port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Handler returns the handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start binds the port and serves in the background. Binding errors are
// returned to the caller.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen profiling on %d: %w", s.conf.Port, err)
	}
	s.listener = lis

	go func() {
		logging.DefaultLogger().Infof("serving profiling on %d", s.conf.Port)
		if err := s.httpServer.Serve(lis); !errors.Is(err, http.ErrServerClosed) {
			logging.DefaultLogger().Errorf("profiling server Serve: %v", err)
		}
	}()
	return nil
}

// Addr returns the bound address, or nil before Start.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Shutdown shuts down the server.
func (s *Server) Shutdown(graceful bool) {
	if !graceful {
		if err := s.httpServer.Close(); err != nil {
			logging.DefaultLogger().Errorf("profiling server Close: %v", err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		logging.DefaultLogger().Errorf("profiling server Shutdown: %v", err)
	}
}

// zapErrorLog routes errors of the metrics handler to the default logger.
type zapErrorLog struct{}

func (zapErrorLog) Println(v ...interface{}) {
	logging.DefaultLogger().Error(v...)
}
