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

// Package rpc provides the HTTP API server of Folio.
package rpc

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/folio-team/folio/internal/version"
	"github.com/folio-team/folio/server/backend"
	"github.com/folio-team/folio/server/logging"
	"github.com/folio-team/folio/server/rpc/httphealth"
	"github.com/folio-team/folio/server/rpc/httphelper"
	"github.com/folio-team/folio/server/rpc/interceptors"
)

// shutdownTimeout is the time given to in-flight requests on a graceful
// shutdown.
const shutdownTimeout = 10 * time.Second

// Server is a normal server that processes the logic requested by the client.
type Server struct {
	conf       *Config
	router     chi.Router
	httpServer *http.Server
	listener   net.Listener
	checker    *httphealth.Checker
}

// NewServer creates a new instance of Server.
func NewServer(conf *Config, be *backend.Backend) (*Server, error) {
	checker := httphealth.NewChecker()
	contextInterceptor := interceptors.NewContextInterceptor()

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(contextInterceptor.Handler)
	r.Use(chimiddleware.Timeout(conf.ParseRequestTimeout()))

	r.Handle(httphealth.NewHandler(checker))
	r.Get("/version", func(w http.ResponseWriter, _ *http.Request) {
		httphelper.WriteJSON(w, http.StatusOK, version.Current())
	})
	r.Mount("/documents", newDocumentServer(be, int64(conf.MaxRequestBytes)).routes())

	s := &Server{
		conf:    conf,
		router:  r,
		checker: checker,
	}
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", conf.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s, nil
}

// Handler returns the HTTP handler of this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts this server by opening the rpc port. Failures to load the
// certificate or to bind the port are returned; requests are served in the
// background.
func (s *Server) Start() error {
	return s.listenAndServe()
}

// Addr returns the bound address, or nil before Start.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Shutdown shuts down this server.
func (s *Server) Shutdown(graceful bool) {
	s.checker.SetServing(false)

	if !graceful {
		if err := s.httpServer.Close(); err != nil {
			logging.DefaultLogger().Errorf("HTTP server close failed: %v", err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		logging.DefaultLogger().Errorf("HTTP server graceful shutdown failed: %v", err)
	}
}

func (s *Server) listenAndServe() error {
	useTLS := s.conf.CertFile != "" && s.conf.KeyFile != ""
	if useTLS {
		cert, err := tls.LoadX509KeyPair(s.conf.CertFile, s.conf.KeyFile)
		if err != nil {
			return fmt.Errorf("load rpc certificate: %w", err)
		}
		s.httpServer.TLSConfig = &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
	}

	lis, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen rpc on %d: %w", s.conf.Port, err)
	}
	s.listener = lis

	go func() {
		logging.DefaultLogger().Infof("serving RPC on %d", s.conf.Port)

		var err error
		if useTLS {
			err = s.httpServer.ServeTLS(lis, "", "")
		} else {
			err = s.httpServer.Serve(lis)
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.DefaultLogger().Errorf("HTTP server Serve: %v", err)
		}
	}()

	return nil
}
