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

// Package server provides the Folio server which is the main entry point of
// the Folio system. The server is responsible for starting the RPC server and
// the profiling server.
package server

import (
	"net/http"
	gosync "sync"

	"github.com/folio-team/folio/server/backend"
	"github.com/folio-team/folio/server/profiling"
	"github.com/folio-team/folio/server/profiling/prometheus"
	"github.com/folio-team/folio/server/rpc"
)

// Folio is a server of Folio.
// The server receives editing requests from clients, stores the documents
// and renders and exports them on demand.
type Folio struct {
	lock gosync.Mutex

	conf            *Config
	backend         *backend.Backend
	rpcServer       *rpc.Server
	profilingServer *profiling.Server

	shutdown   bool
	shutdownCh chan struct{}
}

// New creates a new instance of Folio.
func New(conf *Config, opts ...backend.Option) (*Folio, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	metrics, err := prometheus.NewMetrics()
	if err != nil {
		return nil, err
	}

	be, err := backend.New(
		conf.Backend,
		conf.Mongo,
		conf.Redis,
		metrics,
		opts...,
	)
	if err != nil {
		return nil, err
	}

	rpcServer, err := rpc.NewServer(conf.RPC, be)
	if err != nil {
		return nil, err
	}

	var profilingServer *profiling.Server
	if conf.Profiling != nil {
		profilingServer = profiling.NewServer(conf.Profiling, metrics)
	}

	return &Folio{
		conf:            conf,
		backend:         be,
		rpcServer:       rpcServer,
		profilingServer: profilingServer,
		shutdownCh:      make(chan struct{}),
	}, nil
}

// Start starts the server by opening the rpc port.
func (r *Folio) Start() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.profilingServer != nil {
		if err := r.profilingServer.Start(); err != nil {
			return err
		}
	}

	if err := r.rpcServer.Start(); err != nil {
		if r.profilingServer != nil {
			r.profilingServer.Shutdown(false)
		}
		return err
	}

	return nil
}

// Shutdown shuts down this Folio server.
func (r *Folio) Shutdown(graceful bool) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.shutdown {
		return nil
	}

	r.rpcServer.Shutdown(graceful)
	if r.profilingServer != nil {
		r.profilingServer.Shutdown(graceful)
	}

	if err := r.backend.Shutdown(); err != nil {
		return err
	}

	close(r.shutdownCh)
	r.shutdown = true
	return nil
}

// ShutdownCh returns the shutdown channel.
func (r *Folio) ShutdownCh() <-chan struct{} {
	return r.shutdownCh
}

// RPCAddr returns the address of the RPC.
func (r *Folio) RPCAddr() string {
	return r.conf.RPCAddr()
}

// Backend returns the backend of this server. It is used for testing.
func (r *Folio) Backend() *backend.Backend {
	return r.backend
}

// Handler returns the HTTP handler of the RPC server. It is used for testing.
func (r *Folio) Handler() http.Handler {
	return r.rpcServer.Handler()
}
