/*
 * Copyright 2025 The Locahub Authors. All rights reserved.
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

// Package server provides the Locahub server which coordinates the
// localization projects of an office.
package server

import (
	gosync "sync"

	"github.com/locahub/locahub/server/backend"
	"github.com/locahub/locahub/server/logging"
	"github.com/locahub/locahub/server/profiling"
	"github.com/locahub/locahub/server/profiling/prometheus"
	"github.com/locahub/locahub/server/rest"
)

// Locahub is the server that serves the REST API and the profiling
// endpoints on top of a single backend.
type Locahub struct {
	lock gosync.Mutex

	conf            *Config
	backend         *backend.Backend
	restServer      *rest.Server
	profilingServer *profiling.Server

	shutdown   bool
	shutdownCh chan struct{}
}

// New creates a new instance of Locahub.
func New(conf *Config) (*Locahub, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	if conf.LogFile != nil {
		logging.SetFileOutput(conf.LogFile)
	}

	metrics, err := prometheus.NewMetrics()
	if err != nil {
		return nil, err
	}

	be, err := backend.New(conf.Backend, conf.Mongo, metrics)
	if err != nil {
		return nil, err
	}

	restServer, err := rest.NewServer(conf.REST, be)
	if err != nil {
		return nil, err
	}

	var profilingServer *profiling.Server
	if conf.Profiling.IsEnabled() {
		profilingServer = profiling.NewServer(conf.Profiling, metrics)
	}

	return &Locahub{
		conf:            conf,
		backend:         be,
		restServer:      restServer,
		profilingServer: profilingServer,
		shutdownCh:      make(chan struct{}),
	}, nil
}

// Start starts the server by opening the REST port and the profiling port.
func (r *Locahub) Start() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.profilingServer != nil {
		if err := r.profilingServer.Start(); err != nil {
			return err
		}
	}

	return r.restServer.Start()
}

// Shutdown shuts down the servers and closes the backend.
func (r *Locahub) Shutdown(graceful bool) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.shutdown {
		return nil
	}

	r.restServer.Shutdown(graceful)
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
func (r *Locahub) ShutdownCh() <-chan struct{} {
	return r.shutdownCh
}

// RESTAddr returns the address of the REST server.
func (r *Locahub) RESTAddr() string {
	return r.conf.RESTAddr()
}
