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

// Package rest provides the JSON API of Locahub over HTTP.
package rest

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/locahub/locahub/server/backend"
	"github.com/locahub/locahub/server/logging"
	"github.com/locahub/locahub/server/rest/auth"
)

// Server is a normal server that processes the REST API.
type Server struct {
	conf         *Config
	be           *backend.Backend
	tokenManager *auth.TokenManager
	loginLimiter *loginLimiter
	logger       logging.Logger
	router       *mux.Router
	httpServer   *http.Server
}

// NewServer creates a new instance of Server.
func NewServer(conf *Config, be *backend.Backend) (*Server, error) {
	limiter, err := newLoginLimiter(conf.LoginRateLimit, conf.LoginBurst)
	if err != nil {
		return nil, err
	}

	s := &Server{
		conf: conf,
		be:   be,
		tokenManager: auth.NewTokenManager(
			be.Config.SecretKey,
			be.Config.ParseTokenDuration(),
		),
		loginLimiter: limiter,
		logger:       logging.New("rest"),
		router:       mux.NewRouter(),
	}
	s.router.Use(s.withRequestID)
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, ErrRouteNotFound)
	})
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, ErrMethodNotAllowed)
	})
	s.registerRoutes()

	s.httpServer = &http.Server{
		Addr:        fmt.Sprintf(":%d", conf.Port),
		Handler:     s.router,
		ReadTimeout: conf.ParseReadTimeout(),
	}

	return s, nil
}

// Handler returns the handler of this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the server by opening the REST port.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		s.logger.Error(err)
		return err
	}

	go func() {
		s.logger.Infof("serving REST on %d", s.conf.Port)

		var serveErr error
		if s.conf.CertFile != "" && s.conf.KeyFile != "" {
			serveErr = s.httpServer.ServeTLS(lis, s.conf.CertFile, s.conf.KeyFile)
		} else {
			serveErr = s.httpServer.Serve(lis)
		}
		if !errors.Is(serveErr, http.ErrServerClosed) {
			s.logger.Errorf("HTTP server Serve: %v", serveErr)
		}
	}()

	return nil
}

// Shutdown shuts down the server.
func (s *Server) Shutdown(graceful bool) {
	if graceful {
		if err := s.httpServer.Shutdown(context.Background()); err != nil {
			s.logger.Errorf("HTTP server Shutdown: %v", err)
		}
		return
	}

	if err := s.httpServer.Close(); err != nil {
		s.logger.Errorf("HTTP server Close: %v", err)
	}
}
