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

package rest

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/xid"
	"golang.org/x/time/rate"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/pkg/cache"
	"github.com/locahub/locahub/pkg/errors"
	"github.com/locahub/locahub/server/authz"
	"github.com/locahub/locahub/server/backend/database"
	"github.com/locahub/locahub/server/logging"
	"github.com/locahub/locahub/server/rest/auth"
	"github.com/locahub/locahub/server/rest/httphelper"
	"github.com/locahub/locahub/server/users"
)

// RequestIDHeader is the header carrying the ID of a request.
const RequestIDHeader = "X-Request-ID"

const (
	loginLimiterSize = 10000
	loginLimiterTTL  = 10 * time.Minute
)

var (
	// ErrMissingToken is returned when a request to a private route carries
	// no bearer token.
	ErrMissingToken = errors.Unauthenticated("missing bearer token").WithCode("ErrMissingToken")

	// ErrTooManyLoginAttempts is returned when a client logs in too often.
	ErrTooManyLoginAttempts = errors.ResourceExhausted(
		"too many login attempts",
	).WithCode("ErrTooManyLoginAttempts")

	// ErrRouteNotFound is returned when no route matches the request.
	ErrRouteNotFound = errors.NotFound("route not found").WithCode("ErrRouteNotFound")

	// ErrMethodNotAllowed is returned when the route does not accept the
	// method of the request. It is reported as a bad request.
	ErrMethodNotAllowed = errors.InvalidArgument("method not allowed").WithCode("ErrMethodNotAllowed")
)

// apiFunc handles a request and returns the status and the body of the
// response.
type apiFunc func(r *http.Request) (int, any, error)

// withRequestID attaches an ID and a logger carrying it to every request.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = xid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)

		ctx := logging.With(r.Context(), s.logger.With("r", id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// public registers a route that needs no token.
func (s *Server) public(method, route string, fn apiFunc) {
	s.router.Handle(route, s.serve(method, route, fn, false, nil)).Methods(method)
}

// private registers a route for the authenticated users of the given roles.
// With no roles, every authenticated user may call it.
func (s *Server) private(method, route string, fn apiFunc, roles ...types.Role) {
	s.router.Handle(route, s.serve(method, route, fn, true, roles)).Methods(method)
}

func (s *Server) serve(
	method, route string,
	fn apiFunc,
	authenticate bool,
	roles []types.Role,
) http.Handler {
	label := method + " " + route

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		if s.conf.MaxRequestBytes > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, s.conf.MaxRequestBytes)
		}

		status, body, err := s.call(r, fn, authenticate, roles)
		if err != nil {
			status, body = httphelper.ToErrorResponse(err)
		}
		httphelper.WriteJSON(w, status, body)

		duration := time.Since(start)
		logger := logging.From(r.Context())
		if err != nil {
			logging.LogHTTPError(logger, label, duration, err)
		} else {
			logging.LogHTTPSuccess(logger, label, duration)
		}

		if s.be.Metrics != nil {
			s.be.Metrics.AddServerHandledCounter(method, route, strconv.Itoa(status))
			s.be.Metrics.ObserveResponseSeconds(route, duration.Seconds())
		}
	})
}

func (s *Server) call(
	r *http.Request,
	fn apiFunc,
	authenticate bool,
	roles []types.Role,
) (int, any, error) {
	if authenticate {
		caller, err := s.authenticate(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			return 0, nil, err
		}
		if len(roles) > 0 {
			if err := authz.CheckRole(caller, roles...); err != nil {
				return 0, nil, err
			}
		}
		r = r.WithContext(users.With(r.Context(), caller))
	}

	return fn(r)
}

// authenticate returns the caller of the bearer token. The role is read from
// the stored user so that a changed or frozen account takes effect at once.
func (s *Server) authenticate(ctx context.Context, header string) (*types.Caller, error) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return nil, ErrMissingToken
	}

	claims, err := s.tokenManager.Verify(token)
	if err != nil {
		return nil, err
	}

	info, err := users.FindActiveUser(ctx, s.be, claims.Caller().ID)
	if errors.Is(err, database.ErrUserNotFound) {
		return nil, fmt.Errorf("user of token is gone: %w", auth.ErrInvalidToken)
	}
	if err != nil {
		return nil, err
	}

	return &types.Caller{ID: info.ID, Role: info.Role}, nil
}

// loginLimiter limits the login attempts of each client address.
type loginLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters *cache.LRUWithExpires[string, *rate.Limiter]
}

func newLoginLimiter(limit float64, burst int) (*loginLimiter, error) {
	limiters, err := cache.NewLRUWithExpires[string, *rate.Limiter](
		loginLimiterSize,
		loginLimiterTTL,
		"login-limiter",
	)
	if err != nil {
		return nil, err
	}

	return &loginLimiter{
		limit:    rate.Limit(limit),
		burst:    burst,
		limiters: limiters,
	}, nil
}

// Allow reports whether the client of the request may attempt a login now.
func (l *loginLimiter) Allow(r *http.Request) bool {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	l.mu.Lock()
	limiter, ok := l.limiters.Get(host)
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters.Add(host, limiter)
	}
	l.mu.Unlock()

	return limiter.Allow()
}

func writeError(w http.ResponseWriter, err error) {
	httphelper.WriteError(w, err)
}
