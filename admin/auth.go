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

package admin

import (
	"net/http"
	"sync"

	"github.com/locahub/locahub/internal/version"
)

// UserAgent is the user agent sent by the client.
const UserAgent = "locahub-go-client"

// AuthTransport adds the token of the user to every request.
type AuthTransport struct {
	mu    sync.RWMutex
	token string
	base  http.RoundTripper
}

// NewAuthTransport creates a new instance of AuthTransport.
func NewAuthTransport(token string, base http.RoundTripper) *AuthTransport {
	if base == nil {
		base = http.DefaultTransport
	}

	return &AuthTransport{
		token: token,
		base:  base,
	}
}

// SetToken sets the token of the client.
func (t *AuthTransport) SetToken(token string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.token = token
}

// RoundTrip implements http.RoundTripper.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mu.RLock()
	token := t.token
	t.mu.RUnlock()

	req = req.Clone(req.Context())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("User-Agent", UserAgent+"/"+version.Version)

	return t.base.RoundTrip(req)
}
