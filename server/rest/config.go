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
	"errors"
	"fmt"
	"os"
	"time"
)

var (
	// ErrInvalidRESTPort occurs when the port in the config is invalid.
	ErrInvalidRESTPort = errors.New("invalid port number for REST server")
	// ErrInvalidCertFile occurs when the certificate file is invalid.
	ErrInvalidCertFile = errors.New("invalid cert file for REST server")
	// ErrInvalidKeyFile occurs when the key file is invalid.
	ErrInvalidKeyFile = errors.New("invalid key file for REST server")
	// ErrInvalidReadTimeout occurs when the read timeout is invalid.
	ErrInvalidReadTimeout = errors.New("invalid read timeout for REST server")
	// ErrInvalidLoginRateLimit occurs when the login rate limit is invalid.
	ErrInvalidLoginRateLimit = errors.New("invalid login rate limit for REST server")
)

// Config is the configuration for creating a Server instance.
type Config struct {
	// Port is the port number for the REST server.
	Port int `yaml:"Port"`

	// CertFile is the path to the certificate file.
	CertFile string `yaml:"CertFile"`

	// KeyFile is the path to the key file.
	KeyFile string `yaml:"KeyFile"`

	// MaxRequestBytes is the maximum request body size in bytes the server
	// will accept.
	MaxRequestBytes int64 `yaml:"MaxRequestBytes"`

	// ReadTimeout is the maximum duration for reading an entire request.
	ReadTimeout string `yaml:"ReadTimeout"`

	// LoginRateLimit is the number of login attempts per second allowed for
	// a single client address.
	LoginRateLimit float64 `yaml:"LoginRateLimit"`

	// LoginBurst is the number of login attempts a client may make at once.
	LoginBurst int `yaml:"LoginBurst"`
}

// Validate validates the port number and the files for certification.
func (c *Config) Validate() error {
	if c.Port < 1 || 65535 < c.Port {
		return fmt.Errorf("must be between 1 and 65535, given %d: %w", c.Port, ErrInvalidRESTPort)
	}

	// when specific cert or key file are configured
	if c.CertFile != "" {
		if _, err := os.Stat(c.CertFile); err != nil {
			return fmt.Errorf("%s: %w", c.CertFile, ErrInvalidCertFile)
		}
	}

	if c.KeyFile != "" {
		if _, err := os.Stat(c.KeyFile); err != nil {
			return fmt.Errorf("%s: %w", c.KeyFile, ErrInvalidKeyFile)
		}
	}

	if _, err := time.ParseDuration(c.ReadTimeout); err != nil {
		return fmt.Errorf("%s: %w", c.ReadTimeout, ErrInvalidReadTimeout)
	}

	if c.LoginRateLimit <= 0 || c.LoginBurst < 1 {
		return fmt.Errorf(
			"rate %f, burst %d: %w",
			c.LoginRateLimit,
			c.LoginBurst,
			ErrInvalidLoginRateLimit,
		)
	}

	return nil
}

// ParseReadTimeout returns the read timeout. It should be called after
// Validate.
func (c *Config) ParseReadTimeout() time.Duration {
	d, err := time.ParseDuration(c.ReadTimeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse read timeout: %v\n", err)
		os.Exit(1)
	}
	return d
}
