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

package backend

import (
	"errors"
	"fmt"
	"os"
	"time"
)

var (
	// ErrEmptySecretKey occurs when the secret key for tokens is not given.
	ErrEmptySecretKey = errors.New("secret key is empty")

	// ErrInvalidUserCacheSize occurs when the size of the user cache is not
	// positive.
	ErrInvalidUserCacheSize = errors.New("user cache size must be > 0")
)

// Config is the configuration for creating a Backend instance.
type Config struct {
	// AdminUser is the username of the default admin. Set once on first-run.
	// Default is "admin".
	AdminUser string `yaml:"AdminUser"`

	// AdminPassword is the password of the default admin. Default is "admin123".
	AdminPassword string `yaml:"AdminPassword"`

	// SecretKey is the secret key for signing authentication tokens.
	SecretKey string `yaml:"SecretKey"`

	// TokenDuration is the lifetime of an issued token. Default is "24h".
	TokenDuration string `yaml:"TokenDuration"`

	// UserCacheSize is the number of callers kept in the user cache.
	UserCacheSize int `yaml:"UserCacheSize"`

	// UserCacheTTL is how long a caller stays in the user cache.
	UserCacheTTL string `yaml:"UserCacheTTL"`
}

// Validate validates this config.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return ErrEmptySecretKey
	}

	if _, err := time.ParseDuration(c.TokenDuration); err != nil {
		return fmt.Errorf(
			`invalid argument "%s" for "--token-duration" flag: %w`,
			c.TokenDuration,
			err,
		)
	}

	if c.UserCacheSize <= 0 {
		return fmt.Errorf("given %d: %w", c.UserCacheSize, ErrInvalidUserCacheSize)
	}

	if _, err := time.ParseDuration(c.UserCacheTTL); err != nil {
		return fmt.Errorf(
			`invalid argument "%s" for "--user-cache-ttl" flag: %w`,
			c.UserCacheTTL,
			err,
		)
	}

	return nil
}

// ParseTokenDuration returns the lifetime of tokens.
func (c *Config) ParseTokenDuration() time.Duration {
	result, err := time.ParseDuration(c.TokenDuration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse token duration: %v\n", err)
		os.Exit(1)
	}

	return result
}

// ParseUserCacheTTL returns the TTL of the user cache.
func (c *Config) ParseUserCacheTTL() time.Duration {
	result, err := time.ParseDuration(c.UserCacheTTL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse user cache ttl: %v\n", err)
		os.Exit(1)
	}

	return result
}
