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

// Package config provides the configuration of the Locahub CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/locahub/locahub/admin"
)

// Keys of the settings read through viper.
const (
	KeyServerAddr = "serverAddr"
	KeyHome       = "home"
)

var (
	// ErrNoServerAddr is returned when no server address is configured.
	ErrNoServerAddr = errors.New("server address is not configured")

	// ErrNotLoggedIn is returned when there is no token for the server.
	ErrNotLoggedIn = errors.New("not logged in, run `locahub login` first")
)

// ensureLocahubDir ensures that the directory of Locahub exists.
func ensureLocahubDir() (string, error) {
	dir := viper.GetString(KeyHome)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home dir: %w", err)
		}
		dir = filepath.Join(home, ".locahub")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}
	return dir, nil
}

// configPath returns the path of CLI.
func configPath() (string, error) {
	dir, err := ensureLocahubDir()
	if err != nil {
		return "", fmt.Errorf("ensure locahub dir: %w", err)
	}
	return filepath.Join(dir, "config.json"), nil
}

// Config is the configuration of CLI.
type Config struct {
	// Auths is the map of the address and the token.
	Auths map[string]string `json:"auths"`

	// ServerAddr is the address used by the last login.
	ServerAddr string `json:"serverAddr"`
}

// New creates a new configuration.
func New() *Config {
	return &Config{
		Auths: make(map[string]string),
	}
}

// Preload fills the server address from the saved configuration when
// neither the flag nor the environment sets it.
func Preload(_ *cobra.Command, _ []string) error {
	if viper.IsSet(KeyServerAddr) && viper.GetString(KeyServerAddr) != "" {
		return nil
	}

	conf, err := Load()
	if err != nil {
		return err
	}
	if conf.ServerAddr == "" {
		return ErrNoServerAddr
	}

	viper.Set(KeyServerAddr, conf.ServerAddr)
	return nil
}

// LoadToken loads the token of the given address.
func LoadToken(addr string) (string, error) {
	config, err := Load()
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	return config.Auths[addr], nil
}

// Dial creates a client of the configured server carrying the saved token.
func Dial() (*admin.Client, error) {
	addr := viper.GetString(KeyServerAddr)
	token, err := LoadToken(addr)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	return admin.New(addr, admin.WithToken(token), admin.WithLogger(zap.NewNop()))
}

// Load loads the configuration from the given path.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}

		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	config := New()
	if err := json.NewDecoder(file).Decode(config); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}
	if config.Auths == nil {
		config.Auths = make(map[string]string)
	}

	return config, nil
}

// Save saves the configuration to the given path.
func Save(config *Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	file, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := json.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	return nil
}

// Delete deletes the configuration file.
func Delete() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.Remove(filepath.Clean(path)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove config file: %w", err)
	}

	return nil
}
