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

package server

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/locahub/locahub/server/backend"
	"github.com/locahub/locahub/server/backend/database/mongo"
	"github.com/locahub/locahub/server/logging"
	"github.com/locahub/locahub/server/profiling"
	"github.com/locahub/locahub/server/rest"
)

// Below are the values of the default values of Locahub config.
const (
	DefaultRESTPort      = 8080
	DefaultProfilingPort = 8081

	DefaultRESTMaxRequestBytes = 1 << 20
	DefaultRESTReadTimeout     = 30 * time.Second
	DefaultLoginRateLimit      = 1.0
	DefaultLoginBurst          = 5

	DefaultMongoConnectionURI                = "mongodb://localhost:27017"
	DefaultMongoConnectionTimeout            = 5 * time.Second
	DefaultMongoPingTimeout                  = 5 * time.Second
	DefaultMongoDatabase                     = "locahub"
	DefaultMongoMonitoringSlowQueryThreshold = 100 * time.Millisecond

	DefaultAdminUser     = "admin"
	DefaultAdminPassword = "admin"
	DefaultSecretKey     = "locahub-secret"
	DefaultTokenDuration = 7 * 24 * time.Hour

	DefaultUserCacheSize = 1000
	DefaultUserCacheTTL  = time.Minute
)

// Config is the configuration for creating a Locahub instance.
type Config struct {
	REST      *rest.Config        `yaml:"REST"`
	Profiling *profiling.Config   `yaml:"Profiling"`
	Backend   *backend.Config     `yaml:"Backend"`
	Mongo     *mongo.Config       `yaml:"Mongo"`
	LogFile   *logging.FileConfig `yaml:"LogFile"`
}

// NewConfig returns a Config struct that contains reasonable defaults
// for most of the configurations.
func NewConfig() *Config {
	return newConfig(DefaultRESTPort, DefaultProfilingPort)
}

// NewConfigFromFile returns a Config struct for the given conf file.
func NewConfigFromFile(path string) (*Config, error) {
	conf := &Config{}
	bytes, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err = yaml.Unmarshal(bytes, conf); err != nil {
		return nil, fmt.Errorf("unmarshal config file: %w", err)
	}

	conf.ensureDefaultValue()
	return conf, nil
}

// RESTAddr returns the address of the REST server.
func (c *Config) RESTAddr() string {
	return fmt.Sprintf("localhost:%d", c.REST.Port)
}

// Validate returns an error if the provided Config is invalidated.
func (c *Config) Validate() error {
	if err := c.REST.Validate(); err != nil {
		return err
	}

	if err := c.Profiling.Validate(); err != nil {
		return err
	}

	if err := c.Backend.Validate(); err != nil {
		return err
	}

	if c.Mongo != nil {
		if err := c.Mongo.Validate(); err != nil {
			return err
		}
	}

	if c.LogFile != nil {
		if err := c.LogFile.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// ensureDefaultValue sets the value of the option to which the default value
// should be applied when the user does not input it.
func (c *Config) ensureDefaultValue() {
	if c.REST == nil {
		c.REST = &rest.Config{}
	}
	if c.REST.Port == 0 {
		c.REST.Port = DefaultRESTPort
	}
	if c.REST.MaxRequestBytes == 0 {
		c.REST.MaxRequestBytes = DefaultRESTMaxRequestBytes
	}
	if c.REST.ReadTimeout == "" {
		c.REST.ReadTimeout = DefaultRESTReadTimeout.String()
	}
	if c.REST.LoginRateLimit == 0 {
		c.REST.LoginRateLimit = DefaultLoginRateLimit
	}
	if c.REST.LoginBurst == 0 {
		c.REST.LoginBurst = DefaultLoginBurst
	}

	if c.Profiling == nil {
		c.Profiling = &profiling.Config{}
	}

	if c.Backend == nil {
		c.Backend = &backend.Config{}
	}
	if c.Backend.AdminUser == "" {
		c.Backend.AdminUser = DefaultAdminUser
	}
	if c.Backend.AdminPassword == "" {
		c.Backend.AdminPassword = DefaultAdminPassword
	}
	if c.Backend.SecretKey == "" {
		c.Backend.SecretKey = DefaultSecretKey
	}
	if c.Backend.TokenDuration == "" {
		c.Backend.TokenDuration = DefaultTokenDuration.String()
	}
	if c.Backend.UserCacheSize == 0 {
		c.Backend.UserCacheSize = DefaultUserCacheSize
	}
	if c.Backend.UserCacheTTL == "" {
		c.Backend.UserCacheTTL = DefaultUserCacheTTL.String()
	}

	if c.Mongo != nil {
		if c.Mongo.ConnectionURI == "" {
			c.Mongo.ConnectionURI = DefaultMongoConnectionURI
		}

		if c.Mongo.ConnectionTimeout == "" {
			c.Mongo.ConnectionTimeout = DefaultMongoConnectionTimeout.String()
		}

		if c.Mongo.Database == "" {
			c.Mongo.Database = DefaultMongoDatabase
		}

		if c.Mongo.PingTimeout == "" {
			c.Mongo.PingTimeout = DefaultMongoPingTimeout.String()
		}

		if c.Mongo.MonitoringEnabled {
			if c.Mongo.MonitoringSlowQueryThreshold == "" {
				c.Mongo.MonitoringSlowQueryThreshold = DefaultMongoMonitoringSlowQueryThreshold.String()
			}
		}
	}

	if c.LogFile != nil && c.LogFile.Filename != "" {
		if c.LogFile.MaxSize == 0 {
			c.LogFile.MaxSize = logging.DefaultFileMaxSize
		}
		if c.LogFile.MaxBackups == 0 {
			c.LogFile.MaxBackups = logging.DefaultFileMaxBackups
		}
		if c.LogFile.MaxAge == 0 {
			c.LogFile.MaxAge = logging.DefaultFileMaxAge
		}
	}
}

func newConfig(port int, profilingPort int) *Config {
	conf := &Config{
		REST: &rest.Config{
			Port: port,
		},
		Profiling: &profiling.Config{
			Port: profilingPort,
		},
		Backend: &backend.Config{},
	}
	conf.ensureDefaultValue()
	return conf
}
