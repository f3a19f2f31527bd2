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

package server_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/locahub/locahub/server"
	"github.com/locahub/locahub/server/rest"
)

func TestNewConfigFromFile(t *testing.T) {
	t.Run("fail read config file test", func(t *testing.T) {
		conf := server.NewConfig()
		assert.Equal(t, conf.RESTAddr(), "localhost:"+strconv.Itoa(server.DefaultRESTPort))
		_, err := server.NewConfigFromFile("nowhere.yml")
		assert.Error(t, err)
		assert.Equal(t, conf.REST.Port, server.DefaultRESTPort)
		assert.Equal(t, conf.REST.CertFile, "")
		assert.Equal(t, conf.Profiling.Port, server.DefaultProfilingPort)
		assert.Nil(t, conf.Mongo)
		assert.NoError(t, conf.Validate())
	})

	t.Run("read config file test", func(t *testing.T) {
		conf, err := server.NewConfigFromFile("config.sample.yml")
		assert.NoError(t, err)
		assert.NoError(t, conf.Validate())

		assert.Equal(t, conf.REST.Port, server.DefaultRESTPort)
		assert.Equal(t, conf.REST.LoginBurst, server.DefaultLoginBurst)
		assert.Equal(t, server.DefaultRESTReadTimeout, conf.REST.ParseReadTimeout())

		assert.Equal(t, server.DefaultMongoConnectionTimeout, conf.Mongo.ParseConnectionTimeout())
		assert.Equal(t, conf.Mongo.ConnectionURI, server.DefaultMongoConnectionURI)
		assert.Equal(t, conf.Mongo.Database, server.DefaultMongoDatabase)
		assert.Equal(t, server.DefaultMongoPingTimeout, conf.Mongo.ParsePingTimeout())

		assert.Equal(t, server.DefaultTokenDuration, conf.Backend.ParseTokenDuration())
		assert.Equal(t, server.DefaultUserCacheTTL, conf.Backend.ParseUserCacheTTL())
		assert.Equal(t, server.DefaultUserCacheSize, conf.Backend.UserCacheSize)
	})

	t.Run("default value test", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "locahub.yml")
		assert.NoError(t, os.WriteFile(path, []byte("REST:\n  Port: 9090\nMongo:\n  Database: office\n"), 0o600))

		conf, err := server.NewConfigFromFile(path)
		assert.NoError(t, err)
		assert.Equal(t, 9090, conf.REST.Port)
		assert.Equal(t, 5*time.Second, conf.Mongo.ParsePingTimeout())
		assert.Equal(t, "office", conf.Mongo.Database)
		assert.Equal(t, server.DefaultSecretKey, conf.Backend.SecretKey)
		assert.False(t, conf.Profiling.IsEnabled())
		assert.NoError(t, conf.Validate())
	})

	t.Run("invalid config test", func(t *testing.T) {
		conf := server.NewConfig()
		conf.REST.Port = 70000
		assert.ErrorIs(t, conf.Validate(), rest.ErrInvalidRESTPort)
	})
}
