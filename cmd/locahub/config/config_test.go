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

package config_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/locahub/locahub/cmd/locahub/config"
)

func TestConfig(t *testing.T) {
	viper.Set(config.KeyHome, t.TempDir())
	t.Cleanup(viper.Reset)

	t.Run("load missing config test", func(t *testing.T) {
		conf, err := config.Load()
		assert.NoError(t, err)
		assert.Empty(t, conf.Auths)
		assert.Empty(t, conf.ServerAddr)

		assert.ErrorIs(t, config.Preload(nil, nil), config.ErrNoServerAddr)
	})

	t.Run("save and load test", func(t *testing.T) {
		conf := config.New()
		conf.Auths["localhost:8080"] = "token"
		conf.ServerAddr = "localhost:8080"
		assert.NoError(t, config.Save(conf))

		token, err := config.LoadToken("localhost:8080")
		assert.NoError(t, err)
		assert.Equal(t, "token", token)

		assert.NoError(t, config.Preload(nil, nil))
		assert.Equal(t, "localhost:8080", viper.GetString(config.KeyServerAddr))
	})

	t.Run("dial without token test", func(t *testing.T) {
		viper.Set(config.KeyServerAddr, "localhost:9999")
		_, err := config.Dial()
		assert.ErrorIs(t, err, config.ErrNotLoggedIn)
	})

	t.Run("delete test", func(t *testing.T) {
		assert.NoError(t, config.Delete())
		assert.NoError(t, config.Delete())

		conf, err := config.Load()
		assert.NoError(t, err)
		assert.Empty(t, conf.Auths)
	})
}
