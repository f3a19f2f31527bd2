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

package backend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/locahub/locahub/server/backend"
)

func newValidBackendConf() backend.Config {
	return backend.Config{
		AdminUser:     "admin",
		AdminPassword: "admin123",
		SecretKey:     "secret",
		TokenDuration: "24h",
		UserCacheSize: 100,
		UserCacheTTL:  "30s",
	}
}

func TestConfig(t *testing.T) {
	t.Run("validate test", func(t *testing.T) {
		validConf := newValidBackendConf()
		assert.NoError(t, validConf.Validate())

		conf1 := validConf
		conf1.SecretKey = ""
		assert.ErrorIs(t, conf1.Validate(), backend.ErrEmptySecretKey)

		conf2 := validConf
		conf2.TokenDuration = "1 day"
		assert.Error(t, conf2.Validate())

		conf3 := validConf
		conf3.UserCacheSize = 0
		assert.ErrorIs(t, conf3.Validate(), backend.ErrInvalidUserCacheSize)

		conf4 := validConf
		conf4.UserCacheTTL = "s"
		assert.Error(t, conf4.Validate())
	})

	t.Run("parse test", func(t *testing.T) {
		validConf := newValidBackendConf()

		assert.Equal(t, "24h0m0s", validConf.ParseTokenDuration().String())
		assert.Equal(t, "30s", validConf.ParseUserCacheTTL().String())
	})
}
