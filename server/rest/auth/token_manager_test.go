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

package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/pkg/errors"
	"github.com/locahub/locahub/server/rest/auth"
)

func TestTokenManager(t *testing.T) {
	user := &types.User{ID: "6650f1a2b3c4d5e6f7a8b9c0", Role: types.RoleManager}

	t.Run("generate and verify test", func(t *testing.T) {
		manager := auth.NewTokenManager("secret", time.Hour)
		token, err := manager.Generate(user)
		assert.NoError(t, err)

		claims, err := manager.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, &types.Caller{ID: user.ID, Role: types.RoleManager}, claims.Caller())
	})

	t.Run("wrong secret test", func(t *testing.T) {
		token, err := auth.NewTokenManager("secret", time.Hour).Generate(user)
		assert.NoError(t, err)

		_, err = auth.NewTokenManager("other", time.Hour).Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
		assert.True(t, errors.IsStatus(err, errors.ErrCodeUnauthenticated))
	})

	t.Run("expired token test", func(t *testing.T) {
		token, err := auth.NewTokenManager("secret", -time.Minute).Generate(user)
		assert.NoError(t, err)

		_, err = auth.NewTokenManager("secret", time.Hour).Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("unexpected signing method test", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, auth.UserClaims{
			StandardClaims: jwt.StandardClaims{Subject: user.ID.String()},
			Role:           types.RoleAdmin,
		})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		assert.NoError(t, err)

		_, err = auth.NewTokenManager("secret", time.Hour).Verify(signed)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("token without role test", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.UserClaims{
			StandardClaims: jwt.StandardClaims{Subject: user.ID.String()},
		})
		signed, err := token.SignedString([]byte("secret"))
		assert.NoError(t, err)

		_, err = auth.NewTokenManager("secret", time.Hour).Verify(signed)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
