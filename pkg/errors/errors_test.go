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

package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/locahub/locahub/pkg/errors"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		code     errors.StatusCode
		name     string
		http     int
		isClient bool
	}{
		{errors.ErrCodeInvalidArgument, "invalid_argument", http.StatusBadRequest, true},
		{errors.ErrCodeNotFound, "not_found", http.StatusNotFound, true},
		{errors.ErrCodeAlreadyExists, "already_exists", http.StatusConflict, true},
		{errors.ErrCodePermissionDenied, "permission_denied", http.StatusForbidden, true},
		{errors.ErrCodeResourceExhausted, "resource_exhausted", http.StatusTooManyRequests, true},
		{errors.ErrCodeFailedPrecondition, "failed_precondition", http.StatusConflict, true},
		{errors.ErrCodeUnauthenticated, "unauthenticated", http.StatusUnauthorized, true},
		{errors.ErrCodeInternal, "internal", http.StatusInternalServerError, false},
		{errors.ErrCodeUnavailable, "unavailable", http.StatusServiceUnavailable, false},
		{errors.StatusCode(999), "code_999", http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.code.String())
			assert.Equal(t, tt.http, tt.code.HTTPStatus())
			assert.Equal(t, tt.isClient, tt.code.IsClientError())
		})
	}
}

func TestStatusError(t *testing.T) {
	errNotFound := errors.NotFound("assignment not found").WithCode("ErrAssignmentNotFound")

	t.Run("wrapped status test", func(t *testing.T) {
		wrapped := fmt.Errorf("find assignment 1: %w", errNotFound)
		assert.Equal(t, errors.ErrCodeNotFound, errors.StatusOf(wrapped))
		assert.Equal(t, "ErrAssignmentNotFound", errors.CodeOf(wrapped))
		assert.True(t, errors.Is(wrapped, errNotFound))
		assert.True(t, errors.IsClientError(wrapped))
		assert.False(t, errors.IsServerError(wrapped))
	})

	t.Run("plain error test", func(t *testing.T) {
		plain := fmt.Errorf("dial: connection refused")
		assert.Equal(t, errors.StatusCode(0), errors.StatusOf(plain))
		assert.Equal(t, "", errors.CodeOf(plain))
		assert.Equal(t, http.StatusInternalServerError, errors.StatusOf(plain).HTTPStatus())
	})

	t.Run("error info test", func(t *testing.T) {
		info := errors.ErrorInfoOf(fmt.Errorf("accept: %w", errors.FailedPrecond("not complete")))
		assert.Equal(t, errors.ErrCodeFailedPrecondition, info.Status)
		assert.Equal(t, "failed_precondition", info.StatusString)
		assert.Equal(t, "accept: not complete", info.Message)
		assert.True(t, info.IsClient)

		assert.Equal(t, errors.ErrorInfo{}, errors.ErrorInfoOf(nil))
	})
}
