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

package httphelper_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/pkg/errors"
	"github.com/locahub/locahub/server/rest/httphelper"
)

func TestToErrorResponse(t *testing.T) {
	t.Run("status error test", func(t *testing.T) {
		err := fmt.Errorf("accept 1: %w", errors.FailedPrecond("project not complete").WithCode("ErrNotComplete"))
		status, resp := httphelper.ToErrorResponse(err)
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "ErrNotComplete", resp.Code)
		assert.Equal(t, "accept 1: project not complete", resp.Message)
		assert.Empty(t, resp.Details)
	})

	t.Run("status error without code test", func(t *testing.T) {
		status, resp := httphelper.ToErrorResponse(errors.NotFound("missing"))
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "not_found", resp.Code)
	})

	t.Run("validation error test", func(t *testing.T) {
		fields := &types.LoginFields{}
		status, resp := httphelper.ToErrorResponse(fields.Validate())
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "ErrInvalidArgument", resp.Code)
		assert.Len(t, resp.Details, 2)
		assert.Equal(t, "username", resp.Details[0].Field)
		assert.NotEmpty(t, resp.Details[0].Description)
	})

	t.Run("plain error test", func(t *testing.T) {
		status, resp := httphelper.ToErrorResponse(fmt.Errorf("dial: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "ErrInternal", resp.Code)
		assert.NotContains(t, resp.Message, "dial")
	})

	t.Run("context error test", func(t *testing.T) {
		status, _ := httphelper.ToErrorResponse(context.Canceled)
		assert.Equal(t, httphelper.StatusClientClosedRequest, status)

		status, _ = httphelper.ToErrorResponse(fmt.Errorf("find: %w", context.DeadlineExceeded))
		assert.Equal(t, http.StatusGatewayTimeout, status)
	})
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, "ok", httphelper.CodeOf(nil))
	assert.Equal(t, "ErrInvalidJSON", httphelper.CodeOf(httphelper.ErrInvalidJSON))
	assert.Equal(t, "internal", httphelper.CodeOf(fmt.Errorf("boom")))
}

func TestJSON(t *testing.T) {
	t.Run("write error test", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httphelper.WriteError(rec, errors.PermissionDenied("not the owner").WithCode("ErrNotOwner"))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"code":"ErrNotOwner","message":"not the owner"}`, rec.Body.String())
	})

	t.Run("decode test", func(t *testing.T) {
		var body struct {
			Action string `json:"action"`
		}
		req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"action":"accept"}`))
		assert.NoError(t, httphelper.DecodeJSON(req, &body))
		assert.Equal(t, "accept", body.Action)

		req = httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"action":`))
		err := httphelper.DecodeJSON(req, &body)
		assert.True(t, errors.IsStatus(err, errors.ErrCodeInvalidArgument))
		assert.Equal(t, "ErrInvalidJSON", errors.CodeOf(err))
	})
}
