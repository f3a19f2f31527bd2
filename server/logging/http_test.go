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

package logging

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/locahub/locahub/pkg/errors"
)

func TestToHTTPLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected HTTPLogLevel
	}{
		{"nil error", nil, HTTPLogDebug},
		{"context canceled", context.Canceled, HTTPLogDebug},
		{"invalid argument", pkgerrors.InvalidArgument("invalid"), HTTPLogInfo},
		{"wrapped not found", fmt.Errorf("find: %w", pkgerrors.NotFound("not found")), HTTPLogInfo},
		{"unauthenticated", pkgerrors.Unauthenticated("auth failed"), HTTPLogWarn},
		{"permission denied", pkgerrors.PermissionDenied("no permission"), HTTPLogWarn},
		{"failed precondition", pkgerrors.FailedPrecond("conflict"), HTTPLogWarn},
		{"resource exhausted", pkgerrors.ResourceExhausted("slow down"), HTTPLogWarn},
		{"unavailable", pkgerrors.Unavailable("db down"), HTTPLogError},
		{"plain error", errors.New("regular error"), HTTPLogError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, toHTTPLogLevel(tt.err))
		})
	}
}

func TestHTTPLogLevelString(t *testing.T) {
	assert.Equal(t, "debug", HTTPLogDebug.String())
	assert.Equal(t, "info", HTTPLogInfo.String())
	assert.Equal(t, "warn", HTTPLogWarn.String())
	assert.Equal(t, "error", HTTPLogError.String())
	assert.Equal(t, "warn", HTTPLogLevel(999).String())
}
