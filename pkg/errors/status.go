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

// Package errors provides status-carrying errors shared by the business
// logic, the storage layer and the REST server.
package errors

import (
	"fmt"
	"net/http"
)

// StatusCode classifies an error for the caller.
type StatusCode int

const (
	// ErrCodeInvalidArgument means the caller sent a malformed request.
	ErrCodeInvalidArgument StatusCode = 3

	// ErrCodeNotFound means the referenced resource does not exist.
	ErrCodeNotFound StatusCode = 5

	// ErrCodeAlreadyExists means the resource to create already exists.
	ErrCodeAlreadyExists StatusCode = 6

	// ErrCodePermissionDenied means the caller is not allowed to act on the
	// target resource.
	ErrCodePermissionDenied StatusCode = 7

	// ErrCodeResourceExhausted means a rate limit was hit.
	ErrCodeResourceExhausted StatusCode = 8

	// ErrCodeFailedPrecondition means the resource is not in a state that
	// allows the operation.
	ErrCodeFailedPrecondition StatusCode = 9

	// ErrCodeInternal means an invariant of the server was broken.
	ErrCodeInternal StatusCode = 13

	// ErrCodeUnavailable means a dependency such as the database is
	// temporarily unreachable.
	ErrCodeUnavailable StatusCode = 14

	// ErrCodeUnauthenticated means the request carries no valid credentials.
	ErrCodeUnauthenticated StatusCode = 16
)

// String returns the snake_case name of the code.
func (c StatusCode) String() string {
	switch c {
	case ErrCodeInvalidArgument:
		return "invalid_argument"
	case ErrCodeNotFound:
		return "not_found"
	case ErrCodeAlreadyExists:
		return "already_exists"
	case ErrCodePermissionDenied:
		return "permission_denied"
	case ErrCodeResourceExhausted:
		return "resource_exhausted"
	case ErrCodeFailedPrecondition:
		return "failed_precondition"
	case ErrCodeInternal:
		return "internal"
	case ErrCodeUnavailable:
		return "unavailable"
	case ErrCodeUnauthenticated:
		return "unauthenticated"
	default:
		return fmt.Sprintf("code_%d", int(c))
	}
}

// HTTPStatus returns the HTTP status that carries this code over REST.
// Errors without a status are reported as 500.
func (c StatusCode) HTTPStatus() int {
	switch c {
	case ErrCodeInvalidArgument:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeAlreadyExists, ErrCodeFailedPrecondition:
		return http.StatusConflict
	case ErrCodePermissionDenied:
		return http.StatusForbidden
	case ErrCodeResourceExhausted:
		return http.StatusTooManyRequests
	case ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case ErrCodeUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// IsClientError returns true if the code is caused by the request.
func (c StatusCode) IsClientError() bool {
	switch c {
	case ErrCodeInvalidArgument, ErrCodeNotFound, ErrCodeAlreadyExists,
		ErrCodePermissionDenied, ErrCodeResourceExhausted, ErrCodeFailedPrecondition,
		ErrCodeUnauthenticated:
		return true
	default:
		return false
	}
}

// IsServerError returns true if the code is caused by the server.
func (c StatusCode) IsServerError() bool {
	switch c {
	case ErrCodeInternal, ErrCodeUnavailable:
		return true
	default:
		return false
	}
}
