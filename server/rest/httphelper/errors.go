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

// Package httphelper provides helper functions for the REST server.
package httphelper

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"net/http"

	"github.com/locahub/locahub/internal/validation"
	"github.com/locahub/locahub/pkg/errors"
)

// StatusClientClosedRequest is reported when the client went away before the
// response was written.
const StatusClientClosedRequest = 499

// ErrInvalidJSON is returned when the request body cannot be decoded.
var ErrInvalidJSON = errors.InvalidArgument("invalid JSON body").WithCode("ErrInvalidJSON")

// Detail describes a violated field of a request.
type Detail struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []Detail `json:"details,omitempty"`
}

// ToErrorResponse returns the HTTP status and the body of the given error.
// If an error occurs while executing logic in API handler, the error should
// be converted so that the client can know more about the status of the
// request.
func ToErrorResponse(err error) (int, *ErrorResponse) {
	if goerrors.Is(err, context.Canceled) {
		return StatusClientClosedRequest, &ErrorResponse{Code: "ErrCanceled", Message: err.Error()}
	}
	if goerrors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, &ErrorResponse{Code: "ErrDeadlineExceeded", Message: err.Error()}
	}

	if status, resp, ok := fromStructError(err); ok {
		return status, resp
	}

	if status := errors.StatusOf(err); status != 0 {
		code := errors.CodeOf(err)
		if code == "" {
			code = status.String()
		}
		return status.HTTPStatus(), &ErrorResponse{Code: code, Message: err.Error()}
	}

	return http.StatusInternalServerError, &ErrorResponse{Code: "ErrInternal", Message: "internal error"}
}

// CodeOf returns a string representation of the given error for metrics.
func CodeOf(err error) string {
	if err == nil {
		return "ok"
	}

	status, resp := ToErrorResponse(err)
	if status == http.StatusInternalServerError {
		return "internal"
	}
	return resp.Code
}

// fromStructError converts a validation failure to a bad request.
func fromStructError(err error) (int, *ErrorResponse, bool) {
	var structErr *validation.StructError
	if !goerrors.As(err, &structErr) {
		return 0, nil, false
	}

	resp := &ErrorResponse{Code: "ErrInvalidArgument", Message: err.Error()}
	for _, violation := range structErr.Violations {
		resp.Details = append(resp.Details, Detail{
			Field:       violation.Field,
			Description: violation.Description,
		})
	}
	return http.StatusBadRequest, resp, true
}

// WriteError writes the given error as a JSON body.
func WriteError(w http.ResponseWriter, err error) {
	status, resp := ToErrorResponse(err)
	WriteJSON(w, status, resp)
}

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// DecodeJSON decodes the body of the request into v.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return ErrInvalidJSON
	}

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(v); err != nil {
		return errors.InvalidArgument("invalid JSON body: " + err.Error()).WithCode("ErrInvalidJSON")
	}
	return nil
}
