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
	"time"

	pkgerrors "github.com/locahub/locahub/pkg/errors"
)

// HTTPLogLevel represents the severity level of a handled request.
type HTTPLogLevel int

// Levels of a handled request.
const (
	HTTPLogDebug HTTPLogLevel = iota
	HTTPLogInfo
	HTTPLogWarn
	HTTPLogError
)

// String returns the string representation of HTTPLogLevel.
func (l HTTPLogLevel) String() string {
	switch l {
	case HTTPLogDebug:
		return "debug"
	case HTTPLogInfo:
		return "info"
	case HTTPLogError:
		return "error"
	}
	return "warn"
}

// toHTTPLogLevel maps the error of a handled request to a log level.
func toHTTPLogLevel(err error) HTTPLogLevel {
	if err == nil || errors.Is(err, context.Canceled) {
		return HTTPLogDebug
	}

	switch pkgerrors.StatusOf(err) {
	case pkgerrors.ErrCodeInvalidArgument, pkgerrors.ErrCodeNotFound, pkgerrors.ErrCodeAlreadyExists:
		return HTTPLogInfo
	case pkgerrors.ErrCodeUnauthenticated, pkgerrors.ErrCodePermissionDenied,
		pkgerrors.ErrCodeFailedPrecondition, pkgerrors.ErrCodeResourceExhausted:
		return HTTPLogWarn
	default:
		return HTTPLogError
	}
}

// LogHTTPError logs a failed request with the level of its error.
func LogHTTPError(logger Logger, route string, duration time.Duration, err error) {
	const template = "HTTP: %q %s => %q"

	switch toHTTPLogLevel(err) {
	case HTTPLogDebug:
		logger.Debugf(template, route, duration, err)
	case HTTPLogInfo:
		logger.Infof(template, route, duration, err)
	case HTTPLogWarn:
		logger.Warnf(template, route, duration, err)
	default:
		logger.Errorf(template, route, duration, err)
	}
}

// LogHTTPSuccess logs a successful request at debug level.
func LogHTTPSuccess(logger Logger, route string, duration time.Duration) {
	logger.Debugf("HTTP: %q %s", route, duration)
}
