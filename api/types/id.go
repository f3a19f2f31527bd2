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

// Package types provides the types used in the Locahub API. This package is
// used by both the server and the client.
package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/locahub/locahub/pkg/errors"
)

var (
	// ErrInvalidID is returned when the given ID is not a hex encoded ObjectID.
	ErrInvalidID = errors.InvalidArgument("invalid ID").WithCode("ErrInvalidID")
)

// ID represents ID of entity.
type ID string

// String returns a string representation of this ID.
func (id ID) String() string {
	return string(id)
}

// Validate returns error if this ID is not 12 hex encoded bytes.
func (id ID) Validate() error {
	b, err := hex.DecodeString(id.String())
	if err != nil || len(b) != 12 {
		return fmt.Errorf("%s: %w", id, ErrInvalidID)
	}

	return nil
}

// JoinIDs joins the given IDs with comma.
func JoinIDs(ids []ID) string {
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(id.String())
	}
	return sb.String()
}
