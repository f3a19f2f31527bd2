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

package users

import (
	"context"

	"github.com/locahub/locahub/api/types"
)

// callerKey is the key for the context.Context.
type callerKey struct{}

// From returns the caller from the context, or nil.
func From(ctx context.Context) *types.Caller {
	caller, _ := ctx.Value(callerKey{}).(*types.Caller)
	return caller
}

// With returns a new context with the given caller.
func With(ctx context.Context, caller *types.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}
