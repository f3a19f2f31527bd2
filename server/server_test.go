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

package server_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locahub/locahub/server"
	"github.com/locahub/locahub/server/rest"
)

func TestLocahub(t *testing.T) {
	conf := server.NewConfig()
	conf.REST.Port = 21180
	conf.Profiling.Port = 21181

	locahub, err := server.New(conf)
	require.NoError(t, err)
	require.NoError(t, locahub.Start())

	resp, err := http.Get("http://" + locahub.RESTAddr() + rest.HealthPath)
	require.NoError(t, err)
	health := &rest.HealthResponse{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(health))
	assert.NoError(t, resp.Body.Close())
	assert.Equal(t, "SERVING", health.Status)

	assert.NoError(t, locahub.Shutdown(true))
	assert.NoError(t, locahub.Shutdown(true))

	select {
	case <-locahub.ShutdownCh():
	default:
		t.Fatal("shutdown channel is not closed")
	}
}
