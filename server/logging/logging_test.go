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

package logging_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"github.com/locahub/locahub/server/logging"
)

func TestSetLogLevel(t *testing.T) {
	assert.NoError(t, logging.SetLogLevel("DEBUG"))
	assert.True(t, logging.Enabled(zapcore.DebugLevel))

	assert.NoError(t, logging.SetLogLevel("warn"))
	assert.False(t, logging.Enabled(zapcore.InfoLevel))
	assert.True(t, logging.Enabled(zapcore.ErrorLevel))

	assert.Error(t, logging.SetLogLevel("verbose"))
	assert.NoError(t, logging.SetLogLevel("info"))
}

func TestFileOutput(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "locahub.log")
	logging.SetFileOutput(&logging.FileConfig{Filename: filename, MaxSize: 1})
	defer logging.SetFileOutput(nil)

	logger := logging.New("test", logging.NewField("request_id", "req-1"))
	logger.Infof("hello %s", "file")
	_ = logger.Sync()

	data, err := os.ReadFile(filename)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"M":"hello file"`)
	assert.Contains(t, string(data), `"request_id":"req-1"`)
}

func TestFileConfig(t *testing.T) {
	assert.NoError(t, (&logging.FileConfig{}).Validate())
	assert.ErrorIs(t, (&logging.FileConfig{MaxAge: -1}).Validate(), logging.ErrInvalidFileConfig)
}

func TestContext(t *testing.T) {
	assert.Equal(t, logging.DefaultLogger(), logging.From(context.Background()))

	logger := logging.New("ctx")
	ctx := logging.With(context.Background(), logger)
	assert.Equal(t, logger, logging.From(ctx))
}
