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
	"errors"
	"fmt"
)

const (
	// DefaultFileMaxSize is the size in megabytes of a log file before it
	// gets rotated.
	DefaultFileMaxSize = 100

	// DefaultFileMaxBackups is the number of rotated files to keep.
	DefaultFileMaxBackups = 3

	// DefaultFileMaxAge is the number of days to keep rotated files.
	DefaultFileMaxAge = 28
)

// ErrInvalidFileConfig is returned when a rotation setting is negative.
var ErrInvalidFileConfig = errors.New("invalid log file config")

// FileConfig is the configuration of the rotating log file.
type FileConfig struct {
	// Filename is the file to write logs to. Empty disables the file output.
	Filename string `yaml:"Filename"`

	// MaxSize is the size in megabytes of a file before it gets rotated.
	MaxSize int `yaml:"MaxSize"`

	// MaxBackups is the number of rotated files to keep.
	MaxBackups int `yaml:"MaxBackups"`

	// MaxAge is the number of days to keep rotated files.
	MaxAge int `yaml:"MaxAge"`

	// Compress gzips rotated files.
	Compress bool `yaml:"Compress"`
}

// Validate validates this config.
func (c *FileConfig) Validate() error {
	if c.MaxSize < 0 || c.MaxBackups < 0 || c.MaxAge < 0 {
		return fmt.Errorf(
			"max size %d, max backups %d, max age %d: %w",
			c.MaxSize,
			c.MaxBackups,
			c.MaxAge,
			ErrInvalidFileConfig,
		)
	}

	return nil
}
