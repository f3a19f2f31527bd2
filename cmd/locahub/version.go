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

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/locahub/locahub/admin"
	"github.com/locahub/locahub/cmd/locahub/config"
	"github.com/locahub/locahub/internal/version"
)

var (
	clientOnly bool
	output     string
)

var errInvalidOutput = errors.New(`--output must be "yaml" or "json"`)

// versionInfo is the version of the CLI and the health of the server.
type versionInfo struct {
	Version      string `json:"version" yaml:"version"`
	GoVersion    string `json:"goVersion" yaml:"goVersion"`
	BuildDate    string `json:"buildDate" yaml:"buildDate"`
	ServerStatus string `json:"serverStatus,omitempty" yaml:"serverStatus,omitempty"`
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of Locahub",
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" && output != "yaml" && output != "json" {
				return errInvalidOutput
			}

			info := versionInfo{
				Version:   version.Version,
				GoVersion: runtime.Version(),
				BuildDate: version.BuildDate,
			}

			if !clientOnly {
				status, err := serverStatus(cmd)
				if err != nil {
					cmd.PrintErrf("cannot reach server: %v\n", err)
				}
				info.ServerStatus = status
			}

			switch output {
			case "":
				cmd.Printf("Locahub Client: %s\n", info.Version)
				cmd.Printf("Go: %s\n", info.GoVersion)
				cmd.Printf("Build Date: %s\n", info.BuildDate)
				if info.ServerStatus != "" {
					cmd.Printf("Server: %s\n", info.ServerStatus)
				}
			case "yaml":
				marshalled, err := yaml.Marshal(info)
				if err != nil {
					return fmt.Errorf("marshal YAML: %w", err)
				}
				cmd.Println(string(marshalled))
			case "json":
				marshalled, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal JSON: %w", err)
				}
				cmd.Println(string(marshalled))
			}

			return nil
		},
	}
}

func serverStatus(cmd *cobra.Command) (string, error) {
	if err := config.Preload(cmd, nil); err != nil {
		return "", err
	}

	cli, err := admin.New(viper.GetString(config.KeyServerAddr), admin.WithLogger(zap.NewNop()))
	if err != nil {
		return "", err
	}
	defer func() {
		_ = cli.Close()
	}()

	return cli.Health(context.Background())
}

func init() {
	cmd := newVersionCmd()
	cmd.Flags().BoolVar(
		&clientOnly,
		"client",
		false,
		"Shows client version only (no server required).",
	)
	cmd.Flags().StringVarP(
		&output,
		"output",
		"o",
		"",
		"One of 'yaml' or 'json'.",
	)
	rootCmd.AddCommand(cmd)
}
