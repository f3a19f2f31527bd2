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

// Package main is the entry point of the Locahub CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/locahub/locahub/cmd/locahub/assignment"
	"github.com/locahub/locahub/cmd/locahub/config"
	"github.com/locahub/locahub/cmd/locahub/project"
	"github.com/locahub/locahub/cmd/locahub/user"
)

const envPrefix = "LOCAHUB"

var rootCmd = &cobra.Command{
	Use:           "locahub",
	Short:         "Coordination of media localization projects",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Run executes CLI.
func Run() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}

	return 0
}

// loadEnv reads the .env file of the working directory when there is one.
func loadEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
	}
}

// readPassword reads a password from the terminal without echoing it.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	bytePassword, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(bytePassword), nil
}

func init() {
	cobra.OnInitialize(loadEnv)

	viper.SetEnvPrefix(envPrefix)
	_ = viper.BindEnv(config.KeyServerAddr, envPrefix+"_SERVER_ADDR")
	_ = viper.BindEnv(config.KeyHome, envPrefix+"_HOME")

	rootCmd.PersistentFlags().String("server-addr", "", "Address of the Locahub server (env LOCAHUB_SERVER_ADDR)")
	_ = viper.BindPFlag(config.KeyServerAddr, rootCmd.PersistentFlags().Lookup("server-addr"))

	rootCmd.AddCommand(project.SubCmd)
	rootCmd.AddCommand(assignment.SubCmd)
	rootCmd.AddCommand(user.SubCmd)
}
