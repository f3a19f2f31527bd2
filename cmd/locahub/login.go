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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/locahub/locahub/admin"
	"github.com/locahub/locahub/cmd/locahub/config"
)

var (
	username string
	password string
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "login",
		Short:   "Log in to the Locahub server",
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				read, err := readPassword("Enter Password: ")
				if err != nil {
					return err
				}
				password = read
			}

			serverAddr := viper.GetString(config.KeyServerAddr)
			cli, err := admin.New(serverAddr, admin.WithLogger(zap.NewNop()))
			if err != nil {
				return err
			}
			defer func() {
				_ = cli.Close()
			}()

			ctx := context.Background()
			token, user, err := cli.LogIn(ctx, username, password)
			if err != nil {
				return err
			}

			conf, err := config.Load()
			if err != nil {
				return err
			}
			conf.Auths[serverAddr] = token
			conf.ServerAddr = serverAddr
			if err := config.Save(conf); err != nil {
				return err
			}

			cmd.Printf("logged in as %s (%s)\n", user.Name, user.Role)
			return nil
		},
	}
}

func init() {
	cmd := newLoginCmd()
	cmd.Flags().StringVarP(
		&username,
		"username",
		"u",
		"",
		"Username",
	)
	cmd.Flags().StringVarP(
		&password,
		"password",
		"p",
		"",
		"Password (prompted when omitted)",
	)
	_ = cmd.MarkFlagRequired("username")
	rootCmd.AddCommand(cmd)
}
