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
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/locahub/locahub/cmd/locahub/config"
)

var errPasswordsMismatch = errors.New("new passwords do not match")

func newPasswdCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "passwd",
		Short:   "Change the password of the logged in user",
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, newPassword, err := readPasswords()
			if err != nil {
				return err
			}

			cli, err := config.Dial()
			if err != nil {
				return err
			}
			defer func() {
				_ = cli.Close()
			}()

			ctx := context.Background()
			if err := cli.ChangePassword(ctx, password, newPassword); err != nil {
				return err
			}

			conf, err := config.Load()
			if err != nil {
				return err
			}
			delete(conf.Auths, viper.GetString(config.KeyServerAddr))
			if err := config.Save(conf); err != nil {
				return err
			}

			cmd.Println("password changed, log in again")
			return nil
		},
	}
}

func readPasswords() (string, string, error) {
	password, err := readPassword("Enter Password: ")
	if err != nil {
		return "", "", err
	}

	newPassword, err := readPassword("Enter New Password: ")
	if err != nil {
		return "", "", err
	}

	confirm, err := readPassword("Confirm New Password: ")
	if err != nil {
		return "", "", err
	}
	if newPassword != confirm {
		return "", "", errPasswordsMismatch
	}

	return password, newPassword, nil
}

func init() {
	rootCmd.AddCommand(newPasswdCmd())
}
