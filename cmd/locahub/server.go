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
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/locahub/locahub/server"
	"github.com/locahub/locahub/server/backend/database/mongo"
	"github.com/locahub/locahub/server/logging"
)

var (
	gracefulTimeout = 10 * time.Second
)

var (
	flagConfPath string
	flagLogLevel string
	flagLogFile  string

	tokenDuration time.Duration
	userCacheTTL  time.Duration
	readTimeout   time.Duration

	mongoConnectionURI     string
	mongoConnectionTimeout time.Duration
	mongoDatabase          string
	mongoPingTimeout       time.Duration

	conf = server.NewConfig()
)

func newServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server [options]",
		Short: "Start Locahub server",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf.Backend.TokenDuration = tokenDuration.String()
			conf.Backend.UserCacheTTL = userCacheTTL.String()
			conf.REST.ReadTimeout = readTimeout.String()

			if mongoConnectionURI != "" {
				conf.Mongo = &mongo.Config{
					ConnectionURI:     mongoConnectionURI,
					ConnectionTimeout: mongoConnectionTimeout.String(),
					Database:          mongoDatabase,
					PingTimeout:       mongoPingTimeout.String(),
				}
			}

			if flagLogFile != "" {
				conf.LogFile = &logging.FileConfig{
					Filename:   flagLogFile,
					MaxSize:    logging.DefaultFileMaxSize,
					MaxBackups: logging.DefaultFileMaxBackups,
					MaxAge:     logging.DefaultFileMaxAge,
				}
			}

			// If config file is given, command-line arguments will be overwritten.
			if flagConfPath != "" {
				parsed, err := server.NewConfigFromFile(flagConfPath)
				if err != nil {
					return err
				}
				conf = parsed
			}

			if err := logging.SetLogLevel(flagLogLevel); err != nil {
				return err
			}

			l, err := server.New(conf)
			if err != nil {
				return err
			}

			if err := l.Start(); err != nil {
				return err
			}

			if code := handleSignal(l); code != 0 {
				return fmt.Errorf("exit code: %d", code)
			}

			return nil
		},
	}
}

func handleSignal(r *server.Locahub) int {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	var sig os.Signal
	select {
	case s := <-sigCh:
		sig = s
	case <-r.ShutdownCh():
		// locahub is already shutdown
		return 0
	}

	graceful := false
	if sig == syscall.SIGINT || sig == syscall.SIGTERM {
		graceful = true
	}

	gracefulCh := make(chan struct{})
	go func() {
		if err := r.Shutdown(graceful); err != nil {
			return
		}
		close(gracefulCh)
	}()

	select {
	case <-sigCh:
		return 1
	case <-time.After(gracefulTimeout):
		return 1
	case <-gracefulCh:
		return 0
	}
}

func init() {
	cmd := newServerCmd()
	cmd.Flags().StringVarP(
		&flagConfPath,
		"config",
		"c",
		"",
		"Config path",
	)
	cmd.Flags().StringVarP(
		&flagLogLevel,
		"log-level",
		"l",
		"info",
		"Log level: debug, info, warn, error, panic, fatal",
	)
	cmd.Flags().StringVar(
		&flagLogFile,
		"log-file",
		"",
		"Rotating log file; logs go to stdout only when empty",
	)
	cmd.Flags().IntVar(
		&conf.REST.Port,
		"rest-port",
		server.DefaultRESTPort,
		"REST port",
	)
	cmd.Flags().StringVar(
		&conf.REST.CertFile,
		"rest-cert-file",
		"",
		"REST certification file's path",
	)
	cmd.Flags().StringVar(
		&conf.REST.KeyFile,
		"rest-key-file",
		"",
		"REST key file's path",
	)
	cmd.Flags().Int64Var(
		&conf.REST.MaxRequestBytes,
		"rest-max-request-bytes",
		server.DefaultRESTMaxRequestBytes,
		"Maximum request body size in bytes the server will accept.",
	)
	cmd.Flags().DurationVar(
		&readTimeout,
		"rest-read-timeout",
		server.DefaultRESTReadTimeout,
		"Maximum duration for reading an entire request.",
	)
	cmd.Flags().Float64Var(
		&conf.REST.LoginRateLimit,
		"login-rate-limit",
		server.DefaultLoginRateLimit,
		"Login attempts per second allowed for a client address.",
	)
	cmd.Flags().IntVar(
		&conf.REST.LoginBurst,
		"login-burst",
		server.DefaultLoginBurst,
		"Login attempts a client address may make at once.",
	)
	cmd.Flags().IntVar(
		&conf.Profiling.Port,
		"profiling-port",
		server.DefaultProfilingPort,
		"Profiling port; 0 disables the profiling server",
	)
	cmd.Flags().BoolVar(
		&conf.Profiling.EnablePprof,
		"enable-pprof",
		false,
		"Enable runtime profiling data via HTTP server.",
	)
	cmd.Flags().StringVar(
		&mongoConnectionURI,
		"mongo-connection-uri",
		"",
		"MongoDB's connection URI; the memory database is used when empty",
	)
	cmd.Flags().DurationVar(
		&mongoConnectionTimeout,
		"mongo-connection-timeout",
		server.DefaultMongoConnectionTimeout,
		"Mongo DB's connection timeout",
	)
	cmd.Flags().StringVar(
		&mongoDatabase,
		"mongo-database",
		server.DefaultMongoDatabase,
		"Locahub's database name in MongoDB",
	)
	cmd.Flags().DurationVar(
		&mongoPingTimeout,
		"mongo-ping-timeout",
		server.DefaultMongoPingTimeout,
		"Mongo DB's ping timeout",
	)
	cmd.Flags().StringVar(
		&conf.Backend.AdminUser,
		"backend-admin-user",
		server.DefaultAdminUser,
		"The name of the default admin user, who has full permissions.",
	)
	cmd.Flags().StringVar(
		&conf.Backend.AdminPassword,
		"backend-admin-password",
		server.DefaultAdminPassword,
		"The password of the default admin.",
	)
	cmd.Flags().StringVar(
		&conf.Backend.SecretKey,
		"backend-secret-key",
		server.DefaultSecretKey,
		"The secret key for signing authentication tokens.",
	)
	cmd.Flags().DurationVar(
		&tokenDuration,
		"backend-token-duration",
		server.DefaultTokenDuration,
		"The duration of the authentication token.",
	)
	cmd.Flags().IntVar(
		&conf.Backend.UserCacheSize,
		"backend-user-cache-size",
		server.DefaultUserCacheSize,
		"The number of users kept in the cache.",
	)
	cmd.Flags().DurationVar(
		&userCacheTTL,
		"backend-user-cache-ttl",
		server.DefaultUserCacheTTL,
		"The time a cached user stays valid.",
	)

	rootCmd.AddCommand(cmd)
}
