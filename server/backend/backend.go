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

// Package backend provides the backend implementation of Locahub.
// This package is responsible for managing the database and other
// resources required to run Locahub.
package backend

import (
	"context"
	"errors"
	gotime "time"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/pkg/cache"
	"github.com/locahub/locahub/server/backend/database"
	memdb "github.com/locahub/locahub/server/backend/database/memory"
	"github.com/locahub/locahub/server/backend/database/mongo"
	"github.com/locahub/locahub/server/logging"
	"github.com/locahub/locahub/server/profiling/prometheus"
)

// Backend manages Locahub's backend such as the database and the caches.
type Backend struct {
	Config *Config

	// DB is the database instance.
	DB database.Database

	// Metrics is used to expose metrics. It may be nil.
	Metrics *prometheus.Metrics

	// UserCache holds the users that recently issued requests. Entries are
	// removed whenever the user is updated or deleted.
	UserCache *cache.LRUWithExpires[types.ID, *database.UserInfo]

	// Clock returns the current time. Tests replace it to pin "now".
	Clock func() gotime.Time
}

// New creates a new instance of Backend.
func New(
	conf *Config,
	mongoConf *mongo.Config,
	metrics *prometheus.Metrics,
) (*Backend, error) {
	// 01. Create the user cache.
	userCache, err := cache.NewLRUWithExpires[types.ID, *database.UserInfo](
		conf.UserCacheSize,
		conf.ParseUserCacheTTL(),
		"users",
	)
	if err != nil {
		return nil, err
	}

	// 02. Create the database instance. If the MongoDB configuration is given,
	// create a MongoDB instance. Otherwise, create a memory database instance.
	var db database.Database
	if mongoConf != nil {
		db, err = mongo.Dial(mongoConf)
		if err != nil {
			return nil, err
		}
	} else {
		db, err = memdb.New()
		if err != nil {
			return nil, err
		}
	}

	// 03. Ensure the default admin. It is created only on first-run.
	if _, err := db.EnsureDefaultAdminInfo(
		context.Background(),
		conf.AdminUser,
		conf.AdminPassword,
	); err != nil {
		return nil, errors.Join(err, db.Close())
	}

	dbInfo := "memory"
	if mongoConf != nil {
		dbInfo = mongoConf.ConnectionURI
	}
	logging.DefaultLogger().Infof("backend created: db: %s", dbInfo)

	return &Backend{
		Config:    conf,
		DB:        db,
		Metrics:   metrics,
		UserCache: userCache,
		Clock:     gotime.Now,
	}, nil
}

// Now returns the current time of the backend clock.
func (b *Backend) Now() gotime.Time {
	return b.Clock()
}

// InvalidateUser drops the cached entry of the user.
func (b *Backend) InvalidateUser(id types.ID) {
	b.UserCache.Remove(id)
}

// Shutdown closes all resources of this instance.
func (b *Backend) Shutdown() error {
	if err := b.DB.Close(); err != nil {
		return err
	}

	stats := b.UserCache.Stats()
	logging.DefaultLogger().Infof(
		"backend stopped: user cache hits=%d misses=%d rate=%.2f%%",
		stats.Hits,
		stats.Misses,
		stats.HitRate(),
	)
	return nil
}
