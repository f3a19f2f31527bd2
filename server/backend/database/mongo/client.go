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

// Package mongo implements database interfaces using MongoDB.
package mongo

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	gotime "time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/server/backend/database"
	"github.com/locahub/locahub/server/logging"
)

// Client is a client that connects to Mongo DB and reads or saves Locahub data.
type Client struct {
	config *Config
	client *mongo.Client
}

// Dial creates an instance of Client and dials the given MongoDB.
func Dial(conf *Config) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), conf.ParseConnectionTimeout())
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(conf.ConnectionURI).
		SetRegistry(NewRegistry())

	if conf.MonitoringEnabled {
		threshold, err := gotime.ParseDuration(conf.MonitoringSlowQueryThreshold)
		if err != nil {
			return nil, fmt.Errorf("parse slow query threshold: %w", err)
		}

		monitor := NewQueryMonitor(&MonitorConfig{
			Enabled:            conf.MonitoringEnabled,
			SlowQueryThreshold: threshold,
		})
		clientOptions.SetMonitor(monitor.CreateCommandMonitor())
	}

	client, err := mongo.Connect(clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	ctxPing, cancelPing := context.WithTimeout(ctx, conf.ParsePingTimeout())
	defer cancelPing()

	if err := client.Ping(ctxPing, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	if err := ensureIndexes(ctx, client.Database(conf.Database)); err != nil {
		return nil, err
	}

	logging.DefaultLogger().Infof("MongoDB connected, URI: %s, DB: %s", conf.ConnectionURI, conf.Database)

	return &Client{
		config: conf,
		client: client,
	}, nil
}

// Close all resources of this client.
func (c *Client) Close() error {
	if err := c.client.Disconnect(context.Background()); err != nil {
		return fmt.Errorf("close mongo client: %w", err)
	}

	return nil
}

// EnsureDefaultAdminInfo creates the default admin if it does not exist.
func (c *Client) EnsureDefaultAdminInfo(
	ctx context.Context,
	username,
	password string,
) (*database.UserInfo, error) {
	hashedPassword, err := database.HashedPassword(password)
	if err != nil {
		return nil, err
	}

	candidate := database.NewUserInfo(username, hashedPassword, username, types.RoleAdmin)
	result := c.collection(ColUsers).FindOneAndUpdate(ctx, bson.M{
		"username": username,
	}, bson.M{
		"$setOnInsert": bson.M{
			"hashed_password": candidate.HashedPassword,
			"name":            candidate.Name,
			"role":            candidate.Role,
			"status":          candidate.Status,
			"phone":           "",
			"email":           "",
			"skills":          bson.A{},
			"created_at":      candidate.CreatedAt,
			"updated_at":      candidate.UpdatedAt,
		},
	}, options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After))

	info := &database.UserInfo{}
	if err := result.Decode(info); err != nil {
		return nil, fmt.Errorf("upsert default admin %s: %w", username, err)
	}

	return info, nil
}

// CreateUserInfo creates a new user with its skills embedded.
func (c *Client) CreateUserInfo(
	ctx context.Context,
	info *database.UserInfo,
	skills []*database.SkillInfo,
) (*database.UserInfo, error) {
	user := info.DeepCopy()
	user.ID = newID()

	if _, err := c.collection(ColUsers).InsertOne(ctx, bson.M{
		"_id":             user.ID,
		"username":        user.Username,
		"hashed_password": user.HashedPassword,
		"name":            user.Name,
		"role":            user.Role,
		"status":          user.Status,
		"phone":           user.Phone,
		"email":           user.Email,
		"skills":          embedSkills(user.ID, skills),
		"created_at":      user.CreatedAt,
		"updated_at":      user.UpdatedAt,
	}); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("create user %s: %w", info.Username, database.ErrUserAlreadyExists)
		}

		return nil, fmt.Errorf("create user info: %w", err)
	}

	return user, nil
}

// FindUserInfoByID returns a user by ID.
func (c *Client) FindUserInfoByID(ctx context.Context, id types.ID) (*database.UserInfo, error) {
	result := c.collection(ColUsers).FindOne(ctx, bson.M{
		"_id": id,
	})

	info := database.UserInfo{}
	if err := result.Decode(&info); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%s: %w", id, database.ErrUserNotFound)
		}
		return nil, fmt.Errorf("decode user info: %w", err)
	}

	return &info, nil
}

// FindUserInfoByUsername returns a user by username.
func (c *Client) FindUserInfoByUsername(ctx context.Context, username string) (*database.UserInfo, error) {
	result := c.collection(ColUsers).FindOne(ctx, bson.M{
		"username": username,
	})

	info := database.UserInfo{}
	if err := result.Decode(&info); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%s: %w", username, database.ErrUserNotFound)
		}
		return nil, fmt.Errorf("decode user info: %w", err)
	}

	return &info, nil
}

// FindUserInfosByIDs returns the users of the given IDs.
func (c *Client) FindUserInfosByIDs(ctx context.Context, ids []types.ID) ([]*database.UserInfo, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := c.collection(ColUsers).Find(ctx, bson.M{
		"_id": bson.M{"$in": ids},
	})
	if err != nil {
		return nil, fmt.Errorf("find user infos: %w", err)
	}

	var infos []*database.UserInfo
	if err := cursor.All(ctx, &infos); err != nil {
		return nil, fmt.Errorf("fetch user infos: %w", err)
	}

	return infos, nil
}

// ListUserInfos returns the users of the given roles whose name contains
// nameQuery, ordered by name.
func (c *Client) ListUserInfos(
	ctx context.Context,
	roles []types.Role,
	nameQuery string,
) ([]*database.UserInfo, error) {
	filter := bson.M{
		"role": bson.M{"$in": roles},
	}
	if nameQuery != "" {
		filter["name"] = bson.Regex{Pattern: escapeRegex(nameQuery)}
	}

	cursor, err := c.collection(ColUsers).Find(
		ctx,
		filter,
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list user infos: %w", err)
	}

	var infos []*database.UserInfo
	if err := cursor.All(ctx, &infos); err != nil {
		return nil, fmt.Errorf("fetch all user infos: %w", err)
	}

	return infos, nil
}

// UpdateUserInfo updates the user. Skills are replaced in the same document
// write.
func (c *Client) UpdateUserInfo(
	ctx context.Context,
	id types.ID,
	fields *types.UpdatableUserFields,
) (*database.UserInfo, error) {
	updatable := bson.M{
		"updated_at": gotime.Now(),
	}
	if fields.Name != nil {
		updatable["name"] = *fields.Name
	}
	if fields.Status != nil {
		updatable["status"] = *fields.Status
	}
	if fields.Phone != nil {
		updatable["phone"] = *fields.Phone
	}
	if fields.Email != nil {
		updatable["email"] = *fields.Email
	}
	if fields.Skills != nil {
		updatable["skills"] = embedSkills(id, database.NewSkillInfos(id, *fields.Skills))
	}

	result := c.collection(ColUsers).FindOneAndUpdate(ctx, bson.M{
		"_id": id,
	}, bson.M{
		"$set": updatable,
	}, options.FindOneAndUpdate().SetReturnDocument(options.After))

	info := &database.UserInfo{}
	if err := result.Decode(info); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%s: %w", id, database.ErrUserNotFound)
		}
		return nil, fmt.Errorf("decode user info: %w", err)
	}

	return info, nil
}

// ChangeUserPassword changes to new password for user.
func (c *Client) ChangeUserPassword(ctx context.Context, id types.ID, hashedNewPassword string) error {
	result, err := c.collection(ColUsers).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"hashed_password": hashedNewPassword,
			"updated_at":      gotime.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("change user password: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", id, database.ErrUserNotFound)
	}

	return nil
}

// DeleteUserInfo deletes the user and the skills embedded in it.
func (c *Client) DeleteUserInfo(ctx context.Context, id types.ID) error {
	result, err := c.collection(ColUsers).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete user info: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", id, database.ErrUserNotFound)
	}

	return nil
}

// ListSkillInfos returns the skills of the member.
func (c *Client) ListSkillInfos(ctx context.Context, memberID types.ID) ([]*database.SkillInfo, error) {
	result := c.collection(ColUsers).FindOne(
		ctx,
		bson.M{"_id": memberID},
		options.FindOne().SetProjection(bson.M{"skills": 1}),
	)

	var doc struct {
		Skills []*database.SkillInfo `bson:"skills"`
	}
	if err := result.Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("decode skills of %s: %w", memberID, err)
	}

	return doc.Skills, nil
}

// FindEligibleMemberInfos returns the active members holding a skill of the
// given language and task.
func (c *Client) FindEligibleMemberInfos(
	ctx context.Context,
	language string,
	task types.Task,
	query string,
) ([]*database.UserInfo, error) {
	filter := bson.M{
		"role":   types.RoleMember,
		"status": types.UserActive,
		"skills": bson.M{"$elemMatch": bson.M{
			"language": language,
			"task":     task,
		}},
	}
	if query != "" {
		pattern := bson.Regex{Pattern: escapeRegex(query)}
		filter["$or"] = bson.A{
			bson.M{"username": pattern},
			bson.M{"name": pattern},
		}
	}

	cursor, err := c.collection(ColUsers).Find(
		ctx,
		filter,
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find eligible members: %w", err)
	}

	var infos []*database.UserInfo
	if err := cursor.All(ctx, &infos); err != nil {
		return nil, fmt.Errorf("fetch eligible members: %w", err)
	}

	return infos, nil
}

// CreateProjectInfo creates the project and its assignments in a transaction.
func (c *Client) CreateProjectInfo(
	ctx context.Context,
	info *database.ProjectInfo,
	assignments []*database.AssignmentInfo,
) (*database.ProjectInfo, error) {
	info.ID = newID()
	docs := make([]any, 0, len(assignments))
	for _, assignment := range assignments {
		assignment.ID = newID()
		assignment.ProjectID = info.ID
		docs = append(docs, assignment)
	}

	if err := c.withTransaction(ctx, func(ctx context.Context) error {
		if _, err := c.collection(ColProjects).InsertOne(ctx, info); err != nil {
			return fmt.Errorf("create project info: %w", err)
		}
		if len(docs) == 0 {
			return nil
		}
		if _, err := c.collection(ColAssignments).InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("create assignment infos: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return info.DeepCopy(), nil
}

// FindProjectInfoByID returns a project by the given id.
func (c *Client) FindProjectInfoByID(ctx context.Context, id types.ID) (*database.ProjectInfo, error) {
	result := c.collection(ColProjects).FindOne(ctx, bson.M{
		"_id": id,
	})

	info := database.ProjectInfo{}
	if err := result.Decode(&info); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%s: %w", id, database.ErrProjectNotFound)
		}
		return nil, fmt.Errorf("decode project info: %w", err)
	}

	return &info, nil
}

// FindProjectInfosByIDs returns the projects of the given IDs.
func (c *Client) FindProjectInfosByIDs(ctx context.Context, ids []types.ID) ([]*database.ProjectInfo, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := c.collection(ColProjects).Find(ctx, bson.M{
		"_id": bson.M{"$in": ids},
	})
	if err != nil {
		return nil, fmt.Errorf("find project infos: %w", err)
	}

	var infos []*database.ProjectInfo
	if err := cursor.All(ctx, &infos); err != nil {
		return nil, fmt.Errorf("fetch project infos: %w", err)
	}

	return infos, nil
}

// ListProjectInfos returns the projects of the manager, newest first.
func (c *Client) ListProjectInfos(ctx context.Context, managerID types.ID) ([]*database.ProjectInfo, error) {
	cursor, err := c.collection(ColProjects).Find(
		ctx,
		bson.M{"manager_id": managerID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list project infos: %w", err)
	}

	var infos []*database.ProjectInfo
	if err := cursor.All(ctx, &infos); err != nil {
		return nil, fmt.Errorf("fetch project infos: %w", err)
	}

	return infos, nil
}

// AcceptProjectInfo marks the project of the manager as accepted.
func (c *Client) AcceptProjectInfo(
	ctx context.Context,
	managerID types.ID,
	id types.ID,
	acceptedAt gotime.Time,
) (*database.ProjectInfo, error) {
	result := c.collection(ColProjects).FindOneAndUpdate(ctx, bson.M{
		"_id":        id,
		"manager_id": managerID,
		"accepted":   false,
	}, bson.M{
		"$set": bson.M{
			"accepted":    true,
			"accepted_at": acceptedAt,
		},
	}, options.FindOneAndUpdate().SetReturnDocument(options.After))

	info := &database.ProjectInfo{}
	if err := result.Decode(info); err != nil {
		if err != mongo.ErrNoDocuments {
			return nil, fmt.Errorf("decode project info: %w", err)
		}

		existing, err := c.FindProjectInfoByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing.ManagerID != managerID {
			return nil, fmt.Errorf("%s: %w", id, database.ErrProjectNotFound)
		}
		return nil, fmt.Errorf("%s: %w", id, database.ErrProjectAlreadyAccepted)
	}

	return info, nil
}

// FindAssignmentInfoByID returns an assignment by the given id.
func (c *Client) FindAssignmentInfoByID(ctx context.Context, id types.ID) (*database.AssignmentInfo, error) {
	result := c.collection(ColAssignments).FindOne(ctx, bson.M{
		"_id": id,
	})

	info := database.AssignmentInfo{}
	if err := result.Decode(&info); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%s: %w", id, database.ErrAssignmentNotFound)
		}
		return nil, fmt.Errorf("decode assignment info: %w", err)
	}

	return &info, nil
}

// ListAssignmentInfosByProjectIDs returns the assignments of the projects.
func (c *Client) ListAssignmentInfosByProjectIDs(
	ctx context.Context,
	projectIDs []types.ID,
) ([]*database.AssignmentInfo, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}

	cursor, err := c.collection(ColAssignments).Find(
		ctx,
		bson.M{"project_id": bson.M{"$in": projectIDs}},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find assignment infos: %w", err)
	}

	var infos []*database.AssignmentInfo
	if err := cursor.All(ctx, &infos); err != nil {
		return nil, fmt.Errorf("fetch assignment infos: %w", err)
	}

	return infos, nil
}

// ListAssignmentInfosByMember returns the assignments of the member in the
// given status, oldest first.
func (c *Client) ListAssignmentInfosByMember(
	ctx context.Context,
	memberID types.ID,
	status types.AssignmentStatus,
) ([]*database.AssignmentInfo, error) {
	cursor, err := c.collection(ColAssignments).Find(
		ctx,
		bson.M{
			"member_id": memberID,
			"status":    status,
		},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find %s assignments of %s: %w", status, memberID, err)
	}

	var infos []*database.AssignmentInfo
	if err := cursor.All(ctx, &infos); err != nil {
		return nil, fmt.Errorf("fetch assignment infos: %w", err)
	}

	return infos, nil
}

// ListCompletedAssignmentInfos returns the assignments of the member
// completed within [from, to).
func (c *Client) ListCompletedAssignmentInfos(
	ctx context.Context,
	memberID types.ID,
	from gotime.Time,
	to gotime.Time,
) ([]*database.AssignmentInfo, error) {
	cursor, err := c.collection(ColAssignments).Find(
		ctx,
		bson.M{
			"member_id": memberID,
			"status":    types.AssignmentCompleted,
			"completed_at": bson.M{
				"$gte": from,
				"$lt":  to,
			},
		},
		options.Find().SetSort(bson.D{{Key: "completed_at", Value: 1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find completed assignments of %s: %w", memberID, err)
	}

	var infos []*database.AssignmentInfo
	if err := cursor.All(ctx, &infos); err != nil {
		return nil, fmt.Errorf("fetch assignment infos: %w", err)
	}

	return infos, nil
}

// UpdateAssignmentStatus applies the transition only while the stored status
// is still transition.From.
func (c *Client) UpdateAssignmentStatus(
	ctx context.Context,
	id types.ID,
	transition *database.AssignmentTransition,
) (*database.AssignmentInfo, error) {
	updatable := bson.M{
		"status":     transition.To,
		"updated_at": gotime.Now(),
	}
	if transition.To == types.AssignmentCompleted {
		updatable["completed_at"] = transition.CompletedAt
		updatable["deduction_note"] = transition.DeductionNote
	}

	result := c.collection(ColAssignments).FindOneAndUpdate(ctx, bson.M{
		"_id":    id,
		"status": transition.From,
	}, bson.M{
		"$set": updatable,
	}, options.FindOneAndUpdate().SetReturnDocument(options.After))

	info := &database.AssignmentInfo{}
	if err := result.Decode(info); err != nil {
		if err != mongo.ErrNoDocuments {
			return nil, fmt.Errorf("decode assignment info: %w", err)
		}

		if _, err := c.FindAssignmentInfoByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", id, database.ErrConflictOnUpdate)
	}

	return info, nil
}

// ReplaceAssignmentInfo replaces the rejected assignment with a pending one
// of the given member in a transaction.
func (c *Client) ReplaceAssignmentInfo(
	ctx context.Context,
	id types.ID,
	memberID types.ID,
) (*database.AssignmentInfo, error) {
	var replacement *database.AssignmentInfo
	if err := c.withTransaction(ctx, func(ctx context.Context) error {
		rejected, err := c.FindAssignmentInfoByID(ctx, id)
		if err != nil {
			return err
		}
		if !rejected.IsCurrent() {
			return fmt.Errorf("%s: %w", id, database.ErrAssignmentAlreadyReplaced)
		}
		if rejected.Status != types.AssignmentRejected {
			return fmt.Errorf("%s: %w", id, database.ErrConflictOnUpdate)
		}

		replacement = rejected.Replacement(memberID)
		replacement.ID = newID()
		if _, err := c.collection(ColAssignments).InsertOne(ctx, replacement); err != nil {
			return fmt.Errorf("create assignment info: %w", err)
		}

		result, err := c.collection(ColAssignments).UpdateOne(ctx, bson.M{
			"_id":         id,
			"status":      types.AssignmentRejected,
			"replaced_by": nil,
		}, bson.M{
			"$set": bson.M{
				"replaced_by": replacement.ID,
				"updated_at":  replacement.CreatedAt,
			},
		})
		if err != nil {
			return fmt.Errorf("update assignment info: %w", err)
		}
		if result.MatchedCount == 0 {
			return fmt.Errorf("%s: %w", id, database.ErrAssignmentAlreadyReplaced)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return replacement, nil
}

// withTransaction runs fn in a transaction. fn must use the given context for
// every operation that belongs to the transaction.
func (c *Client) withTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := c.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	if _, err := session.WithTransaction(ctx, func(ctx context.Context) (any, error) {
		return nil, fn(ctx)
	}); err != nil {
		return err
	}

	return nil
}

func (c *Client) collection(
	name string,
	opts ...options.Lister[options.CollectionOptions],
) *mongo.Collection {
	return c.client.
		Database(c.config.Database).
		Collection(name, opts...)
}

// embedSkills prepares the skills to be stored in the user document.
func embedSkills(memberID types.ID, skills []*database.SkillInfo) []*database.SkillInfo {
	embedded := make([]*database.SkillInfo, 0, len(skills))
	for _, skill := range skills {
		info := skill.DeepCopy()
		info.ID = newID()
		info.MemberID = memberID
		embedded = append(embedded, info)
	}
	return embedded
}

// escapeRegex escapes special characters by putting a backslash in front of it.
func escapeRegex(str string) string {
	regex := `\.+*?()|[]{}^$`
	if !strings.ContainsAny(str, regex) {
		return str
	}

	var buf bytes.Buffer
	for _, r := range str {
		if strings.ContainsRune(regex, r) {
			buf.WriteRune('\\')
		}
		buf.WriteRune(r)
	}
	return buf.String()
}
