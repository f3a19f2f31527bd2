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

package database

import (
	"github.com/locahub/locahub/api/types"
)

// SkillInfo is a skill of a member.
type SkillInfo struct {
	ID       types.ID     `bson:"_id"`
	MemberID types.ID     `bson:"member_id"`
	Language string       `bson:"language"`
	Task     types.Task   `bson:"task"`
	Price    float64      `bson:"price"`
	Rating   types.Rating `bson:"rating"`
}

// NewSkillInfos creates the SkillInfos of the given skills.
func NewSkillInfos(memberID types.ID, skills []*types.Skill) []*SkillInfo {
	infos := make([]*SkillInfo, 0, len(skills))
	for _, skill := range skills {
		infos = append(infos, &SkillInfo{
			MemberID: memberID,
			Language: skill.Language,
			Task:     skill.Task,
			Price:    skill.Price,
			Rating:   skill.Rating,
		})
	}
	return infos
}

// Matches returns whether the skill covers the given language and task.
func (i *SkillInfo) Matches(language string, task types.Task) bool {
	return i.Language == language && i.Task == task
}

// DeepCopy returns a deep copy of the SkillInfo.
func (i *SkillInfo) DeepCopy() *SkillInfo {
	if i == nil {
		return nil
	}

	clone := *i
	return &clone
}

// ToSkill converts the SkillInfo to a Skill.
func (i *SkillInfo) ToSkill() *types.Skill {
	return &types.Skill{
		Language: i.Language,
		Task:     i.Task,
		Price:    i.Price,
		Rating:   i.Rating,
	}
}

// ToSkills converts the given SkillInfos to Skills.
func ToSkills(infos []*SkillInfo) []*types.Skill {
	skills := make([]*types.Skill, 0, len(infos))
	for _, info := range infos {
		skills = append(skills, info.ToSkill())
	}
	return skills
}
