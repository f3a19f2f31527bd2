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

package user

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/locahub/locahub/api/types"
)

func TestParseSkills(t *testing.T) {
	skills, err := parseSkills([]string{"日语:翻译:0.8:A", "英语:后期:1:C"})
	assert.NoError(t, err)
	assert.Equal(t, []*types.Skill{
		{Language: "日语", Task: types.TaskTranslation, Price: 0.8, Rating: types.RatingA},
		{Language: "英语", Task: types.TaskPostProduction, Price: 1, Rating: types.RatingC},
	}, skills)

	_, err = parseSkills([]string{"日语:翻译:A"})
	assert.ErrorIs(t, err, errInvalidSkill)

	_, err = parseSkills([]string{"日语:翻译:cheap:A"})
	assert.ErrorIs(t, err, errInvalidSkill)

	skills, err = parseSkills(nil)
	assert.NoError(t, err)
	assert.Empty(t, skills)
}
