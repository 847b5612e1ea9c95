/*
Copyright (c) 2022 PaddlePaddle Authors. All Rights Reserve.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJobEditPayload(t *testing.T) {
	applied := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	job := &Job{
		ID:              "j1",
		Name:            "Backend Engineer",
		URL:             StringPtr("https://jobs.example.com/1"),
		Tier:            2,
		MinYearlySalary: Int64Ptr(1200000),
		CompanyID:       StringPtr("c1"),
		OwnerID:         "u1",
		AppliedAt:       &applied,
	}
	payload, err := JobEditPayload(job)
	assert.NoError(t, err)
	assert.Equal(t, "Backend Engineer", *payload.Name)
	assert.Equal(t, 2, *payload.Tier)
	assert.Equal(t, "https://jobs.example.com/1", *payload.URL)
	assert.Equal(t, int64(1200000), *payload.MinYearlySalary)
	assert.Equal(t, "c1", *payload.CompanyID)
	assert.Nil(t, payload.Description)
	assert.Nil(t, payload.MaxYearlySalary)
}

func TestCategoryEditPayload(t *testing.T) {
	payload, err := CategoryEditPayload(&Category{ID: "k1", Name: "remote", Color: "#ff0000"})
	assert.NoError(t, err)
	assert.Equal(t, "remote", *payload.Name)
	assert.Equal(t, "#ff0000", *payload.Color)
}

func TestPayloadOmitsUnsetFields(t *testing.T) {
	body, err := json.Marshal(&JobPayload{Tier: IntPtr(1)})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"tier":1}`, string(body))

	body, err = json.Marshal(&CompanyPayload{Name: StringPtr("Acme")})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"name":"Acme"}`, string(body))
}

func TestJob_SalaryRange(t *testing.T) {
	job := &Job{MaxYearlySalary: Int64Ptr(2000000)}
	min, max := job.SalaryRange()
	assert.Equal(t, int64(0), min)
	assert.Equal(t, int64(2000000), max)
}
