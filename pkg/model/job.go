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
	"time"
)

type Job struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     *string    `json:"description"`
	URL             *string    `json:"url"`
	Tier            int        `json:"tier"`
	MinYearlySalary *int64     `json:"min_yearly_salary"`
	MaxYearlySalary *int64     `json:"max_yearly_salary"`
	CompanyID       *string    `json:"company_id"`
	OwnerID         string     `json:"owner_id"`
	AppliedAt       *time.Time `json:"applied_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// JobPayload is the body of job create and update requests. Nil fields are
// left out so that an update only touches what is set.
type JobPayload struct {
	Name            *string    `json:"name,omitempty"`
	Description     *string    `json:"description,omitempty"`
	URL             *string    `json:"url,omitempty"`
	Tier            *int       `json:"tier,omitempty"`
	MinYearlySalary *int64     `json:"min_yearly_salary,omitempty"`
	MaxYearlySalary *int64     `json:"max_yearly_salary,omitempty"`
	CompanyID       *string    `json:"company_id,omitempty"`
	AppliedAt       *time.Time `json:"applied_at,omitempty"`
}

// SalaryRange returns the yearly salary bounds, zero when unknown.
func (j *Job) SalaryRange() (min, max int64) {
	if j.MinYearlySalary != nil {
		min = *j.MinYearlySalary
	}
	if j.MaxYearlySalary != nil {
		max = *j.MaxYearlySalary
	}
	return min, max
}
