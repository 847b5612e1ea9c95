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

package view

import (
	v1 "github.com/jobpaste/jobpaste/pkg/client/v1"
	"github.com/jobpaste/jobpaste/pkg/flash"
)

// Session is the part of the auth store the views write to.
type Session interface {
	SetToken(token string) error
	Logout() error
}

type FlashSink interface {
	Set(text string, level flash.Level)
}

// Set groups the view models shared by the cli and the web shell.
type Set struct {
	Auth       *AuthView
	Dashboard  *Dashboard
	Jobs       *JobDashboard
	Companies  *CompanyDashboard
	Categories *CategoryDashboard
}

func NewSet(api v1.APIV1Interface, session Session, messages FlashSink, landing string) *Set {
	return &Set{
		Auth:       NewAuthView(api.Auth(), session, messages, landing),
		Dashboard:  NewDashboard(api.Job(), api.Company(), api.Category()),
		Jobs:       NewJobDashboard(api.Job(), api.Company(), messages),
		Companies:  NewCompanyDashboard(api.Company(), messages),
		Categories: NewCategoryDashboard(api.Category(), messages),
	}
}
