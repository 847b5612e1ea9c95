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
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	v1 "github.com/jobpaste/jobpaste/pkg/client/v1"
	"github.com/jobpaste/jobpaste/pkg/common/errcode"
	"github.com/jobpaste/jobpaste/pkg/flash"
	"github.com/jobpaste/jobpaste/pkg/model"
	"github.com/jobpaste/jobpaste/pkg/router"
)

const (
	MsgLoginSucceeded  = "登入成功"
	MsgSignupSucceeded = "註冊成功，請登入"
	MsgLoggedOut       = "已登出"
)

type AuthView struct {
	api      v1.AuthInterface
	session  Session
	messages FlashSink
	landing  string
}

func NewAuthView(api v1.AuthInterface, session Session, messages FlashSink, landing string) *AuthView {
	return &AuthView{api: api, session: session, messages: messages, landing: landing}
}

// Login stores the returned token and answers where to go next: redirect when
// it is a local path, the landing route otherwise.
func (v *AuthView) Login(ctx context.Context, email, password, redirect string) (string, error) {
	resp, err := v.api.Login(ctx, &model.LoginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	token := resp.BearerToken()
	if token == "" {
		v.messages.Set(errcode.MsgUnexpected, flash.LevelError)
		return "", fmt.Errorf("login response carries no token")
	}
	if err := v.session.SetToken(token); err != nil {
		log.Warnf("token kept in memory only: %v", err)
	}
	v.messages.Set(MsgLoginSucceeded, flash.LevelSuccess)
	return v.Target(redirect), nil
}

func (v *AuthView) Target(redirect string) string {
	if redirect != "" && router.IsLocalPath(redirect) && !isLoginPath(redirect) {
		return redirect
	}
	return v.landing
}

func (v *AuthView) Signup(ctx context.Context, request *model.SignupRequest) (*model.User, error) {
	user, err := v.api.Signup(ctx, request)
	if err != nil {
		return nil, err
	}
	v.messages.Set(MsgSignupSucceeded, flash.LevelSuccess)
	return user, nil
}

func (v *AuthView) Logout() error {
	if err := v.session.Logout(); err != nil {
		return err
	}
	v.messages.Set(MsgLoggedOut, flash.LevelSuccess)
	return nil
}

func isLoginPath(target string) bool {
	loc, err := router.ParseLocation(target)
	return err == nil && loc.Path == router.LoginPath
}
