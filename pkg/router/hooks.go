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

package router

import (
	"github.com/jobpaste/jobpaste/pkg/flash"
)

// BeforeHook runs before every transition. Returning a redirect stops the
// remaining hooks and restarts the navigation at the new location.
type BeforeHook func(to, from *RouteLocation) Decision

// AfterHook runs once a transition is committed and may set nav.Title.
type AfterHook func(nav *Navigation)

type SessionState interface {
	IsLoggedIn() bool
}

type FlashSink interface {
	Set(text string, level flash.Level)
}

// AuthGuard wires Guard to the live session and records the login required
// message whenever Guard asks for it.
func AuthGuard(session SessionState, sink FlashSink, landing string) BeforeHook {
	return func(to, from *RouteLocation) Decision {
		decision := Guard(to, session.IsLoggedIn(), landing)
		if decision.LoginRequired && sink != nil {
			sink.Set(LoginRequiredMessage, flash.LevelInfo)
		}
		return decision
	}
}

func DocumentTitle(defaultTitle string) AfterHook {
	return func(nav *Navigation) {
		nav.Title = TitleOf(nav.To.Meta, defaultTitle)
	}
}

func TitleOf(meta Meta, defaultTitle string) string {
	if meta.Title != "" {
		return meta.Title
	}
	return defaultTitle
}
