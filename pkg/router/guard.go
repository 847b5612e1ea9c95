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
	"net/url"
)

// Decision is the outcome of a before hook. A nil Redirect lets the
// navigation proceed.
type Decision struct {
	Redirect *Location
	// LoginRequired tells the caller to record the login required message.
	LoginRequired bool
}

func Proceed() Decision {
	return Decision{}
}

func RedirectTo(loc Location) Decision {
	return Decision{Redirect: &loc}
}

// Guard decides a navigation to `to` from the session state alone:
//   - a protected target without a session goes to the login page, keeping
//     the target full path in the redirect query;
//   - the root path with a session goes to landing;
//   - anything else proceeds.
func Guard(to *RouteLocation, loggedIn bool, landing string) Decision {
	if to.Meta.RequiresAuth && !loggedIn {
		return Decision{
			Redirect: &Location{
				Path:  LoginPath,
				Query: url.Values{RedirectQueryKey: []string{to.FullPath()}},
			},
			LoginRequired: true,
		}
	}
	if to.Path == "/" && loggedIn {
		loc, err := ParseLocation(landing)
		if err != nil {
			loc = Location{Path: landing}
		}
		return RedirectTo(loc)
	}
	return Proceed()
}
