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

package web

import (
	"net/http"

	"github.com/jobpaste/jobpaste/pkg/app"
	"github.com/jobpaste/jobpaste/pkg/router"
)

// RequireSession applies the navigation guard of pagePath to form actions.
// Without a session the action answers 401 with the login location instead
// of redirecting, since the action cannot be replayed by a GET.
func RequireSession(a *app.App, pagePath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			to, err := a.Router.Resolve(pagePath)
			if err == nil {
				decision := router.Guard(to, a.Auth.IsLoggedIn(), a.Router.Landing())
				if decision.LoginRequired {
					Render(w, http.StatusUnauthorized, ErrorResponse{
						RequestID:    r.Header.Get(HeaderKeyRequestID),
						ErrorCode:    CodeLoginRequired,
						ErrorMessage: router.LoginRequiredMessage,
						Redirect:     decision.Redirect.FullPath(),
					})
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
