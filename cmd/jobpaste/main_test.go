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

package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobpaste/jobpaste/pkg/common/config"
	"github.com/jobpaste/jobpaste/pkg/router"
	"github.com/jobpaste/jobpaste/pkg/view"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	os.Exit(m.Run())
}

func newFakeAPI(t *testing.T, token string) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"access_token":"`+token+`"}`)
	})
	mux.HandleFunc("/api/jobs", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			body, _ := io.ReadAll(r.Body)
			if !strings.Contains(string(body), `"name"`) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				io.WriteString(w, `{"error":{"code":"VALIDATION_ERROR"}}`)
				return
			}
			w.WriteHeader(http.StatusCreated)
			io.WriteString(w, `{"id":"j2","name":"SRE","tier":2,"applied_at":"2022-05-01T00:00:00Z"}`)
			return
		}
		io.WriteString(w, `[{"id":"j1","name":"Go developer","tier":1,"company_id":"c1","min_yearly_salary":80000,"max_yearly_salary":120000}]`)
	})
	mux.HandleFunc("/api/jobs/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/missing") {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"error":{"code":"JOB_NOT_FOUND"}}`)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/api/companies", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"id":"c1","name":"Acme","size":1200}]`)
	})
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"id":"k1","name":"backend","color":"#00ff00"}]`)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

type cliHarness struct {
	conf *config.Config
}

func newHarness(t *testing.T, token string) *cliHarness {
	api := newFakeAPI(t, token)
	conf := config.Default()
	conf.API.BaseURL = api.URL + "/api"
	conf.Storage.Dir = t.TempDir()
	return &cliHarness{conf: conf}
}

func (h *cliHarness) run(args ...string) (string, error) {
	out := &bytes.Buffer{}
	err := newApp(h.conf, out).Run(append([]string{"jobpaste"}, args...))
	return out.String(), err
}

func TestCLI_GuardedCommandsNeedSession(t *testing.T) {
	h := newHarness(t, "opaque")
	for _, args := range [][]string{
		{"job", "list"},
		{"company", "list"},
		{"category", "delete", "k1"},
		{"dashboard"},
		{"whoami"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := h.run(args...)
			require.Error(t, err)
			assert.Equal(t, router.LoginRequiredMessage, err.Error())
		})
	}
}

func TestCLI_LoginThenBrowse(t *testing.T) {
	h := newHarness(t, "opaque")

	out, err := h.run("login", "--email", "a@b.c", "--password", "secret", "--redirect", "/dashboard/company")
	require.NoError(t, err)
	assert.Contains(t, out, view.MsgLoginSucceeded)
	assert.Contains(t, out, router.RouteDashboardCompany)

	// the session survives across invocations
	out, err = h.run("job", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Go developer")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "80,000 - 120,000")

	out, err = h.run("company", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "1,200")

	out, err = h.run("company", "list", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Acme")
	assert.Contains(t, out, "size: 1200")
	_, err = h.run("company", "list", "--output", "xml")
	assert.Error(t, err)

	out, err = h.run("category", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "#00ff00")

	out, err = h.run("dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "Categories")

	out, err = h.run("whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "not a jwt")

	out, err = h.run("logout")
	require.NoError(t, err)
	assert.Contains(t, out, view.MsgLoggedOut)
	_, err = h.run("job", "list")
	assert.Error(t, err)
}

func TestCLI_Whoami(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-7"}).SignedString([]byte("k"))
	require.NoError(t, err)
	h := newHarness(t, token)

	_, err = h.run("login", "--email", "a@b.c", "--password", "secret")
	require.NoError(t, err)
	out, err := h.run("whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "sub")
	assert.Contains(t, out, "user-7")
}

func TestCLI_JobMutations(t *testing.T) {
	h := newHarness(t, "opaque")
	_, err := h.run("login", "--email", "a@b.c", "--password", "secret")
	require.NoError(t, err)

	tests := []struct {
		name    string
		args    []string
		wantOut string
		wantErr string
	}{
		{name: "create", args: []string{"job", "create", "--name", "SRE", "--applied-at", "2022-05-01"}, wantOut: view.MsgJobCreated},
		{name: "create without name is rejected by the api", args: []string{"job", "create", "--tier", "1"}, wantErr: "輸入的資料格式不正確"},
		{name: "bad date", args: []string{"job", "create", "--name", "SRE", "--applied-at", "May 1st"}, wantErr: "applied-at"},
		{name: "delete", args: []string{"job", "delete", "j1"}, wantOut: view.MsgJobDeleted},
		{name: "delete missing", args: []string{"job", "delete", "missing"}, wantErr: "找不到指定的職缺"},
		{name: "delete without id", args: []string{"job", "delete"}, wantErr: "exactly one id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := h.run(tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.wantOut)
		})
	}
}

func TestCLI_Nav(t *testing.T) {
	h := newHarness(t, "opaque")
	tests := []struct {
		path string
		want []string
	}{
		{path: "/about", want: []string{"關於求職快貼", router.RouteAbout}},
		{path: "/nowhere", want: []string{router.RouteNotFound, "not found"}},
		{path: "/dashboard/job", want: []string{router.RouteLogin, "/dashboard/job", router.LoginRequiredMessage}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			out, err := h.run("nav", tt.path)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}

	_, err := h.run("--layout", "grid", "nav", "/")
	assert.Error(t, err)
}

func TestConfigPathFromArgs(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "from-env.yaml")
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"jobpaste", "job", "list"}, want: "from-env.yaml"},
		{args: []string{"jobpaste", "--config", "a.yaml", "job", "list"}, want: "a.yaml"},
		{args: []string{"jobpaste", "-c", "b.yaml", "nav", "/"}, want: "b.yaml"},
		{args: []string{"jobpaste", "--layout", "flat", "--config=c.yaml", "serve"}, want: "c.yaml"},
		{args: []string{"jobpaste", "nav", "--", "--config"}, want: "from-env.yaml"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			assert.Equal(t, tt.want, configPathFromArgs(tt.args))
		})
	}
}

func TestInitConfig(t *testing.T) {
	path := t.TempDir() + "/jobpaste.yaml"
	require.NoError(t, os.WriteFile(path, []byte("router:\n  layout: flat\n"), 0o644))
	conf, err := initConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config.LayoutFlat, conf.Router.Layout)
	assert.Equal(t, conf, config.GlobalConfig)

	_, err = initConfig(t.TempDir() + "/missing.yaml")
	assert.Error(t, err)
}
