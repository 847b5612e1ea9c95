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

package app

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/jobpaste/jobpaste/pkg/client"
	"github.com/jobpaste/jobpaste/pkg/common/config"
	"github.com/jobpaste/jobpaste/pkg/common/http/core"
	"github.com/jobpaste/jobpaste/pkg/flash"
	"github.com/jobpaste/jobpaste/pkg/router"
	"github.com/jobpaste/jobpaste/pkg/session"
	"github.com/jobpaste/jobpaste/pkg/storage"
	"github.com/jobpaste/jobpaste/pkg/version"
	"github.com/jobpaste/jobpaste/pkg/view"
)

// App is the application context shared by the cli and the web shell.
type App struct {
	Config  *config.Config
	KV      storage.KV
	Auth    *session.AuthStore
	Flash   *flash.Store
	Clients *client.ClientSet
	Router  *router.Router
	Views   *view.Set
}

// New opens storage, restores the saved session and wires the api client and
// the router hooks onto the stores.
func New(conf *config.Config) (*App, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	endpoint, err := conf.API.Endpoint()
	if err != nil {
		return nil, err
	}

	kv, err := storage.NewKV(storage.Config{Driver: conf.Storage.Driver, Dir: conf.Storage.Dir})
	if err != nil {
		return nil, err
	}
	auth := session.NewAuthStore(kv)
	if err := auth.LoadTokenFromStorage(); err != nil {
		kv.Close()
		return nil, err
	}
	messages := flash.NewStore()

	clients := client.NewForConfig(&core.ClientConfiguration{
		Endpoint:  endpoint,
		Timeout:   conf.API.Timeout(),
		UserAgent: version.UserAgent(),
	}, auth, messages)

	r, err := router.NewForLayout(conf.Router.Layout, conf.Router.LandingPath, conf.Router.CacheSize)
	if err != nil {
		kv.Close()
		return nil, fmt.Errorf("init router failed: %v", err)
	}
	r.BeforeEach(router.AuthGuard(auth, messages, r.Landing()))
	r.AfterEach(router.DocumentTitle(router.DefaultTitle))

	log.Debugf("app ready, api endpoint: %s, storage: %s, layout: %s, logged in: %v",
		endpoint, kv.Name(), conf.Router.Layout, auth.IsLoggedIn())
	return &App{
		Config:  conf,
		KV:      kv,
		Auth:    auth,
		Flash:   messages,
		Clients: clients,
		Router:  r,
		Views:   view.NewSet(clients.APIV1(), auth, messages, r.Landing()),
	}, nil
}

func (a *App) Close() error {
	if a.KV == nil {
		return nil
	}
	return a.KV.Close()
}
