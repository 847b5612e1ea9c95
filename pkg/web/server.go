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
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	log "github.com/sirupsen/logrus"

	"github.com/jobpaste/jobpaste/pkg/app"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	app     *app.App
	handler *chi.Mux
}

func NewServer(a *app.App) (*Server, error) {
	r := chi.NewRouter()
	if err := RegisterRouters(r, a); err != nil {
		return nil, err
	}
	return &Server{app: a, handler: r}, nil
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is done, then shuts the listener down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := s.app.Config.Web.Address()
	httpSvr := &http.Server{
		Addr:    addr,
		Handler: s.handler,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Infof("web shell listening on %s", addr)
		if err := httpSvr.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSvr.Shutdown(shutdownCtx); err != nil {
		log.Warnf("web shell forced to shutdown: %v", err)
		return err
	}
	log.Info("web shell exiting")
	return nil
}
