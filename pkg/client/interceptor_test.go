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

package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jobpaste/jobpaste/pkg/common/errcode"
	"github.com/jobpaste/jobpaste/pkg/common/http/core"
	"github.com/jobpaste/jobpaste/pkg/flash"
	"github.com/jobpaste/jobpaste/pkg/model"
	"github.com/jobpaste/jobpaste/pkg/session"
	"github.com/jobpaste/jobpaste/pkg/storage"
)

func newClientSet(t *testing.T, handler http.HandlerFunc) (*ClientSet, *session.AuthStore, *flash.Store) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	auth := session.NewAuthStore(storage.NewMemClient())
	messages := flash.NewStore()
	cs := NewForConfig(&core.ClientConfiguration{Endpoint: server.URL + "/api", Timeout: 2 * time.Second}, auth, messages)
	return cs, auth, messages
}

func TestBearerToken(t *testing.T) {
	var header []string
	cs, auth, _ := newClientSet(t, func(w http.ResponseWriter, r *http.Request) {
		header = append(header, r.Header.Get(core.HeaderAuthorization))
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := cs.APIV1().Job().List(context.Background())
	assert.NoError(t, err)

	assert.NoError(t, auth.SetToken("abc"))
	_, err = cs.APIV1().Job().List(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, []string{"", "Bearer abc"}, header)
}

func TestBearerToken_NoHeaderWhenEmpty(t *testing.T) {
	var present bool
	cs, _, _ := newClientSet(t, func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header[core.HeaderAuthorization]
		_, _ = w.Write([]byte(`[]`))
	})
	_, err := cs.APIV1().Company().List(context.Background())
	assert.NoError(t, err)
	assert.False(t, present)
}

func TestFlashOnError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "email taken beats status", status: http.StatusUnauthorized, body: `{"error":{"code":"EMAIL_TAKEN","message":"email exists"}}`, wantMsg: "此電子郵件已被註冊"},
		{name: "unauthorized", status: http.StatusUnauthorized, wantMsg: errcode.MsgUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantMsg: errcode.MsgForbidden},
		{name: "not found", status: http.StatusNotFound, body: `{}`, wantMsg: "指定的資訊不存在"},
		{name: "server", status: http.StatusInternalServerError, body: `oops`, wantMsg: errcode.MsgServer},
		{name: "other client error", status: http.StatusTeapot, wantMsg: errcode.MsgUnexpected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, _, messages := newClientSet(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			_, err := cs.APIV1().Job().Get(context.Background(), "j1")
			assert.Error(t, err)

			var respErr *core.ResponseError
			assert.True(t, errors.As(err, &respErr))
			assert.Equal(t, tt.status, respErr.StatusCode)

			msg, ok := messages.Peek()
			assert.True(t, ok)
			assert.Equal(t, flash.Message{Text: tt.wantMsg, Level: flash.LevelError}, msg)
		})
	}
}

func TestFlashOnError_Network(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	messages := flash.NewStore()
	cs := NewForConfig(&core.ClientConfiguration{Endpoint: endpoint, Timeout: time.Second}, nil, messages)
	_, err := cs.APIV1().Auth().Login(context.Background(), &model.LoginRequest{Email: "a@b.c", Password: "x"})

	var netErr *core.NetworkError
	assert.True(t, errors.As(err, &netErr))
	msg, _ := messages.Peek()
	assert.Equal(t, errcode.MsgNetwork, msg.Text)
}

func TestFlashOnError_DoesNotSwallow(t *testing.T) {
	messages := flash.NewStore()
	interceptor := FlashOnError(messages)
	assert.Nil(t, interceptor(errors.New("boom")))

	msg, _ := messages.Peek()
	assert.Equal(t, errcode.MsgUnexpected, msg.Text)
}
