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
	"time"

	"github.com/go-chi/chi"
	"github.com/gorilla/websocket"

	"github.com/jobpaste/jobpaste/pkg/app"
	"github.com/jobpaste/jobpaste/pkg/flash"
)

const (
	flashStreamPath   = "/ws/flash"
	flashWriteTimeout = 5 * time.Second
	flashBacklog      = 16
)

var upgrader = websocket.Upgrader{}

// FlashRouter streams flash store changes over a websocket, so that an open
// page sees messages produced by other requests. An empty message means the
// slot was cleared.
type FlashRouter struct {
	app *app.App
}

func (fr *FlashRouter) Name() string {
	return "FlashRouter"
}

func (fr *FlashRouter) AddRouter(r chi.Router) {
	r.Get(flashStreamPath, fr.stream)
}

func (fr *FlashRouter) stream(w http.ResponseWriter, r *http.Request) {
	ctx := GetRequestContext(r)
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		ctx.Logging().Warnf("upgrade flash stream failed: %v", err)
		return
	}
	defer conn.Close()

	messages := make(chan flash.Message, flashBacklog)
	unsubscribe := fr.app.Flash.Subscribe(func(msg flash.Message) {
		select {
		case messages <- msg:
		default:
			ctx.Logging().Warnf("flash stream is lagging, drop message %q", msg.Text)
		}
	})
	defer unsubscribe()

	// the reader only notices the peer going away
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if msg, ok := fr.app.Flash.Peek(); ok {
		select {
		case messages <- msg:
		default:
		}
	}
	for {
		select {
		case <-closed:
			return
		case msg := <-messages:
			conn.SetWriteDeadline(time.Now().Add(flashWriteTimeout))
			if err := conn.WriteJSON(msg); err != nil {
				ctx.Logging().Debugf("flash stream closed: %v", err)
				return
			}
		}
	}
}
