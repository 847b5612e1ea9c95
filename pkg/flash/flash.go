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

package flash

import (
	"sync"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarn    Level = "warn"
	LevelError   Level = "error"
)

type Message struct {
	Text  string `json:"text"`
	Level Level  `json:"level"`
}

func (m Message) IsZero() bool {
	return m.Text == ""
}

// Store holds at most one unread message. Set overwrites whatever is there.
type Store struct {
	mu      sync.RWMutex
	message Message

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(Message)
}

func NewStore() *Store {
	return &Store{subs: make(map[int]func(Message))}
}

func (s *Store) Set(text string, level Level) {
	msg := Message{Text: text, Level: level}
	s.mu.Lock()
	s.message = msg
	s.mu.Unlock()
	s.notify(msg)
}

// Peek returns the current message without clearing it.
func (s *Store) Peek() (Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.message, !s.message.IsZero()
}

// Consume returns the current message and clears the slot, so a message is
// displayed once.
func (s *Store) Consume() (Message, bool) {
	s.mu.Lock()
	msg := s.message
	s.message = Message{}
	s.mu.Unlock()
	if msg.IsZero() {
		return msg, false
	}
	s.notify(Message{})
	return msg, true
}

func (s *Store) Clear() {
	s.mu.Lock()
	had := !s.message.IsZero()
	s.message = Message{}
	s.mu.Unlock()
	if had {
		s.notify(Message{})
	}
}

// Subscribe registers fn to be called with the new message on every change;
// an empty message means the slot was cleared. The returned func unsubscribes.
func (s *Store) Subscribe(fn func(Message)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify(msg Message) {
	s.subMu.Lock()
	fns := make([]func(Message), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn(msg)
	}
}
