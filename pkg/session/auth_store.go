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

package session

import (
	"fmt"
	"sync"

	"github.com/dgrijalva/jwt-go"
	log "github.com/sirupsen/logrus"

	"github.com/jobpaste/jobpaste/pkg/storage"
)

// TokenKey is the storage key of the bearer token.
const TokenKey = "authToken"

// AuthStore holds the bearer token in memory and mirrors it to durable
// storage. Any non-empty token counts as logged in; it is never validated.
type AuthStore struct {
	// writeMu covers a memory write together with its storage write, so
	// memory and storage agree once concurrent writers are done.
	writeMu sync.Mutex
	mu      sync.RWMutex
	token   string
	kv      storage.KV

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(token string)
}

func NewAuthStore(kv storage.KV) *AuthStore {
	return &AuthStore{
		kv:   kv,
		subs: make(map[int]func(string)),
	}
}

func (s *AuthStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *AuthStore) IsLoggedIn() bool {
	return s.Token() != ""
}

// SetToken updates memory first, then storage. A storage failure is returned
// but the in-memory session stays usable.
func (s *AuthStore) SetToken(token string) error {
	s.writeMu.Lock()
	s.setMemory(token)
	err := s.kv.Set(TokenKey, token)
	s.writeMu.Unlock()
	s.notify(token)

	if err != nil {
		log.Errorf("persist %s failed: %v", TokenKey, err)
		return fmt.Errorf("persist %s failed: %v", TokenKey, err)
	}
	return nil
}

// LoadTokenFromStorage hydrates memory from storage. Nothing changes when no
// token, or an empty one, was stored.
func (s *AuthStore) LoadTokenFromStorage() error {
	s.writeMu.Lock()
	saved, ok, err := s.kv.Get(TokenKey)
	if err != nil {
		s.writeMu.Unlock()
		return fmt.Errorf("load %s failed: %v", TokenKey, err)
	}
	if !ok || saved == "" {
		s.writeMu.Unlock()
		return nil
	}
	s.setMemory(saved)
	s.writeMu.Unlock()
	s.notify(saved)
	return nil
}

func (s *AuthStore) Logout() error {
	s.writeMu.Lock()
	s.setMemory("")
	err := s.kv.Delete(TokenKey)
	s.writeMu.Unlock()
	s.notify("")

	if err != nil {
		log.Errorf("remove %s failed: %v", TokenKey, err)
		return fmt.Errorf("remove %s failed: %v", TokenKey, err)
	}
	return nil
}

func (s *AuthStore) setMemory(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Subscribe registers fn for every token change, "" meaning logged out. The
// returned func unsubscribes.
func (s *AuthStore) Subscribe(fn func(token string)) func() {
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

func (s *AuthStore) notify(token string) {
	s.subMu.Lock()
	fns := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn(token)
	}
}

// Claims decodes the token payload without verifying its signature. It is
// for display only and has no effect on the session.
func (s *AuthStore) Claims() (jwt.MapClaims, error) {
	token := s.Token()
	if token == "" {
		return nil, fmt.Errorf("not logged in")
	}
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("token is not a jwt: %v", err)
	}
	return claims, nil
}
