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
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"

	"github.com/jobpaste/jobpaste/pkg/storage"
)

func newKV(t *testing.T, driver string) storage.KV {
	kv, err := storage.NewKV(storage.Config{Driver: driver, Dir: t.TempDir()})
	assert.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestAuthStore_SetTokenThenLoad(t *testing.T) {
	for _, driver := range []string{storage.DiskType, storage.MemType} {
		t.Run(driver, func(t *testing.T) {
			kv := newKV(t, driver)
			assert.NoError(t, NewAuthStore(kv).SetToken("abc"))

			fresh := NewAuthStore(kv)
			assert.False(t, fresh.IsLoggedIn())
			assert.NoError(t, fresh.LoadTokenFromStorage())
			assert.Equal(t, "abc", fresh.Token())
			assert.True(t, fresh.IsLoggedIn())
		})
	}
}

func TestAuthStore_LoadWithoutToken(t *testing.T) {
	store := NewAuthStore(newKV(t, storage.MemType))
	assert.NoError(t, store.LoadTokenFromStorage())
	assert.Equal(t, "", store.Token())
	assert.False(t, store.IsLoggedIn())
}

func TestAuthStore_Logout(t *testing.T) {
	kv := newKV(t, storage.DiskType)
	store := NewAuthStore(kv)
	assert.NoError(t, store.SetToken("abc"))
	assert.NoError(t, store.Logout())

	assert.Equal(t, "", store.Token())
	_, ok, err := kv.Get(TokenKey)
	assert.NoError(t, err)
	assert.False(t, ok)

	fresh := NewAuthStore(kv)
	assert.NoError(t, fresh.LoadTokenFromStorage())
	assert.False(t, fresh.IsLoggedIn())
}

func TestAuthStore_ConcurrentWritesAgree(t *testing.T) {
	kv := newKV(t, storage.MemType)
	s := NewAuthStore(kv)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = s.SetToken(fmt.Sprintf("tok-%d", i))
		}(i)
		go func() {
			defer wg.Done()
			_ = s.Logout()
		}()
	}
	wg.Wait()

	saved, ok, err := kv.Get(TokenKey)
	assert.NoError(t, err)
	if s.Token() == "" {
		assert.False(t, ok && saved != "", "storage kept %q after logout", saved)
	} else {
		assert.Equal(t, s.Token(), saved)
	}
}

func TestAuthStore_Subscribe(t *testing.T) {
	store := NewAuthStore(newKV(t, storage.MemType))
	var got []string
	cancel := store.Subscribe(func(token string) { got = append(got, token) })

	assert.NoError(t, store.SetToken("abc"))
	assert.NoError(t, store.Logout())
	cancel()
	assert.NoError(t, store.SetToken("def"))

	assert.Equal(t, []string{"abc", ""}, got)
}

type failingKV struct {
	storage.KV
}

func (failingKV) Set(key, value string) error { return errors.New("disk full") }

func TestAuthStore_SetTokenStorageFailure(t *testing.T) {
	store := NewAuthStore(failingKV{storage.NewMemClient()})
	err := store.SetToken("abc")
	assert.Error(t, err)
	assert.Equal(t, "abc", store.Token())
}

func TestAuthStore_Claims(t *testing.T) {
	store := NewAuthStore(newKV(t, storage.MemType))
	_, err := store.Claims()
	assert.Error(t, err)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "u1",
		"email": "me@example.com",
	}).SignedString([]byte("whatever"))
	assert.NoError(t, err)
	assert.NoError(t, store.SetToken(signed))

	claims, err := store.Claims()
	assert.NoError(t, err)
	assert.Equal(t, "me@example.com", claims["email"])

	// an opaque token is still a valid session
	assert.NoError(t, store.SetToken("opaque"))
	_, err = store.Claims()
	assert.Error(t, err)
	assert.True(t, store.IsLoggedIn())
}
