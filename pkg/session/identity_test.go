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
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"

	"github.com/jobpaste/jobpaste/pkg/storage"
)

func TestAuthStore_Identity(t *testing.T) {
	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	tests := []struct {
		name    string
		claims  jwt.MapClaims
		want    Identity
		wantErr bool
	}{
		{
			name:   "full claims",
			claims: jwt.MapClaims{"sub": "u1", "email": "me@example.com", "name": "Me", "exp": exp.Unix(), "iat": 1},
			want:   Identity{Subject: "u1", Email: "me@example.com", Name: "Me", ExpiresAt: exp.Unix()},
		},
		{
			name:   "numeric subject",
			claims: jwt.MapClaims{"sub": 42},
			want:   Identity{Subject: "42"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewAuthStore(newKV(t, storage.MemType))
			signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims).SignedString([]byte("k"))
			assert.NoError(t, err)
			assert.NoError(t, store.SetToken(signed))

			identity, err := store.Identity()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, *identity)
		})
	}
}

func TestIdentity_Expiry(t *testing.T) {
	assert.True(t, (&Identity{}).Expiry().IsZero())
	assert.Equal(t, int64(1700000000), (&Identity{ExpiresAt: 1700000000}).Expiry().Unix())

	store := NewAuthStore(newKV(t, storage.MemType))
	assert.NoError(t, store.SetToken("opaque"))
	_, err := store.Identity()
	assert.Error(t, err)
}
