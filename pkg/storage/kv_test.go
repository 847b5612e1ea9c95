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

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewKV(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		want    string
		wantErr bool
	}{
		{name: "disk", config: Config{Driver: DiskType, Dir: t.TempDir()}, want: DiskType},
		{name: "mem", config: Config{Driver: MemType}, want: MemType},
		{name: "disk without dir", config: Config{Driver: DiskType}, wantErr: true},
		{name: "unknown driver", config: Config{Driver: "tikv"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv, err := NewKV(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			defer kv.Close()
			assert.Equal(t, tt.want, kv.Name())
		})
	}
}

func TestKV_GetSetDelete(t *testing.T) {
	for _, driver := range []string{DiskType, MemType} {
		t.Run(driver, func(t *testing.T) {
			kv, err := NewKV(Config{Driver: driver, Dir: t.TempDir()})
			assert.NoError(t, err)
			defer kv.Close()

			_, ok, err := kv.Get("authToken")
			assert.NoError(t, err)
			assert.False(t, ok)

			assert.NoError(t, kv.Set("authToken", "abc"))
			v, ok, err := kv.Get("authToken")
			assert.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "abc", v)

			assert.NoError(t, kv.Set("authToken", "def"))
			v, _, _ = kv.Get("authToken")
			assert.Equal(t, "def", v)

			assert.NoError(t, kv.Delete("authToken"))
			_, ok, err = kv.Get("authToken")
			assert.NoError(t, err)
			assert.False(t, ok)

			// deleting a missing key is fine
			assert.NoError(t, kv.Delete("authToken"))
		})
	}
}

func TestBadgerClient_Reopen(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewBadgerClient(Config{Driver: DiskType, Dir: dir})
	assert.NoError(t, err)
	assert.NoError(t, kv.Set("authToken", "persisted"))
	assert.NoError(t, kv.Close())

	kv, err = NewBadgerClient(Config{Driver: DiskType, Dir: dir})
	assert.NoError(t, err)
	defer kv.Close()
	v, ok, err := kv.Get("authToken")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "persisted", v)
}
