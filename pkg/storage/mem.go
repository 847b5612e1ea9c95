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
	cmap "github.com/orcaman/concurrent-map"
)

// memClient keeps values for the lifetime of the process only.
type memClient struct {
	db cmap.ConcurrentMap
}

func NewMemClient() KV {
	return &memClient{db: cmap.New()}
}

func (m *memClient) Name() string {
	return MemType
}

func (m *memClient) Get(key string) (string, bool, error) {
	v, ok := m.db.Get(key)
	if !ok {
		return "", false, nil
	}
	return v.(string), true, nil
}

func (m *memClient) Set(key, value string) error {
	m.db.Set(key, value)
	return nil
}

func (m *memClient) Delete(key string) error {
	m.db.Remove(key)
	return nil
}

func (m *memClient) Close() error {
	return nil
}
