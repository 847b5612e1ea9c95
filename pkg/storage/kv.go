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
	"fmt"
)

const (
	DiskType = "disk"
	MemType  = "mem"
)

type Config struct {
	Driver string
	// Dir holds the badger files of the disk driver.
	Dir string
}

// KV is a durable string key value store. A missing key is reported through
// the bool result, never as an error.
type KV interface {
	Name() string
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

func NewKV(config Config) (KV, error) {
	switch config.Driver {
	case DiskType:
		return NewBadgerClient(config)
	case MemType:
		return NewMemClient(), nil
	default:
		return nil, fmt.Errorf("not found kv driver name %s", config.Driver)
	}
}
