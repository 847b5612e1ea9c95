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
	"os"

	"github.com/dgraph-io/badger/v3"
	log "github.com/sirupsen/logrus"
)

type badgerClient struct {
	db *badger.DB
}

func NewBadgerClient(config Config) (KV, error) {
	if config.Dir == "" {
		return nil, fmt.Errorf("kv dir is not allowed empty for driver %s", DiskType)
	}
	if err := os.MkdirAll(config.Dir, 0o700); err != nil {
		return nil, fmt.Errorf("create kv dir %s failed: %v", config.Dir, err)
	}
	log.Debugf("badger kv path %v", config.Dir)
	opts := badger.DefaultOptions(config.Dir).WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger kv %s failed: %v", config.Dir, err)
	}
	return &badgerClient{db: db}, nil
}

func (c *badgerClient) Name() string {
	return DiskType
}

func (c *badgerClient) Get(key string) (string, bool, error) {
	var value []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return "", false, nil
	}
	if err != nil {
		log.Debugf("badger get key %s with err %v", key, err)
		return "", false, err
	}
	return string(value), true, nil
}

func (c *badgerClient) Set(key, value string) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
}

func (c *badgerClient) Delete(key string) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

func (c *badgerClient) Close() error {
	return c.db.Close()
}
