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
	"time"

	"github.com/mitchellh/mapstructure"
)

// Identity is the part of the token claims worth showing to the user.
type Identity struct {
	Subject   string `mapstructure:"sub"`
	Email     string `mapstructure:"email"`
	Name      string `mapstructure:"name"`
	ExpiresAt int64  `mapstructure:"exp"`
}

// Expiry is zero when the token carries no exp claim.
func (i *Identity) Expiry() time.Time {
	if i.ExpiresAt == 0 {
		return time.Time{}
	}
	return time.Unix(i.ExpiresAt, 0)
}

func (s *AuthStore) Identity() (*Identity, error) {
	claims, err := s.Claims()
	if err != nil {
		return nil, err
	}
	identity := &Identity{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           identity,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(map[string]interface{}(claims)); err != nil {
		return nil, fmt.Errorf("decode token claims failed: %v", err)
	}
	return identity, nil
}
