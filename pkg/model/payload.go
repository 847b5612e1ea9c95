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

package model

import (
	"github.com/jinzhu/copier"
)

// JobEditPayload prefills a payload with every editable field of job.
func JobEditPayload(job *Job) (*JobPayload, error) {
	payload := &JobPayload{}
	if err := copier.Copy(payload, job); err != nil {
		return nil, err
	}
	return payload, nil
}

func CompanyEditPayload(company *Company) (*CompanyPayload, error) {
	payload := &CompanyPayload{}
	if err := copier.Copy(payload, company); err != nil {
		return nil, err
	}
	return payload, nil
}

func CategoryEditPayload(category *Category) (*CategoryPayload, error) {
	payload := &CategoryPayload{}
	if err := copier.Copy(payload, category); err != nil {
		return nil, err
	}
	return payload, nil
}

// StringPtr and friends help building payloads from literals.
func StringPtr(s string) *string { return &s }

func IntPtr(i int) *int { return &i }

func Int64Ptr(i int64) *int64 { return &i }
