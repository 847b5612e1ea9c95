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

package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// InitConfigFromYaml decodes configPath over conf. When configPath is empty the
// default path is used, and a missing default file keeps conf untouched.
func InitConfigFromYaml(conf interface{}, configPath string) error {
	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfPath
		if exist, _ := PathExists(configPath); !exist {
			log.Debugf("config yaml[%s] not found, use default config", configPath)
			return nil
		}
	}
	yamlFile, err := ioutil.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("read file yaml[%s] failed: %v", configPath, err)
	}
	if err = yaml.Unmarshal(yamlFile, conf); err != nil {
		return fmt.Errorf("decode yaml[%s] failed: %v", configPath, err)
	}
	return nil
}

// LoadEnv reads .env files, if any, and applies environment overrides on conf.
// Variables already present in the environment win over .env entries.
func LoadEnv(conf *Config, envFiles ...string) error {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		exist, err := PathExists(f)
		if err != nil {
			return err
		}
		if !exist {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load env file[%s] failed: %v", f, err)
		}
	}
	if v, ok := os.LookupEnv(EnvAPIBaseURL); ok && v != "" {
		conf.API.BaseURL = v
	}
	if v, ok := os.LookupEnv(EnvAPIHost); ok && v != "" {
		conf.API.Host = v
	}
	if v, ok := os.LookupEnv(EnvDataDir); ok && v != "" {
		conf.Storage.Dir = v
	}
	return nil
}

func PrettyFormat(data interface{}) []byte {
	p, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		panic(err)
	}
	return p
}

// PathExists indicate path exist or not
// 1. path exist: return true, nil
// 2. path not exist: return false, nil
// 3. unknown error: return false, err
func PathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
