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

package flag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"

	"github.com/jobpaste/jobpaste/pkg/common/config"
)

func TestExpandFlags(t *testing.T) {
	conf := config.Default()
	tests := []struct {
		name  string
		flags []cli.Flag
		want  int
	}{
		{name: "api", flags: APIFlags(&conf.API), want: 3},
		{name: "storage", flags: StorageFlags(&conf.Storage), want: 2},
		{name: "router", flags: RouterFlags(&conf.Router), want: 3},
		{name: "web", flags: WebFlags(&conf.Web), want: 2},
	}
	var compound [][]cli.Flag
	total := 0
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.flags, tt.want)
		})
		compound = append(compound, tt.flags)
		total += tt.want
	}
	assert.Len(t, ExpandFlags(compound), total)
}

func TestFlagsBindConfig(t *testing.T) {
	conf := config.Default()
	app := &cli.App{
		Flags:  ExpandFlags([][]cli.Flag{APIFlags(&conf.API), RouterFlags(&conf.Router)}),
		Action: func(c *cli.Context) error { return nil },
	}
	err := app.Run([]string{"jobpaste", "--api-base-url", "https://jobs.example.com/api", "--layout", "flat"})
	assert.NoError(t, err)
	assert.Equal(t, "https://jobs.example.com/api", conf.API.BaseURL)
	assert.Equal(t, config.LayoutFlat, conf.Router.Layout)
	// untouched flags keep the loaded values
	assert.Equal(t, config.DefaultAPIHost, conf.API.Host)
}
