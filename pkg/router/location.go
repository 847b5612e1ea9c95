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

package router

import (
	"fmt"
	"net/url"
	"strings"
)

// Location is a path plus query, the part of a url the router cares about.
// RawQuery keeps a parsed query as written; FullPath prefers it over Query.
type Location struct {
	Path     string     `json:"path"`
	Query    url.Values `json:"query,omitempty"`
	RawQuery string     `json:"-"`
}

// ParseLocation accepts a full path such as "/dashboard/job?tab=1". Scheme and
// host are not allowed.
func ParseLocation(raw string) (Location, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("invalid location[%s]: %v", raw, err)
	}
	if u.Scheme != "" || u.Host != "" {
		return Location{}, fmt.Errorf("location[%s] must be a path, not an absolute url", raw)
	}
	loc := Location{Path: normalizePath(u.Path)}
	if q := u.Query(); len(q) > 0 {
		loc.Query = q
		loc.RawQuery = u.RawQuery
	}
	return loc, nil
}

func (l Location) FullPath() string {
	if l.RawQuery != "" {
		return l.Path + "?" + l.RawQuery
	}
	if len(l.Query) == 0 {
		return l.Path
	}
	return l.Path + "?" + l.Query.Encode()
}

func (l Location) String() string {
	return l.FullPath()
}

func normalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p
}

func splitPath(p string) []string {
	parts := strings.Split(p, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// IsLocalPath reports whether target is safe to redirect to after login: an
// absolute path on this site and not a protocol relative url.
func IsLocalPath(target string) bool {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return false
	}
	u, err := url.Parse(target)
	return err == nil && u.Scheme == "" && u.Host == ""
}
