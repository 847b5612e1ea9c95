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
	"strings"
)

type segment struct {
	value    string
	param    string
	catchAll bool
}

type record struct {
	name     string
	path     string
	segments []segment
	meta     Meta
	redirect string
	// names of the matched chain, parent first
	chain []string
}

func compile(routes []Route) ([]*record, error) {
	var records []*record
	names := map[string]bool{}
	var walk func(parentPath string, parentMeta Meta, chain []string, routes []Route) error
	walk = func(parentPath string, parentMeta Meta, chain []string, routes []Route) error {
		for _, route := range routes {
			full := joinPath(parentPath, route.Path)
			meta := parentMeta.merge(route.Meta)
			routeChain := chain
			if route.Name != "" {
				if names[route.Name] {
					return fmt.Errorf("route name[%s] is duplicated", route.Name)
				}
				names[route.Name] = true
				routeChain = append(append([]string{}, chain...), route.Name)
			}
			if route.Name == "" && route.Redirect == "" {
				return fmt.Errorf("route[%s] needs a name or a redirect", full)
			}
			segments, err := parseSegments(full)
			if err != nil {
				return err
			}
			// children first, so that an empty child path wins over its parent
			if err := walk(full, meta, routeChain, route.Children); err != nil {
				return err
			}
			records = append(records, &record{
				name:     route.Name,
				path:     full,
				segments: segments,
				meta:     meta,
				redirect: route.Redirect,
				chain:    routeChain,
			})
		}
		return nil
	}
	if err := walk("", Meta{}, nil, routes); err != nil {
		return nil, err
	}
	return records, nil
}

func joinPath(parent, child string) string {
	switch {
	case strings.HasPrefix(child, "/"):
		return normalizePath(child)
	case child == "":
		return normalizePath(parent)
	default:
		return normalizePath(strings.TrimRight(parent, "/") + "/" + child)
	}
}

func parseSegments(path string) ([]segment, error) {
	parts := splitPath(path)
	segments := make([]segment, 0, len(parts))
	for i, part := range parts {
		if !strings.HasPrefix(part, ":") {
			segments = append(segments, segment{value: part})
			continue
		}
		name := strings.TrimPrefix(part, ":")
		catchAll := false
		if idx := strings.Index(name, "("); idx >= 0 {
			catchAll = strings.HasPrefix(name[idx:], "(.*)")
			name = name[:idx]
		}
		if name == "" {
			return nil, fmt.Errorf("route path[%s] has an unnamed param", path)
		}
		if catchAll && i != len(parts)-1 {
			return nil, fmt.Errorf("route path[%s] catch-all param must be the last segment", path)
		}
		segments = append(segments, segment{param: name, catchAll: catchAll})
	}
	return segments, nil
}

func (r *record) match(path string) (map[string]string, bool) {
	parts := splitPath(path)
	params := map[string]string{}
	for i, seg := range r.segments {
		if seg.catchAll {
			params[seg.param] = strings.Join(parts[i:], "/")
			return params, true
		}
		if i >= len(parts) {
			return nil, false
		}
		if seg.param != "" {
			params[seg.param] = parts[i]
			continue
		}
		if seg.value != parts[i] {
			return nil, false
		}
	}
	if len(parts) != len(r.segments) {
		return nil, false
	}
	return params, true
}

// build fills the params of the record path.
func (r *record) build(params map[string]string) (string, error) {
	if len(r.segments) == 0 {
		return "/", nil
	}
	var sb strings.Builder
	for _, seg := range r.segments {
		sb.WriteString("/")
		if seg.param == "" {
			sb.WriteString(seg.value)
			continue
		}
		v, ok := params[seg.param]
		if !ok && !seg.catchAll {
			return "", fmt.Errorf("route[%s] missing param %s", r.name, seg.param)
		}
		sb.WriteString(v)
	}
	return normalizePath(sb.String()), nil
}
