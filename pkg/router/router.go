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
	"errors"
	"fmt"
	"sync"

	"github.com/bluele/gcache"

	"github.com/jobpaste/jobpaste/pkg/common/logger"
	"github.com/jobpaste/jobpaste/pkg/metrics"
)

const (
	defaultCacheSize = 128
	maxRedirects     = 10
)

var (
	ErrNoMatch           = errors.New("no route matches")
	ErrTooManyRedirects  = errors.New("too many redirects")
	ErrRouteNameNotFound = errors.New("route name not found")
)

// RouteLocation is a location resolved against the route table.
type RouteLocation struct {
	Location
	Name   string            `json:"name"`
	Params map[string]string `json:"params,omitempty"`
	// Meta is merged over the matched chain.
	Meta    Meta     `json:"meta"`
	Matched []string `json:"matched"`

	redirect string
}

type Navigation struct {
	From           *RouteLocation `json:"from,omitempty"`
	To             *RouteLocation `json:"to"`
	RedirectedFrom *Location      `json:"redirectedFrom,omitempty"`
	Title          string         `json:"title"`
}

func (n *Navigation) Name() string {
	return n.To.Name
}

// Redirected reports whether the committed location differs from the pushed one.
func (n *Navigation) Redirected() bool {
	return n.RedirectedFrom != nil
}

type Options struct {
	Routes      []Route
	LandingPath string
	CacheSize   int
}

type Router struct {
	records []*record
	byName  map[string]*record
	landing string
	cache   gcache.Cache

	hookMu      sync.RWMutex
	beforeHooks []BeforeHook
	afterHooks  []AfterHook

	mu      sync.RWMutex
	current *RouteLocation
	title   string
}

type resolved struct {
	rec    *record
	params map[string]string
}

func New(opts Options) (*Router, error) {
	records, err := compile(opts.Routes)
	if err != nil {
		return nil, err
	}
	if opts.LandingPath == "" {
		return nil, fmt.Errorf("landing path is required")
	}
	if !IsLocalPath(opts.LandingPath) {
		return nil, fmt.Errorf("landing path[%s] must be a local path", opts.LandingPath)
	}
	size := opts.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	byName := make(map[string]*record, len(records))
	for _, rec := range records {
		if rec.name != "" {
			byName[rec.name] = rec
		}
	}
	return &Router{
		records: records,
		byName:  byName,
		landing: opts.LandingPath,
		cache:   gcache.New(size).LRU().Build(),
		title:   DefaultTitle,
	}, nil
}

// NewForLayout builds the router of a named layout. An empty landing uses the
// layout default.
func NewForLayout(layout, landing string, cacheSize int) (*Router, error) {
	routes, defLanding, err := RoutesForLayout(layout)
	if err != nil {
		return nil, err
	}
	if landing == "" {
		landing = defLanding
	}
	return New(Options{Routes: routes, LandingPath: landing, CacheSize: cacheSize})
}

func (r *Router) BeforeEach(hook BeforeHook) {
	r.hookMu.Lock()
	defer r.hookMu.Unlock()
	r.beforeHooks = append(r.beforeHooks, hook)
}

func (r *Router) AfterEach(hook AfterHook) {
	r.hookMu.Lock()
	defer r.hookMu.Unlock()
	r.afterHooks = append(r.afterHooks, hook)
}

func (r *Router) Landing() string {
	return r.landing
}

func (r *Router) Current() *RouteLocation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Title is the document title set by the last committed navigation.
func (r *Router) Title() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.title
}

// Resolve matches raw against the route table without running any hook.
func (r *Router) Resolve(raw string) (*RouteLocation, error) {
	loc, err := ParseLocation(raw)
	if err != nil {
		return nil, err
	}
	return r.resolve(loc)
}

func (r *Router) resolve(loc Location) (*RouteLocation, error) {
	var hit *resolved
	if v, err := r.cache.Get(loc.Path); err == nil {
		hit = v.(*resolved)
	} else {
		for _, rec := range r.records {
			if params, ok := rec.match(loc.Path); ok {
				hit = &resolved{rec: rec, params: params}
				break
			}
		}
		if hit == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoMatch, loc.Path)
		}
		_ = r.cache.Set(loc.Path, hit)
	}

	params := make(map[string]string, len(hit.params))
	for k, v := range hit.params {
		params[k] = v
	}
	return &RouteLocation{
		Location: loc,
		Name:     hit.rec.name,
		Params:   params,
		Meta:     hit.rec.meta,
		Matched:  append([]string{}, hit.rec.chain...),
		redirect: hit.rec.redirect,
	}, nil
}

// PathOf builds the path of the named route.
func (r *Router) PathOf(name string, params map[string]string) (string, error) {
	rec, ok := r.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrRouteNameNotFound, name)
	}
	return rec.build(params)
}

// Push navigates to raw. Record redirects are followed first, then the before
// hooks run and may redirect again. The final location is committed and the
// after hooks run on it.
func (r *Router) Push(raw string) (*Navigation, error) {
	loc, err := ParseLocation(raw)
	if err != nil {
		return nil, err
	}
	from := r.Current()

	r.hookMu.RLock()
	beforeHooks := append([]BeforeHook{}, r.beforeHooks...)
	afterHooks := append([]AfterHook{}, r.afterHooks...)
	r.hookMu.RUnlock()

	var redirectedFrom *Location
	redirect := func(next Location) {
		if redirectedFrom == nil {
			origin := loc
			redirectedFrom = &origin
		}
		loc = next
	}

	for hops := 0; ; hops++ {
		if hops > maxRedirects {
			metrics.AddNavigationMetrics("", metrics.OutcomeFailed)
			return nil, fmt.Errorf("%w: pushing %s", ErrTooManyRedirects, raw)
		}
		to, err := r.resolve(loc)
		if err != nil {
			metrics.AddNavigationMetrics("", metrics.OutcomeFailed)
			return nil, err
		}
		if to.redirect != "" {
			next, err := ParseLocation(to.redirect)
			if err != nil {
				return nil, err
			}
			logger.LoggerForRoute(to.Name, to.FullPath()).Debugf("record redirect to %s", next.FullPath())
			redirect(next)
			continue
		}

		decision := runBeforeHooks(beforeHooks, to, from)
		if decision.Redirect != nil {
			logger.LoggerForRoute(to.Name, to.FullPath()).Debugf("guard redirect to %s", decision.Redirect.FullPath())
			metrics.AddNavigationMetrics(to.Name, metrics.OutcomeRedirect)
			redirect(*decision.Redirect)
			continue
		}

		nav := &Navigation{From: from, To: to, RedirectedFrom: redirectedFrom, Title: DefaultTitle}
		for _, hook := range afterHooks {
			hook(nav)
		}
		r.mu.Lock()
		r.current = to
		r.title = nav.Title
		r.mu.Unlock()
		metrics.AddNavigationMetrics(to.Name, metrics.OutcomeProceed)
		logger.LoggerForRoute(to.Name, to.FullPath()).Debugf("navigation committed, title: %s", nav.Title)
		return nav, nil
	}
}

func runBeforeHooks(hooks []BeforeHook, to, from *RouteLocation) Decision {
	for _, hook := range hooks {
		if decision := hook(to, from); decision.Redirect != nil {
			return decision
		}
	}
	return Proceed()
}
