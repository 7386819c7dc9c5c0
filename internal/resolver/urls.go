package resolver

import (
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"
)

// PageURLBuilder builds page URLs from a go-urlkit route manager.
type PageURLBuilder struct {
	manager   *urlkit.RouteManager
	groupPath string
	route     string
	slugParam string

	mu         sync.RWMutex
	groupCache map[string]*urlkit.Group
}

// PageURLOptions configures the builder. Group and Route are required; the
// group path may be dotted to address nested groups.
type PageURLOptions struct {
	Manager   *urlkit.RouteManager
	Group     string
	Route     string
	SlugParam string
}

// NewPageURLBuilder constructs the builder.
func NewPageURLBuilder(opts PageURLOptions) *PageURLBuilder {
	if opts.SlugParam == "" {
		opts.SlugParam = "slug"
	}
	return &PageURLBuilder{
		manager:    opts.Manager,
		groupPath:  strings.TrimSpace(opts.Group),
		route:      strings.TrimSpace(opts.Route),
		slugParam:  opts.SlugParam,
		groupCache: make(map[string]*urlkit.Group),
	}
}

// Build renders the URL for slug.
func (b *PageURLBuilder) Build(slug string) (string, error) {
	if b == nil || b.manager == nil || b.groupPath == "" || b.route == "" {
		return "", nil
	}

	group, err := b.groupForPath(b.groupPath)
	if err != nil || group == nil {
		return "", err
	}

	builder, err := safeBuilder(group, b.route)
	if err != nil || builder == nil {
		return "", err
	}

	builder.WithParam(b.slugParam, slug)
	return builder.Build()
}

func (b *PageURLBuilder) groupForPath(path string) (*urlkit.Group, error) {
	b.mu.RLock()
	group, ok := b.groupCache[path]
	b.mu.RUnlock()
	if ok {
		return group, nil
	}

	parts := strings.Split(path, ".")
	root, err := lookupGroup(b.manager, parts[0])
	if err != nil {
		return nil, err
	}
	current := root
	for _, part := range parts[1:] {
		current, err = lookupChildGroup(current, part)
		if err != nil {
			return nil, err
		}
	}

	b.mu.Lock()
	b.groupCache[path] = current
	b.mu.Unlock()
	return current, nil
}

// The urlkit lookups panic on unknown names, so they run behind recover.
func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	if manager == nil {
		return nil, fmt.Errorf("resolver: route manager not configured")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("resolver: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	if parent == nil {
		return nil, fmt.Errorf("resolver: parent group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("resolver: child group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, err
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("resolver: route %q not found", route)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}
