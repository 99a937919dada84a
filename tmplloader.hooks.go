package tmplloader

import (
	"context"
	"sync"
)

// PartEvent is the payload of a template part notification.
type PartEvent struct {
	// Hook is the notification name, e.g. "get_template_part_recipe".
	Hook string

	// Slug is the template family being requested.
	Slug string

	// Name is the variation name, empty when none was given.
	Name string
}

// Observer receives fire-and-forget notifications. Nothing it does can
// change the outcome of the lookup that triggered it.
type Observer interface {
	Observe(ctx context.Context, event PartEvent)
}

// Transformer rewrites the candidate lists a Loader searches.
// Implementations receive the current value and return its replacement.
type Transformer interface {
	// TransformFileNames rewrites the candidate file names for slug and name.
	// The result should stay ordered from most to least specific.
	TransformFileNames(ctx context.Context, hook string, names []string, slug, name string) []string

	// TransformPaths rewrites the priority to directory mapping.
	TransformPaths(ctx context.Context, hook string, paths PathMap) PathMap
}

// ActionFunc handles a template part notification.
type ActionFunc func(ctx context.Context, event PartEvent)

// FileNamesFilterFunc transforms candidate file names.
type FileNamesFilterFunc func(ctx context.Context, names []string, slug, name string) []string

// PathsFilterFunc transforms the priority to directory mapping.
type PathsFilterFunc func(ctx context.Context, paths PathMap) PathMap

// FileNamesHookName returns the file name filter hook for prefix.
func FileNamesHookName(prefix string) string {
	return prefix + HookSeparator + HookGetTemplatePart
}

// PathsHookName returns the template path filter hook for prefix.
func PathsHookName(prefix string) string {
	return prefix + HookSeparator + HookTemplatePaths
}

// PartHookNames returns the two notifications fired for slug: the generic
// host notification followed by the prefixed one.
func PartHookNames(prefix, slug string) (generic, prefixed string) {
	generic = HookGetTemplatePart + HookSeparator + slug
	prefixed = prefix + HookSeparator + generic
	return generic, prefixed
}

// HookRegistry stores actions and filters by hook name. It implements both
// Observer and Transformer so one registry can serve a Loader.
// Callbacks for the same hook run in registration order.
type HookRegistry struct {
	mu              sync.RWMutex
	actions         map[string][]ActionFunc
	fileNameFilters map[string][]FileNamesFilterFunc
	pathFilters     map[string][]PathsFilterFunc
}

// NewHookRegistry creates an empty hook registry.
func NewHookRegistry() *HookRegistry {
	return &HookRegistry{
		actions:         make(map[string][]ActionFunc),
		fileNameFilters: make(map[string][]FileNamesFilterFunc),
		pathFilters:     make(map[string][]PathsFilterFunc),
	}
}

// AddAction registers a notification handler for hook.
func (r *HookRegistry) AddAction(hook string, fn ActionFunc) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions[hook] = append(r.actions[hook], fn)
}

// AddFileNamesFilter registers a file name filter for hook.
func (r *HookRegistry) AddFileNamesFilter(hook string, fn FileNamesFilterFunc) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fileNameFilters[hook] = append(r.fileNameFilters[hook], fn)
}

// AddPathsFilter registers a template path filter for hook.
func (r *HookRegistry) AddPathsFilter(hook string, fn PathsFilterFunc) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pathFilters[hook] = append(r.pathFilters[hook], fn)
}

// Observe runs every action registered for event.Hook.
func (r *HookRegistry) Observe(ctx context.Context, event PartEvent) {
	r.mu.RLock()
	actions := r.actions[event.Hook]
	r.mu.RUnlock()

	for _, fn := range actions {
		fn(ctx, event)
	}
}

// TransformFileNames chains the file name filters registered for hook.
func (r *HookRegistry) TransformFileNames(ctx context.Context, hook string, names []string, slug, name string) []string {
	r.mu.RLock()
	filters := r.fileNameFilters[hook]
	r.mu.RUnlock()

	for _, fn := range filters {
		names = fn(ctx, names, slug, name)
	}
	return names
}

// TransformPaths chains the path filters registered for hook.
// Each filter receives its own copy of the mapping.
func (r *HookRegistry) TransformPaths(ctx context.Context, hook string, paths PathMap) PathMap {
	r.mu.RLock()
	filters := r.pathFilters[hook]
	r.mu.RUnlock()

	for _, fn := range filters {
		paths = fn(ctx, paths.Clone())
	}
	return paths
}

// Count returns the number of callbacks of any kind registered for hook.
func (r *HookRegistry) Count(hook string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.actions[hook]) + len(r.fileNameFilters[hook]) + len(r.pathFilters[hook])
}

// HasHooks reports whether anything is registered for hook.
func (r *HookRegistry) HasHooks(hook string) bool {
	return r.Count(hook) > 0
}

// Clear removes every callback registered for hook.
func (r *HookRegistry) Clear(hook string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.actions, hook)
	delete(r.fileNameFilters, hook)
	delete(r.pathFilters, hook)
}

// ClearAll removes all callbacks.
func (r *HookRegistry) ClearAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = make(map[string][]ActionFunc)
	r.fileNameFilters = make(map[string][]FileNamesFilterFunc)
	r.pathFilters = make(map[string][]PathsFilterFunc)
}

// nopHooks is used when a Loader has no observer or transformer.
type nopHooks struct{}

func (nopHooks) Observe(context.Context, PartEvent) {}

func (nopHooks) TransformFileNames(_ context.Context, _ string, names []string, _, _ string) []string {
	return names
}

func (nopHooks) TransformPaths(_ context.Context, _ string, paths PathMap) PathMap {
	return paths
}

var (
	_ Observer    = (*HookRegistry)(nil)
	_ Transformer = (*HookRegistry)(nil)
	_ Observer    = nopHooks{}
	_ Transformer = nopHooks{}
)
