package tmplloader

import (
	"context"
	"sync"

	"github.com/itsatony/go-tmplloader/internal"
	"go.uber.org/zap"
)

// Loader resolves template names against the child theme, the parent theme
// and the plugin's own template directory, in that order, and optionally
// loads the file it finds.
//
// A Loader is meant to serve one request lifecycle. Resolved paths are
// cached for the Loader's lifetime and template data stays published in its
// DataContext until UnsetTemplateData or Close is called.
type Loader struct {
	config       Config
	host         ThemeHost
	checker      FileChecker
	includer     Includer
	observer     Observer
	transformer  Transformer
	data         *DataContext
	templatesDir string
	cache        *pathCache
	logger       *zap.Logger

	varsMu   sync.Mutex
	varNames []string
}

// New creates a Loader with the given options.
func New(opts ...Option) (*Loader, error) {
	cfg := defaultLoaderConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.config.Validate(); err != nil {
		return nil, err
	}
	if cfg.host == nil {
		return nil, NewConfigError(ErrMsgNilThemeHost, "theme_host", "")
	}

	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	l := &Loader{
		config:       cfg.config,
		host:         cfg.host,
		checker:      cfg.checker,
		includer:     cfg.includer,
		observer:     cfg.observer,
		transformer:  cfg.transformer,
		data:         cfg.data,
		templatesDir: cfg.templatesDir,
		cache:        newPathCache(),
		logger:       logger,
		varNames:     []string{DefaultDataVarName},
	}
	if l.observer == nil {
		l.observer = nopHooks{}
	}
	if l.transformer == nil {
		l.transformer = nopHooks{}
	}
	if l.data == nil {
		l.data = NewDataContext(nil)
	}

	logger.Debug(LogMsgLoaderCreated, zap.String(LogFieldPrefix, l.config.FilterPrefix))
	return l, nil
}

// MustNew creates a new Loader and panics if there's an error.
func MustNew(opts ...Option) *Loader {
	l, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return l
}

// Config returns a copy of the loader's configuration.
func (l *Loader) Config() Config {
	return l.config
}

// DataContext returns the context published template data lives in.
func (l *Loader) DataContext() *DataContext {
	return l.data
}

// FileNamesHook returns the name of the file name filter hook.
func (l *Loader) FileNamesHook() string {
	return FileNamesHookName(l.config.FilterPrefix)
}

// PathsHook returns the name of the template path filter hook.
func (l *Loader) PathsHook() string {
	return PathsHookName(l.config.FilterPrefix)
}

// PartHooks returns the notifications GetTemplatePart fires for slug.
func (l *Loader) PartHooks(slug string) (generic, prefixed string) {
	return PartHookNames(l.config.FilterPrefix, slug)
}

// GetTemplatePart finds, and when load is true includes, the template for
// slug and the optional variation name. Repeated loads of the same part
// include it each time.
func (l *Loader) GetTemplatePart(ctx context.Context, slug, name string, load bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	l.logger.Debug(LogMsgPartRequested,
		zap.String(LogFieldSlug, slug),
		zap.String(LogFieldVariation, name),
	)

	generic, prefixed := l.PartHooks(slug)
	l.observer.Observe(ctx, PartEvent{Hook: generic, Slug: slug, Name: name})
	l.observer.Observe(ctx, PartEvent{Hook: prefixed, Slug: slug, Name: name})

	names := l.GetTemplateFileNames(ctx, slug, name)
	return l.LocateTemplate(ctx, names, load, false)
}

// GetTemplateFileNames builds candidate file names, most specific first:
// "{slug}-{name}{ext}" when name is set, then "{slug}{ext}". The list is
// passed through the file name filter hook before being returned.
func (l *Loader) GetTemplateFileNames(ctx context.Context, slug, name string) []string {
	ext := l.config.extension()

	names := make([]string, 0, 2)
	if name != "" {
		names = append(names, slug+VariationSeparator+name+ext)
	}
	names = append(names, slug+ext)

	return l.transformer.TransformFileNames(ctx, l.FileNamesHook(), names, slug, name)
}

// GetTemplatePaths returns the directories to search, ordered by ascending
// priority, each with a single trailing slash. The child theme (priority 1)
// is only present while a child theme is active.
func (l *Loader) GetTemplatePaths(ctx context.Context) []PathEntry {
	themeDir := internal.TrailingSlash(l.config.ThemeTemplateDir)

	paths := PathMap{
		PriorityParentTheme: internal.TrailingSlash(l.host.TemplateDirectory()) + themeDir,
		PriorityPlugin:      l.TemplatesDir(),
	}
	if l.host.IsChildTheme() {
		paths[PriorityChildTheme] = internal.TrailingSlash(l.host.StylesheetDirectory()) + themeDir
	}

	paths = l.transformer.TransformPaths(ctx, l.PathsHook(), paths)
	return paths.Sorted()
}

// TemplatesDir returns the plugin's own template directory.
func (l *Loader) TemplatesDir() string {
	if l.templatesDir != "" {
		return l.templatesDir
	}
	return internal.TrailingSlash(l.config.PluginDir) + l.config.PluginTemplateDir
}

// Locate returns the highest priority existing file among names without
// loading it. An empty result means nothing was found.
func (l *Loader) Locate(ctx context.Context, names ...string) (string, error) {
	return l.LocateTemplate(ctx, names, false, true)
}

// LocateTemplate returns the first existing file for names, searched in
// order, each name tried against every template path before moving to the
// next name. An empty result with a nil error means nothing was found.
//
// Results are cached under names[0]; a cached path is returned without
// touching the filesystem again. When load is true the located file is
// handed to the includer, with requireOnce selecting include-once semantics.
func (l *Loader) LocateTemplate(ctx context.Context, names []string, load, requireOnce bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", nil
	}

	key := names[0]
	located, hit := l.cache.get(key)
	if hit {
		l.logger.Debug(LogMsgCacheHit,
			zap.String(LogFieldCacheKey, key),
			zap.String(LogFieldPath, located),
		)
	} else {
		var err error
		located, err = l.search(ctx, key, internal.CompactNames(names))
		if err != nil {
			return "", err
		}
	}

	if load && located != "" {
		if err := l.include(ctx, located, requireOnce); err != nil {
			return located, err
		}
	}
	return located, nil
}

// search probes every name against every path and caches the first hit.
func (l *Loader) search(ctx context.Context, key string, names []string) (string, error) {
	paths := l.GetTemplatePaths(ctx)

	for _, name := range names {
		name = internal.TrimLeadingSlashes(name)
		for _, entry := range paths {
			candidate := entry.Path + name
			ok, err := l.checker.Exists(candidate)
			if err != nil {
				l.logger.Warn(LogMsgExistsCheckFailed,
					zap.String(LogFieldPath, candidate),
					zap.Error(err),
				)
				return "", NewExistsCheckError(candidate, err)
			}
			if ok {
				l.cache.put(key, candidate)
				l.logger.Debug(LogMsgTemplateLocated,
					zap.String(LogFieldCacheKey, key),
					zap.String(LogFieldPath, candidate),
				)
				return candidate, nil
			}
		}
	}

	l.logger.Debug(LogMsgTemplateNotFound,
		zap.Strings(LogFieldCandidates, names),
		zap.Int(LogFieldSearchPaths, len(paths)),
	)
	return "", nil
}

// include hands a located template to the includer.
func (l *Loader) include(ctx context.Context, path string, once bool) error {
	if l.includer == nil {
		return NewNoIncluderError(path)
	}
	if err := l.includer.Include(ctx, IncludeRequest{Path: path, Once: once, Data: l.data}); err != nil {
		return NewIncludeError(path, err)
	}
	l.logger.Debug(LogMsgTemplateLoaded,
		zap.String(LogFieldPath, path),
		zap.Bool(LogFieldOnce, once),
	)
	return nil
}
