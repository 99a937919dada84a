package tmplloader

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring a Loader.
type Option func(*loaderConfig)

// loaderConfig holds the collaborators a Loader is assembled from.
type loaderConfig struct {
	config       Config
	host         ThemeHost
	checker      FileChecker
	includer     Includer
	observer     Observer
	transformer  Transformer
	data         *DataContext
	templatesDir string
	logger       *zap.Logger
}

// defaultLoaderConfig returns the default loader configuration.
func defaultLoaderConfig() *loaderConfig {
	return &loaderConfig{
		config:  DefaultConfig(),
		checker: OSFileChecker{},
	}
}

// WithConfig sets the directory and hook prefix configuration.
// Default: DefaultConfig(), which still needs a PluginDir.
func WithConfig(cfg Config) Option {
	return func(c *loaderConfig) {
		c.config = cfg
	}
}

// WithThemeHost sets the provider of theme directories. Required.
func WithThemeHost(host ThemeHost) Option {
	return func(c *loaderConfig) {
		c.host = host
	}
}

// WithFileChecker sets how candidate files are probed.
// Default: OSFileChecker
func WithFileChecker(checker FileChecker) Option {
	return func(c *loaderConfig) {
		if checker != nil {
			c.checker = checker
		}
	}
}

// WithIncluder sets the primitive used to load located templates.
// Without one, lookups work but loading fails.
func WithIncluder(includer Includer) Option {
	return func(c *loaderConfig) {
		c.includer = includer
	}
}

// WithObserver sets the receiver of template part notifications.
func WithObserver(observer Observer) Option {
	return func(c *loaderConfig) {
		c.observer = observer
	}
}

// WithTransformer sets the chain that rewrites file names and paths.
func WithTransformer(transformer Transformer) Option {
	return func(c *loaderConfig) {
		c.transformer = transformer
	}
}

// WithHooks uses one registry as both observer and transformer.
func WithHooks(registry *HookRegistry) Option {
	return func(c *loaderConfig) {
		if registry == nil {
			return
		}
		c.observer = registry
		c.transformer = registry
	}
}

// WithDataContext sets the rendering context template data is published to.
// Default: a new empty DataContext per Loader.
func WithDataContext(data *DataContext) Option {
	return func(c *loaderConfig) {
		c.data = data
	}
}

// WithTemplatesDir replaces the plugin fallback directory, which is
// otherwise PluginDir joined with PluginTemplateDir.
func WithTemplatesDir(dir string) Option {
	return func(c *loaderConfig) {
		c.templatesDir = dir
	}
}

// WithLogger sets the logger for the loader.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *loaderConfig) {
		c.logger = logger
	}
}
