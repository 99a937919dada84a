package tmplloader

// Configuration defaults
const (
	DefaultFilterPrefix      = "your_plugin"
	DefaultThemeTemplateDir  = "plugin-templates"
	DefaultPluginTemplateDir = "templates"
	DefaultTemplateExtension = ".php"
)

// Search priorities for the built-in template paths. Lower is searched first.
const (
	PriorityChildTheme  = 1
	PriorityParentTheme = 10
	PriorityPlugin      = 100
)

// DefaultDataVarName is the variable name caller data is published under
// when no name is given. It is always part of the cleanup set.
const DefaultDataVarName = "data"

// Hook name building blocks
const (
	HookSeparator       = "_"
	HookGetTemplatePart = "get_template_part"
	HookTemplatePaths   = "template_paths"
	VariationSeparator  = "-"
)

// Environment variables read by LoadConfigEnv
const (
	EnvFilterPrefix      = "TMPLLOADER_FILTER_PREFIX"
	EnvThemeTemplateDir  = "TMPLLOADER_THEME_TEMPLATE_DIR"
	EnvPluginDir         = "TMPLLOADER_PLUGIN_DIR"
	EnvPluginTemplateDir = "TMPLLOADER_PLUGIN_TEMPLATE_DIR"
	EnvTemplateExtension = "TMPLLOADER_TEMPLATE_EXTENSION"
)

// Log messages
const (
	LogMsgLoaderCreated     = "template loader created"
	LogMsgCacheHit          = "template path cache hit"
	LogMsgTemplateLocated   = "template located"
	LogMsgTemplateNotFound  = "template not found"
	LogMsgTemplateLoaded    = "template loaded"
	LogMsgExistsCheckFailed = "template existence check failed"
	LogMsgDataPublished     = "template data published"
	LogMsgDataUnset         = "template data unset"
	LogMsgPartRequested     = "template part requested"
)

// Log field names
const (
	LogFieldCacheKey    = "cache_key"
	LogFieldPath        = "path"
	LogFieldCandidates  = "candidates"
	LogFieldSearchPaths = "search_paths"
	LogFieldSlug        = "slug"
	LogFieldVariation   = "variation"
	LogFieldVarName     = "var_name"
	LogFieldVarCount    = "var_count"
	LogFieldOnce        = "require_once"
	LogFieldPrefix      = "filter_prefix"
)

// Error metadata keys
const (
	MetaKeyPath  = "path"
	MetaKeyField = "field"
	MetaKeyValue = "value"
	MetaKeyFile  = "file"
)
