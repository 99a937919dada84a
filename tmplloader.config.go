package tmplloader

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config names the directories and hook prefix a Loader works with.
// It is copied into the Loader at construction and never changed afterwards.
type Config struct {
	// FilterPrefix namespaces the hooks fired by the loader,
	// e.g. "recipes" yields "recipes_template_paths".
	FilterPrefix string `yaml:"filter_prefix"`

	// ThemeTemplateDir is the directory inside a theme that holds
	// overrides for this plugin's templates.
	ThemeTemplateDir string `yaml:"theme_template_dir"`

	// PluginDir is the root directory of the plugin.
	PluginDir string `yaml:"plugin_dir"`

	// PluginTemplateDir is the template directory relative to PluginDir.
	PluginTemplateDir string `yaml:"plugin_template_dir"`

	// TemplateExtension is appended to slugs when building file names.
	// Default: ".php"
	TemplateExtension string `yaml:"template_extension"`
}

// DefaultConfig returns a Config with every default filled in except
// PluginDir, which has no meaningful default.
func DefaultConfig() Config {
	return Config{
		FilterPrefix:      DefaultFilterPrefix,
		ThemeTemplateDir:  DefaultThemeTemplateDir,
		PluginTemplateDir: DefaultPluginTemplateDir,
		TemplateExtension: DefaultTemplateExtension,
	}
}

// Validate checks that the configuration can be used to build search paths.
func (c Config) Validate() error {
	if strings.TrimSpace(c.FilterPrefix) == "" {
		return NewConfigError(ErrMsgEmptyFilterPrefix, "filter_prefix", c.FilterPrefix)
	}
	if strings.TrimSpace(c.PluginDir) == "" {
		return NewConfigError(ErrMsgEmptyPluginDir, "plugin_dir", c.PluginDir)
	}
	if c.TemplateExtension != "" && !strings.HasPrefix(c.TemplateExtension, ".") {
		return NewConfigError(ErrMsgInvalidExtension, "template_extension", c.TemplateExtension)
	}
	return nil
}

// extension returns the configured extension or the default.
func (c Config) extension() string {
	if c.TemplateExtension == "" {
		return DefaultTemplateExtension
	}
	return c.TemplateExtension
}

// LoadConfigFile reads a YAML config file. Keys absent from the file keep
// their DefaultConfig values.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, NewConfigFileError(ErrMsgReadConfigFile, path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, NewConfigFileError(ErrMsgParseConfigFile, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigEnv builds a Config from TMPLLOADER_* variables. Values set in
// the process environment take precedence over those found in envFiles,
// which are read in dotenv format. Unset variables keep their defaults.
func LoadConfigEnv(envFiles ...string) (Config, error) {
	cfg := DefaultConfig()

	fileValues := map[string]string{}
	for _, file := range envFiles {
		values, err := godotenv.Read(file)
		if err != nil {
			return Config{}, NewConfigFileError(ErrMsgReadEnvFile, file, err)
		}
		for k, v := range values {
			if _, exists := fileValues[k]; !exists {
				fileValues[k] = v
			}
		}
	}

	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fileValues[key]
	}

	fields := []struct {
		key    string
		target *string
	}{
		{EnvFilterPrefix, &cfg.FilterPrefix},
		{EnvThemeTemplateDir, &cfg.ThemeTemplateDir},
		{EnvPluginDir, &cfg.PluginDir},
		{EnvPluginTemplateDir, &cfg.PluginTemplateDir},
		{EnvTemplateExtension, &cfg.TemplateExtension},
	}
	for _, f := range fields {
		if v := lookup(f.key); v != "" {
			*f.target = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
