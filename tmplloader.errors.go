package tmplloader

import (
	"github.com/itsatony/go-cuserr"
)

// Error message constants
const (
	// Configuration errors
	ErrMsgEmptyFilterPrefix = "filter prefix cannot be empty"
	ErrMsgEmptyPluginDir    = "plugin directory cannot be empty"
	ErrMsgInvalidExtension  = "template extension must start with a dot"
	ErrMsgReadConfigFile    = "failed to read config file"
	ErrMsgParseConfigFile   = "failed to parse config file"
	ErrMsgReadEnvFile       = "failed to read env file"
	ErrMsgNilThemeHost      = "theme host cannot be nil"

	// Lookup and inclusion errors
	ErrMsgExistsCheck = "failed to check template file"
	ErrMsgNoIncluder  = "no includer configured for loading templates"
	ErrMsgIncludeFail = "template include failed"
	ErrMsgRenderFail  = "failed to render template"
	ErrMsgNilWriter   = "includer writer cannot be nil"
)

// Error code constants for categorization
const (
	ErrCodeConfig  = "TMPLLOADER_CONFIG"
	ErrCodeFS      = "TMPLLOADER_FS"
	ErrCodeInclude = "TMPLLOADER_INCLUDE"
)

// NewConfigError creates a validation error for a configuration field
func NewConfigError(msg, field, value string) error {
	return cuserr.NewValidationError(ErrCodeConfig, msg).
		WithMetadata(MetaKeyField, field).
		WithMetadata(MetaKeyValue, value)
}

// NewConfigFileError wraps a failure to read or decode a config file
func NewConfigFileError(msg, file string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, msg).
		WithMetadata(MetaKeyFile, file)
}

// NewExistsCheckError wraps a filesystem fault raised while probing a candidate
func NewExistsCheckError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeFS, ErrMsgExistsCheck).
		WithMetadata(MetaKeyPath, path)
}

// NewNoIncluderError reports a load request on a loader without an includer
func NewNoIncluderError(path string) error {
	return cuserr.NewValidationError(ErrCodeInclude, ErrMsgNoIncluder).
		WithMetadata(MetaKeyPath, path)
}

// NewIncludeError wraps a failure returned by the include primitive
func NewIncludeError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeInclude, ErrMsgIncludeFail).
		WithMetadata(MetaKeyPath, path)
}

// NewRenderError wraps a pongo2 parse or execution failure
func NewRenderError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeInclude, ErrMsgRenderFail).
		WithMetadata(MetaKeyPath, path)
}
