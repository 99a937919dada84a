package tmplloader

import "github.com/itsatony/go-tmplloader/internal"

// ThemeHost reports the theme directories of the host application.
type ThemeHost interface {
	// TemplateDirectory returns the root directory of the parent (or only) theme.
	TemplateDirectory() string

	// StylesheetDirectory returns the root directory of the active theme,
	// which is the child theme when one is active.
	StylesheetDirectory() string

	// IsChildTheme reports whether the active theme is a child theme.
	IsChildTheme() bool
}

// StaticThemeHost is a ThemeHost backed by fixed directories.
// A child theme is active when ChildDir is set and differs from ParentDir.
type StaticThemeHost struct {
	ParentDir string
	ChildDir  string
}

// TemplateDirectory returns the parent theme directory.
func (h StaticThemeHost) TemplateDirectory() string {
	return h.ParentDir
}

// StylesheetDirectory returns the child theme directory, or the parent
// directory when no child theme is configured.
func (h StaticThemeHost) StylesheetDirectory() string {
	if h.ChildDir == "" {
		return h.ParentDir
	}
	return h.ChildDir
}

// IsChildTheme reports whether a distinct child theme directory is set.
func (h StaticThemeHost) IsChildTheme() bool {
	if h.ChildDir == "" {
		return false
	}
	return internal.Untrailing(h.ChildDir) != internal.Untrailing(h.ParentDir)
}

var _ ThemeHost = StaticThemeHost{}
