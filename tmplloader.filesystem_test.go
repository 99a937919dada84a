package tmplloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileChecker_Exists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "recipe.php")
	require.NoError(t, os.WriteFile(file, []byte("<p>recipe</p>"), 0o644))

	checker := OSFileChecker{}

	t.Run("existing file", func(t *testing.T) {
		ok, err := checker.Exists(file)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("existing directory", func(t *testing.T) {
		ok, err := checker.Exists(dir)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("missing file", func(t *testing.T) {
		ok, err := checker.Exists(filepath.Join(dir, "missing.php"))
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestFSFileChecker_Exists(t *testing.T) {
	fsys := fstest.MapFS{
		"theme/plugin-templates/recipe.php": &fstest.MapFile{Data: []byte("theme")},
		"plugin/templates/recipe-short.php": &fstest.MapFile{Data: []byte("plugin")},
	}
	checker := FSFileChecker{FS: fsys}

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"relative path", "theme/plugin-templates/recipe.php", true},
		{"absolute style path", "/plugin/templates/recipe-short.php", true},
		{"unclean path", "/theme//plugin-templates/./recipe.php", true},
		{"directory", "/theme/plugin-templates/", true},
		{"missing", "/theme/plugin-templates/missing.php", false},
		{"escaping path", "/../etc/passwd", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := checker.Exists(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestFSFileChecker_WithLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"theme/plugin-templates/recipe.php": &fstest.MapFile{Data: []byte("theme")},
		"plugin/templates/recipe-short.php": &fstest.MapFile{Data: []byte("plugin")},
	}

	cfg := DefaultConfig()
	cfg.PluginDir = "/plugin"

	l, err := New(
		WithConfig(cfg),
		WithThemeHost(StaticThemeHost{ParentDir: "/theme"}),
		WithFileChecker(FSFileChecker{FS: fsys}),
	)
	require.NoError(t, err)

	ctx := context.Background()

	got, err := l.Locate(ctx, "recipe-short.php", "recipe.php")
	require.NoError(t, err)
	assert.Equal(t, "/plugin/templates/recipe-short.php", got)

	got, err = l.Locate(ctx, "recipe-long.php", "recipe.php")
	require.NoError(t, err)
	assert.Equal(t, "/theme/plugin-templates/recipe.php", got)
}

func TestStaticThemeHost(t *testing.T) {
	t.Run("parent only", func(t *testing.T) {
		host := StaticThemeHost{ParentDir: "/themes/base"}
		assert.False(t, host.IsChildTheme())
		assert.Equal(t, "/themes/base", host.TemplateDirectory())
		assert.Equal(t, "/themes/base", host.StylesheetDirectory())
	})

	t.Run("child theme", func(t *testing.T) {
		host := StaticThemeHost{ParentDir: "/themes/base", ChildDir: "/themes/child"}
		assert.True(t, host.IsChildTheme())
		assert.Equal(t, "/themes/base", host.TemplateDirectory())
		assert.Equal(t, "/themes/child", host.StylesheetDirectory())
	})

	t.Run("child equal to parent", func(t *testing.T) {
		host := StaticThemeHost{ParentDir: "/themes/base", ChildDir: "/themes/base/"}
		assert.False(t, host.IsChildTheme())
	})
}
