package tmplloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathCache(t *testing.T) {
	cache := newPathCache()

	_, ok := cache.get("recipe.php")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.len())

	cache.put("recipe.php", "/theme/plugin-templates/recipe.php")
	path, ok := cache.get("recipe.php")
	assert.True(t, ok)
	assert.Equal(t, "/theme/plugin-templates/recipe.php", path)

	cache.put("recipe.php", "/plugin/templates/recipe.php")
	path, _ = cache.get("recipe.php")
	assert.Equal(t, "/plugin/templates/recipe.php", path)
	assert.Equal(t, 1, cache.len())

	cache.put("", "/plugin/templates/empty-key.php")
	path, ok = cache.get("")
	assert.True(t, ok)
	assert.Equal(t, "/plugin/templates/empty-key.php", path)
}
