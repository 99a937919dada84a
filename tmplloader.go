// Package tmplloader locates plugin template files with theme overrides.
//
// A plugin ships default templates in its own directory. Themes may
// override any of them by placing a file with the same name in a theme
// subdirectory; a child theme overrides its parent. The Loader searches
// these locations in priority order and returns the first file that exists:
//
//	1    child theme    {stylesheet dir}/{theme template dir}/  (child theme active only)
//	10   parent theme   {template dir}/{theme template dir}/
//	100  plugin         {plugin dir}/{plugin template dir}/
//
// # Basic Usage
//
//	loader, err := tmplloader.New(
//	    tmplloader.WithConfig(tmplloader.Config{
//	        FilterPrefix:      "recipes",
//	        ThemeTemplateDir:  "recipe-templates",
//	        PluginDir:         "/srv/plugins/recipes",
//	        PluginTemplateDir: "templates",
//	    }),
//	    tmplloader.WithThemeHost(tmplloader.StaticThemeHost{
//	        ParentDir: "/srv/themes/base",
//	        ChildDir:  "/srv/themes/base-child",
//	    }),
//	)
//
//	// Finds recipe-short.php, falling back to recipe.php.
//	path, err := loader.GetTemplatePart(ctx, "recipe", "short", false)
//	if path == "" {
//	    // not found
//	}
//
// # Loading Templates
//
// Inclusion is delegated to an Includer. Pongo2Includer renders the file
// with pongo2; data published with SetTemplateData is its context:
//
//	includer, _ := tmplloader.NewPongo2Includer(w)
//	loader, _ := tmplloader.New(..., tmplloader.WithIncluder(includer))
//	defer loader.Close()
//
//	loader.SetTemplateData(map[string]any{"title": "Soup"}, "recipe")
//	_, err := loader.GetTemplatePart(ctx, "recipe", "", true) // {{ recipe.title }}
//
// # Hooks
//
// A HookRegistry passed with WithHooks can observe part requests and
// rewrite the candidate lists. Hook names follow the host conventions:
//
//	get_template_part_{slug}            notification
//	{prefix}_get_template_part_{slug}   notification
//	{prefix}_get_template_part          file name filter
//	{prefix}_template_paths             path filter
//
// # Caching
//
// Each Loader caches resolved paths under the first requested name for its
// whole lifetime. Cached paths are not rechecked, and lookups that found
// nothing are not cached.
package tmplloader
