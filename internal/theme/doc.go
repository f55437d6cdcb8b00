// Package theme holds the fixed color palettes and the preference store that
// remembers which one a visitor picked.
//
// Integration example:
//
//	store := theme.NewStore(theme.NewCookieStorage(c))
//	var style theme.StyleContext
//	store.Subscribe(style.Apply)
//	c.HTML(http.StatusOK, "page.html", gin.H{"themeCSS": template.CSS(style.Declarations())})
package theme
