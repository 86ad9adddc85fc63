// Package templates holds the server-rendered HTML pages.
package templates

import "embed"

// FS contains the layout and every page, form and error template.
//
//go:embed layouts/*.html pages/*.html forms/*.html errors/*.html
var FS embed.FS
