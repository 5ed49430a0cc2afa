// Package templates provides the embedded HTML landing page.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
