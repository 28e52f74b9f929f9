// Package static embeds the stylesheet and the page script.
package static

import "embed"

//go:embed css js
var FS embed.FS
