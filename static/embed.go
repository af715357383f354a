// Package static embeds the API documentation assets served at /docs and
// /static.
package static

import "embed"

//go:embed openapi.html openapi.json
var Files embed.FS
