// Package web embeds the browser chat page served at the root path.
package web

import "embed"

//go:embed static
var StaticFS embed.FS
