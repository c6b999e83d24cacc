package web

import "embed"

// TemplatesFS embeds the HTML for the single-page client UI.
//
//go:embed templates/*.html
var TemplatesFS embed.FS
