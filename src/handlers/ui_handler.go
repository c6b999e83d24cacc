package handlers

import (
	"html/template"
	"log"
	"net/http"

	"finchat-server/src/web"
)

// ServeUI renders the embedded single-page client. Templates are parsed once
// at wiring time; a parse failure is fatal since the binary is unusable
// without its embedded assets.
func ServeUI() http.HandlerFunc {
	tmpl, err := template.ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		log.Fatalf("failed to parse embedded templates: %v", err)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.ExecuteTemplate(w, "index.html", nil); err != nil {
			log.Printf("ERROR: Failed to render UI: %v", err)
		}
	}
}
