package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-user-admin/internal/logger"
)

// Page templates are embedded into the binary. html/template escapes every
// interpolated value contextually, which keeps user-supplied text from being
// injected into the rendered markup.
//
//go:embed templates/*.gohtml
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.gohtml"))

// render executes the named page template. A failed execution may have
// already written part of the page, so no error status is sent; the cause is
// logged instead.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		logger.FromRequest(r).Err(err).Str("template", name).Msg("template rendering failed")
	}
}
