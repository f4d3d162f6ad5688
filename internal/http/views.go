package http

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// StaticFS returns the embedded copy of the site's static pages and stylesheets.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("embedded static filesystem: " + err.Error())
	}
	return sub
}

const (
	pageDonate       = "donate.html"
	pageConfirmation = "confirmation.html"
	pageProfile      = "profile.html"
	pageStaleSession = "stale_session.html"
	pageError        = "error.html"
)

// LayoutData feeds the shared header and navigation bar.
type LayoutData struct {
	Title  string
	Active string
}

// views holds one template set per page, each cloned from the shared layout
// so that every page can define its own "content" block.
type views struct {
	pages map[string]*template.Template
}

func newViews() *views {
	base := template.Must(template.ParseFS(templateFS, "templates/layout.html"))

	v := &views{pages: make(map[string]*template.Template)}
	for _, page := range []string{pageDonate, pageConfirmation, pageProfile, pageStaleSession, pageError} {
		clone := template.Must(base.Clone())
		v.pages[page] = template.Must(clone.ParseFS(templateFS, "templates/"+page))
	}
	return v
}

// render executes the page into a buffer first so a template failure never
// leaves a half-written response behind.
func (h *Handler) render(c *gin.Context, status int, page string, data any) {
	tmpl, ok := h.views.pages[page]
	if !ok {
		h.logger.Errorf("unknown page template %s", page)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.logger.Errorf("render %s: %v", page, err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

type errorPage struct {
	LayoutData
	Message string
}

func (h *Handler) renderFailure(c *gin.Context, status int, message string) {
	h.render(c, status, pageError, errorPage{
		LayoutData: LayoutData{Title: "Error"},
		Message:    message,
	})
}
