package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vaani_web/internal/session"
)

// renderPage writes a minimal HTML page with any pending flash messages on
// top. The body argument must already be escaped where it interpolates user
// data.
func renderPage(c *gin.Context, sessions *session.Manager, title, body string) {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html><head><title>")
	b.WriteString(esc(title))
	b.WriteString("</title></head><body>\n")

	for _, f := range sessions.Flashes(c.Writer, c.Request) {
		b.WriteString(`<p class="flash flash-` + esc(f.Kind) + `">` + esc(f.Message) + "</p>\n")
	}

	b.WriteString(body)
	b.WriteString("\n</body></html>\n")

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(b.String()))
}

func esc(s string) string {
	return template.HTMLEscapeString(s)
}
