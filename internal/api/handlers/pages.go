package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"vaani_web/internal/corpus"
	"vaani_web/internal/middleware"
	"vaani_web/internal/session"
)

// PageHandler serves the public landing page and the recording page.
type PageHandler struct {
	prompts  *corpus.Provider
	sessions *session.Manager
}

func NewPageHandler(prompts *corpus.Provider, sessions *session.Manager) *PageHandler {
	return &PageHandler{prompts: prompts, sessions: sessions}
}

// Welcome is the public landing page.
func (h *PageHandler) Welcome(c *gin.Context) {
	renderPage(c, h.sessions, "Welcome", `<h1>Bilingual Speech Collection</h1>
<p>Help build an open English/Hindi speech dataset by recording sentences in both languages.</p>
<p><a href="/login">Login</a> | <a href="/register">Register</a></p>`)
}

// Index shows the contributor a random sentence pair and the recording form.
func (h *PageHandler) Index(c *gin.Context) {
	ident := c.MustGet(middleware.IdentityKey).(session.Identity)

	prompt, err := h.prompts.NextPrompt()
	if err != nil {
		_ = h.sessions.AddFlash(c.Writer, c.Request, "error", "Sentences are unavailable right now, please try again later")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	body := fmt.Sprintf(`<h1>Welcome, %s</h1>
<p>Sentence %s</p>
<p lang="en">%s</p>
<p lang="hi">%s</p>
<form method="POST" action="/upload" enctype="multipart/form-data">
<input type="hidden" name="prompt_id" value="%s">
<label>English recording <input type="file" name="audio_english" accept="audio/wav" required></label>
<label>Hindi recording <input type="file" name="audio_hindi" accept="audio/wav" required></label>
<button type="submit">Submit</button>
</form>
<p><a href="/logout">Logout</a></p>`,
		esc(ident.FullName), esc(prompt.SequenceNumber),
		esc(prompt.English), esc(prompt.Hindi), esc(prompt.SequenceNumber))

	renderPage(c, h.sessions, "Record", body)
}
