package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"vaani_web/internal/common"
	"vaani_web/internal/middleware"
	"vaani_web/internal/service"
	"vaani_web/internal/session"
)

// UploadHandler accepts recording submissions.
type UploadHandler struct {
	recordings *service.RecordingService
	sessions   *session.Manager
}

func NewUploadHandler(recordings *service.RecordingService, sessions *session.Manager) *UploadHandler {
	return &UploadHandler{recordings: recordings, sessions: sessions}
}

// Upload runs the submission pipeline for the two audio parts of the
// multipart form and redirects back to the recording page with the outcome.
func (h *UploadHandler) Upload(c *gin.Context) {
	ident := c.MustGet(middleware.IdentityKey).(session.Identity)

	sub := service.Submission{
		Username: ident.Username,
		PromptID: c.PostForm("prompt_id"),
		English:  formFileBytes(c, "audio_english"),
		Hindi:    formFileBytes(c, "audio_hindi"),
	}

	if _, err := h.recordings.Submit(c.Request.Context(), sub); err != nil {
		h.flashSubmitError(c, err)
		c.Redirect(http.StatusSeeOther, "/index")
		return
	}

	_ = h.sessions.AddFlash(c.Writer, c.Request, "success", "Recordings uploaded, thank you!")
	c.Redirect(http.StatusSeeOther, "/index")
}

// formFileBytes reads one multipart file part; a missing or unreadable part
// yields nil, which the service rejects as missing input.
func formFileBytes(c *gin.Context, name string) []byte {
	fh, err := c.FormFile(name)
	if err != nil {
		return nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil
	}
	return data
}

func (h *UploadHandler) flashSubmitError(c *gin.Context, err error) {
	var msg string
	switch {
	case errors.Is(err, common.ErrMissingInput):
		msg = common.ErrMissingInput.Error()
	case errors.Is(err, common.ErrAudioProcessing):
		msg = "Could not process the recording, please record again"
	case errors.Is(err, common.ErrUploadFailed):
		msg = "Could not save the recording, please try again"
	default:
		msg = "Submission failed, please try again"
	}
	_ = h.sessions.AddFlash(c.Writer, c.Request, "error", msg)
}
