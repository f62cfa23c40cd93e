package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vaani_web/internal/common"
	"vaani_web/internal/service"
	"vaani_web/internal/session"
)

// AuthHandler serves the registration, login, and logout routes.
type AuthHandler struct {
	users    *service.UserService
	sessions *session.Manager
}

func NewAuthHandler(users *service.UserService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions}
}

const registerForm = `<h1>Register</h1>
<form method="POST" action="/register">
<input name="username" placeholder="Username" required>
<input name="full_name" placeholder="Full name" required>
<input name="password" type="password" placeholder="Password" required>
<input name="confirm_password" type="password" placeholder="Confirm password" required>
<input name="gender" placeholder="Gender">
<input name="organization" placeholder="Organization">
<input name="village" placeholder="Village">
<input name="town" placeholder="Town">
<input name="district" placeholder="District">
<input name="state" placeholder="State">
<input name="dob" placeholder="Date of birth">
<button type="submit">Register</button>
</form>
<p><a href="/login">Already registered? Log in</a></p>`

const loginForm = `<h1>Login</h1>
<form method="POST" action="/login">
<input name="username" placeholder="Username" required>
<input name="password" type="password" placeholder="Password" required>
<button type="submit">Login</button>
</form>
<p><a href="/register">New contributor? Register</a></p>`

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	renderPage(c, h.sessions, "Register", registerForm)
}

// Register creates a new contributor account from the submitted form.
func (h *AuthHandler) Register(c *gin.Context) {
	input := service.RegisterInput{
		Username:        c.PostForm("username"),
		FullName:        c.PostForm("full_name"),
		Password:        c.PostForm("password"),
		ConfirmPassword: c.PostForm("confirm_password"),
		Gender:          c.PostForm("gender"),
		Organization:    c.PostForm("organization"),
		Village:         c.PostForm("village"),
		Town:            c.PostForm("town"),
		District:        c.PostForm("district"),
		State:           c.PostForm("state"),
		DateOfBirth:     c.PostForm("dob"),
	}

	if _, err := h.users.Register(input); err != nil {
		h.flashError(c, err, "Registration failed")
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}

	h.flash(c, "success", "User registered successfully")
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	renderPage(c, h.sessions, "Login", loginForm)
}

// Login verifies the submitted credentials and populates the session.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username == "" || password == "" {
		h.flash(c, "error", common.ErrMissingInput.Error())
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	if err := h.sessions.BeginLogin(c.Writer, c.Request); err != nil {
		h.flash(c, "error", common.ErrLoginInProgress.Error())
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	user, err := h.users.Authenticate(username, password)
	if err != nil {
		_ = h.sessions.FailLogin(c.Writer, c.Request)
		h.flash(c, "error", common.ErrInvalidCredentials.Error())
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	if err := h.sessions.CompleteLogin(c.Writer, c.Request, session.Identity{
		UserID:   user.UserID,
		Username: user.Username,
		FullName: user.FullName,
	}); err != nil {
		h.flash(c, "error", "Login failed")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	h.flash(c, "success", "Login successful")
	c.Redirect(http.StatusSeeOther, "/index")
}

// Logout clears all session state.
func (h *AuthHandler) Logout(c *gin.Context) {
	_ = h.sessions.Clear(c.Writer, c.Request)
	h.flash(c, "success", "Logged out successfully")
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) flash(c *gin.Context, kind, message string) {
	_ = h.sessions.AddFlash(c.Writer, c.Request, kind, message)
}

// flashError surfaces known validation errors verbatim and hides everything
// else behind a generic message.
func (h *AuthHandler) flashError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, common.ErrMissingInput),
		errors.Is(err, common.ErrPasswordMismatch),
		errors.Is(err, common.ErrWeakPassword),
		errors.Is(err, common.ErrDuplicateUsername):
		h.flash(c, "error", err.Error())
	default:
		h.flash(c, "error", fallback)
	}
}
