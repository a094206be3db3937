package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"techstore/internal/domain"
	"techstore/internal/log"
	"techstore/internal/session"
)

// AuthHandler dispatches login, registration, logout and form-mode
// switches into the session controller. Outcomes land in the
// controller's feedback message; every intent redirects back home.
type AuthHandler struct {
	Sessions *Registry
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	st := h.Sessions.Get(sid)
	name := c.FormValue("name")
	err := st.Session.Login(c.UserContext(), name, c.FormValue("password"))
	switch {
	case err == nil:
		log.Audit(c, "auth.login.success", map[string]any{"name": name})
	case errors.Is(err, session.ErrMissingCredentials):
		log.Security(c, "auth.login.fail", map[string]any{"reason": "missing_credentials"})
	case errors.Is(err, session.ErrSubmissionPending):
		log.Info(c, "auth.login.ignored", map[string]any{"reason": "pending"})
	default:
		log.Security(c, "auth.login.fail", map[string]any{"name": name})
	}
	return c.Redirect("/")
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	sid := ensureSID(c)
	st := h.Sessions.Get(sid)
	form := domain.RegistrationForm{
		Name:     c.FormValue("name"),
		Password: c.FormValue("password"),
		Document: c.FormValue("document"),
		Address:  c.FormValue("address"),
		Card:     c.FormValue("card"),
	}
	err := st.Session.Register(c.UserContext(), form)
	switch {
	case err == nil:
		log.Audit(c, "auth.register.success", map[string]any{"name": form.Name})
	case errors.Is(err, session.ErrSubmissionPending):
		log.Info(c, "auth.register.ignored", map[string]any{"reason": "pending"})
	default:
		log.Security(c, "auth.register.fail", nil)
	}
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Sessions.Get(sid).Session.Logout()
	log.Audit(c, "auth.logout", nil)
	return c.Redirect("/")
}

// SwitchMode toggles the client area between the login and register forms.
func (h *AuthHandler) SwitchMode(c *fiber.Ctx) error {
	sid := ensureSID(c)
	mode := session.Mode(c.FormValue("mode"))
	h.Sessions.Get(sid).Session.SetMode(mode)
	return c.Redirect("/")
}
