package handlers

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"techstore/internal/backend"
	"techstore/internal/cart"
	"techstore/internal/session"
)

// State is the per-browser-session storefront state: one cart and one
// session controller. The two are independent; nothing in a login or
// logout touches the cart.
type State struct {
	Cart    *cart.Store
	Session *session.Controller
}

// Registry hands out the State for a sid cookie, creating it on first
// touch. Nothing is persisted: a restart
// starts every visitor over, which is the intended lifecycle.
type Registry struct {
	auth backend.Authenticator

	mu       sync.Mutex
	sessions map[string]*State
}

func NewRegistry(auth backend.Authenticator) *Registry {
	return &Registry{auth: auth, sessions: make(map[string]*State)}
}

func (r *Registry) Get(sid string) *State {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.sessions[sid]
	if !ok {
		st = &State{Cart: cart.NewStore(), Session: session.NewController(r.auth)}
		r.sessions[sid] = st
	}
	return st
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}
