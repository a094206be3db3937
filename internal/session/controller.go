package session

import (
	"context"
	"errors"
	"sync"

	"techstore/internal/backend"
	"techstore/internal/domain"
	"techstore/internal/validate"
)

var (
	// ErrMissingCredentials is the local login precondition failure;
	// no remote call is made.
	ErrMissingCredentials = errors.New("nome e senha são obrigatórios")
	// ErrSubmissionPending is returned when a login/register arrives
	// while another one is still in flight. The new submission is
	// dropped, never queued.
	ErrSubmissionPending = errors.New("já existe uma submissão em andamento")
)

// Mode selects which credential form the client area shows.
type Mode string

const (
	ModeLogin    Mode = "login"
	ModeRegister Mode = "register"
)

// Kind classifies a feedback message.
type Kind string

const (
	KindError   Kind = "error"
	KindSuccess Kind = "success"
)

// Message is the feedback line shown above the credential form.
type Message struct {
	Kind Kind
	Text string
}

// Controller owns the authentication state of one browser session: the
// current user, the login/register mode, the credential buffer and the
// feedback message. Cart state is independent of it; login and logout
// never touch the cart.
//
// At most one login/register call is in flight at a time; a submission
// arriving while one is pending is ignored. The remote call runs
// outside the lock so reads stay responsive while it is pending.
type Controller struct {
	auth backend.Authenticator

	mu      sync.Mutex
	pending bool
	user    *domain.User
	mode    Mode
	form    domain.RegistrationForm
	msg     Message
}

func NewController(auth backend.Authenticator) *Controller {
	return &Controller{auth: auth, mode: ModeLogin}
}

// Login submits the credentials to the auth service. Empty name or
// password fails locally without a remote call. Every remote failure is
// reported with the same generic message so a caller cannot tell a
// wrong password from an unknown user.
func (c *Controller) Login(ctx context.Context, name, password string) error {
	c.mu.Lock()
	if c.pending {
		c.mu.Unlock()
		return ErrSubmissionPending
	}
	if name == "" || password == "" {
		c.form.Name = name
		c.msg = Message{Kind: KindError, Text: "Preencha nome e senha."}
		c.mu.Unlock()
		return ErrMissingCredentials
	}
	c.pending = true
	c.form.Name = name
	c.mu.Unlock()

	user, err := c.auth.SubmitLogin(ctx, name, password)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = false
	if ctx.Err() != nil {
		// The session was torn down mid-call; drop the result.
		return ctx.Err()
	}
	if err != nil {
		c.form.Password = ""
		c.msg = Message{Kind: KindError, Text: "Nome ou senha incorretos."}
		return err
	}
	c.user = &user
	c.form.Clear()
	c.msg = Message{Kind: KindSuccess, Text: "Bem-vindo(a), " + user.Name + "!"}
	return nil
}

// Register validates the form and submits it. A validation failure
// never reaches the network. Success clears the buffer and switches the
// client area back to the login form; registration never logs the user
// in. An explicit backend rejection is surfaced verbatim, a transport
// failure generically.
func (c *Controller) Register(ctx context.Context, form domain.RegistrationForm) error {
	c.mu.Lock()
	if c.pending {
		c.mu.Unlock()
		return ErrSubmissionPending
	}
	c.form = form
	if err := validate.Registration(form); err != nil {
		c.form.Password = ""
		c.msg = Message{Kind: KindError, Text: err.Error()}
		c.mu.Unlock()
		return err
	}
	c.pending = true
	c.mu.Unlock()

	err := c.auth.SubmitRegistration(ctx, form)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = false
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		c.form.Password = ""
		text := "Erro ao conectar com servidor."
		var se *backend.StatusError
		if errors.As(err, &se) && se.Message != "" {
			text = se.Message
		}
		c.msg = Message{Kind: KindError, Text: text}
		return err
	}
	c.form.Clear()
	c.mode = ModeLogin
	c.msg = Message{Kind: KindSuccess, Text: "Cadastro realizado! Faça login."}
	return nil
}

// Logout drops the session back to anonymous and clears the feedback
// message. Unconditional: logging out while anonymous is a no-op.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = nil
	c.msg = Message{}
}

// SetMode switches between the login and register forms and clears any
// stale feedback.
func (c *Controller) SetMode(m Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if m != ModeLogin && m != ModeRegister {
		return
	}
	c.mode = m
	c.msg = Message{}
}

// User returns the authenticated user, or nil for an anonymous session.
func (c *Controller) User() *domain.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Form returns a copy of the credential buffer for re-rendering.
func (c *Controller) Form() domain.RegistrationForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

func (c *Controller) Feedback() Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.msg
}
