package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"techstore/internal/backend"
	"techstore/internal/domain"
	"techstore/internal/session"
	"techstore/internal/validate"
)

// fakeAuth counts calls so tests can prove when the network boundary
// was never reached.
type fakeAuth struct {
	mu            sync.Mutex
	loginCalls    int
	registerCalls int

	user        domain.User
	loginErr    error
	registerErr error

	// optional hooks running inside the call
	onLogin    func()
	onRegister func()
	block      chan struct{}
}

func (f *fakeAuth) SubmitLogin(ctx context.Context, name, password string) (domain.User, error) {
	f.mu.Lock()
	f.loginCalls++
	f.mu.Unlock()
	if f.onLogin != nil {
		f.onLogin()
	}
	if f.block != nil {
		<-f.block
	}
	return f.user, f.loginErr
}

func (f *fakeAuth) SubmitRegistration(ctx context.Context, form domain.RegistrationForm) error {
	f.mu.Lock()
	f.registerCalls++
	f.mu.Unlock()
	if f.onRegister != nil {
		f.onRegister()
	}
	return f.registerErr
}

func (f *fakeAuth) calls() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loginCalls, f.registerCalls
}

func validForm() domain.RegistrationForm {
	return domain.RegistrationForm{
		Name:     "Maria Silva",
		Password: "segredo1",
		Document: "12345678",
		Address:  "Rua das Flores, 10",
		Card:     "1234567890123456",
	}
}

func TestLogin_MissingCredentialsNeverCallsBackend(t *testing.T) {
	for _, tc := range []struct{ name, password string }{
		{"", "x"},
		{"x", ""},
		{"", ""},
	} {
		auth := &fakeAuth{}
		c := session.NewController(auth)
		err := c.Login(context.Background(), tc.name, tc.password)
		require.ErrorIs(t, err, session.ErrMissingCredentials)

		logins, _ := auth.calls()
		require.Zero(t, logins, "login %q/%q reached the backend", tc.name, tc.password)
		require.Equal(t, session.KindError, c.Feedback().Kind)
		require.Equal(t, "Preencha nome e senha.", c.Feedback().Text)
		require.Nil(t, c.User())
	}
}

func TestLogin_SuccessSetsUserAndClearsBuffer(t *testing.T) {
	auth := &fakeAuth{user: domain.User{ID: "u1", Name: "Maria"}}
	c := session.NewController(auth)

	require.NoError(t, c.Login(context.Background(), "Maria", "segredo1"))

	u := c.User()
	require.NotNil(t, u)
	require.Equal(t, "u1", u.ID)
	require.Equal(t, domain.RegistrationForm{}, c.Form())
	require.Equal(t, session.Message{Kind: session.KindSuccess, Text: "Bem-vindo(a), Maria!"}, c.Feedback())
}

func TestLogin_AnyRemoteFailureIsGeneric(t *testing.T) {
	for _, remoteErr := range []error{
		errors.New("dial tcp: connection refused"),
		&backend.StatusError{Status: 401, Message: "user not found"},
		&backend.StatusError{Status: 500},
	} {
		auth := &fakeAuth{loginErr: remoteErr}
		c := session.NewController(auth)
		err := c.Login(context.Background(), "Maria", "errada")
		require.Error(t, err)
		require.Nil(t, c.User())
		// Account-existence details never leak through the login message.
		require.Equal(t, "Nome ou senha incorretos.", c.Feedback().Text)
		require.Empty(t, c.Form().Password)
	}
}

func TestRegister_ValidationFailureNeverCallsBackend(t *testing.T) {
	auth := &fakeAuth{}
	c := session.NewController(auth)
	f := validForm()
	f.Card = "12345"

	err := c.Register(context.Background(), f)
	var fe *validate.FieldError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "card", fe.Field)

	_, registers := auth.calls()
	require.Zero(t, registers)
	require.Equal(t, session.KindError, c.Feedback().Kind)
	// Entered values stay for re-prompting, except the password.
	require.Equal(t, "Maria Silva", c.Form().Name)
	require.Empty(t, c.Form().Password)
}

func TestRegister_SuccessClearsBufferAndSwitchesToLogin(t *testing.T) {
	auth := &fakeAuth{}
	c := session.NewController(auth)
	c.SetMode(session.ModeRegister)

	require.NoError(t, c.Register(context.Background(), validForm()))

	require.Equal(t, session.ModeLogin, c.Mode())
	require.Empty(t, c.Form().Password)
	require.Empty(t, c.Form().Card)
	require.Equal(t, domain.RegistrationForm{}, c.Form())
	require.Nil(t, c.User(), "registration must not authenticate")
	require.Equal(t, session.Message{Kind: session.KindSuccess, Text: "Cadastro realizado! Faça login."}, c.Feedback())
}

func TestRegister_RejectionMessageShownVerbatim(t *testing.T) {
	auth := &fakeAuth{registerErr: &backend.StatusError{Status: 409, Message: "Usuário já existe."}}
	c := session.NewController(auth)

	require.Error(t, c.Register(context.Background(), validForm()))
	require.Equal(t, "Usuário já existe.", c.Feedback().Text)
}

func TestRegister_TransportFailureIsGeneric(t *testing.T) {
	auth := &fakeAuth{registerErr: errors.New("dial tcp: connection refused")}
	c := session.NewController(auth)

	require.Error(t, c.Register(context.Background(), validForm()))
	require.Equal(t, "Erro ao conectar com servidor.", c.Feedback().Text)
}

func TestLogout_LeavesAnonymousAndClearsFeedback(t *testing.T) {
	auth := &fakeAuth{user: domain.User{ID: "u1", Name: "Maria"}}
	c := session.NewController(auth)
	require.NoError(t, c.Login(context.Background(), "Maria", "segredo1"))

	c.Logout()
	require.Nil(t, c.User())
	require.Equal(t, session.Message{}, c.Feedback())

	// Logging out while anonymous stays a no-op.
	c.Logout()
	require.Nil(t, c.User())
}

func TestLogin_SecondSubmissionWhilePendingIsIgnored(t *testing.T) {
	auth := &fakeAuth{user: domain.User{ID: "u1", Name: "Maria"}, block: make(chan struct{})}
	c := session.NewController(auth)

	started := make(chan struct{})
	auth.onLogin = func() { close(started) }

	done := make(chan error, 1)
	go func() { done <- c.Login(context.Background(), "Maria", "segredo1") }()
	<-started

	err := c.Login(context.Background(), "Maria", "segredo1")
	require.ErrorIs(t, err, session.ErrSubmissionPending)

	close(auth.block)
	require.NoError(t, <-done)

	logins, _ := auth.calls()
	require.Equal(t, 1, logins)
}

func TestLogin_CanceledContextDiscardsResult(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	auth := &fakeAuth{user: domain.User{ID: "u1", Name: "Maria"}}
	auth.onLogin = func() { cancel() }
	c := session.NewController(auth)

	err := c.Login(ctx, "Maria", "segredo1")
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, c.User(), "result after teardown must be discarded")
	require.Equal(t, session.Message{}, c.Feedback())
}

func TestSetMode_UnknownValueIgnored(t *testing.T) {
	c := session.NewController(&fakeAuth{})
	c.SetMode(session.ModeRegister)
	c.SetMode(session.Mode("admin"))
	require.Equal(t, session.ModeRegister, c.Mode())
}
