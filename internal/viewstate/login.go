package viewstate

import (
	"context"
	"strings"

	"github.com/jonathan/resume-assistant/internal/outcome"
	"github.com/jonathan/resume-assistant/internal/types"
)

// LoginState is the login screen.
type LoginState struct {
	Email    string
	Password string
	Status
}

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Login drives the login screen.
type Login struct {
	auth     AuthService
	store    *Store[LoginState]
	guard    guard
	loggedIn *Event[types.LoginResult]
}

// NewLogin creates the login holder.
func NewLogin(auth AuthService) *Login {
	return &Login{
		auth:     auth,
		store:    NewStore(LoginState{}),
		loggedIn: NewEvent[types.LoginResult](),
	}
}

// State is the observable screen state.
func (l *Login) State() *Store[LoginState] { return l.store }

// LoggedIn fires once per successful login.
func (l *Login) LoggedIn() *Event[types.LoginResult] { return l.loggedIn }

// UpdateEmail sets the email field.
func (l *Login) UpdateEmail(v string) {
	l.store.Update(func(s *LoginState) { s.Email = v })
}

// UpdatePassword sets the password field.
func (l *Login) UpdatePassword(v string) {
	l.store.Update(func(s *LoginState) { s.Password = v })
}

// Validate checks the form fields.
func (l *Login) Validate() error {
	s := l.store.Snapshot()
	return validateForm(loginForm{Email: strings.TrimSpace(s.Email), Password: s.Password})
}

// CanSubmit reports whether the submit control should be enabled.
func (l *Login) CanSubmit() bool {
	return !l.store.Snapshot().Loading && l.Validate() == nil
}

// Submit logs in with the current fields. It returns false without calling out when
// a login is already in flight.
func (l *Login) Submit(ctx context.Context) bool {
	s := l.store.Snapshot()
	o, ran := execute(&l.guard, l.store, loginStatus,
		func() outcome.Outcome[types.LoginResult] { return l.auth.Login(ctx, s.Email, s.Password) },
		func(st *LoginState, _ types.LoginResult) { st.Password = "" },
	)
	if v, ok := o.Value(); ran && ok {
		l.loggedIn.Emit(v)
	}
	return ran
}

func loginStatus(s *LoginState) *Status { return &s.Status }
