package viewstate

import (
	"context"

	"github.com/jonathan/resume-assistant/internal/outcome"
	"github.com/jonathan/resume-assistant/internal/types"
)

// SignupState is the signup screen.
type SignupState struct {
	Form            types.RegisterParams
	PasswordConfirm string
	Status
}

// Signup drives the signup screen.
type Signup struct {
	auth       AuthService
	store      *Store[SignupState]
	guard      guard
	registered *Event[types.RegisterResult]
}

// NewSignup creates the signup holder.
func NewSignup(auth AuthService) *Signup {
	return &Signup{
		auth:       auth,
		store:      NewStore(SignupState{}),
		registered: NewEvent[types.RegisterResult](),
	}
}

// State is the observable screen state.
func (s *Signup) State() *Store[SignupState] { return s.store }

// Registered fires once per successful registration.
func (s *Signup) Registered() *Event[types.RegisterResult] { return s.registered }

// UpdateForm applies fn to the form fields.
func (s *Signup) UpdateForm(fn func(*types.RegisterParams)) {
	s.store.Update(func(st *SignupState) { fn(&st.Form) })
}

// UpdatePasswordConfirm sets the confirmation field.
func (s *Signup) UpdatePasswordConfirm(v string) {
	s.store.Update(func(st *SignupState) { st.PasswordConfirm = v })
}

// Validate checks the form the way the submit control does. The server remains the
// authority on every rule.
func (s *Signup) Validate() error {
	st := s.store.Snapshot()
	if err := validateForm(st.Form); err != nil {
		return err
	}
	if st.Form.Password != st.PasswordConfirm {
		return ErrPasswordMismatch
	}
	return nil
}

// CanSubmit reports whether the submit control should be enabled.
func (s *Signup) CanSubmit() bool {
	return !s.store.Snapshot().Loading && s.Validate() == nil
}

// Submit registers with the current form. A confirmation mismatch is reported
// without calling out.
func (s *Signup) Submit(ctx context.Context) bool {
	st := s.store.Snapshot()
	if st.Form.Password != st.PasswordConfirm {
		fail(s.store, signupStatus, ErrPasswordMismatch.Error())
		return false
	}
	o, ran := execute(&s.guard, s.store, signupStatus,
		func() outcome.Outcome[types.RegisterResult] { return s.auth.Register(ctx, st.Form) },
		nil,
	)
	if v, ok := o.Value(); ran && ok {
		s.registered.Emit(v)
	}
	return ran
}

func signupStatus(s *SignupState) *Status { return &s.Status }
