package viewstate

import (
	"context"
	"testing"

	"github.com/jonathan/resume-assistant/internal/outcome"
	"github.com/jonathan/resume-assistant/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillSignup(s *Signup, password, confirm string) {
	s.UpdateForm(func(f *types.RegisterParams) {
		f.Email = "a@b.com"
		f.Password = password
		f.Name = "Lee"
		f.Age = 28
		f.Gender = "여성"
	})
	s.UpdatePasswordConfirm(confirm)
}

func TestSignup_Submit(t *testing.T) {
	var sent types.RegisterParams
	auth := &fakeAuth{register: func(_ context.Context, p types.RegisterParams) outcome.Outcome[types.RegisterResult] {
		sent = p
		return outcome.Success(types.RegisterResult{Message: "created"})
	}}
	s := NewSignup(auth)
	fillSignup(s, "longenough", "longenough")
	require.True(t, s.CanSubmit())

	require.True(t, s.Submit(context.Background()))

	assert.Equal(t, "여성", sent.Gender)
	res, ok := s.Registered().Consume()
	require.True(t, ok)
	assert.Equal(t, "created", res.Message)
}

func TestSignup_PasswordMismatchIsLocal(t *testing.T) {
	auth := &fakeAuth{}
	s := NewSignup(auth)
	fillSignup(s, "longenough", "different")

	assert.False(t, s.CanSubmit())
	assert.ErrorIs(t, s.Validate(), ErrPasswordMismatch)
	assert.False(t, s.Submit(context.Background()))

	assert.Equal(t, ErrPasswordMismatch.Error(), s.State().Snapshot().Error)
	assert.Equal(t, int32(0), auth.calls.Load())
}

func TestSignup_ShortPasswordDisablesSubmit(t *testing.T) {
	s := NewSignup(&fakeAuth{})
	fillSignup(s, "short", "short")

	var formErr *FormError
	require.ErrorAs(t, s.Validate(), &formErr)
	assert.Contains(t, formErr.Fields, "Password")
	assert.False(t, s.CanSubmit())
}

func TestSignup_ServerRejects(t *testing.T) {
	auth := &fakeAuth{register: func(context.Context, types.RegisterParams) outcome.Outcome[types.RegisterResult] {
		return outcome.Failure[types.RegisterResult]("email already registered", 400)
	}}
	s := NewSignup(auth)
	fillSignup(s, "longenough", "longenough")

	s.Submit(context.Background())

	assert.Equal(t, "email already registered", s.State().Snapshot().Error)
	_, ok := s.Registered().Consume()
	assert.False(t, ok)
}
