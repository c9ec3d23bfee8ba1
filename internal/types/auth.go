// Package types provides the domain models and wire shapes exchanged with the resume assistant API.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
)

// Gender is the three-way gender enumeration used by user profiles.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Code returns the single-letter wire code (M/F/O).
func (g Gender) Code() string {
	switch g {
	case GenderMale:
		return "M"
	case GenderFemale:
		return "F"
	default:
		return "O"
	}
}

// NormalizeGender maps free-form input (codes, English or Korean labels) onto the
// enumeration. Anything unrecognized becomes GenderOther.
func NormalizeGender(s string) Gender {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "M", "MALE", "MAN", "남", "남성", "남자":
		return GenderMale
	case "F", "FEMALE", "WOMAN", "여", "여성", "여자":
		return GenderFemale
	default:
		return GenderOther
	}
}

// UserProfile is the signed-in user as known to the client.
type UserProfile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Age         int    `json:"age"`
	Gender      Gender `json:"gender"`
	Job         string `json:"job"`
	PhoneNumber string `json:"phone_number"`
}

// LoginRequest is the body of POST /api/users/login/.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterParams carries the signup form. Validation tags drive the form's submit
// button; the server remains the authority on every rule.
type RegisterParams struct {
	Username    string `json:"username"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Name        string `json:"name" validate:"required"`
	Age         int    `json:"age" validate:"gte=0,lte=150"`
	Gender      string `json:"gender"`
	Job         string `json:"job"`
	PhoneNumber string `json:"phone_number"`
}

// RegisterRequest is the body of POST /api/users/register/.
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Gender      string `json:"gender"`
	Job         string `json:"job"`
	PhoneNumber string `json:"phone_number"`
}

// ToRequest builds the wire request. The email is trimmed, the username falls back to
// the email when left blank and the gender is reduced to its M/F/O code.
func (p RegisterParams) ToRequest() RegisterRequest {
	email := strings.TrimSpace(p.Email)
	username := strings.TrimSpace(p.Username)
	if username == "" {
		username = email
	}
	return RegisterRequest{
		Username:    username,
		Email:       email,
		Password:    p.Password,
		Name:        strings.TrimSpace(p.Name),
		Age:         p.Age,
		Gender:      NormalizeGender(p.Gender).Code(),
		Job:         strings.TrimSpace(p.Job),
		PhoneNumber: strings.TrimSpace(p.PhoneNumber),
	}
}

// UserPayload is the user object embedded in auth responses.
type UserPayload struct {
	ID          int64  `json:"id,omitempty"`
	Username    string `json:"username,omitempty"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Gender      string `json:"gender"`
	Job         string `json:"job"`
	PhoneNumber string `json:"phone_number"`
}

// ToProfile converts the wire user into the domain profile.
func (u *UserPayload) ToProfile() UserProfile {
	if u == nil {
		return UserProfile{Gender: GenderOther}
	}
	return UserProfile{
		Name:        u.Name,
		Email:       u.Email,
		Age:         u.Age,
		Gender:      NormalizeGender(u.Gender),
		Job:         u.Job,
		PhoneNumber: u.PhoneNumber,
	}
}

// AuthResponse is the shared shape of login, logout and register responses.
type AuthResponse struct {
	Message string       `json:"message"`
	User    *UserPayload `json:"user,omitempty"`
}

// LoginResult is the outcome value of a successful login.
type LoginResult struct {
	Message string
	User    UserProfile
}

// LogoutResult is the outcome value of a logout.
type LogoutResult struct {
	Message string
}

// RegisterResult is the outcome value of a successful registration.
type RegisterResult struct {
	Message string
	User    UserProfile
}
