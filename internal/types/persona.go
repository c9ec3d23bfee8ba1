package types

import (
	"net/url"
	"strings"
	"time"
)

// IconType tags a persona as server-seeded (default) or user-created (custom).
type IconType string

const (
	IconDefault IconType = "default"
	IconCustom  IconType = "custom"
)

// Persona is an interviewer profile used to flavor AI feedback and interview sessions.
type Persona struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Prompt       string    `json:"prompt"`
	IconType     IconType  `json:"icon_type"`
	IsActive     bool      `json:"is_active"`
	LastModified time.Time `json:"last_modified"`
}

// IsDefault reports whether the persona is server-owned and therefore not editable.
func (p Persona) IsDefault() bool {
	return p.IconType == IconDefault
}

// PersonaFilter selects a subset of personas. Omitting every flag lists all of them.
type PersonaFilter struct {
	ActiveOnly  bool
	CustomOnly  bool
	DefaultOnly bool
}

// Query encodes the filter; flags are only sent when set.
func (f PersonaFilter) Query() url.Values {
	q := url.Values{}
	if f.ActiveOnly {
		q.Set("active_only", "true")
	}
	if f.CustomOnly {
		q.Set("custom_only", "true")
	}
	if f.DefaultOnly {
		q.Set("default_only", "true")
	}
	return q
}

// PersonaRequest is the body of persona create and update calls. It has no way to
// express the default flag, so the client can never create a default persona.
type PersonaRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
	IsActive    bool   `json:"is_active"`
}

// NewPersonaRequest builds a request with every text field trimmed.
func NewPersonaRequest(name, description, prompt string, isActive bool) PersonaRequest {
	return PersonaRequest{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Prompt:      strings.TrimSpace(prompt),
		IsActive:    isActive,
	}
}

// PersonaPayload is a persona object as returned by the API.
type PersonaPayload struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
	IsActive    bool   `json:"is_active"`
	IsDefault   bool   `json:"is_default"`
	IconType    string `json:"icon_type,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// ToPersona converts the payload to the domain persona.
func (p PersonaPayload) ToPersona() Persona {
	icon := IconCustom
	if p.IsDefault || strings.EqualFold(strings.TrimSpace(p.IconType), string(IconDefault)) {
		icon = IconDefault
	}
	modified := ParseTimestamp(p.UpdatedAt)
	if modified.IsZero() {
		modified = ParseTimestamp(p.CreatedAt)
	}
	return Persona{
		ID:           p.ID,
		Title:        p.Name,
		Description:  p.Description,
		Prompt:       p.Prompt,
		IconType:     icon,
		IsActive:     p.IsActive,
		LastModified: modified,
	}
}
