package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-assistant/internal/logging"
	"github.com/jonathan/resume-assistant/internal/outcome"
	"github.com/jonathan/resume-assistant/internal/transport"
	"github.com/jonathan/resume-assistant/internal/types"
	"go.uber.org/zap"
)

const (
	personasPath = "/api/personas/"

	opListPersonas  = "list personas"
	opCreatePersona = "create persona"
	opUpdatePersona = "update persona"
	opDeletePersona = "delete persona"
)

// PersonaRepository manages interviewer personas.
type PersonaRepository struct {
	client *transport.Client
	log    logging.Logger
}

// NewPersonaRepository creates a persona repository on client.
func NewPersonaRepository(client *transport.Client, log logging.Logger) *PersonaRepository {
	return &PersonaRepository{
		client: client,
		log:    orLogger(log).With(zap.String("repository", "persona")),
	}
}

// List returns the personas matching filter. The zero filter lists every persona.
func (r *PersonaRepository) List(ctx context.Context, filter types.PersonaFilter) outcome.Outcome[[]types.Persona] {
	return capture(r.log, opListPersonas, func() ([]types.Persona, error) {
		var payloads []types.PersonaPayload
		if err := r.client.DoJSON(ctx, opListPersonas, http.MethodGet, personasPath, filter.Query(), nil, &payloads); err != nil {
			return nil, err
		}
		personas := make([]types.Persona, 0, len(payloads))
		for _, p := range payloads {
			personas = append(personas, p.ToPersona())
		}
		return personas, nil
	})
}

// Create adds a custom persona. Text fields are trimmed before sending.
func (r *PersonaRepository) Create(ctx context.Context, name, description, prompt string, isActive bool) outcome.Outcome[types.Persona] {
	return capture(r.log, opCreatePersona, func() (types.Persona, error) {
		req := types.NewPersonaRequest(name, description, prompt, isActive)
		var payload types.PersonaPayload
		if err := r.client.DoJSON(ctx, opCreatePersona, http.MethodPost, personasPath, nil, req, &payload); err != nil {
			return types.Persona{}, err
		}
		return payload.ToPersona(), nil
	})
}

// Update replaces the editable fields of persona id.
func (r *PersonaRepository) Update(ctx context.Context, id int64, name, description, prompt string, isActive bool) outcome.Outcome[types.Persona] {
	return capture(r.log, opUpdatePersona, func() (types.Persona, error) {
		req := types.NewPersonaRequest(name, description, prompt, isActive)
		var payload types.PersonaPayload
		if err := r.client.DoJSON(ctx, opUpdatePersona, http.MethodPut, personaPath(id), nil, req, &payload); err != nil {
			return types.Persona{}, err
		}
		return payload.ToPersona(), nil
	})
}

// Delete removes persona id.
func (r *PersonaRepository) Delete(ctx context.Context, id int64) outcome.Outcome[struct{}] {
	return capture(r.log, opDeletePersona, func() (struct{}, error) {
		err := r.client.DoJSON(ctx, opDeletePersona, http.MethodDelete, personaPath(id), nil, nil, nil)
		return struct{}{}, err
	})
}

func personaPath(id int64) string {
	return fmt.Sprintf("%s%d/", personasPath, id)
}
