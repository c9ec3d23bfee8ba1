package viewstate

import (
	"context"
	"slices"
	"strings"

	"github.com/jonathan/resume-assistant/internal/outcome"
	"github.com/jonathan/resume-assistant/internal/types"
)

// PersonaListState is the persona list screen.
type PersonaListState struct {
	Filter   types.PersonaFilter
	Personas []types.Persona
	Status
}

// PersonaList drives the persona list. Deletions are reflected in place without a
// reload.
type PersonaList struct {
	personas PersonaService
	store    *Store[PersonaListState]
	guard    guard
	deleted  *Event[int64]
}

// NewPersonaList creates the list holder.
func NewPersonaList(personas PersonaService) *PersonaList {
	return &PersonaList{
		personas: personas,
		store:    NewStore(PersonaListState{Personas: []types.Persona{}}),
		deleted:  NewEvent[int64](),
	}
}

// State is the observable screen state.
func (p *PersonaList) State() *Store[PersonaListState] { return p.store }

// Deleted fires with the id of each persona removed.
func (p *PersonaList) Deleted() *Event[int64] { return p.deleted }

// Load fetches the personas matching filter.
func (p *PersonaList) Load(ctx context.Context, filter types.PersonaFilter) bool {
	_, ran := execute(&p.guard, p.store, personaListStatus,
		func() outcome.Outcome[[]types.Persona] { return p.personas.List(ctx, filter) },
		func(s *PersonaListState, list []types.Persona) {
			s.Filter = filter
			s.Personas = list
		},
	)
	return ran
}

// Delete removes a custom persona. Default personas are refused locally.
func (p *PersonaList) Delete(ctx context.Context, id int64) bool {
	current := p.store.Snapshot().Personas
	if i := slices.IndexFunc(current, func(x types.Persona) bool { return x.ID == id }); i >= 0 && current[i].IsDefault() {
		fail(p.store, personaListStatus, ErrDefaultPersona.Error())
		return false
	}

	o, ran := execute(&p.guard, p.store, personaListStatus,
		func() outcome.Outcome[struct{}] { return p.personas.Delete(ctx, id) },
		func(s *PersonaListState, _ struct{}) {
			s.Personas = slices.DeleteFunc(slices.Clone(s.Personas), func(x types.Persona) bool { return x.ID == id })
		},
	)
	if ran && o.IsSuccess() {
		p.deleted.Emit(id)
	}
	return ran
}

func personaListStatus(s *PersonaListState) *Status { return &s.Status }

// PersonaEditorState is the persona create/edit screen.
type PersonaEditorState struct {
	ID          int64
	Editing     bool
	Name        string
	Description string
	Prompt      string
	IsActive    bool
	Status
}

type personaForm struct {
	Name   string `validate:"required,max=100"`
	Prompt string `validate:"required"`
}

// PersonaEditor drives persona creation and editing.
type PersonaEditor struct {
	personas PersonaService
	store    *Store[PersonaEditorState]
	guard    guard
	saved    *Event[types.Persona]
}

// NewPersonaEditor creates an editor for a new, active persona.
func NewPersonaEditor(personas PersonaService) *PersonaEditor {
	return &PersonaEditor{
		personas: personas,
		store:    NewStore(PersonaEditorState{IsActive: true}),
		saved:    NewEvent[types.Persona](),
	}
}

// EditPersona creates an editor for an existing persona. Default personas are
// server-owned and cannot be edited.
func EditPersona(personas PersonaService, persona types.Persona) (*PersonaEditor, error) {
	if persona.IsDefault() {
		return nil, ErrDefaultPersona
	}
	e := NewPersonaEditor(personas)
	e.store.Update(func(s *PersonaEditorState) {
		s.ID = persona.ID
		s.Editing = true
		s.Name = persona.Title
		s.Description = persona.Description
		s.Prompt = persona.Prompt
		s.IsActive = persona.IsActive
	})
	return e, nil
}

// State is the observable screen state.
func (e *PersonaEditor) State() *Store[PersonaEditorState] { return e.store }

// Saved fires once per successful create or update.
func (e *PersonaEditor) Saved() *Event[types.Persona] { return e.saved }

// UpdateName sets the name field.
func (e *PersonaEditor) UpdateName(v string) {
	e.store.Update(func(s *PersonaEditorState) { s.Name = v })
}

// UpdateDescription sets the description field.
func (e *PersonaEditor) UpdateDescription(v string) {
	e.store.Update(func(s *PersonaEditorState) { s.Description = v })
}

// UpdatePrompt sets the prompt field.
func (e *PersonaEditor) UpdatePrompt(v string) {
	e.store.Update(func(s *PersonaEditorState) { s.Prompt = v })
}

// SetActive sets the active flag.
func (e *PersonaEditor) SetActive(v bool) {
	e.store.Update(func(s *PersonaEditorState) { s.IsActive = v })
}

// Validate checks the form fields.
func (e *PersonaEditor) Validate() error {
	s := e.store.Snapshot()
	return validateForm(personaForm{Name: strings.TrimSpace(s.Name), Prompt: strings.TrimSpace(s.Prompt)})
}

// CanSubmit reports whether the submit control should be enabled.
func (e *PersonaEditor) CanSubmit() bool {
	return !e.store.Snapshot().Loading && e.Validate() == nil
}

// Submit creates the persona, or updates it when editing.
func (e *PersonaEditor) Submit(ctx context.Context) bool {
	s := e.store.Snapshot()
	o, ran := execute(&e.guard, e.store, personaEditorStatus,
		func() outcome.Outcome[types.Persona] {
			if s.Editing {
				return e.personas.Update(ctx, s.ID, s.Name, s.Description, s.Prompt, s.IsActive)
			}
			return e.personas.Create(ctx, s.Name, s.Description, s.Prompt, s.IsActive)
		},
		func(st *PersonaEditorState, p types.Persona) {
			st.ID = p.ID
			st.Editing = true
			st.Name = p.Title
			st.Description = p.Description
			st.Prompt = p.Prompt
			st.IsActive = p.IsActive
		},
	)
	if v, ok := o.Value(); ran && ok {
		e.saved.Emit(v)
	}
	return ran
}

func personaEditorStatus(s *PersonaEditorState) *Status { return &s.Status }
