package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jonathan/resume-assistant/internal/outcome"
	"github.com/jonathan/resume-assistant/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonaRepository_ListFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter types.PersonaFilter
		want   string
	}{
		{"no filter", types.PersonaFilter{}, ""},
		{"active only", types.PersonaFilter{ActiveOnly: true}, "active_only=true"},
		{"custom and default", types.PersonaFilter{CustomOnly: true, DefaultOnly: true}, "custom_only=true&default_only=true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rawQuery string
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, personasPath, r.URL.Path)
				rawQuery = r.URL.RawQuery
				_, _ = w.Write([]byte(`[
					{"id":1,"name":"Strict","description":"d","prompt":"p","is_active":true,"is_default":true,"updated_at":"2024-05-01T10:00:00Z"},
					{"id":2,"name":"Mine","description":"","prompt":"","is_active":false,"created_at":"2024-06-01"}
				]`))
			}))

			o := NewPersonaRepository(client, nil).List(context.Background(), tt.filter)

			personas, ok := o.Value()
			require.True(t, ok, o.String())
			assert.Equal(t, tt.want, rawQuery)
			require.Len(t, personas, 2)
			assert.True(t, personas[0].IsDefault())
			assert.Equal(t, "Strict", personas[0].Title)
			assert.False(t, personas[1].IsDefault())
			assert.Equal(t, 2024, personas[1].LastModified.Year())
		})
	}
}

func TestPersonaRepository_CreateTrimsAndReturnsServerEcho(t *testing.T) {
	var got map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":9,"name":"Alice (server)","description":"desc (server)","prompt":"p","is_active":true}`))
	}))

	o := NewPersonaRepository(client, nil).Create(context.Background(), " Alice ", " desc ", " p ", true)

	persona, ok := o.Value()
	require.True(t, ok, o.String())
	assert.Equal(t, "Alice", got["name"])
	assert.Equal(t, "desc", got["description"])
	assert.Equal(t, "p", got["prompt"])
	assert.Equal(t, true, got["is_active"])
	assert.NotContains(t, got, "is_default")

	assert.Equal(t, int64(9), persona.ID)
	assert.Equal(t, "Alice (server)", persona.Title)
	assert.Equal(t, "desc (server)", persona.Description)
	assert.Equal(t, types.IconCustom, persona.IconType)
}

func TestPersonaRepository_UpdateAndDelete(t *testing.T) {
	var calls []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodPut:
			_, _ = w.Write([]byte(`{"id":7,"name":"New","description":"d","prompt":"p","is_active":false}`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	repo := NewPersonaRepository(client, nil)

	updated := repo.Update(context.Background(), 7, "New ", "d", "p", false)
	deleted := repo.Delete(context.Background(), 7)

	persona, ok := updated.Value()
	require.True(t, ok, updated.String())
	assert.Equal(t, "New", persona.Title)
	assert.False(t, persona.IsActive)
	assert.True(t, deleted.IsSuccess())
	assert.Equal(t, []string{"PUT /api/personas/7/", "DELETE /api/personas/7/"}, calls)
}

func TestPersonaRepository_DeleteNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))

	o := NewPersonaRepository(client, nil).Delete(context.Background(), 3)

	assert.Equal(t, outcome.KindError, o.Kind())
	assert.Equal(t, "not found", o.Message())
	code, _ := o.Code()
	assert.Equal(t, http.StatusNotFound, code)
}
