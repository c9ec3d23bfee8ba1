package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/jonathan/resume-assistant/internal/outcome"
	"github.com/jonathan/resume-assistant/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResumeRepository_StagedRequestConsumedOnce(t *testing.T) {
	repo := NewGenerateResumeRepository(nil, nil)
	a := types.GenerateResumeRequest{Headline: "A"}
	b := types.GenerateResumeRequest{Headline: "B"}

	repo.StageRequest(a)
	repo.StageRequest(b)

	got, ok := repo.TakeStagedRequest()
	require.True(t, ok)
	assert.Equal(t, "B", got.Headline)

	_, ok = repo.TakeStagedRequest()
	assert.False(t, ok)
}

func TestGenerateResumeRepository_StagingInvalidatesStoredResult(t *testing.T) {
	repo := NewGenerateResumeRepository(nil, nil)
	repo.StoreGeneratedResult(types.GeneratedResume{ID: "old"})

	repo.StageRequest(types.GenerateResumeRequest{Headline: "X"})

	_, ok := repo.FetchStoredResult()
	assert.False(t, ok)

	repo.StoreGeneratedResult(types.GeneratedResume{ID: "new"})
	got, ok := repo.FetchStoredResult()
	require.True(t, ok)
	assert.Equal(t, "new", got.ID)

	// fetching does not consume
	_, ok = repo.FetchStoredResult()
	assert.True(t, ok)
}

func TestGenerateResumeRepository_Generate(t *testing.T) {
	var got map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, generatePath, r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{
			"resume_id": 12,
			"created_at": "2024-03-01T09:00:00Z",
			"items": [
				{"element_id": 1, "type": "TITLED", "sub_title": "Projects", "content": "c1"},
				{"element_id": "2", "type": "SIMPLE", "content": null},
				{"element_id": 3, "type": "CHART", "sub_title": "ignored", "content": "c3"}
			]
		}`))
	}))
	repo := NewGenerateResumeRepository(client, nil)

	o := repo.Generate(context.Background(), types.GenerateResumeRequest{Headline: "h"})

	resume, ok := o.Value()
	require.True(t, ok, o.String())
	assert.Equal(t, map[string]any{"headline": "h"}, got)
	assert.Equal(t, "12", resume.ID)
	assert.True(t, resume.UpdatedAt.IsZero())
	require.Len(t, resume.Items, 3)
	assert.Equal(t, "Projects", resume.Items[0].Subtitle)
	assert.Equal(t, "", resume.Items[1].Content)
	assert.Equal(t, types.ItemSimple, resume.Items[2].Type)
	assert.Equal(t, "", resume.Items[2].Subtitle)

	_, stored := repo.FetchStoredResult()
	assert.False(t, stored, "generate must not store its result")
}

func TestGenerateResumeRepository_GenerateFailures(t *testing.T) {
	var hits atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	o := NewGenerateResumeRepository(client, nil).Generate(context.Background(), types.GenerateResumeRequest{})

	assert.Equal(t, outcome.KindError, o.Kind())
	assert.Equal(t, "generate resume failed (500)", o.Message())
	assert.Equal(t, int32(1), hits.Load(), "no retries")
}

func TestGenerateResumeRepository_MissingResumeID(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))

	o := NewGenerateResumeRepository(client, nil).Generate(context.Background(), types.GenerateResumeRequest{})

	assert.Equal(t, outcome.KindError, o.Kind())
	_, hasCode := o.Code()
	assert.False(t, hasCode)
}
