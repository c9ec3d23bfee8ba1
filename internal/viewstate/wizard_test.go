package viewstate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/jonathan/resume-assistant/internal/outcome"
	"github.com/jonathan/resume-assistant/internal/repository"
	"github.com/jonathan/resume-assistant/internal/transport"
	"github.com/jonathan/resume-assistant/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWizardServer(t *testing.T, generateStatus *atomic.Int32) (*repository.ParsePdfRepository, *repository.GenerateResumeRepository, *[]map[string]any) {
	t.Helper()
	var generated []map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("/parse-pdf/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"target_role": "Backend",
			"strength_keywords": ["grit"],
			"projects": [{"title": "Billing", "start": "2022", "bullets": ["did X", "", "did Y"], "tech_stack": ["Go", "SQL"]}]
		}`))
	})
	mux.HandleFunc("/api/resume/generate/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		generated = append(generated, body)
		if code := generateStatus.Load(); code != 0 {
			w.WriteHeader(int(code))
			return
		}
		_, _ = w.Write([]byte(`{"resume_id":"r1","items":[{"element_id":"e1","type":"TITLED","sub_title":"Projects","content":"Billing"}]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	opts := transport.DefaultOptions()
	opts.BaseURL = srv.URL
	client, err := transport.New(opts)
	require.NoError(t, err)

	return repository.NewParsePdfRepository(client, nil), repository.NewGenerateResumeRepository(client, nil), &generated
}

func TestWizard_EndToEnd(t *testing.T) {
	var status atomic.Int32
	parser, generator, generated := newWizardServer(t, &status)
	ctx := context.Background()

	upload := NewUpload(parser)
	upload.SelectDocument("cv.pdf", []byte("%PDF-1.4"))
	require.True(t, upload.Submit(ctx))
	_, ok := upload.Parsed().Consume()
	require.True(t, ok)

	detail := NewDetailInput(parser, generator)
	require.True(t, detail.Init())
	_, stillCached := parser.PeekLastParsedDetail()
	assert.False(t, stillCached, "detail consumed by the form")
	assert.False(t, NewDetailInput(parser, generator).Init(), "a second form starts empty")

	form := detail.State().Snapshot().Detail
	require.Len(t, form.Projects, 1)
	assert.Equal(t, "• did X\n• did Y\n기술 스택: Go, SQL", form.Projects[0].KeyTasks)

	detail.UpdateDetail(func(d *types.ParsedResumeDetail) { d.Headline = " Builder " })
	assert.True(t, detail.AddTech("Kafka"))
	assert.False(t, detail.AddTech("Kafka"))
	detail.Submit()

	gen := NewGenerate(generator)
	require.True(t, gen.Start(ctx))
	resume, ok := gen.Generated().Consume()
	require.True(t, ok)
	assert.Equal(t, "r1", resume.ID)

	require.Len(t, *generated, 1)
	sent := (*generated)[0]
	assert.Equal(t, "Builder", sent["headline"])
	assert.Equal(t, []any{"Kafka"}, sent["main_tech_stack"])
	projects := sent["projects"].([]any)
	require.Len(t, projects, 1)
	project := projects[0].(map[string]any)
	assert.Equal(t, []any{"did X", "did Y"}, project["bullets"])
	assert.Equal(t, []any{"Go", "SQL"}, project["tech_stack"])

	complete := NewComplete(generator)
	require.True(t, complete.Init())
	assert.Equal(t, "Projects", complete.State().Snapshot().Resume.Items[0].Subtitle)

	// the staged request was consumed
	assert.False(t, NewGenerate(generator).Start(ctx))
}

func TestGenerate_RetryAfterFailureReusesRequest(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusInternalServerError)
	_, generator, generated := newWizardServer(t, &status)
	ctx := context.Background()

	generator.StageRequest(types.GenerateResumeRequest{Headline: "h"})
	gen := NewGenerate(generator)

	require.True(t, gen.Start(ctx))
	assert.Equal(t, "generate resume failed (500)", gen.State().Snapshot().Error)
	_, stored := generator.FetchStoredResult()
	assert.False(t, stored)

	status.Store(0)
	require.True(t, gen.Start(ctx))
	assert.Empty(t, gen.State().Snapshot().Error)

	require.Len(t, *generated, 2)
	assert.Equal(t, (*generated)[0], (*generated)[1])
	_, stored = generator.FetchStoredResult()
	assert.True(t, stored)
}

func TestGenerate_NewlyStagedRequestReplacesFailedOne(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusInternalServerError)
	_, generator, generated := newWizardServer(t, &status)
	ctx := context.Background()
	gen := NewGenerate(generator)

	generator.StageRequest(types.GenerateResumeRequest{Headline: "A"})
	require.True(t, gen.Start(ctx))
	require.NotEmpty(t, gen.State().Snapshot().Error)

	generator.StageRequest(types.GenerateResumeRequest{Headline: "B"})
	status.Store(0)
	require.True(t, gen.Start(ctx))
	assert.Empty(t, gen.State().Snapshot().Error)

	require.Len(t, *generated, 2)
	assert.Equal(t, "A", (*generated)[0]["headline"])
	assert.Equal(t, "B", (*generated)[1]["headline"])
	_, stillStaged := generator.TakeStagedRequest()
	assert.False(t, stillStaged)
}

func TestGenerate_NothingStaged(t *testing.T) {
	var status atomic.Int32
	_, generator, generated := newWizardServer(t, &status)

	gen := NewGenerate(generator)

	assert.False(t, gen.Start(context.Background()))
	assert.Equal(t, ErrNothingStaged.Error(), gen.State().Snapshot().Error)
	assert.Empty(t, *generated)
}

func TestUpload_RequiresDocument(t *testing.T) {
	parser := &fakeParser{}
	u := NewUpload(parser)

	assert.False(t, u.Submit(context.Background()))
	assert.Equal(t, ErrNoDocument.Error(), u.State().Snapshot().Error)
	assert.Empty(t, parser.uploads)
}

func TestUpload_ParseFailure(t *testing.T) {
	parser := &fakeParser{parse: func(string, []byte) outcome.Outcome[types.ParsedResumeDetail] {
		return outcome.NetworkFailure[types.ParsedResumeDetail]()
	}}
	u := NewUpload(parser)
	u.SelectDocument("cv.pdf", []byte("x"))

	u.Submit(context.Background())

	state := u.State().Snapshot()
	assert.Equal(t, NetworkErrorMessage, state.Error)
	assert.Equal(t, 1, state.Size)
	_, ok := u.Parsed().Consume()
	assert.False(t, ok)
}

func TestDetailInput_ProjectEditing(t *testing.T) {
	d := NewDetailInput(&fakeParser{}, nil)
	ids := []string{"a", "b"}
	d.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	assert.False(t, d.Init())
	first := d.AddProject()
	second := d.AddProject()
	assert.True(t, d.UpdateProject(types.ProjectHistoryItem{ID: first, ProjectName: "One", KeyTasks: "• x"}))
	assert.False(t, d.UpdateProject(types.ProjectHistoryItem{ID: "missing"}))
	assert.True(t, d.RemoveProject(second))
	assert.True(t, d.AddStrengthKeyword(" grit "))
	assert.False(t, d.AddStrengthKeyword("  "))
	assert.True(t, d.RemoveStrengthKeyword(0))

	detail := d.State().Snapshot().Detail
	require.Len(t, detail.Projects, 1)
	assert.Equal(t, "One", detail.Projects[0].ProjectName)
	assert.Empty(t, detail.StrengthKeywords)
}

func TestComplete_NothingStored(t *testing.T) {
	var status atomic.Int32
	_, generator, _ := newWizardServer(t, &status)

	c := NewComplete(generator)

	assert.False(t, c.Init())
	assert.False(t, c.State().Snapshot().Ready)
}
