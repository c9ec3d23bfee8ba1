package repository

import (
	"context"
	"net/http"

	"github.com/jonathan/resume-assistant/internal/handoff"
	"github.com/jonathan/resume-assistant/internal/logging"
	"github.com/jonathan/resume-assistant/internal/outcome"
	"github.com/jonathan/resume-assistant/internal/schemas"
	"github.com/jonathan/resume-assistant/internal/transport"
	"github.com/jonathan/resume-assistant/internal/types"
	"go.uber.org/zap"
)

const (
	generatePath = "/api/resume/generate/"

	opGenerate = "generate resume"
)

// GenerateResumeRepository calls resume generation and owns the two wizard slots
// around it: the staged request and the last generated result.
type GenerateResumeRepository struct {
	client *transport.Client
	log    logging.Logger

	staged handoff.Slot[types.GenerateResumeRequest]
	result handoff.Slot[types.GeneratedResume]
}

// NewGenerateResumeRepository creates a generate repository on client.
func NewGenerateResumeRepository(client *transport.Client, log logging.Logger) *GenerateResumeRepository {
	return &GenerateResumeRepository{
		client: client,
		log:    orLogger(log).With(zap.String("repository", "generate_resume")),
	}
}

// StageRequest holds req for the generation step, replacing any staged request.
// The stored result is dropped so a stale resume is never shown.
func (r *GenerateResumeRepository) StageRequest(req types.GenerateResumeRequest) {
	r.result.Clear()
	r.staged.Set(req)
}

// TakeStagedRequest returns the staged request and empties the slot.
func (r *GenerateResumeRepository) TakeStagedRequest() (types.GenerateResumeRequest, bool) {
	return r.staged.Take()
}

// Generate asks the server to build a resume. Nothing is stored on success; see
// StoreGeneratedResult.
func (r *GenerateResumeRepository) Generate(ctx context.Context, req types.GenerateResumeRequest) outcome.Outcome[types.GeneratedResume] {
	return capture(r.log, opGenerate, func() (types.GeneratedResume, error) {
		body, err := r.client.Raw(ctx, opGenerate, http.MethodPost, generatePath, nil, req)
		if err != nil {
			return types.GeneratedResume{}, err
		}
		var resp types.GenerateResumeResponse
		if err := decodeChecked(opGenerate, schemas.GenerateResumeResponse, body, &resp); err != nil {
			return types.GeneratedResume{}, err
		}
		resume := resp.ToGeneratedResume()
		r.log.Info("resume generated", zap.String("resume_id", resume.ID), zap.Int("items", len(resume.Items)))
		return resume, nil
	})
}

// StoreGeneratedResult keeps resume for the completion step.
func (r *GenerateResumeRepository) StoreGeneratedResult(resume types.GeneratedResume) {
	r.result.Set(resume)
}

// FetchStoredResult returns the stored resume without clearing it.
func (r *GenerateResumeRepository) FetchStoredResult() (types.GeneratedResume, bool) {
	return r.result.Peek()
}
