package viewstate

import (
	"context"
	"io"

	"github.com/jonathan/resume-assistant/internal/outcome"
	"github.com/jonathan/resume-assistant/internal/types"
)

// AuthService is the part of repository.AuthRepository the screens use.
type AuthService interface {
	Login(ctx context.Context, email, password string) outcome.Outcome[types.LoginResult]
	Logout(ctx context.Context) outcome.Outcome[types.LogoutResult]
	Register(ctx context.Context, params types.RegisterParams) outcome.Outcome[types.RegisterResult]
}

// PersonaService is implemented by repository.PersonaRepository.
type PersonaService interface {
	List(ctx context.Context, filter types.PersonaFilter) outcome.Outcome[[]types.Persona]
	Create(ctx context.Context, name, description, prompt string, isActive bool) outcome.Outcome[types.Persona]
	Update(ctx context.Context, id int64, name, description, prompt string, isActive bool) outcome.Outcome[types.Persona]
	Delete(ctx context.Context, id int64) outcome.Outcome[struct{}]
}

// MypageService is implemented by repository.MypageRepository.
type MypageService interface {
	Get(ctx context.Context) outcome.Outcome[types.Mypage]
	Update(ctx context.Context, req types.MypageRequest) outcome.Outcome[types.Mypage]
}

// ResumeGenerator is implemented by repository.GenerateResumeRepository.
type ResumeGenerator interface {
	StageRequest(req types.GenerateResumeRequest)
	TakeStagedRequest() (types.GenerateResumeRequest, bool)
	Generate(ctx context.Context, req types.GenerateResumeRequest) outcome.Outcome[types.GeneratedResume]
	StoreGeneratedResult(resume types.GeneratedResume)
	FetchStoredResult() (types.GeneratedResume, bool)
}

// DocumentParser is implemented by repository.ParsePdfRepository.
type DocumentParser interface {
	Parse(ctx context.Context, filename string, document io.Reader) outcome.Outcome[types.ParsedResumeDetail]
	PeekLastParsedDetail() (types.ParsedResumeDetail, bool)
	ClearLastParsedDetail()
}
