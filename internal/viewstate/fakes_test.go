package viewstate

import (
	"context"
	"io"
	"sync"
	"sync/atomic"

	"github.com/jonathan/resume-assistant/internal/outcome"
	"github.com/jonathan/resume-assistant/internal/types"
)

type fakeAuth struct {
	calls    atomic.Int32
	login    func(ctx context.Context, email, password string) outcome.Outcome[types.LoginResult]
	logout   func(ctx context.Context) outcome.Outcome[types.LogoutResult]
	register func(ctx context.Context, params types.RegisterParams) outcome.Outcome[types.RegisterResult]
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) outcome.Outcome[types.LoginResult] {
	f.calls.Add(1)
	return f.login(ctx, email, password)
}

func (f *fakeAuth) Logout(ctx context.Context) outcome.Outcome[types.LogoutResult] {
	f.calls.Add(1)
	return f.logout(ctx)
}

func (f *fakeAuth) Register(ctx context.Context, params types.RegisterParams) outcome.Outcome[types.RegisterResult] {
	f.calls.Add(1)
	return f.register(ctx, params)
}

type fakePersonas struct {
	calls  atomic.Int32
	list   func(filter types.PersonaFilter) outcome.Outcome[[]types.Persona]
	create func(name, description, prompt string, isActive bool) outcome.Outcome[types.Persona]
	update func(id int64, name, description, prompt string, isActive bool) outcome.Outcome[types.Persona]
	delete func(id int64) outcome.Outcome[struct{}]
}

func (f *fakePersonas) List(_ context.Context, filter types.PersonaFilter) outcome.Outcome[[]types.Persona] {
	f.calls.Add(1)
	return f.list(filter)
}

func (f *fakePersonas) Create(_ context.Context, name, description, prompt string, isActive bool) outcome.Outcome[types.Persona] {
	f.calls.Add(1)
	return f.create(name, description, prompt, isActive)
}

func (f *fakePersonas) Update(_ context.Context, id int64, name, description, prompt string, isActive bool) outcome.Outcome[types.Persona] {
	f.calls.Add(1)
	return f.update(id, name, description, prompt, isActive)
}

func (f *fakePersonas) Delete(_ context.Context, id int64) outcome.Outcome[struct{}] {
	f.calls.Add(1)
	return f.delete(id)
}

type fakeMypage struct {
	mu      sync.Mutex
	sent    []types.MypageRequest
	get     func() outcome.Outcome[types.Mypage]
	updated func(req types.MypageRequest) outcome.Outcome[types.Mypage]
}

func (f *fakeMypage) Get(context.Context) outcome.Outcome[types.Mypage] {
	return f.get()
}

func (f *fakeMypage) Update(_ context.Context, req types.MypageRequest) outcome.Outcome[types.Mypage] {
	f.mu.Lock()
	f.sent = append(f.sent, req)
	f.mu.Unlock()
	return f.updated(req)
}

type fakeParser struct {
	detail  *types.ParsedResumeDetail
	uploads []string
	parse   func(filename string, data []byte) outcome.Outcome[types.ParsedResumeDetail]
}

func (f *fakeParser) Parse(_ context.Context, filename string, document io.Reader) outcome.Outcome[types.ParsedResumeDetail] {
	data, _ := io.ReadAll(document)
	f.uploads = append(f.uploads, filename)
	o := f.parse(filename, data)
	if v, ok := o.Value(); ok {
		f.detail = &v
	}
	return o
}

func (f *fakeParser) PeekLastParsedDetail() (types.ParsedResumeDetail, bool) {
	if f.detail == nil {
		return types.ParsedResumeDetail{}, false
	}
	return *f.detail, true
}

func (f *fakeParser) ClearLastParsedDetail() { f.detail = nil }
