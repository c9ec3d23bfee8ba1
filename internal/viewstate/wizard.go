package viewstate

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/resume-assistant/internal/outcome"
	"github.com/jonathan/resume-assistant/internal/types"
)

// UploadState is the first wizard step.
type UploadState struct {
	Filename string
	Size     int
	Status
}

// Upload drives document selection and parsing.
type Upload struct {
	parser DocumentParser
	store  *Store[UploadState]
	guard  guard
	parsed *Event[types.ParsedResumeDetail]

	mu       sync.Mutex
	document []byte
}

// NewUpload creates the upload step.
func NewUpload(parser DocumentParser) *Upload {
	return &Upload{
		parser: parser,
		store:  NewStore(UploadState{}),
		parsed: NewEvent[types.ParsedResumeDetail](),
	}
}

// State is the observable screen state.
func (u *Upload) State() *Store[UploadState] { return u.store }

// Parsed fires once per successful parse. The detail is also left for the next step
// in the parser's last-parsed slot.
func (u *Upload) Parsed() *Event[types.ParsedResumeDetail] { return u.parsed }

// SelectDocument picks the file to upload.
func (u *Upload) SelectDocument(filename string, data []byte) {
	u.mu.Lock()
	u.document = slices.Clone(data)
	u.mu.Unlock()
	u.store.Update(func(s *UploadState) {
		s.Filename = filename
		s.Size = len(data)
		s.Error = ""
	})
}

// Submit uploads the selected document.
func (u *Upload) Submit(ctx context.Context) bool {
	u.mu.Lock()
	doc := u.document
	u.mu.Unlock()
	if len(doc) == 0 {
		fail(u.store, uploadStatus, ErrNoDocument.Error())
		return false
	}

	filename := u.store.Snapshot().Filename
	o, ran := execute(&u.guard, u.store, uploadStatus,
		func() outcome.Outcome[types.ParsedResumeDetail] {
			return u.parser.Parse(ctx, filename, bytes.NewReader(doc))
		},
		nil,
	)
	if v, ok := o.Value(); ran && ok {
		u.parsed.Emit(v)
	}
	return ran
}

func uploadStatus(s *UploadState) *Status { return &s.Status }

// DetailInputState is the detail form step.
type DetailInputState struct {
	Detail types.ParsedResumeDetail
	Status
}

// DetailInput drives the detail form. It makes no remote call: Submit stages the
// generate request for the next step.
type DetailInput struct {
	parser    DocumentParser
	generator ResumeGenerator
	store     *Store[DetailInputState]
	submitted *Event[types.GenerateResumeRequest]
	newID     func() string
}

// NewDetailInput creates the detail step.
func NewDetailInput(parser DocumentParser, generator ResumeGenerator) *DetailInput {
	return &DetailInput{
		parser:    parser,
		generator: generator,
		store:     NewStore(DetailInputState{Detail: types.EmptyParsedResumeDetail()}),
		submitted: NewEvent[types.GenerateResumeRequest](),
		newID:     uuid.NewString,
	}
}

// State is the observable screen state.
func (d *DetailInput) State() *Store[DetailInputState] { return d.store }

// Submitted fires with the staged request.
func (d *DetailInput) Submitted() *Event[types.GenerateResumeRequest] { return d.submitted }

// Init prefills the form from the last parsed detail and clears that slot so the
// detail is used only once. It reports whether a detail was found.
func (d *DetailInput) Init() bool {
	detail, ok := d.parser.PeekLastParsedDetail()
	if !ok {
		return false
	}
	d.parser.ClearLastParsedDetail()
	d.store.Update(func(s *DetailInputState) { s.Detail = detail })
	return true
}

// UpdateDetail applies fn to the scalar fields of the form. Lists are edited with the
// dedicated methods.
func (d *DetailInput) UpdateDetail(fn func(*types.ParsedResumeDetail)) {
	d.store.Update(func(s *DetailInputState) {
		detail := s.Detail
		fn(&detail)
		detail.StrengthKeywords = s.Detail.StrengthKeywords
		detail.Projects = s.Detail.Projects
		detail.MainTechStack = s.Detail.MainTechStack
		s.Detail = detail
	})
}

// AddStrengthKeyword appends a keyword; blanks and duplicates are ignored.
func (d *DetailInput) AddStrengthKeyword(keyword string) bool {
	return d.addTag(keyword, func(p *types.ParsedResumeDetail) *[]string { return &p.StrengthKeywords })
}

// RemoveStrengthKeyword drops keyword i.
func (d *DetailInput) RemoveStrengthKeyword(i int) bool {
	return d.removeTag(i, func(p *types.ParsedResumeDetail) *[]string { return &p.StrengthKeywords })
}

// AddTech appends to the main tech stack; blanks and duplicates are ignored.
func (d *DetailInput) AddTech(tech string) bool {
	return d.addTag(tech, func(p *types.ParsedResumeDetail) *[]string { return &p.MainTechStack })
}

// RemoveTech drops tech stack entry i.
func (d *DetailInput) RemoveTech(i int) bool {
	return d.removeTag(i, func(p *types.ParsedResumeDetail) *[]string { return &p.MainTechStack })
}

// AddProject appends an empty project and returns its local id.
func (d *DetailInput) AddProject() string {
	id := d.newID()
	d.store.Update(func(s *DetailInputState) {
		s.Detail.Projects = appended(s.Detail.Projects, types.ProjectHistoryItem{ID: id})
	})
	return id
}

// UpdateProject replaces the project with the same id.
func (d *DetailInput) UpdateProject(item types.ProjectHistoryItem) bool {
	var ok bool
	d.store.Update(func(s *DetailInputState) {
		i := slices.IndexFunc(s.Detail.Projects, func(p types.ProjectHistoryItem) bool { return p.ID == item.ID })
		s.Detail.Projects, ok = replaced(s.Detail.Projects, i, item)
	})
	return ok
}

// RemoveProject drops the project with id.
func (d *DetailInput) RemoveProject(id string) bool {
	var ok bool
	d.store.Update(func(s *DetailInputState) {
		i := slices.IndexFunc(s.Detail.Projects, func(p types.ProjectHistoryItem) bool { return p.ID == id })
		s.Detail.Projects, ok = removed(s.Detail.Projects, i)
	})
	return ok
}

// Submit stages the generate request built from the form.
func (d *DetailInput) Submit() types.GenerateResumeRequest {
	req := d.store.Snapshot().Detail.ToGenerateRequest()
	d.generator.StageRequest(req)
	d.submitted.Emit(req)
	return req
}

func (d *DetailInput) addTag(v string, field func(*types.ParsedResumeDetail) *[]string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	var ok bool
	d.store.Update(func(s *DetailInputState) {
		list := field(&s.Detail)
		if slices.Contains(*list, v) {
			return
		}
		*list = appended(*list, v)
		ok = true
	})
	return ok
}

func (d *DetailInput) removeTag(i int, field func(*types.ParsedResumeDetail) *[]string) bool {
	var ok bool
	d.store.Update(func(s *DetailInputState) {
		list := field(&s.Detail)
		*list, ok = removed(*list, i)
	})
	return ok
}

// GenerateState is the generation step.
type GenerateState struct {
	Status
}

// Generate drives resume generation from the staged request. A taken request is
// kept until generation succeeds so a failed attempt can be retried, unless a newer
// request is staged in the meantime.
type Generate struct {
	generator ResumeGenerator
	store     *Store[GenerateState]
	guard     guard
	generated *Event[types.GeneratedResume]

	mu      sync.Mutex
	pending *types.GenerateResumeRequest
}

// NewGenerate creates the generation step.
func NewGenerate(generator ResumeGenerator) *Generate {
	return &Generate{
		generator: generator,
		store:     NewStore(GenerateState{}),
		generated: NewEvent[types.GeneratedResume](),
	}
}

// State is the observable screen state.
func (g *Generate) State() *Store[GenerateState] { return g.store }

// Generated fires once the resume is generated and stored for the completion step.
func (g *Generate) Generated() *Event[types.GeneratedResume] { return g.generated }

// Start generates the resume.
func (g *Generate) Start(ctx context.Context) bool {
	req, ok := g.request()
	if !ok {
		fail(g.store, generateStatus, ErrNothingStaged.Error())
		return false
	}

	o, ran := execute(&g.guard, g.store, generateStatus,
		func() outcome.Outcome[types.GeneratedResume] { return g.generator.Generate(ctx, req) },
		nil,
	)
	if v, ok := o.Value(); ran && ok {
		g.generator.StoreGeneratedResult(v)
		g.mu.Lock()
		g.pending = nil
		g.mu.Unlock()
		g.generated.Emit(v)
	}
	return ran
}

// request prefers a freshly staged request over the one kept from a failed attempt.
func (g *Generate) request() (types.GenerateResumeRequest, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if req, ok := g.generator.TakeStagedRequest(); ok {
		g.pending = &req
	}
	if g.pending == nil {
		return types.GenerateResumeRequest{}, false
	}
	return *g.pending, true
}

func generateStatus(s *GenerateState) *Status { return &s.Status }

// CompleteState is the completion step.
type CompleteState struct {
	Resume types.GeneratedResume
	Ready  bool
}

// Complete shows the stored generation result.
type Complete struct {
	generator ResumeGenerator
	store     *Store[CompleteState]
}

// NewComplete creates the completion step.
func NewComplete(generator ResumeGenerator) *Complete {
	return &Complete{generator: generator, store: NewStore(CompleteState{})}
}

// State is the observable screen state.
func (c *Complete) State() *Store[CompleteState] { return c.store }

// Init loads the stored result. It reports whether one was present.
func (c *Complete) Init() bool {
	resume, ok := c.generator.FetchStoredResult()
	c.store.Update(func(s *CompleteState) {
		s.Resume = resume
		s.Ready = ok
	})
	return ok
}
