package repository

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-assistant/internal/handoff"
	"github.com/jonathan/resume-assistant/internal/logging"
	"github.com/jonathan/resume-assistant/internal/outcome"
	"github.com/jonathan/resume-assistant/internal/schemas"
	"github.com/jonathan/resume-assistant/internal/transport"
	"github.com/jonathan/resume-assistant/internal/types"
	"go.uber.org/zap"
)

const (
	parsePdfPath    = "/parse-pdf/"
	uploadField     = "file"
	pdfContentType  = "application/pdf"
	defaultFilename = "resume.pdf"

	opParsePdf = "parse pdf"
)

// ParsePdfRepository uploads resume documents for parsing and keeps the last parsed
// detail for the detail-input step.
type ParsePdfRepository struct {
	client *transport.Client
	log    logging.Logger
	newID  func() string

	last handoff.Slot[types.ParsedResumeDetail]
}

// NewParsePdfRepository creates a parse repository on client. The parser may live on
// a different host than the rest of the API, hence its own client.
func NewParsePdfRepository(client *transport.Client, log logging.Logger) *ParsePdfRepository {
	return &ParsePdfRepository{
		client: client,
		log:    orLogger(log).With(zap.String("repository", "parse_pdf")),
		newID:  uuid.NewString,
	}
}

// Parse uploads document and maps the response. On success the detail is also kept
// as the last parsed detail.
func (r *ParsePdfRepository) Parse(ctx context.Context, filename string, document io.Reader) outcome.Outcome[types.ParsedResumeDetail] {
	return capture(r.log, opParsePdf, func() (types.ParsedResumeDetail, error) {
		name := strings.TrimSpace(filename)
		if name == "" {
			name = defaultFilename
		}
		body, err := r.client.PostMultipart(ctx, opParsePdf, parsePdfPath, uploadField, name, pdfContentType, document)
		if err != nil {
			return types.ParsedResumeDetail{}, err
		}
		var resp types.ParsePdfResponse
		if err := decodeChecked(opParsePdf, schemas.ParsePdfResponse, body, &resp); err != nil {
			return types.ParsedResumeDetail{}, err
		}

		detail := resp.ToDetail(r.newID)
		r.last.Set(detail)
		r.log.Info("document parsed", zap.String("filename", name), zap.Int("projects", len(detail.Projects)))
		return detail, nil
	})
}

// PeekLastParsedDetail returns the last parsed detail without clearing it. Callers
// clear it once consumed.
func (r *ParsePdfRepository) PeekLastParsedDetail() (types.ParsedResumeDetail, bool) {
	return r.last.Peek()
}

// SetLastParsedDetail replaces the last parsed detail.
func (r *ParsePdfRepository) SetLastParsedDetail(detail types.ParsedResumeDetail) {
	r.last.Set(detail)
}

// ClearLastParsedDetail drops the last parsed detail.
func (r *ParsePdfRepository) ClearLastParsedDetail() {
	r.last.Clear()
}
