package repository

import (
	"context"
	"net/http"

	"github.com/jonathan/resume-assistant/internal/logging"
	"github.com/jonathan/resume-assistant/internal/outcome"
	"github.com/jonathan/resume-assistant/internal/schemas"
	"github.com/jonathan/resume-assistant/internal/transport"
	"github.com/jonathan/resume-assistant/internal/types"
	"go.uber.org/zap"
)

const (
	mypagePath = "/api/resume/mypage"

	opGetMypage    = "get mypage"
	opUpdateMypage = "update mypage"
)

// MypageRepository reads and replaces the "my page" aggregate.
type MypageRepository struct {
	client *transport.Client
	log    logging.Logger
}

// NewMypageRepository creates a mypage repository on client.
func NewMypageRepository(client *transport.Client, log logging.Logger) *MypageRepository {
	return &MypageRepository{
		client: client,
		log:    orLogger(log).With(zap.String("repository", "mypage")),
	}
}

// Get fetches the aggregate.
func (r *MypageRepository) Get(ctx context.Context) outcome.Outcome[types.Mypage] {
	return capture(r.log, opGetMypage, func() (types.Mypage, error) {
		body, err := r.client.Raw(ctx, opGetMypage, http.MethodGet, mypagePath, nil, nil)
		if err != nil {
			return types.Mypage{}, err
		}
		return decodeMypage(opGetMypage, body)
	})
}

// Update replaces all four collections at once with req.
func (r *MypageRepository) Update(ctx context.Context, req types.MypageRequest) outcome.Outcome[types.Mypage] {
	return capture(r.log, opUpdateMypage, func() (types.Mypage, error) {
		body, err := r.client.Raw(ctx, opUpdateMypage, http.MethodPut, mypagePath, nil, req.Normalize())
		if err != nil {
			return types.Mypage{}, err
		}
		return decodeMypage(opUpdateMypage, body)
	})
}

func decodeMypage(op string, body []byte) (types.Mypage, error) {
	var page types.Mypage
	if err := decodeChecked(op, schemas.Mypage, body, &page); err != nil {
		return types.Mypage{}, err
	}
	return page.Normalize(), nil
}
