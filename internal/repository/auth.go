package repository

import (
	"context"
	"net/http"
	"strings"

	"github.com/jonathan/resume-assistant/internal/logging"
	"github.com/jonathan/resume-assistant/internal/outcome"
	"github.com/jonathan/resume-assistant/internal/transport"
	"github.com/jonathan/resume-assistant/internal/types"
	"go.uber.org/zap"
)

const (
	loginPath    = "/api/users/login/"
	logoutPath   = "/api/users/logout/"
	registerPath = "/api/users/register/"

	opLogin    = "login"
	opLogout   = "logout"
	opRegister = "register"

	logoutFallbackMessage = "로그아웃되었습니다."
)

// AuthRepository signs users in and out. The session cookie itself is kept by the
// transport's session store.
type AuthRepository struct {
	client *transport.Client
	log    logging.Logger
}

// NewAuthRepository creates an auth repository on client.
func NewAuthRepository(client *transport.Client, log logging.Logger) *AuthRepository {
	return &AuthRepository{
		client: client,
		log:    orLogger(log).With(zap.String("repository", "auth")),
	}
}

// Login authenticates with the trimmed email. On success the server's session cookie
// is replayed on every later request of the same client.
func (r *AuthRepository) Login(ctx context.Context, email, password string) outcome.Outcome[types.LoginResult] {
	return capture(r.log, opLogin, func() (types.LoginResult, error) {
		req := types.LoginRequest{Email: strings.TrimSpace(email), Password: password}
		var resp types.AuthResponse
		if err := r.client.DoJSON(ctx, opLogin, http.MethodPost, loginPath, nil, req, &resp); err != nil {
			return types.LoginResult{}, err
		}
		r.log.Info("logged in", zap.String("email", req.Email))
		return types.LoginResult{Message: resp.Message, User: resp.User.ToProfile()}, nil
	})
}

// Logout ends the session. The local session store is cleared whatever the server
// answers; only a network failure is reported as such.
func (r *AuthRepository) Logout(ctx context.Context) outcome.Outcome[types.LogoutResult] {
	return capture(r.log, opLogout, func() (types.LogoutResult, error) {
		var resp types.AuthResponse
		err := r.client.DoJSON(ctx, opLogout, http.MethodPost, logoutPath, nil, nil, &resp)
		r.client.Session().Reset()

		if err != nil {
			if transport.IsNetwork(err) {
				return types.LogoutResult{}, err
			}
			r.log.Warn("server rejected logout, local session cleared", zap.Error(err))
			return types.LogoutResult{Message: logoutFallbackMessage}, nil
		}

		message := strings.TrimSpace(resp.Message)
		if message == "" {
			message = logoutFallbackMessage
		}
		return types.LogoutResult{Message: message}, nil
	})
}

// Register creates an account. Password rules are left to the server.
func (r *AuthRepository) Register(ctx context.Context, params types.RegisterParams) outcome.Outcome[types.RegisterResult] {
	return capture(r.log, opRegister, func() (types.RegisterResult, error) {
		req := params.ToRequest()
		var resp types.AuthResponse
		if err := r.client.DoJSON(ctx, opRegister, http.MethodPost, registerPath, nil, req, &resp); err != nil {
			return types.RegisterResult{}, err
		}
		r.log.Info("registered", zap.String("email", req.Email))
		return types.RegisterResult{Message: resp.Message, User: resp.User.ToProfile()}, nil
	})
}
