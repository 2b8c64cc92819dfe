package accounts

import (
	"context"
	"errors"
	"strings"

	"github.com/louisbranch/translating.space/internal/platform/requestctx"
	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
	"github.com/louisbranch/translating.space/internal/services/web/platform/validate"
	"go.uber.org/zap"
)

const keyInvalidLogin = "login.error.invalid"

type service struct {
	gateway AuthGateway
	logger  *zap.Logger
}

func newService(gateway AuthGateway, logger *zap.Logger) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return service{gateway: gateway, logger: logger}
}

func (s service) login(ctx context.Context, username, password string) (requestctx.Principal, error) {
	username = strings.TrimSpace(username)
	if err := errors.Join(
		validate.Required("username", username),
		validate.Required("password", password),
	); err != nil {
		return requestctx.Principal{}, err
	}
	principal, err := s.gateway.Authenticate(ctx, username, password)
	if errors.Is(err, ErrInvalidCredentials) {
		s.logger.Info("login rejected", zap.String("username", username))
		return requestctx.Principal{}, apperrors.Field("", keyInvalidLogin, "invalid username or password")
	}
	if err != nil {
		return requestctx.Principal{}, err
	}
	s.logger.Info("login", zap.Int64("user_id", principal.UserID), zap.String("username", principal.Username))
	return principal, nil
}
