package contact

import (
	"context"
	"errors"
	"strings"

	"github.com/louisbranch/translating.space/internal/services/web/platform/validate"
	"go.uber.org/zap"
)

const (
	subjectMaxLength = 100
	nameMaxLength    = 30
)

type service struct {
	gateway ContactGateway
	logger  *zap.Logger
}

func newService(gateway ContactGateway, logger *zap.Logger) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return service{gateway: gateway, logger: logger}
}

// prefill returns the sender details of a signed-in user. Lookup failures
// leave the form empty.
func (s service) prefill(ctx context.Context, userID int64) Sender {
	if userID <= 0 {
		return Sender{}
	}
	sender, err := s.gateway.LoadSender(ctx, userID)
	if err != nil {
		s.logger.Warn("load contact sender", zap.Int64("user_id", userID), zap.Error(err))
		return Sender{}
	}
	return sender
}

func (s service) send(ctx context.Context, message Message) (Message, error) {
	message = Message{
		Subject: strings.TrimSpace(message.Subject),
		Name:    strings.TrimSpace(message.Name),
		Email:   strings.TrimSpace(message.Email),
		Content: strings.TrimSpace(message.Content),
	}
	if err := validateMessage(message); err != nil {
		return message, err
	}
	id, err := s.gateway.Deliver(ctx, message)
	if err != nil {
		return message, err
	}
	s.logger.Info("contact message received",
		zap.Int64("message_id", id),
		zap.String("subject", message.Subject),
		zap.String("from", message.Name),
		zap.String("email", message.Email),
	)
	return message, nil
}

func validateMessage(message Message) error {
	subject := validate.Required("subject", message.Subject)
	if subject == nil {
		subject = validate.MaxRunes("subject", message.Subject, subjectMaxLength)
	}
	name := validate.Required("name", message.Name)
	if name == nil {
		name = validate.MaxRunes("name", message.Name, nameMaxLength)
	}
	return errors.Join(
		subject,
		name,
		validate.Email("email", message.Email),
		validate.Required("content", message.Content),
	)
}
