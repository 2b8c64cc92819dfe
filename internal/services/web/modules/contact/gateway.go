package contact

import (
	"context"

	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
)

// Message is one submitted contact form.
type Message struct {
	Subject string
	Name    string
	Email   string
	Content string
}

// Sender is the prefill data of a signed-in visitor.
type Sender struct {
	Name  string
	Email string
}

// ContactGateway delivers messages to the administrators' inbox.
type ContactGateway interface {
	Deliver(ctx context.Context, message Message) (int64, error)
	LoadSender(ctx context.Context, userID int64) (Sender, error)
}

// Store is the persistence backing the store gateway.
type Store interface {
	storage.ContactStore
	storage.UserStore
}

// NewStoreGateway returns a gateway over store, or an unavailable gateway
// when store is nil.
func NewStoreGateway(store Store) ContactGateway {
	if store == nil {
		return unavailableGateway{}
	}
	return storeGateway{store: store}
}

type storeGateway struct {
	store Store
}

func (g storeGateway) Deliver(ctx context.Context, message Message) (int64, error) {
	stored, err := g.store.PutContactMessage(ctx, storage.ContactMessage{
		Subject: message.Subject,
		Name:    message.Name,
		Email:   message.Email,
		Message: message.Content,
	})
	if err != nil {
		return 0, err
	}
	return stored.ID, nil
}

func (g storeGateway) LoadSender(ctx context.Context, userID int64) (Sender, error) {
	user, err := g.store.GetUser(ctx, userID)
	if err != nil {
		return Sender{}, apperrors.FromStorage(err)
	}
	return Sender{Name: user.FullName(), Email: user.Email}, nil
}

type unavailableGateway struct{}

func (unavailableGateway) Deliver(context.Context, Message) (int64, error) {
	return 0, apperrors.E(apperrors.KindUnavailable, "contact service is not configured")
}

func (unavailableGateway) LoadSender(context.Context, int64) (Sender, error) {
	return Sender{}, apperrors.E(apperrors.KindUnavailable, "contact service is not configured")
}
