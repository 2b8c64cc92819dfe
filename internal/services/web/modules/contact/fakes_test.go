package contact

import (
	"context"
	"net/http"

	"github.com/louisbranch/translating.space/internal/services/web/module"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
)

type fakeGateway struct {
	sender     Sender
	deliverErr error
	senderErr  error

	delivered []Message
	lastUser  int64
}

func (f *fakeGateway) Deliver(_ context.Context, message Message) (int64, error) {
	if f.deliverErr != nil {
		return 0, f.deliverErr
	}
	f.delivered = append(f.delivered, message)
	return int64(len(f.delivered)), nil
}

func (f *fakeGateway) LoadSender(_ context.Context, userID int64) (Sender, error) {
	f.lastUser = userID
	return f.sender, f.senderErr
}

func baseForUser(userID int64) modulehandler.Base {
	return modulehandler.NewBase(module.Dependencies{
		ResolveUserID: func(*http.Request) int64 { return userID },
	})
}
