package contact

import (
	"context"
	"errors"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
	"github.com/louisbranch/translating.space/internal/services/web/platform/validate"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func validMessage() Message {
	return Message{
		Subject: "Message from dark side",
		Name:    "Kylo Ren",
		Email:   "kylo@example.com",
		Content: "Hi\n\nThis app looks really cool!",
	}
}

func TestSendDeliversAndLogs(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	gw := &fakeGateway{}
	svc := newService(gw, zap.New(core))

	msg := validMessage()
	msg.Subject = "  " + msg.Subject + " "
	if _, err := svc.send(context.Background(), msg); err != nil {
		t.Fatalf("send() error = %v", err)
	}
	if len(gw.delivered) != 1 {
		t.Fatalf("delivered = %d, want 1", len(gw.delivered))
	}
	if got := gw.delivered[0].Subject; got != "Message from dark side" {
		t.Fatalf("subject = %q", got)
	}
	entries := logs.FilterMessage("contact message received").All()
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["email"]; got != "kylo@example.com" {
		t.Fatalf("logged email = %v", got)
	}
}

func TestSendValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Message)
		field   string
		wantKey string
	}{
		{name: "missing subject", mutate: func(m *Message) { m.Subject = "" }, field: "subject", wantKey: validate.KeyRequired},
		{name: "long subject", mutate: func(m *Message) { m.Subject = strings.Repeat("s", 101) }, field: "subject", wantKey: validate.KeyTooLong},
		{name: "missing name", mutate: func(m *Message) { m.Name = " " }, field: "name", wantKey: validate.KeyRequired},
		{name: "long name", mutate: func(m *Message) { m.Name = strings.Repeat("n", 31) }, field: "name", wantKey: validate.KeyTooLong},
		{name: "bad email", mutate: func(m *Message) { m.Email = "kylo@" }, field: "email", wantKey: validate.KeyEmailInvalid},
		{name: "missing content", mutate: func(m *Message) { m.Content = "\n" }, field: "content", wantKey: validate.KeyRequired},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gw := &fakeGateway{}
			msg := validMessage()
			tc.mutate(&msg)

			_, err := newService(gw, nil).send(context.Background(), msg)
			fields := apperrors.Fields(err)
			if len(fields) != 1 || fields[0].Field != tc.field || fields[0].Key != tc.wantKey {
				t.Fatalf("fields = %+v, want %s/%s", fields, tc.field, tc.wantKey)
			}
			if len(gw.delivered) != 0 {
				t.Fatal("invalid message was delivered")
			}
		})
	}
}

func TestSendPropagatesDeliveryFailure(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{deliverErr: errors.New("disk full")}
	if _, err := newService(gw, nil).send(context.Background(), validMessage()); err == nil {
		t.Fatal("expected delivery error")
	}
}

func TestPrefill(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{sender: Sender{Name: "Weblate Test", Email: "weblate@example.org"}}
	svc := newService(gw, nil)
	if got := svc.prefill(context.Background(), 0); got != (Sender{}) {
		t.Fatalf("anonymous prefill = %+v", got)
	}
	if got := svc.prefill(context.Background(), 5); got.Email != "weblate@example.org" {
		t.Fatalf("prefill = %+v", got)
	}

	gw.senderErr = errors.New("gone")
	if got := svc.prefill(context.Background(), 5); got != (Sender{}) {
		t.Fatalf("failed prefill = %+v", got)
	}
}
