package modules

import (
	"github.com/louisbranch/translating.space/internal/services/web/modules/accounts"
	"github.com/louisbranch/translating.space/internal/services/web/modules/changes"
	"github.com/louisbranch/translating.space/internal/services/web/modules/contact"
	"github.com/louisbranch/translating.space/internal/services/web/modules/editor"
	"github.com/louisbranch/translating.space/internal/services/web/modules/home"
	"github.com/louisbranch/translating.space/internal/services/web/modules/jsviews"
	"github.com/louisbranch/translating.space/internal/services/web/modules/profile"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
)

// PublicModules returns the modules reachable without signing in.
func PublicModules(deps Dependencies) []Module {
	base := modulehandler.NewBase(deps.Resolvers)
	store := deps.Store

	editorOpts := []editor.Option{
		editor.WithGateway(editor.NewStoreGateway(storeOrNil[editor.Store](store))),
		editor.WithBase(base),
		editor.WithSchemePolicy(deps.SchemePolicy),
		editor.WithLogger(deps.Logger),
	}
	if deps.Clock != nil {
		editorOpts = append(editorOpts, editor.WithClock(deps.Clock))
	}

	jsOpts := []jsviews.Option{
		jsviews.WithGateway(jsviews.NewStoreGateway(storeOrNil[jsviews.Store](store))),
		jsviews.WithBase(base),
	}
	if deps.Translator != nil {
		jsOpts = append(jsOpts, jsviews.WithTranslator(deps.Translator))
	}

	return []Module{
		home.New(home.NewStoreGateway(storeOrNil[storage.ProjectStore](store)), base),
		accounts.New(
			accounts.WithGateway(accounts.NewStoreGateway(storeOrNil[storage.UserStore](store))),
			accounts.WithSessions(deps.Sessions),
			accounts.WithBase(base),
			accounts.WithSchemePolicy(deps.SchemePolicy),
			accounts.WithLogger(deps.Logger),
		),
		contact.New(
			contact.WithGateway(contact.NewStoreGateway(storeOrNil[contact.Store](store))),
			contact.WithBase(base),
			contact.WithSchemePolicy(deps.SchemePolicy),
			contact.WithLogger(deps.Logger),
		),
		changes.New(changes.NewStoreGateway(storeOrNil[changes.Store](store)), base),
		editor.New(editorOpts...),
		jsviews.New(jsOpts...),
	}
}

// ProtectedModules returns the modules that require a signed-in user.
func ProtectedModules(deps Dependencies) []Module {
	return []Module{
		profile.New(
			profile.WithGateway(profile.NewStoreGateway(storeOrNil[profile.Store](deps.Store))),
			profile.WithBase(modulehandler.NewBase(deps.Resolvers)),
			profile.WithSchemePolicy(deps.SchemePolicy),
		),
	}
}

// storeOrNil narrows store to T, keeping a missing store nil so gateways
// report themselves unavailable.
func storeOrNil[T any](store storage.Store) T {
	var zero T
	if store == nil {
		return zero
	}
	narrowed, ok := any(store).(T)
	if !ok {
		return zero
	}
	return narrowed
}
