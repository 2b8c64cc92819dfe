package web

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/louisbranch/translating.space/internal/platform/requestctx"
	"github.com/louisbranch/translating.space/internal/services/web/module"
	"github.com/louisbranch/translating.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
)

// SessionResolver reads the signed-in principal from a request.
type SessionResolver interface {
	Resolve(r *http.Request) (requestctx.Principal, bool)
}

// AccountReader loads the account data shown in the page chrome.
type AccountReader interface {
	GetUser(ctx context.Context, userID int64) (storage.User, error)
	GetProfile(ctx context.Context, userID int64) (storage.Profile, error)
}

type requestPrincipalState struct {
	viewerOnce   sync.Once
	viewer       module.Viewer
	languageOnce sync.Once
	language     string
}

type requestPrincipalStateKey struct{}

type principalResolver struct {
	sessions SessionResolver
	accounts AccountReader
}

func newPrincipalResolver(sessions SessionResolver, accounts AccountReader) principalResolver {
	return principalResolver{sessions: sessions, accounts: accounts}
}

// middleware resolves the session once per request and stores the principal
// in the request context.
func (p principalResolver) middleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), requestPrincipalStateKey{}, &requestPrincipalState{})
			if p.sessions != nil {
				if principal, ok := p.sessions.Resolve(r); ok {
					ctx = requestctx.WithPrincipal(ctx, principal)
				}
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func principalState(r *http.Request) *requestPrincipalState {
	if r == nil {
		return nil
	}
	state, _ := r.Context().Value(requestPrincipalStateKey{}).(*requestPrincipalState)
	return state
}

func (p principalResolver) resolveUserID(r *http.Request) int64 {
	if r == nil {
		return 0
	}
	return requestctx.UserIDFromContext(r.Context())
}

func (p principalResolver) resolveSignedIn(r *http.Request) bool {
	return p.resolveUserID(r) > 0
}

func (p principalResolver) resolveViewerUncached(r *http.Request) module.Viewer {
	if r == nil {
		return module.Viewer{}
	}
	principal, ok := requestctx.PrincipalFromContext(r.Context())
	if !ok {
		return module.Viewer{}
	}
	viewer := module.Viewer{
		DisplayName: principal.Username,
		Username:    principal.Username,
		ProfileURL:  routepath.Profile,
	}
	if p.accounts == nil {
		return viewer
	}
	user, err := p.accounts.GetUser(r.Context(), principal.UserID)
	if err != nil {
		return viewer
	}
	if name := strings.TrimSpace(user.FullName()); name != "" {
		viewer.DisplayName = name
	}
	return viewer
}

func (p principalResolver) resolveViewer(r *http.Request) module.Viewer {
	if state := principalState(r); state != nil {
		state.viewerOnce.Do(func() {
			state.viewer = p.resolveViewerUncached(r)
		})
		return state.viewer
	}
	return p.resolveViewerUncached(r)
}

// resolveLanguageUncached returns the UI language stored in the user's
// profile, or an empty string.
func (p principalResolver) resolveLanguageUncached(r *http.Request) string {
	userID := p.resolveUserID(r)
	if userID <= 0 || p.accounts == nil {
		return ""
	}
	profile, err := p.accounts.GetProfile(r.Context(), userID)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(profile.Language)
}

func (p principalResolver) resolveLanguage(r *http.Request) string {
	if state := principalState(r); state != nil {
		state.languageOnce.Do(func() {
			state.language = p.resolveLanguageUncached(r)
		})
		return state.language
	}
	return p.resolveLanguageUncached(r)
}

func (p principalResolver) dependencies(siteTitle string) module.Dependencies {
	return module.Dependencies{
		ResolveViewer:   p.resolveViewer,
		ResolveSignedIn: p.resolveSignedIn,
		ResolveUserID:   p.resolveUserID,
		ResolveLanguage: p.resolveLanguage,
		SiteTitle:       siteTitle,
	}
}
