// Package module defines the feature contract used by web composition.
package module

import "net/http"

// Viewer contains user-facing chrome data for signed-in pages.
type Viewer struct {
	DisplayName string
	Username    string
	ProfileURL  string
}

// ResolveViewer resolves chrome viewer state for a request.
type ResolveViewer func(*http.Request) Viewer

// ResolveSignedIn reports whether the request is associated with a signed-in user.
type ResolveSignedIn func(*http.Request) bool

// ResolveUserID resolves the authenticated user id for a request, or zero.
type ResolveUserID func(*http.Request) int64

// ResolveLanguage returns the preferred UI language stored for the request
// user, or an empty string when none is known.
type ResolveLanguage func(*http.Request) string

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report their
// operational availability.
type HealthReporter interface {
	Healthy() bool
}

// Dependencies carries the request resolvers and site settings shared by
// every feature module.
type Dependencies struct {
	ResolveViewer   ResolveViewer
	ResolveSignedIn ResolveSignedIn
	ResolveUserID   ResolveUserID
	ResolveLanguage ResolveLanguage
	SiteTitle       string
}
