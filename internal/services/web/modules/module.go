// Package modules composes the web feature modules.
package modules

import (
	"time"

	"github.com/louisbranch/translating.space/internal/services/web/module"
	"github.com/louisbranch/translating.space/internal/services/web/modules/accounts"
	"github.com/louisbranch/translating.space/internal/services/web/modules/jsviews"
	"github.com/louisbranch/translating.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
	"go.uber.org/zap"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries what the registry needs to build every module. Each
// module narrows Store to the interface it consumes.
//
// Request resolvers are part of Resolvers since the server derives them from
// the session codec after construction.
type Dependencies struct {
	Store        storage.Store
	Translator   jsviews.Translator
	Sessions     accounts.SessionWriter
	SchemePolicy requestmeta.SchemePolicy
	Logger       *zap.Logger
	Clock        func() time.Time
	Resolvers    module.Dependencies
}
