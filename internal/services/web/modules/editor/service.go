package editor

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
	"go.uber.org/zap"
)

// location addresses one translation by its URL segments.
type location struct {
	Project    string
	Subproject string
	Language   string
}

// state is a translation with the unit selected for editing. Index is -1
// when the translation has no units.
type state struct {
	Detail storage.TranslationDetail
	Units  []storage.Unit
	Index  int
}

func (s state) current() (storage.Unit, bool) {
	if s.Index < 0 || s.Index >= len(s.Units) {
		return storage.Unit{}, false
	}
	return s.Units[s.Index], true
}

type service struct {
	gateway EditorGateway
	logger  *zap.Logger
	now     func() time.Time
}

func newService(gateway EditorGateway, logger *zap.Logger, now func() time.Time) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return service{gateway: gateway, logger: logger, now: now}
}

// load selects the unit named by checksum. Without a checksum it picks the
// first untranslated unit, or the first unit when all are translated.
func (s service) load(ctx context.Context, loc location, checksum string) (state, error) {
	detail, err := s.gateway.GetTranslation(ctx, loc.Project, loc.Subproject, loc.Language)
	if err != nil {
		return state{}, apperrors.FromStorage(err)
	}
	units, err := s.gateway.ListUnits(ctx, detail.Translation.ID)
	if err != nil {
		return state{}, err
	}
	st := state{Detail: detail, Units: units, Index: -1}
	if len(units) == 0 {
		return st, nil
	}
	checksum = strings.ToLower(strings.TrimSpace(checksum))
	if checksum != "" {
		for i, unit := range units {
			if unit.Checksum == checksum {
				st.Index = i
				return st, nil
			}
		}
		return state{}, apperrors.EK(apperrors.KindNotFound, "web.error.not_found", "unit not found")
	}
	st.Index = 0
	for i, unit := range units {
		if !unit.Translated {
			st.Index = i
			break
		}
	}
	return st, nil
}

// save stores target for the unit named by checksum and returns the
// updated editor state.
func (s service) save(ctx context.Context, loc location, checksum, target string, fuzzy bool, userID int64) (state, error) {
	if userID <= 0 {
		return state{}, apperrors.E(apperrors.KindUnauthorized, "sign in required")
	}
	if strings.TrimSpace(checksum) == "" {
		return state{}, apperrors.Field("", "editor.error.missing_checksum", "missing unit checksum")
	}
	st, err := s.load(ctx, loc, checksum)
	if err != nil {
		return state{}, err
	}
	unit, ok := st.current()
	if !ok {
		return state{}, apperrors.EK(apperrors.KindNotFound, "web.error.not_found", "unit not found")
	}
	target = strings.ReplaceAll(target, "\r\n", "\n")
	change, err := s.gateway.SaveUnitTarget(ctx, unit.ID, target, fuzzy, userID, s.now())
	if err != nil {
		return state{}, apperrors.FromStorage(err)
	}
	s.logger.Info("unit translated",
		zap.Int64("unit_id", unit.ID),
		zap.Int64("user_id", userID),
		zap.String("language", st.Detail.Language.Code),
		zap.String("action", change.Action.MessageKey()),
	)
	unit.Target = target
	unit.Fuzzy = fuzzy
	unit.Translated = target != "" && !fuzzy
	st.Units[st.Index] = unit
	return st, nil
}
