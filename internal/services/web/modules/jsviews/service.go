package jsviews

import (
	"context"
	"sort"
	"strings"

	"github.com/louisbranch/translating.space/internal/services/mt"
	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
)

// RecentChangesLimit bounds the unit history fragment.
const RecentChangesLimit = 10

// AllServicesName labels merged results of every service.
const AllServicesName = "All"

// Machine translation response statuses carried in the JSON envelope.
const (
	statusOK     = 200
	statusFailed = 500
)

// translation is the JSON envelope of machine translation responses.
type translation struct {
	ResponseStatus  int             `json:"responseStatus"`
	Service         string          `json:"service"`
	ResponseDetails string          `json:"responseDetails"`
	Translations    []mt.Suggestion `json:"translations"`
	Lang            string          `json:"lang"`
	Dir             string          `json:"dir"`
}

func errNotFound(message string) error {
	return apperrors.EK(apperrors.KindNotFound, "web.error.not_found", message)
}

func errInvalidService() error {
	return apperrors.EK(apperrors.KindInvalidInput, "js.error.invalid_service", "Invalid service specified")
}

type service struct {
	gateway    UnitGateway
	translator Translator
}

func newService(gateway UnitGateway, translator Translator) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway, translator: translator}
}

func (s service) mtEnabled() bool {
	return s.translator != nil && len(s.translator.IDs()) > 0
}

func (s service) unit(ctx context.Context, unitID int64) (storage.UnitDetail, error) {
	if unitID <= 0 {
		return storage.UnitDetail{}, errNotFound("unit not found")
	}
	detail, err := s.gateway.GetUnit(ctx, unitID)
	if err != nil {
		return storage.UnitDetail{}, apperrors.FromStorage(err)
	}
	return detail, nil
}

// detail returns the unit named by checksum in every language of the
// subproject, ordered by language name.
func (s service) detail(ctx context.Context, projectSlug, subprojectSlug, checksum string) ([]storage.UnitDetail, error) {
	subproject, err := s.gateway.GetSubproject(ctx, projectSlug, subprojectSlug)
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}
	units, err := s.gateway.ListUnitsByChecksum(ctx, subproject.ID, checksum)
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, errNotFound("unit not found")
	}
	return units, nil
}

// siblings returns the unit in the other languages of its subproject.
func (s service) siblings(ctx context.Context, unitID int64) ([]storage.UnitDetail, error) {
	detail, err := s.unit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	units, err := s.gateway.ListUnitsByChecksum(ctx, detail.Subproject.ID, detail.Unit.Checksum)
	if err != nil {
		return nil, err
	}
	others := make([]storage.UnitDetail, 0, len(units))
	for _, unit := range units {
		if unit.Unit.ID != detail.Unit.ID {
			others = append(others, unit)
		}
	}
	return others, nil
}

func (s service) recentChanges(ctx context.Context, unitID int64) (storage.UnitDetail, []storage.Change, error) {
	detail, err := s.unit(ctx, unitID)
	if err != nil {
		return storage.UnitDetail{}, nil, err
	}
	changes, err := s.gateway.ListChanges(ctx, storage.ChangeFilter{UnitID: detail.Unit.ID, Limit: RecentChangesLimit})
	if err != nil {
		return storage.UnitDetail{}, nil, err
	}
	return detail, changes, nil
}

func (s service) services() []string {
	if s.translator == nil {
		return []string{}
	}
	ids := s.translator.IDs()
	sort.Strings(ids)
	return ids
}

// translate asks one service, or every service when all is set. Service
// failures are reported in the envelope rather than as an error.
func (s service) translate(ctx context.Context, unitID int64, serviceID string, all bool) (translation, error) {
	if !s.mtEnabled() {
		return translation{}, errNotFound("machine translation is disabled")
	}
	detail, err := s.unit(ctx, unitID)
	if err != nil {
		return translation{}, err
	}

	name := AllServicesName
	if !all {
		serviceID = strings.TrimSpace(serviceID)
		svc, ok := s.translator.Lookup(serviceID)
		if serviceID == "" || !ok {
			return translation{}, errInvalidService()
		}
		name = svc.Name()
	}

	req := mt.Request{
		Text:           detail.Unit.Source,
		SourceLanguage: detail.Project.SourceLanguage,
		TargetLanguage: detail.Language.Code,
		UnitID:         detail.Unit.ID,
	}
	var suggestions []mt.Suggestion
	if all {
		suggestions, err = s.translator.TranslateAll(ctx, req)
	} else {
		suggestions, err = s.translator.Translate(ctx, serviceID, req)
	}

	out := translation{
		ResponseStatus: statusOK,
		Service:        name,
		Translations:   suggestions,
		Lang:           detail.Language.Code,
		Dir:            direction(detail.Language),
	}
	if err != nil {
		out.ResponseStatus = statusFailed
		out.ResponseDetails = err.Error()
		out.Translations = nil
	}
	if out.Translations == nil {
		out.Translations = []mt.Suggestion{}
	}
	return out, nil
}

func direction(language storage.Language) string {
	if language.Direction == storage.DirectionRTL {
		return storage.DirectionRTL
	}
	return storage.DirectionLTR
}
