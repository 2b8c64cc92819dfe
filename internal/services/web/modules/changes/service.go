package changes

import (
	"context"
	"strings"

	"github.com/louisbranch/translating.space/internal/services/web/routepath"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
)

// PageSize is the number of changes listed per page.
const PageSize = 50

// listing is one page of filtered changes.
type listing struct {
	Changes []storage.Change
	Total   int
	Page    int
	Pages   int
}

type service struct {
	gateway ChangesGateway
}

func newService(gateway ChangesGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// list returns the requested page. Pages past the end are clamped to the
// last page; an unknown user filter yields an empty listing.
func (s service) list(ctx context.Context, query routepath.ChangesFilter) (listing, error) {
	filter := storage.ChangeFilter{
		ProjectSlug:    query.Project,
		SubprojectSlug: query.Subproject,
		LanguageCode:   query.Language,
		Checksum:       query.Checksum,
	}
	if username := strings.TrimSpace(query.User); username != "" {
		userID, err := s.gateway.LookupUserID(ctx, username)
		if err != nil {
			return listing{}, err
		}
		if userID == 0 {
			return listing{Page: 1, Pages: 1}, nil
		}
		filter.UserID = userID
	}

	total, err := s.gateway.CountChanges(ctx, filter)
	if err != nil {
		return listing{}, err
	}
	pages := (total + PageSize - 1) / PageSize
	if pages < 1 {
		pages = 1
	}
	page := query.Page
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	filter.Limit = PageSize
	filter.Offset = (page - 1) * PageSize
	changes, err := s.gateway.ListChanges(ctx, filter)
	if err != nil {
		return listing{}, err
	}
	return listing{Changes: changes, Total: total, Page: page, Pages: pages}, nil
}
