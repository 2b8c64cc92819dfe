package profile

import (
	"context"
	"errors"
	"strings"

	platformi18n "github.com/louisbranch/translating.space/internal/platform/i18n"
	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
	"github.com/louisbranch/translating.space/internal/services/web/platform/validate"
)

const nameMaxLength = 30

const keyUnknownLanguage = "profile.error.unknown_language"

type service struct {
	gateway ProfileGateway
}

func newService(gateway ProfileGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) loadAccount(ctx context.Context, userID int64) (Account, error) {
	if userID <= 0 {
		return Account{}, apperrors.E(apperrors.KindUnauthorized, "sign in required")
	}
	return s.gateway.LoadAccount(ctx, userID)
}

func (s service) listLanguages(ctx context.Context) ([]Language, error) {
	return s.gateway.ListLanguages(ctx)
}

// saveAccount validates both the preference and the account half of the
// form and persists them together. Nothing is saved unless every field is
// valid.
func (s service) saveAccount(ctx context.Context, userID int64, account Account) (Account, error) {
	if userID <= 0 {
		return account, apperrors.E(apperrors.KindUnauthorized, "sign in required")
	}
	languages, err := s.gateway.ListLanguages(ctx)
	if err != nil {
		return account, err
	}
	account = normalizeAccount(account)
	if err := validateAccount(account, languages); err != nil {
		return account, err
	}
	return account, s.gateway.SaveAccount(ctx, userID, account)
}

func normalizeAccount(account Account) Account {
	account.FirstName = strings.TrimSpace(account.FirstName)
	account.LastName = strings.TrimSpace(account.LastName)
	account.Email = strings.TrimSpace(account.Email)
	account.Language = strings.TrimSpace(account.Language)
	account.Languages = dedupe(account.Languages)
	account.SecondaryLanguages = dedupe(account.SecondaryLanguages)
	return account
}

func validateAccount(account Account, languages []Language) error {
	known := make(map[string]bool, len(languages))
	for _, language := range languages {
		known[language.Code] = true
	}
	errs := []error{
		validate.MaxRunes("first_name", account.FirstName, nameMaxLength),
		validate.MaxRunes("last_name", account.LastName, nameMaxLength),
		validate.Email("email", account.Email),
		validateUILanguage(account.Language),
		validateCodes("languages", account.Languages, known),
		validateCodes("secondary_languages", account.SecondaryLanguages, known),
	}
	return errors.Join(errs...)
}

func validateUILanguage(code string) error {
	if code == "" {
		return validate.Required("language", code)
	}
	for _, tag := range platformi18n.SupportedTags() {
		if tag.String() == code {
			return nil
		}
	}
	return apperrors.Field("language", keyUnknownLanguage, "unsupported interface language")
}

func validateCodes(field string, codes []string, known map[string]bool) error {
	for _, code := range codes {
		if !known[code] {
			return apperrors.Field(field, keyUnknownLanguage, "unknown language "+code)
		}
	}
	return nil
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		out = append(out, value)
	}
	return out
}
