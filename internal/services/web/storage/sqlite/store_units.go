package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/translating.space/internal/platform/checksum"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
)

const unitColumns = `u.id, u.translation_id, u.checksum, u.context, u.source, u.target, u.location, u.comment, u.position, u.translated, u.fuzzy, u.updated_at`

const unitDetailSelect = `
SELECT ` + unitColumns + `,
       t.id, t.subproject_id, t.language_code,
       p.id, p.name, p.slug, p.web, p.source_language, p.created_at,
       sp.id, sp.project_id, sp.name, sp.slug, sp.created_at,
       l.code, l.name, l.direction, l.nplurals
FROM units u
JOIN translations t ON t.id = u.translation_id
JOIN subprojects sp ON sp.id = t.subproject_id
JOIN projects p ON p.id = sp.project_id
JOIN languages l ON l.code = t.language_code
`

// PutUnit upserts a unit by (translation, checksum). The checksum is derived
// from source and context when empty.
func (s *Store) PutUnit(ctx context.Context, unit storage.Unit) (storage.Unit, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Unit{}, err
	}
	if unit.TranslationID <= 0 {
		return storage.Unit{}, fmt.Errorf("unit translation is required")
	}
	if unit.Source == "" {
		return storage.Unit{}, fmt.Errorf("unit source is required")
	}
	if strings.TrimSpace(unit.Checksum) == "" {
		unit.Checksum = checksum.Unit(unit.Source, unit.Context)
	}
	unit.Translated = unit.Target != "" && !unit.Fuzzy
	if unit.UpdatedAt.IsZero() {
		unit.UpdatedAt = s.clock()
	}
	if _, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO units (translation_id, checksum, context, source, target, location, comment, position, translated, fuzzy, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(translation_id, checksum) DO UPDATE SET
		   context = excluded.context,
		   source = excluded.source,
		   target = excluded.target,
		   location = excluded.location,
		   comment = excluded.comment,
		   position = excluded.position,
		   translated = excluded.translated,
		   fuzzy = excluded.fuzzy,
		   updated_at = excluded.updated_at`,
		unit.TranslationID, unit.Checksum, unit.Context, unit.Source, unit.Target, unit.Location, unit.Comment,
		unit.Position, boolToInt(unit.Translated), boolToInt(unit.Fuzzy), toMillis(unit.UpdatedAt),
	); err != nil {
		return storage.Unit{}, fmt.Errorf("put unit: %w", err)
	}
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT `+unitColumns+` FROM units u WHERE u.translation_id = ? AND u.checksum = ?`,
		unit.TranslationID, unit.Checksum,
	)
	stored, err := scanUnit(row)
	if err != nil {
		return storage.Unit{}, fmt.Errorf("reload unit: %w", err)
	}
	return stored, nil
}

// GetUnit resolves a unit with its translation by id.
func (s *Store) GetUnit(ctx context.Context, unitID int64) (storage.UnitDetail, error) {
	if err := s.ready(ctx); err != nil {
		return storage.UnitDetail{}, err
	}
	detail, err := scanUnitDetail(s.sqlDB.QueryRowContext(ctx, unitDetailSelect+`WHERE u.id = ?`, unitID))
	if err != nil {
		return storage.UnitDetail{}, notFound(err)
	}
	return detail, nil
}

// GetUnitByChecksum resolves a unit within one translation.
func (s *Store) GetUnitByChecksum(ctx context.Context, translationID int64, sum string) (storage.UnitDetail, error) {
	if err := s.ready(ctx); err != nil {
		return storage.UnitDetail{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, unitDetailSelect+`WHERE u.translation_id = ? AND u.checksum = ?`,
		translationID, strings.ToLower(strings.TrimSpace(sum)),
	)
	detail, err := scanUnitDetail(row)
	if err != nil {
		return storage.UnitDetail{}, notFound(err)
	}
	return detail, nil
}

// ListUnits lists units of one translation in file order.
func (s *Store) ListUnits(ctx context.Context, translationID int64) ([]storage.Unit, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT `+unitColumns+` FROM units u WHERE u.translation_id = ? ORDER BY u.position, u.id`,
		translationID,
	)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var units []storage.Unit
	for rows.Next() {
		unit, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		units = append(units, unit)
	}
	return units, rows.Err()
}

// ListUnitsByChecksum lists the same string in every language of a subproject.
func (s *Store) ListUnitsByChecksum(ctx context.Context, subprojectID int64, sum string) ([]storage.UnitDetail, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	return s.queryUnitDetails(ctx,
		unitDetailSelect+`WHERE t.subproject_id = ? AND u.checksum = ? ORDER BY l.name, l.code`,
		subprojectID, strings.ToLower(strings.TrimSpace(sum)),
	)
}

// ListMemoryUnits lists translated units usable as translation memory.
func (s *Store) ListMemoryUnits(ctx context.Context, query storage.MemoryQuery) ([]storage.UnitDetail, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	if strings.TrimSpace(query.LanguageCode) == "" {
		return nil, fmt.Errorf("memory language is required")
	}
	limit := query.Limit
	if limit <= 0 {
		limit = 1000
	}
	maxLen := query.MaxSourceLen
	if maxLen <= 0 {
		maxLen = 1 << 30
	}
	return s.queryUnitDetails(ctx,
		unitDetailSelect+`WHERE t.language_code = ?
		   AND u.translated = 1
		   AND u.id != ?
		   AND (? = '' OR p.source_language = ?)
		   AND length(u.source) BETWEEN ? AND ?
		 ORDER BY u.updated_at DESC, u.id DESC
		 LIMIT ?`,
		strings.TrimSpace(query.LanguageCode),
		query.ExcludeUnitID,
		query.SourceLanguage, query.SourceLanguage,
		query.MinSourceLen, maxLen,
		limit,
	)
}

// SaveUnitTarget updates a unit target and records the change atomically.
func (s *Store) SaveUnitTarget(ctx context.Context, unitID int64, target string, fuzzy bool, userID int64, at time.Time) (storage.Change, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Change{}, err
	}
	if at.IsZero() {
		at = s.clock()
	}

	var change storage.Change
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var translationID int64
		var previous string
		var wasTranslated int
		err := tx.QueryRowContext(ctx,
			`SELECT translation_id, target, translated FROM units WHERE id = ?`, unitID,
		).Scan(&translationID, &previous, &wasTranslated)
		if err != nil {
			return notFound(err)
		}
		translated := target != "" && !fuzzy
		if _, err := tx.ExecContext(ctx,
			`UPDATE units SET target = ?, fuzzy = ?, translated = ?, updated_at = ? WHERE id = ?`,
			target, boolToInt(fuzzy), boolToInt(translated), toMillis(at), unitID,
		); err != nil {
			return fmt.Errorf("update unit: %w", err)
		}
		action := storage.ActionChange
		if previous == "" {
			action = storage.ActionNew
		}
		change, err = insertChange(ctx, tx, storage.Change{
			TranslationID: translationID,
			UnitID:        unitID,
			UserID:        userID,
			Action:        action,
			Target:        target,
			CreatedAt:     at,
		})
		if err != nil {
			return err
		}
		if wasTranslated != 0 || !translated {
			return nil
		}
		return maybeRecordCompletion(ctx, tx, translationID, userID, at)
	})
	if err != nil {
		return storage.Change{}, err
	}
	return change, nil
}

// maybeRecordCompletion records a completion change when the last untranslated
// unit of a translation gets translated.
func maybeRecordCompletion(ctx context.Context, tx *sql.Tx, translationID, userID int64, at time.Time) error {
	var remaining int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM units WHERE translation_id = ? AND translated = 0`, translationID,
	).Scan(&remaining); err != nil {
		return fmt.Errorf("count untranslated units: %w", err)
	}
	if remaining > 0 {
		return nil
	}
	_, err := insertChange(ctx, tx, storage.Change{
		TranslationID: translationID,
		UserID:        userID,
		Action:        storage.ActionComplete,
		CreatedAt:     at,
	})
	return err
}

func (s *Store) queryUnitDetails(ctx context.Context, query string, args ...any) ([]storage.UnitDetail, error) {
	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query units: %w", err)
	}
	defer rows.Close()

	var details []storage.UnitDetail
	for rows.Next() {
		detail, err := scanUnitDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan unit detail: %w", err)
		}
		details = append(details, detail)
	}
	return details, rows.Err()
}

func scanUnit(row rowScanner) (storage.Unit, error) {
	var unit storage.Unit
	var translated, fuzzy int
	var updatedAt int64
	if err := row.Scan(
		&unit.ID, &unit.TranslationID, &unit.Checksum, &unit.Context, &unit.Source, &unit.Target,
		&unit.Location, &unit.Comment, &unit.Position, &translated, &fuzzy, &updatedAt,
	); err != nil {
		return storage.Unit{}, err
	}
	unit.Translated = translated != 0
	unit.Fuzzy = fuzzy != 0
	unit.UpdatedAt = fromMillis(updatedAt)
	return unit, nil
}

func scanUnitDetail(row rowScanner) (storage.UnitDetail, error) {
	var d storage.UnitDetail
	var translated, fuzzy int
	var updatedAt, projectCreated, subprojectCreated int64
	if err := row.Scan(
		&d.Unit.ID, &d.Unit.TranslationID, &d.Unit.Checksum, &d.Unit.Context, &d.Unit.Source, &d.Unit.Target,
		&d.Unit.Location, &d.Unit.Comment, &d.Unit.Position, &translated, &fuzzy, &updatedAt,
		&d.Translation.ID, &d.Translation.SubprojectID, &d.Translation.LanguageCode,
		&d.Project.ID, &d.Project.Name, &d.Project.Slug, &d.Project.Web, &d.Project.SourceLanguage, &projectCreated,
		&d.Subproject.ID, &d.Subproject.ProjectID, &d.Subproject.Name, &d.Subproject.Slug, &subprojectCreated,
		&d.Language.Code, &d.Language.Name, &d.Language.Direction, &d.Language.NPlurals,
	); err != nil {
		return storage.UnitDetail{}, err
	}
	d.Unit.Translated = translated != 0
	d.Unit.Fuzzy = fuzzy != 0
	d.Unit.UpdatedAt = fromMillis(updatedAt)
	d.Project.CreatedAt = fromMillis(projectCreated)
	d.Subproject.CreatedAt = fromMillis(subprojectCreated)
	return d, nil
}
