package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/louisbranch/translating.space/internal/services/web/storage"
)

const changeSelect = `
SELECT c.id, c.translation_id, COALESCE(c.unit_id, 0), COALESCE(c.user_id, 0), c.action, c.target, c.created_at,
       COALESCE(usr.username, ''), p.slug, sp.slug, t.language_code,
       COALESCE(u.checksum, ''), COALESCE(u.source, '')
FROM changes c
JOIN translations t ON t.id = c.translation_id
JOIN subprojects sp ON sp.id = t.subproject_id
JOIN projects p ON p.id = sp.project_id
LEFT JOIN units u ON u.id = c.unit_id
LEFT JOIN users usr ON usr.id = c.user_id
`

// AddChange records an audit entry.
func (s *Store) AddChange(ctx context.Context, change storage.Change) (storage.Change, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Change{}, err
	}
	if change.CreatedAt.IsZero() {
		change.CreatedAt = s.clock()
	}
	return insertChange(ctx, s.sqlDB, change)
}

func insertChange(ctx context.Context, q queryer, change storage.Change) (storage.Change, error) {
	if change.TranslationID <= 0 {
		return storage.Change{}, fmt.Errorf("change translation is required")
	}
	if !change.Action.Valid() {
		return storage.Change{}, fmt.Errorf("change action %d is unknown", change.Action)
	}
	res, err := q.ExecContext(ctx,
		`INSERT INTO changes (translation_id, unit_id, user_id, action, target, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		change.TranslationID,
		nullableID(change.UnitID),
		nullableID(change.UserID),
		int(change.Action),
		change.Target,
		toMillis(change.CreatedAt),
	)
	if err != nil {
		return storage.Change{}, fmt.Errorf("insert change: %w", err)
	}
	change.ID, err = res.LastInsertId()
	if err != nil {
		return storage.Change{}, fmt.Errorf("change id: %w", err)
	}
	return change, nil
}

// ListChanges lists changes newest first.
func (s *Store) ListChanges(ctx context.Context, filter storage.ChangeFilter) ([]storage.Change, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	where, args := changeWhere(filter)
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)
	rows, err := s.sqlDB.QueryContext(ctx,
		changeSelect+where+` ORDER BY c.created_at DESC, c.id DESC LIMIT ? OFFSET ?`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("list changes: %w", err)
	}
	defer rows.Close()

	var changes []storage.Change
	for rows.Next() {
		var change storage.Change
		var action int
		var createdAt int64
		if err := rows.Scan(
			&change.ID, &change.TranslationID, &change.UnitID, &change.UserID, &action, &change.Target, &createdAt,
			&change.Username, &change.ProjectSlug, &change.SubprojectSlug, &change.LanguageCode,
			&change.UnitChecksum, &change.UnitSource,
		); err != nil {
			return nil, fmt.Errorf("scan change: %w", err)
		}
		change.Action = storage.ChangeAction(action)
		change.CreatedAt = fromMillis(createdAt)
		changes = append(changes, change)
	}
	return changes, rows.Err()
}

// CountChanges counts changes matching filter, ignoring paging.
func (s *Store) CountChanges(ctx context.Context, filter storage.ChangeFilter) (int, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	where, args := changeWhere(filter)
	var count int
	err := s.sqlDB.QueryRowContext(ctx, `
SELECT COUNT(*)
FROM changes c
JOIN translations t ON t.id = c.translation_id
JOIN subprojects sp ON sp.id = t.subproject_id
JOIN projects p ON p.id = sp.project_id
LEFT JOIN units u ON u.id = c.unit_id
`+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count changes: %w", err)
	}
	return count, nil
}

func changeWhere(filter storage.ChangeFilter) (string, []any) {
	var clauses []string
	var args []any
	add := func(clause string, value any) {
		clauses = append(clauses, clause)
		args = append(args, value)
	}
	if value := strings.TrimSpace(filter.ProjectSlug); value != "" {
		add("p.slug = ?", value)
	}
	if value := strings.TrimSpace(filter.SubprojectSlug); value != "" {
		add("sp.slug = ?", value)
	}
	if value := strings.TrimSpace(filter.LanguageCode); value != "" {
		add("t.language_code = ?", value)
	}
	if value := strings.ToLower(strings.TrimSpace(filter.Checksum)); value != "" {
		add("u.checksum = ?", value)
	}
	if filter.UnitID > 0 {
		add("c.unit_id = ?", filter.UnitID)
	}
	if filter.UserID > 0 {
		add("c.user_id = ?", filter.UserID)
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

func nullableID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id > 0}
}
