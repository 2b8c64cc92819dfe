package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/louisbranch/translating.space/internal/services/web/storage"
)

const userColumns = `id, username, email, first_name, last_name, password_hash, is_superuser, created_at, updated_at`

// CreateUser inserts a user with a canonical lowercase username.
func (s *Store) CreateUser(ctx context.Context, u storage.User) (storage.User, error) {
	if err := s.ready(ctx); err != nil {
		return storage.User{}, err
	}
	u.Username = strings.ToLower(strings.TrimSpace(u.Username))
	if u.Username == "" {
		return storage.User{}, fmt.Errorf("username is required")
	}
	now := s.clock()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO users (username, email, first_name, last_name, password_hash, is_superuser, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			u.Username,
			strings.TrimSpace(u.Email),
			strings.TrimSpace(u.FirstName),
			strings.TrimSpace(u.LastName),
			u.PasswordHash,
			boolToInt(u.IsSuperuser),
			toMillis(u.CreatedAt),
			toMillis(u.UpdatedAt),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return storage.ErrAlreadyExists
			}
			return fmt.Errorf("insert user: %w", err)
		}
		u.ID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("user id: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO profiles (user_id, language, updated_at) VALUES (?, '', ?)`,
			u.ID, toMillis(u.CreatedAt),
		); err != nil {
			return fmt.Errorf("insert profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return storage.User{}, err
	}
	return u, nil
}

// GetUser fetches a user by id.
func (s *Store) GetUser(ctx context.Context, userID int64) (storage.User, error) {
	if err := s.ready(ctx); err != nil {
		return storage.User{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, userID)
	u, err := scanUser(row)
	if err != nil {
		return storage.User{}, notFound(err)
	}
	return u, nil
}

// GetUserByUsername fetches a user by case-insensitive username.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (storage.User, error) {
	if err := s.ready(ctx); err != nil {
		return storage.User{}, err
	}
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return storage.User{}, storage.ErrNotFound
	}
	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	u, err := scanUser(row)
	if err != nil {
		return storage.User{}, notFound(err)
	}
	return u, nil
}

// SetPassword replaces the stored password hash.
func (s *Store) SetPassword(ctx context.Context, userID int64, passwordHash string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	res, err := s.sqlDB.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		passwordHash, toMillis(s.clock()), userID,
	)
	if err != nil {
		return fmt.Errorf("set password: %w", err)
	}
	return requireAffected(res)
}

// GetProfile loads a profile with its language lists.
func (s *Store) GetProfile(ctx context.Context, userID int64) (storage.Profile, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Profile{}, err
	}
	var profile storage.Profile
	var updatedAt int64
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT user_id, language, updated_at FROM profiles WHERE user_id = ?`, userID,
	).Scan(&profile.UserID, &profile.Language, &updatedAt)
	if err != nil {
		return storage.Profile{}, notFound(err)
	}
	profile.UpdatedAt = fromMillis(updatedAt)

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT language_code, kind FROM profile_languages WHERE user_id = ? ORDER BY kind, position, language_code`,
		userID,
	)
	if err != nil {
		return storage.Profile{}, fmt.Errorf("list profile languages: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var code, kind string
		if err := rows.Scan(&code, &kind); err != nil {
			return storage.Profile{}, fmt.Errorf("scan profile language: %w", err)
		}
		if kind == "secondary" {
			profile.SecondaryLanguages = append(profile.SecondaryLanguages, code)
		} else {
			profile.Languages = append(profile.Languages, code)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.Profile{}, fmt.Errorf("iterate profile languages: %w", err)
	}
	return profile, nil
}

// SaveAccount updates user name and email together with the profile.
func (s *Store) SaveAccount(ctx context.Context, u storage.User, profile storage.Profile) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if u.ID <= 0 {
		return fmt.Errorf("user id is required")
	}
	profile.UserID = u.ID
	now := s.clock()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE users SET email = ?, first_name = ?, last_name = ?, updated_at = ? WHERE id = ?`,
			strings.TrimSpace(u.Email),
			strings.TrimSpace(u.FirstName),
			strings.TrimSpace(u.LastName),
			toMillis(now),
			u.ID,
		)
		if err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		if err := requireAffected(res); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO profiles (user_id, language, updated_at) VALUES (?, ?, ?)
			 ON CONFLICT(user_id) DO UPDATE SET language = excluded.language, updated_at = excluded.updated_at`,
			profile.UserID, strings.TrimSpace(profile.Language), toMillis(now),
		); err != nil {
			return fmt.Errorf("upsert profile: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM profile_languages WHERE user_id = ?`, profile.UserID); err != nil {
			return fmt.Errorf("clear profile languages: %w", err)
		}
		if err := insertProfileLanguages(ctx, tx, profile.UserID, "primary", profile.Languages); err != nil {
			return err
		}
		return insertProfileLanguages(ctx, tx, profile.UserID, "secondary", profile.SecondaryLanguages)
	})
}

func insertProfileLanguages(ctx context.Context, q queryer, userID int64, kind string, codes []string) error {
	for idx, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if _, err := q.ExecContext(ctx,
			`INSERT OR IGNORE INTO profile_languages (user_id, language_code, kind, position) VALUES (?, ?, ?, ?)`,
			userID, code, kind, idx,
		); err != nil {
			return fmt.Errorf("insert %s profile language %q: %w", kind, code, err)
		}
	}
	return nil
}

// PutLanguage upserts a language by code.
func (s *Store) PutLanguage(ctx context.Context, language storage.Language) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	language.Code = strings.TrimSpace(language.Code)
	if language.Code == "" {
		return fmt.Errorf("language code is required")
	}
	if language.Direction == "" {
		language.Direction = storage.DirectionLTR
	}
	if language.NPlurals <= 0 {
		language.NPlurals = 2
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO languages (code, name, direction, nplurals) VALUES (?, ?, ?, ?)
		 ON CONFLICT(code) DO UPDATE SET name = excluded.name, direction = excluded.direction, nplurals = excluded.nplurals`,
		language.Code, strings.TrimSpace(language.Name), language.Direction, language.NPlurals,
	)
	if err != nil {
		return fmt.Errorf("put language: %w", err)
	}
	return nil
}

// GetLanguage fetches one language.
func (s *Store) GetLanguage(ctx context.Context, code string) (storage.Language, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Language{}, err
	}
	var language storage.Language
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT code, name, direction, nplurals FROM languages WHERE code = ?`, strings.TrimSpace(code),
	).Scan(&language.Code, &language.Name, &language.Direction, &language.NPlurals)
	if err != nil {
		return storage.Language{}, notFound(err)
	}
	return language, nil
}

// ListLanguages lists languages ordered by name.
func (s *Store) ListLanguages(ctx context.Context) ([]storage.Language, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT code, name, direction, nplurals FROM languages ORDER BY name, code`)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	defer rows.Close()

	var languages []storage.Language
	for rows.Next() {
		var language storage.Language
		if err := rows.Scan(&language.Code, &language.Name, &language.Direction, &language.NPlurals); err != nil {
			return nil, fmt.Errorf("scan language: %w", err)
		}
		languages = append(languages, language)
	}
	return languages, rows.Err()
}

// PutContactMessage stores a contact form submission.
func (s *Store) PutContactMessage(ctx context.Context, message storage.ContactMessage) (storage.ContactMessage, error) {
	if err := s.ready(ctx); err != nil {
		return storage.ContactMessage{}, err
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = s.clock()
	}
	res, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO contact_messages (subject, name, email, message, created_at) VALUES (?, ?, ?, ?, ?)`,
		message.Subject, message.Name, message.Email, message.Message, toMillis(message.CreatedAt),
	)
	if err != nil {
		return storage.ContactMessage{}, fmt.Errorf("insert contact message: %w", err)
	}
	message.ID, err = res.LastInsertId()
	if err != nil {
		return storage.ContactMessage{}, fmt.Errorf("contact message id: %w", err)
	}
	return message, nil
}

// ListContactMessages lists the newest contact messages first.
func (s *Store) ListContactMessages(ctx context.Context, limit int) ([]storage.ContactMessage, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, subject, name, email, message, created_at FROM contact_messages ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var messages []storage.ContactMessage
	for rows.Next() {
		var message storage.ContactMessage
		var createdAt int64
		if err := rows.Scan(&message.ID, &message.Subject, &message.Name, &message.Email, &message.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		message.CreatedAt = fromMillis(createdAt)
		messages = append(messages, message)
	}
	return messages, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (storage.User, error) {
	var u storage.User
	var superuser int
	var createdAt, updatedAt int64
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.PasswordHash,
		&superuser,
		&createdAt,
		&updatedAt,
	); err != nil {
		return storage.User{}, err
	}
	u.IsSuperuser = superuser != 0
	u.CreatedAt = fromMillis(createdAt)
	u.UpdatedAt = fromMillis(updatedAt)
	return u, nil
}

func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
