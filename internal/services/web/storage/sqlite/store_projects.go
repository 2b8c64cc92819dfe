package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/translating.space/internal/services/web/storage"
)

const translationDetailSelect = `
SELECT t.id, t.subproject_id, t.language_code,
       p.id, p.name, p.slug, p.web, p.source_language, p.created_at,
       sp.id, sp.project_id, sp.name, sp.slug, sp.created_at,
       l.code, l.name, l.direction, l.nplurals
FROM translations t
JOIN subprojects sp ON sp.id = t.subproject_id
JOIN projects p ON p.id = sp.project_id
JOIN languages l ON l.code = t.language_code
`

// PutProject upserts a project by slug and returns the stored row.
func (s *Store) PutProject(ctx context.Context, project storage.Project) (storage.Project, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Project{}, err
	}
	project.Slug = strings.TrimSpace(project.Slug)
	project.Name = strings.TrimSpace(project.Name)
	if project.Slug == "" || project.Name == "" {
		return storage.Project{}, fmt.Errorf("project name and slug are required")
	}
	if strings.TrimSpace(project.SourceLanguage) == "" {
		project.SourceLanguage = "en"
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = s.clock()
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO projects (name, slug, web, source_language, created_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(slug) DO UPDATE SET name = excluded.name, web = excluded.web, source_language = excluded.source_language`,
		project.Name, project.Slug, strings.TrimSpace(project.Web), strings.TrimSpace(project.SourceLanguage), toMillis(project.CreatedAt),
	)
	if err != nil {
		return storage.Project{}, fmt.Errorf("put project: %w", err)
	}
	return s.GetProject(ctx, project.Slug)
}

// GetProject fetches a project by slug.
func (s *Store) GetProject(ctx context.Context, slug string) (storage.Project, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Project{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, name, slug, web, source_language, created_at FROM projects WHERE slug = ?`, strings.TrimSpace(slug),
	)
	project, err := scanProject(row)
	if err != nil {
		return storage.Project{}, notFound(err)
	}
	return project, nil
}

// ListProjects lists projects ordered by name.
func (s *Store) ListProjects(ctx context.Context) ([]storage.Project, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, name, slug, web, source_language, created_at FROM projects ORDER BY name, slug`,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []storage.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

// PutSubproject upserts a subproject by (project, slug).
func (s *Store) PutSubproject(ctx context.Context, subproject storage.Subproject) (storage.Subproject, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Subproject{}, err
	}
	subproject.Slug = strings.TrimSpace(subproject.Slug)
	subproject.Name = strings.TrimSpace(subproject.Name)
	if subproject.ProjectID <= 0 || subproject.Slug == "" || subproject.Name == "" {
		return storage.Subproject{}, fmt.Errorf("subproject project, name and slug are required")
	}
	if subproject.CreatedAt.IsZero() {
		subproject.CreatedAt = s.clock()
	}
	if _, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO subprojects (project_id, name, slug, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(project_id, slug) DO UPDATE SET name = excluded.name`,
		subproject.ProjectID, subproject.Name, subproject.Slug, toMillis(subproject.CreatedAt),
	); err != nil {
		return storage.Subproject{}, fmt.Errorf("put subproject: %w", err)
	}
	var createdAt int64
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, created_at FROM subprojects WHERE project_id = ? AND slug = ?`,
		subproject.ProjectID, subproject.Slug,
	).Scan(&subproject.ID, &createdAt)
	if err != nil {
		return storage.Subproject{}, fmt.Errorf("reload subproject: %w", err)
	}
	subproject.CreatedAt = fromMillis(createdAt)
	return subproject, nil
}

// GetSubproject fetches a subproject by project and subproject slug.
func (s *Store) GetSubproject(ctx context.Context, projectSlug, subprojectSlug string) (storage.Subproject, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Subproject{}, err
	}
	var subproject storage.Subproject
	var createdAt int64
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT sp.id, sp.project_id, sp.name, sp.slug, sp.created_at
		 FROM subprojects sp JOIN projects p ON p.id = sp.project_id
		 WHERE p.slug = ? AND sp.slug = ?`,
		strings.TrimSpace(projectSlug), strings.TrimSpace(subprojectSlug),
	).Scan(&subproject.ID, &subproject.ProjectID, &subproject.Name, &subproject.Slug, &createdAt)
	if err != nil {
		return storage.Subproject{}, notFound(err)
	}
	subproject.CreatedAt = fromMillis(createdAt)
	return subproject, nil
}

// PutTranslation ensures a translation exists for (subproject, language).
func (s *Store) PutTranslation(ctx context.Context, translation storage.Translation) (storage.Translation, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Translation{}, err
	}
	translation.LanguageCode = strings.TrimSpace(translation.LanguageCode)
	if translation.SubprojectID <= 0 || translation.LanguageCode == "" {
		return storage.Translation{}, fmt.Errorf("translation subproject and language are required")
	}
	if _, err := s.sqlDB.ExecContext(ctx,
		`INSERT OR IGNORE INTO translations (subproject_id, language_code) VALUES (?, ?)`,
		translation.SubprojectID, translation.LanguageCode,
	); err != nil {
		return storage.Translation{}, fmt.Errorf("put translation: %w", err)
	}
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT id FROM translations WHERE subproject_id = ? AND language_code = ?`,
		translation.SubprojectID, translation.LanguageCode,
	).Scan(&translation.ID)
	if err != nil {
		return storage.Translation{}, fmt.Errorf("reload translation: %w", err)
	}
	return translation, nil
}

// GetTranslation resolves a translation by its URL coordinates.
func (s *Store) GetTranslation(ctx context.Context, projectSlug, subprojectSlug, languageCode string) (storage.TranslationDetail, error) {
	if err := s.ready(ctx); err != nil {
		return storage.TranslationDetail{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx,
		translationDetailSelect+`WHERE p.slug = ? AND sp.slug = ? AND t.language_code = ?`,
		strings.TrimSpace(projectSlug), strings.TrimSpace(subprojectSlug), strings.TrimSpace(languageCode),
	)
	detail, err := scanTranslationDetail(row)
	if err != nil {
		return storage.TranslationDetail{}, notFound(err)
	}
	return detail, nil
}

// ListTranslationOverviews lists every translation with unit statistics.
func (s *Store) ListTranslationOverviews(ctx context.Context) ([]storage.TranslationOverview, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT t.id, t.subproject_id, t.language_code,
       p.id, p.name, p.slug, p.web, p.source_language, p.created_at,
       sp.id, sp.project_id, sp.name, sp.slug, sp.created_at,
       l.code, l.name, l.direction, l.nplurals,
       COUNT(u.id),
       COALESCE(SUM(u.translated), 0),
       COALESCE(SUM(u.fuzzy), 0)
FROM translations t
JOIN subprojects sp ON sp.id = t.subproject_id
JOIN projects p ON p.id = sp.project_id
JOIN languages l ON l.code = t.language_code
LEFT JOIN units u ON u.translation_id = t.id
GROUP BY t.id
ORDER BY p.name, sp.name, l.name`)
	if err != nil {
		return nil, fmt.Errorf("list translation overviews: %w", err)
	}
	defer rows.Close()

	var overviews []storage.TranslationOverview
	for rows.Next() {
		var overview storage.TranslationOverview
		var projectCreated, subprojectCreated int64
		d := &overview.TranslationDetail
		if err := rows.Scan(
			&d.Translation.ID, &d.Translation.SubprojectID, &d.Translation.LanguageCode,
			&d.Project.ID, &d.Project.Name, &d.Project.Slug, &d.Project.Web, &d.Project.SourceLanguage, &projectCreated,
			&d.Subproject.ID, &d.Subproject.ProjectID, &d.Subproject.Name, &d.Subproject.Slug, &subprojectCreated,
			&d.Language.Code, &d.Language.Name, &d.Language.Direction, &d.Language.NPlurals,
			&overview.Total, &overview.Translated, &overview.Fuzzy,
		); err != nil {
			return nil, fmt.Errorf("scan translation overview: %w", err)
		}
		d.Project.CreatedAt = fromMillis(projectCreated)
		d.Subproject.CreatedAt = fromMillis(subprojectCreated)
		overviews = append(overviews, overview)
	}
	return overviews, rows.Err()
}

func scanProject(row rowScanner) (storage.Project, error) {
	var project storage.Project
	var createdAt int64
	if err := row.Scan(&project.ID, &project.Name, &project.Slug, &project.Web, &project.SourceLanguage, &createdAt); err != nil {
		return storage.Project{}, err
	}
	project.CreatedAt = fromMillis(createdAt)
	return project, nil
}

func scanTranslationDetail(row rowScanner) (storage.TranslationDetail, error) {
	var d storage.TranslationDetail
	var projectCreated, subprojectCreated int64
	if err := row.Scan(
		&d.Translation.ID, &d.Translation.SubprojectID, &d.Translation.LanguageCode,
		&d.Project.ID, &d.Project.Name, &d.Project.Slug, &d.Project.Web, &d.Project.SourceLanguage, &projectCreated,
		&d.Subproject.ID, &d.Subproject.ProjectID, &d.Subproject.Name, &d.Subproject.Slug, &subprojectCreated,
		&d.Language.Code, &d.Language.Name, &d.Language.Direction, &d.Language.NPlurals,
	); err != nil {
		return storage.TranslationDetail{}, err
	}
	d.Project.CreatedAt = fromMillis(projectCreated)
	d.Subproject.CreatedAt = fromMillis(subprojectCreated)
	return d, nil
}
