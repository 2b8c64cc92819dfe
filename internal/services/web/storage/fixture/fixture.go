// Package fixture loads YAML seed data into a store.
//
// A fixture file lists languages, users and a project tree down to units.
// Loading is idempotent: rows are upserted by their natural keys and
// existing users are left untouched.
package fixture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/louisbranch/translating.space/internal/services/web/storage"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Store is the persistence surface fixtures write to.
type Store interface {
	storage.UserStore
	storage.LanguageStore
	storage.ProjectStore
	storage.UnitStore
}

// File is the decoded fixture document.
type File struct {
	Languages []Language `yaml:"languages"`
	Users     []User     `yaml:"users"`
	Projects  []Project  `yaml:"projects"`
}

// Language is one language row.
type Language struct {
	Code      string `yaml:"code"`
	Name      string `yaml:"name"`
	Direction string `yaml:"direction"`
	NPlurals  int    `yaml:"nplurals"`
}

// User is one account. Password is hashed on load; PasswordHash is stored
// as is.
type User struct {
	Username     string `yaml:"username"`
	Email        string `yaml:"email"`
	FirstName    string `yaml:"first_name"`
	LastName     string `yaml:"last_name"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"`
	Superuser    bool   `yaml:"superuser"`
}

// Project is a project with its subprojects.
type Project struct {
	Name           string       `yaml:"name"`
	Slug           string       `yaml:"slug"`
	Web            string       `yaml:"web"`
	SourceLanguage string       `yaml:"source_language"`
	Subprojects    []Subproject `yaml:"subprojects"`
}

// Subproject groups translations of one resource.
type Subproject struct {
	Name         string        `yaml:"name"`
	Slug         string        `yaml:"slug"`
	Translations []Translation `yaml:"translations"`
}

// Translation holds the units of one language.
type Translation struct {
	Language string `yaml:"language"`
	Units    []Unit `yaml:"units"`
}

// Unit is one translatable string.
type Unit struct {
	Source   string `yaml:"source"`
	Context  string `yaml:"context"`
	Target   string `yaml:"target"`
	Location string `yaml:"location"`
	Comment  string `yaml:"comment"`
	Fuzzy    bool   `yaml:"fuzzy"`
}

// Summary counts the rows written by Load.
type Summary struct {
	Languages    int
	Users        int
	Projects     int
	Subprojects  int
	Translations int
	Units        int
}

// Add accumulates other into s.
func (s *Summary) Add(other Summary) {
	s.Languages += other.Languages
	s.Users += other.Users
	s.Projects += other.Projects
	s.Subprojects += other.Subprojects
	s.Translations += other.Translations
	s.Units += other.Units
}

// Option configures a Loader.
type Option func(*Loader)

// WithPasswordCost sets the bcrypt cost used for plain passwords.
func WithPasswordCost(cost int) Option {
	return func(l *Loader) { l.cost = cost }
}

// Loader writes fixtures into a store.
type Loader struct {
	store Store
	cost  int
}

// NewLoader returns a loader writing into store.
func NewLoader(store Store, opts ...Option) *Loader {
	l := &Loader{store: store, cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Decode parses a fixture document.
func Decode(r io.Reader) (File, error) {
	var file File
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("decode fixture: %w", err)
	}
	return file, nil
}

// Load decodes r and writes it into the store.
func (l *Loader) Load(ctx context.Context, r io.Reader) (Summary, error) {
	file, err := Decode(r)
	if err != nil {
		return Summary{}, err
	}
	return l.Apply(ctx, file)
}

// Apply writes a decoded fixture in dependency order: languages, users,
// then the project tree.
func (l *Loader) Apply(ctx context.Context, file File) (Summary, error) {
	if l == nil || l.store == nil {
		return Summary{}, errors.New("fixture store is required")
	}
	var summary Summary
	for _, language := range file.Languages {
		if err := l.store.PutLanguage(ctx, storage.Language{
			Code:      language.Code,
			Name:      language.Name,
			Direction: language.Direction,
			NPlurals:  language.NPlurals,
		}); err != nil {
			return summary, fmt.Errorf("language %q: %w", language.Code, err)
		}
		summary.Languages++
	}
	for _, user := range file.Users {
		created, err := l.putUser(ctx, user)
		if err != nil {
			return summary, fmt.Errorf("user %q: %w", user.Username, err)
		}
		if created {
			summary.Users++
		}
	}
	for _, project := range file.Projects {
		written, err := l.putProject(ctx, project)
		summary.Add(written)
		if err != nil {
			return summary, fmt.Errorf("project %q: %w", project.Slug, err)
		}
	}
	return summary, nil
}

func (l *Loader) putUser(ctx context.Context, user User) (bool, error) {
	hash := strings.TrimSpace(user.PasswordHash)
	if hash == "" && user.Password != "" {
		generated, err := bcrypt.GenerateFromPassword([]byte(user.Password), l.cost)
		if err != nil {
			return false, fmt.Errorf("hash password: %w", err)
		}
		hash = string(generated)
	}
	_, err := l.store.CreateUser(ctx, storage.User{
		Username:     user.Username,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		PasswordHash: hash,
		IsSuperuser:  user.Superuser,
	})
	if errors.Is(err, storage.ErrAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (l *Loader) putProject(ctx context.Context, fixture Project) (Summary, error) {
	var summary Summary
	project, err := l.store.PutProject(ctx, storage.Project{
		Name:           fixture.Name,
		Slug:           fixture.Slug,
		Web:            fixture.Web,
		SourceLanguage: fixture.SourceLanguage,
	})
	if err != nil {
		return summary, err
	}
	summary.Projects++

	for _, sub := range fixture.Subprojects {
		subproject, err := l.store.PutSubproject(ctx, storage.Subproject{
			ProjectID: project.ID,
			Name:      sub.Name,
			Slug:      sub.Slug,
		})
		if err != nil {
			return summary, fmt.Errorf("subproject %q: %w", sub.Slug, err)
		}
		summary.Subprojects++

		for _, tr := range sub.Translations {
			translation, err := l.store.PutTranslation(ctx, storage.Translation{
				SubprojectID: subproject.ID,
				LanguageCode: tr.Language,
			})
			if err != nil {
				return summary, fmt.Errorf("translation %s/%s: %w", sub.Slug, tr.Language, err)
			}
			summary.Translations++

			for idx, unit := range tr.Units {
				if _, err := l.store.PutUnit(ctx, storage.Unit{
					TranslationID: translation.ID,
					Source:        unit.Source,
					Context:       unit.Context,
					Target:        unit.Target,
					Location:      unit.Location,
					Comment:       unit.Comment,
					Fuzzy:         unit.Fuzzy,
					Position:      idx + 1,
				}); err != nil {
					return summary, fmt.Errorf("unit %d of %s/%s: %w", idx+1, sub.Slug, tr.Language, err)
				}
				summary.Units++
			}
		}
	}
	return summary, nil
}
