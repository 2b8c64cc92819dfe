package storage

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	// ErrNotFound indicates a requested record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a uniqueness-constrained record already exists.
	ErrAlreadyExists = errors.New("record already exists")
)

// Language directions.
const (
	DirectionLTR = "ltr"
	DirectionRTL = "rtl"
)

// User is one account that can sign in.
type User struct {
	ID           int64
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	IsSuperuser  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name, falling back to the username.
func (u User) FullName() string {
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name == "" {
		return u.Username
	}
	return name
}

// Profile stores per-user translation preferences.
type Profile struct {
	UserID int64
	// Language is the UI language.
	Language string
	// Languages are the languages the user translates into.
	Languages []string
	// SecondaryLanguages are shown alongside the source while translating.
	SecondaryLanguages []string
	UpdatedAt          time.Time
}

// Language describes one translation target language.
type Language struct {
	Code      string
	Name      string
	Direction string
	NPlurals  int
}

// Project groups subprojects of one software product.
type Project struct {
	ID             int64
	Name           string
	Slug           string
	Web            string
	SourceLanguage string
	CreatedAt      time.Time
}

// Subproject is one translatable resource of a project.
type Subproject struct {
	ID        int64
	ProjectID int64
	Name      string
	Slug      string
	CreatedAt time.Time
}

// Translation is one language of a subproject.
type Translation struct {
	ID           int64
	SubprojectID int64
	LanguageCode string
}

// TranslationDetail resolves a translation with its owners.
type TranslationDetail struct {
	Translation Translation
	Project     Project
	Subproject  Subproject
	Language    Language
}

// TranslationOverview summarizes progress of one translation.
type TranslationOverview struct {
	TranslationDetail
	Total      int
	Translated int
	Fuzzy      int
}

// Percent returns translated units as a whole percentage.
func (o TranslationOverview) Percent() int {
	if o.Total <= 0 {
		return 0
	}
	return o.Translated * 100 / o.Total
}

// Unit is one translatable string in one language.
type Unit struct {
	ID            int64
	TranslationID int64
	Checksum      string
	Context       string
	Source        string
	Target        string
	Location      string
	Comment       string
	Position      int
	Translated    bool
	Fuzzy         bool
	UpdatedAt     time.Time
}

// UnitDetail resolves a unit with the translation it belongs to.
type UnitDetail struct {
	Unit        Unit
	Translation Translation
	Project     Project
	Subproject  Subproject
	Language    Language
}

// ChangeAction enumerates audited unit and translation actions.
type ChangeAction int

const (
	ActionUpdate ChangeAction = iota
	ActionComplete
	ActionChange
	ActionComment
	ActionSuggestion
	ActionNew
	ActionAutomatic
	ActionAccept
	ActionRevert
	ActionUpload
)

var changeActionKeys = map[ChangeAction]string{
	ActionUpdate:     "change.action.update",
	ActionComplete:   "change.action.complete",
	ActionChange:     "change.action.change",
	ActionComment:    "change.action.comment",
	ActionSuggestion: "change.action.suggestion",
	ActionNew:        "change.action.new",
	ActionAutomatic:  "change.action.automatic",
	ActionAccept:     "change.action.accept",
	ActionRevert:     "change.action.revert",
	ActionUpload:     "change.action.upload",
}

// Valid reports whether the action is known.
func (a ChangeAction) Valid() bool {
	_, ok := changeActionKeys[a]
	return ok
}

// MessageKey returns the localization key naming the action.
func (a ChangeAction) MessageKey() string {
	if key, ok := changeActionKeys[a]; ok {
		return key
	}
	return "change.action.unknown"
}

// Change is an audit record of one action.
type Change struct {
	ID            int64
	TranslationID int64
	UnitID        int64
	UserID        int64
	Action        ChangeAction
	Target        string
	CreatedAt     time.Time

	// Resolved on reads.
	Username       string
	ProjectSlug    string
	SubprojectSlug string
	LanguageCode   string
	UnitChecksum   string
	UnitSource     string
}

// ChangeFilter narrows change listings. Zero values match everything.
type ChangeFilter struct {
	ProjectSlug    string
	SubprojectSlug string
	LanguageCode   string
	Checksum       string
	UnitID         int64
	UserID         int64
	Limit          int
	Offset         int
}

// ContactMessage is one message left through the contact form.
type ContactMessage struct {
	ID        int64
	Subject   string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

// CacheEntry stores one derived payload with an expiry.
type CacheEntry struct {
	CacheKey  string
	Payload   []byte
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the entry is stale at now.
func (e CacheEntry) Expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && !now.Before(e.ExpiresAt)
}

// MemoryQuery selects translated units used as translation memory.
type MemoryQuery struct {
	LanguageCode   string
	SourceLanguage string
	ExcludeUnitID  int64
	MinSourceLen   int
	MaxSourceLen   int
	Limit          int
}

// UserStore persists accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user User) (User, error)
	GetUser(ctx context.Context, userID int64) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	SetPassword(ctx context.Context, userID int64, passwordHash string) error
}

// ProfileStore persists profiles together with their account fields.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID int64) (Profile, error)
	SaveAccount(ctx context.Context, user User, profile Profile) error
}

// LanguageStore persists languages.
type LanguageStore interface {
	PutLanguage(ctx context.Context, language Language) error
	GetLanguage(ctx context.Context, code string) (Language, error)
	ListLanguages(ctx context.Context) ([]Language, error)
}

// ProjectStore persists projects, subprojects and translations.
type ProjectStore interface {
	PutProject(ctx context.Context, project Project) (Project, error)
	GetProject(ctx context.Context, slug string) (Project, error)
	ListProjects(ctx context.Context) ([]Project, error)
	PutSubproject(ctx context.Context, subproject Subproject) (Subproject, error)
	GetSubproject(ctx context.Context, projectSlug, subprojectSlug string) (Subproject, error)
	PutTranslation(ctx context.Context, translation Translation) (Translation, error)
	GetTranslation(ctx context.Context, projectSlug, subprojectSlug, languageCode string) (TranslationDetail, error)
	ListTranslationOverviews(ctx context.Context) ([]TranslationOverview, error)
}

// UnitStore persists units and unit edits.
type UnitStore interface {
	PutUnit(ctx context.Context, unit Unit) (Unit, error)
	GetUnit(ctx context.Context, unitID int64) (UnitDetail, error)
	GetUnitByChecksum(ctx context.Context, translationID int64, checksum string) (UnitDetail, error)
	ListUnits(ctx context.Context, translationID int64) ([]Unit, error)
	ListUnitsByChecksum(ctx context.Context, subprojectID int64, checksum string) ([]UnitDetail, error)
	ListMemoryUnits(ctx context.Context, query MemoryQuery) ([]UnitDetail, error)
	SaveUnitTarget(ctx context.Context, unitID int64, target string, fuzzy bool, userID int64, at time.Time) (Change, error)
}

// ChangeStore persists audit records.
type ChangeStore interface {
	AddChange(ctx context.Context, change Change) (Change, error)
	ListChanges(ctx context.Context, filter ChangeFilter) ([]Change, error)
	CountChanges(ctx context.Context, filter ChangeFilter) (int, error)
}

// ContactStore persists the contact inbox.
type ContactStore interface {
	PutContactMessage(ctx context.Context, message ContactMessage) (ContactMessage, error)
	ListContactMessages(ctx context.Context, limit int) ([]ContactMessage, error)
}

// CacheStore persists derived cache payloads.
type CacheStore interface {
	GetCacheEntry(ctx context.Context, cacheKey string) (CacheEntry, bool, error)
	PutCacheEntry(ctx context.Context, entry CacheEntry) error
	DeleteExpiredCacheEntries(ctx context.Context, now time.Time) (int64, error)
}

// Store is the full persistence contract of the web service.
type Store interface {
	UserStore
	ProfileStore
	LanguageStore
	ProjectStore
	UnitStore
	ChangeStore
	ContactStore
	CacheStore
	Close() error
}
