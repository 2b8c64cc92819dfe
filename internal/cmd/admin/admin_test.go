package admin

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/louisbranch/translating.space/internal/services/mt"
	"github.com/louisbranch/translating.space/internal/services/mt/dummy"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
	"github.com/louisbranch/translating.space/internal/services/web/storage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newAdmin(t *testing.T) (*Admin, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "admin.db")
	registry := mt.NewRegistry()
	require.NoError(t, registry.Register(dummy.New()))
	a := New(Config{DBPath: dbPath},
		WithPasswordCost(bcrypt.MinCost),
		WithRegistry(registry),
		WithLogger(zap.NewNop()),
	)
	t.Cleanup(func() { _ = a.Close() })
	return a, dbPath
}

func execute(t *testing.T, a *Admin, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := a.Command()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func openStore(t *testing.T, path string) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig()
	require.NoError(t, err)
	assert.Equal(t, "data/translating.space.db", cfg.DBPath)
	assert.True(t, cfg.MT.Enabled)
}

func TestParseConfigReadsEnvironment(t *testing.T) {
	t.Setenv("TRANSLATING_SPACE_DB_PATH", "/var/lib/ts.db")
	t.Setenv("TRANSLATING_SPACE_MT_ENABLED", "false")

	cfg, err := ParseConfig()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/ts.db", cfg.DBPath)
	assert.False(t, cfg.MT.Enabled)
}

func TestCreateUser(t *testing.T) {
	a, dbPath := newAdmin(t)

	out, err := execute(t, a, "createuser", "--username", "alice", "--email", "alice@example.org", "--password", "secret", "--superuser")
	require.NoError(t, err)
	assert.Contains(t, out, "Created user alice")

	_, err = execute(t, a, "createuser", "--username", "alice", "--password", "other")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `user "alice" already exists`)

	user, err := openStore(t, dbPath).GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, user.IsSuperuser)
	assert.Equal(t, "alice@example.org", user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))
}

func TestCreateUserRequiresFlags(t *testing.T) {
	a, _ := newAdmin(t)

	_, err := execute(t, a, "createuser", "--password", "secret")
	assert.EqualError(t, err, "--username is required")

	_, err = execute(t, a, "createuser", "--username", "bob")
	assert.EqualError(t, err, "--password is required")
}

func TestChangePassword(t *testing.T) {
	a, dbPath := newAdmin(t)
	_, err := execute(t, a, "createuser", "--username", "alice", "--password", "old")
	require.NoError(t, err)

	out, err := execute(t, a, "changepassword", "--username", "alice", "--password", "new")
	require.NoError(t, err)
	assert.Contains(t, out, "Password changed for alice")

	user, err := openStore(t, dbPath).GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("new")))

	_, err = execute(t, a, "changepassword", "--username", "nobody", "--password", "x")
	assert.EqualError(t, err, `user "nobody" does not exist`)
}

func TestLoadData(t *testing.T) {
	a, dbPath := newAdmin(t)
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
languages:
  - {code: cs, name: Czech, direction: ltr, nplurals: 3}
projects:
  - name: Test
    slug: test
    subprojects:
      - name: Test
        slug: test
        translations:
          - language: cs
            units:
              - {source: "Hello, world!\n"}
`), 0o600))

	out, err := execute(t, a, "loaddata", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Installed 1 languages, 0 users, 1 projects, 1 subprojects, 1 translations and 1 units from 1 file(s)")

	_, err = execute(t, a, "loaddata", path)
	require.NoError(t, err)

	overviews, err := openStore(t, dbPath).ListTranslationOverviews(context.Background())
	require.NoError(t, err)
	require.Len(t, overviews, 1)
	assert.Equal(t, 1, overviews[0].Total)
}

func TestLoadDataMissingFile(t *testing.T) {
	a, _ := newAdmin(t)
	_, err := execute(t, a, "loaddata", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "open fixture")
}

func TestMessages(t *testing.T) {
	a, dbPath := newAdmin(t)

	out, err := execute(t, a, "messages")
	require.NoError(t, err)
	assert.Contains(t, out, "No messages.")

	_, err = openStore(t, dbPath).PutContactMessage(context.Background(), storage.ContactMessage{
		Subject: "Broken link",
		Name:    "Visitor",
		Email:   "visitor@example.org",
		Message: "The docs link is dead.",
	})
	require.NoError(t, err)

	out, err = execute(t, a, "messages", "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Visitor <visitor@example.org>")
	assert.Contains(t, out, "Broken link")
}

func TestMTServices(t *testing.T) {
	a, _ := newAdmin(t)
	out, err := execute(t, a, "mt-services")
	require.NoError(t, err)
	assert.Equal(t, "dummy\tDummy\n", out)
}

func TestMTServicesDisabled(t *testing.T) {
	a := New(Config{DBPath: filepath.Join(t.TempDir(), "admin.db")}, WithLogger(zap.NewNop()))
	t.Cleanup(func() { _ = a.Close() })

	out, err := execute(t, a, "mt-services")
	require.NoError(t, err)
	assert.Contains(t, out, "Machine translation is disabled.")
}

func TestMTTranslate(t *testing.T) {
	a, _ := newAdmin(t)

	out, err := execute(t, a, "mt-translate", "--service", "dummy", "--target", "cs", "Hello, world!")
	require.NoError(t, err)
	assert.Contains(t, out, "Nazdar světe!")
	assert.Contains(t, out, "Ahoj světe!")

	out, err = execute(t, a, "mt-translate", "--target", "cs", "Hello,", "world!")
	require.NoError(t, err)
	assert.Contains(t, out, "Dummy")

	out, err = execute(t, a, "mt-translate", "--service", "dummy", "--target", "fr", "Hello, world!")
	require.NoError(t, err)
	assert.Contains(t, out, "No suggestions.")
}

func TestMTTranslateErrors(t *testing.T) {
	a, _ := newAdmin(t)

	_, err := execute(t, a, "mt-translate", "Hello")
	assert.EqualError(t, err, "--target is required")

	_, err = execute(t, a, "mt-translate", "--service", "nope", "--target", "cs", "Hello")
	assert.ErrorIs(t, err, mt.ErrUnknownService)
}
