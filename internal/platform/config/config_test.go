package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate corre el test en un dir vacío para que ./shelter.yaml no se cuele.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_FileEnvFlagsPrecedence(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9000"
  read_timeout: 2s
database:
  driver: postgres
  dsn: postgres://file
log:
  level: warn
admin:
  username: keeper
  password: s3cret
`), 0o600))

	t.Setenv("SHELTER_DATABASE_DSN", "postgres://env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "", "")
	flags.String("db-dsn", "", "")
	require.NoError(t, flags.Parse([]string{"--log-level=debug"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://env", cfg.Database.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "keeper", cfg.Admin.Username)
}

func TestLoad_LegacyEnvNames(t *testing.T) {
	isolate(t)

	t.Setenv("DB_DSN", "legacy.db")
	t.Setenv("PORT", "7070")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "legacy.db", cfg.Database.DSN)
	assert.Equal(t, ":7070", cfg.Server.Addr)
}

func TestLoad_MissingFile(t *testing.T) {
	isolate(t)

	_, err := Load("nope.yaml", nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.Database.Driver = "mysql"
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Admin.Username = "keeper"
	assert.Error(t, bad.Validate(), "username without password")

	bad = cfg
	bad.Auth.BcryptCost = 1
	assert.Error(t, bad.Validate())
}
