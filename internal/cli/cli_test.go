package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])

	for _, flag := range []string{"config", "addr", "db-driver", "db-dsn", "log-level"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestMigrateCmd_CreatesSQLiteFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	dbPath := filepath.Join(dir, "migrated.db")

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"migrate", "--db-driver=sqlite", "--db-dsn=" + dbPath, "--log-level=error"})
	require.NoError(t, root.Execute())

	_, err := os.Stat(dbPath)
	assert.NoError(t, err)

	// segunda corrida: idempotente
	root = NewRootCmd()
	root.SetArgs([]string{"migrate", "--db-driver=sqlite", "--db-dsn=" + dbPath, "--log-level=error"})
	require.NoError(t, root.Execute())
}

func TestMigrateCmd_RejectsUnknownDriver(t *testing.T) {
	t.Chdir(t.TempDir())

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"migrate", "--db-driver=mysql"})
	assert.Error(t, root.Execute())
}
