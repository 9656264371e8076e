package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	addCmd, _, err := cmd.Find([]string{"add"})
	require.NoError(t, err)

	punktFlag := addCmd.Flags().Lookup("punkt")
	require.NotNil(t, punktFlag)
	assert.Equal(t, "p", punktFlag.Shorthand)

	nomerFlag := addCmd.Flags().Lookup("nomer")
	require.NotNil(t, nomerFlag)
	assert.Equal(t, "n", nomerFlag.Shorthand)
	assert.Equal(t, "0", nomerFlag.DefValue)

	timeFlag := addCmd.Flags().Lookup("time")
	require.NotNil(t, timeFlag)
	assert.Equal(t, "t", timeFlag.Shorthand)
}

func TestAdd_RequiresPunktAndTime(t *testing.T) {
	db := filepath.Join(t.TempDir(), "trains.db")

	_, err := execute(t, "add", "--db", db, "-t", "14:30")
	require.Error(t, err, "missing -p must fail before any database access")

	_, err = execute(t, "add", "--db", db, "-p", "Москва")
	require.Error(t, err, "missing -t must fail before any database access")
}

func TestAdd_RejectsNonIntegerNomer(t *testing.T) {
	db := filepath.Join(t.TempDir(), "trains.db")

	_, err := execute(t, "add", "--db", db, "-p", "Москва", "-n", "abc", "-t", "14:30")
	require.Error(t, err)
}

func TestAdd_CreatesDatabaseAndRecord(t *testing.T) {
	db := filepath.Join(t.TempDir(), "trains.db")

	out, err := execute(t, "add", "--db", db, "-p", "Москва", "-n", "101", "-t", "14:30")
	require.NoError(t, err)
	assert.Empty(t, out, "add prints nothing on success")

	out, err = execute(t, "display", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Москва")
	assert.Contains(t, out, "101")
	assert.Contains(t, out, "14:30")
}

func TestAdd_BadDatabasePathExitCode(t *testing.T) {
	_, err := execute(t, "add", "--db", "/nonexistent/dir/trains.db", "-p", "Москва", "-t", "14:30")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
