package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	selectCmd, _, err := cmd.Find([]string{"select"})
	require.NoError(t, err)

	selectFlag := selectCmd.Flags().Lookup("select")
	require.NotNil(t, selectFlag)
	assert.Equal(t, "s", selectFlag.Shorthand)
}

func TestSelect_RequiresValue(t *testing.T) {
	db := filepath.Join(t.TempDir(), "trains.db")

	_, err := execute(t, "select", "--db", db)
	require.Error(t, err)
}

// A reused train number shows both departures under one group.
func TestSelect_SharedNumberScenario(t *testing.T) {
	db := filepath.Join(t.TempDir(), "trains.db")

	_, err := execute(t, "add", "--db", db, "-p", "Москва", "-n", "101", "-t", "14:30")
	require.NoError(t, err)
	_, err = execute(t, "add", "--db", db, "-p", "Казань", "-n", "101", "-t", "09:00")
	require.NoError(t, err)
	_, err = execute(t, "add", "--db", db, "-p", "Самара", "-n", "205", "-t", "23:10")
	require.NoError(t, err)

	out, err := execute(t, "select", "--db", db, "-s", "101")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6, "two departures render as 6 lines")
	assert.Contains(t, out, "Москва")
	assert.Contains(t, out, "Казань")
	assert.NotContains(t, out, "Самара")
}

func TestSelect_UnknownNumberPrintsNothing(t *testing.T) {
	db := filepath.Join(t.TempDir(), "trains.db")

	_, err := execute(t, "add", "--db", db, "-p", "Москва", "-n", "101", "-t", "14:30")
	require.NoError(t, err)

	out, err := execute(t, "select", "--db", db, "-s", "999")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSelect_NoNumericCoercion(t *testing.T) {
	db := filepath.Join(t.TempDir(), "trains.db")

	_, err := execute(t, "add", "--db", db, "-p", "Москва", "-n", "101", "-t", "14:30")
	require.NoError(t, err)

	out, err := execute(t, "select", "--db", db, "-s", "0101")
	require.NoError(t, err)
	assert.Empty(t, out, "title comparison is textual, \"0101\" must not match 101")
}
