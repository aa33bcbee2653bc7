package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	pterm.DisableOutput()
}

const payroll = `
steps:
  - op: create
    account: "1001"
    owner: Alice
    pin: "4321"
    amount: 100
  - op: transfer
    from: "999999"
    to: "1001"
    amount: 2500
    description: Salary
  - op: withdraw
    account: "1001"
    amount: 99999
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (*appState, error) {
	t.Helper()
	state := &appState{}
	t.Cleanup(state.close)

	root := NewRootCmd(state, os.DirFS(".."))
	root.SetArgs(args)
	return state, root.ExecuteContext(context.Background())
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	exportPath := filepath.Join(dir, "statements.db")
	cfgPath := writeFile(t, dir, "config.yaml", "defaults:\n  currency: eur\nexport:\n  path: "+exportPath+"\nlog:\n  level: error\n")
	scriptPath := writeFile(t, dir, "payroll.yaml", payroll)

	t.Run("info", func(t *testing.T) {
		state, err := execute(t, "--config", cfgPath, "info")
		require.NoError(t, err)
		assert.Equal(t, "EUR", state.app.Config.Defaults.Currency)
		assert.Equal(t, cfgPath, state.app.Config.ConfigPath)
		assert.Equal(t, exportPath, state.app.Statements.Path())
	})

	t.Run("run with export", func(t *testing.T) {
		state, err := execute(t, "--config", cfgPath, "run", scriptPath, "--export")
		require.NoError(t, err)

		alice, ok := state.app.Registry.GetAccount("1001")
		require.True(t, ok)
		assert.Equal(t, "2600", alice.Balance().String())

		exports, err := state.app.Statements.Store().ListExports(context.Background())
		require.NoError(t, err)
		require.Len(t, exports, 1)
		assert.Equal(t, "run:"+scriptPath, exports[0].Label)
		assert.Equal(t, 3, exports[0].Accounts)
	})

	t.Run("run strict fails on failed step", func(t *testing.T) {
		state, err := execute(t, "--config", cfgPath, "run", scriptPath, "--strict")
		assert.ErrorContains(t, err, "1 of 3 steps failed")
		assert.Nil(t, state.app.Statements.Store())
	})

	t.Run("run export to explicit path", func(t *testing.T) {
		other := filepath.Join(dir, "other.db")
		_, err := execute(t, "--config", cfgPath, "run", scriptPath, "--export="+other)
		require.NoError(t, err)
		_, err = os.Stat(other)
		assert.NoError(t, err)
	})

	t.Run("missing script", func(t *testing.T) {
		_, err := execute(t, "--config", cfgPath, "run", filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad config", func(t *testing.T) {
		bad := writeFile(t, dir, "bad.yaml", "log:\n  level: shout\n")
		_, err := execute(t, "--config", bad, "info")
		assert.ErrorContains(t, err, "invalid configuration")
	})
}
