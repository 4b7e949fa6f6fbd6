package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/notely/internal/cli"
	"github.com/thenoetrevino/notely/internal/config"
	"github.com/thenoetrevino/notely/internal/i18n"
	"github.com/thenoetrevino/notely/internal/models"
	"github.com/thenoetrevino/notely/internal/testutil"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	tr, err := i18n.New("en")
	require.NoError(t, err)
	c := cli.NewCLIWithDB(testutil.SetupTestDB(t), config.Default(), tr)
	return cli.WithCLI(context.Background(), c)
}

func newTestCmd(h Handler) *cobra.Command {
	cmd := &cobra.Command{Use: "test", RunE: SimpleCommand(h)}
	cmd.Flags().String("name", "", "")
	cmd.Flags().StringArray("tag", nil, "")
	AddOutputFlags(cmd, "Minimal output")
	return cmd
}

func TestCommandPassesFlagsAndCLI(t *testing.T) {
	var got *Arguments
	var gotCLI *cli.CLI
	cmd := newTestCmd(HandlerFunc(func(ctx context.Context, c *cli.CLI, args *Arguments) (any, error) {
		got, gotCLI = args, c
		return nil, nil
	}))
	cmd.SetContext(testContext(t))

	_, err := testutil.ExecuteCommand(t, cmd, "--name", "Work", "--tag", "a", "--tag", "b")
	require.NoError(t, err)

	require.NotNil(t, gotCLI)
	name, err := got.RequireString("name")
	require.NoError(t, err)
	assert.Equal(t, "Work", name)
	assert.Equal(t, []string{"a", "b"}, got.GetStrings("tag", nil))
	assert.False(t, got.Has("json"))
	assert.Equal(t, "fallback", got.GetString("missing", "fallback"))
}

func TestCommandMapsErrorsToExitCodes(t *testing.T) {
	cmd := newTestCmd(HandlerFunc(func(context.Context, *cli.CLI, *Arguments) (any, error) {
		return nil, models.ErrNoteNotFound
	}))
	cmd.SetContext(testContext(t))

	out, err := testutil.ExecuteCommand(t, cmd, "--json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	assert.True(t, errors.Is(err, models.ErrNoteNotFound))

	result := testutil.ParseJSON(t, out)
	assert.Equal(t, false, result["success"])
}

func TestRequireStringMissing(t *testing.T) {
	t.Parallel()

	args := &Arguments{Flags: map[string]any{}}
	_, err := args.RequireString("name")
	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrUsage)
}
