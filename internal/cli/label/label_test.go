package label

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/notely/internal/cli"
	"github.com/thenoetrevino/notely/internal/config"
	"github.com/thenoetrevino/notely/internal/i18n"
	"github.com/thenoetrevino/notely/internal/models"
	"github.com/thenoetrevino/notely/internal/testutil"
)

// Commands write to os.Stdout, so these tests do not run in parallel.

func setupCLI(t *testing.T) (context.Context, *cli.CLI) {
	t.Helper()
	tr, err := i18n.New("en")
	require.NoError(t, err)
	c := cli.NewCLIWithDB(testutil.SetupTestDB(t), config.Default(), tr)
	return cli.WithCLI(context.Background(), c), c
}

func run(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	cmd := LabelCmd()
	cmd.SetContext(ctx)
	return testutil.ExecuteCommand(t, cmd, args...)
}

func names(t *testing.T, c *cli.CLI) []string {
	t.Helper()
	all, err := c.App.LabelService.GetAllLabels(context.Background())
	require.NoError(t, err)
	out := make([]string, len(all))
	for i, l := range all {
		out[i] = l.Name
	}
	return out
}

func TestCreateLabelCommand(t *testing.T) {
	ctx, c := setupCLI(t)

	out, err := run(t, ctx, "create", "--name", "  work  ", "--quiet")
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	assert.NotEmpty(t, id)

	label, err := c.App.LabelService.GetLabelByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "work", label.Name)

	out, err = run(t, ctx, "create", "--name", "Home", "--json")
	require.NoError(t, err)
	result := testutil.ParseJSON(t, out)
	assert.Equal(t, true, result["success"])
	data := result["data"].(map[string]any)
	assert.Equal(t, "Home", data["name"])

	out, err = run(t, ctx, "create", "--name", "Ideas")
	require.NoError(t, err)
	assert.Contains(t, out, `Label "Ideas" saved`)

	assert.Equal(t, []string{"work", "Home", "Ideas"}, names(t, c))
}

func TestCreateLabelValidation(t *testing.T) {
	ctx, c := setupCLI(t)
	testutil.CreateTestLabel(t, c.App.Repo(), "l1", "Work")

	tests := []struct {
		name    string
		args    []string
		code    int
		message string
	}{
		{"missing name", []string{"create"}, cli.ExitUsage, ""},
		{"blank name", []string{"create", "--name", "   "}, cli.ExitValidation, "Label name is required"},
		{"too short", []string{"create", "--name", "x"}, cli.ExitValidation, "at least 2 characters"},
		{"too long", []string{"create", "--name", strings.Repeat("a", 26)}, cli.ExitValidation, "at most 25 characters"},
		{"duplicate ignoring case", []string{"create", "--name", "WORK"}, cli.ExitValidation, "already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, ctx, append(tt.args, "--json")...)
			require.Error(t, err)
			assert.Equal(t, tt.code, cli.ExitCode(err))
			if tt.message != "" {
				errData := testutil.ParseJSON(t, out)["error"].(map[string]any)
				assert.Contains(t, errData["message"], tt.message)
			}
		})
	}

	assert.Equal(t, []string{"Work"}, names(t, c))
}

func TestListLabelsCommand(t *testing.T) {
	ctx, c := setupCLI(t)

	out, err := run(t, ctx, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No labels found")

	testutil.CreateTestLabel(t, c.App.Repo(), "l1", "Work")
	testutil.CreateTestLabel(t, c.App.Repo(), "l2", "Home")

	out, err = run(t, ctx, "list", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "l1\nl2\n", out)

	out, err = run(t, ctx, "list", "--json")
	require.NoError(t, err)
	data := testutil.ParseJSON(t, out)["data"].(map[string]any)
	assert.Len(t, data["labels"], 2)
}

func TestRenameLabelCommand(t *testing.T) {
	ctx, c := setupCLI(t)
	testutil.CreateTestLabel(t, c.App.Repo(), "l1", "Work")
	testutil.CreateTestLabel(t, c.App.Repo(), "l2", "Home")

	_, err := run(t, ctx, "rename", "--label", "work", "--name", "Office", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, []string{"Office", "Home"}, names(t, c))

	_, err = run(t, ctx, "rename", "--label", "l1", "--name", "OFFICE", "--quiet")
	require.NoError(t, err, "changing the case of its own name is allowed")
	assert.Equal(t, []string{"OFFICE", "Home"}, names(t, c))

	_, err = run(t, ctx, "rename", "--label", "l1", "--name", "home", "--json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

	_, err = run(t, ctx, "rename", "--label", "missing", "--name", "Other", "--json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestDeleteLabelCommand(t *testing.T) {
	ctx, c := setupCLI(t)
	testutil.CreateTestLabel(t, c.App.Repo(), "l1", "Work")
	testutil.CreateTestLabel(t, c.App.Repo(), "l2", "Home")
	note := testutil.CreateTestNote(t, c.App.Repo(), "n1", "Standup")
	require.NoError(t, c.App.NoteService.AttachLabel(context.Background(), note.ID, "l1"))

	out, err := run(t, ctx, "delete", "--label", "Work", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Label deleted")
	assert.Equal(t, []string{"Home"}, names(t, c))

	got, err := c.App.NoteService.GetNote(context.Background(), note.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Labels)

	_, err = run(t, ctx, "delete", "--label", "Work", "--force", "--json")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrLabelNotFound)
}

func TestDeleteLabelCommandJSONSkipsConfirmation(t *testing.T) {
	ctx, c := setupCLI(t)
	testutil.CreateTestLabel(t, c.App.Repo(), "l1", "Work")

	cmd := LabelCmd()
	cmd.SetContext(ctx)
	cmd.SetIn(strings.NewReader(""))
	out, err := testutil.ExecuteCommand(t, cmd, "delete", "--label", "l1", "--json")
	require.NoError(t, err)
	assert.NotContains(t, out, "(y/N)")

	result := testutil.ParseJSON(t, out)
	assert.Equal(t, true, result["success"])
	data := result["data"].(map[string]any)
	assert.Equal(t, "l1", data["id"])
	assert.Equal(t, true, data["deleted"])
	assert.Empty(t, names(t, c))

	assert.Contains(t, DeleteCmd().Long, "--json")
}

func TestDeleteLabelCommandAsksForConfirmation(t *testing.T) {
	ctx, c := setupCLI(t)
	testutil.CreateTestLabel(t, c.App.Repo(), "l1", "Work")

	cmd := LabelCmd()
	cmd.SetContext(ctx)
	cmd.SetIn(strings.NewReader("n\n"))
	out, err := testutil.ExecuteCommand(t, cmd, "delete", "--label", "l1")
	require.NoError(t, err)
	assert.Contains(t, out, `delete the label "Work"`)
	assert.Equal(t, []string{"Work"}, names(t, c))

	cmd = LabelCmd()
	cmd.SetContext(ctx)
	cmd.SetIn(strings.NewReader("yes\n"))
	_, err = testutil.ExecuteCommand(t, cmd, "delete", "--label", "l1")
	require.NoError(t, err)
	assert.Empty(t, names(t, c))
}
