package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/notely/internal/config"
	"github.com/thenoetrevino/notely/internal/i18n"
	"github.com/thenoetrevino/notely/internal/testutil"
)

func TestGetCLIFromContext_SharedCloseLeavesDatabaseOpen(t *testing.T) {
	db := testutil.SetupTestDB(t)
	tr, err := i18n.New("en")
	require.NoError(t, err)

	owner := NewCLIWithDB(db, config.Default(), tr)
	ctx := WithCLI(context.Background(), owner)

	got, err := GetCLIFromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, owner, got)

	require.NoError(t, got.Close())
	assert.NoError(t, db.PingContext(context.Background()), "closing a shared CLI must not close its database")
}
