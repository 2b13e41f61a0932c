package card

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/cli"
	"github.com/thenoetrevino/swimlane/internal/testutil"
)

func TestBoardCmd_JSON(t *testing.T) {
	a := testutil.NewTestApp(t)

	out, err := testutil.ExecuteCLICommand(t, a, BoardCmd(), []string{"--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, out)
	assert.Equal(t, true, result["success"])

	data := result["data"].(map[string]interface{})
	columns := data["columns"].([]interface{})
	require.Len(t, columns, 4)

	backlog := columns[0].(map[string]interface{})
	assert.Equal(t, "backlog", backlog["key"])
	cards := backlog["cards"].([]interface{})
	require.Len(t, cards, 4)
	assert.Equal(t, "1", cards[0].(map[string]interface{})["id"])
}

func TestBoardCmd_Quiet(t *testing.T) {
	a := testutil.NewTestApp(t)
	require.NoError(t, a.MoveCard("3", "2", board.ColumnBacklog))

	out, err := testutil.ExecuteCLICommand(t, a, BoardCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "2", "4", "5", "6"}, strings.Fields(out))
}

func TestBoardCmd_Human(t *testing.T) {
	a := testutil.NewTestApp(t)

	out, err := testutil.ExecuteCLICommand(t, a, BoardCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, out, "Backlog")
	assert.Contains(t, out, "SOX compliance checklist")
	assert.Contains(t, out, "Complete")
}

func TestShowCmd_JSON(t *testing.T) {
	a := testutil.NewTestApp(t)
	require.NoError(t, a.EditAssignees("2", " Ana , ,Bo "))

	out, err := testutil.ExecuteCLICommand(t, a, ShowCmd(), []string{"2", "--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, out)
	card := result["card"].(map[string]interface{})
	assert.Equal(t, "2", card["id"])
	assert.Equal(t, "Medium", card["priority"])
	assert.Equal(t, []interface{}{"Ana", "Bo"}, card["assignees"])
	assert.Equal(t, "2024-05-01", card["due"])
}

func TestShowCmd_IDFlagAndQuiet(t *testing.T) {
	a := testutil.NewTestApp(t)

	out, err := testutil.ExecuteCLICommand(t, a, ShowCmd(), []string{"--id", "5", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestShowCmd_Human(t *testing.T) {
	a := testutil.NewTestApp(t)

	out, err := testutil.ExecuteCLICommand(t, a, ShowCmd(), []string{"3"})
	require.NoError(t, err)
	assert.Contains(t, out, "[SPIKE] Migrate to Azure")
	assert.Contains(t, out, "Tejas, Suraj, Jane")
	assert.Contains(t, out, "Backlog")
}

func TestShowCmd_NotFound(t *testing.T) {
	a := testutil.NewTestApp(t)

	out, err := testutil.ExecuteCLICommand(t, a, ShowCmd(), []string{"999", "--json"})
	require.Error(t, err)
	assert.ErrorIs(t, err, board.ErrCardNotFound)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	result := testutil.ParseJSON(t, out)
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]interface{})
	assert.Equal(t, "CARD_NOT_FOUND", errData["code"])
}

func TestShowCmd_MissingID(t *testing.T) {
	a := testutil.NewTestApp(t)

	_, err := testutil.ExecuteCLICommand(t, a, ShowCmd(), nil)
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}
