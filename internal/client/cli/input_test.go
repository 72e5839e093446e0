package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
)

func newInputApp(input string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewApp(Deps{In: strings.NewReader(input), Out: out}), out
}

func TestPrompt(t *testing.T) {
	a, out := newInputApp("  hello  \nlast")

	v, err := a.prompt("Name")
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
	assert.Equal(t, "Name: ", out.String())

	v, err = a.prompt("Again")
	require.NoError(t, err)
	assert.Equal(t, "last", v, "final line without newline is accepted")

	_, err = a.prompt("EOF")
	assert.Error(t, err)
}

func TestPromptDefaultAndInt(t *testing.T) {
	a, out := newInputApp("\nnew\n\n12\nabc\n")

	v, err := a.promptDefault("Title", "old")
	require.NoError(t, err)
	assert.Equal(t, "old", v)
	assert.Contains(t, out.String(), "Title [old]: ")

	v, err = a.promptDefault("Title", "old")
	require.NoError(t, err)
	assert.Equal(t, "new", v)

	n, err := a.promptInt("Points", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	n, err = a.promptInt("Points", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)

	_, err = a.promptInt("Points", 5)
	assert.Error(t, err)
}

func TestPromptMultilineAndConfirm(t *testing.T) {
	a, _ := newInputApp("line one\nline two\n\nYES\nno\n")

	text, err := a.promptMultiline("Body")
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", text)

	ok, err := a.confirm("Sure?")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.confirm("Sure?")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPromptTask(t *testing.T) {
	a, _ := newInputApp("Run\n\n30\n2030-01-01 00:00:00\n\n")

	p, err := a.promptTask(models.Task{Status: models.TaskOpen})
	require.NoError(t, err)
	assert.Equal(t, models.TaskPayload{
		Title:       "Run",
		PointReward: 30,
		Deadline:    "2030-01-01 00:00:00",
		Status:      models.TaskOpen,
	}, p)

	a, _ = newInputApp("Run\n\n0\n")
	_, err = a.promptTask(models.Task{})
	assert.EqualError(t, err, "points must be positive")
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs("1, 2 3,,4")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, ids)

	_, err = parseIDs("1,x")
	assert.Error(t, err)
}

func TestParsePoolItems(t *testing.T) {
	items, err := parsePoolItems("7:0.5, 9:2")
	require.NoError(t, err)
	assert.Equal(t, []models.PoolItemPayload{
		{RewardID: 7, SortNo: 1, Weight: 0.5},
		{RewardID: 9, SortNo: 2, Weight: 2},
	}, items)

	for _, bad := range []string{"7", "x:1", "7:0", "7:-1", "7:w"} {
		_, err := parsePoolItems(bad)
		assert.Error(t, err, bad)
	}
}
