package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
)

func TestParseListOptions(t *testing.T) {
	opts, err := parseListOptions([]string{"status=open", "page=3", "size=5"}, "status")
	require.NoError(t, err)
	assert.Equal(t, models.PageQuery{Page: 3, Size: 5}, opts.page)
	assert.Equal(t, "OPEN", opts.upper("status"))

	_, err = parseListOptions([]string{"keyword=x"}, "status")
	assert.Error(t, err)

	_, err = parseListOptions([]string{"page=two"})
	assert.Error(t, err)

	_, err = parseListOptions([]string{"status"}, "status")
	assert.Error(t, err)
}

func TestTableAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	tb := newTable(&buf, "NO", "TITLE")
	tb.row("T1", "Run")
	tb.row("T200", "Swim")
	tb.flush()

	assert.Equal(t, "NO    TITLE\nT1    Run\nT200  Swim\n", buf.String())
}

func TestPageFooterAndField(t *testing.T) {
	var buf bytes.Buffer
	pageFooter(&buf, models.Page[models.Task]{Current: 1, Pages: 0, Total: 0})
	field(&buf, "Empty", "")
	field(&buf, "Stock", stockString(nil))

	assert.Equal(t, "page 1/1, 0 total\nStock:         unlimited\n", buf.String())
}
