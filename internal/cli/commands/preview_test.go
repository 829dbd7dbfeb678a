package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/tablefile/pkg/table"
)

func previewTable() *table.Table {
	t := table.New("a", "b")
	t.Append(
		table.Row{"a": 1, "b": "x"},
		table.Row{"a": 2, "b": "y"},
		table.Row{"a": 3, "b": "z"},
	)
	return t
}

func TestRenderPreview_CSV(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, renderPreview(&out, previewTable(), 2, "csv"))
	assert.Equal(t, "a,b\n1,x\n2,y\n", out.String())
}

func TestRenderPreview_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, renderPreview(&out, previewTable(), 0, "json"))
	assert.Equal(t, "[\n  {\"a\":1,\"b\":\"x\"},\n  {\"a\":2,\"b\":\"y\"},\n  {\"a\":3,\"b\":\"z\"}\n]\n", out.String())
}

func TestRenderPreview_Markdown(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, renderPreview(&out, previewTable(), 1, "md"))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "| a | b |", lines[0])
	assert.Equal(t, "| --- | --- |", lines[1])
	assert.Equal(t, "| 1 | x |", lines[2])
}

func TestRenderPreview_Table(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, renderPreview(&out, previewTable(), 2, "table"))

	s := out.String()
	assert.Contains(t, s, "a")
	assert.Contains(t, s, "b")
	assert.Contains(t, s, "(2 of 3 rows)")
}

func TestRenderPreview_EmptyTable(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, renderPreview(&out, table.New("a"), 10, "table"))
	assert.Equal(t, "(0 rows)\n", out.String())
}

func TestRenderPreview_NilCell(t *testing.T) {
	tab := table.New("a")
	tab.Append(table.Row{"a": nil})

	var out bytes.Buffer
	require.NoError(t, renderPreview(&out, tab, 10, "md"))
	assert.Contains(t, out.String(), "| NULL |")
}
