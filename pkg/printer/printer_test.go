package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pathkit/pkg/tree"
	"github.com/joshuapare/pathkit/pkg/types"
)

func sampleTree(t *testing.T) *tree.Tree[string] {
	t.Helper()
	tr := tree.New[string]("FileSystem")
	require.NoError(t, tr.CreateDirectory("Cool_Folder"))
	require.NoError(t, tr.CreateDirectory("New_Folder/Strings"))
	_, _, err := tr.Add("New_Folder/Strings/text.txt", "Hello World!")
	require.NoError(t, err)
	return tr
}

func TestPrintTree_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, sampleTree(t), "", DefaultOptions()))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "> FileSystem\n"), out)
	require.Contains(t, out, "Cool_Folder")
	require.Contains(t, out, "New_Folder")
	require.Contains(t, out, "Strings")
	require.Contains(t, out, "text.txt = Hello World!")
	require.Less(t, strings.Index(out, "Cool_Folder"), strings.Index(out, "New_Folder"))
	require.NotContains(t, out, "\x1b[", "no colour codes unless enabled")
}

func TestPrintTree_Subtree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, sampleTree(t), "New_Folder", DefaultOptions()))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "> New_Folder\n"), out)
	require.NotContains(t, out, "Cool_Folder")
}

func TestPrintTree_HideValuesAndDepth(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowValues = false
	opts.MaxDepth = 1

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, sampleTree(t), "", opts))
	out := buf.String()
	require.Contains(t, out, "New_Folder")
	require.NotContains(t, out, "Strings")
	require.NotContains(t, out, "Hello")
}

func TestPrintTree_Color(t *testing.T) {
	opts := DefaultOptions()
	opts.Color = true

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, sampleTree(t), "", opts))
	require.Contains(t, buf.String(), "\x1b[")
}

func TestPrintColor_Values(t *testing.T) {
	tr := tree.New[string]("")
	_, _, err := tr.Add("dir/k", "v")
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Color = true
	cyan := "\x1b[36;1mv\x1b[0m"

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, tr, "", opts))
	require.Contains(t, buf.String(), " = "+cyan)

	buf.Reset()
	require.NoError(t, New(tr, &buf, opts).PrintValue("dir/k"))
	require.Equal(t, cyan+"\n", buf.String())
}

func TestPrintTree_TruncatesValues(t *testing.T) {
	tr := tree.New[string]("")
	_, _, err := tr.Add("long", strings.Repeat("x", 100))
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.MaxValueRunes = 10
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, tr, "", opts))
	require.Contains(t, buf.String(), "long = xxxxxxxxxx…")
}

func TestPrintTree_NotFound(t *testing.T) {
	var buf bytes.Buffer
	err := Print(&buf, sampleTree(t), "missing", DefaultOptions())
	require.ErrorIs(t, err, types.ErrNotFound)
	require.Empty(t, buf.String())
}

func TestPrintTree_JSON(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = FormatJSON

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, sampleTree(t), "New_Folder", opts))

	var doc jsonNode
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, "New_Folder", doc.Path)
	require.Len(t, doc.Children, 1)
	strs := doc.Children[0]
	require.Equal(t, "New_Folder/Strings", strs.Path)
	require.False(t, strs.HasValue)
	require.Len(t, strs.Children, 1)
	require.Equal(t, "text.txt", strs.Children[0].Name)
	require.True(t, strs.Children[0].HasValue)
	require.Equal(t, "Hello World!", strs.Children[0].Value)
}

func TestPrintValue(t *testing.T) {
	tr := sampleTree(t)

	var buf bytes.Buffer
	p := New(tr, &buf, DefaultOptions())
	require.NoError(t, p.PrintValue("New_Folder/Strings/text.txt"))
	require.Equal(t, "Hello World!\n", buf.String())

	buf.Reset()
	opts := DefaultOptions()
	opts.Format = FormatJSON
	require.NoError(t, New(tr, &buf, opts).PrintValue("/New_Folder/Strings/text.txt"))
	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "New_Folder/Strings/text.txt", got["path"])
	require.Equal(t, "Hello World!", got["value"])

	require.ErrorIs(t, p.PrintValue("New_Folder"), types.ErrNotFound)
}
