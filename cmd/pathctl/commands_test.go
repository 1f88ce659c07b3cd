package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pathkit/pkg/codec"
	"github.com/joshuapare/pathkit/pkg/types"
)

func TestSetAndGet(t *testing.T) {
	resetFlags()
	doc := tempDoc(t, "config.yaml")

	mustRun(t, func() error { return runSet([]string{doc, "db/host", "localhost"}) })
	mustRun(t, func() error { return runSet([]string{doc, "db/port", "5432"}) })

	out := mustRun(t, func() error { return runGet([]string{doc, "db/host"}) })
	require.Equal(t, "localhost\n", out)

	jsonOut = true
	out = mustRun(t, func() error { return runGet([]string{doc, "/db/port/"}) })
	require.Equal(t, map[string]any{"path": "db/port", "value": float64(5432)}, decodeJSON(t, out))
}

func TestSet_Replace(t *testing.T) {
	resetFlags()
	doc := tempDoc(t, "config.json")

	mustRun(t, func() error { return runSet([]string{doc, "k", "one"}) })

	jsonOut = true
	out := mustRun(t, func() error { return runSet([]string{doc, "k", "two"}) })
	result := decodeJSON(t, out).(map[string]any)
	require.Equal(t, true, result["replaced"])
	require.Equal(t, "one", result["previous"])
	require.Equal(t, "two", result["value"])
}

func TestSet_Strict(t *testing.T) {
	resetFlags()
	doc := tempDoc(t, "config.yaml")

	setStrict = true
	mustRun(t, func() error { return runSet([]string{doc, "a", "1"}) })
	_, err := captureOutput(t, func() error { return runSet([]string{doc, "a", "2"}) })
	require.ErrorIs(t, err, types.ErrAlreadyExists)

	setStrict = false
	out := mustRun(t, func() error { return runGet([]string{doc, "a"}) })
	require.Equal(t, "1\n", out)
}

func TestGet_Errors(t *testing.T) {
	resetFlags()
	doc := tempDoc(t, "config.yaml")
	mustRun(t, func() error { return runMkdir([]string{doc, "dir"}) })

	_, err := captureOutput(t, func() error { return runGet([]string{doc, "dir"}) })
	require.ErrorIs(t, err, types.ErrNotFound)

	_, err = captureOutput(t, func() error { return runGet([]string{doc, "a//b"}) })
	require.ErrorIs(t, err, types.ErrInvalidPath)

	_, err = captureOutput(t, func() error { return runGet([]string{tempDoc(t, "missing.yaml"), "a"}) })
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestExists(t *testing.T) {
	resetFlags()
	doc := tempDoc(t, "config.yaml")
	mustRun(t, func() error { return runSet([]string{doc, "a/b", "x"}) })

	tests := []struct {
		path string
		want bool
	}{
		{path: "", want: true},
		{path: "a", want: true},
		{path: "a/b", want: true},
		{path: "a/c", want: false},
		{path: "a/b/c", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var found bool
			out := mustRun(t, func() error {
				var err error
				found, err = runExists([]string{doc, tt.path})
				return err
			})
			require.Equal(t, tt.want, found)
			if tt.want {
				require.Equal(t, "true\n", out)
			} else {
				require.Equal(t, "false\n", out)
			}
		})
	}
}

func TestMkdirAndLs(t *testing.T) {
	resetFlags()
	doc := tempDoc(t, "config.yaml")

	mustRun(t, func() error { return runMkdir([]string{doc, "srv/web"}) })
	mustRun(t, func() error { return runMkdir([]string{doc, "srv/api"}) })
	mustRun(t, func() error { return runSet([]string{doc, "etc", "x"}) })

	out := mustRun(t, func() error { return runLs([]string{doc}) })
	require.Equal(t, "etc\nsrv\n", out)

	jsonOut = true
	out = mustRun(t, func() error { return runLs([]string{doc, "srv"}) })
	require.Equal(t, []any{"api", "web"}, decodeJSON(t, out))

	out = mustRun(t, func() error { return runLs([]string{doc, "srv/web"}) })
	require.Equal(t, []any{}, decodeJSON(t, out))
}

func TestRm(t *testing.T) {
	resetFlags()
	doc := tempDoc(t, "config.yaml")
	mustRun(t, func() error { return runSet([]string{doc, "a/b", "1"}) })
	mustRun(t, func() error { return runSet([]string{doc, "a/c", "2"}) })
	mustRun(t, func() error { return runSet([]string{doc, "z", "3"}) })

	out := mustRun(t, func() error { return runRm([]string{doc, "a/b"}) })
	require.Contains(t, out, "Removed a/b = 1")

	out = mustRun(t, func() error { return runRm([]string{doc, "a"}) })
	require.Contains(t, out, "No value stored at a")

	rmTree = true
	out = mustRun(t, func() error { return runRm([]string{doc, "a"}) })
	require.Contains(t, out, "(1 values)")

	rmTree = false
	out = mustRun(t, func() error { return runLs([]string{doc}) })
	require.Equal(t, "z\n", out)

	_, err := captureOutput(t, func() error { return runRm([]string{doc, "missing"}) })
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestMv(t *testing.T) {
	resetFlags()
	doc := tempDoc(t, "config.yaml")
	mustRun(t, func() error { return runSet([]string{doc, "staging/host", "s"}) })
	mustRun(t, func() error { return runSet([]string{doc, "staging/port", "1"}) })
	mustRun(t, func() error { return runSet([]string{doc, "prod/host", "p"}) })

	mustRun(t, func() error { return runMv([]string{doc, "staging", "prod"}) })

	out := mustRun(t, func() error { return runCrawl([]string{doc}) })
	require.Equal(t, "prod/host = s\nprod/port = 1\n", out)

	_, err := captureOutput(t, func() error { return runMv([]string{doc, "prod", "prod/inner"}) })
	require.ErrorIs(t, err, types.ErrSelfContainment)

	_, err = captureOutput(t, func() error { return runMv([]string{doc, "gone", "x"}) })
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestCrawl(t *testing.T) {
	resetFlags()
	doc := tempDoc(t, "config.json")
	mustRun(t, func() error { return runSet([]string{doc, "z", "3"}) })
	mustRun(t, func() error { return runSet([]string{doc, "a/c", "2"}) })
	mustRun(t, func() error { return runSet([]string{doc, "a/b", "1"}) })
	mustRun(t, func() error { return runSet([]string{doc, "a", "0"}) })

	out := mustRun(t, func() error { return runCrawl([]string{doc}) })
	require.Equal(t, "a = 0\na/b = 1\na/c = 2\nz = 3\n", out)

	jsonOut = true
	out = mustRun(t, func() error { return runCrawl([]string{doc, "a/c"}) })
	require.Equal(t, []any{map[string]any{"path": "a/c", "value": float64(2)}}, decodeJSON(t, out))
}

func TestTree(t *testing.T) {
	resetFlags()
	doc := tempDoc(t, "config.yaml")
	mustRun(t, func() error { return runSet([]string{doc, "db/host", "localhost"}) })
	mustRun(t, func() error { return runMkdir([]string{doc, "empty"}) })

	out := mustRun(t, func() error { return runTree([]string{doc}) })
	require.Contains(t, out, "> config")
	require.Contains(t, out, "db")
	require.Contains(t, out, "empty")
	require.NotContains(t, out, "localhost")

	treeValues = true
	out = mustRun(t, func() error { return runTree([]string{doc, "db"}) })
	require.Contains(t, out, "> db")
	require.Contains(t, out, "host = localhost")

	jsonOut = true
	out = mustRun(t, func() error { return runTree([]string{doc}) })
	decodeJSON(t, out)
	require.Contains(t, out, `"localhost"`)

	_, err := captureOutput(t, func() error { return runTree([]string{doc, "nope"}) })
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestConvert(t *testing.T) {
	resetFlags()
	src := tempDoc(t, "config.json")
	mustRun(t, func() error { return runSet([]string{src, "db/host", "localhost"}) })
	mustRun(t, func() error { return runSet([]string{src, "db/port", "5432"}) })
	mustRun(t, func() error { return runMkdir([]string{src, "cache"}) })

	dst := tempDoc(t, "config.yaml")
	out := mustRun(t, func() error { return runConvert([]string{src, dst}) })
	require.Contains(t, out, "2 values")

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Contains(t, string(data), "host:")

	out = mustRun(t, func() error { return runCrawl([]string{dst}) })
	require.Equal(t, "db/host = localhost\ndb/port = 5432\n", out)

	out = mustRun(t, func() error { return runLs([]string{dst}) })
	require.Equal(t, "cache\ndb\n", out)

	_, err = captureOutput(t, func() error { return runConvert([]string{src, tempDoc(t, "out.txt")}) })
	require.ErrorIs(t, err, codec.ErrUnsupportedFormat)
}

func TestConvert_InputEncoding(t *testing.T) {
	resetFlags()
	src := writeDoc(t, "legacy.json", []byte("{\"children\": {\"name\": {\"value\": \"caf\xe9\"}}}"))
	dst := tempDoc(t, "clean.json")

	inputEncoding = "latin1"
	mustRun(t, func() error { return runConvert([]string{src, dst}) })

	inputEncoding = ""
	out := mustRun(t, func() error { return runGet([]string{dst, "name"}) })
	require.Equal(t, "café\n", out)
}

func TestFormatOverride(t *testing.T) {
	resetFlags()
	doc := writeDoc(t, "config.data", []byte("children:\n  k:\n    value: v\n"))

	_, err := captureOutput(t, func() error { return runGet([]string{doc, "k"}) })
	require.ErrorIs(t, err, codec.ErrUnsupportedFormat)

	t.Setenv(envFormat, "yaml")
	out := mustRun(t, func() error { return runGet([]string{doc, "k"}) })
	require.Equal(t, "v\n", out)

	formatName = "json"
	_, err = captureOutput(t, func() error { return runGet([]string{doc, "k"}) })
	require.ErrorIs(t, err, codec.ErrMalformed)
}

func TestQuiet(t *testing.T) {
	resetFlags()
	doc := tempDoc(t, "config.yaml")
	quiet = true
	out := mustRun(t, func() error { return runSet([]string{doc, "a", "1"}) })
	require.Empty(t, out)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{in: "hello", want: "hello"},
		{in: "true", want: true},
		{in: "null", want: nil},
		{in: "1.5", want: 1.5},
		{in: "[unclosed", want: "[unclosed"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, parseValue(tt.in))
		})
	}
}

func TestColorDisabled(t *testing.T) {
	resetFlags()
	noColor = true
	require.False(t, colorEnabled())

	noColor = false
	t.Setenv(envNoColor, "1")
	require.False(t, colorEnabled())
}
