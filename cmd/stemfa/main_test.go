package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kuandriy/persian-stemmer/internal/persist"
	"github.com/kuandriy/persian-stemmer/internal/tables"
)

func writeTables(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"Patterns.fa":         "^(?P<stem>.+)ی$,\\g<stem>,K,2,false\n",
		"verb_patterns.fa":    "",
		"Dictionary.fa":       "کتاب\nخانه\nرفت\nدوست\n",
		"Mokassar.fa":         "کتب\tکتاب\n",
		"VerbList.fa":         "رفتم\tرفت\tرو\n",
		"InformalVerbList.fa": "",
		"suffix.fa":           "",
		"prefix.fa":           "",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
	}
	return dir
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(zap.NewNop())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStemCommand(t *testing.T) {
	data := writeTables(t)

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"args", "", []string{"stem", "--data", data, "كتب", "خانهها"}, "كتب\tکتاب\nخانهها\tخانه\n"},
		{"plain", "", []string{"stem", "--data", data, "--plain", "رفتم", "دوستی"}, "رفت\nدوست\n"},
		{"stdin", "کتبم\n\nhello\n", []string{"stem", "--data", data}, "کتبم\tکتاب\nhello\thello\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestStemCommandInitFailure(t *testing.T) {
	_, err := run(t, "", "stem", "--data", t.TempDir(), "کتاب")
	require.Error(t, err)
	assert.ErrorIs(t, err, tables.ErrInit)
	assert.True(t, strings.HasPrefix(err.Error(), "initialization failed"))
}

func TestStemCommandVerbsDisabled(t *testing.T) {
	t.Setenv("STEMFA_ENABLE_VERB", "false")
	out, err := run(t, "", "stem", "--data", writeTables(t), "--plain", "رفتم")
	require.NoError(t, err)
	assert.Equal(t, "رفتم\n", out)
}

func TestCacheFile(t *testing.T) {
	data := writeTables(t)
	cache := filepath.Join(t.TempDir(), "cache.json")

	_, err := run(t, "", "stem", "--data", data, "--cache-file", cache, "کتبم")
	require.NoError(t, err)
	stems, err := persist.LoadSnapshot(cache)
	require.NoError(t, err)
	assert.Equal(t, "کتاب", stems["کتبم"])

	// A restored entry is served from the cache.
	require.NoError(t, persist.SaveSnapshot(cache, map[string]string{"کتبم": "مجلد"}))
	out, err := run(t, "", "stem", "--data", data, "--cache-file", cache, "--plain", "--once", "کتبم")
	require.NoError(t, err)
	assert.Equal(t, "مجلد\n", out)

	out, err = run(t, "", "stem", "--data", data, "--cache-file", cache, "--reset-cache", "--plain", "--once", "کتبم")
	require.NoError(t, err)
	assert.Equal(t, "کتاب\n", out)
}

func TestTokensCommand(t *testing.T) {
	out, err := run(t, "کتب و خانهها", "tokens", "--data", writeTables(t))
	require.NoError(t, err)
	assert.Equal(t, "کتاب\nخانه\n", out)
}

func TestTokensTop(t *testing.T) {
	out, err := run(t, "کتب و کتابها\nخانه کتاب\n", "tokens", "--data", writeTables(t), "--top", "1")
	require.NoError(t, err)
	assert.Equal(t, "کتاب\t3\t2\n", out)
}

func TestSearchCommand(t *testing.T) {
	data := writeTables(t)
	doc := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(doc, []byte("کتب قدیمی\nخانه بزرگ\n"), 0644))

	out, err := run(t, "", "search", "--data", data, "--query", "کتاب", doc)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], doc+":1\t"), lines[0])
	assert.True(t, strings.HasSuffix(lines[0], "\tکتب قدیمی"), lines[0])
}

func TestExplainCommand(t *testing.T) {
	out, err := run(t, "", "explain", "--data", writeTables(t), "--json", "دوستی")
	require.NoError(t, err)

	var tr struct {
		Working    string   `json:"working"`
		Candidates []string `json:"candidates"`
		Result     string   `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &tr))
	assert.Equal(t, "دوستی", tr.Working)
	assert.Equal(t, []string{"دوست"}, tr.Candidates)
	assert.Equal(t, "دوست", tr.Result)

	out, err = run(t, "", "explain", "--data", writeTables(t), "hello")
	require.NoError(t, err)
	assert.Contains(t, out, "skipped:      latin")
}

func TestInspectCommand(t *testing.T) {
	out, err := run(t, "", "inspect", "--data", writeTables(t), "--json")
	require.NoError(t, err)

	var res inspectResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 1, res.Tables.Rules)
	assert.Equal(t, 4, res.Tables.Lexicon)
	assert.Equal(t, 1, res.Tables.Verbs)
	assert.Zero(t, res.CacheEntries)
}

func TestConfigCommand(t *testing.T) {
	t.Setenv("STEMFA_PATTERN_RANK", "-1")
	out, err := run(t, "", "config", "--data", "/srv/tables")
	require.NoError(t, err)
	assert.Contains(t, out, "data_dir: /srv/tables")
	assert.Contains(t, out, "pattern_rank: -1")

	out, err = run(t, "", "config", "--env")
	require.NoError(t, err)
	assert.Contains(t, out, "STEMFA_ENABLE_CACHE")
}
