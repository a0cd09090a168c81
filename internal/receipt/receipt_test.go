package receipt

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DotNFT/internal/mint"
)

func TestMakeRunDir(t *testing.T) {
	base := t.TempDir()
	now := time.Date(2025, 3, 9, 14, 5, 7, 0, time.Local)

	dir, err := MakeRunDir(base, "mint", now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "mint", "09.03.2025", "mint_14-05-07"), dir)

	again, err := MakeRunDir(base, "mint", now)
	require.NoError(t, err)
	assert.Equal(t, dir+"_2", again)
}

func TestWriter_Record(t *testing.T) {
	dir := t.TempDir()
	id := uint32(4)
	rep := &mint.Report{
		RunID:        "run-1",
		CollectionID: &id,
		Items: []mint.ItemResult{
			{Index: 0, ItemID: 1, Name: "Shell #1", Status: mint.ItemMinted},
			{Index: 1, ItemID: 2, Name: "Shell #2", Status: mint.ItemFailed, Error: "boom"},
		},
		Minted: 1,
		Failed: 1,
	}

	w := NewWriter(dir)
	require.NoError(t, w.Record(rep))

	f, err := os.Open(filepath.Join(dir, ItemsFile))
	require.NoError(t, err)
	defer f.Close()
	var lines []mint.ItemResult
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var it mint.ItemResult
		require.NoError(t, json.Unmarshal(sc.Bytes(), &it))
		lines = append(lines, it)
	}
	require.Len(t, lines, 2)
	assert.Equal(t, "boom", lines[1].Error)

	blob, err := os.ReadFile(filepath.Join(dir, SummaryFile))
	require.NoError(t, err)
	var sum map[string]any
	require.NoError(t, json.Unmarshal(blob, &sum))
	assert.Equal(t, "run-1", sum["runId"])
	assert.EqualValues(t, 4, sum["collectionId"])
	assert.EqualValues(t, 1, sum["failed"])
	assert.Nil(t, sum["items"])

	// the caller's report keeps its items
	assert.Len(t, rep.Items, 2)
}

func TestAppendJSONL_CreatesParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b.jsonl")
	require.NoError(t, AppendJSONL(path, map[string]int{"n": 1}))
	require.NoError(t, AppendJSONL(path, map[string]int{"n": 2}))

	blob, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\"n\":1}\n{\"n\":2}\n", string(blob))
}
