package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsphweid/barscribe/tune"
	"github.com/stretchr/testify/assert"
)

const scaleTune = `
title: scale
meter: 4/4
parts:
  a: "CDEF | GABc"
`

func writeTune(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBatchExportsEveryTune(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	t.Setenv("OUT_PATH", out)
	writeTune(t, in, "scale.yaml", scaleTune)
	writeTune(t, in, "broken.yaml", "title: broken\nparts: {a: \"'\"}")

	failed, err := batch(in, 0)

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(1, failed)

	r, err := analyzeOutDir(out)
	assert.Nil(err)
	assert.Equal(int64(1), r.numFiles)
	assert.Equal([]int64{8}, r.notesPerFile)
}

func TestExportTuneDefaultsToOutDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")
	t.Setenv("OUT_PATH", out)
	in := t.TempDir()

	tn, err := tune.Load(writeTune(t, in, "scale.yaml", scaleTune))
	assert := assert.New(t)
	assert.Nil(err)

	path, err := exportTune(tn, "", 3, 0)
	assert.Nil(err)
	assert.Equal(out, filepath.Dir(path))

	r, err := analyzeOutDir(out)
	assert.Nil(err)
	assert.Equal([]int64{2}, r.notesPerFile)

	_, err = exportTune(tn, "", 0, 16)
	assert.NotNil(err)
}

func TestWatchFiresOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeTune(t, dir, "scale.yaml", scaleTune)
	calls := make(chan string, 10)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- watch(ctx, path, 100*time.Millisecond, func(p string) { calls <- p })
	}()

	assert := assert.New(t)
	assert.Equal(path, <-calls)

	// other files in the directory are ignored
	writeTune(t, dir, "other.yaml", scaleTune)
	for i := 0; i < 3; i++ {
		writeTune(t, dir, "scale.yaml", scaleTune)
	}
	select {
	case p := <-calls:
		assert.Equal(path, p)
	case <-time.After(2 * time.Second):
		t.Fatal("no call after the file changed")
	}

	// the burst of saves is one call
	select {
	case <-calls:
		t.Fatal("saves were not debounced")
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	assert.Nil(<-done)
}
