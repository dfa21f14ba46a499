package util

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrWrap(t *testing.T) {
	assert.Equal(t, "value", ErrWrap("fallback")("value", nil))
	assert.Equal(t, "fallback", ErrWrap("fallback")("value", errors.New("failure")))
}

func TestLegalizeFilename(t *testing.T) {
	assert.Equal(t, "AMSOL - Smells Like Teen Spirit.mp3",
		LegalizeFilename(`AM/SOL - "Smells Like Teen Spirit?".mp3`))
}

func TestFileBaseStem(t *testing.T) {
	assert.Equal(t, "track", FileBaseStem("/some/path/track.mp3"))
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "one two three", Excerpt("one\ntwo\n\tthree"))
	assert.Equal(t, "012...", Excerpt("0123456789", 3))
}

func TestHumanizeBytes(t *testing.T) {
	assert.Equal(t, "128B", HumanizeBytes(128))
	assert.Equal(t, "1.5KB", HumanizeBytes(1536))
	assert.Equal(t, "2.0MB", HumanizeBytes(2*1024*1024))
}

func TestFileMoveOrCopy(t *testing.T) {
	var (
		dir         = t.TempDir()
		source      = filepath.Join(dir, "source")
		destination = filepath.Join(dir, "destination")
	)
	assert.Nil(t, os.WriteFile(source, []byte("data"), 0o644))
	assert.Nil(t, FileMoveOrCopy(source, destination))

	data, err := os.ReadFile(destination)
	assert.Nil(t, err)
	assert.Equal(t, "data", string(data))
	assert.NoFileExists(t, source)
}

func TestFileMoveOrCopyRefusesOverwrite(t *testing.T) {
	var (
		dir         = t.TempDir()
		source      = filepath.Join(dir, "source")
		destination = filepath.Join(dir, "destination")
	)
	assert.Nil(t, os.WriteFile(source, []byte("new"), 0o644))
	assert.Nil(t, os.WriteFile(destination, []byte("old"), 0o644))

	assert.Error(t, FileMoveOrCopy(source, destination))
	assert.Nil(t, FileMoveOrCopy(source, destination, true))

	data, _ := os.ReadFile(destination)
	assert.Equal(t, "new", string(data))
}
