package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/adrg/xdg"
)

var illegalFilename = regexp.MustCompile(`[\\/:*?"<>|]`)

// ErrWrap returns a function that swallows an error
// by falling back to the given default value
func ErrWrap[T any](fallback T) func(T, error) T {
	return func(value T, err error) T {
		if err != nil {
			return fallback
		}
		return value
	}
}

func ErrSuppress(err error) {
	_ = err
}

func First[T any](values []T, fallback T) T {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}

// LegalizeFilename strips characters which are
// not universally supported across filesystems
func LegalizeFilename(filename string) string {
	return strings.TrimSpace(illegalFilename.ReplaceAllString(filename, ""))
}

func FileBaseStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// CacheFile returns the path of the given filename
// within the user cache directory, creating parents
func CacheFile(filename string) string {
	path, err := xdg.CacheFile(filepath.Join("umd", filename))
	if err != nil {
		return filepath.Join(os.TempDir(), filename)
	}
	return path
}

// FileMoveOrCopy relocates a file, falling back to a copy
// when a plain rename crosses filesystem boundaries
func FileMoveOrCopy(source, destination string, overwrite ...bool) error {
	if _, err := os.Stat(destination); err == nil && !First(overwrite, false) {
		return fmt.Errorf("file %s already exists", destination)
	}

	if err := os.Rename(source, destination); err == nil {
		return nil
	}

	input, err := os.Open(source)
	if err != nil {
		return err
	}
	defer input.Close()

	output, err := os.Create(destination)
	if err != nil {
		return err
	}
	defer output.Close()

	if _, err := io.Copy(output, input); err != nil {
		return err
	}
	return os.Remove(source)
}

// Excerpt shortens the given data to
// a printable, single-line preview
func Excerpt(data string, length ...int) string {
	var (
		flat = strings.Join(strings.Fields(data), " ")
		size = First(length, 80)
	)
	if len(flat) <= size {
		return flat
	}
	return flat[:size] + "..."
}

func HumanizeBytes(size int) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%dB", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%cB", float64(size)/float64(div), "KMGTPE"[exp])
}
