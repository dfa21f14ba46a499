package downloader

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/nk2552003/umd/util"
	"github.com/thanhpk/randstr"
)

// Download retrieves an audio asset: every supported
// platform URL goes through the yt-dlp engine, which
// also covers generic sites
func Download(url, path string) error {
	return YouTubeDl(url, path)
}

// Blob retrieves a plain binary asset, e.g. an artwork
// image, optionally handing the bytes to the given sinks
// besides writing them to path
func Blob(url, path string, sinks ...chan []byte) error {
	response, err := http.Get(url)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected response %d downloading %s", response.StatusCode, url)
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	// land on a temporary neighbour first so that a torn
	// write never leaves a half blob at path
	scratch := filepath.Join(filepath.Dir(path), "."+randstr.Hex(8))
	if err := os.WriteFile(scratch, data, 0o644); err != nil {
		return err
	}
	if err := util.FileMoveOrCopy(scratch, path, true); err != nil {
		return err
	}

	for _, sink := range sinks {
		sink <- data
	}
	return nil
}
