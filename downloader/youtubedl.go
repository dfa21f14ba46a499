package downloader

import (
	"bytes"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
)

// YouTubeDl extracts the best audio stream of the given
// URL into path, delegating retrieval and transcoding to
// the external yt-dlp engine
func YouTubeDl(url, path string) error {
	var (
		output bytes.Buffer
		ext    = strings.TrimPrefix(filepath.Ext(path), ".")
		stem   = strings.TrimSuffix(path, "."+ext)
		cmd    = exec.Command("yt-dlp",
			"--format", "bestaudio",
			"--extract-audio",
			"--audio-format", ext,
			"--audio-quality", "0",
			"--output", stem+".%(ext)s",
			"--continue",
			"--no-overwrites",
			"--retry-sleep", "exp=1::2",
			"--sleep-interval", "5",
			url,
		)
	)
	cmd.Stdout = &output
	cmd.Stderr = &output
	if err := cmd.Run(); err != nil {
		return errors.New(output.String())
	}
	return nil
}
