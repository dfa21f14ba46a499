package downloader

import (
	"errors"
	"os/exec"
	"reflect"
	"testing"

	"github.com/agiledragon/gomonkey/v2"
	"github.com/stretchr/testify/assert"
)

func TestYouTubeDl(t *testing.T) {
	// monkey patching
	defer gomonkey.ApplyMethodReturn(&exec.Cmd{}, "Run", nil).Reset()

	// testing
	assert.Nil(t, YouTubeDl("https://youtu.be/dQw4w9WgXcQ", "/tmp/track.mp3"))
}

func TestYouTubeDlFailure(t *testing.T) {
	// monkey patching
	defer gomonkey.ApplyMethod(reflect.TypeOf(&exec.Cmd{}), "Run", func(cmd *exec.Cmd) error {
		_, _ = cmd.Stderr.Write([]byte("ERROR: unsupported URL"))
		return errors.New("exit status 1")
	}).Reset()

	// testing
	err := YouTubeDl("https://example.com/broken", "/tmp/track.mp3")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported URL")
}
