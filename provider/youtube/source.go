package youtube

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Source hands back candidates for a text query. It is
// the only I/O-bound collaborator of the selection cycle
// and must be assumed unreliable: empty results and
// errors are tolerated per variant.
type Source interface {
	Search(ctx context.Context, query string, maxResults int) ([]Candidate, error)
}

// YTDLPSource searches through yt-dlp's ytsearch
// pseudo-URL, decoding one metadata JSON object per
// result line
type YTDLPSource struct {
	Timeout time.Duration
}

const defaultSearchTimeout = 45 * time.Second

type searchResult struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Uploader     string  `json:"uploader"`
	Channel      string  `json:"channel"`
	ChannelID    string  `json:"channel_id"`
	Duration     float64 `json:"duration"`
	ViewCount    int64   `json:"view_count"`
	LikeCount    int64   `json:"like_count"`
	CommentCount int64   `json:"comment_count"`
	UploadDate   string  `json:"upload_date"`
	Description  string  `json:"description"`
	Followers    int64   `json:"channel_follower_count"`
}

func (source YTDLPSource) Search(ctx context.Context, query string, maxResults int) ([]Candidate, error) {
	timeout := source.Timeout
	if timeout == 0 {
		timeout = defaultSearchTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	output, err := exec.CommandContext(ctx, "yt-dlp",
		fmt.Sprintf("ytsearch%d:%s", maxResults, query),
		"--dump-json",
		"--no-download",
		"--no-warnings",
	).Output()
	if err != nil {
		return nil, err
	}

	var candidates []Candidate
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if line == "" {
			continue
		}

		var result searchResult
		if err := json.UnmarshalFromString(line, &result); err != nil {
			// one malformed result does not void the batch
			continue
		}
		candidates = append(candidates, result.candidate())
	}
	return candidates, nil
}

// candidate maps a raw result onto the scoring model,
// normalizing absent numerics to the "unknown" zero value
func (result searchResult) candidate() Candidate {
	uploader := result.Uploader
	if uploader == "" {
		uploader = result.Channel
	}
	return Candidate{
		ID:          result.ID,
		Title:       result.Title,
		Uploader:    uploader,
		ChannelID:   result.ChannelID,
		Duration:    positiveInt(int(result.Duration)),
		Views:       positiveCount(result.ViewCount),
		Likes:       positiveCount(result.LikeCount),
		Comments:    positiveCount(result.CommentCount),
		UploadDate:  result.UploadDate,
		Description: result.Description,
		Subscribers: positiveCount(result.Followers),
	}
}

func positiveCount(value int64) int64 {
	if value < 0 {
		return 0
	}
	return value
}

func positiveInt(value int) int {
	if value < 0 {
		return 0
	}
	return value
}
