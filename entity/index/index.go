package index

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bogem/id3v2/v2"
	"github.com/nk2552003/umd/entity"
	"github.com/nk2552003/umd/entity/id3"
)

const (
	Online int = iota
	Offline
	Installed
	Flush
)

// Index tracks which library entries are already
// present locally, keyed by track ID
type Index struct {
	mutex sync.RWMutex
	data  map[string]int
}

func New() *Index {
	return &Index{data: map[string]int{}}
}

// Build scans the given directory collecting track IDs
// out of the ID3 metadata of installed files
func (index *Index) Build(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return filepath.Walk(path, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || !strings.HasSuffix(strings.ToLower(path), entity.TrackFormat) {
			return err
		}

		tag, err := id3.Open(path, id3v2.Options{Parse: true, ParseFrames: []string{"TXXX"}})
		if err != nil {
			// unreadable tags do not carry an ID anyway
			return nil
		}
		defer tag.Close()

		if id := tag.TrackID(); len(id) > 0 {
			index.mutex.Lock()
			index.data[id] = Offline
			index.mutex.Unlock()
		}
		return nil
	})
}

func (index *Index) Get(track *entity.Track) (int, bool) {
	index.mutex.RLock()
	defer index.mutex.RUnlock()
	status, ok := index.data[track.ID]
	return status, ok
}

func (index *Index) Set(track *entity.Track, status int) {
	index.mutex.Lock()
	defer index.mutex.Unlock()
	index.data[track.ID] = status
}

func (index *Index) Size(statuses ...int) int {
	index.mutex.RLock()
	defer index.mutex.RUnlock()

	if len(statuses) == 0 {
		return len(index.data)
	}

	counter := 0
	for _, status := range index.data {
		for _, filter := range statuses {
			if status == filter {
				counter++
				break
			}
		}
	}
	return counter
}
