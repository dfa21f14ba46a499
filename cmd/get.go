package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arunsworld/nursery"
	"github.com/gosimple/slug"
	"github.com/nk2552003/umd/applemusic"
	"github.com/nk2552003/umd/downloader"
	"github.com/nk2552003/umd/entity"
	"github.com/nk2552003/umd/entity/index"
	"github.com/nk2552003/umd/platform"
	"github.com/nk2552003/umd/processor"
	"github.com/nk2552003/umd/provider"
	_ "github.com/nk2552003/umd/provider/youtube"
	"github.com/nk2552003/umd/spotify"
	"github.com/nk2552003/umd/util"
	"github.com/nk2552003/umd/util/anchor"
	"github.com/spf13/cobra"
)

const (
	routineTypeIndex int = iota
	routineTypeDecide
	routineTypeCollect
	routineTypeProcess
	routineTypeInstall
)

var (
	routineSemaphores map[int](chan bool)
	routineQueues     map[int](chan *entity.Track)
	tui               = anchor.New(anchor.Red)
)

func init() {
	cmdRoot.AddCommand(cmdGet())
}

func cmdGet() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "get",
		Short:        "Download one or more URLs or \"title - artist\" queries",
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				path   = util.ErrWrap(xdg.UserDirs.Music)(cmd.Flags().GetString("output"))
				manual = util.ErrWrap(false)(cmd.Flags().GetBool("manual"))
			)

			if err := nursery.RunConcurrently(
				routineIndex(path),
				routineFetch(cmd.Context(), args),
				routineDecide(cmd.Context(), manual),
				routineCollect,
				routineProcess,
				routineInstall(path),
			); err != nil {
				return err
			}

			tui.Printf("download complete")
			return nil
		},
		PreRun: func(_ *cobra.Command, _ []string) {
			routineSemaphores = map[int](chan bool){
				routineTypeIndex: make(chan bool, 1),
			}
			routineQueues = map[int](chan *entity.Track){
				routineTypeDecide:  make(chan *entity.Track, 100),
				routineTypeCollect: make(chan *entity.Track, 100),
				routineTypeProcess: make(chan *entity.Track, 100),
				routineTypeInstall: make(chan *entity.Track, 10),
			}
		},
	}
	cmd.Flags().StringP("output", "o", xdg.UserDirs.Music, "Output directory")
	cmd.Flags().BoolP("manual", "m", false, "Enable manual mode (prompts for user-issued URL to use for download)")
	return cmd
}

// indexer scans the local library so already installed
// tracks get skipped instead of re-downloaded
func routineIndex(path string) func(context.Context, chan error) {
	return func(_ context.Context, ch chan error) {
		defer close(routineSemaphores[routineTypeIndex])

		tui.Lot("index").Printf("scanning")
		if err := indexData.Build(path); err != nil {
			tui.Printf("indexing failed: %s", err)
			ch <- err
			routineSemaphores[routineTypeIndex] <- false
			return
		}
		tui.Lot("index").Close(fmt.Sprintf("%d tracks", indexData.Size()))
		routineSemaphores[routineTypeIndex] <- true
	}
}

// fetcher resolves every input into track metadata,
// scraping or querying the owning platform
func routineFetch(ctx context.Context, inputs []string) func(context.Context, chan error) {
	return func(_ context.Context, ch chan error) {
		defer close(routineQueues[routineTypeDecide])
		if !<-routineSemaphores[routineTypeIndex] {
			return
		}

		var spotifyClient *spotify.Client
		for _, input := range inputs {
			kind := platform.Detect(input)
			tui.Lot("fetch").Printf("%s (%s)", util.Excerpt(input, 60), kind)

			track, err := func() (*entity.Track, error) {
				switch kind {
				case platform.Spotify:
					if spotifyClient == nil {
						var err error
						if spotifyClient, err = spotify.Authenticate(ctx); err != nil {
							return nil, err
						}
					}
					return spotifyClient.Track(ctx, platform.ID(input))
				case platform.AppleMusic:
					return applemusic.Track(ctx, input)
				case platform.Query:
					return queryTrack(input), nil
				default:
					// direct URLs skip the decision step altogether
					return &entity.Track{
						ID:          slug.Make(input),
						Title:       platform.ID(input),
						UpstreamURL: input,
					}, nil
				}
			}()
			if err != nil {
				ch <- err
				return
			}

			tui.Printf("fetched %s by %s", track.Title, track.Artist())
			routineQueues[routineTypeDecide] <- track
		}
		tui.Lot("fetch").Close()
	}
}

// queryTrack builds a track out of a plain
// "title - artist" search string
func queryTrack(input string) *entity.Track {
	track := &entity.Track{ID: slug.Make(input), Title: input}
	if title, artist, found := strings.Cut(input, " - "); found {
		track.Title = title
		track.Artists = []string{artist}
	}
	return track
}

// decider finds the right asset to retrieve
// for a given track
func routineDecide(ctx context.Context, manualMode bool) func(context.Context, chan error) {
	return func(_ context.Context, ch chan error) {
		defer close(routineQueues[routineTypeCollect])

		for track := range routineQueues[routineTypeDecide] {
			if status, ok := indexData.Get(track); ok && (status == index.Installed || status == index.Offline) {
				tui.Printf("skip %s by %s", track.Title, track.Artist())
				continue
			}
			indexData.Set(track, index.Online)

			if track.UpstreamURL == "" && manualMode {
				url := tui.Reads(fmt.Sprintf("URL for %s by %s:", track.Title, track.Artist()))
				if len(url) == 0 {
					continue
				}
				track.UpstreamURL = url
			}

			if track.UpstreamURL == "" {
				tui.Lot("decide").Printf("%s by %s", track.Title, track.Artist())
				matches, err := provider.Search(ctx, track)
				tui.Lot("decide").Wipe()
				if err != nil {
					ch <- err
					return
				}
				if len(matches) == 0 {
					tui.AnchorPrintf("%s by %s not found", track.Title, track.Artist())
					continue
				}
				track.UpstreamURL = matches[0].URL
			}

			routineQueues[routineTypeCollect] <- track
		}
		tui.Lot("decide").Close()
	}
}

// collector fetches the audio asset and the artwork
// concurrently before the track moves on to processing
func routineCollect(_ context.Context, ch chan error) {
	defer close(routineQueues[routineTypeProcess])

	for track := range routineQueues[routineTypeCollect] {
		if err := nursery.RunConcurrently(
			routineCollectAsset(track),
			routineCollectArtwork(track),
		); err != nil {
			ch <- err
			return
		}
		routineQueues[routineTypeProcess] <- track
	}
	tui.Lot("download").Close()
	tui.Lot("paint").Close()
}

func routineCollectAsset(track *entity.Track) func(context.Context, chan error) {
	return func(_ context.Context, ch chan error) {
		tui.Lot("download").Print(track.UpstreamURL)
		if err := downloader.Download(track.UpstreamURL, track.Path().Download()); err != nil {
			tui.AnchorPrintf("download failure: %s", err)
			ch <- err
			return
		}
		tui.Lot("download").Wipe()
	}
}

func routineCollectArtwork(track *entity.Track) func(context.Context, chan error) {
	return func(_ context.Context, ch chan error) {
		if track.Artwork.URL == "" {
			return
		}

		artwork := make(chan []byte, 1)
		defer close(artwork)

		tui.Lot("paint").Printf("%s by %s", track.Title, track.Artist())
		if err := downloader.Blob(track.Artwork.URL, track.Path().Artwork(), artwork); err != nil {
			tui.AnchorPrintf("artwork failure: %s", err)
			ch <- err
			return
		}

		data, err := processor.Artwork{}.Apply(<-artwork)
		if err != nil {
			ch <- err
			return
		}
		track.Artwork.Data = data
		tui.Lot("paint").Wipe()
		tui.Printf("artwork for %s by %s: %s", track.Title, track.Artist(), util.HumanizeBytes(len(data)))
	}
}

// postprocessor stamps metadata into the downloaded blob
func routineProcess(_ context.Context, ch chan error) {
	defer close(routineQueues[routineTypeInstall])

	for track := range routineQueues[routineTypeProcess] {
		tui.Lot("process").Printf("%s by %s", track.Title, track.Artist())
		if err := processor.Do(track); err != nil {
			tui.AnchorPrintf("processing failed for %s by %s: %s", track.Title, track.Artist(), err)
			ch <- err
			return
		}
		tui.Lot("process").Wipe()
		routineQueues[routineTypeInstall] <- track
	}
	tui.Lot("process").Close()
}

// installer moves the blob to its final destination
func routineInstall(path string) func(context.Context, chan error) {
	return func(_ context.Context, ch chan error) {
		for track := range routineQueues[routineTypeInstall] {
			tui.Lot("install").Printf("%s by %s", track.Title, track.Artist())
			if err := util.FileMoveOrCopy(track.Path().Download(), filepath.Join(path, track.Path().Final())); err != nil {
				tui.AnchorPrintf("installation failed for %s by %s: %s", track.Title, track.Artist(), err)
				ch <- err
				return
			}
			tui.Lot("install").Wipe()
			indexData.Set(track, index.Installed)
		}
		tui.Lot("install").Close(fmt.Sprintf("%d tracks", indexData.Size(index.Installed)))
	}
}
