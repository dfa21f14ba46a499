package cmd

import (
	"fmt"
	"os"

	"github.com/nk2552003/umd/entity/index"
	"github.com/spf13/cobra"
)

var (
	cmdRoot = &cobra.Command{
		Use:   "umd",
		Short: "Download audio from YouTube, Spotify, Apple Music, SoundCloud and generic sites",
	}
	indexData = index.New()
)

func Execute() {
	if err := cmdRoot.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
