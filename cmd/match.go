package cmd

import (
	"fmt"
	"sort"

	"github.com/nk2552003/umd/provider/youtube"
	"github.com/nk2552003/umd/util"
	"github.com/spf13/cobra"
)

func init() {
	cmdRoot.AddCommand(cmdMatch())
}

// match exposes the candidate ranking for inspection:
// it scores the raw search results of a query without
// downloading anything
func cmdMatch() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "match",
		Short:        "Show how candidates rank for a \"title - artist\" query",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				results = util.ErrWrap(8)(cmd.Flags().GetInt("results"))
				verbose = util.ErrWrap(false)(cmd.Flags().GetBool("breakdown"))
				query   = youtube.ParseQuery(args[0])
				scorer  = youtube.NewScorer()
				source  = youtube.YTDLPSource{}
			)

			candidates, err := source.Search(cmd.Context(), args[0], results)
			if err != nil {
				return err
			}
			if len(candidates) == 0 {
				return fmt.Errorf("no candidate found for %s", args[0])
			}

			type ranked struct {
				candidate youtube.Candidate
				score     float64
				breakdown youtube.Breakdown
			}
			var table []ranked
			for _, candidate := range candidates {
				score, breakdown := scorer.Score(candidate, query)
				table = append(table, ranked{candidate, score, breakdown})
			}
			sort.SliceStable(table, func(i, j int) bool {
				return table[i].score > table[j].score
			})

			for position, entry := range table {
				fmt.Printf("%2d. %7.1f  %s (%s)\n",
					position+1, entry.score,
					util.Excerpt(entry.candidate.Title, 60),
					entry.candidate.URL())
				if !verbose {
					continue
				}
				for _, term := range entry.breakdown.Terms() {
					fmt.Printf("      %-12s %8.2f\n", term.Category, term.Value)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntP("results", "r", 8, "Number of candidates to fetch")
	cmd.Flags().BoolP("breakdown", "b", false, "Print the per-category score breakdown")
	return cmd
}
