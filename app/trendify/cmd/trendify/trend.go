package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iWorld-y/trendify/app/trendify/pkg/engine"
	trendfactory "github.com/iWorld-y/trendify/app/trendify/pkg/trend/factory"
)

func newTrendCmd(opts *options) *cobra.Command {
	var keyword string
	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Print the interest series for a keyword",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := trendfactory.NewSource(opts.cfg)
			if err != nil {
				return err
			}
			series := source.Fetch(cmd.Context(), engine.Keyword(keyword))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "source: %s\n", series.Provenance)
			for i, v := range series.Values {
				fmt.Fprintf(out, "day %d\t%g\n", i+1, v)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&keyword, "keyword", "k", "", "search keyword")
	_ = cmd.MarkFlagRequired("keyword")
	return cmd
}
