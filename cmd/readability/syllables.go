package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *cli) syllablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "syllables WORD...",
		Short: "Print the estimated syllable count of each word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := c.language()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, word := range args {
				n, err := lang.CountSyllables(word)
				if err != nil {
					return fmt.Errorf("%q: %w", word, err)
				}
				fmt.Fprintf(tw, "%s\t%d\n", word, n)
			}
			return tw.Flush()
		},
	}
}
