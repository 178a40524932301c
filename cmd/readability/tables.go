package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cours-de-latin/langdata"
)

func (c *cli) tablesCmd() *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List the word categories and their patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := c.language()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asYAML {
				doc := struct {
					Language   string        `yaml:"language"`
					Words      []rulePattern `yaml:"words"`
					Beginnings []rulePattern `yaml:"beginnings"`
				}{lang.Code, patterns(lang.Words), patterns(lang.Beginnings)}
				return yaml.NewEncoder(out).Encode(doc)
			}

			fmt.Fprintf(out, "%s (%s)\n", lang.Name, lang.Code)
			for _, sec := range []struct {
				name  string
				table *langdata.RuleTable
			}{{"words", lang.Words}, {"sentence beginnings", lang.Beginnings}} {
				fmt.Fprintf(out, "%s:\n", sec.name)
				sec.table.Each(func(name string, m langdata.Matcher) bool {
					fmt.Fprintf(out, "    %-16s %s\n", name+":", m)
					return true
				})
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "write YAML")
	return cmd
}

type rulePattern struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

// patterns lists the rules of t in table order.
func patterns(t *langdata.RuleTable) []rulePattern {
	out := make([]rulePattern, 0, t.Len())
	t.Each(func(name string, m langdata.Matcher) bool {
		out = append(out, rulePattern{Name: name, Pattern: m.String()})
		return true
	})
	return out
}
