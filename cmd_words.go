package main

import (
	"fmt"
	"slices"

	"github.com/fivemoreminix/glslmode/pkg/glsl"
	"github.com/spf13/cobra"
)

func newWordsCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words [CATEGORY...]",
		Short: "List the words and patterns of each category",
		Long: `Prints "category word" for every word known to the classifier, including
additional words from the configuration file, and "category /pattern/" for
categories matched by a pattern. Categories are listed in precedence order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := glsl.Categories()
			if len(args) > 0 {
				cats = cats[:0]
				for _, name := range args {
					c, err := glsl.ParseCategory(name)
					if err != nil {
						return err
					}
					cats = append(cats, c)
				}
			}

			cfg, err := LoadConfig(flags.configPath)
			if err != nil {
				return err
			}
			classifier, err := cfg.Classifier()
			if err != nil {
				return err
			}
			table := classifier.Table()

			out := cmd.OutOrStdout()
			for _, c := range cats {
				words := slices.Clone(table.Words[c])
				slices.Sort(words)
				for _, w := range slices.Compact(words) {
					fmt.Fprintf(out, "%s %s\n", c, w)
				}
				if expr, ok := table.Patterns[c]; ok {
					fmt.Fprintf(out, "%s /%s/\n", c, expr)
				}
			}
			return nil
		},
	}
	return cmd
}
