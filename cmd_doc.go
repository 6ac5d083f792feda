package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

func newDocCmd(flags *globalFlags) *cobra.Command {
	var copyURL bool

	cmd := &cobra.Command{
		Use:   "doc NAME...",
		Short: "Print the reference page URL of builtin functions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(flags.configPath)
			if err != nil {
				return err
			}
			classifier, err := cfg.Classifier()
			if err != nil {
				return err
			}

			urls := make([]string, 0, len(args))
			for _, name := range args {
				url, err := classifier.DocURL(name)
				if err != nil {
					return err
				}
				urls = append(urls, url)
				fmt.Fprintln(cmd.OutOrStdout(), url)
			}

			if copyURL {
				clip := NewClipboard()
				if clip.Method != ClipExternal {
					slog.Warn("No system clipboard; nothing was copied")
					return nil
				}
				if err := clip.Write(strings.Join(urls, "\n")); err != nil {
					return fmt.Errorf("copy: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyURL, "copy", false, "Also copy the URLs to the system clipboard")
	return cmd
}
