package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/dictproxy/internal/app"
	"github.com/heartmarshall/dictproxy/internal/domain"
)

type defineOptions struct {
	lang     string
	raw      bool
	textOnly bool
}

func newDefineCmd(root *rootOptions) *cobra.Command {
	opts := defineOptions{}

	cmd := &cobra.Command{
		Use:   "define <word>",
		Short: "Look a word up and print the result as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}

			logger := app.NewLogger(cfg.Log)
			svc := app.NewLookupService(cfg, logger)

			result, err := svc.Define(cmd.Context(), domain.LookupRequest{
				Word:     strings.Join(args, " "),
				Language: opts.lang,
				Raw:      opts.raw,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.textOnly {
				_, err = fmt.Fprintln(out, result.Text)
				return err
			}

			enc := json.NewEncoder(out)
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVarP(&opts.lang, "lang", "l", "", "dictionary language (default from config)")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "include the provider response")
	cmd.Flags().BoolVarP(&opts.textOnly, "text", "t", false, "print only the rendered text")

	return cmd
}
