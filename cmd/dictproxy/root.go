package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/dictproxy/internal/app"
	"github.com/heartmarshall/dictproxy/internal/config"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "dictproxy",
		Short:        "Dictionary lookup proxy",
		SilenceUsage: true,
	}

	cmd.Version = app.BuildVersion()
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to YAML config (default $CONFIG_PATH or ./config.yaml)")

	cmd.AddCommand(
		newServeCmd(opts),
		newDefineCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

func (o *rootOptions) load() (*config.Config, error) {
	path := o.configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	return config.LoadFrom(path)
}
