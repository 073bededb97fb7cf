// Command dictproxy serves the dictionary lookup HTTP API and offers
// one-shot lookups from the command line.
//
// Usage:
//
//	dictproxy serve [--config path]
//	dictproxy define <word> [--lang en] [--raw] [--text]
//	dictproxy version
//
// Configuration is read from --config, then CONFIG_PATH, then ./config.yaml,
// with environment variables taking priority over the file.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
