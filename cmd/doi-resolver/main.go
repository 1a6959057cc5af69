// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the doi-resolver CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/doi-resolver/pkg/doi"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is the CLI diagnostic logger. The root command swaps it for a
// stderr logger once the --verbose flag has been read.
var logger = log.New(io.Discard)

// rootCmd is the base command for the doi-resolver CLI.
var rootCmd = &cobra.Command{
	Use:   "doi-resolver",
	Short: "Resolve DOIs and fetch bibliographic metadata",
	Long: `doi-resolver turns Digital Object Identifiers into publisher URLs and
bibliographic records. The resolve subcommand follows the doi.org redirect
chain to a document's current location; the metadata subcommand asks the
same endpoint for the record in JSON, BibTeX, structured, or CSL-YAML form.

Proxy settings, timeout, and User-Agent come from flags, the config file,
or DOI_RESOLVER_* environment variables.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := log.WarnLevel
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = log.DebugLevel
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		})
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./doi-resolver.yaml or ~/.config/doi-resolver/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP request timeout")
	rootCmd.PersistentFlags().String("user-agent", "", "User-Agent header for resolver requests")
	rootCmd.PersistentFlags().String("proxy", "", "explicit proxy URL (overrides environment proxy settings)")
	rootCmd.PersistentFlags().Bool("no-env-proxy", false, "ignore HTTP_PROXY and related environment variables")

	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("user_agent", rootCmd.PersistentFlags().Lookup("user-agent"))
	viper.BindPFlag("proxy.url", rootCmd.PersistentFlags().Lookup("proxy"))
	viper.BindPFlag("proxy.disable_env", rootCmd.PersistentFlags().Lookup("no-env-proxy"))

	viper.SetDefault("timeout", 60*time.Second)
	viper.SetDefault("user_agent", "doi-resolver/0.1")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("doi-resolver")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "doi-resolver"))
		}
	}

	viper.SetEnvPrefix("DOI_RESOLVER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// clientConfig assembles the transport configuration from the merged
// flag/config/env view.
func clientConfig() doi.ClientConfig {
	return doi.ClientConfig{
		Timeout:         viper.GetDuration("timeout"),
		UserAgent:       viper.GetString("user_agent"),
		ProxyURL:        viper.GetString("proxy.url"),
		DisableEnvProxy: viper.GetBool("proxy.disable_env"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
