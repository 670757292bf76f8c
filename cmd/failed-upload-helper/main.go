// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the failed-upload-helper CLI.
// It reads a saved notebook page body, lists the files whose upload failed,
// and joins them into a search query for bulk re-selection.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "1.1.1"

const (
	appName   = "failed-upload-helper"
	envPrefix = "FAILED_UPLOAD_HELPER"
)

// newRootCmd builds the CLI with its own viper instance so that every
// invocation starts from clean flag and config state.
func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   appName + " [file]",
		Short: "Recover failed-upload filenames from a saved notebook page",
		Long: `failed-upload-helper reads text copied from a notebook page body (open the
developer tools, copy the body element, and paste it into a text file) and
lists every .txt or .pdf file shown after a loading spinner. Those are the
sources whose upload failed.

Join the names into a search query (--format query or --copy) to select the
files again in a desktop search tool and re-upload them in one go. Duplicate
names are kept; the notebook's source manager removes them on upload.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args, v)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./failed-upload-helper.yaml or ~/.config/failed-upload-helper/config.yaml)")

	rootCmd.Flags().String("format", "list", "output format: list, query, json, or yaml")
	rootCmd.Flags().String("separator", "|", "separator used to join names into a search query")
	rootCmd.Flags().Bool("demo", true, "run the built-in sample before reading the file")
	rootCmd.Flags().Bool("copy", false, "copy the joined search query to the clipboard")
	rootCmd.Flags().String("save", "", "write the results to a YAML file")
	rootCmd.Flags().BoolP("verbose", "v", false, "log diagnostics to stderr")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(appName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", appName))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", v.ConfigFileUsed())
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
