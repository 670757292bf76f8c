package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/failed-upload-helper/internal/extract"
	"github.com/pdiddy/failed-upload-helper/internal/input"
	"github.com/pdiddy/failed-upload-helper/internal/logging"
	"github.com/pdiddy/failed-upload-helper/internal/report"
	"github.com/pdiddy/failed-upload-helper/pkg/types"
)

func loadConfig(v *viper.Viper) (types.Config, error) {
	format, err := types.ParseOutputFormat(v.GetString("format"))
	if err != nil {
		return types.Config{}, err
	}
	return types.Config{
		Format:    format,
		Separator: v.GetString("separator"),
		Demo:      v.GetBool("demo"),
		Copy:      v.GetBool("copy"),
		SavePath:  v.GetString("save"),
		Verbose:   v.GetBool("verbose"),
	}, nil
}

func runExtract(cmd *cobra.Command, args []string, v *viper.Viper) error {
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	out := cmd.OutOrStdout()
	// Machine-readable formats keep stdout clean for piping.
	status := out
	if cfg.Format != types.FormatList {
		status = cmd.ErrOrStderr()
	}

	report.Header(status, version)
	if cfg.Demo {
		report.Demo(status)
	}

	if len(args) == 0 {
		fmt.Fprintln(status, "This tool reads from a file instead of pasted input.")
		fmt.Fprintf(status, "Usage: %s <path_to_your_file.txt>\n", appName)
		return nil
	}

	path := args[0]
	fmt.Fprintf(status, "\nReading from file: %s...\n", path)

	text, err := input.ReadText(path)
	if err != nil {
		logger.Debug("read failed", zap.String("path", path), zap.Error(err))
		reportReadError(status, path, err)
		return nil
	}

	fmt.Fprintln(status, "Searching for filenames...")
	names := extract.Extract(text)
	markers := extract.Count(text)
	logger.Debug("extraction finished",
		zap.String("path", path),
		zap.Int("bytes", len(text)),
		zap.Int("markers", markers),
		zap.Int("filenames", len(names)))
	if skipped := markers - len(names); skipped > 0 {
		logger.Debug("markers without a filename", zap.Int("count", skipped))
	}

	if err := report.Results(out, names, cfg.Format, cfg.Separator); err != nil {
		return err
	}

	if cfg.SavePath != "" {
		if err := report.WriteResultsFile(cfg.SavePath, path, names, cfg.Separator); err != nil {
			logger.Warn("could not save results", zap.String("path", cfg.SavePath), zap.Error(err))
		} else {
			fmt.Fprintf(status, "Saved results to %s\n", cfg.SavePath)
		}
	}

	if cfg.Copy {
		if _, err := report.CopyQuery(names, cfg.Separator); err != nil {
			logger.Warn("could not copy query to clipboard", zap.Error(err))
		} else {
			fmt.Fprintf(status, "Copied search query for %d file(s) to the clipboard.\n", len(names))
		}
	}
	return nil
}

// reportReadError prints a user-facing message for a file that could not
// be used. Read failures never change the exit status.
func reportReadError(w io.Writer, path string, err error) {
	if errors.Is(err, input.ErrNotFound) {
		fmt.Fprintf(w, "\n%s The file '%s' was not found.\n", color.RedString("Error:"), path)
		return
	}
	fmt.Fprintf(w, "\n%s %v\n", color.RedString("An error occurred while reading the file:"), err)
}
