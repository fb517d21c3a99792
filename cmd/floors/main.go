// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/mdhender/floors"
	"github.com/spf13/cobra"
)

// scanFile is replaced in tests to inject failing sources.
var scanFile = floors.ScanFile

func main() {
	if err := cmdRoot().Execute(); err != nil {
		os.Exit(1)
	}
}

func cmdRoot() *cobra.Command {
	parensOnly := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("log-with-default-flags", false, "log with default flags")
		cmd.PersistentFlags().Bool("log-with-shortfile", true, "log with short file name")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		cmd.PersistentFlags().Bool("show-version", false, "show version")
		cmd.PersistentFlags().Bool("verbose", false, "log more information")
		cmd.Flags().BoolVar(&parensOnly, "parens-only", parensOnly, "count only parentheses when reporting positions")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "floors [input-file]",
		Short:        "Follow floor instructions",
		Long:         `Report the final floor and the first visit to the basement for an input of parentheses`,
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logWithDefaultFlags, _ := cmd.Flags().GetBool("log-with-default-flags")
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := 0
			if logWithShortFileName {
				logFlags |= log.Lshortfile
			}
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			if logWithDefaultFlags || logFlags == 0 {
				logFlags = log.LstdFlags
			}
			log.SetFlags(logFlags)

			if showVersion, _ := cmd.Flags().GetBool("show-version"); showVersion {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "floors: version %q\n", floors.Version().Core())
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, parensOnly)
		},
	}
	cmd.AddCommand(cmdScan())
	cmd.AddCommand(cmdVersion())
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdScan() *cobra.Command {
	parensOnly := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&parensOnly, "parens-only", parensOnly, "count only parentheses when reporting positions")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "scan [input-file]",
		Short:        "scan an input file (default input.txt)",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, parensOnly)
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

// runScan writes the report to a buffer and copies it to the command's
// output only after the scan succeeds, so a failed scan prints nothing.
func runScan(cmd *cobra.Command, args []string, parensOnly bool) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")
	debug, _ := cmd.Flags().GetBool("debug")
	if quiet {
		verbose = false
	}

	path := floors.DefaultInput
	if len(args) != 0 {
		path = args[0]
	}

	var out bytes.Buffer
	var reportErr error
	started := time.Now()
	result, err := scanFile(context.Background(), path,
		floors.WithCountIgnored(!parensOnly),
		floors.WithLogger(newLogger(cmd, quiet, verbose, debug)),
		floors.WithOnBasement(func(position int) {
			reportErr = floors.PrintBasement(&out, position)
		}),
	)
	if err != nil {
		if verbose {
			log.Printf("%s: scan failed: code %s\n", path, floors.ErrorCode(err))
		}
		return fmt.Errorf("scan: %w", err)
	} else if reportErr != nil {
		return reportErr
	}
	if err := floors.PrintFinalFloor(&out, result.Floor); err != nil {
		return err
	}
	if verbose {
		log.Printf("%s: scanned %d bytes in %v\n", path, result.Position, time.Since(started))
	}

	_, err = out.WriteTo(cmd.OutOrStdout())
	return err
}

func newLogger(cmd *cobra.Command, quiet, verbose, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	} else if verbose {
		level = slog.LevelInfo
	} else if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), floors.Version().String())
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), floors.Version().Core())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
