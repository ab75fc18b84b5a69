package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"skema/internal/driver"
	"skema/internal/observ"
	"skema/internal/report"
	"skema/internal/reportfmt"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] path",
	Short: "Check JSON documents under a directory",
	Long:  `Check walks every JSON document under the given path, aggregates diagnostics and fails on anything at or above the configured abort level`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = GOMAXPROCS)")
	checkCmd.Flags().Bool("no-cache", false, "disable the result cache")
	checkCmd.Flags().Bool("verbose", false, "log pipeline progress to stderr")
}

func runCheck(cmd *cobra.Command, args []string) error {
	startDir := "."
	if len(args) == 1 {
		startDir = args[0]
	}

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	maxMessages, _ := cmd.Root().PersistentFlags().GetInt("max-messages")

	timer := observ.NewTimer()

	phase := timer.Begin("manifest")
	manifest, found, err := loadProjectManifest(startDir)
	if err != nil {
		return err
	}
	cfg, err := driverConfig(manifest)
	if err != nil {
		return err
	}
	cfg.Jobs = jobs
	note := "defaults"
	if found {
		note = manifest.Path
	}
	timer.End(phase, note)

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	cfg.Log = log

	if !noCache {
		cache, err := driver.OpenCache("skema")
		if err != nil {
			log.WithError(err).Warn("result cache unavailable")
		} else {
			cfg.Cache = cache
		}
	}

	phase = timer.Begin("check")
	result, checkErr := driver.CheckDir(cmd.Context(), startDir, cfg)
	timer.End(phase, fmt.Sprintf("%d files", len(result.Files)))

	var abort *report.AbortError
	if checkErr != nil && !errors.As(checkErr, &abort) {
		return checkErr
	}

	phase = timer.Begin("render")
	msgs := result.Messages
	reportfmt.Sort(msgs)

	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
	opts := reportfmt.Opts{Color: useColor, Max: maxMessages}

	switch format {
	case "pretty":
		if !quiet {
			if err := reportfmt.Pretty(cmd.OutOrStdout(), msgs, opts); err != nil {
				return err
			}
		}
	case "json":
		if err := reportfmt.JSON(cmd.OutOrStdout(), msgs, result.Worst, opts); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	timer.End(phase, "")

	if timings {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}

	if abort != nil {
		return fmt.Errorf("check aborted: %s", abort.Message)
	}
	if !result.Success {
		return fmt.Errorf("check failed: worst severity %s", result.Worst)
	}
	return nil
}
