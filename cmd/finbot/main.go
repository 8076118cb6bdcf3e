package main

import (
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pmaseko/finbot/internal/bot"
	"github.com/pmaseko/finbot/internal/config"
	"github.com/pmaseko/finbot/internal/dataset"
	"github.com/pmaseko/finbot/internal/repl"
)

var (
	flagData     string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "finbot",
	Short: "Interactive chatbot for company financial metrics",
	Long: "finbot loads a CSV of per-company, per-year financial metrics and\n" +
		"answers keyword-matched questions about revenue, growth, profit\n" +
		"margins and more in an interactive session.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagData, "data", "", "path to the metrics CSV (overrides DATA_FILE)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagData != "" {
		cfg.DataFile = flagData
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	log.WithFields(log.Fields{"bot": cfg.BotName, "data": cfg.DataFile}).Info("starting finbot")

	// Missing or malformed data is fatal: the bot has nothing to answer from.
	table, err := dataset.Load(cfg.DataFile)
	if err != nil {
		return err
	}

	return repl.New(bot.New(table), os.Stdin, os.Stdout).Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		_, _ = errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
