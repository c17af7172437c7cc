package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"NewsMoodBot/internal/app"
	"NewsMoodBot/internal/config"
	"NewsMoodBot/internal/logging"
)

const dateLayout = "02-01-2006"

var (
	dateFlag string
	fromFlag string
	toFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "newsmoodbot",
	Short: "Telegram bot that tags lenta.ru headlines with predicted emotions",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Telegram bot (and the daily digest when enabled)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

		if cfg.Telegram.BotToken == "" {
			return fmt.Errorf("telegram bot token required: set TELEGRAM_BOT_TOKEN or telegram.botToken in config")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		application := app.New(cfg, logger)
		if err := application.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Collect and tag news once, printing label counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := scanRange()
		if err != nil {
			return err
		}

		cfg := config.Load()
		logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

		application := app.New(cfg, logger)
		return application.ScanOnce(cmd.Context(), start, end)
	},
}

func scanRange() (time.Time, time.Time, error) {
	switch {
	case dateFlag != "":
		day, err := time.Parse(dateLayout, dateFlag)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --date %q: %w", dateFlag, err)
		}
		return day, day, nil
	case fromFlag != "" && toFlag != "":
		start, err := time.Parse(dateLayout, fromFlag)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from %q: %w", fromFlag, err)
		}
		end, err := time.Parse(dateLayout, toFlag)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to %q: %w", toFlag, err)
		}
		return start, end, nil
	case fromFlag == "" && toFlag == "":
		now := time.Now()
		return now, now, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("--from and --to must be used together")
	}
}

func init() {
	scanCmd.Flags().StringVar(&dateFlag, "date", "", "single day, DD-MM-YYYY (default today)")
	scanCmd.Flags().StringVar(&fromFlag, "from", "", "range start, DD-MM-YYYY")
	scanCmd.Flags().StringVar(&toFlag, "to", "", "range end, DD-MM-YYYY")
	rootCmd.AddCommand(serveCmd, scanCmd)
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
