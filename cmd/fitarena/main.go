package main

import (
	"context"
	"log/slog"
	"os"
	"syscall"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"fitarena/internal/client/api"
	"fitarena/internal/config"
	"fitarena/internal/version"
	"fitarena/internal/xslog"
)

func main() {
	_ = godotenv.Load()

	slog.SetDefault(xslog.NewTextLogger(os.Stderr, xslog.FromEnv()))

	rootCmd := &cobra.Command{
		Use:     "fitarena",
		Short:   "Fitness tracking XP in your terminal",
		Version: version.Get(),
	}

	rootCmd.AddCommand(
		statsCmd(),
		arenaCmd(),
		logCmd(),
		importCmd(),
	)

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}

func newClient() (*api.Client, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, err
	}
	return api.New(cfg.ServerURL, api.WithTimeout(10*time.Second)), nil
}
