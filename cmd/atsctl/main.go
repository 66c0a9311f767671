package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"alfredoptarigan/ats-engine/internal/app"
	"alfredoptarigan/ats-engine/internal/config"
	"alfredoptarigan/ats-engine/internal/logger"
)

const cliName = "atsctl"

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:           cliName,
		Short:         "atsctl ingests resumes and ranks candidates against job descriptions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "optional config file with flag defaults")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

// initConfig lets every flag be set through ATS_<COMMAND>_<FLAG> variables
// or the optional config file.
func initConfig() {
	viper.SetEnvPrefix("ATS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to read config %s: %v\n", cfgFile, err)
		os.Exit(1)
	}
}

// withEngine builds the engine, runs fn and tears everything down.
func withEngine(ctx context.Context, fn func(ctx context.Context, engine *app.App) error) error {
	cfg := config.Load()

	log, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	engine, err := app.New(ctx, cfg, log.Named(cliName))
	if err != nil {
		return err
	}
	defer engine.Close()

	if err := fn(ctx, engine); err != nil {
		log.Error("command failed", zap.Error(err))
		return err
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
