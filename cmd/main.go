package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Artexxx/HR-Employees/internal/config"
	"github.com/Artexxx/HR-Employees/library/yamlreader"
)

const defaultConfigPath = "config/application-local.yaml"

var configPath string

func main() {
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := &cobra.Command{
		Use:   "hr-employees",
		Short: "HR employees: create form and searchable employee list",
		Long: `HR employees: create form and searchable employee list.

Environment variables:
  CONFIG_PATH=config/application-local.yaml
  USE_MOCK_DATA=false
  MOCK_RECORDS=120
  STORAGE_DRIVER=file
  STORAGE_PATH=data
  PG_CONN=
  KAFKA_BOOTSTRAP=
  PORT=8080
  LOG_LEVEL=info`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = time.RFC3339
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	root.AddCommand(newServeCmd(), newListCmd())

	if err := root.ExecuteContext(rootCtx); err != nil {
		os.Exit(1)
	}
}

// MustNewConfig читает конфигурацию; путь: --config, затем CONFIG_PATH,
// затем путь по умолчанию. Переменные из .env подхватываются до чтения.
func MustNewConfig() *config.Config {
	path := configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	_ = godotenv.Load(".env")

	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := yamlreader.NewConfig[config.Config](path)
	if err != nil {
		log.Fatal().Str("path", path).Err(err).Msg("ошибка чтения конфигурации приложения")
		return nil
	}

	setLogLevel(cfg.App.LogLevel.Get())

	return cfg
}

func setLogLevel(level string) {
	if level == "" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		return
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
