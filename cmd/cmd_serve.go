package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Artexxx/HR-Employees/internal/api"
	"github.com/Artexxx/HR-Employees/internal/config"
	"github.com/Artexxx/HR-Employees/internal/exchange/producer"
	"github.com/Artexxx/HR-Employees/internal/listview"
	"github.com/Artexxx/HR-Employees/internal/metrics"
	"github.com/Artexxx/HR-Employees/internal/validation"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server with the create form and the employee list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd)
		},
	}
}

func serve(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := MustNewConfig()

	log.Info().Msgf("storage=%s", cfg.StorageDriver())
	log.Info().Msgf("kafka=%+v", cfg.Kafka.Bootstrap.Get())

	a, err := newApp(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("app init failed")
		return err
	}
	defer a.Close()

	hrProducer, err := initHRProducer(cfg)
	if err != nil {
		log.Error().Err(err).Msg("kafka producer init failed")
		return err
	}
	defer func() { _ = hrProducer.Close() }()

	metrics.RegisterCollectionSize(a.employees.Count)

	deps := api.ServiceDeps{
		Port:      cfg.Port(),
		Employees: a.employees,
		Validator: validation.New(a.ref, nil),
		Engine:    listview.NewEngine(cfg.DateLayout()),
		Reference: a.ref,
	}
	if hrProducer != nil {
		deps.Producer = hrProducer
	}
	apiService := api.NewService(deps)

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info().Msg("запуск HTTP API")
		if err := apiService.Start(gctx); err != nil {
			log.Error().Err(err).Msg("HTTP API завершился с ошибкой")

			return err
		}

		log.Info().Msg("HTTP API остановлен")

		return nil
	})

	err = group.Wait()
	log.Info().Msg("all services stopped")

	return err
}

// initHRProducer возвращает nil без ошибки, если Kafka не настроена:
// события о новых сотрудниках тогда не публикуются.
func initHRProducer(cfg *config.Config) (*producer.HRProducer, error) {
	bootstrap := cfg.Kafka.Bootstrap.Get()
	if bootstrap == "" {
		log.Info().Msg("kafka bootstrap is empty, employee events disabled")
		return nil, nil
	}

	sp, err := producer.NewSyncProducer(bootstrap)
	if err != nil {
		return nil, err
	}

	return producer.NewHRProducer(
		sp,
		producer.Config{
			Topic:  cfg.KafkaTopic(),
			Source: cfg.KafkaSource(),
		},
		log.Logger,
	), nil
}
