package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/marketlens/marketlens/internal/analytics"
	"github.com/marketlens/marketlens/internal/export"
	"github.com/marketlens/marketlens/internal/factories"
	"github.com/marketlens/marketlens/internal/geo"
	"github.com/marketlens/marketlens/internal/logger"
	"github.com/marketlens/marketlens/internal/models"
	"github.com/marketlens/marketlens/internal/repositories"
	"github.com/marketlens/marketlens/internal/repositories/postgres"
	"github.com/marketlens/marketlens/internal/server"
	"github.com/marketlens/marketlens/internal/tracking"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "marketlens",
	Short: "Market analytics for food delivery channels",
	Long:  `marketlens aggregates per-channel sales data from the warehouse and serves market share, ROAS/AOV and area signal analytics for food delivery platforms.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analytics API server",
	Run: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()

		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		log := logger.New(cfg.Environment, cfg.LogLevel)

		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.WithField("error", err.Error()).Fatal("failed to create database pool")
		}
		defer pool.Close()

		var publisher tracking.Publisher = tracking.NoopPublisher{}
		if cfg.KafkaEnabled {
			kafkaPublisher, err := tracking.NewKafkaPublisher(cfg)
			if err != nil {
				log.WithField("error", err.Error()).Fatal("failed to create Kafka publisher")
			}
			defer kafkaPublisher.Close()
			publisher = kafkaPublisher
		}

		srv := server.New(
			cfg,
			log,
			postgres.NewSalesRepository(pool, cfg.QueryTimeout, cfg.MaxRetryWait),
			postgres.NewUserRepository(pool),
			publisher,
		)

		go func() {
			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			<-stop
			log.Info("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				log.WithField("error", err.Error()).Error("shutdown failed")
			}
		}()

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithField("error", err.Error()).Fatal("server failed")
		}
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export analytics reports to csv, json, xlsx or parquet",
	Run: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()

		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		log := logger.New(cfg.Environment, cfg.LogLevel)
		ctx := context.Background()

		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.WithField("error", err.Error()).Fatal("failed to create database pool")
		}
		defer pool.Close()

		sales := postgres.NewSalesRepository(pool, cfg.QueryTimeout, cfg.MaxRetryWait)

		filter := repositories.SalesFilter{
			City:      viper.GetString("city"),
			FromMonth: viper.GetString("from"),
			ToMonth:   viper.GetString("to"),
		}
		monthly, err := sales.MonthlyRecords(ctx, filter)
		if err != nil {
			log.WithField("error", err.Error()).Fatal("warehouse query failed")
		}
		weekly, err := sales.WeeklyRecords(ctx, filter)
		if err != nil {
			log.WithField("error", err.Error()).Fatal("warehouse query failed")
		}

		reports := []export.Report{
			export.ChannelSummaryReport(analytics.ChannelSummary(analytics.AggregateByChannel(monthly))),
			export.MarketShareReport("market_share_monthly", analytics.MarketShareRows(analytics.Aggregate(monthly, models.DimensionMonth))),
			export.MarketShareReport("market_share_weekly", analytics.MarketShareRows(analytics.Aggregate(weekly, models.DimensionWeek))),
			export.MarketShareReport("market_share_cuisine", analytics.MarketShareRows(analytics.Aggregate(monthly, models.DimensionCuisine))),
			export.AreaSignalReport(analytics.AreaSignals(monthly, geo.Resolve)),
		}

		sink, err := export.NewSink(ctx, cfg)
		if err != nil {
			log.WithField("error", err.Error()).Fatal("failed to create export sink")
		}
		if err := sink.WriteReports(reports); err != nil {
			log.WithField("error", err.Error()).Fatal("export failed")
		}

		var publisher tracking.Publisher = tracking.NoopPublisher{}
		if cfg.KafkaEnabled {
			kafkaPublisher, err := tracking.NewKafkaPublisher(cfg)
			if err != nil {
				log.WithField("error", err.Error()).Warn("failed to create Kafka publisher")
			} else {
				defer kafkaPublisher.Close()
				publisher = kafkaPublisher
			}
		}
		if err := publisher.Publish(tracking.NewEvent(models.EventTypeExport, "", cfg.OutputFormat)); err != nil {
			log.WithField("error", err.Error()).Warn("failed to publish export event")
		}

		log.WithField("format", cfg.OutputFormat).Info("export complete")
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load generated demo sales data into the warehouse",
	Run: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()

		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		log := logger.New(cfg.Environment, cfg.LogLevel)
		ctx := context.Background()

		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.WithField("error", err.Error()).Fatal("failed to create database pool")
		}
		defer pool.Close()

		sales := postgres.NewSalesRepository(pool, cfg.QueryTimeout, cfg.MaxRetryWait)

		month := cfg.SeedMonth
		if month == "" {
			month = time.Now().Format("2006-01")
		}
		factory := factories.NewSalesFactory(viper.GetInt64("seed"), month, cfg.CityName)

		total := cfg.SeedRows
		bar := progressbar.Default(int64(total), "seeding sales rows")
		const batchSize = 500
		for inserted := 0; inserted < total; inserted += batchSize {
			n := batchSize
			if remaining := total - inserted; remaining < n {
				n = remaining
			}
			records := factory.CreateRecords(n, 6)
			if err := sales.BulkInsert(ctx, records); err != nil {
				log.WithField("error", err.Error()).Fatal("failed to insert demo rows")
			}
			bar.Add(n)
		}
		log.WithField("rows", total).Info("seed complete")
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	exportCmd.Flags().String("city", "", "Filter by city")
	exportCmd.Flags().String("from", "", "Start month (YYYY-MM)")
	exportCmd.Flags().String("to", "", "End month (YYYY-MM)")
	seedCmd.Flags().Int64("seed", 42, "Random seed for demo data")

	viper.BindPFlags(exportCmd.Flags())
	viper.BindPFlags(seedCmd.Flags())

	rootCmd.AddCommand(serveCmd, exportCmd, seedCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	viper.AutomaticEnv()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
