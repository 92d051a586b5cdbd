package main

import (
	"log/slog"
	"net/http"

	_ "github.com/DjordjeVuckovic/ts-perf/docs"
	"github.com/DjordjeVuckovic/ts-perf/internal/api/router"
	"github.com/DjordjeVuckovic/ts-perf/internal/api/server"
	"github.com/DjordjeVuckovic/ts-perf/internal/experiment"
	"github.com/DjordjeVuckovic/ts-perf/internal/storage/factory"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var seeds []string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the read API over stored performance reports",
		Long: `Starts the HTTP API backed by the storage selected by STORAGE_TYPE.
Each --experiment file is evaluated at startup and its report stored, which
is mostly useful with the in-memory backend.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, seeds)
		},
	}
	cmd.Flags().StringSliceVar(&seeds, "experiment", nil, "experiment YAML to evaluate and store at startup (repeatable)")
	return cmd
}

func runServe(_ *cobra.Command, seeds []string) error {
	sCfg, err := server.LoadConfig()
	if err != nil {
		return err
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return err
	}

	// health is wired after the store exists
	s := server.New(sCfg, nil)

	store, healthChecker, err := factory.NewStore(s.Context(), storageCfg)
	if err != nil {
		return err
	}
	defer store.Close()

	s = s.WithHealthChecker(healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "ts-perf API is running")
	})

	for _, path := range seeds {
		rpt, err := evaluateFile(s.Context(), path, experiment.Config{})
		if err != nil {
			return err
		}
		id, err := store.Save(s.Context(), rpt)
		if err != nil {
			return err
		}
		slog.Info("Seeded report", "id", id, "experiment", rpt.Experiment)
	}

	router.NewReportsRouter(s.Echo, store).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	return s.Start()
}
