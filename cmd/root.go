package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pedidolabs/order-api/internal/constants"
	"github.com/pedidolabs/order-api/internal/log"
)

func Start() {
	logger := log.Get(filepath.Join("/var/log/", constants.AppOrderApi+".log"), os.Getenv("ENV")).
		With().
		Str(log.KeyAppName, constants.AppOrderApi).
		Str(log.KeyTag, "main Start").
		Logger()

	logger.Info().Msg("adding listener for SIGINT and SIGTERM")
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info().Msg("added listener for SIGINT and SIGTERM")

	c = logger.WithContext(c)

	rootCmd := &cobra.Command{Use: constants.AppOrderApi}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the order api",
		Run: func(cmd *cobra.Command, args []string) {
			RunOrderApi(cmd.Context())
		},
	})
	if err := rootCmd.ExecuteContext(c); err != nil {
		logger.Fatal().Err(err).Msgf("error when executing command=%s", err.Error())
	}
}
