package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/localrivet/dragonsumm"
	"github.com/localrivet/dragonsumm/internal/errortypes"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the summarizer as MCP tools over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, appLogger, err := setup()
			if err != nil {
				return err
			}

			appLogger.Info("dragonsumm MCP Server - Starting...")
			srv, err := dragonsumm.NewServer(dragonsumm.ServerOptions{
				Config: cfg,
				Logger: appLogger,
			})
			if err != nil {
				return err
			}

			// Handle graceful shutdown
			c := make(chan os.Signal, 1)
			signal.Notify(c, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-c
				appLogger.Info("Received shutdown signal, terminating gracefully...")
				if err := srv.Stop(); err != nil {
					errortypes.LogError(appLogger, err)
				}
				os.Exit(0)
			}()

			// Start the MCP server (this will block until server is terminated)
			if err := srv.Start(); err != nil {
				return errortypes.ExternalError(err, "MCP server failed")
			}
			return nil
		},
	}
}
