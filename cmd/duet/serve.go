package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/duetchat/duet/internal/config"
	"github.com/duetchat/duet/internal/server"
	"github.com/duetchat/duet/internal/svc"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the chat API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		svcCtx, err := svc.NewServiceContext(&cfg)
		if err != nil {
			return err
		}
		defer svcCtx.Close()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return server.Run(ctx, svcCtx)
	},
}
