package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Rishab260/loan-app-poc/config"
	"github.com/Rishab260/loan-app-poc/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}

	approver := &app.ApproverApp{}
	approver.Initialize(cfg)
	approver.Run(ctx)
}
