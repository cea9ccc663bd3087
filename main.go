package main

import (
	"chatthinker/app/client/line"
	"chatthinker/app/client/llm"
	"chatthinker/app/config"
	"chatthinker/app/service/conversation"
	"chatthinker/app/service/session"
	"chatthinker/app/service/webhook"
	"chatthinker/app/util/mylog"
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
)

func main() {
	di := do.New()
	defer di.Shutdown()
	defer log.Info("Waiting for services to finish...")

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, llm.NewClient)
	do.Provide(di, line.NewClient)
	do.Provide(di, session.New)
	do.Provide(di, conversation.New)
	do.Provide(di, webhook.New)

	slog.Info("Service started")

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		log.Info("Shutting down...")

		cancel()
	}()

	go func() {
		if err := do.MustInvoke[*webhook.Service](di).Run(appCtx); err != nil {
			slog.Error("Webhook server stopped", "error", err)
			cancel()
		}
	}()

	<-appCtx.Done()
}
