// Command server runs the ScamAware Jersey API.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/scamaware/jersey/banner"
	"github.com/scamaware/jersey/content"
	"github.com/scamaware/jersey/handler"
	"github.com/scamaware/jersey/pkg/config"
	"github.com/scamaware/jersey/pkg/email"
	"github.com/scamaware/jersey/pkg/httpserver"
	"github.com/scamaware/jersey/pkg/logger"
	"github.com/scamaware/jersey/pkg/redis"
)

type appConfig struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	Addr            string `env:"SERVER_ADDR" envDefault:":8080"`
	ReportRecipient string `env:"REPORT_RECIPIENT" envDefault:"reports@scamaware.je"`

	// BannerStore selects where banner dismissals live: "memory" or "redis".
	BannerStore string `env:"BANNER_STORE" envDefault:"memory"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(logger.WithEnvironment(cfg.Env, "scamaware-jersey"))
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	store, err := content.Default()
	if err != nil {
		return err
	}

	var (
		bannerStore banner.Store
		readyChecks []func(context.Context) error
	)
	switch cfg.BannerStore {
	case "redis":
		var rcfg redis.Config
		config.MustLoad(&rcfg)

		client, err := redis.Connect(ctx, rcfg)
		if err != nil {
			return err
		}
		defer client.Close()

		bannerStore = banner.NewRedisStore(client)
		readyChecks = append(readyChecks, redis.Healthcheck(client))
	default:
		memStore := banner.NewMemoryStore(time.Minute)
		defer memStore.Close()
		bannerStore = memStore
	}

	var mailCfg email.Config
	config.MustLoad(&mailCfg)

	var mailer email.Sender
	if mailCfg.PostmarkServerToken != "" {
		mailer, err = email.NewPostmarkSender(mailCfg)
		if err != nil {
			return err
		}
	} else {
		log.Warn("no Postmark token configured, scam reports will only be logged")
		mailer = email.NewLogSender(log)
	}

	api := handler.New(handler.Config{
		Logger:          log,
		Content:         store,
		Banner:          banner.NewService(bannerStore),
		Mailer:          mailer,
		ReportRecipient: cfg.ReportRecipient,
		ReadyChecks:     readyChecks,
	})

	srv := httpserver.New(
		httpserver.WithAddr(cfg.Addr),
		httpserver.WithLogger(log),
		httpserver.WithReadTimeout(10*time.Second),
		httpserver.WithWriteTimeout(15*time.Second),
		httpserver.WithIdleTimeout(time.Minute),
	)
	return srv.Run(ctx, api)
}
