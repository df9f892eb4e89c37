package main

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"contentflow/bootstrap"
	"contentflow/config"
	"contentflow/database"
	"contentflow/internal/logger"
	"contentflow/internal/repository"
	"contentflow/internal/services"
	"contentflow/internal/tier"

	"github.com/rs/zerolog"
)

type commandContext struct {
	tiersFlag *string

	configOnce sync.Once
	config     config.Config
	chain      tier.Chain
	configErr  error
}

func newCommandContext(tiersFlag *string) *commandContext {
	return &commandContext{tiersFlag: tiersFlag}
}

func (c *commandContext) ensureConfig() (config.Config, tier.Chain, error) {
	c.configOnce.Do(func() {
		cfg, err := config.LoadConfig()
		if err != nil {
			c.configErr = err
			return
		}
		path := cfg.TiersFile
		if c.tiersFlag != nil && strings.TrimSpace(*c.tiersFlag) != "" {
			path = strings.TrimSpace(*c.tiersFlag)
		}
		chain, err := config.LoadTiers(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config, c.chain = cfg, chain
	})
	return c.config, c.chain, c.configErr
}

// runtime is everything a command needs to act on content.
type runtime struct {
	cfg   config.Config
	log   zerolog.Logger
	svc   *services.ContentService
	close func()
}

// open wires the store, directory and notifier selected by the config.
func (c *commandContext) open(ctx context.Context) (*runtime, error) {
	cfg, chain, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	log := logger.New().Level(cfg.LogLevel).Format(cfg.LogFormat).Make()

	rt := &runtime{cfg: cfg, log: log, close: func() {}}
	deps := services.Deps{Chain: chain, Log: log}

	switch cfg.Store {
	case "memory":
		deps.Store = repository.NewMemoryStore()
		deps.Users = repository.NewMemoryUsers()
		log.Warn().Msg("using the in-memory store; content is lost on exit")
	default:
		client, err := database.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.MongoDB)
		if err := bootstrap.EnsureUserIndexes(db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("ensure indexes: %w", err)
		}
		deps.Store = repository.NewMongoStore(client, db, cfg.MongoTransactions)
		deps.Users = repository.NewUserRepository(db)
		rt.close = func() { _ = client.Disconnect(context.Background()) }
		log.Info().Str("db", cfg.MongoDB).Bool("transactions", cfg.MongoTransactions).Msg("connected to MongoDB")
	}

	if cfg.SMTP.Enabled() {
		deps.Notifier = services.NewSMTPMailer(services.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.User,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	}

	rt.svc = services.NewContentService(deps)
	return rt, nil
}
