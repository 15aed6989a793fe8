package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"tillbox/internal/config"
	"tillbox/internal/id"
	"tillbox/internal/logger"
	"tillbox/internal/order"
	"tillbox/internal/session"
	"tillbox/internal/snapshot"
	"tillbox/internal/stock"
	"tillbox/internal/ui"
	"tillbox/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv, cfg.LogFile)
	defer logger.Sync()

	gen := id.NewGenerator()
	userRepo := user.NewRepository(gen)
	stockRepo := stock.NewRepository(gen)
	orderRepo := order.NewRepository(gen, stockRepo)

	ctx := context.Background()

	snap := snapshot.New(cfg.DataDir, userRepo, stockRepo, orderRepo)
	if err := snap.Load(ctx); err != nil {
		log.Fatalf("cannot load snapshot: %v", err)
	}

	userSvc := user.NewService(userRepo, user.Scheme(cfg.PasswordScheme))
	stockSvc := stock.NewService(stockRepo)
	orderSvc := order.NewService(orderRepo, stockRepo)

	sess := session.New(userSvc, cfg.SessionSecret, cfg.LoginRate, cfg.LoginBurst)
	sessionFile := filepath.Join(cfg.DataDir, "session")
	sess.ResumeFile(ctx, sessionFile)

	app := ui.New(os.Stdin, os.Stdout, userSvc, stockSvc, orderSvc, sess)
	app.Run(ctx)

	if err := sess.SaveFile(sessionFile); err != nil {
		logger.L().Warn("could not save session", zap.Error(err))
	}
	if err := snap.Save(ctx); err != nil {
		log.Fatalf("cannot save snapshot: %v", err)
	}
}
