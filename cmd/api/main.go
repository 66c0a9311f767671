package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"alfredoptarigan/ats-engine/internal/app"
	"alfredoptarigan/ats-engine/internal/config"
	"alfredoptarigan/ats-engine/internal/handlers"
	"alfredoptarigan/ats-engine/internal/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to initialize engine", zap.Error(err))
	}
	defer engine.Close()

	engine.Worker.Start(ctx)
	log.Info("index worker started", zap.Int("concurrency", cfg.Worker.Concurrency))

	server := fiber.New(fiber.Config{
		AppName:      handlers.AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1<<20,
		ErrorHandler: handlers.ErrorHandler,
	})

	server.Use(recover.New())
	server.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	server.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	handlers.Register(server, handlers.Routes{
		Upload:    handlers.NewUploadHandler(engine.Profiles, engine.Storage, cfg.Storage.MaxFileSize, log),
		Candidate: handlers.NewCandidateHandler(engine.Profiles, engine.Worker, engine.Candidates, log),
		Ranking:   handlers.NewRankingHandler(engine.Ranking, log),
		Search:    handlers.NewSearchHandler(engine.Search, log),
		Health:    engine.Ping,
	})

	go func() {
		<-ctx.Done()
		log.Info("shutting down server")
		engine.Worker.Stop()
		if err := server.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Server.Env))

	if err := server.Listen(addr); err != nil {
		log.Error("server stopped", zap.Error(err))
	}
}
