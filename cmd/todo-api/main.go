package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"todo-api/configs"
	"todo-api/internal/application/router"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/internal/infra/database/sqlite"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init Gateways
	var todoGateway db.TodoGateway
	var healthGateway db.HealthDBGateway

	if resource.GetBool("app.todo.fixture") {
		log.Info(msg.GetMessage("todo.fixture"))
		todoGateway = db.NewMemoryTodoGateway(entity.FixtureTodoList(time.Now()))
		healthGateway = db.MemoryHealthDBGateway{}
	} else {
		cfg := sqlite.ConfigFromProperties()
		pool, err := sqlite.Open(ctx, cfg)
		if err != nil {
			log.Fatal(msg.GetMessage("db.error.open", cfg.Path), zap.Error(err))
		}
		defer pool.Close()
		log.Infow(msg.GetMessage("db.opened"),
			"path", cfg.Path,
			"maxOpenConns", cfg.MaxOpenConns,
			"busyTimeout", cfg.BusyTimeout,
		)

		todoGateway = db.NewSQLiteTodoGateway(pool)
		healthGateway = db.NewSQLiteHealthDBGateway(pool)
	}

	// Init UseCase
	todoUseCase := todo.NewTodoUseCase(todoGateway)
	healthUseCase := health.NewHealthUseCase(healthGateway)

	// Init Routes
	contextPath := resource.GetString("app.server.context-path")
	if configs.Env.ContextPath != "" {
		contextPath = configs.Env.ContextPath
	}
	e := router.New(contextPath, todoUseCase, healthUseCase)

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", port), zap.String("port", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err.Error(), zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), resource.GetDuration("app.server.shutdown-timeout"))
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(err.Error(), zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped"))
}
