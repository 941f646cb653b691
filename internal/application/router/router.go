package router

import (
	"github.com/labstack/echo/v4"

	"todo-api/internal/application/controller"
	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/todo"
)

// New wires middleware and routes onto a fresh echo instance.
func New(contextPath string, todoUseCase todo.UseCase, healthUseCase health.UseCase) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e)

	api := e.Group(contextPath)

	healthController := controller.NewHealthController(api, healthUseCase)
	todoController := controller.NewTodoController(api, todoUseCase)

	healthController.InitHealthRoutes()
	todoController.InitTodoRoutes()

	return e
}
