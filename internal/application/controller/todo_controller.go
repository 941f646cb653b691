package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/msg"
)

type TodoController struct {
	api     *echo.Group
	useCase todo.UseCase
}

func NewTodoController(api *echo.Group, useCase todo.UseCase) *TodoController {
	return &TodoController{api: api, useCase: useCase}
}

// InitTodoRoutes initializes todo routes
func (controller *TodoController) InitTodoRoutes() {
	controller.api.GET("/todo", controller.List)
	controller.api.POST("/todo", controller.Create)
}

// List godoc
// @Summary List todos
// @Description Retrieve every stored todo in storage order
// @Tags todo
// @Produce json
// @Success 200 {array} entity.TodoItem "List of todos"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todo [get]
func (controller *TodoController) List(c echo.Context) error {
	todos, err := controller.useCase.ListTodos(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, todos)
}

// Create godoc
// @Summary Create a todo
// @Description Store a new pending todo and return it as read back from storage
// @Tags todo
// @Accept json
// @Produce json
// @Param todo body model.CreateTodoDTO true "Todo creation data"
// @Success 200 {array} entity.TodoItem "One-element list with the created todo"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todo [post]
func (controller *TodoController) Create(c echo.Context) error {
	var dto model.CreateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("todo.error.invalid-body")})
	}

	todos, err := controller.useCase.CreateTodo(c.Request().Context(), dto.Description)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, todos)
}
