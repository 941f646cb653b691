package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/health"
)

type HealthController struct {
	api     *echo.Group
	useCase health.UseCase
}

func NewHealthController(api *echo.Group, useCase health.UseCase) *HealthController {
	return &HealthController{api: api, useCase: useCase}
}

// InitHealthRoutes initializes health check routes
func (controller *HealthController) InitHealthRoutes() {
	controller.api.GET("/health", controller.Liveness)
	controller.api.GET("/health/details", controller.CheckHealth)
}

// Liveness godoc
// @Summary Liveness probe
// @Description Always answers OK while the process is serving, whatever the store state
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (controller *HealthController) Liveness(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// CheckHealth godoc
// @Summary Component health report
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Failure 503 {object} model.HealthResponse
// @Router /health/details [get]
func (controller *HealthController) CheckHealth(c echo.Context) error {
	healthResponse := controller.useCase.CheckHealth(c.Request().Context())

	status := http.StatusOK
	if healthResponse.Status != model.StatusUp {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, healthResponse)
}
