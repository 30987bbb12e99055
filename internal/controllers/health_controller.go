package controllers

import (
	"net/http"

	"github.com/tuan204-dev/ttcs-be/internal/app"
	"github.com/tuan204-dev/ttcs-be/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(app *app.App) *HealthController {
	return &HealthController{app}
}

func (c *HealthController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := c.app.Ping(r.Context()); err != nil {
		utils.Logger.WithError(err).Error("DB unreachable")
		utils.RespondError(w, http.StatusServiceUnavailable, "Database unreachable", err)
		return
	}
	utils.RespondData(w, http.StatusOK, "", map[string]string{"status": "OK"})
}
