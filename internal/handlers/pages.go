package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the minimal HTML shells behind the guarded routes. The
// actual client renders itself from the JSON API.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) AuthPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8",
		[]byte(`<!DOCTYPE html><html><head><title>Iniciar Sesión</title></head><body><div id="app" data-page="auth"></div></body></html>`))
}

func (h *PageHandler) DashboardPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8",
		[]byte(`<!DOCTYPE html><html><head><title>Proyectos</title></head><body><div id="app" data-page="dashboard"></div></body></html>`))
}

func (h *PageHandler) NewProjectPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8",
		[]byte(`<!DOCTYPE html><html><head><title>Nuevo Proyecto</title></head><body><div id="app" data-page="new-project"></div></body></html>`))
}
