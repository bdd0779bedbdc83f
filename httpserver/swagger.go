package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// @title Theater API
// @version 1.0
// @description Read-only movie catalogue with page based pagination.
// @BasePath /

// RegisterSwaggerRoutes serves the UI generated by `swag init -g httpserver/swagger.go`.
func (s *Server) RegisterSwaggerRoutes() {
	s.Router.GET("/swagger", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	s.Router.GET("/swagger/*", echoSwagger.WrapHandler)
}
