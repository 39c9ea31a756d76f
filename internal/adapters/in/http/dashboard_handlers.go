package http

import (
	"net/http"
	"time"

	"freight/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(c echo.Context) error {
	q, err := queries.NewGetDashboardQuery(appUser(c), time.Now())
	if err != nil {
		return err
	}
	d, err := s.h.Dashboard.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDashboard(d))
}

// GetMyCompany handles GET /api/v1/me/company.
func (s *Server) GetMyCompany(c echo.Context) error {
	q, err := queries.NewGetMyCompanyQuery(appUser(c))
	if err != nil {
		return err
	}
	v, err := s.h.MyCompany.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCompany(v))
}
