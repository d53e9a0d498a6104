package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/mohammad-safakhou/mundial/internal/memory"
)

func (s *Server) memoryState(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.State())
}

func (s *Server) memorySearch(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}

	k := 5
	if raw := c.QueryParam("k"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "k must be a positive integer")
		}
		k = n
	}

	hits, err := memory.SearchLog(s.store.State(), q, k)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"query": q,
		"hits":  hits,
		"total": len(hits),
	})
}

func (s *Server) reset(c echo.Context) error {
	if err := s.engine.Reset(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Workflow engine reset successfully",
	})
}
