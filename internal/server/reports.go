package server

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mohammad-safakhou/mundial/internal/workflow"
)

type reportInfo struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// reportsDir mirrors the default the persist step uses when the config
// leaves the directory unset.
func (s *Server) reportsDir() string {
	if dir := s.cfg.Sources.ReportsDir; dir != "" {
		return dir
	}
	return "predictions"
}

func (s *Server) listReports(c echo.Context) error {
	entries := make([]reportInfo, 0, 2)
	for _, name := range []string{workflow.TeamReportFile, workflow.PlayerReportFile} {
		info, err := os.Stat(filepath.Join(s.reportsDir(), name))
		if err != nil {
			continue
		}
		entries = append(entries, reportInfo{Name: name, Size: info.Size(), Modified: info.ModTime()})
	}
	return c.JSON(http.StatusOK, map[string]any{"reports": entries})
}

func (s *Server) getReport(c echo.Context) error {
	name := c.Param("name")
	if name != workflow.TeamReportFile && name != workflow.PlayerReportFile {
		return echo.NewHTTPError(http.StatusNotFound, "unknown report")
	}
	path := filepath.Join(s.reportsDir(), name)
	if _, err := os.Stat(path); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "report not generated yet")
	}
	return c.File(path)
}
