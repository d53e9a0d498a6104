package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/mohammad-safakhou/mundial/internal/helpers"
	"github.com/mohammad-safakhou/mundial/internal/memory"
	"github.com/mohammad-safakhou/mundial/internal/workflow"
)

type goalRequest struct {
	Goal string `json:"goal"`
}

type planStepPayload struct {
	Step        int    `json:"step"`
	Action      string `json:"action"`
	Description string `json:"description"`
}

type planResponse struct {
	Goal       string            `json:"goal"`
	Plan       []planStepPayload `json:"plan"`
	TotalSteps int               `json:"total_steps"`
}

type executeResponse struct {
	Status string         `json:"status"`
	Memory memory.Record  `json:"memory"`
	Output map[string]any `json:"output"`
}

// bindGoal reads and sanitizes the goal from the request body. Markup is
// stripped before the text reaches the planner or the memory record.
func bindGoal(c echo.Context) (string, error) {
	var req goalRequest
	if err := c.Bind(&req); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	goal := strings.TrimSpace(helpers.SanitizeHTMLStrict(req.Goal))
	if goal == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Goal cannot be empty")
	}
	return goal, nil
}

func (s *Server) plan(c echo.Context) error {
	goal, err := bindGoal(c)
	if err != nil {
		return err
	}

	plan := s.engine.Plan(goal)
	steps := make([]planStepPayload, len(plan.Steps))
	for i, st := range plan.Steps {
		steps[i] = planStepPayload{Step: i + 1, Action: string(st.Kind), Description: st.Label}
	}
	return c.JSON(http.StatusOK, planResponse{Goal: goal, Plan: steps, TotalSteps: len(steps)})
}

func (s *Server) execute(c echo.Context) error {
	goal, err := bindGoal(c)
	if err != nil {
		return err
	}

	plan := s.engine.Plan(goal)
	res, err := s.engine.Execute(c.Request().Context(), plan)
	if errors.Is(err, workflow.ErrRunInProgress) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	if err != nil {
		return err
	}
	if res.Status == workflow.StatusError {
		msg := "Execution failed"
		if res.Err != nil {
			msg = res.Err.Error()
		}
		return echo.NewHTTPError(http.StatusInternalServerError, msg)
	}
	return c.JSON(http.StatusOK, executeResponse{Status: res.Status, Memory: res.Memory, Output: res.Output})
}
