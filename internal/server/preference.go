package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	employeedomain "github.com/smallbiznis/rosterd/internal/employee/domain"
	preferencedomain "github.com/smallbiznis/rosterd/internal/preference/domain"
	slotdomain "github.com/smallbiznis/rosterd/internal/slot/domain"
)

type submitPreferenceRequest struct {
	BranchID      string `json:"branch_id" binding:"required"`
	WeekStartDate string `json:"week_start_date" binding:"required"`
	Day           string `json:"day" binding:"required"`
	ShiftType     string `json:"shift_type" binding:"required"`
	RoomID        string `json:"room_id" binding:"required"`
}

func (s *Server) SubmitPreference(c *gin.Context) {
	principal := principalFrom(c)
	if principal == nil {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var body submitPreferenceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request body"))
		return
	}

	branchID, err := parseID("branch_id", body.BranchID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	roomID, err := parseID("room_id", body.RoomID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	week, err := parseDate("week_start_date", body.WeekStartDate)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	preference, err := s.preferenceSvc.Submit(c.Request.Context(), preferencedomain.SubmitRequest{
		EmployeeID:    principal.EmployeeID,
		BranchID:      branchID,
		WeekStartDate: week,
		DayOfWeek:     slotdomain.DayOfWeek(body.Day),
		ShiftType:     slotdomain.ShiftType(body.ShiftType),
		RoomID:        roomID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, preference)
}

func (s *Server) ListPreferences(c *gin.Context) {
	principal := principalFrom(c)
	if principal == nil {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	filter := preferencedomain.ListFilter{}

	// Workers see their own submissions; admins can scope by branch or
	// employee.
	if principal.Role == employeedomain.RoleAdmin {
		if raw := c.Query("branch_id"); raw != "" {
			branchID, err := parseID("branch_id", raw)
			if err != nil {
				AbortWithError(c, err)
				return
			}
			filter.BranchID = &branchID
		}
		if raw := c.Query("employee_id"); raw != "" {
			employeeID, err := parseID("employee_id", raw)
			if err != nil {
				AbortWithError(c, err)
				return
			}
			filter.EmployeeID = &employeeID
		}
	} else {
		employeeID := principal.EmployeeID
		filter.EmployeeID = &employeeID
	}

	if raw := c.Query("week"); raw != "" {
		week, err := parseDate("week", raw)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		filter.Week = &week
	}

	preferences, err := s.preferenceSvc.List(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"preferences": preferences})
}

type reviewPreferenceRequest struct {
	Status string `json:"status" binding:"required"`
}

func (s *Server) ReviewPreference(c *gin.Context) {
	var body reviewPreferenceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request body"))
		return
	}

	preference, err := s.preferenceSvc.Review(c.Request.Context(), c.Param("id"), preferencedomain.Status(body.Status))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, preference)
}
