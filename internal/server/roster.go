package server

import (
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	rosterdomain "github.com/smallbiznis/rosterd/internal/roster/domain"
	slotdomain "github.com/smallbiznis/rosterd/internal/slot/domain"
)

const dateLayout = "2006-01-02"

type roomCellRequest struct {
	Room       string  `json:"room" binding:"required"`
	EmployeeID *string `json:"employee_id"`
}

type shiftGroupRequest struct {
	ShiftType string            `json:"shift_type" binding:"required"`
	Rooms     []roomCellRequest `json:"rooms"`
}

type daySubmissionRequest struct {
	Day    string              `json:"day" binding:"required"`
	Shifts []shiftGroupRequest `json:"shifts"`
}

type scheduleSubmissionRequest struct {
	BranchID      string                 `json:"branch_id" binding:"required"`
	WeekStartDate string                 `json:"week_start_date" binding:"required"`
	Status        string                 `json:"status"`
	Grid          []daySubmissionRequest `json:"grid" binding:"required"`
}

func (r scheduleSubmissionRequest) toReconcileRequest(strict bool) (rosterdomain.ReconcileRequest, error) {
	branchID, err := parseID("branch_id", r.BranchID)
	if err != nil {
		return rosterdomain.ReconcileRequest{}, err
	}
	week, err := parseDate("week_start_date", r.WeekStartDate)
	if err != nil {
		return rosterdomain.ReconcileRequest{}, err
	}

	grid := make([]rosterdomain.DaySubmission, 0, len(r.Grid))
	for _, day := range r.Grid {
		shifts := make([]rosterdomain.ShiftGroup, 0, len(day.Shifts))
		for _, group := range day.Shifts {
			rooms := make([]rosterdomain.RoomCell, 0, len(group.Rooms))
			for _, cell := range group.Rooms {
				roomCell := rosterdomain.RoomCell{RoomName: cell.Room}
				if cell.EmployeeID != nil && *cell.EmployeeID != "" {
					id, err := parseID("employee_id", *cell.EmployeeID)
					if err != nil {
						return rosterdomain.ReconcileRequest{}, err
					}
					roomCell.EmployeeID = &id
				}
				rooms = append(rooms, roomCell)
			}
			shifts = append(shifts, rosterdomain.ShiftGroup{
				ShiftType: slotdomain.ShiftType(group.ShiftType),
				Rooms:     rooms,
			})
		}
		grid = append(grid, rosterdomain.DaySubmission{
			Day:    slotdomain.DayOfWeek(day.Day),
			Shifts: shifts,
		})
	}

	return rosterdomain.ReconcileRequest{
		BranchID:      branchID,
		WeekStartDate: week,
		Grid:          grid,
		Status:        rosterdomain.Status(r.Status),
		Strict:        strict,
	}, nil
}

// CreateSchedule is the strict submission path: the first unresolvable
// room or employee aborts the whole call.
func (s *Server) CreateSchedule(c *gin.Context) {
	s.reconcile(c, true, http.StatusCreated)
}

// SaveSchedule is the tolerant path: unresolvable leaves are skipped.
func (s *Server) SaveSchedule(c *gin.Context) {
	s.reconcile(c, false, http.StatusOK)
}

func (s *Server) reconcile(c *gin.Context, strict bool, successStatus int) {
	var body scheduleSubmissionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request body"))
		return
	}

	req, err := body.toReconcileRequest(strict)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.submitLimiter.Allow(c.Request.Context(), req.BranchID); err != nil {
		AbortWithError(c, err)
		return
	}

	result, err := s.rosterSvc.Reconcile(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(successStatus, result)
}

type shiftFilterRequest struct {
	Day        string  `json:"day" binding:"required"`
	ShiftType  string  `json:"shift_type" binding:"required"`
	Room       string  `json:"room" binding:"required"`
	EmployeeID *string `json:"employee_id"`
}

type bulkUpdateRequest struct {
	BranchID      string               `json:"branch_id" binding:"required"`
	WeekStartDate string               `json:"week_start_date" binding:"required"`
	Status        string               `json:"status" binding:"required"`
	Shifts        []shiftFilterRequest `json:"shifts" binding:"required"`
}

func (s *Server) BulkUpdateSchedule(c *gin.Context) {
	var body bulkUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request body"))
		return
	}

	branchID, err := parseID("branch_id", body.BranchID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	week, err := parseDate("week_start_date", body.WeekStartDate)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	filters := make([]rosterdomain.ShiftFilter, 0, len(body.Shifts))
	for _, filter := range body.Shifts {
		f := rosterdomain.ShiftFilter{
			Day:       slotdomain.DayOfWeek(filter.Day),
			ShiftType: slotdomain.ShiftType(filter.ShiftType),
			RoomName:  filter.Room,
		}
		if filter.EmployeeID != nil && *filter.EmployeeID != "" {
			id, err := parseID("employee_id", *filter.EmployeeID)
			if err != nil {
				AbortWithError(c, err)
				return
			}
			f.EmployeeID = &id
		}
		filters = append(filters, f)
	}

	updated, err := s.rosterSvc.BulkUpdateStatus(c.Request.Context(), rosterdomain.BulkUpdateRequest{
		BranchID:      branchID,
		WeekStartDate: week,
		Filters:       filters,
		Status:        rosterdomain.Status(body.Status),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

func (s *Server) GetRoster(c *gin.Context) {
	branchID, err := parseID("branch_id", c.Param("branchId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	status := rosterdomain.Status(c.Param("status"))
	if !status.Valid() {
		AbortWithError(c, rosterdomain.ErrInvalidStatus)
		return
	}

	req := rosterdomain.FetchRequest{BranchID: branchID, Status: status}
	if raw := c.Query("week"); raw != "" {
		week, err := parseDate("week", raw)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		req.Week = &week
	}

	items, err := s.rosterSvc.Fetch(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedules": items})
}

func (s *Server) ListScheduleWeeks(c *gin.Context) {
	branchID, err := parseID("branch_id", c.Param("branchId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var status *rosterdomain.Status
	if raw := c.Query("status"); raw != "" {
		v := rosterdomain.Status(raw)
		status = &v
	}

	weeks, err := s.rosterSvc.ListWeeks(c.Request.Context(), branchID, status)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	formatted := make([]string, 0, len(weeks))
	for _, week := range weeks {
		formatted = append(formatted, week.Format(dateLayout))
	}

	c.JSON(http.StatusOK, gin.H{"weeks": formatted})
}

func (s *Server) DeleteScheduleWeek(c *gin.Context) {
	branchID, err := parseID("branch_id", c.Param("branchId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	week, err := parseDate("week", c.Param("week"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	deleted, err := s.rosterSvc.DeleteByWeek(c.Request.Context(), branchID, week)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func parseID(field, raw string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(raw)
	if err != nil {
		return 0, newValidationError(field, "invalid_id", "invalid identifier")
	}
	return id, nil
}

func parseDate(field, raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, newValidationError(field, "invalid_date", "expected YYYY-MM-DD")
	}
	return t.UTC(), nil
}
