package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	branchdomain "github.com/smallbiznis/rosterd/internal/branch/domain"
)

type createBranchRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

func (s *Server) ListBranches(c *gin.Context) {
	branches, err := s.branchSvc.ListBranches(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"branches": branches})
}

func (s *Server) CreateBranch(c *gin.Context) {
	var body createBranchRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request body"))
		return
	}

	branch, err := s.branchSvc.CreateBranch(c.Request.Context(), branchdomain.CreateBranchRequest{
		Name:     body.Name,
		Location: body.Location,
		Notes:    body.Notes,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, branch)
}

type createRoomRequest struct {
	BranchID    string `json:"branch_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *Server) ListRooms(c *gin.Context) {
	rooms, err := s.branchSvc.ListRooms(c.Request.Context(), c.Param("branchId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

func (s *Server) CreateRoom(c *gin.Context) {
	var body createRoomRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request body"))
		return
	}

	branchID, err := parseID("branch_id", body.BranchID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	room, err := s.branchSvc.CreateRoom(c.Request.Context(), branchdomain.CreateRoomRequest{
		BranchID:    branchID,
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, room)
}
