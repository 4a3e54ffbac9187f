package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListMyNotifications(c *gin.Context) {
	principal := principalFrom(c)
	if principal == nil {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	notifications, err := s.notificationSvc.ListForEmployee(c.Request.Context(), principal.EmployeeID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (s *Server) MarkNotificationRead(c *gin.Context) {
	principal := principalFrom(c)
	if principal == nil {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	if err := s.notificationSvc.MarkRead(c.Request.Context(), principal.EmployeeID, c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) ListBranchNotifications(c *gin.Context) {
	branchID, err := parseID("branch_id", c.Param("branchId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	notifications, err := s.notificationSvc.ListForBranch(c.Request.Context(), branchID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}
