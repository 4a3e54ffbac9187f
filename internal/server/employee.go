package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	employeedomain "github.com/smallbiznis/rosterd/internal/employee/domain"
)

type createEmployeeRequest struct {
	AccountID string  `json:"account_id"`
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name" binding:"required"`
	Phone     string  `json:"phone"`
	Notes     string  `json:"notes"`
	Role      string  `json:"role"`
	BranchID  *string `json:"branch_id"`
}

type updateEmployeeRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Notes     *string `json:"notes"`
	Role      *string `json:"role"`
	IsActive  *bool   `json:"is_active"`
	BranchID  *string `json:"branch_id"`
}

func (s *Server) ListEmployees(c *gin.Context) {
	employees, err := s.employeeSvc.List(c.Request.Context(), c.Query("branch_id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

func (s *Server) CreateEmployee(c *gin.Context) {
	var body createEmployeeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request body"))
		return
	}

	req := employeedomain.CreateRequest{
		AccountID: body.AccountID,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
		Notes:     body.Notes,
		Role:      body.Role,
	}
	if body.BranchID != nil && *body.BranchID != "" {
		branchID, err := parseID("branch_id", *body.BranchID)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		req.BranchID = &branchID
	}

	employee, err := s.employeeSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, employee)
}

func (s *Server) UpdateEmployee(c *gin.Context) {
	var body updateEmployeeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request body"))
		return
	}

	req := employeedomain.UpdateRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
		Notes:     body.Notes,
		Role:      body.Role,
		IsActive:  body.IsActive,
	}
	if body.BranchID != nil && *body.BranchID != "" {
		branchID, err := parseID("branch_id", *body.BranchID)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		req.BranchID = &branchID
	}

	employee, err := s.employeeSvc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (s *Server) DeleteEmployee(c *gin.Context) {
	if err := s.employeeSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
