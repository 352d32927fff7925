package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"grade-portal/internal/models"
	"grade-portal/internal/service"
)

type GradeHandler struct {
	Service *service.GradeService
}

func NewGradeHandler(s *service.GradeService) *GradeHandler {
	return &GradeHandler{Service: s}
}

func (h *GradeHandler) ListGrades(c *gin.Context) {
	grades, err := h.Service.ListGrades(context.Background(), c.Param("subjectId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, grades)
}

func (h *GradeHandler) CreateGrade(c *gin.Context) {
	var grade models.GradeDefinition
	if err := c.ShouldBindJSON(&grade); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if grade.RequiredConsecutiveDays < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "required_consecutive_days must be at least 1"})
		return
	}
	if grade.PassScore < 0 || grade.PassScore > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pass_score must be 0-100"})
		return
	}
	grade.SubjectID = c.Param("subjectId")
	if err := h.Service.CreateGrade(context.Background(), &grade); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, grade)
}

func (h *GradeHandler) UpdateGrade(c *gin.Context) {
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateGrade(context.Background(), c.Param("id"), update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

func (h *GradeHandler) DeleteGrade(c *gin.Context) {
	if err := h.Service.DeleteGrade(context.Background(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
