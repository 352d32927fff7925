package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"grade-portal/internal/models"
	"grade-portal/internal/service"
)

type SubjectHandler struct {
	Service *service.SubjectService
}

func NewSubjectHandler(s *service.SubjectService) *SubjectHandler {
	return &SubjectHandler{Service: s}
}

func (h *SubjectHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.Service.ListSubjects(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, subjects)
}

func (h *SubjectHandler) GetSubject(c *gin.Context) {
	subject, err := h.Service.GetSubject(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subject not found"})
		return
	}
	c.JSON(http.StatusOK, subject)
}

func (h *SubjectHandler) CreateSubject(c *gin.Context) {
	var subject models.Subject
	if err := c.ShouldBindJSON(&subject); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateSubject(context.Background(), &subject); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, subject)
}
