package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"grade-portal/internal/service"
)

type QuizHandler struct {
	Service *service.QuizService
}

func NewQuizHandler(s *service.QuizService) *QuizHandler {
	return &QuizHandler{Service: s}
}

// StartQuiz hands the student a shuffled question set for their current
// grade, or a 409 if they already challenged today.
func (h *QuizHandler) StartQuiz(c *gin.Context) {
	studentID := c.GetHeader("X-User-ID")
	payload, err := h.Service.StartQuiz(context.Background(), studentID, c.Param("subjectId"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyChallengedToday):
			c.JSON(http.StatusConflict, gin.H{"error": "Already challenged today"})
		case errors.Is(err, service.ErrNoQuestions):
			c.JSON(http.StatusConflict, gin.H{"error": "No questions available for your grade"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, payload)
}

type submitRequest struct {
	QuestionIDs []int `json:"question_ids" binding:"required"`
	Answers     []int `json:"answers" binding:"required"`
}

// SubmitQuiz verifies the submitted answers against the stored answer keys
// and returns the verified score with the progression outcome. The client
// may have graded optimistically for instant feedback; only the server's
// numbers are persisted.
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	studentID := c.GetHeader("X-User-ID")
	result, err := h.Service.SubmitQuiz(context.Background(), studentID, c.Param("subjectId"), req.QuestionIDs, req.Answers)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
