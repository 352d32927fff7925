package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"grade-portal/internal/export"
	"grade-portal/internal/service"
)

type ExportHandler struct {
	Service *service.ExportService
}

func NewExportHandler(s *service.ExportService) *ExportHandler {
	return &ExportHandler{Service: s}
}

// ExportStudents streams the student summary CSV. Query params from_grade
// and to_grade bound the included ranks; unknown or missing bounds clamp to
// the ladder's ends, and if neither resolves all ranks are included.
func (h *ExportHandler) ExportStudents(c *gin.Context) {
	csvText, err := h.Service.StudentsCSV(context.Background(), c.Param("subjectId"), c.Query("from_grade"), c.Query("to_grade"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	writeCSV(c, export.StudentsFilename, csvText)
}

// ExportRecords streams the quiz record CSV with the same grade-range
// filtering.
func (h *ExportHandler) ExportRecords(c *gin.Context) {
	csvText, err := h.Service.RecordsCSV(context.Background(), c.Param("subjectId"), c.Query("from_grade"), c.Query("to_grade"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	writeCSV(c, export.RecordsFilename, csvText)
}

func writeCSV(c *gin.Context, filename, body string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(body))
}
