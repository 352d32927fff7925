package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"grade-portal/internal/csvx"
	"grade-portal/internal/export"
	"grade-portal/internal/models"
	"grade-portal/internal/progression"
	"grade-portal/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

// ExportService builds the teacher CSV downloads. Output is UTF-8 with a
// BOM prefix and CRLF row separators so spreadsheet applications open it
// cleanly.
type ExportService struct {
	Students *repository.StudentRepository
	Progress *repository.ProgressRepository
	Records  *repository.RecordRepository
	Grades   *repository.GradeRepository
}

func NewExportService(students *repository.StudentRepository, progress *repository.ProgressRepository, records *repository.RecordRepository, grades *repository.GradeRepository) *ExportService {
	return &ExportService{Students: students, Progress: progress, Records: records, Grades: grades}
}

// StudentsCSV builds the per-student summary export for one subject.
// fromGrade/toGrade filter by the student's current rank; empty bounds that
// match nothing mean no filtering.
func (s *ExportService) StudentsCSV(ctx context.Context, subjectID, fromGrade, toGrade string) (string, error) {
	include, err := s.gradeFilter(ctx, subjectID, fromGrade, toGrade)
	if err != nil {
		return "", err
	}

	students, err := s.Students.FindAll(ctx)
	if err != nil {
		return "", fmt.Errorf("load students: %w", err)
	}

	rows := [][]any{export.StudentHeader}
	for _, student := range students {
		progress, err := s.Progress.FindByStudentAndSubject(ctx, student.ID, subjectID)
		if errors.Is(err, mongo.ErrNoDocuments) {
			progress = nil
		} else if err != nil {
			return "", fmt.Errorf("load progress for %s: %w", student.ID, err)
		}
		if include != nil && (progress == nil || !slices.Contains(include, progress.CurrentGrade)) {
			continue
		}

		records, err := s.Records.FindByStudentAndSubject(ctx, student.ID, subjectID)
		if err != nil {
			return "", fmt.Errorf("load records for %s: %w", student.ID, err)
		}
		stats := export.AggregateStudentStats(records)
		rows = append(rows, export.FormatStudentRow(student, progress, &stats))
	}

	return export.BOM + csvx.GenerateRows(rows), nil
}

// RecordsCSV builds the full attempt-log export for one subject, optionally
// limited to a rank range.
func (s *ExportService) RecordsCSV(ctx context.Context, subjectID, fromGrade, toGrade string) (string, error) {
	include, err := s.gradeFilter(ctx, subjectID, fromGrade, toGrade)
	if err != nil {
		return "", err
	}

	records, err := s.Records.FindBySubjectAndGrades(ctx, subjectID, include)
	if err != nil {
		return "", fmt.Errorf("load records: %w", err)
	}

	students, err := s.Students.FindAll(ctx)
	if err != nil {
		return "", fmt.Errorf("load students: %w", err)
	}
	byID := make(map[string]models.Student, len(students))
	for _, st := range students {
		byID[st.ID] = st
	}

	rows := [][]any{export.RecordHeader}
	for _, record := range records {
		student, ok := byID[record.StudentID]
		if !ok {
			continue
		}
		rows = append(rows, export.FormatRecordRow(record, student))
	}

	return export.BOM + csvx.GenerateRows(rows), nil
}

// gradeFilter resolves the rank range against the subject's ladder. The
// ladder order here and in the progression engine must agree, so both go
// through progression.SortLadder.
func (s *ExportService) gradeFilter(ctx context.Context, subjectID, fromGrade, toGrade string) ([]string, error) {
	grades, err := s.Grades.FindBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("load grades: %w", err)
	}
	ladder := progression.SortLadder(grades)
	names := make([]string, len(ladder))
	for i, g := range ladder {
		names[i] = g.GradeName
	}
	return export.GradeRangeFilter(names, fromGrade, toGrade), nil
}
