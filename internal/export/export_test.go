package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grade-portal/internal/clock"
	"grade-portal/internal/models"
)

func TestGradeRangeFilter(t *testing.T) {
	ladder := []string{"10級", "9級", "8級", "7級", "6級", "5級"}

	assert.Equal(t, []string{"9級", "8級", "7級"}, GradeRangeFilter(ladder, "9級", "7級"))
	assert.Nil(t, GradeRangeFilter(ladder, "", ""), "no bound resolved means no filtering")
	assert.Nil(t, GradeRangeFilter(ladder, "1級", "初段"))
	assert.Equal(t, []string{"10級", "9級", "8級"}, GradeRangeFilter(ladder, "", "8級"), "unresolved from clamps to start")
	assert.Equal(t, []string{"7級", "6級", "5級"}, GradeRangeFilter(ladder, "7級", ""), "unresolved to clamps to end")
	assert.Equal(t, []string{"6級"}, GradeRangeFilter(ladder, "6級", "6級"))
	assert.Empty(t, GradeRangeFilter(ladder, "5級", "10級"), "inverted bounds select nothing")
}

func TestAggregateStudentStats(t *testing.T) {
	assert.Equal(t, StudentStats{}, AggregateStudentStats(nil))

	records := []models.QuizRecord{
		{Score: 80, Passed: true},
		{Score: 60, Passed: false},
		{Score: 100, Passed: true},
	}
	stats := AggregateStudentStats(records)
	assert.Equal(t, StudentStats{Count: 3, TotalScore: 240, MaxScore: 100, PassCount: 2}, stats)
}

func TestFormatStudentRow(t *testing.T) {
	student := models.Student{Year: 5, Class: "2", Number: 14, Name: "山田太郎"}
	progress := &models.Progress{CurrentGrade: "9級", ConsecutivePassDays: 2, LastChallengeDate: "2026-08-27"}
	stats := &StudentStats{Count: 3, TotalScore: 200, MaxScore: 100, PassCount: 2}

	row := FormatStudentRow(student, progress, stats)
	require.Len(t, row, len(StudentHeader))
	assert.Equal(t, []any{5, "2", 14, "山田太郎", "9級", 2, "2026-08-27", 3, 66.7, 100, "66.7%"}, row)
}

func TestFormatStudentRow_NoHistory(t *testing.T) {
	student := models.Student{Year: 5, Class: "2", Number: 14, Name: "山田太郎"}

	row := FormatStudentRow(student, nil, nil)
	assert.Equal(t, []any{5, "2", 14, "山田太郎", "", 0, "", 0, 0.0, 0, "0%"}, row)

	// zero-count stats behave like nil stats
	row = FormatStudentRow(student, nil, &StudentStats{})
	assert.Equal(t, "0%", row[len(row)-1])
}

func TestFormatRecordRow(t *testing.T) {
	student := models.Student{Year: 6, Class: "1", Number: 3, Name: "佐藤花子"}
	takenAt := time.Date(2026, 8, 28, 9, 30, 0, 0, clock.Location())
	record := models.QuizRecord{Grade: "8級", Score: 67, Passed: true, TakenAt: takenAt}

	row := FormatRecordRow(record, student)
	require.Len(t, row, len(RecordHeader))
	assert.Equal(t, []any{6, "1", 3, "佐藤花子", "8級", 67, "合格", "2026-08-28"}, row)

	record.Passed = false
	row = FormatRecordRow(record, student)
	assert.Equal(t, "不合格", row[6])
}
