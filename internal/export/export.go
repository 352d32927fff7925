// Package export reduces quiz-record history into the rows of the teacher
// CSV exports and implements the grade-range filter that selects which
// ranks an export includes.
package export

import (
	"math"
	"strconv"

	"grade-portal/internal/clock"
	"grade-portal/internal/models"
)

// BOM prefixes every generated CSV file so spreadsheet applications detect
// UTF-8.
const BOM = "\uFEFF"

// Suggested download filenames.
const (
	StudentsFilename = "students_export.csv"
	RecordsFilename  = "records_export.csv"
)

// StudentHeader is the fixed header row of the student summary export.
var StudentHeader = []any{"学年", "組", "番号", "氏名", "現在グレード", "連続合格日数", "最終挑戦日", "受験回数", "平均点", "最高点", "合格率"}

// RecordHeader is the fixed header row of the quiz record export.
var RecordHeader = []any{"学年", "組", "番号", "氏名", "グレード", "点数", "合否", "受験日"}

// Pass/fail labels used in the record export.
const (
	PassLabel = "合格"
	FailLabel = "不合格"
)

// StudentStats is the reduction of one student's quiz records.
type StudentStats struct {
	Count      int `json:"count"`
	TotalScore int `json:"total_score"`
	MaxScore   int `json:"max_score"`
	PassCount  int `json:"pass_count"`
}

// AggregateStudentStats reduces records to summary counters. An empty
// record list yields the zero value; no division happens here.
func AggregateStudentStats(records []models.QuizRecord) StudentStats {
	var stats StudentStats
	for _, r := range records {
		stats.Count++
		stats.TotalScore += r.Score
		if r.Score > stats.MaxScore {
			stats.MaxScore = r.Score
		}
		if r.Passed {
			stats.PassCount++
		}
	}
	return stats
}

// GradeRangeFilter returns the inclusive slice of the ladder between from
// and to. orderedNames must already follow DisplayOrder. If neither bound
// matches a ladder entry the result is nil, meaning "include everything".
// A single unresolved bound clamps to its end of the ladder.
func GradeRangeFilter(orderedNames []string, from, to string) []string {
	fromIdx := indexOf(orderedNames, from)
	toIdx := indexOf(orderedNames, to)
	if fromIdx == -1 && toIdx == -1 {
		return nil
	}
	if fromIdx == -1 {
		fromIdx = 0
	}
	if toIdx == -1 {
		toIdx = len(orderedNames) - 1
	}
	if fromIdx > toIdx {
		return []string{}
	}
	return orderedNames[fromIdx : toIdx+1]
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

// FormatStudentRow builds one student summary row. progress and stats may
// be nil for students who never challenged; those cells render as empty
// grade, zero counters and a "0%" pass rate.
func FormatStudentRow(student models.Student, progress *models.Progress, stats *StudentStats) []any {
	grade := ""
	streak := 0
	lastChallenge := ""
	if progress != nil {
		grade = progress.CurrentGrade
		streak = progress.ConsecutivePassDays
		lastChallenge = progress.LastChallengeDate
	}

	count := 0
	average := 0.0
	maxScore := 0
	passRate := 0.0
	if stats != nil && stats.Count > 0 {
		count = stats.Count
		average = round1(float64(stats.TotalScore) / float64(stats.Count))
		maxScore = stats.MaxScore
		passRate = round1(100 * float64(stats.PassCount) / float64(stats.Count))
	}

	return []any{
		student.Year,
		student.Class,
		student.Number,
		student.Name,
		grade,
		streak,
		lastChallenge,
		count,
		average,
		maxScore,
		strconv.FormatFloat(passRate, 'f', -1, 64) + "%",
	}
}

// FormatRecordRow builds one quiz-record row. The date cell carries the
// calendar date only, no time of day.
func FormatRecordRow(record models.QuizRecord, student models.Student) []any {
	label := FailLabel
	if record.Passed {
		label = PassLabel
	}
	return []any{
		student.Year,
		student.Class,
		student.Number,
		student.Name,
		record.Grade,
		record.Score,
		label,
		clock.DateOf(record.TakenAt),
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
