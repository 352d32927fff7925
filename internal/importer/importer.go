// Package importer turns uploaded CSV text into question and student
// records. Parsing is batch-tolerant: every malformed row yields exactly
// one error with its 1-based row number, rows that do parse are still
// returned, and a file of nothing but bad rows is a valid (empty) result,
// not a failure.
package importer

import (
	"fmt"
	"strconv"
	"strings"

	"grade-portal/internal/csvx"
	"grade-portal/internal/models"
)

// QuestionHeader is the required header row of a question import file.
var QuestionHeader = []string{"question_id", "question_text", "choice_1", "choice_2", "choice_3", "choice_4", "correct_answer"}

// StudentHeader is the required header row of a student import file.
var StudentHeader = []string{"email", "year", "class", "number", "name"}

// RowError reports one unusable row. Row is 1-based over the parsed rows,
// header included, matching what the teacher sees in a spreadsheet.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// ParseQuestions parses a question import file. The returned questions have
// no ID or subject; the caller assigns those on upsert.
func ParseQuestions(text string) ([]models.Question, []RowError) {
	rows := csvx.ParseRows(text)
	if err := checkHeader(rows, QuestionHeader); err != nil {
		return nil, []RowError{*err}
	}

	var questions []models.Question
	var errs []RowError
	for i, row := range rows[1:] {
		rowNum := i + 2
		if len(row) != len(QuestionHeader) {
			errs = append(errs, RowError{rowNum, fmt.Sprintf("expected %d fields, got %d", len(QuestionHeader), len(row))})
			continue
		}
		questionID, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			errs = append(errs, RowError{rowNum, fmt.Sprintf("question_id %q is not a number", row[0])})
			continue
		}
		correct, err := strconv.Atoi(strings.TrimSpace(row[6]))
		if err != nil || correct < 1 || correct > 4 {
			errs = append(errs, RowError{rowNum, fmt.Sprintf("correct_answer %q must be 1-4", row[6])})
			continue
		}
		if blank(row[1]) || blank(row[2]) || blank(row[3]) || blank(row[4]) || blank(row[5]) {
			errs = append(errs, RowError{rowNum, "question text and all four choices are required"})
			continue
		}
		questions = append(questions, models.Question{
			QuestionID:    questionID,
			Text:          row[1],
			Choice1:       row[2],
			Choice2:       row[3],
			Choice3:       row[4],
			Choice4:       row[5],
			CorrectAnswer: correct,
		})
	}
	return questions, errs
}

// ParseStudents parses a student import file.
func ParseStudents(text string) ([]models.Student, []RowError) {
	rows := csvx.ParseRows(text)
	if err := checkHeader(rows, StudentHeader); err != nil {
		return nil, []RowError{*err}
	}

	var students []models.Student
	var errs []RowError
	for i, row := range rows[1:] {
		rowNum := i + 2
		if len(row) != len(StudentHeader) {
			errs = append(errs, RowError{rowNum, fmt.Sprintf("expected %d fields, got %d", len(StudentHeader), len(row))})
			continue
		}
		if blank(row[0]) {
			errs = append(errs, RowError{rowNum, "email is required"})
			continue
		}
		year, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			errs = append(errs, RowError{rowNum, fmt.Sprintf("year %q is not a number", row[1])})
			continue
		}
		number, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			errs = append(errs, RowError{rowNum, fmt.Sprintf("number %q is not a number", row[3])})
			continue
		}
		if blank(row[4]) {
			errs = append(errs, RowError{rowNum, "name is required"})
			continue
		}
		students = append(students, models.Student{
			Email:  strings.TrimSpace(row[0]),
			Year:   year,
			Class:  strings.TrimSpace(row[2]),
			Number: number,
			Name:   row[4],
		})
	}
	return students, errs
}

// checkHeader matches the first row against the expected header,
// case-insensitively.
func checkHeader(rows [][]string, expected []string) *RowError {
	if len(rows) == 0 {
		return &RowError{1, "file is empty"}
	}
	header := rows[0]
	if len(header) != len(expected) {
		return &RowError{1, fmt.Sprintf("header must be %q", strings.Join(expected, ","))}
	}
	for i, cell := range header {
		if !strings.EqualFold(strings.TrimSpace(cell), expected[i]) {
			return &RowError{1, fmt.Sprintf("header must be %q", strings.Join(expected, ","))}
		}
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
