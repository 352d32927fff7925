package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"grade-portal/internal/models"
	"grade-portal/internal/progression"
	"grade-portal/internal/scoring"

	"github.com/google/uuid"
)

// ErrAlreadyChallengedToday rejects a second challenge on the same calendar
// day. The check is read-then-write across two storage operations, so two
// truly concurrent submissions can both slip past it; the progression
// engine's same-day idempotence keeps the streak correct even then, the
// duplicate record is accepted as-is.
var ErrAlreadyChallengedToday = errors.New("quiz already challenged today")

// ErrNoQuestions means the current grade's question range is empty.
var ErrNoQuestions = errors.New("no questions available for current grade")

type questionFinder interface {
	FindByRange(ctx context.Context, subjectID string, startID, endID int) ([]models.Question, error)
	FindByQuestionIDs(ctx context.Context, subjectID string, questionIDs []int) ([]models.Question, error)
}

type gradeFinder interface {
	FindBySubject(ctx context.Context, subjectID string) ([]models.GradeDefinition, error)
}

type progressStore interface {
	FindByStudentAndSubject(ctx context.Context, studentID, subjectID string) (*models.Progress, error)
	Save(ctx context.Context, progress *models.Progress) error
}

type recordAppender interface {
	Append(ctx context.Context, record *models.QuizRecord) error
}

// Publisher is the slice of the event publisher the quiz flow needs.
type Publisher interface {
	Publish(eventType string, payload interface{}) error
}

// QuizService runs the quiz lifecycle: hand out a shuffled question set,
// then verify the submitted answers server-side and move the student's
// progress through the grade ladder. The client's own score computation is
// never persisted.
type QuizService struct {
	Questions questionFinder
	Grades    gradeFinder
	Progress  progressStore
	Records   recordAppender
	Publisher Publisher

	Engine   *progression.Engine
	Shuffler *scoring.Shuffler
	now      func() time.Time
}

func NewQuizService(questions questionFinder, grades gradeFinder, progress progressStore, records recordAppender, pub Publisher) *QuizService {
	return &QuizService{
		Questions: questions,
		Grades:    grades,
		Progress:  progress,
		Records:   records,
		Publisher: pub,
		Engine:    progression.NewEngine(),
		Shuffler:  scoring.NewShuffler(nil),
		now:       time.Now,
	}
}

// QuizQuestion is one question as handed to the client: shuffled choices,
// no correct answer.
type QuizQuestion struct {
	QuestionID int                      `json:"question_id"`
	Text       string                   `json:"text"`
	Choices    []scoring.ShuffledChoice `json:"choices"`
}

// QuizPayload is the start-quiz response.
type QuizPayload struct {
	Grade     string         `json:"grade"`
	PassScore int            `json:"pass_score"`
	Questions []QuizQuestion `json:"questions"`
}

// SubmitResult is the submit-quiz response: the verified score plus the
// progression outcome.
type SubmitResult struct {
	Score      int                      `json:"score"`
	Passed     bool                     `json:"passed"`
	Results    []scoring.QuestionResult `json:"results"`
	NewGrade   string                   `json:"new_grade"`
	NewStreak  int                      `json:"new_streak"`
	Advanced   bool                     `json:"advanced"`
	IsMaxGrade bool                     `json:"is_max_grade"`
}

// StartQuiz checks the once-per-day rule and assembles a random question
// set for the student's current grade.
func (s *QuizService) StartQuiz(ctx context.Context, studentID, subjectID string) (*QuizPayload, error) {
	progress, err := s.Progress.FindByStudentAndSubject(ctx, studentID, subjectID)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if progress.LastChallengeDate == s.Engine.Today() {
		return nil, ErrAlreadyChallengedToday
	}

	grade, _, err := s.currentGrade(ctx, subjectID, progress.CurrentGrade)
	if err != nil {
		return nil, err
	}

	pool, err := s.Questions.FindByRange(ctx, subjectID, grade.StartID, grade.EndID)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	if len(pool) == 0 {
		return nil, ErrNoQuestions
	}

	selected := s.Shuffler.Sample(pool, grade.NumQuestions)
	payload := &QuizPayload{
		Grade:     grade.GradeName,
		PassScore: grade.PassScore,
		Questions: make([]QuizQuestion, len(selected)),
	}
	for i := range selected {
		payload.Questions[i] = QuizQuestion{
			QuestionID: selected[i].QuestionID,
			Text:       selected[i].Text,
			Choices:    s.Shuffler.ShuffleChoices(&selected[i]),
		}
	}
	return payload, nil
}

// SubmitQuiz re-verifies the submission against stored answer keys, appends
// the quiz record and advances the student's progress.
func (s *QuizService) SubmitQuiz(ctx context.Context, studentID, subjectID string, questionIDs []int, answers []int) (*SubmitResult, error) {
	if len(questionIDs) == 0 {
		return nil, errors.New("submission has no questions")
	}
	if len(questionIDs) != len(answers) {
		return nil, fmt.Errorf("submitted %d question ids but %d answers", len(questionIDs), len(answers))
	}

	progress, err := s.Progress.FindByStudentAndSubject(ctx, studentID, subjectID)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	grade, ladder, err := s.currentGrade(ctx, subjectID, progress.CurrentGrade)
	if err != nil {
		return nil, err
	}

	questions, err := s.Questions.FindByQuestionIDs(ctx, subjectID, questionIDs)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	graded, err := scoring.Verify(questions, questionIDs, answers)
	if err != nil {
		return nil, err
	}
	passed := graded.Score >= grade.PassScore

	outcome, err := s.Engine.Advance(progress.CurrentGrade, progress.ConsecutivePassDays, passed, progress.LastChallengeDate, ladder)
	if err != nil {
		return nil, err
	}

	record := &models.QuizRecord{
		ID:             uuid.NewString(),
		StudentID:      studentID,
		SubjectID:      subjectID,
		Grade:          grade.GradeName,
		Score:          graded.Score,
		Passed:         passed,
		QuestionIDs:    questionIDs,
		StudentAnswers: answers,
		CorrectAnswers: graded.CorrectAnswers,
		TakenAt:        s.now(),
	}
	if err := s.Records.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("append record: %w", err)
	}

	progress.CurrentGrade = outcome.NewGrade
	progress.ConsecutivePassDays = outcome.NewStreak
	progress.LastChallengeDate = s.Engine.Today()
	if err := s.Progress.Save(ctx, progress); err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}

	s.publish("portal.quiz.submitted", map[string]interface{}{
		"student_id": studentID,
		"subject_id": subjectID,
		"grade":      record.Grade,
		"score":      record.Score,
		"passed":     record.Passed,
	})
	if outcome.Advanced {
		s.publish("portal.grade.advanced", map[string]interface{}{
			"student_id": studentID,
			"subject_id": subjectID,
			"from":       grade.GradeName,
			"to":         outcome.NewGrade,
		})
	}

	return &SubmitResult{
		Score:      graded.Score,
		Passed:     passed,
		Results:    graded.Results,
		NewGrade:   outcome.NewGrade,
		NewStreak:  outcome.NewStreak,
		Advanced:   outcome.Advanced,
		IsMaxGrade: outcome.IsMaxGrade,
	}, nil
}

// currentGrade loads the subject ladder and resolves the student's current
// grade definition in it.
func (s *QuizService) currentGrade(ctx context.Context, subjectID, gradeName string) (*models.GradeDefinition, []models.GradeDefinition, error) {
	ladder, err := s.Grades.FindBySubject(ctx, subjectID)
	if err != nil {
		return nil, nil, fmt.Errorf("load grades: %w", err)
	}
	for i := range ladder {
		if ladder[i].GradeName == gradeName {
			return &ladder[i], ladder, nil
		}
	}
	return nil, nil, fmt.Errorf("grade %q not defined for subject %s", gradeName, subjectID)
}

func (s *QuizService) publish(eventType string, payload interface{}) {
	if s.Publisher == nil {
		return
	}
	if err := s.Publisher.Publish(eventType, payload); err != nil {
		// events are best-effort, a broker hiccup must not fail the submission
		log.Printf("publish %s: %v", eventType, err)
	}
}
