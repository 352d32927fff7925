// Package scoring grades quiz submissions. Everything here is a pure
// computation over question data and 0-based answer indices; the pass/fail
// decision against a grade's threshold belongs to the caller.
package scoring

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"grade-portal/internal/models"
)

// ShuffledChoice is one choice as presented to the student, keeping the
// index it had in the stored question so answers can be mapped back.
type ShuffledChoice struct {
	OriginalIndex int    `json:"original_index"`
	Text          string `json:"text"`
}

// QuestionResult is the per-question outcome of a graded quiz.
type QuestionResult struct {
	Correct       bool `json:"correct"`
	StudentAnswer int  `json:"student_answer"`
	CorrectAnswer int  `json:"correct_answer"`
}

// GradeResult is the outcome of grading a full submission.
type GradeResult struct {
	Score          int              `json:"score"`
	CorrectAnswers []int            `json:"correct_answers"`
	Results        []QuestionResult `json:"results"`
}

// Shuffler produces choice permutations for quiz presentation. The random
// source is injectable so tests can run deterministically; this is UI
// variety, not security.
type Shuffler struct {
	rand *rand.Rand
}

// NewShuffler creates a shuffler. A nil source gets a time-seeded one.
func NewShuffler(r *rand.Rand) *Shuffler {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Shuffler{rand: r}
}

// ShuffleChoices returns the question's four choices in a random order via
// Fisher-Yates. The input question is not mutated and every original text
// appears exactly once.
func (s *Shuffler) ShuffleChoices(q *models.Question) []ShuffledChoice {
	choices := q.Choices()
	shuffled := make([]ShuffledChoice, len(choices))
	for i, text := range choices {
		shuffled[i] = ShuffledChoice{OriginalIndex: i, Text: text}
	}
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.rand.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Sample returns up to count questions drawn without replacement. The input
// slice is not mutated.
func (s *Shuffler) Sample(questions []models.Question, count int) []models.Question {
	pool := make([]models.Question, len(questions))
	copy(pool, questions)
	for i := len(pool) - 1; i > 0; i-- {
		j := s.rand.Intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	if count > len(pool) {
		count = len(pool)
	}
	return pool[:count]
}

// GradeQuiz grades answers against questions position by position.
// answers[i] is the student's 0-based choice for questions[i]. The score is
// 100*correct/total rounded to the nearest integer, ties away from zero, so
// 1/3, 2/3 and 3/3 come out as 33, 67 and 100.
func GradeQuiz(questions []models.Question, answers []int) GradeResult {
	total := len(questions)
	result := GradeResult{
		CorrectAnswers: make([]int, total),
		Results:        make([]QuestionResult, total),
	}

	correctCount := 0
	for i, q := range questions {
		correctIdx := q.CorrectIndex()
		result.CorrectAnswers[i] = correctIdx

		correct := answers[i] == correctIdx
		if correct {
			correctCount++
		}
		result.Results[i] = QuestionResult{
			Correct:       correct,
			StudentAnswer: answers[i],
			CorrectAnswer: correctIdx,
		}
	}

	result.Score = int(math.Round(float64(correctCount) / float64(total) * 100))
	return result
}

// Verify recomputes a submission's result from authoritative question
// data. The questions may come from storage in any order: answers[i] refers
// to the question whose QuestionID equals questionIDs[i], so the questions
// are reordered to the submitted order before grading. Length mismatches
// and unknown ids are precondition violations and fail fast.
func Verify(questions []models.Question, questionIDs []int, answers []int) (GradeResult, error) {
	if len(questions) != len(questionIDs) {
		return GradeResult{}, fmt.Errorf("question count %d does not match submitted id count %d", len(questions), len(questionIDs))
	}
	if len(answers) != len(questionIDs) {
		return GradeResult{}, fmt.Errorf("answer count %d does not match submitted id count %d", len(answers), len(questionIDs))
	}

	byID := make(map[int]models.Question, len(questions))
	for _, q := range questions {
		byID[q.QuestionID] = q
	}

	ordered := make([]models.Question, len(questionIDs))
	for i, id := range questionIDs {
		q, ok := byID[id]
		if !ok {
			return GradeResult{}, fmt.Errorf("question %d not found in fetched set", id)
		}
		ordered[i] = q
	}

	return GradeQuiz(ordered, answers), nil
}

// VerifyScore is Verify reduced to the score, the value compared against a
// grade's pass threshold.
func VerifyScore(questions []models.Question, questionIDs []int, answers []int) (int, error) {
	result, err := Verify(questions, questionIDs, answers)
	if err != nil {
		return 0, err
	}
	return result.Score, nil
}
