package scoring

import (
	"math/rand"
	"testing"

	"grade-portal/internal/models"
)

func makeQuestions(correct ...int) []models.Question {
	questions := make([]models.Question, len(correct))
	for i, c := range correct {
		questions[i] = models.Question{
			QuestionID:    i + 1,
			Text:          "Q",
			Choice1:       "a",
			Choice2:       "b",
			Choice3:       "c",
			Choice4:       "d",
			CorrectAnswer: c, // 1-based
		}
	}
	return questions
}

func TestGradeQuizRounding(t *testing.T) {
	testCases := []struct {
		name     string
		answers  []int
		expected int
	}{
		{"none correct", []int{1, 1, 1}, 0},
		{"one of three", []int{0, 1, 1}, 33},
		{"two of three", []int{0, 2, 1}, 67},
		{"all correct", []int{0, 2, 3}, 100},
	}

	// correct 0-based indices are [0,2,3]
	questions := makeQuestions(1, 3, 4)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := GradeQuiz(questions, tc.answers)
			if result.Score != tc.expected {
				t.Errorf("Expected score %d, got %d", tc.expected, result.Score)
			}
		})
	}
}

func TestGradeQuizResults(t *testing.T) {
	questions := makeQuestions(2, 1)
	result := GradeQuiz(questions, []int{1, 3})

	if len(result.Results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(result.Results))
	}
	if !result.Results[0].Correct {
		t.Error("Expected first answer to be correct")
	}
	if result.Results[1].Correct {
		t.Error("Expected second answer to be incorrect")
	}
	if result.Results[1].StudentAnswer != 3 || result.Results[1].CorrectAnswer != 0 {
		t.Errorf("Unexpected second result: %+v", result.Results[1])
	}
	if result.CorrectAnswers[0] != 1 || result.CorrectAnswers[1] != 0 {
		t.Errorf("Expected 0-based correct answers [1 0], got %v", result.CorrectAnswers)
	}
}

func TestVerifyReordersBySubmittedIDs(t *testing.T) {
	// correct 0-based: q1→0, q2→2, q3→3
	questions := makeQuestions(1, 3, 4)

	straight, err := Verify(questions, []int{1, 2, 3}, []int{0, 2, 3})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if straight.Score != 100 {
		t.Errorf("Expected 100, got %d", straight.Score)
	}

	// same submission with questionIDs shuffled relative to storage order
	shuffled, err := Verify(questions, []int{3, 1, 2}, []int{3, 0, 2})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if shuffled.Score != straight.Score {
		t.Errorf("Expected shuffled order to score %d, got %d", straight.Score, shuffled.Score)
	}

	// answering with storage-order indices against shuffled ids must not
	// accidentally pass
	wrong, err := Verify(questions, []int{3, 1, 2}, []int{0, 2, 3})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if wrong.Score == 100 {
		t.Error("Expected mismatched order to lose points")
	}
}

func TestVerifyPreconditions(t *testing.T) {
	questions := makeQuestions(1, 2)

	if _, err := Verify(questions, []int{1}, []int{0}); err == nil {
		t.Error("Expected error on question/id count mismatch")
	}
	if _, err := Verify(questions, []int{1, 2}, []int{0}); err == nil {
		t.Error("Expected error on answer count mismatch")
	}
	if _, err := Verify(questions, []int{1, 9}, []int{0, 0}); err == nil {
		t.Error("Expected error on unknown question id")
	}
}

func TestShuffleChoicesPreservesMapping(t *testing.T) {
	q := &models.Question{
		Choice1:       "alpha",
		Choice2:       "beta",
		Choice3:       "gamma",
		Choice4:       "delta",
		CorrectAnswer: 2,
	}
	s := NewShuffler(rand.New(rand.NewSource(42)))

	shuffled := s.ShuffleChoices(q)
	if len(shuffled) != 4 {
		t.Fatalf("Expected 4 choices, got %d", len(shuffled))
	}

	texts := q.Choices()
	seen := make(map[int]bool)
	for _, c := range shuffled {
		if seen[c.OriginalIndex] {
			t.Errorf("Original index %d appears twice", c.OriginalIndex)
		}
		seen[c.OriginalIndex] = true
		if texts[c.OriginalIndex] != c.Text {
			t.Errorf("Choice %d carries text %q, want %q", c.OriginalIndex, c.Text, texts[c.OriginalIndex])
		}
	}
	if q.Choice1 != "alpha" || q.Choice4 != "delta" {
		t.Error("ShuffleChoices must not mutate the question")
	}
}

func TestSampleWithoutReplacement(t *testing.T) {
	questions := makeQuestions(1, 1, 1, 1, 1)
	s := NewShuffler(rand.New(rand.NewSource(7)))

	sample := s.Sample(questions, 3)
	if len(sample) != 3 {
		t.Fatalf("Expected 3 questions, got %d", len(sample))
	}
	seen := make(map[int]bool)
	for _, q := range sample {
		if seen[q.QuestionID] {
			t.Errorf("Question %d drawn twice", q.QuestionID)
		}
		seen[q.QuestionID] = true
	}

	// asking for more than available returns everything
	all := s.Sample(questions, 10)
	if len(all) != 5 {
		t.Errorf("Expected 5 questions, got %d", len(all))
	}
}
