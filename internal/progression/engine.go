// Package progression implements the grade advancement state machine. One
// transition runs per quiz attempt: the streak grows on a pass (at most once
// per calendar day), resets on a fail, and an advancement to the next rank
// always restarts the streak at zero.
package progression

import (
	"fmt"
	"sort"
	"time"

	"grade-portal/internal/clock"
	"grade-portal/internal/models"
)

// Result is the outcome of one progression transition.
type Result struct {
	NewStreak  int    `json:"new_streak"`
	NewGrade   string `json:"new_grade"`
	Advanced   bool   `json:"advanced"`
	IsMaxGrade bool   `json:"is_max_grade"`
}

// Engine computes progression transitions. The time source is injectable so
// tests can pin "today".
type Engine struct {
	now func() time.Time
}

// NewEngine creates an engine on the real clock.
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineAt creates an engine with a fixed time source.
func NewEngineAt(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Today returns the engine's current calendar date in the portal timezone.
func (e *Engine) Today() string {
	return clock.DateOf(e.now())
}

// SortLadder returns the grade definitions ordered by DisplayOrder. This
// ordering is the rank ladder; the export grade-range filter uses the same
// sequence.
func SortLadder(grades []models.GradeDefinition) []models.GradeDefinition {
	ladder := make([]models.GradeDefinition, len(grades))
	copy(ladder, grades)
	sort.Slice(ladder, func(i, j int) bool {
		return ladder[i].DisplayOrder < ladder[j].DisplayOrder
	})
	return ladder
}

// Advance runs one transition. grades may arrive in any order; the ladder
// is sorted internally. An unknown currentGrade is a precondition violation:
// the caller fetched and validated the definitions, so the engine fails
// fast rather than defaulting.
//
// Rules, in order:
//   - pass on a new day increments the streak; pass on the same calendar day
//     as lastChallengeDate keeps it unchanged (duplicate-submission guard)
//   - fail resets the streak to zero
//   - a pass from a non-terminal grade with the streak at or past the
//     grade's required consecutive days advances to the next rung, and the
//     streak restarts at zero regardless of how far past the threshold it was
func (e *Engine) Advance(currentGrade string, currentStreak int, passed bool, lastChallengeDate string, grades []models.GradeDefinition) (Result, error) {
	ladder := SortLadder(grades)

	idx := -1
	for i, g := range ladder {
		if g.GradeName == currentGrade {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Result{}, fmt.Errorf("grade %q not found in ladder", currentGrade)
	}

	newStreak := 0
	if passed {
		if lastChallengeDate == e.Today() {
			newStreak = currentStreak
		} else {
			newStreak = currentStreak + 1
		}
	}

	isMax := idx == len(ladder)-1
	result := Result{
		NewStreak:  newStreak,
		NewGrade:   currentGrade,
		IsMaxGrade: isMax,
	}

	if passed && !isMax && newStreak >= ladder[idx].RequiredConsecutiveDays {
		result.NewGrade = ladder[idx+1].GradeName
		result.Advanced = true
		result.NewStreak = 0
	}

	return result, nil
}
