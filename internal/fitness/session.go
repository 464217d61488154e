package fitness

import (
	"strings"
	"time"
)

const (
	// MuscleGroupCardio is excluded from all strength-volume math.
	MuscleGroupCardio = "Cardio"
	muscleGroupOther  = "Other"

	defaultSessionName        = "Untitled Workout"
	maxSessionDurationMinutes = 1440
)

// Set is one logged effort within an exercise. Weight and reps are
// pointers because the client may leave them unset; unset counts as
// zero in all aggregations.
type Set struct {
	ID        string   `json:"id"`
	Reps      *int     `json:"reps,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	Completed bool     `json:"completed"`

	// cardio fields
	Distance        *float64 `json:"distance,omitempty"`
	DurationMinutes *float64 `json:"durationMinutes,omitempty"`
	Incline         *float64 `json:"incline,omitempty"`
}

func (s Set) RepsOrZero() int {
	if s.Reps == nil {
		return 0
	}
	return *s.Reps
}

func (s Set) WeightOrZero() float64 {
	if s.Weight == nil {
		return 0
	}
	return *s.Weight
}

func (s Set) DistanceOrZero() float64 {
	if s.Distance == nil {
		return 0
	}
	return *s.Distance
}

func (s Set) DurationMinutesOrZero() float64 {
	if s.DurationMinutes == nil {
		return 0
	}
	return *s.DurationMinutes
}

// IsStrength says whether the set counts as strength work,
// i.e. has both a positive weight and positive reps.
func (s Set) IsStrength() bool {
	return s.WeightOrZero() > 0 && s.RepsOrZero() > 0
}

type ExerciseLog struct {
	ID          string `json:"id"`
	ExerciseID  string `json:"exerciseId"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup,omitempty"`
	Notes       string `json:"notes,omitempty"`
	Sets        []Set  `json:"sets"`
}

// Volume is the strength volume of the exercise: sum of weight*reps
// over all sets. Cardio sets contribute zero by construction.
func (e ExerciseLog) Volume() float64 {
	var volume float64
	for _, s := range e.Sets {
		volume += s.WeightOrZero() * float64(s.RepsOrZero())
	}
	return volume
}

// BestStrengthWeight is the highest weight among sets that have both
// weight and reps set, or 0 when the exercise has no strength sets.
func (e ExerciseLog) BestStrengthWeight() float64 {
	var best float64
	for _, s := range e.Sets {
		if s.IsStrength() && s.WeightOrZero() > best {
			best = s.WeightOrZero()
		}
	}
	return best
}

type WorkoutSession struct {
	ID              int           `json:"id"`
	Name            string        `json:"name"`
	Date            time.Time     `json:"date"`
	DurationMinutes int           `json:"durationMinutes"`
	Exercises       []ExerciseLog `json:"exercises"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// Volume is the total strength volume of the session.
func (ws WorkoutSession) Volume() float64 {
	var volume float64
	for _, ex := range ws.Exercises {
		volume += ex.Volume()
	}
	return volume
}

// TotalSets counts all logged sets regardless of kind.
func (ws WorkoutSession) TotalSets() int {
	var total int
	for _, ex := range ws.Exercises {
		total += len(ex.Sets)
	}
	return total
}

// Sanitize normalizes a session before it gets stored:
// exercises without sets are dropped, the duration is clamped to
// [1, 1440] minutes and a blank name gets a default.
func (ws *WorkoutSession) Sanitize() {
	if strings.TrimSpace(ws.Name) == "" {
		ws.Name = defaultSessionName
	}
	if ws.DurationMinutes < 1 {
		ws.DurationMinutes = 1
	}
	if ws.DurationMinutes > maxSessionDurationMinutes {
		ws.DurationMinutes = maxSessionDurationMinutes
	}
	kept := ws.Exercises[:0]
	for _, ex := range ws.Exercises {
		if len(ex.Sets) > 0 {
			kept = append(kept, ex)
		}
	}
	ws.Exercises = kept
}
