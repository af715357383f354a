package model

import "github.com/JSwartzmiller/gym/internal/validation"

// Workout is a dated, labeled session containing an ordered list of exercises.
type Workout struct {
	ID        int64      `json:"id"`
	Date      string     `json:"date"`
	Label     string     `json:"label"`
	Exercises []Exercise `json:"exercises"`
}

// Exercise is a named movement within a workout. Sets holds the rep count of
// each set.
type Exercise struct {
	ID     int64   `json:"-"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Sets   []int   `json:"sets"`
}

// SetCount returns the total number of sets across all exercises.
func (w *Workout) SetCount() int {
	n := 0
	for _, e := range w.Exercises {
		n += len(e.Sets)
	}
	return n
}

// ExerciseInput is one exercise in an add-workout request.
type ExerciseInput struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Sets   []int   `json:"sets"`
}

// AddWorkoutRequest is the body of POST /add-workout.
//
// Only the presence of the top-level fields is checked here; the store
// enforces the rest and rejects the whole workout when an exercise is malformed.
type AddWorkoutRequest struct {
	Date      string          `json:"date" validate:"required"`
	Label     string          `json:"label" validate:"required"`
	Exercises []ExerciseInput `json:"exercises" validate:"required,min=1"`
}

func (r *AddWorkoutRequest) Validate() error {
	return validation.Struct(r)
}

// ToWorkout converts the request into an unsaved Workout.
func (r *AddWorkoutRequest) ToWorkout() *Workout {
	w := &Workout{
		Date:      r.Date,
		Label:     r.Label,
		Exercises: make([]Exercise, 0, len(r.Exercises)),
	}
	for _, in := range r.Exercises {
		sets := in.Sets
		if sets == nil {
			sets = []int{}
		}
		w.Exercises = append(w.Exercises, Exercise{
			Name:   in.Name,
			Weight: in.Weight,
			Sets:   sets,
		})
	}
	return w
}

// AddWorkoutResponse confirms a recorded workout.
type AddWorkoutResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// WorkoutSummary is the payload of the workout-recorded notification.
type WorkoutSummary struct {
	WorkoutID     int64    `json:"workout_id"`
	Date          string   `json:"date"`
	Label         string   `json:"label"`
	ExerciseNames []string `json:"exercise_names"`
	SetCount      int      `json:"set_count"`
}

// Summary builds the notification payload for a saved workout.
func (w *Workout) Summary() WorkoutSummary {
	names := make([]string, 0, len(w.Exercises))
	for _, e := range w.Exercises {
		names = append(names, e.Name)
	}
	return WorkoutSummary{
		WorkoutID:     w.ID,
		Date:          w.Date,
		Label:         w.Label,
		ExerciseNames: names,
		SetCount:      w.SetCount(),
	}
}
