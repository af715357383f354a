package repository

import "github.com/JSwartzmiller/gym/internal/model"

// listWorkoutsQuery returns one row per set, with NULL exercise or set
// columns for workouts and exercises that have none. Newest workouts first;
// exercises and sets keep insertion order.
const listWorkoutsQuery = `
SELECT w.id, w.date, w.label, e.id, e.name, e.weight, s.reps
FROM workouts w
LEFT JOIN exercises e ON e.workout_id = w.id
LEFT JOIN sets s ON s.exercise_id = e.id
ORDER BY w.date DESC, w.id DESC, e.id ASC, s.id ASC`

type workoutRow struct {
	WorkoutID  int64
	Date       string
	Label      string
	ExerciseID *int64
	Name       *string
	Weight     *float64
	Reps       *int
}

// foldWorkouts rebuilds nested workouts from ordered join rows.
// Slices are never nil so they encode as [].
func foldWorkouts(rows []workoutRow) []model.Workout {
	workouts := make([]model.Workout, 0)

	for _, r := range rows {
		n := len(workouts)
		if n == 0 || workouts[n-1].ID != r.WorkoutID {
			workouts = append(workouts, model.Workout{
				ID:        r.WorkoutID,
				Date:      r.Date,
				Label:     r.Label,
				Exercises: []model.Exercise{},
			})
			n++
		}
		w := &workouts[n-1]

		if r.ExerciseID == nil {
			continue
		}

		m := len(w.Exercises)
		if m == 0 || w.Exercises[m-1].ID != *r.ExerciseID {
			ex := model.Exercise{ID: *r.ExerciseID, Sets: []int{}}
			if r.Name != nil {
				ex.Name = *r.Name
			}
			if r.Weight != nil {
				ex.Weight = *r.Weight
			}
			w.Exercises = append(w.Exercises, ex)
			m++
		}

		if r.Reps != nil {
			w.Exercises[m-1].Sets = append(w.Exercises[m-1].Sets, *r.Reps)
		}
	}

	return workouts
}
