// Package repository handles all interactions with the database.
//
// It contains the raw SQL used to persist and read workouts, abstracting
// SQL away from the service layer. Each store driver gets its own
// implementation behind the same method set.
package repository

import (
	"context"

	"github.com/JSwartzmiller/gym/internal/database"
	"github.com/JSwartzmiller/gym/internal/model"
	"github.com/JSwartzmiller/gym/internal/server"
)

// WorkoutStore is the method set shared by the workout repositories.
type WorkoutStore interface {
	Create(ctx context.Context, w *model.Workout) (int64, error)
	List(ctx context.Context) ([]model.Workout, error)
	Version(ctx context.Context) (string, error)
}

// Repositories is a container for all repository instances.
type Repositories struct {
	Workout WorkoutStore
}

// NewRepositories builds the repositories for the server's database driver.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Workout: NewWorkoutStore(s.DB),
	}
}

// NewWorkoutStore picks the workout repository matching db's driver.
func NewWorkoutStore(db *database.Database) WorkoutStore {
	if db.SQL != nil {
		return NewSQLiteWorkoutRepository(db.SQL)
	}
	return NewWorkoutRepository(db.Pool)
}
