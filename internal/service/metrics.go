package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	workoutsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gym_workouts_recorded_total",
		Help: "Workouts successfully saved.",
	})

	setsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gym_sets_recorded_total",
		Help: "Sets saved across all recorded workouts.",
	})
)
