package fitness

import (
	"fmt"
	"math"
	"sort"
	"time"
)

type ExerciseVolume struct {
	Name   string `json:"name"`
	Volume int    `json:"volume"`
}

type CardioActivity struct {
	Name     string  `json:"name"`
	Minutes  float64 `json:"minutes"`
	Distance float64 `json:"distance"`
}

type CardioSummary struct {
	TotalMinutes  float64          `json:"totalMinutes"`
	TotalDistance float64          `json:"totalDistance"`
	Top           []CardioActivity `json:"top"`
}

// WeeklyReport is the rollup of the trailing training week: totals,
// the three highest-volume exercises, the muscle group distribution,
// a few text highlights and a cardio summary.
type WeeklyReport struct {
	TotalSessions      int              `json:"totalSessions"`
	TotalVolume        float64          `json:"totalVolume"`
	AvgDurationMinutes int              `json:"avgDurationMinutes"`
	TopExercises       []ExerciseVolume `json:"topExercises"`
	GroupVolume        []GroupVolume    `json:"groupVolume"`
	Highlights         []string         `json:"highlights"`
	Cardio             CardioSummary    `json:"cardio"`
}

// BuildWeeklyReport summarizes the sessions of the last seven
// calendar days (today included, counted from midnight).
func BuildWeeklyReport(history []WorkoutSession, referenceDate time.Time) WeeklyReport {
	weekStart := startOfDay(referenceDate).AddDate(0, 0, -(weeklyWindowDays - 1))

	var weekSessions []WorkoutSession
	for _, session := range history {
		if !session.Date.Before(weekStart) {
			weekSessions = append(weekSessions, session)
		}
	}

	report := WeeklyReport{TotalSessions: len(weekSessions)}
	if len(weekSessions) == 0 {
		return report
	}

	var totalDuration int
	perExercise := make(map[string]float64)
	perGroup := make(map[string]float64)
	var exerciseOrder, groupOrder []string

	for _, session := range weekSessions {
		report.TotalVolume += session.Volume()
		totalDuration += session.DurationMinutes
		for _, ex := range session.Exercises {
			vol := ex.Volume()
			if vol <= 0 {
				continue
			}
			if _, ok := perExercise[ex.Name]; !ok {
				exerciseOrder = append(exerciseOrder, ex.Name)
			}
			perExercise[ex.Name] += vol

			group := ex.MuscleGroup
			if group == "" {
				group = muscleGroupOther
			}
			if _, ok := perGroup[group]; !ok {
				groupOrder = append(groupOrder, group)
			}
			perGroup[group] += vol
		}
	}
	report.AvgDurationMinutes = int(math.Round(float64(totalDuration) / float64(len(weekSessions))))

	topExercises := make([]ExerciseVolume, 0, len(exerciseOrder))
	for _, name := range exerciseOrder {
		topExercises = append(topExercises, ExerciseVolume{
			Name:   name,
			Volume: int(math.Round(perExercise[name])),
		})
	}
	sort.SliceStable(topExercises, func(i, j int) bool {
		return topExercises[i].Volume > topExercises[j].Volume
	})
	if len(topExercises) > 3 {
		topExercises = topExercises[:3]
	}
	report.TopExercises = topExercises

	groupVolume := make([]GroupVolume, 0, len(groupOrder))
	for _, group := range groupOrder {
		groupVolume = append(groupVolume, GroupVolume{
			Group:  group,
			Volume: int(math.Round(perGroup[group])),
		})
	}
	sort.SliceStable(groupVolume, func(i, j int) bool {
		return groupVolume[i].Volume > groupVolume[j].Volume
	})
	report.GroupVolume = groupVolume

	if report.TotalSessions >= 3 {
		report.Highlights = append(report.Highlights, "Great frequency this week")
	}
	if len(report.TopExercises) > 0 {
		report.Highlights = append(report.Highlights, fmt.Sprintf("Highest volume: %s", report.TopExercises[0].Name))
	}
	if len(report.GroupVolume) >= 2 {
		top := report.GroupVolume[0]
		low := report.GroupVolume[len(report.GroupVolume)-1]
		if top.Volume > low.Volume*2 && low.Volume > 0 {
			report.Highlights = append(report.Highlights, fmt.Sprintf("Volume imbalance: %s is >2x %s.", top.Group, low.Group))
		}
	}

	report.Cardio = buildCardioSummary(weekSessions)
	return report
}

func buildCardioSummary(weekSessions []WorkoutSession) CardioSummary {
	var summary CardioSummary
	byExercise := make(map[string]*CardioActivity)
	var order []string

	for _, session := range weekSessions {
		for _, ex := range session.Exercises {
			if ex.MuscleGroup != MuscleGroupCardio {
				continue
			}
			for _, set := range ex.Sets {
				minutes := set.DurationMinutesOrZero()
				distance := set.DistanceOrZero()
				summary.TotalMinutes += minutes
				summary.TotalDistance += distance

				activity, ok := byExercise[ex.Name]
				if !ok {
					activity = &CardioActivity{Name: ex.Name}
					byExercise[ex.Name] = activity
					order = append(order, ex.Name)
				}
				activity.Minutes += minutes
				activity.Distance += distance
			}
		}
	}

	top := make([]CardioActivity, 0, len(order))
	for _, name := range order {
		top = append(top, *byExercise[name])
	}
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].Minutes != top[j].Minutes {
			return top[i].Minutes > top[j].Minutes
		}
		return top[i].Distance > top[j].Distance
	})
	if len(top) > 3 {
		top = top[:3]
	}
	summary.Top = top
	return summary
}
