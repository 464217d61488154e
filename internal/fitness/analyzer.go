package fitness

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// The analytics below are pure functions over an in-memory history
// slice. They never touch storage, so handlers load the history once
// and fan it out to whatever derivations the endpoint needs.

const (
	weeklyWindowDays  = 7
	maxTrainingAlerts = 4
)

var milestoneThresholds = []int{10, 25, 50, 75, 100}

type TrendStatus string

const (
	TrendProgressing TrendStatus = "Progressing"
	TrendMaintaining TrendStatus = "Maintaining"
	TrendRegressing  TrendStatus = "Regressing"
)

type GroupVolume struct {
	Group  string `json:"group"`
	Volume int    `json:"volume"`
}

type TrendPoint struct {
	Date      time.Time `json:"date"`
	MaxWeight float64   `json:"maxWeight"`
	Volume    float64   `json:"volume"`
	OneRepMax float64   `json:"oneRm"`
}

type ExerciseTrend struct {
	Name        string       `json:"name"`
	MuscleGroup string       `json:"muscleGroup,omitempty"`
	Points      []TrendPoint `json:"points"`
	Status      TrendStatus  `json:"status"`
}

type LoadSuggestion struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

func sortedByDateDesc(history []WorkoutSession) []WorkoutSession {
	sorted := make([]WorkoutSession, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// WeeklyMuscleGroupVolume sums strength volume per muscle group over
// the trailing week. Cardio is excluded, exercises without a group
// fall into "Other", totals are rounded and sorted descending.
// Groups whose volume rounds to zero or below are omitted.
func WeeklyMuscleGroupVolume(history []WorkoutSession, referenceDate time.Time) []GroupVolume {
	cutoff := referenceDate.AddDate(0, 0, -weeklyWindowDays)
	volumes := make(map[string]float64)
	var order []string
	for _, session := range history {
		if session.Date.Before(cutoff) {
			continue
		}
		for _, ex := range session.Exercises {
			if ex.MuscleGroup == MuscleGroupCardio {
				continue
			}
			v := ex.Volume()
			if v <= 0 {
				continue
			}
			group := ex.MuscleGroup
			if group == "" {
				group = muscleGroupOther
			}
			if _, ok := volumes[group]; !ok {
				order = append(order, group)
			}
			volumes[group] += v
		}
	}

	result := make([]GroupVolume, 0, len(order))
	for _, group := range order {
		result = append(result, GroupVolume{
			Group:  group,
			Volume: int(math.Round(volumes[group])),
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Volume > result[j].Volume
	})
	return result
}

// WeeklyVolumeTotals splits the total strength volume into the
// trailing week and the week before that.
func WeeklyVolumeTotals(history []WorkoutSession, referenceDate time.Time) (thisWeek, lastWeek float64) {
	thisWeekStart := referenceDate.AddDate(0, 0, -weeklyWindowDays)
	lastWeekStart := referenceDate.AddDate(0, 0, -2*weeklyWindowDays)
	for _, session := range history {
		switch {
		case !session.Date.Before(thisWeekStart):
			thisWeek += session.Volume()
		case !session.Date.Before(lastWeekStart):
			lastWeek += session.Volume()
		}
	}
	return thisWeek, lastWeek
}

// TrainingStreak counts consecutive training days walking backwards
// from the most recent session. A gap of exactly two days is
// tolerated once per streak. The walk is over raw sessions, so a
// second session on the same day (gap of zero) ends the streak.
func TrainingStreak(history []WorkoutSession, today time.Time) int {
	if len(history) == 0 {
		return 0
	}
	sorted := sortedByDateDesc(history)
	todayDay := startOfDay(today)

	count := 0
	graceUsed := false
	var prev time.Time
	for _, session := range sorted {
		day := startOfDay(session.Date)
		if count == 0 {
			diffToday := int(todayDay.Sub(day).Hours() / 24)
			if diffToday > 2 {
				return 0
			}
			count = 1
			prev = day
			continue
		}
		diff := int(prev.Sub(day).Hours() / 24)
		switch {
		case diff == 1:
			count++
			prev = day
		case diff == 2 && !graceUsed:
			graceUsed = true
			count++
			prev = day
		default:
			return count
		}
	}
	return count
}

// ClassifyTrend compares the last two points of a date-ascending
// series. The 10x weighting makes load changes dominate volume
// changes; it is a coach heuristic, tune it with care.
func ClassifyTrend(points []TrendPoint) TrendStatus {
	if len(points) < 2 {
		return TrendMaintaining
	}
	last := points[len(points)-1]
	prev := points[len(points)-2]
	lastScore := last.MaxWeight*10 + last.Volume
	prevScore := prev.MaxWeight*10 + prev.Volume
	if lastScore > prevScore*1.02 {
		return TrendProgressing
	}
	if lastScore < prevScore*0.98 {
		return TrendRegressing
	}
	return TrendMaintaining
}

// ExerciseTrends builds a per-exercise series of max weight, volume
// and estimated 1RM, one point per session in which the exercise had
// at least one strength set. Exercises are sorted by name, points by
// date ascending.
func ExerciseTrends(history []WorkoutSession) []ExerciseTrend {
	type trendAgg struct {
		muscleGroup string
		points      []TrendPoint
	}
	byName := make(map[string]*trendAgg)
	var names []string

	for _, session := range history {
		for _, ex := range session.Exercises {
			hasStrengthSet := false
			for _, set := range ex.Sets {
				if set.IsStrength() {
					hasStrengthSet = true
					break
				}
			}
			if !hasStrengthSet {
				continue
			}

			var maxWeight, volume, bestOneRM float64
			for _, set := range ex.Sets {
				w := set.WeightOrZero()
				r := set.RepsOrZero()
				if w > maxWeight {
					maxWeight = w
				}
				volume += w * float64(r)
				if oneRM := EstimateOneRepMax(w, r); oneRM > bestOneRM {
					bestOneRM = oneRM
				}
			}

			agg, ok := byName[ex.Name]
			if !ok {
				agg = &trendAgg{muscleGroup: ex.MuscleGroup}
				byName[ex.Name] = agg
				names = append(names, ex.Name)
			}
			agg.points = append(agg.points, TrendPoint{
				Date:      session.Date,
				MaxWeight: maxWeight,
				Volume:    volume,
				OneRepMax: bestOneRM,
			})
		}
	}

	sort.Strings(names)
	trends := make([]ExerciseTrend, 0, len(names))
	for _, name := range names {
		agg := byName[name]
		sort.SliceStable(agg.points, func(i, j int) bool {
			return agg.points[i].Date.Before(agg.points[j].Date)
		})
		trends = append(trends, ExerciseTrend{
			Name:        name,
			MuscleGroup: agg.muscleGroup,
			Points:      agg.points,
			Status:      ClassifyTrend(agg.points),
		})
	}
	return trends
}

// DetectStalls flags exercises whose best working weight has not
// moved up across the three most recent sessions. The three samples
// are taken most-recent-first and checked for a <= b <= c, which
// flags a plateau; keep the comparison direction as is.
func DetectStalls(history []WorkoutSession) []string {
	sorted := sortedByDateDesc(history)
	bestWeights := make(map[string][]float64)
	var order []string
	for _, session := range sorted {
		for _, ex := range session.Exercises {
			best := ex.BestStrengthWeight()
			if best <= 0 {
				continue
			}
			if _, ok := bestWeights[ex.Name]; !ok {
				order = append(order, ex.Name)
			}
			bestWeights[ex.Name] = append(bestWeights[ex.Name], best)
		}
	}

	var stalled []string
	for _, name := range order {
		weights := bestWeights[name]
		if len(weights) < 3 {
			continue
		}
		a, b, c := weights[0], weights[1], weights[2]
		if a <= b && b <= c {
			stalled = append(stalled, fmt.Sprintf("%s has stalled for 3 sessions. Add 5 lbs or a rep next time.", name))
		}
	}
	return stalled
}

// DetectImbalance takes group volumes sorted descending and reports
// when the top group out-volumes the bottom group more than 2x.
func DetectImbalance(groups []GroupVolume) (string, bool) {
	if len(groups) < 2 {
		return "", false
	}
	top := groups[0]
	low := groups[len(groups)-1]
	if top.Volume > low.Volume*2 && low.Volume > 0 {
		return fmt.Sprintf(
			"%s volume is >2x %s. Consider adding sets for %s.",
			top.Group, low.Group, low.Group,
		), true
	}
	return "", false
}

// TrainingAlerts combines the weekly volume drop warning with stall
// messages, capped at four entries.
func TrainingAlerts(history []WorkoutSession, referenceDate time.Time) []string {
	var alerts []string
	thisWeek, lastWeek := WeeklyVolumeTotals(history, referenceDate)
	if lastWeek > 0 && thisWeek < lastWeek*0.9 {
		dropPct := math.Round(100 * (lastWeek - thisWeek) / lastWeek)
		alerts = append(alerts, fmt.Sprintf("Volume is down %.0f%% vs last week.", dropPct))
	}
	alerts = append(alerts, DetectStalls(history)...)
	if len(alerts) > maxTrainingAlerts {
		alerts = alerts[:maxTrainingAlerts]
	}
	return alerts
}

type bestEffort struct {
	weight float64
	reps   int
}

// best set of the named exercise within a session: highest weight,
// ties broken by higher reps; nil when the best weight is zero
func bestSetInSession(session WorkoutSession, exerciseName string) *bestEffort {
	for _, ex := range session.Exercises {
		if ex.Name != exerciseName {
			continue
		}
		var best bestEffort
		for _, set := range ex.Sets {
			w := set.WeightOrZero()
			r := set.RepsOrZero()
			if w > best.weight || (w == best.weight && r > best.reps) {
				best = bestEffort{weight: w, reps: r}
			}
		}
		if best.weight > 0 {
			return &best
		}
		return nil
	}
	return nil
}

// SuggestNextLoad proposes the next weight and rep target for an
// exercise from its last two logged sessions. Returns nil for cardio
// exercises and for exercises never logged with a working weight.
//
// Progression rule: with two sessions on record the weight is bumped
// only on a plateau-or-regression at an adequate rep range
// (last <= prev and reps >= 6); with a single session it is bumped
// when reps reached 8. The increment is 5 lbs at 50+ and 2.5 below.
func SuggestNextLoad(exerciseName, muscleGroup string, history []WorkoutSession) *LoadSuggestion {
	if muscleGroup == MuscleGroupCardio {
		return nil
	}

	sorted := sortedByDateDesc(history)
	var recent []WorkoutSession
	for _, session := range sorted {
		for _, ex := range session.Exercises {
			if ex.Name == exerciseName {
				recent = append(recent, session)
				break
			}
		}
		if len(recent) == 2 {
			break
		}
	}
	if len(recent) == 0 {
		return nil
	}

	last := bestSetInSession(recent[0], exerciseName)
	if last == nil {
		return nil
	}
	var prev *bestEffort
	if len(recent) > 1 {
		prev = bestSetInSession(recent[1], exerciseName)
	}

	increment := 2.5
	if last.weight >= 50 {
		increment = 5
	}

	weight := last.weight
	if prev != nil {
		if last.weight <= prev.weight && last.reps >= 6 {
			weight += increment
		}
	} else if last.reps >= 8 {
		// only one session on record; small bump if reps are solid
		weight += increment
	}

	reps := last.reps
	if reps < 8 {
		reps = 8
	}

	return &LoadSuggestion{
		Weight: math.Round(weight*10) / 10,
		Reps:   reps,
	}
}

// EstimateOneRepMax estimates the one-rep max via the Epley formula.
// A single rep is the lift itself; missing weight or reps yield 0.
func EstimateOneRepMax(weight float64, reps int) float64 {
	if weight == 0 || reps == 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}
	return math.Round(weight * (1 + float64(reps)/30))
}

// DetectPRs compares each exercise of a just-saved session against
// the best estimated 1RM ever recorded for the same exercise name in
// the prior history.
func DetectPRs(saved WorkoutSession, priorHistory []WorkoutSession) []string {
	var messages []string
	for _, ex := range saved.Exercises {
		var sessionBest float64
		for _, set := range ex.Sets {
			if oneRM := EstimateOneRepMax(set.WeightOrZero(), set.RepsOrZero()); oneRM > sessionBest {
				sessionBest = oneRM
			}
		}

		var historicalBest float64
		for _, session := range priorHistory {
			for _, prevEx := range session.Exercises {
				if prevEx.Name != ex.Name {
					continue
				}
				for _, set := range prevEx.Sets {
					if oneRM := EstimateOneRepMax(set.WeightOrZero(), set.RepsOrZero()); oneRM > historicalBest {
						historicalBest = oneRM
					}
				}
				break
			}
		}

		if sessionBest > historicalBest && sessionBest > 0 {
			messages = append(messages, fmt.Sprintf("New PR on %s: est %.0f lbs 1RM!", ex.Name, sessionBest))
		}
	}
	return messages
}

// DetectMilestone fires when the total saved session count lands
// exactly on one of the fixed thresholds.
func DetectMilestone(totalSessions int) (string, bool) {
	for _, threshold := range milestoneThresholds {
		if totalSessions == threshold {
			return fmt.Sprintf("Milestone: %d workouts logged!", totalSessions), true
		}
	}
	return "", false
}

// ProactiveInsights derives short nudges from the shape of the recent
// history: training cadence, a set-count drop between the last two
// sessions, or a nudge to start logging at all.
func ProactiveInsights(history []WorkoutSession) []string {
	var insights []string
	if len(history) > 3 {
		sorted := sortedByDateDesc(history)
		last, prev := sorted[0], sorted[1]
		diffDays := int(math.Floor(last.Date.Sub(prev.Date).Hours() / 24))
		if diffDays <= 2 {
			insights = append(insights, "🔥 You're on a roll! Consistency is key to hypertrophy.")
		} else if diffDays > 7 {
			insights = append(insights, "⚠️ It's been over a week since your last session. Let's get back on track.")
		}

		lastSets := last.TotalSets()
		prevSets := prev.TotalSets()
		if lastSets < prevSets {
			insights = append(insights, fmt.Sprintf(
				"📉 Your volume dropped last session (%d sets vs %d). Ensure you're recovering well.",
				lastSets, prevSets,
			))
		}
	} else if len(history) == 0 {
		insights = append(insights, "📝 Start logging workouts to unlock personalized training insights.")
	}
	return insights
}
