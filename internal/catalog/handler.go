package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/bfit-app/bfit-backend/internal/fitness"
	"github.com/bfit-app/bfit-backend/internal/telemetry/tracing"
	"github.com/bfit-app/bfit-backend/pkg"
)

const presetReps = 10

type ExercisesResponse struct {
	Exercises []ExerciseDef `json:"exercises"`
}

type GroupsResponse struct {
	Groups []string `json:"groups"`
}

type ProgramsResponse struct {
	Programs []Program `json:"programs"`
}

type PresetResponse struct {
	Name      string                `json:"name"`
	Exercises []fitness.ExerciseLog `json:"exercises"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (handler *Handler) HandleGroups(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.groups")
	defer span.End()

	handler.writeJSON(w, GroupsResponse{Groups: MuscleGroups})
}

func (handler *Handler) HandleExercises(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.exercises")
	defer span.End()

	group := r.URL.Query().Get("group")
	handler.writeJSON(w, ExercisesResponse{Exercises: ExercisesByGroup(group)})
}

func (handler *Handler) HandlePrograms(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.programs")
	defer span.End()

	handler.writeJSON(w, ProgramsResponse{Programs: Programs})
}

func (handler *Handler) HandleProgram(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.program")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	program, ok := FindProgram(id)
	if !ok {
		http.Error(w, "program not found", http.StatusNotFound)
		return
	}

	handler.writeJSON(w, program)
}

// HandlePreset turns a program day into ready-to-log exercises, one
// starter set each with the program's prescribed weight.
func (handler *Handler) HandlePreset(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.preset")
	defer span.End()

	vars := mux.Vars(r)
	programID := vars["id"]
	dayID := vars["dayId"]
	if programID == "" || dayID == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	program, ok := FindProgram(programID)
	if !ok {
		http.Error(w, "program not found", http.StatusNotFound)
		return
	}

	for _, day := range program.Days {
		if day.ID != dayID {
			continue
		}
		if day.Break {
			http.Error(w, "break day has no preset", http.StatusBadRequest)
			return
		}
		handler.writeJSON(w, PresetResponse{
			Name:      day.Label,
			Exercises: BuildPreset(day),
		})
		return
	}

	http.Error(w, "program day not found", http.StatusNotFound)
}

// BuildPreset maps a program day to exercise logs with a single
// uncompleted starter set per exercise.
func BuildPreset(day ProgramDay) []fitness.ExerciseLog {
	exercises := make([]fitness.ExerciseLog, 0, len(day.Exercises))
	for i, ex := range day.Exercises {
		reps := presetReps
		weight := ex.Weight
		exercises = append(exercises, fitness.ExerciseLog{
			ID:          fmt.Sprintf("%s-%d", day.ID, i),
			ExerciseID:  strings.ToLower(strings.ReplaceAll(ex.Name, " ", "-")),
			Name:        ex.Name,
			MuscleGroup: ex.MuscleGroup,
			Sets: []fitness.Set{
				{
					ID:     fmt.Sprintf("%s-%d-set1", day.ID, i),
					Reps:   &reps,
					Weight: &weight,
				},
			},
		})
	}
	return exercises
}

func (handler *Handler) writeJSON(w http.ResponseWriter, resp interface{}) {
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("catalog, marshal response error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
