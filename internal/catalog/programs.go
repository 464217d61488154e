package catalog

// ProgramExercise is a single prescribed exercise of a program day,
// with its suggested starting weight.
type ProgramExercise struct {
	Name        string  `json:"name"`
	Weight      float64 `json:"weight"`
	MuscleGroup string  `json:"muscleGroup,omitempty"`
}

type ProgramDay struct {
	ID        string            `json:"id"`
	Label     string            `json:"label"`
	Break     bool              `json:"break,omitempty"`
	Exercises []ProgramExercise `json:"exercises"`
}

type Program struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Days []ProgramDay `json:"days"`
}

var Programs = []Program{
	{
		ID:   "custom-split",
		Name: "Your Split (Upper/Lower/Push/Pull/Leg)",
		Days: []ProgramDay{
			{
				ID:    "day1",
				Label: "Upper (Monday)",
				Exercises: []ProgramExercise{
					{Name: "Incline Dumbbell Chest Press", Weight: 40, MuscleGroup: "Chest"},
					{Name: "Shoulder Press", Weight: 30, MuscleGroup: "Shoulders"},
					{Name: "Lying Bicep Curl", Weight: 20, MuscleGroup: "Biceps"},
					{Name: "Bent Tricep Extension", Weight: 15, MuscleGroup: "Triceps"},
					{Name: "Back Extension", Weight: 20, MuscleGroup: "Back"},
				},
			},
			{
				ID:    "day2",
				Label: "Lower (Tuesday)",
				Exercises: []ProgramExercise{
					{Name: "Goblin Squats", Weight: 30, MuscleGroup: "Legs"},
					{Name: "Lunges", Weight: 20, MuscleGroup: "Legs"},
					{Name: "Split Squats", Weight: 15, MuscleGroup: "Legs"},
					{Name: "Leg Deadlift", Weight: 25, MuscleGroup: "Legs"},
					{Name: "Calf Raises", Weight: 25, MuscleGroup: "Legs"},
				},
			},
			{ID: "day3", Label: "Break (Wednesday)", Break: true, Exercises: []ProgramExercise{}},
			{
				ID:    "day4",
				Label: "Push (Thursday)",
				Exercises: []ProgramExercise{
					{Name: "Incline Dumbbell Press", Weight: 30, MuscleGroup: "Chest"},
					{Name: "Lateral Raises", Weight: 15, MuscleGroup: "Shoulders"},
					{Name: "Lying Tricep Extension", Weight: 10, MuscleGroup: "Triceps"},
					{Name: "Shoulder Press", Weight: 25, MuscleGroup: "Shoulders"},
					{Name: "Close Grip Dumbbell Press", Weight: 20, MuscleGroup: "Chest"},
					{Name: "Pec Fly", Weight: 15, MuscleGroup: "Chest"},
				},
			},
			{
				ID:    "day5",
				Label: "Pull (Friday)",
				Exercises: []ProgramExercise{
					{Name: "Rear Delt Rows", Weight: 20, MuscleGroup: "Back"},
					{Name: "Zottman Curls", Weight: 20, MuscleGroup: "Biceps"},
					{Name: "Rear Delt Fly", Weight: 15, MuscleGroup: "Shoulders"},
					{Name: "Bicep Curls", Weight: 25, MuscleGroup: "Biceps"},
					{Name: "Reverse Curls", Weight: 10, MuscleGroup: "Forearms"},
				},
			},
			{
				ID:    "day6",
				Label: "Legs (Saturday)",
				Exercises: []ProgramExercise{
					{Name: "Goblin Squats", Weight: 30, MuscleGroup: "Legs"},
					{Name: "Lunges", Weight: 20, MuscleGroup: "Legs"},
					{Name: "Split Squats", Weight: 20, MuscleGroup: "Legs"},
					{Name: "Leg Deadlift", Weight: 25, MuscleGroup: "Legs"},
					{Name: "Calf Raises", Weight: 25, MuscleGroup: "Legs"},
				},
			},
			{ID: "day7", Label: "Break (Sunday)", Break: true, Exercises: []ProgramExercise{}},
		},
	},
	{
		ID:   "ppl-classic",
		Name: "PPL Classic",
		Days: []ProgramDay{
			{
				ID:    "ppl-push",
				Label: "Push",
				Exercises: []ProgramExercise{
					{Name: "Barbell Bench Press", Weight: 95, MuscleGroup: "Chest"},
					{Name: "Overhead Press", Weight: 65, MuscleGroup: "Shoulders"},
					{Name: "Dumbbell Incline Press", Weight: 40, MuscleGroup: "Chest"},
					{Name: "Lateral Raises", Weight: 15, MuscleGroup: "Shoulders"},
					{Name: "Tricep Rope Pushdown", Weight: 30, MuscleGroup: "Triceps"},
				},
			},
			{
				ID:    "ppl-pull",
				Label: "Pull",
				Exercises: []ProgramExercise{
					{Name: "Deadlift", Weight: 135, MuscleGroup: "Back"},
					{Name: "Lat Pulldown", Weight: 70, MuscleGroup: "Back"},
					{Name: "Seated Cable Row", Weight: 70, MuscleGroup: "Back"},
					{Name: "Hammer Curl", Weight: 25, MuscleGroup: "Biceps"},
					{Name: "Face Pull", Weight: 25, MuscleGroup: "Shoulders"},
				},
			},
			{
				ID:    "ppl-legs",
				Label: "Legs",
				Exercises: []ProgramExercise{
					{Name: "Barbell Squat", Weight: 115, MuscleGroup: "Legs"},
					{Name: "Romanian Deadlift", Weight: 95, MuscleGroup: "Legs"},
					{Name: "Leg Press", Weight: 180, MuscleGroup: "Legs"},
					{Name: "Leg Extension", Weight: 60, MuscleGroup: "Legs"},
					{Name: "Calf Raises", Weight: 60, MuscleGroup: "Legs"},
				},
			},
		},
	},
	{
		ID:   "arnold-split",
		Name: "Arnold Classic Split",
		Days: []ProgramDay{
			{
				ID:    "arnold-chest-back",
				Label: "Chest & Back",
				Exercises: []ProgramExercise{
					{Name: "Barbell Bench Press", Weight: 135, MuscleGroup: "Chest"},
					{Name: "Incline Dumbbell Press", Weight: 45, MuscleGroup: "Chest"},
					{Name: "Weighted Pull Up", Weight: 0, MuscleGroup: "Back"},
					{Name: "Barbell Row", Weight: 115, MuscleGroup: "Back"},
					{Name: "Dumbbell Fly", Weight: 30, MuscleGroup: "Chest"},
					{Name: "Straight Arm Pulldown", Weight: 40, MuscleGroup: "Back"},
				},
			},
			{
				ID:    "arnold-shoulders-arms",
				Label: "Shoulders & Arms",
				Exercises: []ProgramExercise{
					{Name: "Overhead Press", Weight: 75, MuscleGroup: "Shoulders"},
					{Name: "Arnold Press", Weight: 35, MuscleGroup: "Shoulders"},
					{Name: "Lateral Raises", Weight: 15, MuscleGroup: "Shoulders"},
					{Name: "Barbell Curl", Weight: 65, MuscleGroup: "Biceps"},
					{Name: "Skullcrushers", Weight: 55, MuscleGroup: "Triceps"},
					{Name: "Hammer Curl", Weight: 25, MuscleGroup: "Biceps"},
					{Name: "Tricep Rope Pushdown", Weight: 30, MuscleGroup: "Triceps"},
				},
			},
			{
				ID:    "arnold-legs",
				Label: "Legs",
				Exercises: []ProgramExercise{
					{Name: "Barbell Squat", Weight: 135, MuscleGroup: "Legs"},
					{Name: "Romanian Deadlift", Weight: 115, MuscleGroup: "Legs"},
					{Name: "Leg Press", Weight: 180, MuscleGroup: "Legs"},
					{Name: "Walking Lunges", Weight: 40, MuscleGroup: "Legs"},
					{Name: "Leg Extension", Weight: 60, MuscleGroup: "Legs"},
					{Name: "Leg Curl", Weight: 60, MuscleGroup: "Legs"},
					{Name: "Calf Raises", Weight: 80, MuscleGroup: "Legs"},
				},
			},
		},
	},
	{
		ID:   "jeff-upper-lower",
		Name: "Jeff Nippard Upper/Lower",
		Days: []ProgramDay{
			{
				ID:    "jeff-upper",
				Label: "Upper",
				Exercises: []ProgramExercise{
					{Name: "Incline Barbell Bench Press", Weight: 115, MuscleGroup: "Chest"},
					{Name: "Weighted Pull Up", Weight: 0, MuscleGroup: "Back"},
					{Name: "Seated Cable Row", Weight: 80, MuscleGroup: "Back"},
					{Name: "Dumbbell Shoulder Press", Weight: 40, MuscleGroup: "Shoulders"},
					{Name: "Lateral Raises", Weight: 15, MuscleGroup: "Shoulders"},
					{Name: "Barbell Curl", Weight: 65, MuscleGroup: "Biceps"},
					{Name: "Overhead Tricep Extension", Weight: 45, MuscleGroup: "Triceps"},
				},
			},
			{
				ID:    "jeff-lower",
				Label: "Lower",
				Exercises: []ProgramExercise{
					{Name: "Back Squat", Weight: 145, MuscleGroup: "Legs"},
					{Name: "Romanian Deadlift", Weight: 115, MuscleGroup: "Legs"},
					{Name: "Leg Press", Weight: 200, MuscleGroup: "Legs"},
					{Name: "Leg Curl", Weight: 70, MuscleGroup: "Legs"},
					{Name: "Calf Raises", Weight: 90, MuscleGroup: "Legs"},
					{Name: "Walking Lunges", Weight: 40, MuscleGroup: "Legs"},
				},
			},
		},
	},
	{
		ID:   "cbum-ppl",
		Name: "CBUM Push/Pull/Legs",
		Days: []ProgramDay{
			{
				ID:    "cbum-push",
				Label: "Push",
				Exercises: []ProgramExercise{
					{Name: "Dumbbell Bench Press", Weight: 120, MuscleGroup: "Chest"},
					{Name: "Incline Dumbbell Press", Weight: 50, MuscleGroup: "Chest"},
					{Name: "Overhead Press", Weight: 75, MuscleGroup: "Shoulders"},
					{Name: "Lateral Raises", Weight: 20, MuscleGroup: "Shoulders"},
					{Name: "Tricep Rope Pushdown", Weight: 40, MuscleGroup: "Triceps"},
					{Name: "Dips", Weight: 0, MuscleGroup: "Triceps"},
				},
			},
			{
				ID:    "cbum-pull",
				Label: "Pull",
				Exercises: []ProgramExercise{
					{Name: "Barbell Row", Weight: 115, MuscleGroup: "Back"},
					{Name: "Lat Pulldown", Weight: 90, MuscleGroup: "Back"},
					{Name: "Seated Cable Row", Weight: 90, MuscleGroup: "Back"},
					{Name: "Face Pull", Weight: 30, MuscleGroup: "Shoulders"},
					{Name: "Hammer Curl", Weight: 30, MuscleGroup: "Biceps"},
					{Name: "Preacher Curl", Weight: 50, MuscleGroup: "Biceps"},
				},
			},
			{
				ID:    "cbum-legs",
				Label: "Legs",
				Exercises: []ProgramExercise{
					{Name: "Hack Squat", Weight: 180, MuscleGroup: "Legs"},
					{Name: "Romanian Deadlift", Weight: 135, MuscleGroup: "Legs"},
					{Name: "Leg Press", Weight: 220, MuscleGroup: "Legs"},
					{Name: "Leg Curl", Weight: 80, MuscleGroup: "Legs"},
					{Name: "Calf Raises", Weight: 100, MuscleGroup: "Legs"},
				},
			},
		},
	},
}

// FindProgram looks a program up by id.
func FindProgram(id string) (Program, bool) {
	for _, p := range Programs {
		if p.ID == id {
			return p, true
		}
	}
	return Program{}, false
}
