// Package catalog holds the static exercise and program catalog the
// mobile clients render their pickers from.
package catalog

// ExerciseDef is one entry of the built-in exercise database.
type ExerciseDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup"`
}

// MuscleGroupAll is the pseudo-group that matches every exercise.
const MuscleGroupAll = "All"

var MuscleGroups = []string{
	MuscleGroupAll,
	"Chest",
	"Back",
	"Legs",
	"Shoulders",
	"Biceps",
	"Triceps",
	"Abs",
	"Cardio",
	"HIIT",
	"Forearms",
}

var Exercises = []ExerciseDef{
	// Chest
	{ID: "bp", Name: "Barbell Bench Press", MuscleGroup: "Chest"},
	{ID: "idb", Name: "Incline Dumbbell Press", MuscleGroup: "Chest"},
	{ID: "cabl", Name: "Cable Fly", MuscleGroup: "Chest"},
	{ID: "dbbp", Name: "Dumbbell Bench Press", MuscleGroup: "Chest"},
	{ID: "dips", Name: "Chest Dips", MuscleGroup: "Chest"},
	{ID: "pec", Name: "Pec Deck Machine", MuscleGroup: "Chest"},
	{ID: "decline", Name: "Decline Bench Press", MuscleGroup: "Chest"},
	{ID: "pushup", Name: "Push Up", MuscleGroup: "Chest"},
	{ID: "dbfly", Name: "Dumbbell Fly", MuscleGroup: "Chest"},
	{ID: "cablecross", Name: "Cable Crossover", MuscleGroup: "Chest"},
	{ID: "landminepress", Name: "Landmine Press", MuscleGroup: "Chest"},
	{ID: "svend", Name: "Svend Press", MuscleGroup: "Chest"},
	{ID: "machinepress", Name: "Machine Chest Press", MuscleGroup: "Chest"},
	{ID: "lowcable", Name: "Low to High Cable Fly", MuscleGroup: "Chest"},
	{ID: "guillotine", Name: "Guillotine Press", MuscleGroup: "Chest"},

	// Back
	{ID: "dl", Name: "Deadlift", MuscleGroup: "Back"},
	{ID: "lat", Name: "Lat Pulldown", MuscleGroup: "Back"},
	{ID: "row", Name: "Barbell Row", MuscleGroup: "Back"},
	{ID: "pull", Name: "Pull Up", MuscleGroup: "Back"},
	{ID: "dbrow", Name: "Dumbbell Row", MuscleGroup: "Back"},
	{ID: "seatrow", Name: "Seated Cable Row", MuscleGroup: "Back"},
	{ID: "face", Name: "Face Pull", MuscleGroup: "Back"},
	{ID: "tbar", Name: "T-Bar Row", MuscleGroup: "Back"},
	{ID: "pullver", Name: "Dumbbell Pullover", MuscleGroup: "Back"},
	{ID: "hyperext", Name: "Hyperextension", MuscleGroup: "Back"},
	{ID: "rackpull", Name: "Rack Pull", MuscleGroup: "Back"},
	{ID: "csrow", Name: "Chest Supported Row", MuscleGroup: "Back"},
	{ID: "meadows", Name: "Meadows Row", MuscleGroup: "Back"},
	{ID: "goodmorning", Name: "Good Morning", MuscleGroup: "Back"},
	{ID: "singlepulldown", Name: "Single Arm Lat Pulldown", MuscleGroup: "Back"},
	{ID: "pendlay", Name: "Pendlay Row", MuscleGroup: "Back"},
	{ID: "sealrow", Name: "Seal Row", MuscleGroup: "Back"},
	{ID: "cablepullover", Name: "Cable Pullover", MuscleGroup: "Back"},

	// Legs
	{ID: "sq", Name: "Barbell Squat", MuscleGroup: "Legs"},
	{ID: "lpress", Name: "Leg Press", MuscleGroup: "Legs"},
	{ID: "ext", Name: "Leg Extension", MuscleGroup: "Legs"},
	{ID: "lcurl", Name: "Seated Leg Curl", MuscleGroup: "Legs"},
	{ID: "lyingcurl", Name: "Lying Leg Curl", MuscleGroup: "Legs"},
	{ID: "rdl", Name: "Romanian Deadlift", MuscleGroup: "Legs"},
	{ID: "lung", Name: "Walking Lunges", MuscleGroup: "Legs"},
	{ID: "bulg", Name: "Bulgarian Split Squat", MuscleGroup: "Legs"},
	{ID: "calf", Name: "Standing Calf Raise", MuscleGroup: "Legs"},
	{ID: "seatcalf", Name: "Seated Calf Raise", MuscleGroup: "Legs"},
	{ID: "hack", Name: "Hack Squat", MuscleGroup: "Legs"},
	{ID: "hip", Name: "Hip Thrust", MuscleGroup: "Legs"},
	{ID: "add", Name: "Hip Adduction", MuscleGroup: "Legs"},
	{ID: "abd", Name: "Hip Abduction", MuscleGroup: "Legs"},
	{ID: "fsq", Name: "Front Squat", MuscleGroup: "Legs"},
	{ID: "zercher", Name: "Zercher Squat", MuscleGroup: "Legs"},
	{ID: "stepup", Name: "Dumbbell Step-Up", MuscleGroup: "Legs"},
	{ID: "pistolsq", Name: "Pistol Squat", MuscleGroup: "Legs"},
	{ID: "glutebridge", Name: "Glute Bridge", MuscleGroup: "Legs"},
	{ID: "sledpush", Name: "Sled Push", MuscleGroup: "Legs"},
	{ID: "stepmill", Name: "Stair Climber", MuscleGroup: "Legs"},
	{ID: "splitjerk", Name: "Split Squat", MuscleGroup: "Legs"},
	{ID: "legcurl", Name: "Prone Leg Curl", MuscleGroup: "Legs"},
	{ID: "powerclean", Name: "Power Clean", MuscleGroup: "Legs"},
	{ID: "frontfoot", Name: "Front Foot Elevated Split Squat", MuscleGroup: "Legs"},

	// Shoulders
	{ID: "ohp", Name: "Overhead Press", MuscleGroup: "Shoulders"},
	{ID: "latr", Name: "Dumbbell Lateral Raise", MuscleGroup: "Shoulders"},
	{ID: "cablat", Name: "Cable Lateral Raise", MuscleGroup: "Shoulders"},
	{ID: "dbpress", Name: "Seated Dumbbell Press", MuscleGroup: "Shoulders"},
	{ID: "rearfly", Name: "Rear Delt Fly", MuscleGroup: "Shoulders"},
	{ID: "shrug", Name: "Dumbbell Shrug", MuscleGroup: "Shoulders"},
	{ID: "front", Name: "Front Raise", MuscleGroup: "Shoulders"},
	{ID: "upright", Name: "Upright Row", MuscleGroup: "Shoulders"},
	{ID: "arnold", Name: "Arnold Press", MuscleGroup: "Shoulders"},
	{ID: "shmachinepress", Name: "Shoulder Press Machine", MuscleGroup: "Shoulders"},
	{ID: "facepulls", Name: "Rope Face Pull", MuscleGroup: "Shoulders"},
	{ID: "behindneck", Name: "Behind-the-Neck Press", MuscleGroup: "Shoulders"},
	{ID: "cuban", Name: "Cuban Press", MuscleGroup: "Shoulders"},
	{ID: "landminerow", Name: "Landmine Lateral Raise", MuscleGroup: "Shoulders"},

	// Biceps
	{ID: "cur", Name: "Barbell Bicep Curl", MuscleGroup: "Biceps"},
	{ID: "dbcur", Name: "Dumbbell Bicep Curl", MuscleGroup: "Biceps"},
	{ID: "ham", Name: "Hammer Curl", MuscleGroup: "Biceps"},
	{ID: "preach", Name: "Preacher Curl", MuscleGroup: "Biceps"},
	{ID: "conc", Name: "Concentration Curl", MuscleGroup: "Biceps"},
	{ID: "inclinecurl", Name: "Incline Dumbbell Curl", MuscleGroup: "Biceps"},
	{ID: "spidercurl", Name: "Spider Curl", MuscleGroup: "Biceps"},
	{ID: "zotmancurl", Name: "Zottman Curl", MuscleGroup: "Biceps"},

	// Triceps
	{ID: "tri", Name: "Tricep Rope Pushdown", MuscleGroup: "Triceps"},
	{ID: "skul", Name: "Skullcrushers", MuscleGroup: "Triceps"},
	{ID: "ovhtri", Name: "Overhead Tricep Extension", MuscleGroup: "Triceps"},
	{ID: "dips_tri", Name: "Tricep Dips", MuscleGroup: "Triceps"},
	{ID: "kick", Name: "Tricep Kickback", MuscleGroup: "Triceps"},
	{ID: "cgbench", Name: "Close Grip Bench Press", MuscleGroup: "Triceps"},
	{ID: "jmpress", Name: "JM Press", MuscleGroup: "Triceps"},
	{ID: "singlepush", Name: "Single Arm Pushdown", MuscleGroup: "Triceps"},

	// Abs
	{ID: "crunch", Name: "Crunch", MuscleGroup: "Abs"},
	{ID: "plank", Name: "Plank", MuscleGroup: "Abs"},
	{ID: "legraise", Name: "Hanging Leg Raise", MuscleGroup: "Abs"},
	{ID: "cablecrunch", Name: "Cable Crunch", MuscleGroup: "Abs"},
	{ID: "russ", Name: "Russian Twist", MuscleGroup: "Abs"},
	{ID: "abwheel", Name: "Ab Wheel Rollout", MuscleGroup: "Abs"},
	{ID: "vups", Name: "V-Ups", MuscleGroup: "Abs"},
	{ID: "sideplank", Name: "Side Plank", MuscleGroup: "Abs"},
	{ID: "mountainclimber", Name: "Mountain Climber (Abs)", MuscleGroup: "Abs"},
	{ID: "hollow", Name: "Hollow Hold", MuscleGroup: "Abs"},
	{ID: "declinesitup", Name: "Decline Sit-Up", MuscleGroup: "Abs"},
	{ID: "reversecrunch", Name: "Reverse Crunch", MuscleGroup: "Abs"},

	// Cardio
	{ID: "tread", Name: "Treadmill Run", MuscleGroup: "Cardio"},
	{ID: "bike", Name: "Cycling", MuscleGroup: "Cardio"},
	{ID: "rower", Name: "Rowing Machine", MuscleGroup: "Cardio"},
	{ID: "stair", Name: "Stairmaster", MuscleGroup: "Cardio"},
	{ID: "elliptical", Name: "Elliptical", MuscleGroup: "Cardio"},
	{ID: "spin", Name: "Spin Bike", MuscleGroup: "Cardio"},
	{ID: "swim", Name: "Swimming", MuscleGroup: "Cardio"},
	{ID: "assaultcardio", Name: "Assault Bike (Steady)", MuscleGroup: "Cardio"},
	{ID: "runout", Name: "Outdoor Run", MuscleGroup: "Cardio"},
	{ID: "track", Name: "Track Intervals", MuscleGroup: "Cardio"},
	{ID: "hike", Name: "Hiking", MuscleGroup: "Cardio"},
	{ID: "stairsprint", Name: "Stair Sprints", MuscleGroup: "Cardio"},
	{ID: "inclinewalk", Name: "Incline Walking", MuscleGroup: "Cardio"},

	// HIIT
	{ID: "burp", Name: "Burpees", MuscleGroup: "HIIT"},
	{ID: "kettle", Name: "Kettlebell Swing", MuscleGroup: "HIIT"},
	{ID: "box", Name: "Box Jumps", MuscleGroup: "HIIT"},
	{ID: "rope", Name: "Jump Rope", MuscleGroup: "HIIT"},
	{ID: "mount", Name: "Mountain Climbers", MuscleGroup: "HIIT"},
	{ID: "sprint", Name: "Sprints", MuscleGroup: "HIIT"},
	{ID: "battlerope", Name: "Battle Ropes", MuscleGroup: "HIIT"},
	{ID: "assault", Name: "Assault Bike", MuscleGroup: "HIIT"},
	{ID: "shuttle", Name: "Shuttle Runs", MuscleGroup: "HIIT"},
	{ID: "prowler", Name: "Prowler Push", MuscleGroup: "HIIT"},

	// Forearms
	{ID: "wrcurl", Name: "Wrist Curl", MuscleGroup: "Forearms"},
	{ID: "revwrcurl", Name: "Reverse Wrist Curl", MuscleGroup: "Forearms"},
	{ID: "hammerfore", Name: "Hammer Curl", MuscleGroup: "Forearms"},
	{ID: "farmer", Name: "Farmer's Carry", MuscleGroup: "Forearms"},
	{ID: "platepinch", Name: "Plate Pinch Hold", MuscleGroup: "Forearms"},
	{ID: "towelpull", Name: "Towel Pull-Up", MuscleGroup: "Forearms"},
	{ID: "reversecurl", Name: "Reverse Curl", MuscleGroup: "Forearms"},
	{ID: "wristroller", Name: "Wrist Roller", MuscleGroup: "Forearms"},
}

// ExercisesByGroup filters the database by muscle group. The "All"
// pseudo-group (or an empty group) returns everything.
func ExercisesByGroup(group string) []ExerciseDef {
	if group == "" || group == MuscleGroupAll {
		exercises := make([]ExerciseDef, len(Exercises))
		copy(exercises, Exercises)
		return exercises
	}
	filtered := make([]ExerciseDef, 0)
	for _, ex := range Exercises {
		if ex.MuscleGroup == group {
			filtered = append(filtered, ex)
		}
	}
	return filtered
}

// FindExercise looks an exercise up by its catalog id.
func FindExercise(id string) (ExerciseDef, bool) {
	for _, ex := range Exercises {
		if ex.ID == id {
			return ex, true
		}
	}
	return ExerciseDef{}, false
}
