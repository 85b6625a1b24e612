package planner

import "time"

// weeklyPlan maps each weekday to its plan variants. Saturday and Sunday
// carry only a shared Both list; the resolver falls back to it when the
// requested variant has no entries for the day.
var weeklyPlan = map[time.Weekday]dayPlan{
	time.Monday: {
		Gym:  []string{"Bench Press 4×8-10", "Incline DB Press 3×10", "Chest Fly 3×12", "Dips 3×max"},
		Home: []string{"Push-ups 4×max", "Incline Push-ups (feet elevated) 3×10", "Dumbbell Floor Press (if dumbbells) 3×12", "Pike Push-ups"},
	},
	time.Tuesday: {
		Gym:  []string{"Deadlift 4×6", "Pull-ups/Lat Pulldown 4×8", "Barbell Row 3×10"},
		Home: []string{"Dumbbell Rows (or inverted rows) 4×10", "Superman holds 3×20s", "Bodyweight Inverted Row (table)"},
	},
	time.Wednesday: {
		Gym:  []string{"Overhead Press 4×8", "Lateral Raises 3×12", "Rear Delt Fly"},
		Home: []string{"Pike Push-ups / Handstand holds", "Dumbbell Lateral Raises", "Reverse Fly (light DB)"},
	},
	time.Thursday: {
		Gym:  []string{"Squats 4×8", "Leg Press 3×10", "Lunges 3×12"},
		Home: []string{"Bodyweight Squats 4×20", "Bulgarian Split Squats 3×10", "Walking Lunges"},
	},
	time.Friday: {
		Gym:  []string{"Bicep Curls 3×12", "Tricep Dips/Extensions 3×12", "Hammer Curls"},
		Home: []string{"Dumbbell Curls (or water bottles)", "Chair Dips", "Close-grip Push-ups"},
	},
	time.Saturday: {
		Both: []string{"Rest or Light Cardio"},
	},
	time.Sunday: {
		Both: []string{"Rest or Active Recovery"},
	},
}

// restDay is used for weekdays with no plan entry at all.
var restDay = dayPlan{Both: []string{"Rest Day"}}

// noPlan is the terminal fallback when a day entry exists but offers neither
// the requested variant nor a shared list.
var noPlan = []string{"No plan"}

// Budget-tier food lists for the India/Kerala region. Each tier extends the
// previous one append-only, so every lower tier is a strict prefix of the
// next.
var lowBudgetFoods = []string{
	"Lentils (Dal - Moong, Toor, Urad)",
	"Chickpeas (Kadala)",
	"Black-eyed peas",
	"Soya chunks",
	"Eggs (if non-veg)",
	"Fish (Sardine/Mackerel - cheap & common in Kerala)",
	"Peanuts",
	"Curd/Yogurt",
	"Paneer (small amounts)",
}

var middleBudgetFoods = extend(lowBudgetFoods,
	"Whey protein (MuscleBlaze / AS-IT-IS / Optimum Nutrition)",
	"Greek yogurt",
	"Chicken breast",
)

var advancedBudgetFoods = extend(middleBudgetFoods,
	"Whey protein isolate",
	"Creatine monohydrate (Nutrabay / MuscleBlaze)",
	"BCAAs",
	"Multivitamin",
)

// genericFoods replaces the tier lists for users outside India/Kerala.
var genericFoods = []string{
	"Generic high-protein: Eggs, Chicken, Lentils, Paneer, Whey",
}

func extend(base []string, extra ...string) []string {
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}
