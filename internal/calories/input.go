package calories

import (
	"github.com/2beens/fittrack/pkg"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

func (s Sex) IsValid() bool {
	switch s {
	case SexMale, SexFemale:
		return true
	default:
		return false
	}
}

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

func (a ActivityLevel) IsValid() bool {
	_, ok := a.multiplier()
	return ok
}

func (a ActivityLevel) multiplier() (float64, bool) {
	switch a {
	case ActivitySedentary:
		return 1.2, true
	case ActivityLight:
		return 1.375, true
	case ActivityModerate:
		return 1.55, true
	case ActivityActive:
		return 1.725, true
	case ActivityVeryActive:
		return 1.9, true
	default:
		return 0, false
	}
}

type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

func (g Goal) IsValid() bool {
	_, ok := g.multiplier()
	return ok
}

func (g Goal) multiplier() (float64, bool) {
	switch g {
	case GoalLose:
		return 0.8, true
	case GoalMaintain:
		return 1.0, true
	case GoalGain:
		return 1.15, true
	default:
		return 0, false
	}
}

// macroSplit gives protein grams per kg of body weight and
// the fraction of target calories coming from fat.
func (g Goal) macroSplit() (proteinPerKg, fatFraction float64) {
	switch g {
	case GoalLose:
		return 2.2, 0.25
	case GoalGain:
		return 1.8, 0.30
	default:
		return 1.6, 0.30
	}
}

type BiometricInput struct {
	Sex           Sex           `json:"sex"`
	AgeYears      int           `json:"ageYears"`
	WeightKg      float64       `json:"weightKg"`
	HeightCm      float64       `json:"heightCm"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	Goal          Goal          `json:"goal"`
}

// Validate has to pass before an input is handed to the Calculator.
func Validate(input BiometricInput) error {
	if !input.Sex.IsValid() {
		return pkg.NewInvalidInputError("sex", "must be one of: male, female")
	}
	if input.AgeYears <= 0 {
		return pkg.NewInvalidInputError("ageYears", "must be a positive integer")
	}
	if !pkg.IsFinite(input.WeightKg) || input.WeightKg <= 0 {
		return pkg.NewInvalidInputError("weightKg", "must be a positive number")
	}
	if !pkg.IsFinite(input.HeightCm) || input.HeightCm <= 0 {
		return pkg.NewInvalidInputError("heightCm", "must be a positive number")
	}
	if !input.ActivityLevel.IsValid() {
		return pkg.NewInvalidInputError("activityLevel", "must be one of: sedentary, light, moderate, active, very_active")
	}
	if !input.Goal.IsValid() {
		return pkg.NewInvalidInputError("goal", "must be one of: lose, maintain, gain")
	}
	return nil
}
