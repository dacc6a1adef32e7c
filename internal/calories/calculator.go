package calories

import (
	"math"
)

// Result is the rounded energy budget returned to callers.
// Infeasible is set when the goal leaves no calories for carbohydrates,
// CarbGrams is negative in that case.
type Result struct {
	BMR            int  `json:"bmr"`
	TDEE           int  `json:"tdee"`
	TargetCalories int  `json:"targetCalories"`
	ProteinGrams   int  `json:"proteinGrams"`
	CarbGrams      int  `json:"carbGrams"`
	FatGrams       int  `json:"fatGrams"`
	Infeasible     bool `json:"infeasible"`
}

// budget holds the unrounded intermediate values.
type budget struct {
	bmr            float64
	tdee           float64
	targetCalories float64
	proteinGrams   float64
	fatGrams       float64
	carbGrams      float64
}

type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Compute assumes the input passed Validate.
func (c *Calculator) Compute(input BiometricInput) Result {
	b := c.budget(input)
	return Result{
		BMR:            roundInt(b.bmr),
		TDEE:           roundInt(b.tdee),
		TargetCalories: roundInt(b.targetCalories),
		ProteinGrams:   roundInt(b.proteinGrams),
		CarbGrams:      roundInt(b.carbGrams),
		FatGrams:       roundInt(b.fatGrams),
		Infeasible:     b.carbGrams < 0,
	}
}

func (c *Calculator) budget(input BiometricInput) budget {
	bmr := basalMetabolicRate(input)

	activityMultiplier, _ := input.ActivityLevel.multiplier()
	tdee := bmr * activityMultiplier

	goalMultiplier, _ := input.Goal.multiplier()
	target := tdee * goalMultiplier

	proteinPerKg, fatFraction := input.Goal.macroSplit()
	protein := input.WeightKg * proteinPerKg
	fatCalories := target * fatFraction
	carbCalories := target - protein*4 - fatCalories

	return budget{
		bmr:            bmr,
		tdee:           tdee,
		targetCalories: target,
		proteinGrams:   protein,
		fatGrams:       fatCalories / 9,
		carbGrams:      carbCalories / 4,
	}
}

// basalMetabolicRate uses the revised Harris-Benedict equations.
func basalMetabolicRate(input BiometricInput) float64 {
	age := float64(input.AgeYears)
	if input.Sex == SexFemale {
		return 447.593 + 9.247*input.WeightKg + 3.098*input.HeightCm - 4.330*age
	}
	return 88.362 + 13.397*input.WeightKg + 4.799*input.HeightCm - 5.677*age
}

// roundInt rounds half up, so -2.5 becomes -2.
func roundInt(x float64) int {
	return int(math.Floor(x + 0.5))
}
