// Package diet holds the pure calculations behind the planner: body metrics
// from a user profile and a scaled meal plan from a calorie target.
package diet

import (
	"errors"
	"fmt"
	"strings"
)

// Profile validation errors.
var (
	ErrBlankName            = errors.New("name must not be blank")
	ErrInvalidAge           = errors.New("age must be a whole number between 1 and 130")
	ErrInvalidSex           = errors.New("sex must be male or female")
	ErrInvalidWeight        = errors.New("weight must be above 0 and at most 1000 kilograms")
	ErrInvalidHeight        = errors.New("height must be between 30 and 300 centimeters")
	ErrInvalidActivityLevel = errors.New("activity level must be between 1 and 5")
	ErrImplausibleProfile   = errors.New("age, weight and height give a non-positive energy estimate")
)

// Accepted measurement ranges. Weight has no lower bound beyond being
// positive.
const (
	MaxAge      = 130
	MaxWeightKG = 1000.0
	MinHeightCM = 30.0
	MaxHeightCM = 300.0
)

// ValidAge reports whether age is in [1, MaxAge].
func ValidAge(age int) bool {
	return age >= 1 && age <= MaxAge
}

// ValidWeight reports whether kg is in (0, MaxWeightKG]. NaN is rejected.
func ValidWeight(kg float64) bool {
	return kg > 0 && kg <= MaxWeightKG
}

// ValidHeight reports whether cm is in [MinHeightCM, MaxHeightCM].
func ValidHeight(cm float64) bool {
	return cm >= MinHeightCM && cm <= MaxHeightCM
}

// Sex selects which BMR formula applies.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ParseSex accepts "m", "f", "male" or "female" in any case.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male":
		return SexMale, nil
	case "f", "female":
		return SexFemale, nil
	}
	return "", fmt.Errorf("%w: got %q", ErrInvalidSex, s)
}

// Valid reports whether s is one of the two known values.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// Label is the display form ("Male" / "Female").
func (s Sex) Label() string {
	switch s {
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	}
	return "Unknown"
}

// Initial is the one-letter form used in the update menu.
func (s Sex) Initial() string {
	switch s {
	case SexMale:
		return "M"
	case SexFemale:
		return "F"
	}
	return "?"
}

// UserProfile is the input to every metric calculation. Build one with
// NewUserProfile (or call Validate) so the calculators can assume the
// ranges below hold.
type UserProfile struct {
	Name          string
	Age           int
	Sex           Sex
	WeightKG      float64
	HeightCM      float64
	ActivityLevel ActivityLevel
}

// NewUserProfile constructs a validated profile. The name is trimmed.
func NewUserProfile(name string, age int, sex Sex, weightKG, heightCM float64, level ActivityLevel) (UserProfile, error) {
	p := UserProfile{
		Name:          strings.TrimSpace(name),
		Age:           age,
		Sex:           sex,
		WeightKG:      weightKG,
		HeightCM:      heightCM,
		ActivityLevel: level,
	}
	if err := p.Validate(); err != nil {
		return UserProfile{}, err
	}
	return p, nil
}

// Validate returns the first violated field constraint, or nil. A profile
// whose fields are each in range can still fail with ErrImplausibleProfile.
func (p UserProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrBlankName
	}
	if !ValidAge(p.Age) {
		return fmt.Errorf("%w: got %d", ErrInvalidAge, p.Age)
	}
	if !p.Sex.Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidSex, string(p.Sex))
	}
	if !ValidWeight(p.WeightKG) {
		return fmt.Errorf("%w: got %g", ErrInvalidWeight, p.WeightKG)
	}
	if !ValidHeight(p.HeightCM) {
		return fmt.Errorf("%w: got %g", ErrInvalidHeight, p.HeightCM)
	}
	if !p.ActivityLevel.Valid() {
		return fmt.Errorf("%w: got %d", ErrInvalidActivityLevel, int(p.ActivityLevel))
	}
	// Harris-Benedict goes negative for very old, very small bodies.
	if bmr := BMR(p); bmr <= 0 {
		return fmt.Errorf("%w: BMR %.1f", ErrImplausibleProfile, bmr)
	}
	return nil
}
