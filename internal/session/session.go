// Package session runs the interactive console dialogue: it collects a
// profile, prints the computed metrics and meal plan, and offers to edit a
// field or start over.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"lg/diet-planner/internal/diet"
)

// Update menu field numbers. 0 cancels.
const (
	fieldCancel = iota
	fieldName
	fieldAge
	fieldSex
	fieldWeight
	fieldHeight
	fieldActivity
)

// Session holds the dialogue's input and output streams. It is not safe
// for concurrent use.
type Session struct {
	in      *bufio.Reader
	out     io.Writer
	log     zerolog.Logger
	catalog diet.Catalog
}

// New creates a session reading answers from in and writing prompts and
// results to out. Diagnostics go to log, never to out.
func New(in io.Reader, out io.Writer, log zerolog.Logger) *Session {
	return &Session{
		in:      bufio.NewReader(in),
		out:     out,
		log:     log,
		catalog: diet.DefaultCatalog(),
	}
}

// Run drives the dialogue until the user declines to start over or input
// runs out. Closed input is a normal exit; any other read error is returned.
func (s *Session) Run() error {
	err := s.loop()
	if errors.Is(err, io.EOF) {
		s.log.Debug().Msg("input closed")
		err = nil
	}
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, "\nThank you for using the Healthy Diet Planner. Stay healthy!\n")
	return nil
}

func (s *Session) loop() error {
	for {
		s.writeWelcome()

		p, err := s.collectProfile()
		if err != nil {
			return err
		}
		s.report(p)

		update, err := s.promptYesNo("\nWould you like to update your information and recalculate? (Y/N): ")
		if err != nil {
			return err
		}
		if update {
			if p, err = s.updateProfile(p); err != nil {
				return err
			}
			s.report(p)
		}

		fmt.Fprint(s.out, "\nWould you like to start over with a new user? (Y/N): ")
		answer, err := s.readLine()
		if err != nil {
			return err
		}
		if !isYes(answer) {
			return nil
		}
	}
}

const implausibleMsg = "These measurements give a non-positive calorie estimate."

// collectProfile asks for every field until the answers form a valid
// profile. Each field is re-prompted on its own; a combination rejected as
// implausible restarts the whole form.
func (s *Session) collectProfile() (diet.UserProfile, error) {
	for {
		p, err := s.collectFields()
		if errors.Is(err, diet.ErrImplausibleProfile) {
			s.log.Debug().Err(err).Msg("profile rejected")
			fmt.Fprintf(s.out, "%s Please enter your information again.\n\n", implausibleMsg)
			continue
		}
		return p, err
	}
}

func (s *Session) collectFields() (diet.UserProfile, error) {
	fmt.Fprintln(s.out, "Please enter your information:")

	name, err := s.promptName("Name: ")
	if err != nil {
		return diet.UserProfile{}, err
	}
	age, err := s.promptAge("Age: ")
	if err != nil {
		return diet.UserProfile{}, err
	}
	sex, err := s.promptSex("Gender (M/F): ")
	if err != nil {
		return diet.UserProfile{}, err
	}
	weight, err := s.promptWeight("Weight (kg): ")
	if err != nil {
		return diet.UserProfile{}, err
	}
	height, err := s.promptHeight("Height (cm): ")
	if err != nil {
		return diet.UserProfile{}, err
	}
	level, err := s.promptActivity("Enter your activity level (1-5): ")
	if err != nil {
		return diet.UserProfile{}, err
	}

	p, err := diet.NewUserProfile(name, age, sex, weight, height, level)
	if err != nil {
		return diet.UserProfile{}, fmt.Errorf("build profile: %w", err)
	}
	s.log.Debug().Int("age", p.Age).Str("sex", string(p.Sex)).Int("activity_level", int(p.ActivityLevel)).Msg("profile collected")
	return p, nil
}

// updateProfile shows the current values and replaces the one field the
// user picks. Choosing 0, or a change that makes the profile implausible,
// returns p unchanged.
func (s *Session) updateProfile(p diet.UserProfile) (diet.UserProfile, error) {
	s.writeCurrentInfo(p)

	choice, err := s.promptInt("\nEnter the number of the field you want to update (1-6, or 0 to cancel): ",
		"Please enter a number between 0 and 6: ", fieldCancel, fieldActivity)
	if err != nil {
		return p, err
	}

	next := p
	switch choice {
	case fieldCancel:
		return p, nil
	case fieldName:
		next.Name, err = s.promptName("Enter new name: ")
	case fieldAge:
		next.Age, err = s.promptAge("Enter new age: ")
	case fieldSex:
		next.Sex, err = s.promptSex("Enter new gender (M/F): ")
	case fieldWeight:
		next.WeightKG, err = s.promptWeight("Enter new weight (kg): ")
	case fieldHeight:
		next.HeightCM, err = s.promptHeight("Enter new height (cm): ")
	case fieldActivity:
		next.ActivityLevel, err = s.promptActivity("Enter new activity level (1-5): ")
	}
	if err != nil {
		return p, err
	}
	if err := next.Validate(); err != nil {
		if errors.Is(err, diet.ErrImplausibleProfile) {
			s.log.Debug().Err(err).Int("field", choice).Msg("update rejected")
			fmt.Fprintf(s.out, "%s Your information was not changed.\n", implausibleMsg)
			return p, nil
		}
		return p, fmt.Errorf("update profile: %w", err)
	}

	s.log.Debug().Int("field", choice).Msg("profile field updated")
	fmt.Fprintln(s.out, "Information updated successfully!")
	return next, nil
}

// report computes metrics and the plan for p and prints them.
func (s *Session) report(p diet.UserProfile) {
	m := diet.Compute(p)
	plan := s.catalog.Plan(m.DailyCalories)

	s.log.Debug().
		Float64("bmi", m.BMI).
		Int("daily_calories", m.DailyCalories).
		Stringer("tier", diet.SelectTier(m.DailyCalories)).
		Msg("plan generated")

	s.writeResults(p, m, plan)
}
