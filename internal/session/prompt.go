package session

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lg/diet-planner/internal/diet"
)

// readLine returns the next input line without its line terminator. A final
// line with no trailing newline is returned as-is; io.EOF is reported only
// once nothing is left.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ask writes prompt, then reads lines until parse accepts one, writing retry
// before every re-read.
func ask[T any](s *Session, prompt, retry string, parse func(string) (T, bool)) (T, error) {
	fmt.Fprint(s.out, prompt)
	for {
		line, err := s.readLine()
		if err != nil {
			var zero T
			return zero, err
		}
		if v, ok := parse(strings.TrimSpace(line)); ok {
			return v, nil
		}
		fmt.Fprint(s.out, retry)
	}
}

func (s *Session) promptName(prompt string) (string, error) {
	return ask(s, prompt, "Please enter a name: ", func(in string) (string, bool) {
		return in, in != ""
	})
}

// promptInt accepts a whole number in [lo, hi].
func (s *Session) promptInt(prompt, retry string, lo, hi int) (int, error) {
	return ask(s, prompt, retry, func(in string) (int, bool) {
		n, err := strconv.Atoi(in)
		return n, err == nil && n >= lo && n <= hi
	})
}

// promptFloat accepts a number for which valid returns true.
func (s *Session) promptFloat(prompt, retry string, valid func(float64) bool) (float64, error) {
	return ask(s, prompt, retry, func(in string) (float64, bool) {
		f, err := strconv.ParseFloat(in, 64)
		return f, err == nil && valid(f)
	})
}

func (s *Session) promptAge(prompt string) (int, error) {
	return s.promptInt(prompt, "Please enter a valid age: ", 1, diet.MaxAge)
}

func (s *Session) promptWeight(prompt string) (float64, error) {
	return s.promptFloat(prompt, "Please enter a valid weight: ", diet.ValidWeight)
}

func (s *Session) promptHeight(prompt string) (float64, error) {
	return s.promptFloat(prompt, "Please enter a valid height: ", diet.ValidHeight)
}

func (s *Session) promptSex(prompt string) (diet.Sex, error) {
	return ask(s, prompt, "Please enter M or F: ", func(in string) (diet.Sex, bool) {
		sex, err := diet.ParseSex(in)
		return sex, err == nil
	})
}

// promptActivity prints the level menu before asking.
func (s *Session) promptActivity(prompt string) (diet.ActivityLevel, error) {
	s.writeActivityMenu()
	n, err := s.promptInt(prompt, "Please enter a number between 1 and 5: ", 1, 5)
	return diet.ActivityLevel(n), err
}

// promptYesNo accepts any answer starting with y or n, in either case.
func (s *Session) promptYesNo(prompt string) (bool, error) {
	return ask(s, prompt, "Please enter Y or N: ", func(in string) (bool, bool) {
		switch {
		case isYes(in):
			return true, true
		case strings.HasPrefix(strings.ToLower(in), "n"):
			return false, true
		}
		return false, false
	})
}

func isYes(answer string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y")
}
