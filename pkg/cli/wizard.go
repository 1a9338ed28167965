package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/jeff-99/sage/pkg/input"
)

// ErrInvalidAge is returned when an age is not a number from 0 to 255.
var ErrInvalidAge = errors.New("invalid age")

// Answers holds what the wizard collected.
type Answers struct {
	Name string
	Age  uint8
}

// Wizard asks for every value that was not passed in and prints the result to
// out. An age below zero means it was not passed in.
func Wizard(in *input.Reader, out io.Writer, name string, age int) (Answers, error) {
	var answers Answers

	if name == "" {
		var err error
		name, err = in.Input("Enter your name:")
		if err != nil {
			return answers, fmt.Errorf("failed to get name: %w", err)
		}
	}
	answers.Name = name

	if age < 0 {
		ageStr, err := in.Input("Enter your age: ")
		if err != nil {
			return answers, fmt.Errorf("failed to get age: %w", err)
		}

		answers.Age, err = parseAge(ageStr)
		if err != nil {
			return answers, err
		}
	} else {
		if age > 255 {
			return answers, fmt.Errorf("%w: %d", ErrInvalidAge, age)
		}
		answers.Age = uint8(age)
	}

	fmt.Fprintf(out, "name = %s\n", answers.Name)
	fmt.Fprintf(out, "age = %d\n", answers.Age)

	return answers, nil
}

func parseAge(s string) (uint8, error) {
	age, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: could not parse %q", ErrInvalidAge, s)
	}

	return uint8(age), nil
}
