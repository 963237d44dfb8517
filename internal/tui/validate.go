package tui

import (
	"errors"
	"strconv"
	"strings"

	"macros/internal/core"
)

const nameLimit = 30

var (
	errBadName    = errors.New("Input Cannot be Empty, a Number, or Longer than 30 Characters.")
	errNotANumber = errors.New("Invalid Input. Please Enter a Valid Number.")
	errNegative   = errors.New("Input Cannot be Negative.")
	errTooLarge   = errors.New("Input Cannot Exceed 10000.")
)

// validateName accepts a label for an entry. Purely numeric names are
// rejected so a stray macro value cannot end up in the name column.
func validateName(s string) (string, error) {
	name := strings.TrimSpace(s)
	if name == "" || len(name) > nameLimit {
		return "", errBadName
	}
	if _, err := strconv.ParseFloat(name, 64); err == nil {
		return "", errBadName
	}
	return name, nil
}

// validateMacro accepts a gram or kcal amount between 0 and 10000.
func validateMacro(s string) (float64, error) {
	v, err := core.ParseMacro(s)
	if err != nil {
		return 0, errNotANumber
	}
	if v < 0 {
		return 0, errNegative
	}
	if v > 10000 {
		return 0, errTooLarge
	}
	return v, nil
}
