package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess    = 0 // Analysis completed
	ExitValidation = 1 // Input or lexicon failed validation
	ExitError      = 2 // Configuration or runtime error
)

// ValidationError indicates the tool ran correctly but the input or the
// lexicon override did not pass validation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			os.Exit(ExitValidation)
		}

		os.Exit(ExitError)
	}
}
