package tracker

import "github.com/ayoisaiah/sculpt/internal/apperr"

var (
	errUnknownTemplate = &apperr.Error{
		Message: "no workout template named %q",
	}

	errNoTemplates = &apperr.Error{
		Message: "the exercise library has no templates",
	}

	errNothingToEdit = &apperr.Error{
		Message: "add an exercise before editing",
	}

	errSessionCmd = &apperr.Error{
		Message: "unable to parse session command",
	}

	errChime = &apperr.Error{
		Message: "unable to play finish chime",
	}
)
