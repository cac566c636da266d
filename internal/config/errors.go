package config

import "github.com/ayoisaiah/sculpt/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errDecodeConfig = &apperr.Error{
		Message: "decoding config file failed",
	}

	errUnknownDriver = &apperr.Error{
		Message: "storage driver must be one of %s, got %q",
	}

	errInvalidUnit = &apperr.Error{
		Message: "display unit must be one of %s, got %q",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "log level must be one of %s, got %q",
	}

	errLibraryNotFound = &apperr.Error{
		Message: "exercise catalog %s does not exist",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "period must be one of: %s",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the end date must not be earlier than the start date",
	}

	errParsingDate = &apperr.Error{
		Message: "unable to parse %s date %q",
	}
)
