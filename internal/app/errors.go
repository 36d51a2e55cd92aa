package app

// errors.go maps dateshift failures to short user-facing messages with a code
// that can be quoted when reporting a problem.
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - Input missing: The input file does not exist
//	          Action: Check the input path
//	FILE002 - Malformed input: The input file could not be parsed
//	          Action: Ensure the file is delimited text with a header row and consistent columns
//	FILE003 - Input too large: The input file exceeds DATASET_MAX_FILE_SIZE
//	          Action: Split the file or raise the limit
//	FILE004 - Empty input: The input file has no header row
//	          Action: Provide a file with a header row
//	FILE005 - Output failed: The output file could not be written
//	          Action: Check that the output directory exists and is writable
//	FILE006 - Input unreadable: The input file could not be opened or read
//	          Action: Check file permissions
//
// # Column Errors (COL001-COL099)
//
//	COL001 - Column not found: The target column is not in the header
//	         Action: Column names are case-sensitive; check the header
//
// # Range Errors (RNG001-RNG099)
//
//	RNG001 - Inverted range: min_shift is greater than max_shift
//	         Action: Swap the bounds or adjust them so min_shift <= max_shift
//	RNG002 - Not an integer: A shift bound is not a whole number of days
//	         Action: Use whole numbers such as -30 or 45
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: An unexpected error occurred
//	         Action: Check the log for the underlying error
//
// Matching uses errors.Is against the sentinel errors of the dataset and
// shift packages; the first match wins.

import (
	"errors"
	"fmt"

	"github.com/JonMunkholm/dateshift/internal/dataset"
	"github.com/JonMunkholm/dateshift/internal/shift"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type errorMapping struct {
	target error
	msg    UserMessage
}

var errorMappings = []errorMapping{
	{
		target: dataset.ErrInputMissing,
		msg: UserMessage{
			Message: "The input file does not exist",
			Action:  "Check the input path",
			Code:    "FILE001",
		},
	},
	{
		target: dataset.ErrInputMalformed,
		msg: UserMessage{
			Message: "The input file could not be parsed",
			Action:  "Ensure the file is delimited text with a header row and consistent columns",
			Code:    "FILE002",
		},
	},
	{
		target: dataset.ErrInputTooLarge,
		msg: UserMessage{
			Message: "The input file is too large",
			Action:  "Split the file or raise DATASET_MAX_FILE_SIZE",
			Code:    "FILE003",
		},
	},
	{
		target: dataset.ErrInputEmpty,
		msg: UserMessage{
			Message: "The input file is empty",
			Action:  "Provide a file with a header row",
			Code:    "FILE004",
		},
	},
	{
		target: dataset.ErrOutputWrite,
		msg: UserMessage{
			Message: "The output file could not be written",
			Action:  "Check that the output directory exists and is writable",
			Code:    "FILE005",
		},
	},
	{
		target: dataset.ErrInputUnreadable,
		msg: UserMessage{
			Message: "The input file could not be read",
			Action:  "Check file permissions",
			Code:    "FILE006",
		},
	},
	{
		target: shift.ErrColumnNotFound,
		msg: UserMessage{
			Message: "The target column is not in the input header",
			Action:  "Column names are case-sensitive; check the header row",
			Code:    "COL001",
		},
	},
	{
		target: shift.ErrInvalidRange,
		msg: UserMessage{
			Message: "min_shift is greater than max_shift",
			Action:  "Adjust the bounds so that min_shift <= max_shift",
			Code:    "RNG001",
		},
	},
	{
		target: shift.ErrInvalidRangeType,
		msg: UserMessage{
			Message: "Shift bounds must be whole numbers of days",
			Action:  "Use integers such as -30 or 45",
			Code:    "RNG002",
		},
	},
}

// defaultMessage is returned when no mapping matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the log for the underlying error",
	Code:    "ERR000",
}

// MapError converts an error to a user-friendly message.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.msg
		}
	}
	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
