package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notecolor", isNoteColor)
	_ = v.RegisterValidation("notecolordark", isNoteColorDark)
	_ = v.RegisterValidation("taskstatus", isTaskStatus)
	return v
}

func isNoteColor(fl validator.FieldLevel) bool {
	return NoteColor(fl.Field().String()).ValidLight()
}

func isNoteColorDark(fl validator.FieldLevel) bool {
	return NoteColor(fl.Field().String()).ValidDark()
}

func isTaskStatus(fl validator.FieldLevel) bool {
	return TaskStatus(fl.Field().String()).Valid()
}

// ValidationError describes why a persisted record was rejected. It maps
// field names to one or more problems, like the API error shape the
// document store itself produces.
type ValidationError struct {
	Problems map[string][]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for field, problems := range e.Problems {
		parts = append(parts, field+": "+strings.Join(problems, "; "))
	}
	return "invalid record: " + strings.Join(parts, ", ")
}

func newValidationError(field, problem string) *ValidationError {
	return &ValidationError{Problems: map[string][]string{field: {problem}}}
}

func fromValidatorError(err error) *ValidationError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return newValidationError("record", err.Error())
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "notecolor", "notecolordark":
			problems[field] = append(problems[field], "Value is not in the background palette")
		case "taskstatus":
			problems[field] = append(problems[field], fmt.Sprintf("Unknown task status: %s", fe.Value()))
		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}
	return &ValidationError{Problems: problems}
}
