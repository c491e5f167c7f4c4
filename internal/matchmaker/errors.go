package matchmaker

import "errors"

var (
	// ErrOutOfOrderAnswer means the caller answered a step other than the current one.
	ErrOutOfOrderAnswer = errors.New("answer out of order")

	// ErrAtFirstStep means Back was called on the first question.
	ErrAtFirstStep = errors.New("already at first step")

	// ErrInvalidTag means the tag is not an option of the current question.
	ErrInvalidTag = errors.New("tag not offered by question")
)
