package hours

import "errors"

// none of these leave Calculator.Hours, a subject that is not set up simply
// has no hours so that one bad course does not break a whole report
var (
	// the subject has no course or the trimester is missing a start or end date
	ErrMissingConfiguration = errors.New("trimester dates are not configured")

	// trimesters are numbered 1 to 3
	ErrInvalidTrimester = errors.New("invalid trimester")

	ErrUnknownWeekday = errors.New("unknown weekday")
)
