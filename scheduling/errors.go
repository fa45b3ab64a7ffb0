package scheduling

import "fmt"

// Error codes for scheduling validation failures. All of these are local,
// recoverable-by-caller failures; infrastructure errors never carry them.
const (
	CodeInvalidTime         = "invalidTime"
	CodeInvalidFormat       = "invalidFormat"
	CodeInvalidRange        = "invalidRange"
	CodeInvalidDuration     = "invalidDuration"
	CodeOverlappingBookings = "overlappingBookings"
	CodeUnavailable         = "unavailable"
	CodeOutOfRange          = "outOfRange"
	CodeWrongRoom           = "wrongRoom"
)

// SlotError is a typed validation failure raised by the scheduling engine.
type SlotError struct {
	Code    string
	Message string
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newSlotError(code, format string, args ...interface{}) error {
	return &SlotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode extracts the scheduling error code from err, or "" if err is not
// a SlotError.
func ErrorCode(err error) string {
	if se, ok := err.(*SlotError); ok {
		return se.Code
	}
	return ""
}
