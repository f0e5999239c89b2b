package ppolicy

import (
	"fmt"
	"strings"
)

// ResponseValue holds the decoded state of a password policy response
// control value: an optional expiry/grace warning and an optional policy
// error code. DecodeResponseValue returns it fully populated; it is not
// modified afterwards.
//
// Absent fields are reported through the comma-ok accessors rather than a
// -1 sentinel, so "zero seconds until expiry" stays distinguishable from
// "no warning encoded".
type ResponseValue struct {
	timeBeforeExpiration int64
	graceAuthNsRemaining int64
	errorCode            int64

	hasTimeWarning  bool
	hasGraceWarning bool
	hasError        bool
}

// TimeBeforeExpiration returns the number of seconds before the password
// expires. ok is false if the response carried no time warning.
func (v *ResponseValue) TimeBeforeExpiration() (seconds int64, ok bool) {
	return v.timeBeforeExpiration, v.hasTimeWarning
}

// GraceAuthNsRemaining returns the number of grace authentications left.
// ok is false if the response carried no grace warning.
func (v *ResponseValue) GraceAuthNsRemaining() (remaining int64, ok bool) {
	return v.graceAuthNsRemaining, v.hasGraceWarning
}

// ErrorCode returns the policy error code. ok is false if the response
// carried no error element.
func (v *ResponseValue) ErrorCode() (code int64, ok bool) {
	return v.errorCode, v.hasError
}

// HasTimeWarning reports whether a timeBeforeExpiration warning was encoded.
func (v *ResponseValue) HasTimeWarning() bool { return v.hasTimeWarning }

// HasGraceWarning reports whether a graceAuthNsRemaining warning was encoded.
func (v *ResponseValue) HasGraceWarning() bool { return v.hasGraceWarning }

// HasError reports whether a policy error code was encoded.
func (v *ResponseValue) HasError() bool { return v.hasError }

// ErrorText returns the description of the encoded error code, or
// "Unknown error code" if no error was encoded or the code is outside the
// table.
func (v *ResponseValue) ErrorText() string {
	if !v.hasError {
		return unknownErrorText
	}
	return ErrorText(v.errorCode)
}

// SetTimeBeforeExpiration sets the expiry warning to the given number of
// seconds, clearing any grace warning (the two are alternatives of the same
// CHOICE and never coexist).
func (v *ResponseValue) SetTimeBeforeExpiration(seconds int64) {
	v.timeBeforeExpiration = seconds
	v.hasTimeWarning = true
	v.graceAuthNsRemaining = 0
	v.hasGraceWarning = false
}

// SetGraceAuthNsRemaining sets the grace warning to the given count,
// clearing any expiry warning.
func (v *ResponseValue) SetGraceAuthNsRemaining(remaining int64) {
	v.graceAuthNsRemaining = remaining
	v.hasGraceWarning = true
	v.timeBeforeExpiration = 0
	v.hasTimeWarning = false
}

// SetErrorCode sets the policy error code.
func (v *ResponseValue) SetErrorCode(code int64) {
	v.errorCode = code
	v.hasError = true
}

// String returns a one-line summary of the response value.
func (v *ResponseValue) String() string {
	var parts []string
	if v.hasTimeWarning {
		parts = append(parts, fmt.Sprintf("TimeBeforeExpiration: %d", v.timeBeforeExpiration))
	}
	if v.hasGraceWarning {
		parts = append(parts, fmt.Sprintf("GraceAuthNsRemaining: %d", v.graceAuthNsRemaining))
	}
	if v.hasError {
		parts = append(parts, fmt.Sprintf("Error: %d (%s)", v.errorCode, v.ErrorText()))
	}
	if len(parts) == 0 {
		return "PasswordPolicyResponseValue: empty"
	}
	return "PasswordPolicyResponseValue: " + strings.Join(parts, "  ")
}
