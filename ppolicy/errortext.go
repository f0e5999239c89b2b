package ppolicy

// Password policy error codes from draft-behera-ldap-password-policy-10.
const (
	ErrorPasswordExpired             = 0
	ErrorAccountLocked               = 1
	ErrorChangeAfterReset            = 2
	ErrorPasswordModNotAllowed       = 3
	ErrorMustSupplyOldPassword       = 4
	ErrorInsufficientPasswordQuality = 5
	ErrorPasswordTooShort            = 6
	ErrorPasswordTooYoung            = 7
	ErrorPasswordInHistory           = 8
)

const unknownErrorText = "Unknown error code"

// ErrorCodeMap contains human readable descriptions of password policy
// error codes.
var ErrorCodeMap = map[int64]string{
	ErrorPasswordExpired:             "Password expired",
	ErrorAccountLocked:               "Account locked",
	ErrorChangeAfterReset:            "Password must be changed",
	ErrorPasswordModNotAllowed:       "Policy prevents password modification",
	ErrorMustSupplyOldPassword:       "Policy requires old password in order to change password",
	ErrorInsufficientPasswordQuality: "Password fails quality checks",
	ErrorPasswordTooShort:            "Password is too short for policy",
	ErrorPasswordTooYoung:            "Password has been changed too recently",
	ErrorPasswordInHistory:           "New password is in list of old passwords",
}

// ErrorText returns the description of a password policy error code, or
// "Unknown error code" for anything outside the table.
func ErrorText(code int64) string {
	if text, ok := ErrorCodeMap[code]; ok {
		return text
	}
	return unknownErrorText
}
