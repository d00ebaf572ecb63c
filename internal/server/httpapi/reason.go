package httpapi

// Reason is a closed enumeration of boundary error codes. Codes travel in
// the ?error= query parameter of the error endpoint and in JSON error
// bodies; they are mapped to fixed user-facing messages here and nowhere
// else.
type Reason string

const (
	ReasonCredentialsSignin Reason = "CredentialsSignin"
	ReasonAccessDenied      Reason = "AccessDenied"
	ReasonConfiguration     Reason = "Configuration"
	ReasonSessionExpired    Reason = "SessionExpired"
	ReasonDefault           Reason = "default"
)

var reasonMessages = map[Reason]string{
	ReasonCredentialsSignin: "Invalid email or password. Please try again.",
	ReasonAccessDenied:      "You do not have permission to access this page.",
	ReasonConfiguration:     "There is a server configuration issue.",
	ReasonSessionExpired:    "Session Invalid or Expired. Please signin again.",
	ReasonDefault:           "Something went wrong. Please try again.",
}

// Message returns the user-facing text for the reason. Unrecognized codes
// fall back to the default message.
func (r Reason) Message() string {
	if m, ok := reasonMessages[r]; ok {
		return m
	}
	return reasonMessages[ReasonDefault]
}
