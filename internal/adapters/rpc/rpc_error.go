package rpc

import "errors"

// Postgres reports a statement cancelled by statement_timeout with SQLSTATE
// 57014. The warehouse surfaces that code unchanged, and it is the only
// error class the degrading-limit retry policy acts on.
const codeQueryTimeout = "57014"

// RemoteError is the normalized failure shape the warehouse returns for
// both RPC invocations and table reads. Any of the fields may be blank.
type RemoteError struct {
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
	Code    string `json:"code"`
}

// Error picks the most specific populated field for display: message,
// else details, else hint, else code.
func (e *RemoteError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Details != "":
		return e.Details
	case e.Hint != "":
		return e.Hint
	case e.Code != "":
		return "remote error code " + e.Code
	}
	return "remote call failed"
}

// IsTimeout reports whether err is a warehouse query-timeout error.
func IsTimeout(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Code == codeQueryTimeout
}
