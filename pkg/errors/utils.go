package errors

import "errors"

// Is and Join are the standard helpers, exported here so packages using
// coded errors need a single errors import.
var (
	Is   = errors.Is
	Join = errors.Join
)

// CodeOf returns the code of the first *Error in err's chain, or "" when
// there is none.
func CodeOf(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ""
}
