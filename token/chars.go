package token

// Reserved characters of the wire format. All of them are escaped when
// they occur inside a token payload.
const (
	Delim         = ':'
	Null          = '~'
	NameValueSep  = '='
	EscapeChar    = '\\'
	DoubleQuote   = '"'
	ActualReturn  = '\n'
	EscapedReturn = 'n'
)

// NullToken is the raw form of a null entry.
const NullToken = string(Null)

func isReserved(c byte) bool {
	switch c {
	case EscapeChar, DoubleQuote, Null, Delim, NameValueSep, ActualReturn:
		return true
	}
	return false
}
