package schema

import (
	"regexp"
	"strconv"
	"strings"
)

// vectorToken matches the reserved vector syntax exactly: "vector[" + one
// or more digits + "]". No sign, no spaces, no trailing characters.
var vectorToken = regexp.MustCompile(`^vector\[\d+\]$`)

// arrayTokens maps the three reserved array tokens to their element kind.
var arrayTokens = map[string]Kind{
	"string[]":  KindString,
	"number[]":  KindNumber,
	"boolean[]": KindBoolean,
}

// IsVectorType reports whether token uses the reserved vector syntax.
func IsVectorType(token string) bool {
	return vectorToken.MatchString(token)
}

// VectorSize extracts the declared size from a token already known to
// match the vector syntax.
//
// The Atoi failure branch is unreachable for tokens accepted by
// IsVectorType; it is kept as an invariant guard for callers that skip
// the check.
func VectorSize(token string) (int, error) {
	digits := strings.TrimSuffix(strings.TrimPrefix(token, "vector["), "]")
	size, err := strconv.Atoi(digits)
	if err != nil {
		return 0, &InvalidVectorValueError{Token: token}
	}
	if size <= 0 {
		return 0, &InvalidVectorSizeError{Token: token, Size: size}
	}
	return size, nil
}

// IsArrayType reports whether token is one of the three reserved
// array-of-scalar tokens. Vector and scalar tokens are not arrays.
func IsArrayType(token string) bool {
	_, ok := arrayTokens[token]
	return ok
}

// ArrayElementKind returns the scalar element kind for a reserved array
// token. Callers must confirm the token with IsArrayType first; any other
// token yields the empty kind.
func ArrayElementKind(token string) Kind {
	return arrayTokens[token]
}
