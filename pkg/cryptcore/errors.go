package cryptcore

import (
	"errors"
	"fmt"
)

// Error kinds returned by the crypto core. Internal packages wrap them with
// context, so callers should test with errors.Is.
var (
	ErrDivisionByZero           = errors.New("division by zero")
	ErrInvalidNumeral           = errors.New("invalid numeral")
	ErrInvalidSignatureEncoding = errors.New("invalid signature encoding")
	ErrModulusMismatch          = errors.New("modulus mismatch")
	ErrNonResidue               = errors.New("quadratic non-residue")
	ErrInvalidPublicKey         = errors.New("invalid public key")
	ErrUnknownCurve             = errors.New("unknown curve")
	ErrDegenerateSignature      = errors.New("degenerate signature value")
)

// OpError records the operation that failed together with the underlying
// error kind.
type OpError struct {
	Op     string
	Detail string
	Err    error
}

func (e *OpError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// NewOpError creates a new OpError.
func NewOpError(op, detail string, err error) *OpError {
	return &OpError{
		Op:     op,
		Detail: detail,
		Err:    err,
	}
}
