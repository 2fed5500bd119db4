package icp

import (
	"errors"
	"fmt"
)

// error taxonomy
var (
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidInput    = errors.New("invalid input")
)

// missing argument causes, all of them satisfy errors.Is(err, ErrMissingArgument)
var (
	ErrMissingPrincipal = fmt.Errorf("%w: please provide principalID", ErrMissingArgument)
	ErrMissingAccountID = fmt.Errorf("%w: please provide accountID", ErrMissingArgument)
)

// invalid input causes, all of them satisfy errors.Is(err, ErrInvalidInput)
var (
	ErrInvalidBase32     = wrapInvalid("invalid base32 principal")
	ErrPrincipalTooShort = wrapInvalid("principal is shorter than its checksum")
	ErrPrincipalTooLong  = wrapInvalid("principal is too long")
	ErrChecksumMismatch  = wrapInvalid("checksum mismatch")
	ErrInvalidSubaccount = wrapInvalid("invalid subaccount")
	ErrInvalidAccountID  = wrapInvalid("invalid account identifier")
)

func wrapInvalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
