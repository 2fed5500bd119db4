package icp

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// SubaccountLength length of subaccount
const SubaccountLength = 32

// Subaccount distinguish balances under one principal
type Subaccount [SubaccountLength]byte

// DefaultSubaccount the all zero subaccount
func DefaultSubaccount() Subaccount {
	return Subaccount{}
}

// SubaccountFromHex parse hex subaccount, shorter input is left padded with zeros
func SubaccountFromHex(s string) (sub Subaccount, err error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s) > 2*SubaccountLength {
		return sub, fmt.Errorf("%w: hex length %d exceeds %d", ErrInvalidSubaccount, len(s), 2*SubaccountLength)
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	bs, err := hex.DecodeString(s)
	if err != nil {
		return sub, fmt.Errorf("%w: %v", ErrInvalidSubaccount, err)
	}
	copy(sub[SubaccountLength-len(bs):], bs)
	return sub, nil
}

// SubaccountFromIndex big endian index in the last 8 bytes
func SubaccountFromIndex(index uint64) (sub Subaccount) {
	binary.BigEndian.PutUint64(sub[SubaccountLength-8:], index)
	return sub
}

// SubaccountFromPrincipal length prefixed principal bytes
func SubaccountFromPrincipal(p Principal) (sub Subaccount, err error) {
	if len(p) > SubaccountLength-1 {
		return sub, fmt.Errorf("%w: %d bytes can not fit in subaccount", ErrPrincipalTooLong, len(p))
	}
	sub[0] = byte(len(p))
	copy(sub[1:], p)
	return sub, nil
}

// IsDefault whether is the all zero subaccount
func (s Subaccount) IsDefault() bool {
	return s == Subaccount{}
}

// Hex return subaccount in hex
func (s Subaccount) Hex() string {
	return hex.EncodeToString(s[:])
}
