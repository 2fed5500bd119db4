package icp

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// AccountIDLength length of account identifier
	AccountIDLength = ChecksumLength + sha256.Size224

	// domain separator: len("account-id") followed by "account-id"
	accountIDDomainSeparator = "\x0aaccount-id"
)

// AccountIdentifier crc32(hash) || hash, where
// hash = sha224(domain separator || principal || subaccount)
type AccountIdentifier [AccountIDLength]byte

// NewAccountIdentifier derive account identifier of principal and subaccount
func NewAccountIdentifier(p Principal, sub Subaccount) (id AccountIdentifier) {
	hasher := sha256.New224()
	hasher.Write([]byte(accountIDDomainSeparator))
	hasher.Write(p)
	hasher.Write(sub[:])
	hash := hasher.Sum(nil)

	copy(id[:ChecksumLength], checksumBytes(hash))
	copy(id[ChecksumLength:], hash)
	return id
}

// AccountIdentifierFromHex parse hex account identifier and verify its checksum
func AccountIdentifierFromHex(s string) (id AccountIdentifier, err error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if len(s) != 2*AccountIDLength {
		return id, fmt.Errorf("%w: hex length %d, expect %d", ErrInvalidAccountID, len(s), 2*AccountIDLength)
	}
	bs, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("%w: %v", ErrInvalidAccountID, err)
	}
	copy(id[:], bs)
	if !id.IsValid() {
		return id, fmt.Errorf("%w: account id %v has checksum %x, expect %x",
			ErrChecksumMismatch, s, id.Checksum(), checksumBytes(id.Hash()))
	}
	return id, nil
}

// Checksum the crc32 prefix
func (id AccountIdentifier) Checksum() []byte {
	return id[:ChecksumLength:ChecksumLength]
}

// Hash the sha224 digest
func (id AccountIdentifier) Hash() []byte {
	return id[ChecksumLength:]
}

// IsValid whether the crc32 prefix matches the digest
func (id AccountIdentifier) IsValid() bool {
	return bytes.Equal(id.Checksum(), checksumBytes(id.Hash()))
}

// Hex lowercase hex, 64 characters
func (id AccountIdentifier) Hex() string {
	return hex.EncodeToString(id[:])
}

func (id AccountIdentifier) String() string {
	return id.Hex()
}

// DeriveAccountID derive the default subaccount identifier of principal text
func DeriveAccountID(principalText string) (string, error) {
	return DeriveAccountIDWithSubaccount(principalText, DefaultSubaccount())
}

// DeriveAccountIDWithSubaccount derive the account identifier of principal text and subaccount
func DeriveAccountIDWithSubaccount(principalText string, sub Subaccount) (string, error) {
	p, err := PrincipalFromText(principalText)
	if err != nil {
		return "", err
	}
	return NewAccountIdentifier(p, sub).Hex(), nil
}
