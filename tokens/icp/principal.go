package icp

import (
	"bytes"
	"encoding/base32"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash/crc32"
	"strings"
)

const (
	// ChecksumLength length of the crc32 prefix of principal and account id
	ChecksumLength = 4

	textGroupSize = 5
)

var (
	// lowercase rfc4648 alphabet, no padding
	textEncoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

	anonymousBody = []byte{0x04}
)

// Principal raw principal bytes (without the embedded checksum)
type Principal []byte

// PrincipalFromText decode principal text. The embedded checksum is discarded unchecked.
func PrincipalFromText(text string) (Principal, error) {
	raw, err := decodePrincipalText(text)
	if err != nil {
		return nil, err
	}
	return Principal(raw[ChecksumLength:]), nil
}

// PrincipalFromTextStrict decode principal text and verify the embedded checksum
func PrincipalFromTextStrict(text string) (Principal, error) {
	raw, err := decodePrincipalText(text)
	if err != nil {
		return nil, err
	}
	p := Principal(raw[ChecksumLength:])
	if !bytes.Equal(raw[:ChecksumLength], p.checksum()) {
		return nil, fmt.Errorf("%w: principal %v has embedded checksum %x, expect %x",
			ErrChecksumMismatch, text, raw[:ChecksumLength], p.checksum())
	}
	return p, nil
}

// VerifyPrincipalChecksum report whether the embedded checksum of text matches its body
func VerifyPrincipalChecksum(text string) (bool, error) {
	raw, err := decodePrincipalText(text)
	if err != nil {
		return false, err
	}
	body := Principal(raw[ChecksumLength:])
	return bytes.Equal(raw[:ChecksumLength], body.checksum()), nil
}

// PrincipalFromHex build principal from raw body hex
func PrincipalFromHex(s string) (Principal, error) {
	bs, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return Principal(bs), nil
}

// decodePrincipalText strip hyphens, pad to a multiple of 8 and base32 decode
func decodePrincipalText(text string) ([]byte, error) {
	// the decoder silently skips '\r' and '\n', so check every byte here
	for i := 0; i < len(text); i++ {
		if !isPrincipalTextChar(text[i]) {
			return nil, fmt.Errorf("%w: illegal character %q at %d", ErrInvalidBase32, text[i], i)
		}
	}
	s := strings.ReplaceAll(text, "-", "")
	if pad := (len(s)+7)/8*8 - len(s); pad > 0 {
		s += strings.Repeat("=", pad)
	}
	raw, err := base32.StdEncoding.DecodeString(strings.ToUpper(s))
	if err != nil {
		return nil, fmt.Errorf("%w: malformed length or padding", ErrInvalidBase32)
	}
	if len(raw) < ChecksumLength {
		return nil, fmt.Errorf("%w: decoded %d bytes", ErrPrincipalTooShort, len(raw))
	}
	return raw, nil
}

func isPrincipalTextChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '2' && c <= '7':
		return true
	case c == '-', c == '=':
		return true
	}
	return false
}

// Bytes return raw principal bytes
func (p Principal) Bytes() []byte {
	return []byte(p)
}

// Hex return raw principal bytes in hex
func (p Principal) Hex() string {
	return hex.EncodeToString(p)
}

// IsAnonymous whether it's the anonymous principal
func (p Principal) IsAnonymous() bool {
	return bytes.Equal(p, anonymousBody)
}

// String canonical textual form, eg. 2vxsx-fae
func (p Principal) String() string {
	raw := make([]byte, 0, ChecksumLength+len(p))
	raw = append(raw, p.checksum()...)
	raw = append(raw, p...)
	encoded := textEncoding.EncodeToString(raw)

	var sb strings.Builder
	for i := 0; i < len(encoded); i += textGroupSize {
		if i > 0 {
			sb.WriteByte('-')
		}
		end := i + textGroupSize
		if end > len(encoded) {
			end = len(encoded)
		}
		sb.WriteString(encoded[i:end])
	}
	return sb.String()
}

func (p Principal) checksum() []byte {
	return checksumBytes(p)
}

func checksumBytes(data []byte) []byte {
	sum := make([]byte, ChecksumLength)
	binary.BigEndian.PutUint32(sum, crc32.ChecksumIEEE(data))
	return sum
}
