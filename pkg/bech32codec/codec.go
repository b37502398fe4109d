// Package bech32codec provides generic bech32 encoding and decoding between
// raw bytes and checksummed address strings. It carries no blockchain
// semantics; callers interpret the decoded payload themselves.
package bech32codec

import (
	"errors"
	"fmt"

	"github.com/cosmos/btcutil/bech32"
)

const (
	// MaxAddressLength is the decode length limit. Cosmos chains allow
	// addresses longer than the 90 characters of classic bech32, so we use
	// the same relaxed limit as the cosmos-sdk.
	MaxAddressLength = 1023
)

var (
	// ErrEmptyPrefix means an encode was attempted with an empty prefix.
	ErrEmptyPrefix = errors.New("bech32 prefix cannot be empty")

	// ErrIllegalPrefixChar means a prefix contains characters outside the
	// lowercase alphanumeric set used by chain prefixes.
	ErrIllegalPrefixChar = errors.New("bech32 prefix contains illegal characters")

	// ErrTooLong means the encoded string would exceed MaxAddressLength and
	// could never be decoded again.
	ErrTooLong = errors.New("bech32 string exceeds maximum length")
)

// ValidatePrefix reports whether prefix is usable as a bech32 human-readable
// part: non-empty, lowercase letters and digits only.
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return ErrEmptyPrefix
	}
	for _, c := range prefix {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return fmt.Errorf("%w: %q", ErrIllegalPrefixChar, prefix)
		}
	}
	return nil
}

// Encode regroups payload from 8-bit bytes into 5-bit groups (padding the
// final group) and encodes it as prefix + "1" + data + checksum.
func Encode(prefix string, payload []byte) (string, error) {
	if err := ValidatePrefix(prefix); err != nil {
		return "", err
	}
	data5, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("regrouping payload for prefix %q: %w", prefix, err)
	}
	// prefix + separator + data + 6 checksum characters
	if encodedLen := len(prefix) + 1 + len(data5) + 6; encodedLen > MaxAddressLength {
		return "", fmt.Errorf("%w: %d characters, limit is %d", ErrTooLong, encodedLen, MaxAddressLength)
	}
	encoded, err := bech32.Encode(prefix, data5)
	if err != nil {
		return "", fmt.Errorf("encoding bech32 failed: %w", err)
	}
	return encoded, nil
}

// Decode splits address at the separator, validates charset and checksum and
// returns the prefix together with the raw 5-bit groups. Callers that need
// bytes regroup with ConvertBits(data, 5, 8, false).
func Decode(address string) (string, []byte, error) {
	prefix, data5, err := bech32.Decode(address, MaxAddressLength)
	if err != nil {
		return "", nil, fmt.Errorf("decoding bech32 failed: %w", err)
	}
	return prefix, data5, nil
}

// ConvertBits regroups data from fromBits-wide groups to toBits-wide groups.
// With pad=false any non-zero leftover bits are rejected, which is the mode
// used when recovering bytes from a decoded address.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	return bech32.ConvertBits(data, fromBits, toBits, pad)
}

// IsChecksumError reports whether err is a bech32 checksum verification
// failure.
func IsChecksumError(err error) bool {
	var checksumErr bech32.ErrInvalidChecksum
	return errors.As(err, &checksumErr)
}

// IsCharsetError reports whether err was caused by characters outside the
// bech32 charset, including mixed-case strings.
func IsCharsetError(err error) bool {
	var (
		charsetErr   bech32.ErrNonCharsetChar
		characterErr bech32.ErrInvalidCharacter
		mixedErr     bech32.ErrMixedCase
	)
	return errors.As(err, &charsetErr) || errors.As(err, &characterErr) || errors.As(err, &mixedErr)
}
