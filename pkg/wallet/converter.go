// Package wallet converts a single 20-byte account identifier between its
// EVM hex representation and arbitrary Cosmos bech32 representations. All
// conversions are pure re-encodings of the same bytes; no keys, signatures
// or network calls are involved.
package wallet

import (
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/injective-tools/injective-address-api/pkg/bech32codec"
)

const (
	// InjectivePrefix is the reserved bech32 prefix of the target chain.
	InjectivePrefix = "inj"

	// AddressByteLen is the only supported account identifier length.
	AddressByteLen = 20
)

var (
	evmAddressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

	// The {38,} lower bound is a loose heuristic carried over from observed
	// behavior, not an exact per-prefix length check. Structural validity is
	// decided by the checksum during decode.
	bech32AddressRegex = regexp.MustCompile(`^[a-z]+1[a-z0-9]{38,}$`)
)

// SourceType identifies the detected format of an input address.
type SourceType string

const (
	SourceEVM       SourceType = "evm"
	SourceInjective SourceType = "injective"
	SourceCosmos    SourceType = "cosmos"
)

// AddressFormat is the closed set of recognized address shapes. Prefix is
// empty for EVM addresses and holds the bech32 human-readable part otherwise.
type AddressFormat struct {
	Type   SourceType
	Prefix string
}

// ConversionResult carries both representations of one converted address.
// InjectiveAddress and EvmAddress always decode to the same 20 bytes.
type ConversionResult struct {
	Input             string     `json:"input_address"`
	InjectiveAddress  string     `json:"injective_address"`
	EvmAddress        string     `json:"evm_address"`
	SourceType        SourceType `json:"source_type"`
	SourceChainPrefix string     `json:"source_chain_prefix,omitempty"`
}

// DetectAddressType classifies address as EVM hex, Injective bech32 or
// foreign Cosmos bech32. The EVM pattern is checked first; the order is part
// of the contract.
func DetectAddressType(address string) (AddressFormat, error) {
	if evmAddressRegex.MatchString(address) {
		return AddressFormat{Type: SourceEVM}, nil
	}
	if bech32AddressRegex.MatchString(address) {
		prefix := address[:strings.Index(address, "1")]
		if prefix == InjectivePrefix {
			return AddressFormat{Type: SourceInjective, Prefix: InjectivePrefix}, nil
		}
		return AddressFormat{Type: SourceCosmos, Prefix: prefix}, nil
	}
	return AddressFormat{}, ErrUnrecognizedFormat.Wrapf(
		"%q: expected a 0x hex address or a bech32 address (e.g. inj1..., cosmos1..., osmo1...)", address)
}

// EvmToInjective converts an EVM hex address (0x...) to the equivalent
// Injective bech32 address (inj1...).
func EvmToInjective(hexAddress string) (string, error) {
	raw, err := evmToBytes(hexAddress)
	if err != nil {
		return "", err
	}
	encoded, err := bech32codec.Encode(InjectivePrefix, raw)
	if err != nil {
		return "", ErrInvalidBech32.Wrapf("failed to encode %q: %v", hexAddress, err)
	}
	return encoded, nil
}

// InjectiveToEvm converts an Injective bech32 address (inj1...) to a
// lowercase EVM hex address (0x...).
func InjectiveToEvm(injAddress string) (string, error) {
	raw, err := decodeBech32(injAddress, InjectivePrefix)
	if err != nil {
		return "", err
	}
	return bytesToEvm(raw), nil
}

// CosmosToInjective converts any Cosmos bech32 address (cosmos1..., osmo1...,
// terra1..., inj1...) to the equivalent Injective address. The source prefix
// is not constrained.
func CosmosToInjective(bech32Address string) (string, error) {
	raw, err := decodeBech32(bech32Address, "")
	if err != nil {
		return "", err
	}
	encoded, err := bech32codec.Encode(InjectivePrefix, raw)
	if err != nil {
		return "", ErrInvalidBech32.Wrapf("failed to encode %q: %v", bech32Address, err)
	}
	return encoded, nil
}

// InjectiveToCosmos re-encodes an Injective address under any other chain
// prefix, e.g. "cosmos" or "osmo".
func InjectiveToCosmos(injAddress, targetPrefix string) (string, error) {
	if err := bech32codec.ValidatePrefix(targetPrefix); err != nil {
		return "", ErrInvalidPrefix.Wrapf("%q: %v", targetPrefix, err)
	}
	raw, err := decodeBech32(injAddress, InjectivePrefix)
	if err != nil {
		return "", err
	}
	encoded, err := bech32codec.Encode(targetPrefix, raw)
	if err != nil {
		return "", ErrInvalidPrefix.Wrapf("failed to encode with prefix %q: %v", targetPrefix, err)
	}
	return encoded, nil
}

// ConvertAddress auto-detects the input format and returns both the
// Injective and the EVM representation. Bech32 input is decoded exactly once
// and both encodings are derived from the same byte buffer, so the two
// representations cannot drift apart.
func ConvertAddress(address string) (*ConversionResult, error) {
	format, err := DetectAddressType(address)
	if err != nil {
		return nil, err
	}

	result := &ConversionResult{
		Input:             address,
		SourceType:        format.Type,
		SourceChainPrefix: format.Prefix,
	}

	switch format.Type {
	case SourceEVM:
		injAddr, err := EvmToInjective(address)
		if err != nil {
			return nil, err
		}
		result.InjectiveAddress = injAddr
		result.EvmAddress = strings.ToLower(address)

	case SourceInjective:
		raw, err := decodeBech32(address, InjectivePrefix)
		if err != nil {
			return nil, err
		}
		result.InjectiveAddress = address
		result.EvmAddress = bytesToEvm(raw)

	case SourceCosmos:
		raw, err := decodeBech32(address, "")
		if err != nil {
			return nil, err
		}
		injAddr, err := bech32codec.Encode(InjectivePrefix, raw)
		if err != nil {
			return nil, ErrInvalidBech32.Wrapf("failed to encode %q: %v", address, err)
		}
		result.InjectiveAddress = injAddr
		result.EvmAddress = bytesToEvm(raw)
	}

	return result, nil
}

// evmToBytes validates the EVM pattern and parses the 40 hex digits into 20
// raw bytes.
func evmToBytes(hexAddress string) ([]byte, error) {
	if !evmAddressRegex.MatchString(hexAddress) {
		return nil, ErrInvalidEvmAddress.Wrapf("%q: must be 0x followed by 40 hex characters", hexAddress)
	}
	raw, err := hex.DecodeString(strings.ToLower(hexAddress[2:]))
	if err != nil {
		return nil, ErrInvalidEvmAddress.Wrapf("%q: %v", hexAddress, err)
	}
	return raw, nil
}

func bytesToEvm(raw []byte) string {
	return "0x" + hex.EncodeToString(raw)
}

// decodeBech32 decodes address to its raw 20 address bytes, optionally
// requiring a specific prefix. Checksum validation happens before the prefix
// comparison, so a corrupted address fails as a checksum error even when its
// prefix differs from expectedPrefix.
func decodeBech32(address, expectedPrefix string) ([]byte, error) {
	prefix, data5, err := bech32codec.Decode(address)
	if err != nil {
		switch {
		case bech32codec.IsChecksumError(err):
			return nil, ErrInvalidBech32Checksum.Wrapf("%q: %v", address, err)
		case bech32codec.IsCharsetError(err):
			return nil, ErrInvalidBech32Charset.Wrapf("%q: %v", address, err)
		default:
			return nil, ErrInvalidBech32.Wrapf("%q: %v", address, err)
		}
	}

	if expectedPrefix != "" && prefix != expectedPrefix {
		return nil, ErrPrefixMismatch.Wrapf("expected prefix %q, got %q in address %q", expectedPrefix, prefix, address)
	}

	raw, err := bech32codec.ConvertBits(data5, 5, 8, false)
	if err != nil {
		return nil, ErrInvalidBech32.Wrapf("%q: %v", address, err)
	}
	if len(raw) != AddressByteLen {
		return nil, ErrInvalidAddressLength.Wrapf("expected %d bytes, got %d for %q", AddressByteLen, len(raw), address)
	}
	return raw, nil
}
