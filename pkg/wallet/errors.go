package wallet

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the codespace for wallet conversion errors.
const ModuleName = "wallet"

// Conversion errors. Every error wraps the offending input so callers can
// surface it directly as a diagnostic.
var (
	ErrInvalidEvmAddress     = errorsmod.Register(ModuleName, 2, "invalid EVM address")
	ErrUnrecognizedFormat    = errorsmod.Register(ModuleName, 3, "unrecognized address format")
	ErrInvalidBech32         = errorsmod.Register(ModuleName, 4, "invalid bech32 address")
	ErrInvalidBech32Checksum = errorsmod.Register(ModuleName, 5, "invalid bech32 checksum")
	ErrInvalidBech32Charset  = errorsmod.Register(ModuleName, 6, "invalid bech32 character")
	ErrPrefixMismatch        = errorsmod.Register(ModuleName, 7, "bech32 prefix mismatch")
	ErrInvalidAddressLength  = errorsmod.Register(ModuleName, 8, "invalid address length")
	ErrInvalidPrefix         = errorsmod.Register(ModuleName, 9, "invalid bech32 prefix")
	ErrBatchTooLarge         = errorsmod.Register(ModuleName, 10, "batch too large")
	ErrEmptyBatch            = errorsmod.Register(ModuleName, 11, "empty batch")
)
