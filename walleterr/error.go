// Copyright (c) 2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package walleterr defines the error kinds surfaced by the wallet engine.
package walleterr

import "fmt"

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific WalletError.
const (
	// ErrInvalidMnemonic indicates a BIP-39 mnemonic failed validation at
	// construction time.
	ErrInvalidMnemonic ErrorCode = iota

	// ErrInvalidPath indicates a derivation path failed BIP-32 syntax
	// checks.
	ErrInvalidPath

	// ErrDerivationOutOfRange indicates a derived scalar was zero or
	// exceeded the curve order.
	ErrDerivationOutOfRange

	// ErrUnsupportedBip indicates config.bip was not 44 or 84.
	ErrUnsupportedBip

	// ErrInvalidConfig indicates a WalletManager configuration field
	// (other than bip) failed validation, e.g. an unrecognized network.
	ErrInvalidConfig

	// ErrInvalidRecipient indicates a recipient address could not be
	// decoded for the configured network.
	ErrInvalidRecipient

	// ErrBelowDustLimit indicates a requested output value did not
	// exceed the dust limit.
	ErrBelowDustLimit

	// ErrNoUnspentOutputs indicates the source address has no spendable
	// outputs.
	ErrNoUnspentOutputs

	// ErrInsufficientBalance indicates the selected UTXO set cannot
	// cover the requested value plus fee.
	ErrInsufficientBalance

	// ErrMalformedSignature indicates a signature string could not be
	// parsed as base64-encoded DER.
	ErrMalformedSignature

	// ErrUnsupportedOperation indicates a capability the account does
	// not implement (transfer, getTokenBalance).
	ErrUnsupportedOperation

	// ErrDisposedAccount indicates an operation was attempted on an
	// account after Dispose.
	ErrDisposedAccount

	// ErrDisposedWallet indicates an operation was attempted on a
	// wallet manager after Dispose.
	ErrDisposedWallet

	// ErrNetworkFailure wraps any error surfaced by the Electrum client
	// or an auxiliary HTTP endpoint.
	ErrNetworkFailure
)

var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidMnemonic:      "ErrInvalidMnemonic",
	ErrInvalidPath:          "ErrInvalidPath",
	ErrDerivationOutOfRange: "ErrDerivationOutOfRange",
	ErrUnsupportedBip:       "ErrUnsupportedBip",
	ErrInvalidConfig:        "ErrInvalidConfig",
	ErrInvalidRecipient:     "ErrInvalidRecipient",
	ErrBelowDustLimit:       "ErrBelowDustLimit",
	ErrNoUnspentOutputs:     "ErrNoUnspentOutputs",
	ErrInsufficientBalance:  "ErrInsufficientBalance",
	ErrMalformedSignature:   "ErrMalformedSignature",
	ErrUnsupportedOperation: "ErrUnsupportedOperation",
	ErrDisposedAccount:      "ErrDisposedAccount",
	ErrDisposedWallet:       "ErrDisposedWallet",
	ErrNetworkFailure:       "ErrNetworkFailure",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// WalletError provides a single error type for every failure the wallet
// engine can surface. It is similar in shape to wtxmgr.TxStoreError.
type WalletError struct {
	ErrorCode   ErrorCode // Describes the kind of error.
	Description string    // Human readable description of the issue.
	Err         error     // Underlying error, if any.
}

// Error satisfies the error interface.
func (e *WalletError) Error() string {
	if e.Err != nil {
		return e.Description + ": " + e.Err.Error()
	}
	return e.Description
}

// Unwrap allows errors.Is/errors.As to see through to the underlying cause.
func (e *WalletError) Unwrap() error {
	return e.Err
}

// New creates a WalletError given a set of arguments.
func New(code ErrorCode, desc string) *WalletError {
	return &WalletError{ErrorCode: code, Description: desc}
}

// Wrap creates a WalletError that carries an underlying cause, used for
// ErrNetworkFailure(cause) style errors.
func Wrap(code ErrorCode, desc string, err error) *WalletError {
	return &WalletError{ErrorCode: code, Description: desc, Err: err}
}

// Is reports whether err is a *WalletError with the given code. It lets
// callers branch on error kind without string matching.
func Is(err error, code ErrorCode) bool {
	we, ok := err.(*WalletError)
	if !ok {
		return false
	}
	return we.ErrorCode == code
}

// UnsupportedOperation builds the ErrUnsupportedOperation error for a named
// capability, matching spec.md's UnsupportedOperation(name) shape.
func UnsupportedOperation(name string) *WalletError {
	return New(ErrUnsupportedOperation, fmt.Sprintf("unsupported operation: %s", name))
}

// NetworkFailure wraps a transport-level cause from the Electrum client or
// an auxiliary HTTP endpoint.
func NetworkFailure(cause error) *WalletError {
	return Wrap(ErrNetworkFailure, "network failure", cause)
}
