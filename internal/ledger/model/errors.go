package model

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord marks raw records with missing or unparseable fields.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrAddressFormat marks addresses that cannot be canonicalized.
	ErrAddressFormat = errors.New("invalid address format")
	// ErrUnsupportedChain is returned for chain/network pairs without a profile.
	ErrUnsupportedChain = errors.New("unsupported chain")
)

// MalformedRecordError describes a raw record rejected at the ingestion boundary.
type MalformedRecordError struct {
	Index int
	TxID  string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	if e.TxID == "" {
		return fmt.Sprintf("record %d: %v: %v", e.Index, ErrMalformedRecord, e.Err)
	}
	return fmt.Sprintf("record %d (%s): %v: %v", e.Index, e.TxID, ErrMalformedRecord, e.Err)
}

func (e *MalformedRecordError) Unwrap() []error {
	return []error{ErrMalformedRecord, e.Err}
}

// AddressFormatError describes an address the chain canonicalizer rejected.
type AddressFormatError struct {
	Chain   Chain
	Address string
	Err     error
}

func (e *AddressFormatError) Error() string {
	return fmt.Sprintf("%s address %q: %v: %v", e.Chain, e.Address, ErrAddressFormat, e.Err)
}

func (e *AddressFormatError) Unwrap() []error {
	return []error{ErrAddressFormat, e.Err}
}
