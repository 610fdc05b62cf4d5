// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError
type TransferError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountAlreadyExists         = ExistsError("account already exists")
	ErrAccountNotFound              = NotFoundError("account not found")
	ErrAddressCollision             = ExistsError("address is in use by a different account type")
	ErrAddressDerivation            = ProcessError("unable to find a viable program address")
	ErrAddressOnCurve               = InvalidError("program address must not be on the ed25519 curve")
	ErrAirdropDisabled              = ProcessError("airdrop is only available on test chains")
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrAuthorisationFailure         = AuthorisationError("signer is not authorised")
	ErrBalanceOverflow              = TransferError("balance would overflow")
	ErrCannotDecodeAccount          = InvalidError("cannot decode account")
	ErrCannotDecodePrivateKey       = InvalidError("cannot decode private key")
	ErrCannotDecodeSeed             = InvalidError("cannot decode seed")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrChecksumMismatch             = ProcessError("checksum mismatch")
	ErrDataTooLarge                 = LengthError("data exceeds allocated account size")
	ErrInsufficientFunds            = TransferError("insufficient funds")
	ErrInvalidAccountData           = RecordError("account data does not match the expected type")
	ErrInvalidAmount                = InvalidError("amount should be more than zero")
	ErrInvalidChain                 = InvalidError("invalid chain")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidCursor                = InvalidError("invalid cursor")
	ErrInvalidEventRecord           = RecordError("invalid event record")
	ErrInvalidIpAddress             = InvalidError("invalid IP address")
	ErrInvalidKeyLength             = LengthError("invalid key length")
	ErrInvalidLoggerChannel         = ProcessError("invalid logger channel")
	ErrInvalidPortNumber            = InvalidError("invalid port number")
	ErrInvalidSeedHeader            = InvalidError("invalid seed header")
	ErrInvalidSeedLength            = LengthError("invalid seed length")
	ErrInvalidSeeds                 = LengthError("program address seeds are too long or too many")
	ErrInvalidSignature             = InvalidError("invalid signature")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNoFundsForWithdrawal         = ProcessError("donation bank is empty")
	ErrNotInitialised               = NotFoundError("not initialised")
	ErrNotPrivateKey                = InvalidError("not a private key")
	ErrRateLimiting                 = InvalidError("rate limiting")
	ErrTransactionNotStarted        = ProcessError("transaction not started")
)

// the error interface methods
func (e GenericError) Error() string       { return string(e) }
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }
func (e TransferError) Error() string      { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }
func IsErrTransfer(e error) bool      { _, ok := e.(TransferError); return ok }
