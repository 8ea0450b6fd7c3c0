// Package abv implements the verification and tally-aggregation core of an
// anonymous bounded voting protocol. An untrusted coordinator accepts
// encrypted ballots, folds them homomorphically into a tally, and a
// threshold group of counting authorities jointly decrypts only the
// aggregate; every step is checked here against zero-knowledge proofs so
// that no party needs to be trusted for correctness.
package abv

import "errors"

// ErrDecode reports byte input that cannot be parsed into a group element or
// proof record. Inputs are attacker-controlled: a decode failure aborts the
// current operation before any proof check runs.
var ErrDecode = errors.New("abv: malformed encoding")

// ErrVerify reports a well-formed but cryptographically invalid proof,
// signature or relationship. The submission is rejected; other submissions
// are unaffected.
var ErrVerify = errors.New("abv: verification failed")
