package abv

import (
	"fmt"
	"math/big"

	"github.com/abvote/abv/group"
	"github.com/abvote/abv/zkp"
)

// VerifyCountRequest validates one counting authority's partial decryptions
// of the tally against its declared public share. The blank slot is checked
// first, then every configured candidate in order; the first slot whose
// equality proof fails rejects the whole request with (false, nil). A
// candidate missing from the request is checked as an all-identity
// contribution, which fails generically.
func VerifyCountRequest(g group.Group, params *SystemParameters,
	voteSum *VoteStorage, counterShare group.Element,
	request *DecryptedResultPartStorage) (bool, error) {
	if params == nil || voteSum == nil || request == nil {
		return false, fmt.Errorf("missing count request: %w", ErrDecode)
	}

	g2 := BasepointG2(g)

	blankC2, err := decodePoint(g, voteSum.BlankBallot.Ciphertext2)
	if err != nil {
		return false, err
	}
	ok, err := verifyCountingPart(g, counterShare, request.BlankPart, g2, blankC2)
	if err != nil || !ok {
		return false, err
	}

	for _, candidate := range params.Candidates {
		ballot := ballotFor(g, voteSum.VotedBallot, candidate)
		candidateC2, err := decodePoint(g, ballot.Ciphertext2)
		if err != nil {
			return false, err
		}
		part := countingPartFor(g, request.CandidatePart, candidate)
		ok, err := verifyCountingPart(g, counterShare, part, g2, candidateC2)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func verifyCountingPart(g group.Group, counterShare group.Element,
	part CountingPart, g2, target group.Element) (bool, error) {
	c2r, err := decodePoint(g, part.C2R)
	if err != nil {
		return false, err
	}
	ok, err := zkp.VerifyEqualityRelationship(g, counterShare, c2r,
		part.EqualityProof, g2, target)
	if err != nil {
		return false, fmt.Errorf("equality proof: %w", ErrDecode)
	}
	return ok, nil
}

// VerifyVoteResult validates the disclosed plaintext result against the
// aggregated tally and the combined decryption shares. For every slot the
// disclosed count v must satisfy c1 - c2r == v*G1; a key absent from the
// disclosed result defaults to 0. The tally space is bounded by the range
// proofs, which is what makes this discrete-logarithm equality check
// meaningful.
func VerifyVoteResult(g group.Group, params *SystemParameters,
	voteSum *VoteStorage, countSum *DecryptedResultPartStorage,
	result *VoteResultStorage) (bool, error) {
	if params == nil || voteSum == nil || countSum == nil {
		return false, fmt.Errorf("missing result request: %w", ErrDecode)
	}

	ok, err := verifyResultSlot(g, voteSum.BlankBallot, countSum.BlankPart,
		resultValue(result, TotalBallotsKey))
	if err != nil || !ok {
		return false, err
	}

	for _, candidate := range params.Candidates {
		ok, err := verifyResultSlot(g,
			ballotFor(g, voteSum.VotedBallot, candidate),
			countingPartFor(g, countSum.CandidatePart, candidate),
			resultValue(result, candidate))
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// verifyResultSlot checks c1 - c2r == value*G1 for one slot. The disclosed
// value is treated as an unsigned 64-bit quantity, so a negative disclosure
// cannot alias a small positive count.
func verifyResultSlot(g group.Group, ballot Ballot, part CountingPart, value int64) (bool, error) {
	c1, err := decodePoint(g, ballot.Ciphertext1)
	if err != nil {
		return false, err
	}
	c2r, err := decodePoint(g, part.C2R)
	if err != nil {
		return false, err
	}
	expected := g.Element().Subtract(c1, c2r)
	disclosed := g.Element().BaseScale(new(big.Int).SetUint64(uint64(value)))
	return expected.IsEqual(disclosed), nil
}
