package abv

import (
	"fmt"

	"github.com/abvote/abv/group"
)

// AggregateVoteSum folds one verified ballot into the running tally and
// returns the new tally, leaving both inputs unchanged. A nil (or blank)
// tally is initialized with the identity ballot for the blank slot and for
// every configured candidate; a candidate missing from either side
// contributes the identity. Aggregation is commutative and associative, so
// tallies are bitwise identical regardless of submission order.
//
// Callers must verify ballots with VerifyVoteRequest before aggregating
// them, and must not fold into the same tally from multiple goroutines.
func AggregateVoteSum(g group.Group, params *SystemParameters,
	part *VoteStorage, sum *VoteStorage) (*VoteStorage, error) {
	if params == nil || part == nil {
		return nil, fmt.Errorf("missing ballot: %w", ErrDecode)
	}
	if sum == nil || len(sum.BlankBallot.Ciphertext1) == 0 {
		sum = emptyVoteSum(g, params)
	}

	out := &VoteStorage{
		VotedBallot: make([]CandidateBallot, 0, len(params.Candidates)),
	}

	blank, err := addBallots(g, sum.BlankBallot, part.BlankBallot)
	if err != nil {
		return nil, err
	}
	out.BlankBallot = blank

	for _, candidate := range params.Candidates {
		folded, err := addBallots(g,
			ballotFor(g, sum.VotedBallot, candidate),
			ballotFor(g, part.VotedBallot, candidate))
		if err != nil {
			return nil, err
		}
		out.VotedBallot = append(out.VotedBallot, CandidateBallot{
			Candidate: candidate,
			Ballot:    folded,
		})
	}
	return out, nil
}

// emptyVoteSum seeds a fresh tally: identity blank ballot and one identity
// ballot per configured candidate, in configured order.
func emptyVoteSum(g group.Group, params *SystemParameters) *VoteStorage {
	sum := &VoteStorage{
		BlankBallot: IdentityBallot(g),
		VotedBallot: make([]CandidateBallot, 0, len(params.Candidates)),
	}
	for _, candidate := range params.Candidates {
		sum.VotedBallot = append(sum.VotedBallot, CandidateBallot{
			Candidate: candidate,
			Ballot:    IdentityBallot(g),
		})
	}
	return sum
}

// addBallots adds two ballots component-wise and re-encodes canonically.
func addBallots(g group.Group, a, b Ballot) (Ballot, error) {
	c1a, err := decodePoint(g, a.Ciphertext1)
	if err != nil {
		return Ballot{}, err
	}
	c2a, err := decodePoint(g, a.Ciphertext2)
	if err != nil {
		return Ballot{}, err
	}
	c1b, err := decodePoint(g, b.Ciphertext1)
	if err != nil {
		return Ballot{}, err
	}
	c2b, err := decodePoint(g, b.Ciphertext2)
	if err != nil {
		return Ballot{}, err
	}
	return Ballot{
		Ciphertext1: encodePoint(c1a.Add(c1a, c1b)),
		Ciphertext2: encodePoint(c2a.Add(c2a, c2b)),
	}, nil
}

// AggregateDecryptedPartSum folds one counting authority's partial
// decryptions into the combined decryption sum and returns the new sum. The
// per-slot equality proofs are not carried into the sum; they are checked
// per authority by VerifyCountRequest.
func AggregateDecryptedPartSum(g group.Group, params *SystemParameters,
	part *DecryptedResultPartStorage, sum *DecryptedResultPartStorage) (*DecryptedResultPartStorage, error) {
	if params == nil || part == nil {
		return nil, fmt.Errorf("missing decrypted part: %w", ErrDecode)
	}
	if sum == nil || len(sum.BlankPart.C2R) == 0 {
		sum = emptyDecryptedSum(g, params)
	}

	out := &DecryptedResultPartStorage{
		CandidatePart: make([]CandidatePart, 0, len(params.Candidates)),
	}

	blank, err := addCountingParts(g, sum.BlankPart, part.BlankPart)
	if err != nil {
		return nil, err
	}
	out.BlankPart = blank

	for _, candidate := range params.Candidates {
		folded, err := addCountingParts(g,
			countingPartFor(g, sum.CandidatePart, candidate),
			countingPartFor(g, part.CandidatePart, candidate))
		if err != nil {
			return nil, err
		}
		out.CandidatePart = append(out.CandidatePart, CandidatePart{
			Candidate: candidate,
			Part:      folded,
		})
	}
	return out, nil
}

func emptyDecryptedSum(g group.Group, params *SystemParameters) *DecryptedResultPartStorage {
	id := encodePoint(g.Identity())
	sum := &DecryptedResultPartStorage{
		BlankPart:     CountingPart{C2R: id},
		CandidatePart: make([]CandidatePart, 0, len(params.Candidates)),
	}
	for _, candidate := range params.Candidates {
		sum.CandidatePart = append(sum.CandidatePart, CandidatePart{
			Candidate: candidate,
			Part:      CountingPart{C2R: id},
		})
	}
	return sum
}

func addCountingParts(g group.Group, a, b CountingPart) (CountingPart, error) {
	ra, err := decodePoint(g, a.C2R)
	if err != nil {
		return CountingPart{}, err
	}
	rb, err := decodePoint(g, b.C2R)
	if err != nil {
		return CountingPart{}, err
	}
	return CountingPart{C2R: encodePoint(ra.Add(ra, rb))}, nil
}
