package abv

import (
	"math/big"

	"github.com/abvote/abv/group"
	"github.com/abvote/abv/zkp"
)

// Ballot is one encrypted ballot slot: Ciphertext1 commits to the vote value
// under the poll point, Ciphertext2 carries the encryption randomness on the
// G2 basepoint for threshold decryption. Ballots combine by group addition
// only; plaintext values are never materialized before decryption.
type Ballot struct {
	Ciphertext1 []byte `json:"c1"`
	Ciphertext2 []byte `json:"c2"`
}

// IdentityBallot returns the zero-valued ballot: both components are the
// group identity. It is the default for candidates missing from a ballot
// list and the seed of a fresh tally.
func IdentityBallot(g group.Group) Ballot {
	id := encodePoint(g.Identity())
	return Ballot{Ciphertext1: id, Ciphertext2: id}
}

// CandidateBallot pairs a candidate identifier with its ballot slot. A list
// holds at most one entry per candidate.
type CandidateBallot struct {
	Candidate string `json:"candidate"`
	Ballot    Ballot `json:"ballot"`
}

// VoteStorage holds one voter's encrypted choices, or an aggregated tally
// over many voters: the blank ballot (the total voting budget), the rest
// ballot (the unused budget, absent on tallies) and the per-candidate voted
// ballots. The signature authenticates a voter submission and is empty on
// tallies.
type VoteStorage struct {
	Signature   []byte            `json:"signature,omitempty"`
	BlankBallot Ballot            `json:"blankBallot"`
	RestBallot  Ballot            `json:"restBallot,omitempty"`
	VotedBallot []CandidateBallot `json:"votedBallot"`
}

// ballotFor returns the ballot recorded for the candidate, or the identity
// ballot when the candidate has no entry.
func ballotFor(g group.Group, list []CandidateBallot, candidate string) Ballot {
	for _, pair := range list {
		if pair.Candidate == candidate {
			return pair.Ballot
		}
	}
	return IdentityBallot(g)
}

// CandidateFormatProof pairs a candidate identifier with the format proof of
// that candidate's ballot.
type CandidateFormatProof struct {
	Candidate   string           `json:"candidate"`
	FormatProof *zkp.FormatProof `json:"formatProof"`
}

// VoteRequest is one voter's full submission: the signed encrypted ballots
// plus the batched range proof, the per-candidate format proofs and the
// budget sum proof. Created once by a voter client, consumed exactly once by
// VerifyVoteRequest, never mutated.
type VoteRequest struct {
	Vote            VoteStorage            `json:"vote"`
	RangeProof      *zkp.RangeProof        `json:"rangeProof"`
	BallotProofs    []CandidateFormatProof `json:"ballotProofs"`
	SumBalanceProof *zkp.SumProof          `json:"sumBalanceProof"`
}

// CountingPart is one counting authority's partial decryption of a single
// slot: C2R is the share applied to the slot's Ciphertext2, and the equality
// proof ties it to the authority's public share.
type CountingPart struct {
	C2R           []byte             `json:"c2r"`
	EqualityProof *zkp.EqualityProof `json:"equalityProof,omitempty"`
}

// identityCountingPart is the default for a candidate missing from a count
// request: an all-identity contribution that generically fails the equality
// check instead of being special-cased.
func identityCountingPart(g group.Group) CountingPart {
	id := encodePoint(g.Identity())
	return CountingPart{
		C2R: id,
		EqualityProof: &zkp.EqualityProof{
			T1: id,
			T2: id,
			Z:  new(big.Int),
		},
	}
}

// CandidatePart pairs a candidate identifier with a counting part.
type CandidatePart struct {
	Candidate string       `json:"candidate"`
	Part      CountingPart `json:"part"`
}

// DecryptedResultPartStorage holds one counting authority's partial
// decryptions for every slot, or the combined sum over all authorities.
type DecryptedResultPartStorage struct {
	BlankPart     CountingPart    `json:"blankPart"`
	CandidatePart []CandidatePart `json:"candidateParts"`
}

// countingPartFor returns the counting part recorded for the candidate, or
// the identity part when absent.
func countingPartFor(g group.Group, list []CandidatePart, candidate string) CountingPart {
	for _, pair := range list {
		if pair.Candidate == candidate {
			return pair.Part
		}
	}
	return identityCountingPart(g)
}

// ResultEntry is one disclosed result line: the reserved total-ballots key
// or a candidate identifier, with the plaintext count.
type ResultEntry struct {
	Key   string `json:"key"`
	Value int64  `json:"value"`
}

// VoteResultStorage is the disclosed, human-readable election result.
type VoteResultStorage struct {
	Result []ResultEntry `json:"result"`
}

// resultValue returns the disclosed value under key, defaulting to 0 when
// the key is absent.
func resultValue(result *VoteResultStorage, key string) int64 {
	if result == nil {
		return 0
	}
	for _, entry := range result.Result {
		if entry.Key == key {
			return entry.Value
		}
	}
	return 0
}
