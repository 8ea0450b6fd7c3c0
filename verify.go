package abv

import (
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/abvote/abv/group"
	"github.com/abvote/abv/zkp"
)

// VerifyVoteRequest validates one voter's full submission against the
// election parameters: the submission signature, the batched range proof
// bounding every ballot value, the per-candidate format proofs and the
// budget sum proof, in that order, short-circuiting on the first failure.
// publicKey is the voter's secp256k1 public key in compressed or
// uncompressed form.
//
// A malformed encoding anywhere aborts with ErrDecode before the remaining
// checks run; an invalid signature or proof rejects with ErrVerify.
func VerifyVoteRequest(g group.Group, params *SystemParameters,
	request *VoteRequest, publicKey []byte) (bool, error) {
	if params == nil || request == nil {
		return false, fmt.Errorf("missing request: %w", ErrDecode)
	}

	pollPoint, err := decodePoint(g, params.PollPoint)
	if err != nil {
		return false, err
	}

	// 1. The signature binds the submission to the voter's registered key.
	// The signed message is the hash of the blank ballot's two components in
	// fixed order.
	blank := request.Vote.BlankBallot
	digest := ethcrypto.Keccak256(blank.Ciphertext1, blank.Ciphertext2)
	if !verifySignature(publicKey, digest, request.Vote.Signature) {
		return false, fmt.Errorf("signature check: %w", ErrVerify)
	}

	// 2. The batched range proof bounds every vote value, including the
	// rest ballot, to [0, 2^RangeBits). This is what rules out negative and
	// overflowing votes.
	commitments := make([]group.Element, 0, len(request.Vote.VotedBallot)+1)
	votedSum := g.Identity()
	for _, pair := range request.Vote.VotedBallot {
		c1, err := decodePoint(g, pair.Ballot.Ciphertext1)
		if err != nil {
			return false, err
		}
		commitments = append(commitments, c1)
		votedSum.Add(votedSum, c1)
	}
	restC1, err := decodePoint(g, request.Vote.RestBallot.Ciphertext1)
	if err != nil {
		return false, err
	}
	commitments = append(commitments, restC1)
	commitments = PadCommitments(g, commitments)

	ok, err := zkp.VerifyRangeBatch(g, commitments, request.RangeProof,
		params.RangeBits, g.Generator(), pollPoint)
	if err != nil {
		return false, fmt.Errorf("range proof: %w", ErrDecode)
	}
	if !ok {
		return false, fmt.Errorf("range proof: %w", ErrVerify)
	}

	// 3. Every supplied format proof must match its candidate's ballot. A
	// candidate without a ballot entry is checked against the identity
	// ballot.
	g2 := BasepointG2(g)
	for _, cp := range request.BallotProofs {
		ballot := ballotFor(g, request.Vote.VotedBallot, cp.Candidate)
		c1, err := decodePoint(g, ballot.Ciphertext1)
		if err != nil {
			return false, err
		}
		c2, err := decodePoint(g, ballot.Ciphertext2)
		if err != nil {
			return false, err
		}
		ok, err := zkp.VerifyFormatProof(g, c1, c2, cp.FormatProof,
			g.Generator(), g2, pollPoint)
		if err != nil {
			return false, fmt.Errorf("format proof for %q: %w", cp.Candidate, ErrDecode)
		}
		if !ok {
			return false, fmt.Errorf("format proof for %q: %w", cp.Candidate, ErrVerify)
		}
	}

	// 4. Conservation of the budget: votes cast plus the rest equal the
	// blank ballot.
	blankC1, err := decodePoint(g, blank.Ciphertext1)
	if err != nil {
		return false, err
	}
	ok, err = zkp.VerifySumRelationship(g, votedSum, restC1, blankC1,
		request.SumBalanceProof, g.Generator(), pollPoint)
	if err != nil {
		return false, fmt.Errorf("sum balance proof: %w", ErrDecode)
	}
	if !ok {
		return false, fmt.Errorf("sum balance proof: %w", ErrVerify)
	}
	return true, nil
}

// verifySignature checks a secp256k1 signature over the digest, accepting
// the 65-byte [R || S || V] form produced by signing as well as the plain
// 64-byte [R || S] form.
func verifySignature(publicKey, digest, signature []byte) bool {
	if len(signature) == 65 {
		signature = signature[:64]
	}
	if len(signature) != 64 {
		return false
	}
	return ethcrypto.VerifySignature(publicKey, digest, signature)
}
