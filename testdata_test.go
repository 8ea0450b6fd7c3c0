package abv

// Honest-election fixtures for the package tests: a single counting
// authority holding the full secret, and voters building well-formed
// requests. The poll point is the sum of the authorities' public shares, so
// with one authority it is that authority's share.

import (
	"crypto/ecdsa"
	"crypto/rand"
	"math/big"
	"testing"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/abvote/abv/group"
	"github.com/abvote/abv/util"
	"github.com/abvote/abv/zkp"
)

type testElection struct {
	g         group.Group
	g2        group.Element
	pollPoint group.Element
	params    *SystemParameters

	counterSecret *big.Int
	counterShare  group.Element

	signKey   *ecdsa.PrivateKey
	publicKey []byte
}

func newTestElection(t *testing.T, candidates []string, rangeBits int) *testElection {
	t.Helper()
	g := group.Ristretto255()
	g2 := BasepointG2(g)

	secret, err := rand.Int(rand.Reader, g.N())
	require.NoError(t, err)
	share := g.Element().Scale(g2, secret)

	params, err := NewSystemParameters(candidates, share, rangeBits)
	require.NoError(t, err)

	signKey, err := ethcrypto.GenerateKey()
	require.NoError(t, err)

	return &testElection{
		g:             g,
		g2:            g2,
		pollPoint:     share,
		params:        params,
		counterSecret: secret,
		counterShare:  share,
		signKey:       signKey,
		publicKey:     ethcrypto.CompressPubkey(&signKey.PublicKey),
	}
}

func (el *testElection) randomScalar(t *testing.T) *big.Int {
	t.Helper()
	s, err := rand.Int(rand.Reader, el.g.N())
	require.NoError(t, err)
	return s
}

// encryptValue builds one ballot slot for value v with fresh randomness.
func (el *testElection) encryptValue(t *testing.T, v *big.Int) (Ballot, *big.Int) {
	t.Helper()
	r := el.randomScalar(t)
	c1 := util.PedersenCommit(el.g, v, r, el.pollPoint)
	c2 := el.g.Element().Scale(el.g2, r)
	return Ballot{
		Ciphertext1: encodePoint(c1),
		Ciphertext2: encodePoint(c2),
	}, r
}

// buildVoteRequest assembles an honest submission: votes maps candidates to
// values, budget is the voter's blank ballot value, and the rest ballot
// takes up budget minus the votes cast.
func (el *testElection) buildVoteRequest(t *testing.T, votes map[string]int64, budget int64) *VoteRequest {
	t.Helper()
	n := el.g.N()
	gen1 := el.g.Generator()

	var vote VoteStorage
	values := make([]*big.Int, 0, len(el.params.Candidates)+1)
	blinds := make([]*big.Int, 0, len(el.params.Candidates)+1)
	votedValueSum := new(big.Int)
	votedBlindSum := new(big.Int)
	castSum := int64(0)

	var proofs []CandidateFormatProof
	for _, candidate := range el.params.Candidates {
		v := big.NewInt(votes[candidate])
		ballot, r := el.encryptValue(t, v)
		vote.VotedBallot = append(vote.VotedBallot, CandidateBallot{
			Candidate: candidate,
			Ballot:    ballot,
		})

		values = append(values, v)
		blinds = append(blinds, r)
		votedValueSum.Add(votedValueSum, v)
		votedBlindSum = new(big.Int).Mod(new(big.Int).Add(votedBlindSum, r), n)
		castSum += votes[candidate]

		formatProof, err := zkp.ProveFormat(el.g, v, r, gen1, el.g2, el.pollPoint)
		require.NoError(t, err)
		proofs = append(proofs, CandidateFormatProof{
			Candidate:   candidate,
			FormatProof: formatProof,
		})
	}

	restValue := big.NewInt(budget - castSum)
	restBallot, restBlind := el.encryptValue(t, restValue)
	vote.RestBallot = restBallot
	values = append(values, restValue)
	blinds = append(blinds, restBlind)

	blankBlind := new(big.Int).Mod(new(big.Int).Add(votedBlindSum, restBlind), n)
	blankC1 := util.PedersenCommit(el.g, big.NewInt(budget), blankBlind, el.pollPoint)
	blankC2 := el.g.Element().Scale(el.g2, blankBlind)
	vote.BlankBallot = Ballot{
		Ciphertext1: encodePoint(blankC1),
		Ciphertext2: encodePoint(blankC2),
	}

	digest := ethcrypto.Keccak256(vote.BlankBallot.Ciphertext1, vote.BlankBallot.Ciphertext2)
	signature, err := ethcrypto.Sign(digest, el.signKey)
	require.NoError(t, err)
	vote.Signature = signature

	// The batched range proof requires a power-of-two batch: pad the
	// openings with zeros, matching the identity padding of PadCommitments.
	for !isPowerOfTwoLen(len(values)) {
		values = append(values, new(big.Int))
		blinds = append(blinds, new(big.Int))
	}
	rangeProof, err := zkp.ProveRangeBatch(el.g, values, blinds,
		el.params.RangeBits, gen1, el.pollPoint)
	require.NoError(t, err)

	sumProof, err := zkp.ProveSum(el.g,
		votedValueSum, votedBlindSum, restValue, restBlind,
		gen1, el.pollPoint)
	require.NoError(t, err)

	return &VoteRequest{
		Vote:            vote,
		RangeProof:      rangeProof,
		BallotProofs:    proofs,
		SumBalanceProof: sumProof,
	}
}

func isPowerOfTwoLen(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// buildCountRequest produces the authority's partial decryption of every
// tally slot, with equality proofs against its public share.
func (el *testElection) buildCountRequest(t *testing.T, tally *VoteStorage) *DecryptedResultPartStorage {
	t.Helper()

	part := func(slot Ballot) CountingPart {
		c2, err := decodePoint(el.g, slot.Ciphertext2)
		require.NoError(t, err)
		c2r := el.g.Element().Scale(c2, el.counterSecret)
		proof, err := zkp.ProveEquality(el.g, el.counterSecret, el.g2, c2)
		require.NoError(t, err)
		return CountingPart{
			C2R:           encodePoint(c2r),
			EqualityProof: proof,
		}
	}

	request := &DecryptedResultPartStorage{
		BlankPart: part(tally.BlankBallot),
	}
	for _, pair := range tally.VotedBallot {
		request.CandidatePart = append(request.CandidatePart, CandidatePart{
			Candidate: pair.Candidate,
			Part:      part(pair.Ballot),
		})
	}
	return request
}
