package abv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A request that survives a wire round trip must still verify.
func TestVoteRequestRoundTrip(t *testing.T) {
	el := newTestElection(t, testCandidates, 8)
	request := el.buildVoteRequest(t, map[string]int64{"A": 2, "B": 1}, 5)

	b, err := EncodeVoteRequest(request)
	require.NoError(t, err)
	decoded, err := DecodeVoteRequest(b)
	require.NoError(t, err)

	ok, err := VerifyVoteRequest(el.g, el.params, decoded, el.publicKey)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSystemParametersRoundTrip(t *testing.T) {
	el := newTestElection(t, testCandidates, 8)

	b, err := EncodeSystemParameters(el.params)
	require.NoError(t, err)
	decoded, err := DecodeSystemParameters(b)
	require.NoError(t, err)
	assert.Equal(t, el.params, decoded)
}

func TestDecryptedResultPartRoundTrip(t *testing.T) {
	el := newTestElection(t, testCandidates, 8)
	request := el.buildVoteRequest(t, map[string]int64{"A": 1}, 1)
	tally, err := AggregateVoteSum(el.g, el.params, &request.Vote, nil)
	require.NoError(t, err)
	count := el.buildCountRequest(t, tally)

	b, err := EncodeDecryptedResultPart(count)
	require.NoError(t, err)
	decoded, err := DecodeDecryptedResultPart(b)
	require.NoError(t, err)

	ok, err := VerifyCountRequest(el.g, el.params, tally, el.counterShare, decoded)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVoteResultRoundTrip(t *testing.T) {
	result := &VoteResultStorage{Result: []ResultEntry{
		{Key: TotalBallotsKey, Value: 3},
		{Key: "A", Value: 2},
		{Key: "B", Value: 1},
	}}

	b, err := EncodeVoteResult(result)
	require.NoError(t, err)
	decoded, err := DecodeVoteResult(b)
	require.NoError(t, err)
	assert.Equal(t, result, decoded)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	garbage := []byte("not a json document")

	_, err := DecodeSystemParameters(garbage)
	assert.ErrorIs(t, err, ErrDecode)
	_, err = DecodeVoteRequest(garbage)
	assert.ErrorIs(t, err, ErrDecode)
	_, err = DecodeVoteStorage(garbage)
	assert.ErrorIs(t, err, ErrDecode)
	_, err = DecodeDecryptedResultPart(garbage)
	assert.ErrorIs(t, err, ErrDecode)
	_, err = DecodeVoteResult(garbage)
	assert.ErrorIs(t, err, ErrDecode)
}
