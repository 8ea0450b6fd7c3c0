package abv

import "github.com/abvote/abv/group"

// PadCommitments pads the commitment vector with the group identity until
// its length is the next power of two, as required by the batched range
// proof verifier. The identity contributes nothing to any sum and cannot be
// proven to bear a forged value. Lengths 0 and 1 pad to 1; a vector whose
// length is already a power of two is returned unchanged.
func PadCommitments(g group.Group, commitments []group.Element) []group.Element {
	length := len(commitments)
	target := 1
	for target < length {
		target <<= 1
	}
	for i := length; i < target; i++ {
		commitments = append(commitments, g.Identity())
	}
	return commitments
}
