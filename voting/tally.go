// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

// Tally returns the index of the proposal with the most votes, or -1 for an
// empty registry. Only a strictly greater count replaces the current leader,
// so a tie goes to the lowest index.
func Tally(proposals []Proposal) int {
	winner := -1
	for i, p := range proposals {
		if winner < 0 || p.VoteCount > proposals[winner].VoteCount {
			winner = i
		}
	}
	return winner
}
