// Package engagement contains the vote toggle state machine and the controversy classifier.
package engagement

import (
	"github.com/fritter-net/fritter/internal/entities"
)

// MinLikes is the engagement floor: a post can not be controversial with
// MinLikes likes or fewer.
const MinLikes = 100

// PercentDiff sets how close dislikes must be to likes for a post to be
// controversial, expressed as a fraction of the like count.
const PercentDiff = 0.05

// VoteKind discriminates the two symmetric vote operations.
type VoteKind int8

const (
	// Like ...
	Like VoteKind = iota + 1
	// Dislike ...
	Dislike
)

func (k VoteKind) String() string {
	if k == Dislike {
		return "dislike"
	}

	return "like"
}

// VoteState is a voter's relationship to a post.
type VoteState int8

const (
	// Neutral means the voter is in neither set.
	Neutral VoteState = iota
	// Liked ...
	Liked
	// Disliked ...
	Disliked
)

// Classify reports whether a post with the given tallies is controversial:
// likes above MinLikes and dislikes within PercentDiff of the like count.
// It never divides, so a zero like count is safe.
func Classify(likes, dislikes uint32) bool {
	if likes <= MinLikes {
		return false
	}

	diff := likes - dislikes
	if dislikes > likes {
		diff = dislikes - likes
	}

	return float64(diff) < PercentDiff*float64(likes)
}

// State returns the voter's current state for the record.
func State(rec *entities.EngagementRecord, voter string) VoteState {
	if contains(rec.Liked, voter) {
		return Liked
	}

	if contains(rec.Disliked, voter) {
		return Disliked
	}

	return Neutral
}

// Toggle applies one vote of the given kind to the record and returns the
// voter's resulting state. A repeated vote cancels itself, an opposite vote
// is reversed atomically before the new one is counted. IsControversial is
// recomputed from the post-transition tallies.
func Toggle(rec *entities.EngagementRecord, voter string, kind VoteKind) VoteState {
	own, opp := &rec.Liked, &rec.Disliked
	ownCount, oppCount := &rec.Likes, &rec.Dislikes
	state := Liked

	if kind == Dislike {
		own, opp = opp, own
		ownCount, oppCount = oppCount, ownCount
		state = Disliked
	}

	if ss, ok := remove(*own, voter); ok {
		*own = ss
		(*ownCount)--
		state = Neutral
	} else {
		if ss, ok := remove(*opp, voter); ok {
			*opp = ss
			(*oppCount)--
		}

		*own = append(*own, voter)
		(*ownCount)++
	}

	rec.IsControversial = Classify(rec.Likes, rec.Dislikes)

	return state
}

func contains(ss []string, v string) bool {
	for _, s := range ss {
		if s == v {
			return true
		}
	}

	return false
}

func remove(ss []string, v string) ([]string, bool) {
	for i, s := range ss {
		if s == v {
			return append(ss[:i], ss[i+1:]...), true
		}
	}

	return ss, false
}
