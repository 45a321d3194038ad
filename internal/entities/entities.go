// Package entities contains main entities of service.
package entities

import (
	"time"
)

// Post is a freet: a short content item authored by a user under one of their profiles.
type Post struct {
	ID          string
	Owner       string
	ProfileName string
	Text        string
	CreatedAt   time.Time
	ModifiedAt  time.Time
}

// EngagementRecord tracks votes for exactly one post.
// Likes always equals len(Liked) and Dislikes equals len(Disliked);
// a voter is never present in both sets.
type EngagementRecord struct {
	PostID          string
	Likes           uint32
	Dislikes        uint32
	Liked           []string
	Disliked        []string
	IsControversial bool
}

// Profile is a named grouping of a user's posts, distinct from the account itself.
type Profile struct {
	Owner     string
	Name      string
	CreatedAt time.Time
}

// ProfileRef identifies a profile by its owner and name.
type ProfileRef struct {
	Owner string
	Name  string
}

// Reflection is a private note scoped to a user's profile.
type Reflection struct {
	ID          string
	Owner       string
	ProfileName string
	Text        string
	CreatedAt   time.Time
	ModifiedAt  time.Time
}

// PlatformStats represents whole-platform counters.
type PlatformStats struct {
	Posts         uint64
	Likes         uint64
	Dislikes      uint64
	Controversial uint64
}
