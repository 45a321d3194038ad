package server

import (
	"github.com/fritter-net/fritter/internal/entities"
	"github.com/fritter-net/fritter/internal/service"
)

const maxLimit = 100
const defaultLimit = 20

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// Post ...
type Post struct {
	ID          string `json:"id"`
	Owner       string `json:"owner"`
	ProfileName string `json:"profileName"`
	Text        string `json:"text"`
	CreatedAt   uint64 `json:"createdAt"`
	ModifiedAt  uint64 `json:"modifiedAt"`
}

// ListPostsResponse ...
// swagger:model
type ListPostsResponse struct {
	Posts []*Post `json:"posts"`
}

// Engagement carries the public part of a post's engagement record: tallies
// and the derived flag, never the voter sets.
type Engagement struct {
	PostID          string `json:"postId"`
	Likes           uint32 `json:"likes"`
	Dislikes        uint32 `json:"dislikes"`
	IsControversial bool   `json:"isControversial"`
}

// ListEngagementsResponse ...
// swagger:model
type ListEngagementsResponse struct {
	Engagements []*Engagement `json:"engagements"`
}

// ProfileRef ...
type ProfileRef struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

// Profile ...
type Profile struct {
	Owner     string       `json:"owner"`
	Name      string       `json:"name"`
	CreatedAt uint64       `json:"createdAt"`
	Following []ProfileRef `json:"following,omitempty"`
	Followers []ProfileRef `json:"followers,omitempty"`
}

// ListProfilesResponse ...
// swagger:model
type ListProfilesResponse struct {
	Profiles []*Profile `json:"profiles"`
}

// Reflection ...
type Reflection struct {
	ID          string `json:"id"`
	Owner       string `json:"owner"`
	ProfileName string `json:"profileName"`
	Text        string `json:"text"`
	CreatedAt   uint64 `json:"createdAt"`
	ModifiedAt  uint64 `json:"modifiedAt"`
}

// ListReflectionsResponse ...
// swagger:model
type ListReflectionsResponse struct {
	Reflections []*Reflection `json:"reflections"`
}

// Stats ...
// swagger:model
type Stats struct {
	Posts         uint64 `json:"posts"`
	Likes         uint64 `json:"likes"`
	Dislikes      uint64 `json:"dislikes"`
	Controversial uint64 `json:"controversial"`
}

// CreatePostRequest ...
type CreatePostRequest struct {
	ProfileName string `json:"profileName"`
	Text        string `json:"text"`
}

// UpdatePostRequest ...
type UpdatePostRequest struct {
	Text string `json:"text"`
}

// CreateProfileRequest ...
type CreateProfileRequest struct {
	Name string `json:"name"`
}

// FollowRequest names the target profile.
type FollowRequest struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

// CreateReflectionRequest ...
type CreateReflectionRequest struct {
	ProfileName string `json:"profileName"`
	Text        string `json:"text"`
}

// UpdateReflectionRequest ...
type UpdateReflectionRequest struct {
	Text string `json:"text"`
}

func toAPIPost(p *entities.Post) *Post {
	if p == nil {
		return nil
	}

	return &Post{
		ID:          p.ID,
		Owner:       p.Owner,
		ProfileName: p.ProfileName,
		Text:        p.Text,
		CreatedAt:   uint64(p.CreatedAt.Unix()),
		ModifiedAt:  uint64(p.ModifiedAt.Unix()),
	}
}

func toAPIEngagement(rec *entities.EngagementRecord) *Engagement {
	if rec == nil {
		return nil
	}

	return &Engagement{
		PostID:          rec.PostID,
		Likes:           rec.Likes,
		Dislikes:        rec.Dislikes,
		IsControversial: rec.IsControversial,
	}
}

func toAPIProfile(p *entities.Profile) *Profile {
	if p == nil {
		return nil
	}

	return &Profile{
		Owner:     p.Owner,
		Name:      p.Name,
		CreatedAt: uint64(p.CreatedAt.Unix()),
	}
}

func toAPIProfileDetails(p *service.ProfileDetails) *Profile {
	out := toAPIProfile(&p.Profile)

	out.Following = toAPIProfileRefs(p.Following)
	out.Followers = toAPIProfileRefs(p.Followers)

	return out
}

func toAPIProfileRefs(rr []entities.ProfileRef) []ProfileRef {
	out := make([]ProfileRef, len(rr))
	for i, r := range rr {
		out[i] = ProfileRef{Owner: r.Owner, Name: r.Name}
	}

	return out
}

func toAPIReflection(r *entities.Reflection) *Reflection {
	if r == nil {
		return nil
	}

	return &Reflection{
		ID:          r.ID,
		Owner:       r.Owner,
		ProfileName: r.ProfileName,
		Text:        r.Text,
		CreatedAt:   uint64(r.CreatedAt.Unix()),
		ModifiedAt:  uint64(r.ModifiedAt.Unix()),
	}
}
