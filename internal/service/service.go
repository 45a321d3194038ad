// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"

	"github.com/fritter-net/fritter/internal/entities"
	"github.com/fritter-net/fritter/internal/storage"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// ErrForbidden returned when the caller is not allowed to mutate the entity.
var ErrForbidden = errors.New("forbidden")

// ProfileDetails is a profile together with its follow relationships.
type ProfileDetails struct {
	Profile   entities.Profile
	Following []entities.ProfileRef
	Followers []entities.ProfileRef
}

// Service ...
type Service interface {
	CreatePost(ctx context.Context, owner, profileName, text string) (*entities.Post, error)
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	ListPosts(ctx context.Context, p *storage.ListPostsParams) ([]*entities.Post, error)
	UpdatePost(ctx context.Context, id, editor, text string) (*entities.Post, error)
	DeletePost(ctx context.Context, id, editor string) error
	DeleteUserContent(ctx context.Context, owner string) error

	Like(ctx context.Context, postID, voter string) (*entities.EngagementRecord, error)
	Dislike(ctx context.Context, postID, voter string) (*entities.EngagementRecord, error)
	GetEngagement(ctx context.Context, postID string) (*entities.EngagementRecord, error)
	ListEngagements(ctx context.Context, p *storage.ListEngagementsParams) ([]*entities.EngagementRecord, error)

	CreateProfile(ctx context.Context, owner, name string) (*entities.Profile, error)
	GetProfile(ctx context.Context, owner, name string) (*ProfileDetails, error)
	ListProfiles(ctx context.Context, owner string) ([]*entities.Profile, error)
	DeleteProfile(ctx context.Context, owner, name string) error
	Follow(ctx context.Context, follower, followee entities.ProfileRef) error
	Unfollow(ctx context.Context, follower, followee entities.ProfileRef) error

	CreateReflection(ctx context.Context, owner, profileName, text string) (*entities.Reflection, error)
	ListReflections(ctx context.Context, owner string, profileName *string) ([]*entities.Reflection, error)
	UpdateReflection(ctx context.Context, id, editor, text string) (*entities.Reflection, error)
	DeleteReflection(ctx context.Context, id, editor string) error

	GetStats(ctx context.Context) (*entities.PlatformStats, error)
}
