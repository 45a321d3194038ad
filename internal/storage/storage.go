// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/fritter-net/fritter/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrAlreadyExists ...
var ErrAlreadyExists = fmt.Errorf("already exists")

// Storage provides methods for interacting with database.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error

	CreatePost(ctx context.Context, p *entities.Post) error
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	ListPosts(ctx context.Context, p *ListPostsParams) ([]*entities.Post, error)
	SetPostText(ctx context.Context, id, text string, modifiedAt time.Time) error
	DeletePost(ctx context.Context, id string) error
	GetPostIDs(ctx context.Context, owner string, profileName *string) ([]string, error)

	EnsureEngagement(ctx context.Context, postID string) (*entities.EngagementRecord, error)
	GetEngagement(ctx context.Context, postID string) (*entities.EngagementRecord, error)
	GetEngagementForUpdate(ctx context.Context, postID string) (*entities.EngagementRecord, error)
	SaveEngagement(ctx context.Context, rec *entities.EngagementRecord) error
	ListEngagements(ctx context.Context, p *ListEngagementsParams) ([]*entities.EngagementRecord, error)
	DeleteEngagement(ctx context.Context, postID string) error

	CreateProfile(ctx context.Context, p *entities.Profile) error
	GetProfile(ctx context.Context, owner, name string) (*entities.Profile, error)
	ListProfiles(ctx context.Context, owner string) ([]*entities.Profile, error)
	DeleteProfile(ctx context.Context, owner, name string) error
	Follow(ctx context.Context, follower, followee entities.ProfileRef) error
	Unfollow(ctx context.Context, follower, followee entities.ProfileRef) error
	GetFollows(ctx context.Context, p entities.ProfileRef) (following, followers []entities.ProfileRef, err error)
	DeleteFollows(ctx context.Context, p entities.ProfileRef) error

	CreateReflection(ctx context.Context, r *entities.Reflection) error
	GetReflection(ctx context.Context, id string) (*entities.Reflection, error)
	ListReflections(ctx context.Context, owner string, profileName *string) ([]*entities.Reflection, error)
	SetReflectionText(ctx context.Context, id, text string, modifiedAt time.Time) error
	DeleteReflection(ctx context.Context, id string) error
	DeleteReflections(ctx context.Context, owner string, profileName *string) error

	GetPlatformStats(ctx context.Context) (*entities.PlatformStats, error)
}

// ListPostsParams ...
type ListPostsParams struct {
	Owner       *string
	ProfileName *string
	Limit       uint16
}

// ListEngagementsParams ...
type ListEngagementsParams struct {
	Owner         *string
	ProfileName   *string
	Controversial *bool
	Limit         uint16
}
