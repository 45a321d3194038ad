// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fritter-net/fritter/internal/engagement"
	"github.com/fritter-net/fritter/internal/entities"
	"github.com/fritter-net/fritter/internal/service"
	"github.com/fritter-net/fritter/internal/storage"
)

// DefaultProfileName is assigned to posts and reflections created without an
// explicit profile.
const DefaultProfileName = "default"

type srv struct {
	s   storage.Storage
	now func() time.Time
}

// New creates new instance of service.
func New(s storage.Storage) service.Service {
	return srv{
		s:   s,
		now: time.Now,
	}
}

func (s srv) CreatePost(ctx context.Context, owner, profileName, text string) (*entities.Post, error) {
	if profileName == "" {
		profileName = DefaultProfileName
	}

	now := s.now().UTC()
	post := &entities.Post{
		ID:          uuid.New().String(),
		Owner:       owner,
		ProfileName: profileName,
		Text:        text,
		CreatedAt:   now,
		ModifiedAt:  now,
	}

	// the post and its engagement record are born in one tx so neither can
	// exist without the other
	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if err := tx.CreatePost(ctx, post); err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}

		if _, err := tx.EnsureEngagement(ctx, post.ID); err != nil {
			return fmt.Errorf("failed to create engagement record: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return post, nil
}

func (s srv) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	p, err := s.s.GetPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return p, nil
}

func (s srv) ListPosts(ctx context.Context, p *storage.ListPostsParams) ([]*entities.Post, error) {
	posts, err := s.s.ListPosts(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (s srv) UpdatePost(ctx context.Context, id, editor, text string) (*entities.Post, error) {
	var out *entities.Post

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		p, err := tx.GetPost(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get post: %w", err)
		}

		if p.Owner != editor {
			return service.ErrForbidden
		}

		p.Text = text
		p.ModifiedAt = s.now().UTC()

		if err := tx.SetPostText(ctx, id, text, p.ModifiedAt); err != nil {
			return fmt.Errorf("failed to update post: %w", err)
		}

		out = p
		return nil
	}); err != nil {
		return nil, err
	}

	return out, nil
}

func (s srv) DeletePost(ctx context.Context, id, editor string) error {
	return s.s.InTx(ctx, func(tx storage.Storage) error {
		p, err := tx.GetPost(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get post: %w", err)
		}

		if p.Owner != editor {
			return service.ErrForbidden
		}

		return deletePostCascade(ctx, tx, id)
	})
}

func (s srv) DeleteUserContent(ctx context.Context, owner string) error {
	return s.s.InTx(ctx, func(tx storage.Storage) error {
		ids, err := tx.GetPostIDs(ctx, owner, nil)
		if err != nil {
			return fmt.Errorf("failed to resolve post ids: %w", err)
		}

		for _, id := range ids {
			if err := deletePostCascade(ctx, tx, id); err != nil {
				return err
			}
		}

		if err := tx.DeleteReflections(ctx, owner, nil); err != nil {
			return fmt.Errorf("failed to delete reflections: %w", err)
		}

		profiles, err := tx.ListProfiles(ctx, owner)
		if err != nil {
			return fmt.Errorf("failed to list profiles: %w", err)
		}

		for _, p := range profiles {
			ref := entities.ProfileRef{Owner: p.Owner, Name: p.Name}
			if err := tx.DeleteFollows(ctx, ref); err != nil {
				return fmt.Errorf("failed to delete follows of %s/%s: %w", p.Owner, p.Name, err)
			}
			if err := tx.DeleteProfile(ctx, p.Owner, p.Name); err != nil {
				return fmt.Errorf("failed to delete profile %s/%s: %w", p.Owner, p.Name, err)
			}
		}

		return nil
	})
}

func (s srv) Like(ctx context.Context, postID, voter string) (*entities.EngagementRecord, error) {
	return s.vote(ctx, postID, voter, engagement.Like)
}

func (s srv) Dislike(ctx context.Context, postID, voter string) (*entities.EngagementRecord, error) {
	return s.vote(ctx, postID, voter, engagement.Dislike)
}

func (s srv) vote(ctx context.Context, postID, voter string, kind engagement.VoteKind) (*entities.EngagementRecord, error) {
	var out *entities.EngagementRecord

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		rec, err := tx.GetEngagementForUpdate(ctx, postID)
		if err != nil {
			return fmt.Errorf("failed to get engagement record: %w", err)
		}

		engagement.Toggle(rec, voter, kind)

		if err := tx.SaveEngagement(ctx, rec); err != nil {
			return fmt.Errorf("failed to save engagement record: %w", err)
		}

		out = rec
		return nil
	}); err != nil {
		return nil, err
	}

	return out, nil
}

func (s srv) GetEngagement(ctx context.Context, postID string) (*entities.EngagementRecord, error) {
	rec, err := s.s.GetEngagement(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get engagement record: %w", err)
	}

	return rec, nil
}

func (s srv) ListEngagements(ctx context.Context, p *storage.ListEngagementsParams) ([]*entities.EngagementRecord, error) {
	rr, err := s.s.ListEngagements(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list engagement records: %w", err)
	}

	return rr, nil
}

func (s srv) CreateProfile(ctx context.Context, owner, name string) (*entities.Profile, error) {
	p := &entities.Profile{
		Owner:     owner,
		Name:      name,
		CreatedAt: s.now().UTC(),
	}

	if err := s.s.CreateProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return p, nil
}

func (s srv) GetProfile(ctx context.Context, owner, name string) (*service.ProfileDetails, error) {
	p, err := s.s.GetProfile(ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	following, followers, err := s.s.GetFollows(ctx, entities.ProfileRef{Owner: p.Owner, Name: p.Name})
	if err != nil {
		return nil, fmt.Errorf("failed to get follows: %w", err)
	}

	return &service.ProfileDetails{
		Profile:   *p,
		Following: following,
		Followers: followers,
	}, nil
}

func (s srv) ListProfiles(ctx context.Context, owner string) ([]*entities.Profile, error) {
	pp, err := s.s.ListProfiles(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	return pp, nil
}

func (s srv) DeleteProfile(ctx context.Context, owner, name string) error {
	return s.s.InTx(ctx, func(tx storage.Storage) error {
		p, err := tx.GetProfile(ctx, owner, name)
		if err != nil {
			return fmt.Errorf("failed to get profile: %w", err)
		}

		ids, err := tx.GetPostIDs(ctx, p.Owner, &p.Name)
		if err != nil {
			return fmt.Errorf("failed to resolve post ids: %w", err)
		}

		for _, id := range ids {
			if err := deletePostCascade(ctx, tx, id); err != nil {
				return err
			}
		}

		if err := tx.DeleteReflections(ctx, p.Owner, &p.Name); err != nil {
			return fmt.Errorf("failed to delete reflections: %w", err)
		}

		ref := entities.ProfileRef{Owner: p.Owner, Name: p.Name}
		if err := tx.DeleteFollows(ctx, ref); err != nil {
			return fmt.Errorf("failed to delete follows: %w", err)
		}

		if err := tx.DeleteProfile(ctx, p.Owner, p.Name); err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}

		return nil
	})
}

func (s srv) Follow(ctx context.Context, follower, followee entities.ProfileRef) error {
	follower, followee, err := s.resolveFollowRefs(ctx, follower, followee)
	if err != nil {
		return err
	}

	if err := s.s.Follow(ctx, follower, followee); err != nil {
		return fmt.Errorf("failed to follow: %w", err)
	}

	return nil
}

func (s srv) Unfollow(ctx context.Context, follower, followee entities.ProfileRef) error {
	follower, followee, err := s.resolveFollowRefs(ctx, follower, followee)
	if err != nil {
		return err
	}

	if err := s.s.Unfollow(ctx, follower, followee); err != nil {
		return fmt.Errorf("failed to unfollow: %w", err)
	}

	return nil
}

// resolveFollowRefs validates both profiles and rewrites the refs with the
// stored name casing, so follow edges always match their profile rows.
func (s srv) resolveFollowRefs(ctx context.Context, follower, followee entities.ProfileRef) (entities.ProfileRef, entities.ProfileRef, error) {
	fp, err := s.s.GetProfile(ctx, follower.Owner, follower.Name)
	if err != nil {
		return follower, followee, fmt.Errorf("failed to get follower profile: %w", err)
	}

	tp, err := s.s.GetProfile(ctx, followee.Owner, followee.Name)
	if err != nil {
		return follower, followee, fmt.Errorf("failed to get followee profile: %w", err)
	}

	return entities.ProfileRef{Owner: fp.Owner, Name: fp.Name},
		entities.ProfileRef{Owner: tp.Owner, Name: tp.Name}, nil
}

func (s srv) CreateReflection(ctx context.Context, owner, profileName, text string) (*entities.Reflection, error) {
	if profileName == "" {
		profileName = DefaultProfileName
	}

	now := s.now().UTC()
	r := &entities.Reflection{
		ID:          uuid.New().String(),
		Owner:       owner,
		ProfileName: profileName,
		Text:        text,
		CreatedAt:   now,
		ModifiedAt:  now,
	}

	if err := s.s.CreateReflection(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to create reflection: %w", err)
	}

	return r, nil
}

func (s srv) ListReflections(ctx context.Context, owner string, profileName *string) ([]*entities.Reflection, error) {
	rr, err := s.s.ListReflections(ctx, owner, profileName)
	if err != nil {
		return nil, fmt.Errorf("failed to list reflections: %w", err)
	}

	return rr, nil
}

func (s srv) UpdateReflection(ctx context.Context, id, editor, text string) (*entities.Reflection, error) {
	var out *entities.Reflection

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		r, err := tx.GetReflection(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get reflection: %w", err)
		}

		if r.Owner != editor {
			return service.ErrForbidden
		}

		r.Text = text
		r.ModifiedAt = s.now().UTC()

		if err := tx.SetReflectionText(ctx, id, text, r.ModifiedAt); err != nil {
			return fmt.Errorf("failed to update reflection: %w", err)
		}

		out = r
		return nil
	}); err != nil {
		return nil, err
	}

	return out, nil
}

func (s srv) DeleteReflection(ctx context.Context, id, editor string) error {
	return s.s.InTx(ctx, func(tx storage.Storage) error {
		r, err := tx.GetReflection(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get reflection: %w", err)
		}

		if r.Owner != editor {
			return service.ErrForbidden
		}

		if err := tx.DeleteReflection(ctx, id); err != nil {
			return fmt.Errorf("failed to delete reflection: %w", err)
		}

		return nil
	})
}

func (s srv) GetStats(ctx context.Context) (*entities.PlatformStats, error) {
	stats, err := s.s.GetPlatformStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get platform stats: %w", err)
	}

	return stats, nil
}

// deletePostCascade removes the engagement record first, then the post, so a
// failure can never leave an orphaned record. Errors name the post id so a
// caller of a bulk cascade knows where it stopped. A post without a record is
// tolerated: the point is that no record survives its post.
func deletePostCascade(ctx context.Context, tx storage.Storage, id string) error {
	if err := tx.DeleteEngagement(ctx, id); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to delete engagement record of post %s: %w", id, err)
	}

	if err := tx.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post %s: %w", id, err)
	}

	return nil
}
