// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/fritter-net/fritter/internal/entities"
	"github.com/fritter-net/fritter/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run InTx in tx")

const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

type pg struct {
	ext sqlx.ExtContext
}

type postDTO struct {
	ID          string    `db:"id"`
	Owner       string    `db:"owner"`
	ProfileName string    `db:"profile_name"`
	Text        string    `db:"text"`
	CreatedAt   time.Time `db:"created_at"`
	ModifiedAt  time.Time `db:"modified_at"`
}

type engagementDTO struct {
	PostID          string         `db:"post_id"`
	Likes           uint32         `db:"likes"`
	Dislikes        uint32         `db:"dislikes"`
	Liked           pq.StringArray `db:"liked"`
	Disliked        pq.StringArray `db:"disliked"`
	IsControversial bool           `db:"is_controversial"`
}

type profileDTO struct {
	Owner     string    `db:"owner"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type followDTO struct {
	FollowerOwner string `db:"follower_owner"`
	FollowerName  string `db:"follower_name"`
	FolloweeOwner string `db:"followee_owner"`
	FolloweeName  string `db:"followee_name"`
}

type reflectionDTO struct {
	ID          string    `db:"id"`
	Owner       string    `db:"owner"`
	ProfileName string    `db:"profile_name"`
	Text        string    `db:"text"`
	CreatedAt   time.Time `db:"created_at"`
	ModifiedAt  time.Time `db:"modified_at"`
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) CreatePost(ctx context.Context, p *entities.Post) error {
	post := postDTO{
		ID:          p.ID,
		Owner:       p.Owner,
		ProfileName: p.ProfileName,
		Text:        p.Text,
		CreatedAt:   p.CreatedAt.UTC(),
		ModifiedAt:  p.ModifiedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO post(id, owner, profile_name, text, created_at, modified_at)
			VALUES(:id, :owner, :profile_name, :text, :created_at, :modified_at)
		`, post,
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == uniqueViolation {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	var p postDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT id, owner, profile_name, text, created_at, modified_at
			FROM post
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toPost(p), nil
}

func (s pg) ListPosts(ctx context.Context, p *storage.ListPostsParams) ([]*entities.Post, error) {
	where := []string{"1=1"}
	args := map[string]interface{}{"limit": p.Limit}

	if p.Owner != nil {
		where = append(where, "owner = :owner")
		args["owner"] = *p.Owner
	}

	if p.ProfileName != nil {
		where = append(where, "profile_name = :profile_name")
		args["profile_name"] = *p.ProfileName
	}

	query, qargs, err := sqlx.Named(fmt.Sprintf(`
			SELECT id, owner, profile_name, text, created_at, modified_at
			FROM post
			WHERE %s
			ORDER BY modified_at DESC, id
			LIMIT :limit
		`, strings.Join(where, " AND ")), args)
	if err != nil {
		return nil, fmt.Errorf("failed to construct query: %w", err)
	}

	var pp []*postDTO
	if err := sqlx.SelectContext(ctx, s.ext, &pp, s.ext.Rebind(query), qargs...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Post, len(pp))
	for i, v := range pp {
		out[i] = toPost(*v)
	}

	return out, nil
}

func (s pg) SetPostText(ctx context.Context, id, text string, modifiedAt time.Time) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE post SET text=$2, modified_at=$3 WHERE id=$1`,
		id, text, modifiedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) DeletePost(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM post WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) GetPostIDs(ctx context.Context, owner string, profileName *string) ([]string, error) {
	query := `SELECT id FROM post WHERE owner=$1`
	args := []interface{}{owner}

	if profileName != nil {
		query += ` AND profile_name=$2`
		args = append(args, *profileName)
	}

	var ids []string
	if err := sqlx.SelectContext(ctx, s.ext, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return ids, nil
}

func (s pg) EnsureEngagement(ctx context.Context, postID string) (*entities.EngagementRecord, error) {
	if _, err := s.ext.ExecContext(ctx,
		`INSERT INTO engagement(post_id) VALUES($1) ON CONFLICT(post_id) DO NOTHING`, postID,
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to exec: %w", err)
	}

	return s.GetEngagement(ctx, postID)
}

func (s pg) GetEngagement(ctx context.Context, postID string) (*entities.EngagementRecord, error) {
	return s.getEngagement(ctx, postID, false)
}

func (s pg) GetEngagementForUpdate(ctx context.Context, postID string) (*entities.EngagementRecord, error) {
	return s.getEngagement(ctx, postID, true)
}

func (s pg) getEngagement(ctx context.Context, postID string, forUpdate bool) (*entities.EngagementRecord, error) {
	query := `
		SELECT post_id, likes, dislikes, liked, disliked, is_controversial
		FROM engagement
		WHERE post_id = $1
	`
	if forUpdate {
		// serializes concurrent read-modify-write cycles on the record
		query += ` FOR UPDATE`
	}

	var e engagementDTO
	if err := sqlx.GetContext(ctx, s.ext, &e, query, postID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toEngagement(e), nil
}

func (s pg) SaveEngagement(ctx context.Context, rec *entities.EngagementRecord) error {
	// a nil slice binds NULL, the columns are NOT NULL
	liked, disliked := rec.Liked, rec.Disliked
	if liked == nil {
		liked = []string{}
	}
	if disliked == nil {
		disliked = []string{}
	}

	res, err := s.ext.ExecContext(ctx, `
			UPDATE engagement
			SET likes=$2, dislikes=$3, liked=$4, disliked=$5, is_controversial=$6
			WHERE post_id=$1
		`,
		rec.PostID, rec.Likes, rec.Dislikes,
		pq.StringArray(liked), pq.StringArray(disliked), rec.IsControversial,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) ListEngagements(ctx context.Context, p *storage.ListEngagementsParams) ([]*entities.EngagementRecord, error) {
	where := []string{"1=1"}
	args := map[string]interface{}{"limit": p.Limit}

	if p.Owner != nil {
		where = append(where, "p.owner = :owner")
		args["owner"] = *p.Owner
	}

	if p.ProfileName != nil {
		where = append(where, "p.profile_name = :profile_name")
		args["profile_name"] = *p.ProfileName
	}

	if p.Controversial != nil {
		where = append(where, "e.is_controversial = :is_controversial")
		args["is_controversial"] = *p.Controversial
	}

	query, qargs, err := sqlx.Named(fmt.Sprintf(`
			SELECT e.post_id, e.likes, e.dislikes, e.liked, e.disliked, e.is_controversial
			FROM engagement e
			JOIN post p ON p.id = e.post_id
			WHERE %s
			ORDER BY p.modified_at DESC, e.post_id
			LIMIT :limit
		`, strings.Join(where, " AND ")), args)
	if err != nil {
		return nil, fmt.Errorf("failed to construct query: %w", err)
	}

	var ee []*engagementDTO
	if err := sqlx.SelectContext(ctx, s.ext, &ee, s.ext.Rebind(query), qargs...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.EngagementRecord, len(ee))
	for i, v := range ee {
		out[i] = toEngagement(*v)
	}

	return out, nil
}

func (s pg) DeleteEngagement(ctx context.Context, postID string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM engagement WHERE post_id=$1`, postID)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) CreateProfile(ctx context.Context, p *entities.Profile) error {
	profile := profileDTO{
		Owner:     p.Owner,
		Name:      p.Name,
		CreatedAt: p.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO profile(owner, name, created_at)
			VALUES(:owner, :name, :created_at)
		`, profile,
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == uniqueViolation {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetProfile(ctx context.Context, owner, name string) (*entities.Profile, error) {
	var p profileDTO

	if err := sqlx.GetContext(ctx, s.ext, &p,
		`SELECT owner, name, created_at FROM profile WHERE owner=$1 AND lower(name)=lower($2)`,
		owner, name,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Profile{Owner: p.Owner, Name: p.Name, CreatedAt: p.CreatedAt}, nil
}

func (s pg) ListProfiles(ctx context.Context, owner string) ([]*entities.Profile, error) {
	var pp []*profileDTO

	if err := sqlx.SelectContext(ctx, s.ext, &pp,
		`SELECT owner, name, created_at FROM profile WHERE owner=$1 ORDER BY created_at, name`,
		owner,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Profile, len(pp))
	for i, v := range pp {
		out[i] = &entities.Profile{Owner: v.Owner, Name: v.Name, CreatedAt: v.CreatedAt}
	}

	return out, nil
}

func (s pg) DeleteProfile(ctx context.Context, owner, name string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM profile WHERE owner=$1 AND name=$2`, owner, name)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) Follow(ctx context.Context, follower, followee entities.ProfileRef) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO profile_follow(follower_owner, follower_name, followee_owner, followee_name)
			VALUES($1, $2, $3, $4) ON CONFLICT DO NOTHING
		`, follower.Owner, follower.Name, followee.Owner, followee.Name,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) Unfollow(ctx context.Context, follower, followee entities.ProfileRef) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			DELETE FROM profile_follow
			WHERE follower_owner=$1 AND follower_name=$2 AND followee_owner=$3 AND followee_name=$4
		`, follower.Owner, follower.Name, followee.Owner, followee.Name,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetFollows(ctx context.Context, p entities.ProfileRef) ([]entities.ProfileRef, []entities.ProfileRef, error) {
	var ff []*followDTO

	if err := sqlx.SelectContext(ctx, s.ext, &ff,
		`
			SELECT follower_owner, follower_name, followee_owner, followee_name
			FROM profile_follow
			WHERE (follower_owner=$1 AND follower_name=$2) OR (followee_owner=$1 AND followee_name=$2)
		`, p.Owner, p.Name,
	); err != nil {
		return nil, nil, fmt.Errorf("failed to query: %w", err)
	}

	var following, followers []entities.ProfileRef
	for _, f := range ff {
		if f.FollowerOwner == p.Owner && f.FollowerName == p.Name {
			following = append(following, entities.ProfileRef{Owner: f.FolloweeOwner, Name: f.FolloweeName})
		} else {
			followers = append(followers, entities.ProfileRef{Owner: f.FollowerOwner, Name: f.FollowerName})
		}
	}

	return following, followers, nil
}

func (s pg) DeleteFollows(ctx context.Context, p entities.ProfileRef) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			DELETE FROM profile_follow
			WHERE (follower_owner=$1 AND follower_name=$2) OR (followee_owner=$1 AND followee_name=$2)
		`, p.Owner, p.Name,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) CreateReflection(ctx context.Context, r *entities.Reflection) error {
	reflection := reflectionDTO{
		ID:          r.ID,
		Owner:       r.Owner,
		ProfileName: r.ProfileName,
		Text:        r.Text,
		CreatedAt:   r.CreatedAt.UTC(),
		ModifiedAt:  r.ModifiedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO reflection(id, owner, profile_name, text, created_at, modified_at)
			VALUES(:id, :owner, :profile_name, :text, :created_at, :modified_at)
		`, reflection,
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == uniqueViolation {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetReflection(ctx context.Context, id string) (*entities.Reflection, error) {
	var r reflectionDTO

	if err := sqlx.GetContext(ctx, s.ext, &r, `
			SELECT id, owner, profile_name, text, created_at, modified_at
			FROM reflection
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toReflection(r), nil
}

func (s pg) ListReflections(ctx context.Context, owner string, profileName *string) ([]*entities.Reflection, error) {
	query := `
		SELECT id, owner, profile_name, text, created_at, modified_at
		FROM reflection
		WHERE owner=$1
	`
	args := []interface{}{owner}

	if profileName != nil {
		query += ` AND profile_name=$2`
		args = append(args, *profileName)
	}

	query += ` ORDER BY modified_at DESC, id`

	var rr []*reflectionDTO
	if err := sqlx.SelectContext(ctx, s.ext, &rr, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Reflection, len(rr))
	for i, v := range rr {
		out[i] = toReflection(*v)
	}

	return out, nil
}

func (s pg) SetReflectionText(ctx context.Context, id, text string, modifiedAt time.Time) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE reflection SET text=$2, modified_at=$3 WHERE id=$1`,
		id, text, modifiedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) DeleteReflection(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM reflection WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) DeleteReflections(ctx context.Context, owner string, profileName *string) error {
	query := `DELETE FROM reflection WHERE owner=$1`
	args := []interface{}{owner}

	if profileName != nil {
		query += ` AND profile_name=$2`
		args = append(args, *profileName)
	}

	if _, err := s.ext.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetPlatformStats(ctx context.Context) (*entities.PlatformStats, error) {
	var stats struct {
		Posts         uint64 `db:"posts"`
		Likes         uint64 `db:"likes"`
		Dislikes      uint64 `db:"dislikes"`
		Controversial uint64 `db:"controversial"`
	}

	if err := sqlx.GetContext(ctx, s.ext, &stats, `
			SELECT
				(SELECT count(*) FROM post) AS posts,
				coalesce(sum(likes), 0) AS likes,
				coalesce(sum(dislikes), 0) AS dislikes,
				count(*) FILTER (WHERE is_controversial) AS controversial
			FROM engagement
		`,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.PlatformStats{
		Posts:         stats.Posts,
		Likes:         stats.Likes,
		Dislikes:      stats.Dislikes,
		Controversial: stats.Controversial,
	}, nil
}

func toPost(p postDTO) *entities.Post {
	return &entities.Post{
		ID:          p.ID,
		Owner:       p.Owner,
		ProfileName: p.ProfileName,
		Text:        p.Text,
		CreatedAt:   p.CreatedAt,
		ModifiedAt:  p.ModifiedAt,
	}
}

func toEngagement(e engagementDTO) *entities.EngagementRecord {
	return &entities.EngagementRecord{
		PostID:          e.PostID,
		Likes:           e.Likes,
		Dislikes:        e.Dislikes,
		Liked:           e.Liked,
		Disliked:        e.Disliked,
		IsControversial: e.IsControversial,
	}
}

func toReflection(r reflectionDTO) *entities.Reflection {
	return &entities.Reflection{
		ID:          r.ID,
		Owner:       r.Owner,
		ProfileName: r.ProfileName,
		Text:        r.Text,
		CreatedAt:   r.CreatedAt,
		ModifiedAt:  r.ModifiedAt,
	}
}
