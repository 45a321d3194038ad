//+build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	m "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/fritter-net/fritter/internal/entities"
	"github.com/fritter-net/fritter/internal/storage"
)

var (
	db  *sql.DB
	ctx = context.Background()
	s   storage.Storage
)

func TestMain(m *testing.M) {
	shutdown := setup()

	s = New(db)

	code := m.Run()
	shutdown()
	os.Exit(code)
}

func setup() func() {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:12",
		Env:          map[string]string{"POSTGRES_PASSWORD": "root"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
	})
	if err != nil {
		logrus.WithError(err).Fatalf("failed to create container")
	}

	if err := c.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to start container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}

	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=postgres password=root sslmode=disable", host, port.Int())

	db, err = sql.Open("postgres", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open connection")
	}

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	shutdownFn := func() {
		if c != nil {
			c.Terminate(ctx)
		}
	}

	migrate("postgres", "root", host, "postgres", port.Int())

	return shutdownFn
}

func migrate(username, password, hostname, dbname string, port int) {
	_, currFile, _, ok := runtime.Caller(0)
	if !ok {
		logrus.Fatal("failed to get current file location")
	}

	migrations := filepath.Join(currFile, "../../../../scripts/migrations/postgres/")

	migrator, err := m.New(
		fmt.Sprintf("file://%s", migrations),
		fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			username, password, hostname, port, dbname),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}
}

func cleanup(t *testing.T) {
	_, err := db.ExecContext(ctx, `DELETE FROM engagement`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM post`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM profile_follow`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM profile`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM reflection`)
	require.NoError(t, err)
}

func createPost(t *testing.T, id, owner, profileName string, ts time.Time) {
	require.NoError(t, s.CreatePost(ctx, &entities.Post{
		ID:          id,
		Owner:       owner,
		ProfileName: profileName,
		Text:        "text " + id,
		CreatedAt:   ts,
		ModifiedAt:  ts,
	}))
}

func TestPg_InTx(t *testing.T) {
	defer cleanup(t)

	require.NoError(t, s.InTx(ctx, func(tx storage.Storage) error {
		require.Equal(t, errBeginCalledWithinTx, tx.InTx(ctx, func(tx storage.Storage) error {
			return nil
		}))

		return nil
	}))

	// failed tx leaves nothing behind
	require.Error(t, s.InTx(ctx, func(tx storage.Storage) error {
		require.NoError(t, tx.CreatePost(ctx, &entities.Post{
			ID: "1", Owner: "owner", ProfileName: "default",
			CreatedAt: time.Now(), ModifiedAt: time.Now(),
		}))
		return errors.New("boom")
	}))

	_, err := s.GetPost(ctx, "1")
	require.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_CreatePost(t *testing.T) {
	defer cleanup(t)

	ts := time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC)
	createPost(t, "1", "owner", "default", ts)

	p, err := s.GetPost(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "owner", p.Owner)
	assert.Equal(t, "default", p.ProfileName)
	assert.Equal(t, "text 1", p.Text)
	assert.True(t, p.CreatedAt.Equal(ts))

	require.True(t, errors.Is(s.CreatePost(ctx, &entities.Post{
		ID: "1", Owner: "owner", ProfileName: "default",
		CreatedAt: ts, ModifiedAt: ts,
	}), storage.ErrAlreadyExists))

	_, err = s.GetPost(ctx, "unknown")
	require.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_ListPosts(t *testing.T) {
	defer cleanup(t)

	base := time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC)
	createPost(t, "1", "alice", "default", base)
	createPost(t, "2", "alice", "work", base.Add(time.Hour))
	createPost(t, "3", "bob", "default", base.Add(2*time.Hour))

	pp, err := s.ListPosts(ctx, &storage.ListPostsParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, pp, 3)
	// most recently modified first
	assert.Equal(t, "3", pp[0].ID)
	assert.Equal(t, "2", pp[1].ID)
	assert.Equal(t, "1", pp[2].ID)

	owner := "alice"
	pp, err = s.ListPosts(ctx, &storage.ListPostsParams{Owner: &owner, Limit: 10})
	require.NoError(t, err)
	require.Len(t, pp, 2)

	profile := "work"
	pp, err = s.ListPosts(ctx, &storage.ListPostsParams{Owner: &owner, ProfileName: &profile, Limit: 10})
	require.NoError(t, err)
	require.Len(t, pp, 1)
	assert.Equal(t, "2", pp[0].ID)

	pp, err = s.ListPosts(ctx, &storage.ListPostsParams{Limit: 2})
	require.NoError(t, err)
	require.Len(t, pp, 2)
}

func TestPg_SetPostText(t *testing.T) {
	defer cleanup(t)

	ts := time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC)
	createPost(t, "1", "alice", "default", ts)

	modified := ts.Add(time.Hour)
	require.NoError(t, s.SetPostText(ctx, "1", "edited", modified))

	p, err := s.GetPost(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "edited", p.Text)
	assert.True(t, p.ModifiedAt.Equal(modified))

	require.True(t, errors.Is(s.SetPostText(ctx, "unknown", "edited", modified), storage.ErrNotFound))
}

func TestPg_GetPostIDs(t *testing.T) {
	defer cleanup(t)

	ts := time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC)
	createPost(t, "1", "alice", "default", ts)
	createPost(t, "2", "alice", "work", ts)
	createPost(t, "3", "bob", "default", ts)

	ids, err := s.GetPostIDs(ctx, "alice", nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "2"}, ids)

	profile := "work"
	ids, err = s.GetPostIDs(ctx, "alice", &profile)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids)
}

func TestPg_EnsureEngagement(t *testing.T) {
	defer cleanup(t)

	ts := time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC)
	createPost(t, "1", "alice", "default", ts)

	rec, err := s.EnsureEngagement(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "1", rec.PostID)
	assert.Zero(t, rec.Likes)
	assert.Zero(t, rec.Dislikes)
	assert.Empty(t, rec.Liked)
	assert.Empty(t, rec.Disliked)
	assert.False(t, rec.IsControversial)

	// repeated calls return the same record untouched
	rec.Likes = 5
	rec.Liked = []string{"a", "b", "c", "d", "e"}
	require.NoError(t, s.SaveEngagement(ctx, rec))

	rec, err = s.EnsureEngagement(ctx, "1")
	require.NoError(t, err)
	assert.EqualValues(t, 5, rec.Likes)

	// the record requires its post
	_, err = s.EnsureEngagement(ctx, "unknown")
	require.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_SaveEngagement(t *testing.T) {
	defer cleanup(t)

	ts := time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC)
	createPost(t, "1", "alice", "default", ts)

	_, err := s.EnsureEngagement(ctx, "1")
	require.NoError(t, err)

	require.NoError(t, s.SaveEngagement(ctx, &entities.EngagementRecord{
		PostID:          "1",
		Likes:           2,
		Dislikes:        1,
		Liked:           []string{"bob", "carol"},
		Disliked:        []string{"dave"},
		IsControversial: false,
	}))

	rec, err := s.GetEngagement(ctx, "1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, rec.Likes)
	assert.EqualValues(t, 1, rec.Dislikes)
	assert.Equal(t, []string{"bob", "carol"}, rec.Liked)
	assert.Equal(t, []string{"dave"}, rec.Disliked)

	// nil voter sets persist as empty arrays
	require.NoError(t, s.SaveEngagement(ctx, &entities.EngagementRecord{
		PostID: "1", Likes: 101, Dislikes: 97, IsControversial: true,
	}))

	rec, err = s.GetEngagement(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, rec.Liked)
	assert.Empty(t, rec.Disliked)
	assert.True(t, rec.IsControversial)

	require.True(t, errors.Is(s.SaveEngagement(ctx, &entities.EngagementRecord{PostID: "unknown"}), storage.ErrNotFound))
}

func TestPg_GetEngagementForUpdate(t *testing.T) {
	defer cleanup(t)

	ts := time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC)
	createPost(t, "1", "alice", "default", ts)

	_, err := s.EnsureEngagement(ctx, "1")
	require.NoError(t, err)

	require.NoError(t, s.InTx(ctx, func(tx storage.Storage) error {
		rec, err := tx.GetEngagementForUpdate(ctx, "1")
		require.NoError(t, err)

		rec.Likes++
		rec.Liked = append(rec.Liked, "bob")

		return tx.SaveEngagement(ctx, rec)
	}))

	rec, err := s.GetEngagement(ctx, "1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, rec.Likes)

	_, err = s.GetEngagementForUpdate(ctx, "unknown")
	require.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_ListEngagements(t *testing.T) {
	defer cleanup(t)

	base := time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC)
	createPost(t, "1", "alice", "default", base)
	createPost(t, "2", "alice", "work", base.Add(time.Hour))
	createPost(t, "3", "bob", "default", base.Add(2*time.Hour))

	for _, id := range []string{"1", "2", "3"} {
		_, err := s.EnsureEngagement(ctx, id)
		require.NoError(t, err)
	}

	require.NoError(t, s.SaveEngagement(ctx, &entities.EngagementRecord{
		PostID: "2", Likes: 101, Dislikes: 97, IsControversial: true,
	}))

	rr, err := s.ListEngagements(ctx, &storage.ListEngagementsParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, rr, 3)
	// follows the post's recency
	assert.Equal(t, "3", rr[0].PostID)
	assert.Equal(t, "2", rr[1].PostID)
	assert.Equal(t, "1", rr[2].PostID)

	controversial := true
	rr, err = s.ListEngagements(ctx, &storage.ListEngagementsParams{Controversial: &controversial, Limit: 10})
	require.NoError(t, err)
	require.Len(t, rr, 1)
	assert.Equal(t, "2", rr[0].PostID)

	owner := "alice"
	rr, err = s.ListEngagements(ctx, &storage.ListEngagementsParams{Owner: &owner, Limit: 10})
	require.NoError(t, err)
	require.Len(t, rr, 2)
}

func TestPg_DeleteEngagement(t *testing.T) {
	defer cleanup(t)

	ts := time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC)
	createPost(t, "1", "alice", "default", ts)

	_, err := s.EnsureEngagement(ctx, "1")
	require.NoError(t, err)

	require.NoError(t, s.DeleteEngagement(ctx, "1"))

	_, err = s.GetEngagement(ctx, "1")
	require.True(t, errors.Is(err, storage.ErrNotFound))

	require.True(t, errors.Is(s.DeleteEngagement(ctx, "1"), storage.ErrNotFound))
}

func TestPg_DeletePost(t *testing.T) {
	defer cleanup(t)

	ts := time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC)
	createPost(t, "1", "alice", "default", ts)

	_, err := s.EnsureEngagement(ctx, "1")
	require.NoError(t, err)

	// engagement record blocks the delete until it is removed
	require.Error(t, s.DeletePost(ctx, "1"))

	require.NoError(t, s.DeleteEngagement(ctx, "1"))
	require.NoError(t, s.DeletePost(ctx, "1"))

	require.True(t, errors.Is(s.DeletePost(ctx, "1"), storage.ErrNotFound))
}

func TestPg_Profiles(t *testing.T) {
	defer cleanup(t)

	ts := time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.CreateProfile(ctx, &entities.Profile{Owner: "alice", Name: "Work", CreatedAt: ts}))
	require.NoError(t, s.CreateProfile(ctx, &entities.Profile{Owner: "alice", Name: "default", CreatedAt: ts.Add(time.Hour)}))

	require.True(t, errors.Is(s.CreateProfile(ctx, &entities.Profile{
		Owner: "alice", Name: "Work", CreatedAt: ts,
	}), storage.ErrAlreadyExists))

	// uniqueness ignores case like the lookup does
	require.True(t, errors.Is(s.CreateProfile(ctx, &entities.Profile{
		Owner: "alice", Name: "work", CreatedAt: ts,
	}), storage.ErrAlreadyExists))

	// name lookup ignores case
	p, err := s.GetProfile(ctx, "alice", "work")
	require.NoError(t, err)
	assert.Equal(t, "Work", p.Name)

	_, err = s.GetProfile(ctx, "alice", "unknown")
	require.True(t, errors.Is(err, storage.ErrNotFound))

	pp, err := s.ListProfiles(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, pp, 2)
	assert.Equal(t, "Work", pp[0].Name)
	assert.Equal(t, "default", pp[1].Name)

	require.NoError(t, s.DeleteProfile(ctx, "alice", "Work"))
	require.True(t, errors.Is(s.DeleteProfile(ctx, "alice", "Work"), storage.ErrNotFound))
}

func TestPg_Follows(t *testing.T) {
	defer cleanup(t)

	ts := time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.CreateProfile(ctx, &entities.Profile{Owner: "alice", Name: "default", CreatedAt: ts}))
	require.NoError(t, s.CreateProfile(ctx, &entities.Profile{Owner: "bob", Name: "default", CreatedAt: ts}))
	require.NoError(t, s.CreateProfile(ctx, &entities.Profile{Owner: "carol", Name: "default", CreatedAt: ts}))

	alice := entities.ProfileRef{Owner: "alice", Name: "default"}
	bob := entities.ProfileRef{Owner: "bob", Name: "default"}
	carol := entities.ProfileRef{Owner: "carol", Name: "default"}

	require.NoError(t, s.Follow(ctx, alice, bob))
	// following twice is a no-op
	require.NoError(t, s.Follow(ctx, alice, bob))
	require.NoError(t, s.Follow(ctx, carol, alice))

	following, followers, err := s.GetFollows(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []entities.ProfileRef{bob}, following)
	assert.Equal(t, []entities.ProfileRef{carol}, followers)

	require.NoError(t, s.Unfollow(ctx, alice, bob))
	following, _, err = s.GetFollows(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, following)

	require.NoError(t, s.DeleteFollows(ctx, alice))
	_, followers, err = s.GetFollows(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, followers)
}

func TestPg_Reflections(t *testing.T) {
	defer cleanup(t)

	ts := time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.CreateReflection(ctx, &entities.Reflection{
		ID: "1", Owner: "alice", ProfileName: "default", Text: "first",
		CreatedAt: ts, ModifiedAt: ts,
	}))
	require.NoError(t, s.CreateReflection(ctx, &entities.Reflection{
		ID: "2", Owner: "alice", ProfileName: "work", Text: "second",
		CreatedAt: ts.Add(time.Hour), ModifiedAt: ts.Add(time.Hour),
	}))

	r, err := s.GetReflection(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "first", r.Text)

	rr, err := s.ListReflections(ctx, "alice", nil)
	require.NoError(t, err)
	require.Len(t, rr, 2)
	assert.Equal(t, "2", rr[0].ID)

	profile := "work"
	rr, err = s.ListReflections(ctx, "alice", &profile)
	require.NoError(t, err)
	require.Len(t, rr, 1)
	assert.Equal(t, "2", rr[0].ID)

	require.NoError(t, s.SetReflectionText(ctx, "1", "edited", ts.Add(2*time.Hour)))
	r, err = s.GetReflection(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "edited", r.Text)

	require.NoError(t, s.DeleteReflection(ctx, "1"))
	require.True(t, errors.Is(s.DeleteReflection(ctx, "1"), storage.ErrNotFound))

	require.NoError(t, s.DeleteReflections(ctx, "alice", &profile))
	rr, err = s.ListReflections(ctx, "alice", nil)
	require.NoError(t, err)
	assert.Empty(t, rr)
}

func TestPg_GetPlatformStats(t *testing.T) {
	defer cleanup(t)

	base := time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC)
	createPost(t, "1", "alice", "default", base)
	createPost(t, "2", "bob", "default", base)

	for _, id := range []string{"1", "2"} {
		_, err := s.EnsureEngagement(ctx, id)
		require.NoError(t, err)
	}

	require.NoError(t, s.SaveEngagement(ctx, &entities.EngagementRecord{
		PostID: "1", Likes: 101, Dislikes: 97, IsControversial: true,
	}))
	require.NoError(t, s.SaveEngagement(ctx, &entities.EngagementRecord{
		PostID: "2", Likes: 3, Dislikes: 1,
	}))

	stats, err := s.GetPlatformStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Posts)
	assert.EqualValues(t, 104, stats.Likes)
	assert.EqualValues(t, 98, stats.Dislikes)
	assert.EqualValues(t, 1, stats.Controversial)
}
