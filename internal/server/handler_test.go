package server

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fritter-net/fritter/internal/api"
	"github.com/fritter-net/fritter/internal/entities"
	"github.com/fritter-net/fritter/internal/service"
	"github.com/fritter-net/fritter/internal/service/mock"
	"github.com/fritter-net/fritter/internal/storage"
)

func newTestRouter(s service.Service) chi.Router {
	router := chi.NewRouter()
	SetupRouter(s, router, time.Minute)

	return router
}

func Test_like(t *testing.T) {
	r, err := http.NewRequest(http.MethodPut, "/v1/engagement/like/1", nil)
	require.NoError(t, err)
	r.Header.Set(api.CallerHeader, "alice")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().Like(gomock.Any(), "1", "alice").Return(&entities.EngagementRecord{
		PostID:          "1",
		Likes:           101,
		Dislikes:        97,
		Liked:           []string{"alice"},
		IsControversial: true,
	}, nil)

	w := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
   "postId":"1",
   "likes":101,
   "dislikes":97,
   "isControversial":true
}
	`, w.Body.String())
}

func Test_like_unauthenticated(t *testing.T) {
	r, err := http.NewRequest(http.MethodPut, "/v1/engagement/like/1", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	w := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func Test_like_postNotFound(t *testing.T) {
	r, err := http.NewRequest(http.MethodPut, "/v1/engagement/like/unknown", nil)
	require.NoError(t, err)
	r.Header.Set(api.CallerHeader, "alice")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().Like(gomock.Any(), "unknown", "alice").Return(nil, storage.ErrNotFound)

	w := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_dislike(t *testing.T) {
	r, err := http.NewRequest(http.MethodPut, "/v1/engagement/dislike/1", nil)
	require.NoError(t, err)
	r.Header.Set(api.CallerHeader, "bob")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().Dislike(gomock.Any(), "1", "bob").Return(&entities.EngagementRecord{
		PostID:   "1",
		Dislikes: 1,
		Disliked: []string{"bob"},
	}, nil)

	w := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
   "postId":"1",
   "likes":0,
   "dislikes":1,
   "isControversial":false
}
	`, w.Body.String())
}

func Test_getEngagement(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/v1/engagement/1", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().GetEngagement(gomock.Any(), "1").Return(&entities.EngagementRecord{
		PostID:   "1",
		Likes:    5,
		Dislikes: 2,
	}, nil)

	w := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
   "postId":"1",
   "likes":5,
   "dislikes":2,
   "isControversial":false
}
	`, w.Body.String())
}

func Test_listEngagements(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/v1/engagement?owner=alice&profile=work&controversial=true&limit=50", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().ListEngagements(gomock.Any(), gomock.Any()).Do(func(_ context.Context, p *storage.ListEngagementsParams) {
		assert.Equal(t, "alice", *p.Owner)
		assert.Equal(t, "work", *p.ProfileName)
		assert.True(t, *p.Controversial)
		assert.EqualValues(t, 50, p.Limit)
	}).Return([]*entities.EngagementRecord{
		{PostID: "1", Likes: 101, Dislikes: 97, IsControversial: true},
	}, nil)

	w := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
   "engagements":[
      {
         "postId":"1",
         "likes":101,
         "dislikes":97,
         "isControversial":true
      }
   ]
}
	`, w.Body.String())
}

func Test_listEngagements_profileWithoutOwner(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/v1/engagement?profile=work", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	w := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_createPost(t *testing.T) {
	timestamp := time.Unix(100, 0)

	body := bytes.NewBufferString(`{"profileName":"work","text":"hello"}`)
	r, err := http.NewRequest(http.MethodPost, "/v1/posts", body)
	require.NoError(t, err)
	r.Header.Set(api.CallerHeader, "alice")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().CreatePost(gomock.Any(), "alice", "work", "hello").Return(&entities.Post{
		ID:          "1",
		Owner:       "alice",
		ProfileName: "work",
		Text:        "hello",
		CreatedAt:   timestamp,
		ModifiedAt:  timestamp,
	}, nil)

	w := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `
{
   "id":"1",
   "owner":"alice",
   "profileName":"work",
   "text":"hello",
   "createdAt":100,
   "modifiedAt":100
}
	`, w.Body.String())
}

func Test_createPost_emptyText(t *testing.T) {
	body := bytes.NewBufferString(`{"text":"   "}`)
	r, err := http.NewRequest(http.MethodPost, "/v1/posts", body)
	require.NoError(t, err)
	r.Header.Set(api.CallerHeader, "alice")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	w := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_listPosts(t *testing.T) {
	timestamp := time.Unix(200, 0)

	r, err := http.NewRequest(http.MethodGet, fmt.Sprintf("/v1/posts?%s", "owner=alice&limit=100"), nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Do(func(_ context.Context, p *storage.ListPostsParams) {
		assert.Equal(t, "alice", *p.Owner)
		assert.Nil(t, p.ProfileName)
		assert.EqualValues(t, 100, p.Limit)
	}).Return([]*entities.Post{
		{
			ID:          "1",
			Owner:       "alice",
			ProfileName: "default",
			Text:        "first",
			CreatedAt:   timestamp,
			ModifiedAt:  timestamp,
		},
	}, nil)

	w := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
   "posts":[
      {
         "id":"1",
         "owner":"alice",
         "profileName":"default",
         "text":"first",
         "createdAt":200,
         "modifiedAt":200
      }
   ]
}
	`, w.Body.String())
}

func Test_listPosts_invalidLimit(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/v1/posts?limit=101", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	w := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_deletePost_forbidden(t *testing.T) {
	r, err := http.NewRequest(http.MethodDelete, "/v1/posts/1", nil)
	require.NoError(t, err)
	r.Header.Set(api.CallerHeader, "stranger")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().DeletePost(gomock.Any(), "1", "stranger").Return(service.ErrForbidden)

	w := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func Test_deleteUserContent(t *testing.T) {
	r, err := http.NewRequest(http.MethodDelete, "/v1/users/me", nil)
	require.NoError(t, err)
	r.Header.Set(api.CallerHeader, "alice")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().DeleteUserContent(gomock.Any(), "alice").Return(nil)

	w := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"user content deleted"}`, w.Body.String())
}

func Test_getStats(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/v1/stats", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().GetStats(gomock.Any()).Return(&entities.PlatformStats{
		Posts:         10,
		Likes:         4,
		Dislikes:      2,
		Controversial: 1,
	}, nil)

	w := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
   "posts":10,
   "likes":4,
   "dislikes":2,
   "controversial":1
}
	`, w.Body.String())
}
