package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi"

	"github.com/fritter-net/fritter/internal/api"
	"github.com/fritter-net/fritter/internal/entities"
	"github.com/fritter-net/fritter/internal/service"
	"github.com/fritter-net/fritter/internal/storage"
)

var errInvalidRequest = errors.New("invalid request")

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts Posts CreatePost
	//
	// Create a freet under one of the caller's profiles.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '201':
	//     description: created post
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '401':
	//     description: unauthenticated
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "failed to decode request")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		api.WriteError(w, http.StatusBadRequest, "text is required")
		return
	}

	post, err := s.s.CreatePost(r.Context(), caller, req.ProfileName, req.Text)
	if err != nil {
		writeServiceError(w, r, err, "failed to create post")
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIPost(post))
}

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{postID} Posts GetPost
	//
	// Get post by id.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: postID
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: post
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	post, err := s.s.GetPost(r.Context(), chi.URLParam(r, "postID"))
	if err != nil {
		writeServiceError(w, r, err, "failed to get post")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIPost(post))
}

func (s server) listPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts Posts ListPosts
	//
	// Return posts ordered by most recently modified.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: owner
	//   description: filters posts by owner
	//   in: query
	//   required: false
	// - name: profile
	//   description: filters posts by profile name, requires owner
	//   in: query
	//   required: false
	// - name: limit
	//   description: limits count of returned posts
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 100
	// responses:
	//   '200':
	//     description: posts
	//     schema:
	//       "$ref": "#/definitions/ListPostsResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	params, err := extractListPostsParamsFromQuery(r.URL.Query())
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	posts, err := s.s.ListPosts(r.Context(), params)
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to list posts: %s", err.Error())
		return
	}

	resp := ListPostsResponse{Posts: make([]*Post, len(posts))}
	for i, p := range posts {
		resp.Posts[i] = toAPIPost(p)
	}

	api.WriteOK(w, http.StatusOK, resp)
}

func (s server) updatePost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /posts/{postID} Posts UpdatePost
	//
	// Update the content of the caller's post.
	//
	// ---
	// responses:
	//   '200':
	//     description: updated post
	//   '401':
	//     description: unauthenticated
	//   '403':
	//     description: not the author
	//   '404':
	//     description: post not found

	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "failed to decode request")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		api.WriteError(w, http.StatusBadRequest, "text is required")
		return
	}

	post, err := s.s.UpdatePost(r.Context(), chi.URLParam(r, "postID"), caller, req.Text)
	if err != nil {
		writeServiceError(w, r, err, "failed to update post")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIPost(post))
}

func (s server) deletePost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /posts/{postID} Posts DeletePost
	//
	// Delete the caller's post together with its engagement record.
	//
	// ---
	// responses:
	//   '200':
	//     description: post deleted
	//   '401':
	//     description: unauthenticated
	//   '403':
	//     description: not the author
	//   '404':
	//     description: post not found

	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	if err := s.s.DeletePost(r.Context(), chi.URLParam(r, "postID"), caller); err != nil {
		writeServiceError(w, r, err, "failed to delete post")
		return
	}

	api.WriteOK(w, http.StatusOK, messageResponse{Message: "post deleted"})
}

func (s server) like(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /engagement/like/{postID} Engagement Like
	//
	// Toggle the caller's like on a post. Responds with the updated tallies.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: postID
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: updated engagement
	//   '401':
	//     description: unauthenticated
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	s.vote(w, r, s.s.Like)
}

func (s server) dislike(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /engagement/dislike/{postID} Engagement Dislike
	//
	// Toggle the caller's dislike on a post. Mirror of Like.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: postID
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: updated engagement
	//   '401':
	//     description: unauthenticated
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	s.vote(w, r, s.s.Dislike)
}

func (s server) vote(w http.ResponseWriter, r *http.Request,
	f func(ctx context.Context, postID, voter string) (*entities.EngagementRecord, error)) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	rec, err := f(r.Context(), chi.URLParam(r, "postID"), caller)
	if err != nil {
		writeServiceError(w, r, err, "failed to toggle vote")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIEngagement(rec))
}

func (s server) getEngagement(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /engagement/{postID} Engagement GetEngagement
	//
	// Get a post's engagement record.
	//
	// ---
	// responses:
	//   '200':
	//     description: engagement
	//   '404':
	//     description: post not found

	rec, err := s.s.GetEngagement(r.Context(), chi.URLParam(r, "postID"))
	if err != nil {
		writeServiceError(w, r, err, "failed to get engagement")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIEngagement(rec))
}

func (s server) listEngagements(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /engagement Engagement ListEngagements
	//
	// Return engagement records ordered by the post's recency.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: owner
	//   description: filters records by post owner
	//   in: query
	//   required: false
	// - name: profile
	//   description: filters records by profile name, requires owner
	//   in: query
	//   required: false
	// - name: controversial
	//   description: filters records by the controversial flag
	//   in: query
	//   required: false
	//   type: boolean
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   maximum: 100
	// responses:
	//   '200':
	//     description: engagement records
	//     schema:
	//       "$ref": "#/definitions/ListEngagementsResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	params, err := extractListEngagementsParamsFromQuery(r.URL.Query())
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	rr, err := s.s.ListEngagements(r.Context(), params)
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to list engagements: %s", err.Error())
		return
	}

	resp := ListEngagementsResponse{Engagements: make([]*Engagement, len(rr))}
	for i, rec := range rr {
		resp.Engagements[i] = toAPIEngagement(rec)
	}

	api.WriteOK(w, http.StatusOK, resp)
}

func (s server) deleteUserContent(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /users/me Users DeleteUserContent
	//
	// Delete all the caller's posts, engagement records, profiles, follows
	// and reflections.
	//
	// ---
	// responses:
	//   '200':
	//     description: content deleted
	//   '401':
	//     description: unauthenticated

	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	if err := s.s.DeleteUserContent(r.Context(), caller); err != nil {
		writeServiceError(w, r, err, "failed to delete user content")
		return
	}

	api.WriteOK(w, http.StatusOK, messageResponse{Message: "user content deleted"})
}

func (s server) getStats(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /stats Stats GetStats
	//
	// Returns platform stats.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: stats
	//     schema:
	//       "$ref": "#/definitions/Stats"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	stats, err := s.s.GetStats(r.Context())
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to get stats: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, Stats{
		Posts:         stats.Posts,
		Likes:         stats.Likes,
		Dislikes:      stats.Dislikes,
		Controversial: stats.Controversial,
	})
}

type messageResponse struct {
	Message string `json:"message"`
}

func requireCaller(w http.ResponseWriter, r *http.Request) (string, bool) {
	caller := api.CallerID(r.Context())
	if caller == "" {
		api.WriteError(w, http.StatusUnauthorized, "authentication required")
		return "", false
	}

	return caller, true
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		api.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrForbidden):
		api.WriteError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, storage.ErrAlreadyExists):
		api.WriteError(w, http.StatusConflict, "already exists")
	default:
		api.WriteInternalErrorf(r.Context(), w, "%s: %s", message, err.Error())
	}
}

func extractListPostsParamsFromQuery(q url.Values) (*storage.ListPostsParams, error) {
	out := storage.ListPostsParams{
		Limit: defaultLimit,
	}

	if s := q.Get("owner"); s != "" {
		out.Owner = &s
	}

	if s := q.Get("profile"); s != "" {
		if out.Owner == nil {
			return nil, fmt.Errorf("%w: profile filter requires owner", errInvalidRequest)
		}
		out.ProfileName = &s
	}

	limit, err := extractLimitFromQuery(q)
	if err != nil {
		return nil, err
	}
	out.Limit = limit

	return &out, nil
}

func extractListEngagementsParamsFromQuery(q url.Values) (*storage.ListEngagementsParams, error) {
	out := storage.ListEngagementsParams{
		Limit: defaultLimit,
	}

	if s := q.Get("owner"); s != "" {
		out.Owner = &s
	}

	if s := q.Get("profile"); s != "" {
		if out.Owner == nil {
			return nil, fmt.Errorf("%w: profile filter requires owner", errInvalidRequest)
		}
		out.ProfileName = &s
	}

	if s := q.Get("controversial"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse controversial", errInvalidRequest)
		}
		out.Controversial = &v
	}

	limit, err := extractLimitFromQuery(q)
	if err != nil {
		return nil, err
	}
	out.Limit = limit

	return &out, nil
}

func extractLimitFromQuery(q url.Values) (uint16, error) {
	s := q.Get("limit")
	if s == "" {
		return defaultLimit, nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to parse limit", errInvalidRequest)
	}

	if v == 0 || v > maxLimit {
		return 0, fmt.Errorf("%w: invalid limit", errInvalidRequest)
	}

	return uint16(v), nil
}
