package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi"

	"github.com/fritter-net/fritter/internal/api"
	"github.com/fritter-net/fritter/internal/entities"
)

func (s server) createProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /profiles Profiles CreateProfile
	//
	// Create a named profile for the caller.
	//
	// ---
	// responses:
	//   '201':
	//     description: created profile
	//   '401':
	//     description: unauthenticated
	//   '409':
	//     description: profile already exists

	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "failed to decode request")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		api.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	p, err := s.s.CreateProfile(r.Context(), caller, strings.TrimSpace(req.Name))
	if err != nil {
		writeServiceError(w, r, err, "failed to create profile")
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIProfile(p))
}

func (s server) getProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /profiles/{name} Profiles GetProfile
	//
	// Get one of the caller's profiles with its follow relationships.
	//
	// ---
	// responses:
	//   '200':
	//     description: profile
	//   '401':
	//     description: unauthenticated
	//   '404':
	//     description: profile not found

	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	p, err := s.s.GetProfile(r.Context(), caller, chi.URLParam(r, "name"))
	if err != nil {
		writeServiceError(w, r, err, "failed to get profile")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIProfileDetails(p))
}

func (s server) listProfiles(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /profiles Profiles ListProfiles
	//
	// List the caller's profiles.
	//
	// ---
	// responses:
	//   '200':
	//     description: profiles
	//     schema:
	//       "$ref": "#/definitions/ListProfilesResponse"
	//   '401':
	//     description: unauthenticated

	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	pp, err := s.s.ListProfiles(r.Context(), caller)
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to list profiles: %s", err.Error())
		return
	}

	resp := ListProfilesResponse{Profiles: make([]*Profile, len(pp))}
	for i, p := range pp {
		resp.Profiles[i] = toAPIProfile(p)
	}

	api.WriteOK(w, http.StatusOK, resp)
}

func (s server) deleteProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /profiles/{name} Profiles DeleteProfile
	//
	// Delete the caller's profile and cascade its posts, engagement records,
	// reflections and follow relationships.
	//
	// ---
	// responses:
	//   '200':
	//     description: profile deleted
	//   '401':
	//     description: unauthenticated
	//   '404':
	//     description: profile not found

	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	if err := s.s.DeleteProfile(r.Context(), caller, chi.URLParam(r, "name")); err != nil {
		writeServiceError(w, r, err, "failed to delete profile")
		return
	}

	api.WriteOK(w, http.StatusOK, messageResponse{Message: "profile deleted"})
}

func (s server) follow(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /profiles/{name}/follow Profiles Follow
	//
	// Make the caller's profile follow another profile.
	//
	// ---
	// responses:
	//   '200':
	//     description: followed
	//   '401':
	//     description: unauthenticated
	//   '404':
	//     description: profile not found

	s.setFollow(w, r, true)
}

func (s server) unfollow(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /profiles/{name}/unfollow Profiles Unfollow
	//
	// Make the caller's profile unfollow another profile.
	//
	// ---
	// responses:
	//   '200':
	//     description: unfollowed
	//   '401':
	//     description: unauthenticated

	s.setFollow(w, r, false)
}

func (s server) setFollow(w http.ResponseWriter, r *http.Request, follow bool) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req FollowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "failed to decode request")
		return
	}

	if req.Owner == "" || req.Name == "" {
		api.WriteError(w, http.StatusBadRequest, "owner and name are required")
		return
	}

	follower := entities.ProfileRef{Owner: caller, Name: chi.URLParam(r, "name")}
	followee := entities.ProfileRef{Owner: req.Owner, Name: req.Name}

	var err error
	msg := "unfollowed"
	if follow {
		err = s.s.Follow(r.Context(), follower, followee)
		msg = "followed"
	} else {
		err = s.s.Unfollow(r.Context(), follower, followee)
	}

	if err != nil {
		writeServiceError(w, r, err, "failed to change follow state")
		return
	}

	api.WriteOK(w, http.StatusOK, messageResponse{Message: msg})
}

func (s server) createReflection(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /reflections Reflections CreateReflection
	//
	// Create a private reflection under one of the caller's profiles.
	//
	// ---
	// responses:
	//   '201':
	//     description: created reflection
	//   '401':
	//     description: unauthenticated

	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req CreateReflectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "failed to decode request")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		api.WriteError(w, http.StatusBadRequest, "text is required")
		return
	}

	reflection, err := s.s.CreateReflection(r.Context(), caller, req.ProfileName, req.Text)
	if err != nil {
		writeServiceError(w, r, err, "failed to create reflection")
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIReflection(reflection))
}

func (s server) listReflections(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /reflections Reflections ListReflections
	//
	// List the caller's reflections, optionally filtered by profile.
	// Reflections are private: only their author sees them.
	//
	// ---
	// parameters:
	// - name: profile
	//   in: query
	//   required: false
	// responses:
	//   '200':
	//     description: reflections
	//     schema:
	//       "$ref": "#/definitions/ListReflectionsResponse"
	//   '401':
	//     description: unauthenticated

	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var profileName *string
	if v := r.URL.Query().Get("profile"); v != "" {
		profileName = &v
	}

	rr, err := s.s.ListReflections(r.Context(), caller, profileName)
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to list reflections: %s", err.Error())
		return
	}

	resp := ListReflectionsResponse{Reflections: make([]*Reflection, len(rr))}
	for i, v := range rr {
		resp.Reflections[i] = toAPIReflection(v)
	}

	api.WriteOK(w, http.StatusOK, resp)
}

func (s server) updateReflection(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /reflections/{reflectionID} Reflections UpdateReflection
	//
	// Update the content of the caller's reflection.
	//
	// ---
	// responses:
	//   '200':
	//     description: updated reflection
	//   '401':
	//     description: unauthenticated
	//   '403':
	//     description: not the author
	//   '404':
	//     description: reflection not found

	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req UpdateReflectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "failed to decode request")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		api.WriteError(w, http.StatusBadRequest, "text is required")
		return
	}

	reflection, err := s.s.UpdateReflection(r.Context(), chi.URLParam(r, "reflectionID"), caller, req.Text)
	if err != nil {
		writeServiceError(w, r, err, "failed to update reflection")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIReflection(reflection))
}

func (s server) deleteReflection(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /reflections/{reflectionID} Reflections DeleteReflection
	//
	// Delete the caller's reflection.
	//
	// ---
	// responses:
	//   '200':
	//     description: reflection deleted
	//   '401':
	//     description: unauthenticated
	//   '403':
	//     description: not the author
	//   '404':
	//     description: reflection not found

	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	if err := s.s.DeleteReflection(r.Context(), chi.URLParam(r, "reflectionID"), caller); err != nil {
		writeServiceError(w, r, err, "failed to delete reflection")
		return
	}

	api.WriteOK(w, http.StatusOK, messageResponse{Message: "reflection deleted"})
}
