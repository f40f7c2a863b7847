package user

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUserHandler(t *testing.T) (*Handler, *StubUserRepo) {
	t.Helper()
	repo := NewStubUserRepo()
	service := NewUserService(repo, bcryptHasherForTest{})
	return NewHandler(service), repo
}

func postUser(t *testing.T, handler *Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.CreateUser(w, req)
	return w
}

func TestHandler_CreateUser(t *testing.T) {
	t.Run("should create a user and strip the password hash from the response", func(t *testing.T) {
		// given
		handler, _ := setupUserHandler(t)

		// when
		w := postUser(t, handler, map[string]string{
			"email":    "a@x.com",
			"password": "pw123",
			"username": "alice",
		})

		// then
		assert.Equal(t, http.StatusCreated, w.Code)
		var dto UserDTO
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
		assert.Equal(t, "a@x.com", dto.Email)
		assert.Equal(t, "alice", dto.Username)
		assert.NotContains(t, w.Body.String(), "passwordHash")
		assert.NotContains(t, w.Body.String(), "pw123")
	})

	t.Run("should return 400 when email or password is missing", func(t *testing.T) {
		// given
		handler, _ := setupUserHandler(t)

		// when
		w := postUser(t, handler, map[string]string{"email": "a@x.com"})

		// then
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Email and password are required.")
	})

	t.Run("should return 409 when the email is already registered", func(t *testing.T) {
		// given
		handler, _ := setupUserHandler(t)
		first := postUser(t, handler, map[string]string{"email": "a@x.com", "password": "pw123"})
		require.Equal(t, http.StatusCreated, first.Code)

		// when
		second := postUser(t, handler, map[string]string{"email": "a@x.com", "password": "other"})

		// then
		assert.Equal(t, http.StatusConflict, second.Code)
		assert.Contains(t, second.Body.String(), "already exists")
	})
}

func TestHandler_GetUser(t *testing.T) {
	getUser := func(handler *Handler, callerId, profileId string) *httptest.ResponseRecorder {
		r := mux.NewRouter()
		r.HandleFunc("/users/{id}", handler.GetUser).Methods("GET")
		req := httptest.NewRequest(http.MethodGet, "/users/"+profileId, nil)
		req = req.WithContext(WithIdentity(req.Context(), Identity{Id: callerId}))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("should return the caller's own profile", func(t *testing.T) {
		// given
		handler, _ := setupUserHandler(t)
		created := postUser(t, handler, map[string]string{"email": "a@x.com", "password": "pw123"})
		var dto UserDTO
		require.NoError(t, json.Unmarshal(created.Body.Bytes(), &dto))

		// when
		w := getUser(handler, dto.ID, dto.ID)

		// then
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "a@x.com")
		assert.NotContains(t, w.Body.String(), "passwordHash")
	})

	t.Run("should return 403 when requesting another user's profile", func(t *testing.T) {
		// given
		handler, _ := setupUserHandler(t)
		created := postUser(t, handler, map[string]string{"email": "a@x.com", "password": "pw123"})
		var dto UserDTO
		require.NoError(t, json.Unmarshal(created.Body.Bytes(), &dto))

		// when
		w := getUser(handler, "someone-else", dto.ID)

		// then
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("should return 404 when the profile no longer exists", func(t *testing.T) {
		// given
		handler, _ := setupUserHandler(t)

		// when
		w := getUser(handler, "gone", "gone")

		// then
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
