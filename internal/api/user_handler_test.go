package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/stockroom-api/internal/api/shared"
	"github.com/phrazzld/stockroom-api/internal/domain"
	"github.com/phrazzld/stockroom-api/internal/mocks"
	"github.com/phrazzld/stockroom-api/internal/store"
)

func newTestUserHandler(userStore *mocks.MockUserStore) *UserHandler {
	return NewUserHandler(userStore, &mocks.MockPasswordHasher{})
}

func TestUserList(t *testing.T) {
	t.Parallel()

	t.Run("pagination envelope", func(t *testing.T) {
		t.Parallel()

		users := make([]*domain.User, 10)
		for i := range users {
			users[i] = &domain.User{ID: uuid.New(), Name: "User", Email: "u@example.com", UserName: "u"}
		}
		userStore := &mocks.MockUserStore{Users: users, Total: 25}
		handler := newTestUserHandler(userStore)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/users?page=2&limit=10", nil)
		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp shared.PagedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 25, resp.Total)
		assert.Equal(t, 2, resp.Page)
		assert.Equal(t, 10, resp.Limit)
		assert.Equal(t, 3, resp.TotalPages)

		// The store saw normalized parameters
		require.Equal(t, 1, userStore.ListCalls.Count)
		params := userStore.ListCalls.Params[0]
		assert.Equal(t, 2, params.Page)
		assert.Equal(t, "createdAt", params.SortBy)
		assert.Equal(t, store.SortDesc, params.SortOrder)
	})

	t.Run("defaults applied when query is empty", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{Users: nil, Total: 0}
		handler := newTestUserHandler(userStore)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp shared.PagedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 10, resp.Limit)
		assert.Equal(t, 0, resp.TotalPages)
	})

	t.Run("disallowed sort field", func(t *testing.T) {
		t.Parallel()

		handler := newTestUserHandler(&mocks.MockUserStore{})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/users?sortBy=hashed_password", nil)
		handler.List(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid sort field", decodeError(t, w).Message)
	})

	t.Run("bad page parameter", func(t *testing.T) {
		t.Parallel()

		handler := newTestUserHandler(&mocks.MockUserStore{})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/users?page=zero", nil)
		handler.List(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserCreate(t *testing.T) {
	t.Parallel()

	t.Run("successful creation", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{}
		handler := newTestUserHandler(userStore)

		w, r := postJSON("/api/users",
			`{"name":"Test User","email":"test@example.com","userName":"testuser","password":"password123"}`)
		handler.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp domain.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "testuser", resp.UserName)
		assert.NotEqual(t, uuid.Nil, resp.ID)

		require.Equal(t, 1, userStore.CreateCalls.Count)
		assert.Empty(t, userStore.CreateCalls.Users[0].Password)
	})

	t.Run("duplicate username", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{Err: store.ErrUserNameExists}
		handler := newTestUserHandler(userStore)

		w, r := postJSON("/api/users",
			`{"name":"Test User","email":"test@example.com","userName":"testuser","password":"password123"}`)
		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email or Username already used", decodeError(t, w).Message)
	})

	t.Run("missing required fields", func(t *testing.T) {
		t.Parallel()

		handler := newTestUserHandler(&mocks.MockUserStore{})

		w, r := postJSON("/api/users", `{"email":"test@example.com"}`)
		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		msg := decodeError(t, w).Message
		assert.Contains(t, msg, "name is required")
		assert.Contains(t, msg, "password is required")
	})
}

func TestUserUpdate(t *testing.T) {
	t.Parallel()

	patchJSON := func(id, body string) (*httptest.ResponseRecorder, *http.Request) {
		return httptest.NewRecorder(), requestWithIDParamAndBody(http.MethodPatch, id, body)
	}

	t.Run("successful partial update", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{}
		handler := newTestUserHandler(userStore)
		id := uuid.New()

		w, r := patchJSON(id.String(), `{"city":"Porto"}`)
		handler.Update(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp shared.MessageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "User updated successfully", resp.Message)

		require.Equal(t, 1, userStore.UpdateCalls.Count)
		assert.Equal(t, id, userStore.UpdateCalls.IDs[0])
		update := userStore.UpdateCalls.Updates[0]
		require.NotNil(t, update.City)
		assert.Equal(t, "Porto", *update.City)
		assert.Nil(t, update.Name)
	})

	t.Run("empty update", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{Err: store.ErrNoFieldsToUpdate}
		handler := newTestUserHandler(userStore)

		w, r := patchJSON(uuid.NewString(), `{}`)
		handler.Update(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "No fields to update", decodeError(t, w).Message)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{Err: store.ErrUserNotFound}
		handler := newTestUserHandler(userStore)

		w, r := patchJSON(uuid.NewString(), `{"city":"Porto"}`)
		handler.Update(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "User not found", decodeError(t, w).Message)
	})

	t.Run("malformed ID", func(t *testing.T) {
		t.Parallel()

		handler := newTestUserHandler(&mocks.MockUserStore{})

		w, r := patchJSON("not-a-uuid", `{"city":"Porto"}`)
		handler.Update(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid user ID format", decodeError(t, w).Message)
	})

	t.Run("invalid email in update", func(t *testing.T) {
		t.Parallel()

		handler := newTestUserHandler(&mocks.MockUserStore{})

		w, r := patchJSON(uuid.NewString(), `{"email":"not-an-email"}`)
		handler.Update(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserDelete(t *testing.T) {
	t.Parallel()

	t.Run("successful deletion", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{}
		handler := newTestUserHandler(userStore)
		id := uuid.New()

		w := httptest.NewRecorder()
		r := requestWithIDParam(http.MethodDelete, id.String())
		handler.Delete(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp shared.MessageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "User deleted successfully", resp.Message)

		require.Equal(t, 1, userStore.DeleteCalls.Count)
		assert.Equal(t, id, userStore.DeleteCalls.IDs[0])
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{Err: store.ErrUserNotFound}
		handler := newTestUserHandler(userStore)

		w := httptest.NewRecorder()
		r := requestWithIDParam(http.MethodDelete, uuid.NewString())
		handler.Delete(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed ID", func(t *testing.T) {
		t.Parallel()

		handler := newTestUserHandler(&mocks.MockUserStore{})

		w := httptest.NewRecorder()
		r := requestWithIDParam(http.MethodDelete, "123")
		handler.Delete(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// requestWithIDParamAndBody builds a request carrying both a chi URL
// parameter and a JSON body.
func requestWithIDParamAndBody(method, id, body string) *http.Request {
	r := requestWithIDParam(method, id)
	fresh := httptest.NewRequest(method, r.URL.String(), strings.NewReader(body))
	fresh.Header.Set("Content-Type", "application/json")
	return fresh.WithContext(r.Context())
}
