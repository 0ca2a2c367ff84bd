package webclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userhub_backend/internal/webclient"
)

func newTestClient(t *testing.T, handler http.Handler) (*webclient.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return webclient.NewClient(srv.URL, 5*time.Second), srv
}

func TestClient_Liveness(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/", r.URL.Path)
		_, _ = w.Write([]byte("API online"))
	}))

	text, err := client.Liveness(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "API online", text)
}

func TestClient_ListUsers(t *testing.T) {
	t.Run("success: decodes the user array", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users", r.URL.Path)
			assert.Empty(t, r.URL.Query().Get("email"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":"u1","name":"Ana Silva","email":"ana@ex.com","phone":null}]`))
		}))

		users, err := client.ListUsers(context.Background(), "")

		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "u1", users[0].ID)
		assert.Equal(t, "Ana Silva", users[0].Name)
		assert.Nil(t, users[0].Phone)
	})

	t.Run("success: email filter goes into the query string", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "ana@ex.com", r.URL.Query().Get("email"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		}))

		users, err := client.ListUsers(context.Background(), "ana@ex.com")

		require.NoError(t, err)
		assert.Empty(t, users)
	})
}

func TestClient_CreateUser(t *testing.T) {
	t.Run("success: posts the form and decodes the created user", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/users", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Ana Silva", body["name"])
			assert.Equal(t, "ana@ex.com", body["email"])
			_, hasPhone := body["phone"]
			assert.False(t, hasPhone, "empty phone must be omitted from the payload")

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"u1","name":"Ana Silva","email":"ana@ex.com","phone":null}`))
		}))

		user, err := client.CreateUser(context.Background(), webclient.FormData{Name: "Ana Silva", Email: "ana@ex.com"})

		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("failure: validation messages land in the APIError", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"errors":["name must be at least 3 characters long","invalid email format"]}`))
		}))

		user, err := client.CreateUser(context.Background(), webclient.FormData{Name: "An", Email: "bad"})

		assert.Nil(t, user)
		var apiErr *webclient.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, []string{"name must be at least 3 characters long", "invalid email format"}, apiErr.Messages)
	})
}

func TestClient_UpdateUser(t *testing.T) {
	t.Run("success: puts the form to the user path", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/users/u1", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "11 98765-4321", body["phone"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"u1","name":"Ana S.","email":"ana@ex.com","phone":"11 98765-4321"}`))
		}))

		user, err := client.UpdateUser(context.Background(), "u1", webclient.FormData{
			Name:  "Ana S.",
			Email: "ana@ex.com",
			Phone: "11 98765-4321",
		})

		require.NoError(t, err)
		assert.Equal(t, "Ana S.", user.Name)
	})

	t.Run("failure: 404 carries the error message", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"user not found"}`))
		}))

		user, err := client.UpdateUser(context.Background(), "missing", webclient.FormData{Name: "Ana Silva", Email: "ana@ex.com"})

		assert.Nil(t, user)
		var apiErr *webclient.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, []string{"user not found"}, apiErr.Messages)
	})
}

func TestClient_DeleteUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotPath string
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			assert.Equal(t, http.MethodDelete, r.Method)
			_, _ = w.Write([]byte("user deleted successfully"))
		}))

		err := client.DeleteUser(context.Background(), "u1")

		assert.NoError(t, err)
		assert.Equal(t, "/users/u1", gotPath)
	})

	t.Run("failure: 404 becomes an APIError", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"user not found"}`))
		}))

		err := client.DeleteUser(context.Background(), "missing")

		var apiErr *webclient.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})
}
