package authapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storeratings/authkit/core/authapi"
	"github.com/storeratings/authkit/core/session"
)

func TestClient_Login(t *testing.T) {
	t.Parallel()

	t.Run("decodes token and user", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/auth/login", r.URL.Path)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "owner@example.com", body["email"])
			assert.Equal(t, "Secret1!", body["password"])

			json.NewEncoder(w).Encode(map[string]any{
				"token": "opaque-token",
				"user": map[string]any{
					"id": 7, "name": "Olive Owner",
					"email": "owner@example.com", "role": "Store Owner",
				},
			})
		}))
		defer srv.Close()

		client := authapi.New(srv.URL)
		creds, err := client.Login(context.Background(), "owner@example.com", "Secret1!")
		require.NoError(t, err)
		assert.Equal(t, "opaque-token", creds.Token)
		require.NotNil(t, creds.User)
		assert.Equal(t, session.RoleStoreOwner, creds.User.Role)
	})

	t.Run("extracts backend message on failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
		}))
		defer srv.Close()

		client := authapi.New(srv.URL)
		_, err := client.Login(context.Background(), "x@example.com", "nope")

		apiErr, ok := authapi.AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
		assert.Equal(t, "Invalid credentials", apiErr.Message)
	})

	t.Run("falls back to status text without message body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := authapi.New(srv.URL)
		_, err := client.Login(context.Background(), "x@example.com", "nope")

		apiErr, ok := authapi.AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
		assert.Contains(t, apiErr.Message, "500")
	})

	t.Run("unreachable backend returns request failure", func(t *testing.T) {
		t.Parallel()

		client := authapi.New("http://127.0.0.1:1")
		_, err := client.Login(context.Background(), "x@example.com", "pw")
		assert.ErrorIs(t, err, authapi.ErrRequestFailed)
	})
}

func TestClient_Signup(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/signup", r.URL.Path)

		var params authapi.SignupParams
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, "Nina New", params.Name)
		assert.Equal(t, session.RoleNormalUser, params.Role)

		json.NewEncoder(w).Encode(map[string]any{
			"token": "fresh-token",
			"user": map[string]any{
				"id": 11, "name": params.Name,
				"email": params.Email, "role": string(params.Role),
			},
		})
	}))
	defer srv.Close()

	client := authapi.New(srv.URL)
	creds, err := client.Signup(context.Background(), authapi.SignupParams{
		Name:     "Nina New",
		Email:    "nina@example.com",
		Password: "Secret1!",
		Address:  "4 Elm St",
		Role:     session.RoleNormalUser,
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", creds.Token)
	assert.Equal(t, int64(11), creds.User.ID)
}

func TestClient_Profile(t *testing.T) {
	t.Parallel()

	t.Run("returns current user", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "/auth/profile", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]any{
				"id": 9, "name": "Ada Admin",
				"email": "ada@example.com", "role": "System Administrator",
			})
		}))
		defer srv.Close()

		client := authapi.New(srv.URL)
		user, err := client.Profile(context.Background())
		require.NoError(t, err)
		assert.Equal(t, session.RoleAdmin, user.Role)
	})

	t.Run("401 is surfaced as auth failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Token expired"})
		}))
		defer srv.Close()

		client := authapi.New(srv.URL)
		_, err := client.Profile(context.Background())

		apiErr, ok := authapi.AsAPIError(err)
		require.True(t, ok)
		assert.True(t, apiErr.IsAuthFailure())
		assert.False(t, apiErr.IsForbidden())
		assert.Equal(t, "Token expired", apiErr.Message)
	})
}
