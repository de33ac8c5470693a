package main

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	admin "google.golang.org/api/admin/directory/v1"
)

func TestCreateUser(t *testing.T) {
	body := map[string]string{
		"user_email":      "new@example.com",
		"user_password":   "changeme1!",
		"user_first_name": "New",
		"user_last_name":  "Person",
		"org_unit_path":   "/Staff",
	}

	t.Run("success", func(t *testing.T) {
		dir := newFakeDirectory()
		td := newTestDeps(dir, nil, nil, nil)

		w := performRequest(td.deps, "/api/users/create", body)

		resp := decodeEnvelope(t, w)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "success", resp.Status)
		assert.Contains(t, resp.Message, "created successfully")
		assert.Equal(t, 1, dir.createCalls)
	})

	t.Run("already exists", func(t *testing.T) {
		dir := newFakeDirectory()
		dir.users["new@example.com"] = &admin.User{PrimaryEmail: "new@example.com"}
		td := newTestDeps(dir, nil, nil, nil)

		w := performRequest(td.deps, "/api/users/create", body)

		resp := decodeEnvelope(t, w)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, resp.Message, "already exists")
		assert.Equal(t, 0, dir.createCalls)
	})

	t.Run("missing parameter short-circuits before auth", func(t *testing.T) {
		incomplete := map[string]string{"user_email": "new@example.com"}
		td := newTestDeps(newFakeDirectory(), nil, nil, nil)

		w := performRequest(td.deps, "/api/users/create", incomplete)

		resp := decodeEnvelope(t, w)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, resp.Message, "Missing parameter")
		assert.Equal(t, 0, td.directoryHits)
	})

	t.Run("insert failure is reported", func(t *testing.T) {
		dir := newFakeDirectory()
		dir.mutateErr = errors.New("quota exceeded")
		td := newTestDeps(dir, nil, nil, nil)

		w := performRequest(td.deps, "/api/users/create", body)

		resp := decodeEnvelope(t, w)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, resp.Message, "Failed to create user")
		assert.Contains(t, resp.Message, "quota exceeded")
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		dir := newFakeDirectory()
		dir.users["gone@example.com"] = &admin.User{PrimaryEmail: "gone@example.com"}
		td := newTestDeps(dir, nil, nil, nil)

		w := performRequest(td.deps, "/api/users/delete", map[string]string{"user_email": "gone@example.com"})

		resp := decodeEnvelope(t, w)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, resp.Message, "deleted successfully")
		assert.Equal(t, 1, dir.deleteCalls)
	})

	t.Run("user not found", func(t *testing.T) {
		dir := newFakeDirectory()
		td := newTestDeps(dir, nil, nil, nil)

		w := performRequest(td.deps, "/api/users/delete", map[string]string{"user_email": "gone@example.com"})

		resp := decodeEnvelope(t, w)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, resp.Message, "does not exist")
		assert.Equal(t, 0, dir.deleteCalls)
	})

	t.Run("missing user_email", func(t *testing.T) {
		td := newTestDeps(newFakeDirectory(), nil, nil, nil)

		w := performRequest(td.deps, "/api/users/delete", map[string]string{})

		resp := decodeEnvelope(t, w)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, resp.Message, "Missing parameter")
		assert.Equal(t, 0, td.directoryHits)
	})
}

func TestSuspendUser(t *testing.T) {
	t.Run("active user gets suspended", func(t *testing.T) {
		dir := newFakeDirectory()
		dir.users["a@x.com"] = &admin.User{PrimaryEmail: "a@x.com", Suspended: false}
		td := newTestDeps(dir, nil, nil, nil)

		w := performRequest(td.deps, "/api/users/suspend", map[string]string{"user_email": "a@x.com"})

		resp := decodeEnvelope(t, w)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "success", resp.Status)
		assert.Contains(t, resp.Message, "suspended")
		assert.Equal(t, 1, dir.suspendCalls)
	})

	t.Run("already suspended user fails", func(t *testing.T) {
		dir := newFakeDirectory()
		dir.users["a@x.com"] = &admin.User{PrimaryEmail: "a@x.com", Suspended: true}
		td := newTestDeps(dir, nil, nil, nil)

		w := performRequest(td.deps, "/api/users/suspend", map[string]string{"user_email": "a@x.com"})

		resp := decodeEnvelope(t, w)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, resp.Message, "already suspended")
		assert.Equal(t, 0, dir.suspendCalls)
	})

	t.Run("user not found", func(t *testing.T) {
		td := newTestDeps(newFakeDirectory(), nil, nil, nil)

		w := performRequest(td.deps, "/api/users/suspend", map[string]string{"user_email": "a@x.com"})

		resp := decodeEnvelope(t, w)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, resp.Message, "does not exist")
	})
}
