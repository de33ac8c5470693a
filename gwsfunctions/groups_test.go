package main

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	admin "google.golang.org/api/admin/directory/v1"
)

func groupFixture() *fakeDirectory {
	dir := newFakeDirectory()
	dir.users["member@example.com"] = &admin.User{PrimaryEmail: "member@example.com"}
	dir.groups["team@example.com"] = true
	return dir
}

func TestAddToGroup(t *testing.T) {
	body := map[string]string{
		"user_email":  "member@example.com",
		"group_email": "team@example.com",
	}

	t.Run("success", func(t *testing.T) {
		dir := groupFixture()
		td := newTestDeps(dir, nil, nil, nil)

		w := performRequest(td.deps, "/api/groups/add", body)

		resp := decodeEnvelope(t, w)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, resp.Message, "added to group")
		assert.Equal(t, 1, dir.addCalls)
	})

	t.Run("already a member is a no-op success", func(t *testing.T) {
		dir := groupFixture()
		dir.members["team@example.com"] = []string{"other@example.com", "member@example.com"}
		td := newTestDeps(dir, nil, nil, nil)

		w := performRequest(td.deps, "/api/groups/add", body)

		resp := decodeEnvelope(t, w)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, resp.Message, "already in group")
		assert.Equal(t, 0, dir.addCalls)
	})

	t.Run("missing group_email skips authentication", func(t *testing.T) {
		td := newTestDeps(groupFixture(), nil, nil, nil)

		w := performRequest(td.deps, "/api/groups/add", map[string]string{"user_email": "member@example.com"})

		resp := decodeEnvelope(t, w)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, resp.Message, "Missing parameter")
		assert.Equal(t, 0, td.directoryHits)
	})

	t.Run("user not found", func(t *testing.T) {
		dir := newFakeDirectory()
		dir.groups["team@example.com"] = true
		td := newTestDeps(dir, nil, nil, nil)

		w := performRequest(td.deps, "/api/groups/add", body)

		resp := decodeEnvelope(t, w)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, resp.Message, "User, member@example.com does not exist.")
	})

	t.Run("group not found", func(t *testing.T) {
		dir := newFakeDirectory()
		dir.users["member@example.com"] = &admin.User{PrimaryEmail: "member@example.com"}
		td := newTestDeps(dir, nil, nil, nil)

		w := performRequest(td.deps, "/api/groups/add", body)

		resp := decodeEnvelope(t, w)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, resp.Message, "Group, team@example.com does not exist.")
	})

	t.Run("membership listing failure is an operation failure", func(t *testing.T) {
		dir := groupFixture()
		dir.listErr = errors.New("backend unavailable")
		td := newTestDeps(dir, nil, nil, nil)

		w := performRequest(td.deps, "/api/groups/add", body)

		resp := decodeEnvelope(t, w)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, resp.Message, "Failed to add user to group")
		assert.Equal(t, 0, dir.addCalls)
	})
}

func TestRemoveFromGroup(t *testing.T) {
	body := map[string]string{
		"user_email":  "member@example.com",
		"group_email": "team@example.com",
	}

	t.Run("success", func(t *testing.T) {
		dir := groupFixture()
		td := newTestDeps(dir, nil, nil, nil)

		w := performRequest(td.deps, "/api/groups/remove", body)

		resp := decodeEnvelope(t, w)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, resp.Message, "removed from group successfully")
		assert.Equal(t, 1, dir.removeCalls)
	})

	t.Run("user not found", func(t *testing.T) {
		dir := newFakeDirectory()
		dir.groups["team@example.com"] = true
		td := newTestDeps(dir, nil, nil, nil)

		w := performRequest(td.deps, "/api/groups/remove", body)

		resp := decodeEnvelope(t, w)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, resp.Message, "does not exist")
		assert.Equal(t, 0, dir.removeCalls)
	})

	t.Run("delete failure is reported", func(t *testing.T) {
		dir := groupFixture()
		dir.mutateErr = errors.New("member delete rejected")
		td := newTestDeps(dir, nil, nil, nil)

		w := performRequest(td.deps, "/api/groups/remove", body)

		resp := decodeEnvelope(t, w)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, resp.Message, "Failed to remove user from group")
		assert.Contains(t, resp.Message, "member delete rejected")
	})
}
