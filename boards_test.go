package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetBoard(t *testing.T) {
	t.Parallel()

	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"b1","name":"Roadmap","closed":false}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	board, err := c.GetBoard(context.Background(), "b1", Args{"lists": "open"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if path != "/boards/b1" {
		t.Errorf("expected path=/boards/b1, got %s", path)
	}

	if board.Name != "Roadmap" {
		t.Errorf("expected name=Roadmap, got %s", board.Name)
	}
}

func TestCreateBoard(t *testing.T) {
	t.Parallel()

	var method, name string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		name = r.URL.Query().Get("name")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"b2","name":"Q3 Planning"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	board, err := c.CreateBoard(context.Background(), "Q3 Planning", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if method != http.MethodPost {
		t.Errorf("expected POST, got %s", method)
	}

	if name != "Q3 Planning" {
		t.Errorf("expected name parameter, got %q", name)
	}

	if board.ID != "b2" {
		t.Errorf("expected id=b2, got %s", board.ID)
	}
}

func TestGetBoardLists(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/boards/b1/lists" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"l1","name":"Todo"},{"id":"l2","name":"Done"}]`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	lists, err := c.GetBoardLists(context.Background(), "b1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(lists) != 2 || lists[1].Name != "Done" {
		t.Errorf("unexpected lists: %+v", lists)
	}
}

func TestAddMemberToBoard(t *testing.T) {
	t.Parallel()

	var method, path, role string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		role = r.URL.Query().Get("type")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	if err := c.AddMemberToBoard(context.Background(), "b1", "m1", "admin"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if method != http.MethodPut || path != "/boards/b1/members/m1" || role != "admin" {
		t.Errorf("unexpected request: %s %s type=%s", method, path, role)
	}
}
