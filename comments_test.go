package main

import (
	"strings"
	"testing"
)

func TestAddAndGetComments(t *testing.T) {
	db := setupTestDB(t)

	userID, _ := createUser(db, "ada@example.com", "hash", "Ada")
	postID, _ := createPost(db, "Post", "May 1, 2025", "body", "Ada", "url", "sub")

	if err := addComment(db, int(userID), int(postID), "nice post"); err != nil {
		t.Fatalf("addComment() error: %v", err)
	}

	comments, err := getCommentsByPostID(db, int(postID))
	if err != nil {
		t.Fatalf("getCommentsByPostID() error: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(comments))
	}
	if comments[0].UserID != int(userID) {
		t.Errorf("expected user id %d, got %d", userID, comments[0].UserID)
	}
	if comments[0].PostID != int(postID) {
		t.Errorf("expected post id %d, got %d", postID, comments[0].PostID)
	}
	if comments[0].Body != "nice post" {
		t.Errorf("expected body 'nice post', got %q", comments[0].Body)
	}
}

func TestGetCommentsByPostID_FiltersByPost(t *testing.T) {
	db := setupTestDB(t)

	userID, _ := createUser(db, "ada@example.com", "hash", "Ada")
	firstPost, _ := createPost(db, "First", "May 1, 2025", "body", "Ada", "url", "sub")
	secondPost, _ := createPost(db, "Second", "May 2, 2025", "body", "Ada", "url", "sub")

	addComment(db, int(userID), int(firstPost), "on first")
	addComment(db, int(userID), int(secondPost), "on second")

	comments, err := getCommentsByPostID(db, int(firstPost))
	if err != nil {
		t.Fatalf("getCommentsByPostID() error: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(comments))
	}
	if comments[0].Body != "on first" {
		t.Errorf("expected 'on first', got %q", comments[0].Body)
	}
}

func TestBuildCommentViews(t *testing.T) {
	db := setupTestDB(t)

	userID, _ := createUser(db, "ada@example.com", "hash", "Ada")
	postID, _ := createPost(db, "Post", "May 1, 2025", "body", "Ada", "url", "sub")
	addComment(db, int(userID), int(postID), "  <b>bold</b> opinion  ")

	comments, _ := getCommentsByPostID(db, int(postID))
	views, err := buildCommentViews(db, comments)
	if err != nil {
		t.Fatalf("buildCommentViews() error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}

	if views[0].Name != "Ada" {
		t.Errorf("expected name 'Ada', got %q", views[0].Name)
	}
	if views[0].Email != "ada@example.com" {
		t.Errorf("expected email 'ada@example.com', got %q", views[0].Email)
	}
	if views[0].Body != "bold opinion" {
		t.Errorf("expected stripped body 'bold opinion', got %q", views[0].Body)
	}
}

func TestBuildCommentViews_MissingAuthor(t *testing.T) {
	db := setupTestDB(t)

	postID, _ := createPost(db, "Post", "May 1, 2025", "body", "Ada", "url", "sub")
	addComment(db, 999, int(postID), "orphan comment")

	comments, _ := getCommentsByPostID(db, int(postID))
	_, err := buildCommentViews(db, comments)
	if err == nil {
		t.Fatal("expected error for comment referencing missing user")
	}
	if !strings.Contains(err.Error(), "missing user") {
		t.Errorf("unexpected error: %v", err)
	}
}
