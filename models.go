package main

import "time"

type User struct {
	ID       int
	Email    string
	Password string
	Name     string
}

type Post struct {
	ID       int
	Title    string
	Date     string
	Body     string
	Author   string
	ImgURL   string
	Subtitle string
}

type Comment struct {
	UserID int
	PostID int
	Body   string
}

// CommentView is a comment resolved for display: the author's name and
// email plus the tag-stripped body. The stored body stays untouched.
type CommentView struct {
	Name  string
	Email string
	Body  string
}

type Session struct {
	Token     string
	UserID    int
	ExpiresAt time.Time
}
