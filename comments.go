package main

import (
	"database/sql"
	"fmt"
)

func addComment(db *sql.DB, userID, postID int, body string) error {
	_, err := db.Exec(`
		INSERT INTO blog_comments (user_id, post_id, comment)
		VALUES (?, ?, ?)`, userID, postID, body)
	return err
}

func getCommentsByPostID(db *sql.DB, postID int) ([]Comment, error) {
	rows, err := db.Query(`
		SELECT user_id, post_id, comment
		FROM blog_comments
		WHERE post_id = ?`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.UserID, &c.PostID, &c.Body); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

// buildCommentViews resolves each comment's author and strips tags from
// its body. A comment must reference an existing user; a dangling
// user_id is an error, not an empty author.
func buildCommentViews(db *sql.DB, comments []Comment) ([]CommentView, error) {
	var views []CommentView
	for _, c := range comments {
		user, err := getUserByID(db, c.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, fmt.Errorf("comment references missing user %d", c.UserID)
		}
		views = append(views, CommentView{
			Name:  user.Name,
			Email: user.Email,
			Body:  stripTags(c.Body),
		})
	}
	return views, nil
}
