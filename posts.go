package main

import "database/sql"

// postDateLayout is the display form a post's creation date is stored
// in, day zero-padded: "May 01, 2025".
const postDateLayout = "January 02, 2006"

func getPosts(db *sql.DB) ([]Post, error) {
	query := "SELECT id, title, date, body, author, img_url, subtitle FROM blog_post ORDER BY id DESC"
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var post Post
		err := rows.Scan(&post.ID, &post.Title, &post.Date, &post.Body, &post.Author, &post.ImgURL, &post.Subtitle)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func getPostByID(db *sql.DB, id int) (*Post, error) {
	row := db.QueryRow(`
		SELECT id, title, date, body, author, img_url, subtitle
		FROM blog_post
		WHERE id = ?`, id)

	var post Post
	err := row.Scan(&post.ID, &post.Title, &post.Date, &post.Body, &post.Author, &post.ImgURL, &post.Subtitle)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

func createPost(db *sql.DB, title, date, body, author, imgURL, subtitle string) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO blog_post (title, date, body, author, img_url, subtitle)
		VALUES (?, ?, ?, ?, ?, ?)`, title, date, body, author, imgURL, subtitle)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// updatePost overwrites the five editable columns one statement at a
// time, inside a single transaction so a concurrent reader never sees a
// half-edited post.
func updatePost(db *sql.DB, id int, title, subtitle, author, imgURL, body string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	updates := []struct {
		query string
		value string
	}{
		{"UPDATE blog_post SET title = ? WHERE id = ?", title},
		{"UPDATE blog_post SET subtitle = ? WHERE id = ?", subtitle},
		{"UPDATE blog_post SET author = ? WHERE id = ?", author},
		{"UPDATE blog_post SET img_url = ? WHERE id = ?", imgURL},
		{"UPDATE blog_post SET body = ? WHERE id = ?", body},
	}

	for _, u := range updates {
		if _, err := tx.Exec(u.query, u.value, id); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func deletePost(db *sql.DB, id int) error {
	_, err := db.Exec("DELETE FROM blog_post WHERE id = ?", id)
	return err
}
