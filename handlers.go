package main

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func (b *Blog) Home(w http.ResponseWriter, r *http.Request) {
	posts, err := getPosts(b.db)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Title": "Home",
		"Posts": posts,
		"User":  currentUser(r),
		"Flash": popFlash(w, r),
	}

	err = b.templates["index.html"].ExecuteTemplate(w, "base", data)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// ShowPost renders a post with its comments. A POST submits a comment
// and falls through to the same render, so the new comment shows up in
// the response without a redirect.
func (b *Blog) ShowPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := getPostByID(b.db, id)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if post == nil {
		http.NotFound(w, r)
		return
	}

	if r.Method == http.MethodPost {
		if !parseFormWithCSRF(w, r) {
			return
		}

		user := currentUser(r)
		if user == nil {
			setFlash(w, "You must be logged in to submit a comment, please log in and try again.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		body := r.FormValue("comment")
		if body == "" {
			setFlash(w, "Comment cannot be empty.")
			http.Redirect(w, r, fmt.Sprintf("/post/%d", id), http.StatusSeeOther)
			return
		}

		if err := addComment(b.db, user.ID, id, body); err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
	}

	comments, err := getCommentsByPostID(b.db, id)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	views, err := buildCommentViews(b.db, comments)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Title":     post.Title,
		"Post":      post,
		"Comments":  views,
		"User":      currentUser(r),
		"Flash":     popFlash(w, r),
		"CSRFToken": ensureCSRFToken(w, r),
	}

	err = b.templates["post.html"].ExecuteTemplate(w, "base", data)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// readPostForm pulls the five editable post fields out of a submitted
// form. ok is false when any field is missing.
func readPostForm(r *http.Request) (title, subtitle, author, imgURL, body string, ok bool) {
	title = r.FormValue("title")
	subtitle = r.FormValue("subtitle")
	author = r.FormValue("author")
	imgURL = r.FormValue("img_url")
	body = r.FormValue("body")
	ok = title != "" && subtitle != "" && author != "" && imgURL != "" && body != ""
	return
}

func (b *Blog) NewPost(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		data := map[string]any{
			"Title":     "New Post",
			"User":      currentUser(r),
			"Flash":     popFlash(w, r),
			"CSRFToken": ensureCSRFToken(w, r),
		}
		err := b.templates["make-post.html"].ExecuteTemplate(w, "base", data)
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	if !parseFormWithCSRF(w, r) {
		return
	}

	title, subtitle, author, imgURL, body, ok := readPostForm(r)
	if !ok {
		setFlash(w, "All fields are required.")
		http.Redirect(w, r, "/new-post", http.StatusSeeOther)
		return
	}

	date := time.Now().Format(postDateLayout)
	if _, err := createPost(b.db, title, date, body, author, imgURL, subtitle); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (b *Blog) EditPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	if r.Method == http.MethodGet {
		post, err := getPostByID(b.db, id)
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if post == nil {
			http.NotFound(w, r)
			return
		}

		data := map[string]any{
			"Title":     fmt.Sprintf("Editing %q", post.Title),
			"Post":      post,
			"IsEdit":    true,
			"User":      currentUser(r),
			"Flash":     popFlash(w, r),
			"CSRFToken": ensureCSRFToken(w, r),
		}
		err = b.templates["make-post.html"].ExecuteTemplate(w, "base", data)
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	if !parseFormWithCSRF(w, r) {
		return
	}

	title, subtitle, author, imgURL, body, ok := readPostForm(r)
	if !ok {
		setFlash(w, "All fields are required.")
		http.Redirect(w, r, fmt.Sprintf("/edit-post/%d", id), http.StatusSeeOther)
		return
	}

	if err := updatePost(b.db, id, title, subtitle, author, imgURL, body); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/post/%d", id), http.StatusSeeOther)
}

// DeletePost removes a post unconditionally. Deleting an id that does
// not exist is not an error; either way the caller lands on the list.
func (b *Blog) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	if err := deletePost(b.db, id); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (b *Blog) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		data := map[string]any{
			"Title":     "Register",
			"User":      currentUser(r),
			"Flash":     popFlash(w, r),
			"CSRFToken": ensureCSRFToken(w, r),
		}
		err := b.templates["register.html"].ExecuteTemplate(w, "base", data)
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	if !parseFormWithCSRF(w, r) {
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	name := r.FormValue("name")

	if email == "" || password == "" || name == "" {
		setFlash(w, "All fields are required.")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	existing, err := getUserByEmail(b.db, email)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		setFlash(w, "An account with that email already exists, log in instead.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	hash, err := hashPassword(password)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	id, err := createUser(b.db, email, hash, name)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// New accounts are logged in right away.
	token, err := createSession(b.db, int(id))
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	setSessionCookie(w, token)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (b *Blog) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		data := map[string]any{
			"Title":     "Login",
			"User":      currentUser(r),
			"Flash":     popFlash(w, r),
			"CSRFToken": ensureCSRFToken(w, r),
		}
		err := b.templates["login.html"].ExecuteTemplate(w, "base", data)
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	if !parseFormWithCSRF(w, r) {
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := getUserByEmail(b.db, email)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		setFlash(w, "The entered email does not exist, please try again!")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if !checkPassword(user.Password, password) {
		setFlash(w, "You have entered an incorrect password, please try again!")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	token, err := createSession(b.db, user.ID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	setSessionCookie(w, token)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (b *Blog) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		deleteSession(b.db, cookie.Value)
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (b *Blog) About(w http.ResponseWriter, r *http.Request) {
	b.staticPage(w, r, "about.html", "About", aboutSetting)
}

func (b *Blog) Contact(w http.ResponseWriter, r *http.Request) {
	b.staticPage(w, r, "contact.html", "Contact", contactSetting)
}

func (b *Blog) staticPage(w http.ResponseWriter, r *http.Request, page, title, settingKey string) {
	text, err := getSetting(b.db, settingKey)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Title": title,
		"Text":  text,
		"User":  currentUser(r),
		"Flash": popFlash(w, r),
	}

	err = b.templates[page].ExecuteTemplate(w, "base", data)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
