package main

import (
	"database/sql"
	"html/template"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

type Blog struct {
	db        *sql.DB
	templates map[string]*template.Template
}

func NewBlog(db *sql.DB) *Blog {
	return &Blog{
		db:        db,
		templates: loadTemplates(),
	}
}

func (b *Blog) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(b.withUser)

	fs := http.FileServer(http.Dir("static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fs))

	// Public routes
	r.Get("/", b.Home)
	r.Get("/post/{id}", b.ShowPost)
	r.Post("/post/{id}", b.ShowPost)
	r.Get("/register", b.Register)
	r.Post("/register", b.Register)
	r.Get("/login", b.Login)
	r.Post("/login", b.Login)
	r.Get("/logout", b.Logout)
	r.Get("/about", b.About)
	r.Get("/contact", b.Contact)

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(requireAdmin)
		r.Get("/new-post", b.NewPost)
		r.Post("/new-post", b.NewPost)
		r.Get("/edit-post/{id}", b.EditPost)
		r.Post("/edit-post/{id}", b.EditPost)
		r.Get("/delete/{id}", b.DeletePost)
	})

	return r
}

func main() {
	godotenv.Load()

	initAuth()

	dbPath := os.Getenv("BLOG_DB")
	if dbPath == "" {
		dbPath = "posts.db"
	}

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err = initDB(db); err != nil {
		log.Fatalf("initializing database: %v", err)
	}

	if err = seedSettings(db); err != nil {
		log.Fatalf("seeding settings: %v", err)
	}

	if err = cleanupExpiredSessions(db); err != nil {
		log.Printf("cleaning up expired sessions: %v", err)
	}

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		for range ticker.C {
			if err := cleanupExpiredSessions(db); err != nil {
				log.Printf("cleaning up expired sessions: %v", err)
			}
		}
	}()

	blog := NewBlog(db)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	log.Printf("Server starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, blog.Routes()))
}
