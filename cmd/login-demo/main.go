// Command login-demo is a small standalone login page. It shares no state or
// logic with the interaction lookup service; it exists as an independent demo
// and must stay that way.
package main

import (
	"crypto/subtle"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

const loginPage = `<!DOCTYPE html>
<html>
<head><title>Login</title></head>
<body>
  <h2>Login</h2>
  <form method="POST" action="/login">
    <label>Username: <input type="text" name="username"></label><br>
    <label>Password: <input type="password" name="password"></label><br>
    <button type="submit">Sign in</button>
  </form>
</body>
</html>`

// newRouter builds the demo routes against the configured credentials
func newRouter(username, password string) chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusFound)
	})

	router.Get("/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, loginPage)
	})

	router.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		user := r.PostFormValue("username")
		pass := r.PostFormValue("password")

		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if userOK && passOK {
			// The username is reflected into HTML, so escape it
			fmt.Fprintf(w, "Welcome, %s!", html.EscapeString(user))
			return
		}
		fmt.Fprint(w, "Invalid credentials, please try again.")
	})

	return router
}

func main() {
	_ = godotenv.Load()

	username := getEnvWithDefault("DEMO_USERNAME", "admin")
	password := getEnvWithDefault("DEMO_PASSWORD", "1234")
	port := getEnvWithDefault("DEMO_PORT", "8090")

	router := newRouter(username, password)

	addr := "127.0.0.1:" + port
	slog.Info("Login demo listening", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("Login demo server failed", "error", err)
		os.Exit(1)
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
