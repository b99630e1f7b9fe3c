package httpx

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	domainauth "github.com/target/academic-suite/internal/domain/auth"
)

//go:embed pages/*.html
var pagesFS embed.FS

var (
	fallbackTmpl = template.Must(template.ParseFS(pagesFS, "pages/fallback.html"))
	loginTmpl    = template.Must(template.ParseFS(pagesFS, "pages/login.html"))
)

// LoginPath is the browser sign-in page.
const LoginPath = "/login"

type fallbackPage struct {
	Title    string
	Message  string
	LinkHref string
	LinkText string
}

func unauthenticatedPage() fallbackPage {
	return fallbackPage{
		Title:    domainauth.UnauthenticatedTitle,
		Message:  domainauth.UnauthenticatedMessage,
		LinkHref: LoginPath,
		LinkText: "Go to Login",
	}
}

func forbiddenPage(msg string) fallbackPage {
	return fallbackPage{
		Title:    domainauth.ForbiddenTitle,
		Message:  msg,
		LinkHref: "/dashboard",
		LinkText: "Back to Dashboard",
	}
}

func renderFallback(w http.ResponseWriter, logger *slog.Logger, status int, page fallbackPage) {
	renderPage(w, logger, fallbackTmpl, status, page, page.Message)
}

type loginPageData struct {
	Error string
}

func renderLogin(w http.ResponseWriter, logger *slog.Logger, data loginPageData) {
	renderPage(w, logger, loginTmpl, http.StatusOK, data, "Sign in at "+LoginPath)
}

func renderPage(w http.ResponseWriter, logger *slog.Logger, tmpl *template.Template, status int, data any, plain string) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		logger.Error("render page", "page", tmpl.Name(), "error", err)
		http.Error(w, plain, status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
