package middleware

import (
	"net/http"
	"strings"

	"github.com/peakform/peakformcom/internal/auth"
	"github.com/peakform/peakformcom/internal/telemetry/tracing"
	"github.com/peakform/peakformcom/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

type AuthMiddlewareHandler struct {
	clientAppSecret      string
	loginChecker         auth.Checker
	allowedPaths         map[string]bool
	allowedPathsPrefixes []string
}

func NewAuthMiddlewareHandler(
	clientAppSecret string,
	loginChecker auth.Checker,
) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		clientAppSecret: clientAppSecret,
		loginChecker:    loginChecker,
		allowedPaths: map[string]bool{
			"/":        true,
			"/version": true,

			// login-logout:
			"/a/login":  true,
			"/a/logout": true,

			// public content:
			"/recipes": true,
		},
		allowedPathsPrefixes: []string{
			"/recipes/page/",
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(path string) bool {
	if h.allowedPaths[path] {
		return true
	}
	for _, prefix := range h.allowedPathsPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.pathIsAlwaysAllowed(r.URL.Path) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := r.Header.Get("X-PEAKFORM-TOKEN")

			// requests coming from the client mobile app: progress tracking only
			if strings.HasPrefix(r.URL.Path, "/progress") {
				if h.clientAppSecret != "" && authToken == h.clientAppSecret {
					span.SetStatus(codes.Ok, "client-app-ok")
					next.ServeHTTP(w, r)
					return
				}
				// fall through to the regular session check (trainer dashboards
				// view the same progress endpoints)
			}

			if authToken == "" {
				reqIp, _ := pkg.ReadUserIP(r)
				log.Tracef("[missing token] [auth middleware] unauthorized => %s [%s]", r.URL.Path, reqIp)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			isLogged, err := h.loginChecker.IsLogged(ctx, authToken)
			if err != nil {
				log.Errorf("[failed login check] => %s: %s", r.URL.Path, err)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "check-logged-err")
				span.RecordError(err)
				return
			}
			if !isLogged {
				log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "not-logged")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
