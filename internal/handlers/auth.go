package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/nareldigital/narel/internal/services"
	"github.com/nareldigital/narel/internal/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// AdminLogin verifies credentials, opens a cookie session, and returns a
// bearer token for cookie-less clients.
func (h *Handlers) AdminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.loggerFromContext(ctx)

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	admin, err := h.authService.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		logger.Error("login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.authService.IssueToken(admin)
	if err != nil {
		logger.Error("failed to issue token", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if _, err := h.sessionManager.CreateSession(ctx, w, &session.Data{
		AdminID:   admin.ID,
		Email:     admin.Email,
		CreatedAt: time.Now().Unix(),
	}); err != nil {
		logger.Error("failed to create session", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	logger.Info("admin logged in", "admin_id", admin.ID)
	writeJSON(w, http.StatusOK, loginResponse{Email: admin.Email, Token: token})
}

func (h *Handlers) AdminLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.sessionManager.DestroySession(ctx, w, r); err != nil {
		h.loggerFromContext(ctx).Warn("failed to destroy session", "error", err)
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

// AdminSession reports the authenticated admin for the current request.
func (h *Handlers) AdminSession(w http.ResponseWriter, r *http.Request) {
	data := session.FromContext(r.Context())
	if data == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"admin_id": data.AdminID.String(),
		"email":    data.Email,
	})
}

// RequireAdmin admits requests carrying either a valid session cookie or a
// bearer token. Failures get a JSON 401, never a redirect.
func (h *Handlers) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if data := session.FromContext(ctx); data != nil {
			next.ServeHTTP(w, r)
			return
		}

		if token := bearerToken(r); token != "" {
			adminID, email, err := h.authService.VerifyToken(token)
			if err == nil {
				ctx = session.WithData(ctx, &session.Data{AdminID: adminID, Email: email})
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
			h.loggerFromContext(ctx).Warn("rejected bearer token", "error", err)
		}

		writeError(w, http.StatusUnauthorized, "Authentication required")
	})
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return ""
	}

	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
