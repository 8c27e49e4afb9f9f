package v1

import (
	"net/http"
	"time"

	"sunnyside-backend/internal/domain"
	"sunnyside-backend/internal/usecase"
	"sunnyside-backend/pkg/utils"

	"github.com/goccy/go-json"
)

type AuthHandler struct {
	authUC       *usecase.AuthUsecase
	cookieSecure bool
	tokenExpiry  time.Duration
}

func NewAuthHandler(uc *usecase.AuthUsecase, env string, tokenExpiry time.Duration) *AuthHandler {
	return &AuthHandler{
		authUC:       uc,
		cookieSecure: env == "production",
		tokenExpiry:  tokenExpiry,
	}
}

func (h *AuthHandler) setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "accessToken",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.tokenExpiry.Seconds()),
	})
}

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	token, user, err := h.authUC.Register(r.Context(), req.Email, req.Password, req.FullName, req.Phone)
	if err != nil {
		respondError(w, err, http.StatusBadRequest)
		return
	}

	h.setAuthCookie(w, token)
	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	token, user, err := h.authUC.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err, http.StatusInternalServerError)
		return
	}

	h.setAuthCookie(w, token)
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "accessToken",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me returns the full profile from the database, not just token claims.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentUser(w, r)
	if !ok {
		return
	}

	user, err := h.authUC.GetUserByID(r.Context(), claims.ID)
	if err != nil {
		respondError(w, err, http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

type profileReq struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req profileReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	user, err := h.authUC.UpdateProfile(r.Context(), claims.ID, req.FullName, req.Phone, req.Address)
	if err != nil {
		respondError(w, err, http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

// ListUsers - Admin endpoint to get all users
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page := utils.ParseInt(r.URL.Query().Get("page"), 1)
	if page < 1 {
		page = 1
	}
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 10)
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	users, total, err := h.authUC.GetAllUsers(r.Context(), limit, offset)
	if err != nil {
		respondError(w, err, http.StatusInternalServerError)
		return
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Data:    users,
		Meta: domain.Pagination{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	})
}
