package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Lilia-Brown/expensy-api/internal/rest"
	"github.com/Lilia-Brown/expensy-api/pkg/user"
	log "github.com/sirupsen/logrus"
)

type loginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponseDTO struct {
	Token string       `json:"token"`
	User  user.UserDTO `json:"user"`
}

type Handler struct {
	authService Service
}

func NewHandler(authService Service) *Handler {
	return &Handler{authService}
}

// Login handles POST /auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto loginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	authenticated, token, err := h.authService.Authenticate(r.Context(), dto.Email, dto.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		rest.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	} else if err != nil {
		log.Errorf("login failed: %v", err)
		rest.Error(w, http.StatusInternalServerError, "Server error during login.")
		return
	}

	rest.JSON(w, http.StatusOK, loginResponseDTO{
		Token: token,
		User:  user.ToDTO(authenticated),
	})
}
