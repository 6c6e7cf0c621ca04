package handler

import (
	"context"      // provides context with cancellation for DB calls
	"database/sql" // SQL sentinel errors
	"net/http"     // HTTP status codes and primitives
	"time"         // timeouts for DB calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/railbook/train-booking/internal/config"     // app configuration
	"github.com/railbook/train-booking/internal/repository" // DB repositories
	"github.com/railbook/train-booking/internal/utils"      // helper functions (hashing, token issuing)
)

// AuthHandler bundles dependencies for the registration and login endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type registerReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}
type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a user.  The username must be unused and the password at
// least 6 characters; responses are plain text to match the established
// API contract.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request body")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	exists, err := h.Users.Exists(ctx, req.Username)
	if err != nil {
		return c.String(http.StatusInternalServerError, "Database error")
	}
	if exists {
		return c.String(http.StatusBadRequest, "User already exists")
	}
	if len(req.Password) < 6 {
		return c.String(http.StatusBadRequest, "Password is too short")
	}

	if _, err := h.Users.Create(ctx, req.Username, req.Password, req.Email, h.Cfg.BcryptCost); err != nil {
		// The UNIQUE column can still reject a racing duplicate that passed
		// the Exists check above.
		if err == repository.ErrUserExists {
			return c.String(http.StatusBadRequest, "User already exists")
		}
		return c.String(http.StatusInternalServerError, "Database error")
	}
	return c.String(http.StatusOK, "User created successfully")
}

// Login verifies the credentials and returns a signed token carrying the
// username and numeric id.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request body")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.String(http.StatusBadRequest, "Invalid user")
		}
		return c.String(http.StatusInternalServerError, "Database error")
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.String(http.StatusBadRequest, "Invalid password")
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.Username, u.ID, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.String(http.StatusInternalServerError, "Failed to issue token")
	}
	return c.JSON(http.StatusOK, echo.Map{"jwtToken": access.Token})
}
