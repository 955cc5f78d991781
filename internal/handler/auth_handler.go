package handler

import (
	"net/http"
	"time"

	"github.com/BrenoDPS/teste-tecnico-backend/internal/model"
	"github.com/BrenoDPS/teste-tecnico-backend/internal/repository"
	"github.com/BrenoDPS/teste-tecnico-backend/pkg/jwtutil"
	"github.com/BrenoDPS/teste-tecnico-backend/pkg/logger"
	"github.com/BrenoDPS/teste-tecnico-backend/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterRequest defines the structure for account creation requests
type RegisterRequest struct {
	Email       string `json:"email"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	IsActive    *bool  `json:"is_active,omitempty"`
	IsSuperuser bool   `json:"is_superuser,omitempty"`
}

// TokenRequest defines the structure for token exchange requests
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthHandler serves account registration and token issuance
type AuthHandler struct {
	users *repository.UserRepo
	jwt   *jwtutil.JWTUtil
}

// NewAuthHandler creates the auth handler
func NewAuthHandler(users *repository.UserRepo, jwt *jwtutil.JWTUtil) *AuthHandler {
	return &AuthHandler{users: users, jwt: jwt}
}

// Register creates a new account
func (h *AuthHandler) Register(c echo.Context) error {
	log := logger.FromContext(c)

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse registration request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if req.Email == "" || req.Username == "" || req.Password == "" {
		log.Warn("Incomplete registration data", zap.String("username", req.Username))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email, username and password are required"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	taken, err := h.users.ExistsByEmailOrUsername(c.Request().Context(), req.Email, req.Username)
	if err != nil {
		log.Error("Failed to check existing accounts", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}
	if taken {
		log.Warn("Identifier already registered", zap.String("username", req.Username))
		return c.JSON(http.StatusConflict, echo.Map{"error": "email or username already registered"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	user := model.User{
		Email:          req.Email,
		Username:       req.Username,
		HashedPassword: string(hashedPassword),
		IsActive:       isActive,
		IsSuperuser:    req.IsSuperuser,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.users.Create(c.Request().Context(), &user); err != nil {
		if repository.IsConstraintViolation(err) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email or username already registered"})
		}
		log.Error("Failed to create user", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	log.Info("User registered", zap.String("username", user.Username), zap.Uint("id", user.ID))
	return c.JSON(http.StatusCreated, user)
}

// Token exchanges username/password for a bearer token
func (h *AuthHandler) Token(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.AuthAttemptsCounter.Inc()

	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse token request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	user, err := h.users.GetByUsername(c.Request().Context(), req.Username)
	if err != nil {
		log.Warn("Unknown username", zap.String("username", req.Username))
		prometheus.AuthErrorsCounter.Inc()
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "incorrect username or password"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		log.Warn("Invalid password", zap.String("username", req.Username))
		prometheus.AuthErrorsCounter.Inc()
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "incorrect username or password"})
	}

	token, err := h.jwt.GenerateToken(user.Username, user.Email, user.ID)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	prometheus.AuthSuccessCounter.Inc()
	log.Info("User logged in", zap.String("username", user.Username))
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Me returns the caller's own account
func (h *AuthHandler) Me(c echo.Context) error {
	log := logger.FromContext(c)

	userID, ok := c.Get("user_id").(uint)
	if !ok {
		log.Error("Failed to get user ID from context")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	user, err := h.users.GetByID(c.Request().Context(), userID)
	if err != nil {
		log.Warn("Token subject no longer exists", zap.Uint("user_id", userID))
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	return c.JSON(http.StatusOK, user)
}
