package server

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gratitude/internal/middleware"
	"gratitude/internal/models"
	"gratitude/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles new account creation. On success the new user is
// logged in immediately and receives a token, no separate login needed.
func (s *Server) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	if err := validation.ValidateUsername(req.Username); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if req.Password != req.PasswordConfirm {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Passwords do not match"))
	}

	if existing, err := s.userRepo.GetByUsername(c.Context(), req.Username); err != nil {
		return respondServiceError(c, err)
	} else if existing != nil {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewValidationError("Username is already taken"))
	}
	if existing, err := s.userRepo.GetByEmail(c.Context(), req.Email); err != nil {
		return respondServiceError(c, err)
	} else if existing != nil {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewValidationError("Email is already registered"))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return respondServiceError(c, err)
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  string(hashed),
	}
	if err := s.userRepo.Create(c.Context(), user); err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == "VALIDATION_ERROR" {
			return models.RespondWithError(c, fiber.StatusConflict, appErr)
		}
		return respondServiceError(c, err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "user registered",
		"user_id", user.ID, "username", user.Username)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("Welcome, %s! Your gratitude journal is ready.", user.Username),
		"token":   token,
		"user":    user,
	})
}

// Login authenticates by username and password and issues a token.
func (s *Server) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username and password are required"))
	}

	user, err := s.userRepo.GetByUsername(c.Context(), req.Username)
	if err != nil {
		return respondServiceError(c, err)
	}
	if user == nil {
		// Same response as a bad password so usernames cannot be probed.
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid credentials"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid credentials"))
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "user logged in", "user_id", user.ID)

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Welcome back, %s!", user.Username),
		"token":   token,
		"user":    user,
	})
}

// Logout revokes the presented token by blacklisting its JTI until expiry.
func (s *Server) Logout(c *fiber.Ctx) error {
	jti, _ := c.Locals("jti").(string)
	exp, _ := c.Locals("tokenExp").(int64)

	if jti != "" && s.redis != nil {
		ttl := time.Until(time.Unix(exp, 0))
		if ttl <= 0 {
			ttl = time.Minute
		}
		if err := s.redis.Set(c.Context(), "blacklist:"+jti, "1", ttl).Err(); err != nil {
			middleware.RedisErrors.WithLabelValues("blacklist_set").Inc()
			middleware.Logger.WarnContext(c.UserContext(), "failed to blacklist token", "error", err)
		}
	}

	return c.JSON(fiber.Map{
		"message": "You have been logged out.",
	})
}

// ChangePasswordRequest is the payload for POST /api/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword    string `json:"current_password"`
	NewPassword        string `json:"new_password"`
	NewPasswordConfirm string `json:"new_password_confirm"`
}

// ChangePassword updates the authenticated user's password.
func (s *Server) ChangePassword(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Current password is incorrect"))
	}

	if err := validation.ValidatePassword(req.NewPassword); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if req.NewPassword != req.NewPasswordConfirm {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Passwords do not match"))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return respondServiceError(c, err)
	}
	user.Password = string(hashed)

	if err := s.userRepo.Update(c.Context(), user); err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "password changed", "user_id", userID)

	return c.JSON(fiber.Map{
		"message": "Password updated successfully.",
	})
}

// generateToken issues a signed JWT for the given user.
func (s *Server) generateToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": "gratitude-api",
		"aud": "gratitude-client",
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}
