package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/config"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/httperr"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/middleware"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/models"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/otp"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	otp    *otp.Service
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, otpService *otp.Service) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, otp: otpService}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=80"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type RegisterVerifyRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=80"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Code     string `json:"code" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginVerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// --------- Handlers ---------

// Register starts the registration flow: it emails a code for the pending
// address. The user row is only created once the code verifies.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "Email already registered.")
		return
	}

	if err := h.otp.SendAndStore(c.Request.Context(), otp.SentinelUserID, email, otp.TypeRegistration); err != nil {
		if errors.Is(err, otp.ErrTooManySends) {
			httperr.Write(c, http.StatusTooManyRequests, "otp_rate_limited", "Too many codes requested. Try again later.")
			return
		}
		httperr.Internal(c, "otp_send_failed", "Could not send the verification code.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "otp_sent"})
}

// RegisterVerify consumes the registration code and creates the account.
func (h *AuthHandler) RegisterVerify(c *gin.Context) {
	var req RegisterVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "Email already registered.")
		return
	}

	ok, err := h.otp.Verify(c.Request.Context(), otp.SentinelUserID, req.Code, otp.TypeRegistration, email)
	if err != nil {
		httperr.Internal(c, "otp_verify_failed", "Could not verify the code.")
		return
	}
	if !ok {
		httperr.BadRequest(c, "invalid_otp", "Invalid or expired code.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not create the account.")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         middleware.RoleClient,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Could not create the account.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not create the session.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  userPayload(&user),
		"token": token,
	})
}

// Login checks credentials, then emails a login code. The session token is
// only issued by LoginVerify.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
			return
		}
		httperr.Internal(c, "internal_error", "Login failed.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	if err := h.otp.SendAndStore(c.Request.Context(), user.ID, user.Email, otp.TypeLogin); err != nil {
		if errors.Is(err, otp.ErrTooManySends) {
			httperr.Write(c, http.StatusTooManyRequests, "otp_rate_limited", "Too many codes requested. Try again later.")
			return
		}
		httperr.Internal(c, "otp_send_failed", "Could not send the verification code.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "otp_sent"})
}

// LoginVerify consumes the login code and issues the session token.
func (h *AuthHandler) LoginVerify(c *gin.Context) {
	var req LoginVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		httperr.Unauthorized(c, "invalid_otp", "Invalid or expired code.")
		return
	}

	ok, err := h.otp.Verify(c.Request.Context(), user.ID, req.Code, otp.TypeLogin, "")
	if err != nil {
		httperr.Internal(c, "otp_verify_failed", "Could not verify the code.")
		return
	}
	if !ok {
		httperr.Unauthorized(c, "invalid_otp", "Invalid or expired code.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not create the session.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userPayload(&user),
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}
}
