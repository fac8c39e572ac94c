package auth

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"github.com/ceylontrails/tourism-api/internal/config"
	"github.com/ceylontrails/tourism-api/internal/mailer"
	"github.com/ceylontrails/tourism-api/internal/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

const (
	GoogleUserInfoAPI = "https://openidconnect.googleapis.com/v1/userinfo"

	TokenDuration = time.Hour
	OTPDuration   = 10 * time.Minute
)

type AuthHandler struct {
	oauthConfig *oauth2.Config
	db          *gorm.DB
	cfg         *config.Config
	mailer      mailer.Mailer
}

func NewAuthHandler(cfg *config.Config, db *gorm.DB, m mailer.Mailer) *AuthHandler {
	return &AuthHandler{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		db:     db,
		cfg:    cfg,
		mailer: m,
	}
}

func (h *AuthHandler) GenerateToken(userID uuid.UUID, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"role":    string(role),
		"exp":     time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

// ParseToken verifies signature and expiry and returns the identity claims.
func (h *AuthHandler) ParseToken(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return Claims{}, fmt.Errorf("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, fmt.Errorf("invalid token claims")
	}
	rawID, _ := mapClaims["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return Claims{}, fmt.Errorf("invalid token claims")
	}
	role, _ := mapClaims["role"].(string)
	return Claims{UserID: userID, Role: models.Role(role)}, nil
}

type userSummary struct {
	ID    uuid.UUID   `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	Photo string      `json:"photo,omitempty"`
}

func summarize(u *models.User) userSummary {
	return userSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Photo: u.Photo}
}

type RegisterInput struct {
	Body struct {
		Name     string      `json:"name" minLength:"1" doc:"Display name"`
		Email    string      `json:"email" format:"email"`
		Password string      `json:"password" minLength:"6"`
		Role     models.Role `json:"role,omitempty" enum:"tourist,admin,hotel-owner,transport-owner"`
	}
}

type AuthOutput struct {
	Body struct {
		Message string      `json:"message"`
		Token   string      `json:"token"`
		User    userSummary `json:"user"`
	}
}

func (h *AuthHandler) HandleRegister(ctx context.Context, input *RegisterInput) (*AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Body.Email))

	var existing models.User
	if err := h.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, huma.Error400BadRequest("Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Body.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to hash password")
	}

	role := input.Body.Role
	if role == "" {
		role = models.RoleTourist
	} else if !models.ValidRole(role) {
		return nil, huma.Error400BadRequest("Invalid role")
	}

	user := models.User{
		Name:     strings.TrimSpace(input.Body.Name),
		Email:    email,
		Password: string(hashed),
		Role:     role,
		Provider: models.ProviderLocal,
	}
	if err := h.db.Create(&user).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create user")
	}

	token, err := h.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate token")
	}

	res := &AuthOutput{}
	res.Body.Message = "User registered successfully"
	res.Body.Token = token
	res.Body.User = summarize(&user)
	return res, nil
}

type LoginInput struct {
	Body struct {
		Email    string `json:"email" format:"email"`
		Password string `json:"password" minLength:"1"`
	}
}

func (h *AuthHandler) HandleLogin(ctx context.Context, input *LoginInput) (*AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Body.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, huma.Error400BadRequest("Invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Body.Password)) != nil {
		return nil, huma.Error400BadRequest("Invalid credentials")
	}

	token, err := h.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate token")
	}

	res := &AuthOutput{}
	res.Body.Message = "Login successful"
	res.Body.Token = token
	res.Body.User = summarize(&user)
	return res, nil
}

type ForgotPasswordInput struct {
	Body struct {
		Email string `json:"email" format:"email"`
	}
}

type MessageOutput struct {
	Body struct {
		Message string `json:"message"`
	}
}

func (h *AuthHandler) HandleForgotPassword(ctx context.Context, input *ForgotPasswordInput) (*MessageOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Body.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, huma.Error404NotFound("User not found")
	}

	otp, err := generateOTP()
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate OTP")
	}
	expiry := time.Now().Add(OTPDuration)
	user.OTP = otp
	user.OTPExpiry = &expiry
	if err := h.db.Save(&user).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to store OTP")
	}

	subject := "Your Password Reset OTP"
	body := fmt.Sprintf("Your OTP for password reset is: %s. It expires in 10 minutes.", otp)
	if err := h.mailer.Send(email, subject, body); err != nil {
		log.Printf("Failed to send OTP email to %s: %v", email, err)
		return nil, huma.Error500InternalServerError("Failed to send OTP email")
	}

	res := &MessageOutput{}
	res.Body.Message = "OTP sent to email"
	return res, nil
}

type ResetPasswordInput struct {
	Body struct {
		Email       string `json:"email" format:"email"`
		OTP         string `json:"otp" minLength:"6" maxLength:"6"`
		NewPassword string `json:"new_password" minLength:"6"`
	}
}

func (h *AuthHandler) HandleResetPassword(ctx context.Context, input *ResetPasswordInput) (*MessageOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Body.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, huma.Error404NotFound("User not found")
	}

	if user.OTP == "" || user.OTP != input.Body.OTP || user.OTPExpiry == nil || user.OTPExpiry.Before(time.Now()) {
		return nil, huma.Error400BadRequest("Invalid or expired OTP")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to hash password")
	}
	user.Password = string(hashed)
	user.OTP = ""
	user.OTPExpiry = nil
	if err := h.db.Save(&user).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update password")
	}

	res := &MessageOutput{}
	res.Body.Message = "Password reset successful"
	return res, nil
}

type GoogleSignInInput struct {
	Body struct {
		Code string `json:"code" minLength:"1" doc:"Google OAuth2 authorization code"`
	}
}

type googleUser struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func (h *AuthHandler) HandleGoogleSignIn(ctx context.Context, input *GoogleSignInInput) (*AuthOutput, error) {
	token, err := h.oauthConfig.Exchange(ctx, input.Body.Code)
	if err != nil {
		return nil, huma.Error400BadRequest("Failed to exchange Google auth code")
	}
	if token.Extra("id_token") == nil {
		return nil, huma.Error400BadRequest("Failed to retrieve ID token from Google")
	}

	client := h.oauthConfig.Client(ctx, token)
	resp, err := client.Get(GoogleUserInfoAPI)
	if err != nil {
		return nil, huma.Error400BadRequest("Failed to get Google user info")
	}
	defer resp.Body.Close()

	var gu googleUser
	if err := json.NewDecoder(resp.Body).Decode(&gu); err != nil {
		return nil, huma.Error400BadRequest("Failed to decode Google user info")
	}

	user, err := h.resolveGoogleUser(gu)
	if err != nil {
		return nil, err
	}

	jwtToken, err := h.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate token")
	}

	res := &AuthOutput{}
	res.Body.Message = "Google sign-in successful"
	res.Body.Token = jwtToken
	res.Body.User = summarize(user)
	return res, nil
}

// resolveGoogleUser maps an external identity onto a local account: first by
// Google subject, then by email. An email hit that belongs to a
// local-password account is a conflict, not a merge.
func (h *AuthHandler) resolveGoogleUser(gu googleUser) (*models.User, error) {
	var user models.User
	err := h.db.Where("google_id = ?", gu.Sub).First(&user).Error
	if err == nil {
		return &user, nil
	}

	email := strings.ToLower(gu.Email)
	err = h.db.Where("email = ?", email).First(&user).Error
	if err == nil {
		if user.Provider != models.ProviderGoogle {
			return nil, huma.Error400BadRequest("Email already registered with local account")
		}
		return &user, nil
	}

	// Not usable for local login: nobody knows bcrypt(sub) as a password.
	hashed, err := bcrypt.GenerateFromPassword([]byte(gu.Sub), bcrypt.DefaultCost)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to create user")
	}

	googleID := gu.Sub
	user = models.User{
		Name:     gu.Name,
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleTourist,
		Provider: models.ProviderGoogle,
		GoogleID: &googleID,
		Photo:    gu.Picture,
	}
	if err := h.db.Create(&user).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create user")
	}
	return &user, nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
