package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/KohanaIshitsuka/recipe-atelier/internal/models"
)

// SessionTTL is how long an issued session token stays valid.
const SessionTTL = 24 * time.Hour

// AuthService creates accounts and issues/validates session tokens. The
// token travels in an HttpOnly cookie; handlers own the cookie itself.
type AuthService struct {
	db            *gorm.DB
	sessionSecret string
}

func NewAuthService(db *gorm.DB, sessionSecret string) *AuthService {
	return &AuthService{
		db:            db,
		sessionSecret: sessionSecret,
	}
}

// SignUp creates a new account and returns a session token for it.
func (s *AuthService) SignUp(email, password string) (string, error) {
	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return "", ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return "", err
	}

	return s.generateToken(user.ID)
}

// SignIn verifies the credentials and returns a session token.
func (s *AuthService) SignIn(email, password string) (string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateToken(user.ID)
}

func (s *AuthService) generateToken(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(SessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.sessionSecret))
}

// ValidateToken returns the user id carried by a session token.
func (s *AuthService) ValidateToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.sessionSecret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, errors.New("invalid token")
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, errors.New("invalid token claims")
	}

	return uuid.Parse(userIDStr)
}
