package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/helaluddin100/greenbuild/internal/models"
)

const tokenTTL = 7 * 24 * time.Hour

type Service struct {
	DB     *gorm.DB
	Secret []byte
}

// Issue signs a bearer token for the user and stores a revocable record of it.
func (s *Service) Issue(user *models.User) (string, error) {
	exp := time.Now().Add(tokenTTL)
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  exp.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := t.SignedString(s.Secret)
	if err != nil {
		return "", err
	}

	record := models.ApiToken{
		Token:     raw,
		UserID:    user.ID,
		ExpiresAt: exp.Unix(),
		Revoked:   false,
	}
	if err := s.DB.Create(&record).Error; err != nil {
		return "", fmt.Errorf("db error: %w", err)
	}

	return raw, nil
}

// Validate parses the bearer token and checks the stored record is still live.
func (s *Service) Validate(raw string) (uint, string, error) {
	t, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signature method: %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil || !t.Valid {
		return 0, "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.New("cannot parse claims")
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, "", errors.New("invalid subject claim")
	}
	role, ok := claims["role"].(string)
	if !ok {
		return 0, "", errors.New("invalid role claim")
	}

	var stored models.ApiToken
	if err := s.DB.Where("token=?", raw).First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, "", errors.New("token not found")
		}
		return 0, "", fmt.Errorf("db error: %w", err)
	}
	if stored.Revoked {
		return 0, "", errors.New("token revoked")
	}
	if time.Now().Unix() > stored.ExpiresAt {
		return 0, "", errors.New("token expired")
	}

	return uint(sub), role, nil
}

// Revoke marks the stored token record as revoked. Unknown tokens are not an error.
func (s *Service) Revoke(raw string) error {
	if err := s.DB.Model(&models.ApiToken{}).
		Where("token=?", raw).
		Update("revoked", true).Error; err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
