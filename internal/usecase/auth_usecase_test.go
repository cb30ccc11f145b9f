package usecase_test

import (
	"context"
	"testing"
	"time"

	"healthhub-backend/config"
	"healthhub-backend/internal/delivery/dto"
	"healthhub-backend/internal/domain/entity"
	"healthhub-backend/internal/usecase"
	"healthhub-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthUsecase(db *gorm.DB, userRepo *stubUserRepo) usecase.AuthUsecase {
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret"})
	redisClient := redis.NewClient(&redis.Options{})
	return usecase.NewAuthUsecase(db, logrus.New(), userRepo, jwtService, redisClient, &recordingAuditService{})
}

func TestAuthUsecase_Register_InvalidRole(t *testing.T) {
	db, _ := newTestDB(t)
	u := newAuthUsecase(db, &stubUserRepo{})

	_, err := u.Register(context.Background(), &dto.RegisterRequest{
		Email:     "a@b.com",
		Password:  "secret123",
		FirstName: "A",
		LastName:  "B",
		Role:      "admin",
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidRole)
}

func TestAuthUsecase_Login_UnknownEmail(t *testing.T) {
	db, _ := newTestDB(t)
	userRepo := &stubUserRepo{}
	userRepo.findByEmail = func(email string) (*entity.User, error) { return nil, nil }
	u := newAuthUsecase(db, userRepo)

	_, err := u.Login(context.Background(), &dto.LoginRequest{Email: "nobody@b.com", Password: "secret123"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	db, _ := newTestDB(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	assert.NoError(t, err)

	userRepo := &stubUserRepo{}
	userRepo.findByEmail = func(email string) (*entity.User, error) {
		return &entity.User{ID: uuid.New(), Email: email, Password: string(hash)}, nil
	}
	u := newAuthUsecase(db, userRepo)

	_, err = u.Login(context.Background(), &dto.LoginRequest{Email: "a@b.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestAuthUsecase_RefreshToken_RejectsAccessToken(t *testing.T) {
	db, _ := newTestDB(t)
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: 15 * time.Minute})

	accessToken, _, err := jwtService.GenerateAccessToken(uuid.New(), "a@b.com")
	assert.NoError(t, err)

	redisClient := redis.NewClient(&redis.Options{})
	u := usecase.NewAuthUsecase(db, logrus.New(), &stubUserRepo{}, jwtService, redisClient, &recordingAuditService{})

	_, err = u.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: accessToken})
	assert.ErrorIs(t, err, usecase.ErrInvalidToken)
}
