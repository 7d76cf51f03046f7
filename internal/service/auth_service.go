// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"strings"
	"time"

	"github.com/atlanteavila/trashpanda-sub000/internal/dto"
	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/serverutils"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/specification"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/unitofwork"

	"github.com/atlanteavila/trashpanda-sub000/pkg/events"
	pktNats "github.com/atlanteavila/trashpanda-sub000/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL     = 24 * time.Hour
	refreshTokenTTL    = 7 * 24 * time.Hour
	rememberMeTokenTTL = 30 * 24 * time.Hour
	resetTokenTTL      = time.Hour
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	notifications  INotificationService
	eventPublisher *pktNats.Publisher
	allowlist      *serverutils.AdminAllowlist
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	notifications INotificationService,
	eventPublisher *pktNats.Publisher,
	allowlist *serverutils.AdminAllowlist,
) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		notifications:  notifications,
		eventPublisher: eventPublisher,
		allowlist:      allowlist,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.BadRequest("An account with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	passwordHash := string(hashed)

	user := &entity.User{
		Id:           uuid.New(),
		Email:        email,
		PasswordHash: &passwordHash,
		FullName:     strings.TrimSpace(req.FullName),
		Phone:        strings.TrimSpace(req.Phone),
		Status:       entity.UserStatusActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.notifications.Enqueue(ctx, dto.EmailMessage{
		Template: dto.EmailTemplateWelcome,
		To:       user.Email,
		FullName: user.FullName,
	})

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, events.BaseEvent{
			Type: "USER_REGISTERED",
			Data: map[string]interface{}{
				"user_id": user.Id,
				"email":   user.Email,
			},
			OccurredAt: time.Now(),
		})
	}

	return &dto.RegisterResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		return nil, serverutils.Unauthorized("Invalid email or password")
	}
	if user.Status == entity.UserStatusBlocked {
		return nil, serverutils.Forbidden("This account has been disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.Unauthorized("Invalid email or password")
	}

	accessToken, err := s.signAccessToken(user)
	if err != nil {
		return nil, err
	}

	ttl := refreshTokenTTL
	if req.RememberMe {
		ttl = rememberMeTokenTTL
	}
	refreshToken, err := s.issueRefreshToken(ctx, uow, user.Id, ttl)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         s.toUserDTO(user),
	}, nil
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stored, err := uow.UserRepository().FindRefreshToken(ctx, specification.ByTokenHash{Hash: hashToken(req.RefreshToken)})
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.Revoked || time.Now().After(stored.ExpiresAt) {
		return nil, serverutils.Unauthorized("Invalid or expired refresh token")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: stored.UserId})
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status == entity.UserStatusBlocked {
		return nil, serverutils.Unauthorized("Invalid or expired refresh token")
	}

	// Rotate: the presented token is revoked and a fresh one issued.
	if err := uow.UserRepository().RevokeRefreshToken(ctx, stored.Id); err != nil {
		return nil, err
	}

	accessToken, err := s.signAccessToken(user)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.issueRefreshToken(ctx, uow, user.Id, time.Until(stored.ExpiresAt))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         s.toUserDTO(user),
	}, nil
}

func (s *authService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	if req.RefreshToken == "" {
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	stored, err := uow.UserRepository().FindRefreshToken(ctx, specification.ByTokenHash{Hash: hashToken(req.RefreshToken)})
	if err != nil {
		return err
	}
	if stored == nil {
		return nil
	}
	return uow.UserRepository().RevokeRefreshToken(ctx, stored.Id)
}

func (s *authService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return err
	}
	// Same answer whether or not the account exists.
	if user == nil {
		return nil
	}

	token, err := randomToken()
	if err != nil {
		return err
	}

	resetToken := &entity.PasswordResetToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		Token:     token,
		ExpiresAt: time.Now().Add(resetTokenTTL),
		CreatedAt: time.Now(),
	}
	if err := uow.UserRepository().CreateResetToken(ctx, resetToken); err != nil {
		return err
	}

	s.notifications.Enqueue(ctx, dto.EmailMessage{
		Template:   dto.EmailTemplateResetToken,
		To:         user.Email,
		ResetToken: token,
	})
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stored, err := uow.UserRepository().FindResetToken(ctx, specification.ByToken{Token: req.Token})
	if err != nil {
		return err
	}
	if stored == nil || stored.Used || time.Now().After(stored.ExpiresAt) {
		return serverutils.BadRequest("Invalid or expired reset token")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: stored.UserId})
	if err != nil {
		return err
	}
	if user == nil {
		return serverutils.BadRequest("Invalid or expired reset token")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	passwordHash := string(hashed)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	user.PasswordHash = &passwordHash
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return err
	}
	if err := uow.UserRepository().MarkResetTokenUsed(ctx, stored.Id); err != nil {
		return err
	}

	return uow.Commit()
}

// signAccessToken embeds the email claim so the admin middleware can check
// the allowlist without a user lookup.
func (s *authService) signAccessToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"email":   user.Email,
		"exp":     time.Now().Add(accessTokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func (s *authService) issueRefreshToken(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, ttl time.Duration) (string, error) {
	raw, err := randomToken()
	if err != nil {
		return "", err
	}

	stored := &entity.UserRefreshToken{
		Id:        uuid.New(),
		UserId:    userId,
		TokenHash: hashToken(raw),
		ExpiresAt: time.Now().Add(ttl),
		CreatedAt: time.Now(),
	}
	if err := uow.UserRepository().CreateRefreshToken(ctx, stored); err != nil {
		return "", err
	}
	return raw, nil
}

func (s *authService) toUserDTO(user *entity.User) dto.UserDTO {
	return dto.UserDTO{
		Id:       user.Id,
		Email:    user.Email,
		FullName: user.FullName,
		Phone:    user.Phone,
		IsAdmin:  s.allowlist.IsAdmin(user.Email),
	}
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
