// FILE: internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/atlanteavila/trashpanda-sub000/internal/dto"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
)

func newAuthFixture() (*fakeFactory, *fakeNotifier, IAuthService) {
	factory := newFakeFactory()
	notifier := &fakeNotifier{}
	allowlist := serverutils.NewAdminAllowlist("admin@trashpanda.com")
	svc := NewAuthService(factory, notifier, nil, allowlist)
	return factory, notifier, svc
}

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	factory, notifier, svc := newAuthFixture()

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Pat Customer",
		Email:    "  Customer@Example.com ",
		Password: "hunter2hunter2",
	})
	assert.NoError(t, err)
	assert.Equal(t, "customer@example.com", res.Email)
	assert.Len(t, factory.store.users, 1)

	// Welcome email queued.
	assert.Len(t, notifier.sent, 1)
	assert.Equal(t, dto.EmailTemplateWelcome, notifier.sent[0].Template)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "customer@example.com",
		Password: "hunter2hunter2",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)
	assert.NotEmpty(t, login.RefreshToken)
	assert.False(t, login.User.IsAdmin)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, _, svc := newAuthFixture()

	req := &dto.RegisterRequest{FullName: "Pat", Email: "dup@example.com", Password: "hunter2hunter2"}
	_, err := svc.Register(context.Background(), req)
	assert.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.Equal(t, 400, apiErrorCode(t, err))
}

func TestLoginWrongPassword(t *testing.T) {
	_, _, svc := newAuthFixture()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Pat", Email: "pat@example.com", Password: "hunter2hunter2",
	})
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "pat@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, 401, apiErrorCode(t, err))
}

func TestLoginAdminFlag(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, _, svc := newAuthFixture()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Admin", Email: "admin@trashpanda.com", Password: "hunter2hunter2",
	})
	assert.NoError(t, err)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@trashpanda.com",
		Password: "hunter2hunter2",
	})
	assert.NoError(t, err)
	assert.True(t, login.User.IsAdmin)
}

func TestRefreshRotatesToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	factory, _, svc := newAuthFixture()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Pat", Email: "pat@example.com", Password: "hunter2hunter2",
	})
	assert.NoError(t, err)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "pat@example.com", Password: "hunter2hunter2",
	})
	assert.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The presented token is revoked; replaying it fails.
	_, err = svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.Equal(t, 401, apiErrorCode(t, err))

	assert.Len(t, factory.store.refreshTokens, 2)
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	_, notifier, svc := newAuthFixture()

	err := svc.ForgotPassword(context.Background(), &dto.ForgotPasswordRequest{Email: "nobody@example.com"})
	assert.NoError(t, err)
	assert.Empty(t, notifier.sent)
}

func TestResetPasswordFlow(t *testing.T) {
	factory, notifier, svc := newAuthFixture()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Pat", Email: "pat@example.com", Password: "hunter2hunter2",
	})
	assert.NoError(t, err)

	err = svc.ForgotPassword(context.Background(), &dto.ForgotPasswordRequest{Email: "pat@example.com"})
	assert.NoError(t, err)
	assert.Len(t, factory.store.resetTokens, 1)

	token := notifier.sent[1].ResetToken
	assert.NotEmpty(t, token)

	err = svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Token:           token,
		NewPassword:     "new-password-123",
		ConfirmPassword: "new-password-123",
	})
	assert.NoError(t, err)

	// Token is single use.
	err = svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Token:           token,
		NewPassword:     "another-password",
		ConfirmPassword: "another-password",
	})
	assert.Equal(t, 400, apiErrorCode(t, err))
}
