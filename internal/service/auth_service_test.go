package service

import (
	"context"
	"testing"
	"time"

	"voicepad-be/internal/dto"
	"voicepad-be/internal/pkg/serverutils"
	"voicepad-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubMailer captures reset tokens instead of dialing SMTP. Sends
// happen on a goroutine, so delivery goes through a channel.
type stubMailer struct {
	tokens chan string
}

func newStubMailer() *stubMailer {
	return &stubMailer{tokens: make(chan string, 4)}
}

func (m *stubMailer) SendResetToken(toEmail, token string) error {
	m.tokens <- token
	return nil
}

func (m *stubMailer) waitToken(t *testing.T) string {
	t.Helper()
	select {
	case token := <-m.tokens:
		return token
	case <-time.After(2 * time.Second):
		t.Fatal("no reset token delivered")
		return ""
	}
}

func newAuthTestService(t *testing.T) (IAuthService, *stubMailer) {
	t.Setenv("JWT_SECRET", "test_secret")
	mailer := newStubMailer()
	factory := memory.NewRepositoryFactory()
	return NewAuthService(factory, mailer), mailer
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "ada@example.com", registered.User.Email)

	loggedIn, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, loggedIn.Token)
	assert.Equal(t, registered.User.Id, loggedIn.User.Id)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthTestService(t)
	ctx := context.Background()

	req := &dto.RegisterRequest{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "s3cret-pass",
	}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	require.Error(t, err)
	appErr, ok := err.(*serverutils.AppError)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, appErr.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := newAuthTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	requireUnauthenticated(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	requireUnauthenticated(t, err)
}

func requireUnauthenticated(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*serverutils.AppError)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusUnauthorized, appErr.Code)
}

func TestPasswordResetFlow(t *testing.T) {
	svc, mail := newAuthTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "original-pass",
	})
	require.NoError(t, err)

	err = svc.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: "ada@example.com"})
	require.NoError(t, err)
	token := mail.waitToken(t)

	err = svc.ResetPassword(ctx, &dto.ResetPasswordRequest{Token: token, Password: "brand-new-pass"})
	require.NoError(t, err)

	// Old password no longer works, new one does.
	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ada@example.com", Password: "original-pass"})
	requireUnauthenticated(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ada@example.com", Password: "brand-new-pass"})
	require.NoError(t, err)

	// Tokens are single use.
	err = svc.ResetPassword(ctx, &dto.ResetPasswordRequest{Token: token, Password: "another-pass"})
	require.Error(t, err)
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	svc, mail := newAuthTestService(t)
	ctx := context.Background()

	err := svc.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: "ghost@example.com"})
	require.NoError(t, err)

	select {
	case <-mail.tokens:
		t.Fatal("no email should be sent for unknown addresses")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestResetPasswordBadToken(t *testing.T) {
	svc, _ := newAuthTestService(t)
	ctx := context.Background()

	err := svc.ResetPassword(ctx, &dto.ResetPasswordRequest{Token: "nope", Password: "whatever-pass"})
	require.Error(t, err)
	appErr, ok := err.(*serverutils.AppError)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, appErr.Code)
}
