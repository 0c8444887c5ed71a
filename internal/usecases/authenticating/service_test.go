package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goworksistemas/matriz-sub000/internal/config"
	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "segredo-de-teste"

func signToken(t *testing.T, method jwt.SigningMethod, secret string, claims domain.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newTestService() Authenticator {
	return NewService(&config.Config{SecretKey: testSecret})
}

func TestValidateToken(t *testing.T) {
	service := newTestService()

	valid := signToken(t, jwt.SigningMethodHS256, testSecret, domain.Claims{
		UserID:      7,
		UserName:    "Ana",
		UserRoleID:  RoleSupervisor,
		UserReports: []string{ReportTasks},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := service.ValidateToken("Bearer " + valid)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, []string{ReportTasks}, claims.UserReports)
}

func TestValidateTokenErrors(t *testing.T) {
	service := newTestService()

	expired := signToken(t, jwt.SigningMethodHS256, testSecret, domain.Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	wrongSecret := signToken(t, jwt.SigningMethodHS256, "outro-segredo", domain.Claims{UserID: 1})

	tests := []struct {
		name  string
		token string
		err   error
	}{
		{name: "sem token", token: "", err: ErrMissingToken},
		{name: "token expirado", token: expired, err: ErrExpiredToken},
		{name: "assinatura inválida", token: wrongSecret, err: ErrInvalidToken},
		{name: "token malformado", token: "abc.def", err: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)

			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.err)
			assert.True(t, IsAuthorizationError(err))
		})
	}
}

func TestCanAccessReport(t *testing.T) {
	service := newTestService()

	admin := &domain.Claims{UserRoleID: RoleAdmin}
	client := &domain.Claims{UserRoleID: RoleClient, UserReports: []string{ReportCompetition}}

	assert.True(t, service.CanAccessReport(admin, ReportCommissions))
	assert.True(t, service.CanAccessReport(client, ReportCompetition))
	assert.False(t, service.CanAccessReport(client, ReportCommissions))
	assert.False(t, service.CanAccessReport(nil, ReportTasks))
}
