// Package authenticating valida os tokens emitidos pelo shell do hub de relatórios
package authenticating

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goworksistemas/matriz-sub000/internal/config"
	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/goworksistemas/matriz-sub000/pkg/apiErrors"
	"github.com/samber/lo"
)

const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleClient     = 3
)

// Relatórios que podem ser liberados para um usuário
const (
	ReportCommissions = "comissoes"
	ReportCompetition = "competicao"
	ReportTasks       = "tarefas"
)

type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	CanAccessReport(claims *domain.Claims, report string) bool
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
	}
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))
	if tokenString == "" {
		return nil, NewAuthError(ErrMissingToken, apiErrors.ErrInvalidToken, "")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
}

// CanAccessReport libera todos os relatórios para administradores e, para os demais,
// apenas os relatórios vinculados ao usuário
func (s *Service) CanAccessReport(claims *domain.Claims, report string) bool {
	if claims == nil {
		return false
	}
	if claims.UserRoleID == RoleAdmin {
		return true
	}
	return lo.Contains(claims.UserReports, report)
}
