package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims são os dados do usuário autenticado pelo shell e repassados no token
type Claims struct {
	UserID      int
	UserName    string
	UserEmail   string
	UserRoleID  int
	UserGroups  []string
	UserReports []string
	jwt.RegisteredClaims
}
