package domain

import "github.com/pkg/errors"

// ErrInvalidFilter indica um filtro com valor mal formatado
var ErrInvalidFilter = errors.New("filtro inválido")
