// Package filtering aplica os filtros controlados pelo usuário sobre listas de registros.
//
// Cada campo ativo do estado de filtro vira um predicado; um registro permanece no
// resultado quando satisfaz todos os predicados. A ordem de entrada é preservada e a
// lista original nunca é alterada.
package filtering

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/goworksistemas/matriz-sub000/pkg/utils"
	"github.com/samber/lo"
)

type MatchKind int

const (
	// Exact compara igualdade de texto (booleanos como "true"/"false")
	Exact MatchKind = iota
	// Contains faz busca por substring sem diferenciar maiúsculas
	Contains
	// Numeric compara números, aceitando "05" e "5" como iguais
	Numeric
	// DateFrom mantém registros com data no dia informado ou depois
	DateFrom
	// DateTo mantém registros com data no dia informado ou antes
	DateTo
	// Member exige que o valor pertença ao conjunto do registro
	Member
)

// Field descreve como um campo do registro é lido para uma chave de filtro
type Field[T any] struct {
	Key  string
	Kind MatchKind
	Text func(T) string
	Date func(T) *time.Time
	Set  func(T) []string
}

// Schema é o conjunto de campos filtráveis de um tipo de registro. As datas dos
// registros são comparadas no fuso do schema, por padrão o fuso local.
type Schema[T any] struct {
	fields   map[string]Field[T]
	location *time.Location
}

func NewSchema[T any](fields ...Field[T]) Schema[T] {
	schema := Schema[T]{fields: make(map[string]Field[T], len(fields))}
	for _, field := range fields {
		schema.fields[field.Key] = field
	}
	return schema
}

// WithLocation devolve uma cópia do schema que compara datas no fuso informado
func (s Schema[T]) WithLocation(location *time.Location) Schema[T] {
	s.location = location
	return s
}

func (s Schema[T]) dateLocation() *time.Location {
	if s.location == nil {
		return time.Local
	}
	return s.location
}

// Keys retorna as chaves aceitas pelo schema
func (s Schema[T]) Keys() []string {
	return lo.Keys(s.fields)
}

// Validate aponta valores que seriam ignorados por estarem mal formatados
func (s Schema[T]) Validate(state domain.FilterState) error {
	for key, value := range state.Active() {
		field, exists := s.fields[key]
		if !exists {
			continue
		}

		switch field.Kind {
		case DateFrom, DateTo:
			if _, err := utils.ParseDate(value); err != nil {
				return fmt.Errorf("filtro %s com data inválida %q: use o formato aaaa-mm-dd", key, value)
			}
		case Numeric:
			if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil {
				return fmt.Errorf("filtro %s com número inválido %q", key, value)
			}
		}
	}

	return nil
}

// Apply retorna os registros que satisfazem todos os filtros ativos.
// Chaves desconhecidas e valores mal formatados não restringem o resultado.
func Apply[T any](records []T, state domain.FilterState, schema Schema[T]) []T {
	predicates := schema.predicates(state)

	return lo.Filter(records, func(record T, _ int) bool {
		for _, predicate := range predicates {
			if !predicate(record) {
				return false
			}
		}
		return true
	})
}

func (s Schema[T]) predicates(state domain.FilterState) []func(T) bool {
	predicates := make([]func(T) bool, 0, len(state))

	for key, value := range state.Active() {
		field, exists := s.fields[key]
		if !exists {
			continue
		}

		if predicate := field.predicate(value, s.dateLocation()); predicate != nil {
			predicates = append(predicates, predicate)
		}
	}

	return predicates
}

func (f Field[T]) predicate(value string, location *time.Location) func(T) bool {
	switch f.Kind {
	case Exact:
		return func(record T) bool {
			return f.Text(record) == value
		}
	case Contains:
		needle := strings.ToLower(value)
		return func(record T) bool {
			return strings.Contains(strings.ToLower(f.Text(record)), needle)
		}
	case Numeric:
		expected, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil
		}
		return func(record T) bool {
			actual, err := strconv.ParseFloat(strings.TrimSpace(f.Text(record)), 64)
			return err == nil && actual == expected
		}
	case DateFrom, DateTo:
		limit, err := utils.ParseDate(value)
		if err != nil {
			return nil
		}
		limitDay := civilDay(*limit)
		return func(record T) bool {
			date := f.Date(record)
			// registros sem data nunca são excluídos pelos filtros de período
			if date == nil {
				return true
			}
			day := civilDay(date.In(location))
			if f.Kind == DateFrom {
				return day >= limitDay
			}
			return day <= limitDay
		}
	case Member:
		return func(record T) bool {
			return lo.ContainsBy(f.Set(record), func(item string) bool {
				return strings.EqualFold(item, value)
			})
		}
	}

	return nil
}

// civilDay converte a data em aaaammdd. Quem chama normaliza o fuso antes.
func civilDay(date time.Time) int {
	return date.Year()*10000 + int(date.Month())*100 + date.Day()
}
