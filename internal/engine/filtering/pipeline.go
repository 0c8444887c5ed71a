package filtering

import (
	"errors"
	"fmt"

	"github.com/goworksistemas/matriz-sub000/internal/domain"
)

// RawStage é o nome reservado para a lista de entrada sem filtros
const RawStage = "raw"

var ErrUnknownStage = errors.New("etapa de filtro desconhecida")

type stage struct {
	name   string
	parent string
	state  domain.FilterState
}

// Pipeline encadeia etapas de filtro explícitas. Cada etapa filtra a saída da etapa mãe,
// então um filtro global sempre domina os filtros de escopo derivados dele.
type Pipeline[T any] struct {
	schema Schema[T]
	stages []stage
}

func NewPipeline[T any](schema Schema[T]) *Pipeline[T] {
	return &Pipeline[T]{schema: schema}
}

// Stage adiciona uma etapa que filtra a saída de parent (use RawStage para a entrada)
func (p *Pipeline[T]) Stage(name, parent string, state domain.FilterState) *Pipeline[T] {
	p.stages = append(p.stages, stage{name: name, parent: parent, state: state})
	return p
}

// Result guarda a saída de cada etapa pelo nome
type Result[T any] map[string][]T

// Get retorna a saída da etapa ou nil quando ela não existe
func (r Result[T]) Get(name string) []T {
	return r[name]
}

// Run executa as etapas na ordem declarada
func (p *Pipeline[T]) Run(records []T) (Result[T], error) {
	result := Result[T]{RawStage: records}

	for _, s := range p.stages {
		input, exists := result[s.parent]
		if !exists {
			return nil, fmt.Errorf("%w: %s (mãe de %s)", ErrUnknownStage, s.parent, s.name)
		}

		result[s.name] = Apply(input, s.state, p.schema)
	}

	return result, nil
}

// Validate verifica os valores de todas as etapas
func (p *Pipeline[T]) Validate() error {
	for _, s := range p.stages {
		if err := p.schema.Validate(s.state); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}
