// Package source guarda em memória os registros lidos do banco para os relatórios.
//
// Cada fonte é um Cache com validade própria. Os relatórios sempre recebem uma cópia da
// última leitura e a invalidação ou atualização é explícita.
package source

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/goworksistemas/matriz-sub000/pkg/log"
)

var ErrSourceUnavailable = errors.New("fonte de dados indisponível")

// Loader busca o conjunto completo de registros de uma fonte
type Loader[T any] func(ctx context.Context) ([]T, error)

// Status descreve o estado atual de um cache
type Status struct {
	Name     string    `json:"name"`
	Records  int       `json:"records"`
	LoadedAt time.Time `json:"loaded_at"`
	Stale    bool      `json:"stale"`
}

// Cache mantém a última leitura de uma fonte. TTL zero ou negativo nunca expira.
type Cache[T any] struct {
	name string
	ttl  time.Duration
	load Loader[T]
	now  func() time.Time

	loadMutex sync.Mutex
	mutex     sync.RWMutex
	records   []T
	loadedAt  time.Time
	loaded    bool
}

func NewCache[T any](name string, ttl time.Duration, load Loader[T]) *Cache[T] {
	return &Cache[T]{
		name: name,
		ttl:  ttl,
		load: load,
		now:  time.Now,
	}
}

// WithClock troca o relógio usado para calcular a validade
func (c *Cache[T]) WithClock(now func() time.Time) *Cache[T] {
	c.now = now
	return c
}

func (c *Cache[T]) Name() string {
	return c.name
}

// Get retorna os registros em cache ou recarrega quando expirados. Se a recarga falhar e
// houver uma leitura anterior, ela é devolvida.
func (c *Cache[T]) Get(ctx context.Context) ([]T, error) {
	if records, fresh := c.snapshot(); fresh {
		return records, nil
	}

	c.loadMutex.Lock()
	defer c.loadMutex.Unlock()

	// Outra chamada pode ter recarregado enquanto esperávamos
	if records, fresh := c.snapshot(); fresh {
		return records, nil
	}

	if err := c.reload(ctx); err != nil {
		c.mutex.RLock()
		loaded := c.loaded
		c.mutex.RUnlock()

		if !loaded {
			return nil, err
		}

		log.ForContext(ctx).WithError(err).WithField(log.FieldSource, c.name).Warn("Usando dados anteriores da fonte após falha na atualização")
	}

	records, _ := c.snapshot()
	return records, nil
}

// Refresh recarrega a fonte imediatamente
func (c *Cache[T]) Refresh(ctx context.Context) error {
	c.loadMutex.Lock()
	defer c.loadMutex.Unlock()

	return c.reload(ctx)
}

// Invalidate descarta a leitura atual. A próxima chamada de Get recarrega a fonte.
func (c *Cache[T]) Invalidate() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.records = nil
	c.loaded = false
	c.loadedAt = time.Time{}
}

func (c *Cache[T]) Status() Status {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return Status{
		Name:     c.name,
		Records:  len(c.records),
		LoadedAt: c.loadedAt,
		Stale:    !c.freshLocked(),
	}
}

func (c *Cache[T]) reload(ctx context.Context) error {
	started := c.now()

	records, err := c.load(ctx)
	if err != nil {
		return fmt.Errorf("%w (%s): %w", ErrSourceUnavailable, c.name, err)
	}

	c.mutex.Lock()
	c.records = records
	c.loadedAt = c.now()
	c.loaded = true
	c.mutex.Unlock()

	log.ForContext(ctx).WithFields(log.Fields{
		log.FieldSource: c.name,
		"records":       len(records),
		"duration_ms":   c.now().Sub(started).Milliseconds(),
	}).Debug("Fonte de dados atualizada")

	return nil
}

func (c *Cache[T]) snapshot() ([]T, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return slices.Clone(c.records), c.freshLocked()
}

func (c *Cache[T]) freshLocked() bool {
	if !c.loaded {
		return false
	}
	if c.ttl <= 0 {
		return true
	}
	return c.now().Sub(c.loadedAt) < c.ttl
}
