// Package postgres abre o pool de conexões com o banco do hub e executa blocos transacionais.
package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/goworksistemas/matriz-sub000/internal/config"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

type Conn interface {
	Queryer
	BeginTx(context.Context, *sql.TxOptions) (*sql.Tx, error)
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

type Connection struct {
	*sql.DB
	pingTimeout time.Duration
}

var _ Conn = (*Connection)(nil)

// NewConnection abre o pool e só retorna quando o banco responde dentro do timeout de conexão
func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "abrindo pool do postgres")
	}

	conn := Wrap(db, cfg)
	if err := conn.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return conn, nil
}

// Wrap aplica os limites do pool a um *sql.DB já aberto. Valores zerados mantêm o padrão do database/sql.
func Wrap(db *sql.DB, cfg config.Database) *Connection {
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return &Connection{DB: db, pingTimeout: cfg.ConnectTimeout}
}

func (c *Connection) Ping(ctx context.Context) error {
	if c.pingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.pingTimeout)
		defer cancel()
	}

	if err := c.DB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "postgres não respondeu")
	}
	return nil
}

// RunInTransaction executa fn numa transação: commit se fn terminar sem erro, rollback caso contrário.
// Um panic dentro de fn desfaz a transação e é repassado.
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "iniciando transação")
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			_ = tx.Rollback()
			panic(recovered)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Wrapf(err, "rollback também falhou (%v)", rbErr)
		}
		return err
	}

	return errors.Wrap(tx.Commit(), "confirmando transação")
}
