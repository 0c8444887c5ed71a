// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/goworksistemas/matriz-sub000/infrastructure/database/postgres"
)

const defaultPageSize = 1000

// listAll percorre todas as páginas da consulta. A query precisa de ORDER BY para
// que as páginas sejam estáveis.
func listAll[T any](
	ctx context.Context,
	conn postgres.Queryer,
	query squirrel.SelectBuilder,
	pageSize int,
	scan func(*sql.Rows) (T, error),
) ([]T, error) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	records := make([]T, 0)
	for offset := uint64(0); ; offset += uint64(pageSize) {
		page, err := listPage(ctx, conn, query.Limit(uint64(pageSize)).Offset(offset), scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar página com offset %d: %w", offset, err)
		}

		records = append(records, page...)
		if len(page) < pageSize {
			return records, nil
		}
	}
}

func listPage[T any](ctx context.Context, conn postgres.Queryer, query squirrel.SelectBuilder, scan func(*sql.Rows) (T, error)) ([]T, error) {
	sqlQuery, args, err := query.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	page := make([]T, 0)
	for rows.Next() {
		record, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro: %w", err)
		}
		page = append(page, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return page, nil
}

func nullableString(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	return &value.String
}

// nullableDate lê uma coluna DATE como data civil no fuso local. O driver entrega essas
// colunas à meia-noite UTC.
func nullableDate(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}

	date := time.Date(value.Time.Year(), value.Time.Month(), value.Time.Day(), 0, 0, 0, 0, time.Local)
	return &date
}

func nullableTime(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	return &value.Time
}
