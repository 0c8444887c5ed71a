package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var taskColumns = []string{
	"id", "titulo", "status", "prioridade", "executores", "solicitante",
	"departamento", "date_start", "date_end", "created_at", "url",
}

func TestListTasks(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 6, 18, 0, 0, 0, time.UTC)
	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(taskColumns).
		AddRow("t1", "Revisar contrato", "concluida", "alta", "Ana, Bruno, Ana", "Carla", "Jurídico", start, end, created, "https://tracker/t1").
		AddRow("t2", "Importar planilha", "", "", "", "", "", nil, nil, nil, "")

	mock.ExpectQuery(`SELECT (.+) FROM tasks t ORDER BY t.created_at DESC, t.id ASC LIMIT 100 OFFSET 0`).
		WillReturnRows(rows)

	tasks, err := NewTaskRepository(db, 100).ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	complete := tasks[0]
	assert.Equal(t, []string{"Ana", "Bruno"}, complete.Executors)
	require.NotNil(t, complete.DateStart)
	require.NotNil(t, complete.DateEnd)
	assert.True(t, complete.CreatedAt.Equal(created))

	// colunas nulas viram valores neutros em vez de derrubar a leitura
	incomplete := tasks[1]
	assert.Equal(t, "t2", incomplete.ID)
	assert.Nil(t, incomplete.DateStart)
	assert.Nil(t, incomplete.DateEnd)
	assert.True(t, incomplete.CreatedAt.IsZero())
	assert.Empty(t, incomplete.Executors)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTasksPaginates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`LIMIT 1 OFFSET 0`).
		WillReturnRows(sqlmock.NewRows(taskColumns).
			AddRow("t1", "Primeira", "", "", "", "", "", nil, nil, created, ""))
	mock.ExpectQuery(`LIMIT 1 OFFSET 1`).
		WillReturnRows(sqlmock.NewRows(taskColumns))

	tasks, err := NewTaskRepository(db, 1).ListTasks(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}
