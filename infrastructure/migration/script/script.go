package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/goworksistemas/matriz-sub000/infrastructure/database/postgres"
	"github.com/goworksistemas/matriz-sub000/infrastructure/repository"
	"github.com/goworksistemas/matriz-sub000/internal/config"
	"github.com/goworksistemas/matriz-sub000/internal/domain"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
)

const (
	idLength   = 6
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

type migration struct {
	name string
	stmt string
}

var migrations = []migration{
	{
		name: "deals",
		stmt: `CREATE TABLE IF NOT EXISTS deals (
			id                  VARCHAR(64) PRIMARY KEY,
			cliente             TEXT NOT NULL DEFAULT '',
			owner_id            VARCHAR(64) NOT NULL,
			owner_name          TEXT NOT NULL DEFAULT '',
			sdr_id              VARCHAR(64),
			sdr_name            TEXT,
			produto             TEXT NOT NULL DEFAULT '',
			valor               NUMERIC(14, 2) NOT NULL DEFAULT 0,
			posicoes            NUMERIC(10, 2) NOT NULL DEFAULT 0,
			posicoes_calculadas NUMERIC(10, 2),
			peso                NUMERIC(6, 4),
			venda_impacto       BOOLEAN NOT NULL DEFAULT FALSE,
			tipo_produto        VARCHAR(16),
			etapa               TEXT,
			status_comercial    TEXT,
			status_financeiro   TEXT,
			status_juridico     TEXT,
			data_fechamento     DATE,
			comissao_simples    NUMERIC(14, 2)
		)`,
	},
	{
		name: "line_items",
		stmt: `CREATE TABLE IF NOT EXISTS line_items (
			id                  VARCHAR(64) PRIMARY KEY,
			deal_id             VARCHAR(64) NOT NULL,
			owner_id            VARCHAR(64) NOT NULL,
			owner_name          TEXT,
			nome                TEXT NOT NULL DEFAULT '',
			quantidade          NUMERIC(10, 2) NOT NULL DEFAULT 0,
			quantidade_limitada NUMERIC(10, 2),
			valor               NUMERIC(14, 2),
			data_fechamento     DATE
		)`,
	},
	{
		name: "line_items_data_fechamento_idx",
		stmt: `CREATE INDEX IF NOT EXISTS line_items_data_fechamento_idx ON line_items (data_fechamento)`,
	},
	{
		name: "sales_goals",
		stmt: `CREATE TABLE IF NOT EXISTS sales_goals (
			id                      VARCHAR(16) PRIMARY KEY,
			ano                     INT NOT NULL,
			mes                     INT NOT NULL,
			meta_faturamento_mensal TEXT,
			meta_seats_mensal       TEXT,
			meta_negocios_mensal    TEXT,
			meta_faturamento_anual  TEXT,
			meta_seats_anual        TEXT,
			meta_negocios_anual     TEXT,
			CONSTRAINT sales_goals_ano_mes_unique UNIQUE (ano, mes)
		)`,
	},
	{
		name: "tasks",
		stmt: `CREATE TABLE IF NOT EXISTS tasks (
			id           VARCHAR(64) PRIMARY KEY,
			titulo       TEXT NOT NULL DEFAULT '',
			status       TEXT,
			prioridade   TEXT,
			executores   TEXT,
			solicitante  TEXT,
			departamento TEXT,
			date_start   TIMESTAMPTZ,
			date_end     TIMESTAMPTZ,
			created_at   TIMESTAMPTZ,
			url          TEXT
		)`,
	},
	{
		name: "competition_ranking",
		stmt: `CREATE TABLE IF NOT EXISTS competition_ranking (
			id                SERIAL PRIMARY KEY,
			owner_id          VARCHAR(64) NOT NULL,
			month             VARCHAR(7) NOT NULL,
			owner_name        TEXT NOT NULL DEFAULT '',
			seats_capped      NUMERIC(10, 2) NOT NULL DEFAULT 0,
			seats_raw         NUMERIC(10, 2) NOT NULL DEFAULT 0,
			deals_count       INT NOT NULL DEFAULT 0,
			position          INT NOT NULL DEFAULT 0,
			position_change   INT NOT NULL DEFAULT 0,
			previous_position INT NOT NULL DEFAULT 0,
			created_at        TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at        TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT competition_ranking_owner_month_unique UNIQUE (owner_id, month)
		)`,
	},
}

func generateID() string {
	id, _ := gonanoid.Generate(characters, idLength)
	return id
}

func runMigrations(ctx context.Context, conn postgres.Conn) error {
	for _, m := range migrations {
		startTime := time.Now()

		err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, m.stmt)
			return err
		})
		if err != nil {
			logrus.WithError(err).WithField("migration", m.name).Error("Erro ao aplicar migração")
			return err
		}

		logrus.WithFields(logrus.Fields{
			"migration": m.name,
			"duration":  time.Since(startTime).String(),
		}).Info("Migração aplicada")
	}

	return nil
}

// emptyGoals cria as linhas de metas do ano sem valores, para serem preenchidas pelos usuários
func emptyGoals(year int) []domain.SalesGoal {
	goals := make([]domain.SalesGoal, 0, 12)
	for month := 1; month <= 12; month++ {
		goals = append(goals, domain.SalesGoal{
			ID:    generateID(),
			Year:  year,
			Month: month,
		})
	}
	return goals
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	if err := runMigrations(ctx, conn); err != nil {
		logrus.Fatal("Migrações interrompidas")
	}

	year := time.Now().Year()
	goalRepo := repository.NewSalesGoalRepository(conn, cfg.Source.PageSize)
	if err := goalRepo.SaveGoals(ctx, emptyGoals(year)); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar metas do ano")
	}

	logrus.WithField("ano", year).Info("Carga inicial concluída")
}
