package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"
	_ "time/tzdata"

	"github.com/goworksistemas/matriz-sub000/infrastructure/database/postgres"
	"github.com/goworksistemas/matriz-sub000/infrastructure/repository"
	"github.com/goworksistemas/matriz-sub000/internal/api"
	"github.com/goworksistemas/matriz-sub000/internal/api/handler"
	"github.com/goworksistemas/matriz-sub000/internal/config"
	"github.com/goworksistemas/matriz-sub000/internal/scheduler"
	"github.com/goworksistemas/matriz-sub000/internal/source"
	"github.com/goworksistemas/matriz-sub000/internal/usecases/authenticating"
	"github.com/goworksistemas/matriz-sub000/internal/usecases/commissioning"
	"github.com/goworksistemas/matriz-sub000/internal/usecases/ranking"
	"github.com/goworksistemas/matriz-sub000/internal/usecases/tasking"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	configureTimezone(cfg.App.Timezone)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	dealRepo := repository.NewDealRepository(pgConn, cfg.Source.PageSize)
	lineItemRepo := repository.NewLineItemRepository(pgConn, cfg.Source.PageSize)
	salesGoalRepo := repository.NewSalesGoalRepository(pgConn, cfg.Source.PageSize)
	taskRepo := repository.NewTaskRepository(pgConn, cfg.Source.PageSize)
	competitionRankingRepo := repository.NewCompetitionRankingRepository(pgConn)

	sources := source.New(dealRepo, lineItemRepo, salesGoalRepo, taskRepo, cfg.Source.CacheTTL, time.Now)

	authenticator := authenticating.NewService(cfg)
	commissionService := commissioning.NewService(sources.Deals, cfg)
	rankingService := ranking.NewCompetitionRankingService(sources.LineItems, sources.Goals, competitionRankingRepo, cfg)
	taskService := tasking.NewService(sources.Tasks, cfg)

	sourceRefreshService := scheduler.NewSourceRefreshService(sources, cfg)
	competitionRankingSyncService := scheduler.NewCompetitionRankingService(lineItemRepo, competitionRankingRepo, cfg)

	// Inicia os agendadores em background
	if err := sourceRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização das fontes")
	} else {
		logrus.Info("Agendador de atualização das fontes iniciado com sucesso")
	}

	if err := competitionRankingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do ranking da competição")
	} else {
		logrus.Info("Agendador do ranking da competição iniciado com sucesso")
	}

	// Aquece os caches sem bloquear a subida do servidor
	go func() {
		if err := sources.RefreshAll(ctx); err != nil {
			logrus.WithError(err).Warn("Carga inicial das fontes incompleta, nova tentativa na próxima leitura")
		}
	}()

	cronJobs := handler.CronJobServices{
		handler.CronJobTypeSources:            sourceRefreshService,
		handler.CronJobTypeCompetitionRanking: competitionRankingSyncService,
	}

	server, err := api.New(cfg, api.Services{
		Commissions:   commissionService,
		Competition:   rankingService,
		Tasks:         taskService,
		Sources:       sources,
		Authenticator: authenticator,
		CronJobs:      cronJobs,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.WithField("max_open_conns", dbConfig.MaxOpenConns).Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// configureTimezone define o fuso local usado para separar dias e meses nos relatórios
func configureTimezone(name string) {
	location, err := time.LoadLocation(name)
	if err != nil {
		logrus.WithError(err).Warnf("Fuso horário inválido: %s, usando %s", name, time.Local)
		return
	}

	time.Local = location
	logrus.Infof("Fuso horário configurado para: %s", location)
}
