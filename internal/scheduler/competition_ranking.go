package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/goworksistemas/matriz-sub000/infrastructure/repository"
	"github.com/goworksistemas/matriz-sub000/internal/config"
	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/goworksistemas/matriz-sub000/internal/engine/leaderboard"
	"github.com/goworksistemas/matriz-sub000/internal/usecases/ranking"
	"github.com/goworksistemas/matriz-sub000/pkg/utils"
	"github.com/sirupsen/logrus"
)

type CompetitionRankingConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CompetitionRankingService grava diariamente o ranking da competição do mês corrente
type CompetitionRankingService struct {
	scheduler           *gocron.Scheduler
	lineItemRepo        repository.LineItemRepository
	rankingRepo         repository.CompetitionRankingRepository
	rules               leaderboard.Rules
	config              CompetitionRankingConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewCompetitionRankingService(
	lineItemRepo repository.LineItemRepository,
	rankingRepo repository.CompetitionRankingRepository,
	cfg *config.Config,
) *CompetitionRankingService {
	rankingConfig := CompetitionRankingConfig{
		CronSchedule: cfg.CompetitionRanking.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.CompetitionRanking.SyncEnabled,  // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": rankingConfig.CronSchedule,
	}).Info("Configuração do agendador do ranking da competição carregada")

	return &CompetitionRankingService{
		scheduler:    gocron.NewScheduler(time.Local),
		lineItemRepo: lineItemRepo,
		rankingRepo:  rankingRepo,
		rules:        ranking.RulesFromConfig(cfg),
		config:       rankingConfig,
		now:          time.Now,
	}
}

func (s *CompetitionRankingService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron do ranking da competição desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do ranking da competição")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateCompetitionRanking(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização do ranking da competição")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do ranking da competição: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do ranking da competição")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CompetitionRankingService) UpdateCompetitionRanking(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização do ranking da competição já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.syncMutex.Unlock()
	}()

	runID, _ := utils.GenerateID()
	logrus.WithField("run_id", runID).Info("Iniciando atualização do ranking da competição")

	if _, err := s.processCompetitionRankingWithDate(ctx, s.now()); err != nil {
		return err
	}

	logrus.WithField("run_id", runID).Info("Atualização do ranking da competição concluída")
	return nil
}

// processCompetitionRankingWithDate calcula o ranking do mês de ontem e compara com a gravação anterior
func (s *CompetitionRankingService) processCompetitionRankingWithDate(ctx context.Context, processingDate time.Time) ([]*domain.CompetitionRankingItem, error) {
	yesterday := processingDate.AddDate(0, 0, -1)
	month := yesterday.Format(ranking.MonthLayout)

	items, err := s.lineItemRepo.ListLineItems(ctx, []int{yesterday.Year()})
	if err != nil {
		logrus.WithError(err).Error("CompetitionRankingService: Erro ao buscar itens vendidos")
		return nil, err
	}

	state := domain.FilterState{
		domain.FilterYear:  strconv.Itoa(yesterday.Year()),
		domain.FilterMonth: strconv.Itoa(int(yesterday.Month())),
	}
	entries := leaderboard.Rank(items, state, s.rules)

	previous, err := s.rankingRepo.ListByMonth(ctx, month)
	if err != nil {
		logrus.WithError(err).WithField("month", month).Warn("CompetitionRankingService: Erro ao buscar ranking anterior")
		previous = nil
	}

	updatedRankings := toRankingItems(leaderboard.ApplyPreviousPositions(entries, previous), month)

	if len(updatedRankings) == 0 {
		logrus.WithField("month", month).Info("Nenhum vendedor pontuou no mês, ranking não gravado")
		return updatedRankings, nil
	}

	if err := s.rankingRepo.SaveOrUpdate(ctx, updatedRankings); err != nil {
		logrus.WithError(err).Error("Erro ao salvar ranking da competição atualizado")
		return updatedRankings, err
	}

	logrus.WithFields(logrus.Fields{
		"month":   month,
		"sellers": len(updatedRankings),
	}).Info("Ranking da competição atualizado")

	return updatedRankings, nil
}

func toRankingItems(entries []domain.LeaderboardEntry, month string) []*domain.CompetitionRankingItem {
	items := make([]*domain.CompetitionRankingItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, &domain.CompetitionRankingItem{
			OwnerID:          entry.OwnerID,
			Month:            month,
			OwnerName:        entry.OwnerName,
			SeatsCapped:      entry.SeatsCapped,
			SeatsRaw:         entry.SeatsRaw,
			DealsCount:       entry.DealsCount,
			Position:         entry.Position,
			PositionChange:   entry.PositionChange,
			PreviousPosition: entry.PreviousPosition,
		})
	}
	return items
}

// TriggerManualSync inicia manualmente a atualização do ranking
func (s *CompetitionRankingService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do ranking da competição já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do ranking da competição")
	go func() {
		if err := s.UpdateCompetitionRanking(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do ranking da competição")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *CompetitionRankingService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
