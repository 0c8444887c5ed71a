// Package scheduler contém os serviços de agendamento para atualização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/goworksistemas/matriz-sub000/internal/config"
	"github.com/goworksistemas/matriz-sub000/pkg/utils"
	"github.com/sirupsen/logrus"
)

// SourcesRefresher recarrega todas as fontes de dados em cache
type SourcesRefresher interface {
	RefreshAll(ctx context.Context) error
}

type SourceRefreshConfig struct {
	CronSchedule string
	CacheTTL     time.Duration
	SyncEnabled  bool
}

// SourceRefreshService atualiza periodicamente os caches das fontes de dados
type SourceRefreshService struct {
	scheduler           *gocron.Scheduler
	config              SourceRefreshConfig
	sources             SourcesRefresher
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewSourceRefreshService(sources SourcesRefresher, cfg *config.Config) *SourceRefreshService {
	refreshConfig := SourceRefreshConfig{
		CronSchedule: cfg.Source.RefreshCron,
		CacheTTL:     cfg.Source.CacheTTL,
		SyncEnabled:  cfg.Source.RefreshEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"cache_ttl":     refreshConfig.CacheTTL.String(),
		"sync_enabled":  refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de atualização das fontes carregada")

	return &SourceRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		sources:   sources,
	}
}

// Start inicia o agendador
func (s *SourceRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização agendada das fontes desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização das fontes")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RefreshSources(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização das fontes: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização das fontes")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshSources recarrega as fontes. Execuções concorrentes são ignoradas.
func (s *SourceRefreshService) RefreshSources(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização das fontes já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	runID, _ := utils.GenerateID()
	entry := logrus.WithField("run_id", runID)
	entry.Info("Iniciando atualização das fontes de dados")

	err := s.sources.RefreshAll(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	duration := s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt)
	s.syncMutex.Unlock()

	if err != nil {
		entry.WithError(err).Error("Atualização das fontes concluída com falhas")
		return
	}

	entry.WithField("duration", duration.String()).Info("Atualização das fontes concluída")
}

// TriggerManualSync inicia manualmente a atualização das fontes
func (s *SourceRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização das fontes já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual das fontes")
	go s.RefreshSources(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *SourceRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"cache_ttl":              s.config.CacheTTL.String(),
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
