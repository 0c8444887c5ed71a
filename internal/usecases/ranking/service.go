// Package ranking expõe a competição de vendas ao vivo e os rankings persistidos
package ranking

import (
	"context"
	"strconv"
	"time"

	"github.com/goworksistemas/matriz-sub000/infrastructure/repository"
	"github.com/goworksistemas/matriz-sub000/internal/config"
	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/goworksistemas/matriz-sub000/internal/engine/filtering"
	"github.com/goworksistemas/matriz-sub000/internal/engine/leaderboard"
	"github.com/goworksistemas/matriz-sub000/internal/source"
	"github.com/goworksistemas/matriz-sub000/pkg/log"
	"github.com/pkg/errors"
)

// MonthLayout é o formato mm-yyyy usado nos rankings persistidos
const MonthLayout = "01-2006"

var ErrInvalidFilter = domain.ErrInvalidFilter

type RankingService interface {
	GetCompetitionReport(ctx context.Context, state domain.FilterState) (*domain.CompetitionReport, error)
	GetCompetitionRanking(ctx context.Context, month string) (*domain.CompetitionRankingResponse, error)
}

type CompetitionRankingService struct {
	lineItems   source.LineItemSource
	goals       source.GoalSource
	rankingRepo repository.CompetitionRankingRepository
	rules       leaderboard.Rules
	now         func() time.Time
}

func NewCompetitionRankingService(
	lineItems source.LineItemSource,
	goals source.GoalSource,
	rankingRepo repository.CompetitionRankingRepository,
	cfg *config.Config,
) *CompetitionRankingService {
	return &CompetitionRankingService{
		lineItems:   lineItems,
		goals:       goals,
		rankingRepo: rankingRepo,
		rules:       RulesFromConfig(cfg),
		now:         time.Now,
	}
}

// RulesFromConfig usa os padrões da competição quando a configuração está vazia
func RulesFromConfig(cfg *config.Config) leaderboard.Rules {
	rules := leaderboard.Rules{
		Threshold:  cfg.Competition.SeatThreshold,
		Categories: cfg.Competition.Categories,
	}
	if rules.Threshold <= 0 {
		rules.Threshold = leaderboard.DefaultThreshold
	}
	if len(rules.Categories) == 0 {
		rules.Categories = leaderboard.DefaultCategories
	}
	return rules
}

// WithClock troca o relógio usado para o período padrão
func (s *CompetitionRankingService) WithClock(now func() time.Time) *CompetitionRankingService {
	s.now = now
	return s
}

// GetCompetitionReport monta o ranking ao vivo e o acompanhamento de metas. Sem ano e mês
// informados o período é o mês atual.
func (s *CompetitionRankingService) GetCompetitionReport(ctx context.Context, state domain.FilterState) (*domain.CompetitionReport, error) {
	state = s.withDefaultPeriod(state)

	if err := filtering.LineItemSchema.Validate(state); err != nil {
		return nil, errors.Wrap(ErrInvalidFilter, err.Error())
	}

	year, _ := strconv.Atoi(state.Get(domain.FilterYear))
	month, _ := strconv.Atoi(state.Get(domain.FilterMonth))

	items, err := s.lineItems.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar itens vendidos")
	}

	goals, err := s.goals.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar metas")
	}

	entries := leaderboard.Rank(items, state, s.rules)

	if month > 0 {
		entries = s.withPreviousPositions(ctx, entries, year, month)
	}

	annual, monthly := leaderboard.Realize(items, year, month)

	return &domain.CompetitionReport{
		Filters:     state,
		Threshold:   s.rules.Threshold,
		Leaderboard: entries,
		Goals:       leaderboard.TrackGoals(goals, annual, monthly, year, month),
	}, nil
}

// GetCompetitionRanking retorna o ranking persistido do mês (mm-yyyy), por padrão o mês atual
func (s *CompetitionRankingService) GetCompetitionRanking(ctx context.Context, month string) (*domain.CompetitionRankingResponse, error) {
	if month == "" {
		month = s.now().Format(MonthLayout)
	}

	if _, err := time.Parse(MonthLayout, month); err != nil {
		return nil, errors.Wrapf(ErrInvalidFilter, "mês %q fora do formato mm-aaaa", month)
	}

	ranking, err := s.rankingRepo.GetByMonth(ctx, month)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar ranking persistido")
	}
	return ranking, nil
}

func (s *CompetitionRankingService) withDefaultPeriod(state domain.FilterState) domain.FilterState {
	scoped := make(domain.FilterState, len(state)+2)
	for key, value := range state {
		scoped[key] = value
	}

	if scoped.Get(domain.FilterYear) == "" && scoped.Get(domain.FilterMonth) == "" {
		now := s.now()
		scoped[domain.FilterYear] = strconv.Itoa(now.Year())
		scoped[domain.FilterMonth] = strconv.Itoa(int(now.Month()))
	}

	return scoped
}

// withPreviousPositions compara com o último ranking persistido do período. Falhas na
// leitura não impedem o relatório.
func (s *CompetitionRankingService) withPreviousPositions(ctx context.Context, entries []domain.LeaderboardEntry, year, month int) []domain.LeaderboardEntry {
	period := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local).Format(MonthLayout)

	previous, err := s.rankingRepo.ListByMonth(ctx, period)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("month", period).Warn("Não foi possível buscar o ranking anterior")
		return entries
	}

	return leaderboard.ApplyPreviousPositions(entries, previous)
}
