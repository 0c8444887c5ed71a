package domain

import "time"

const (
	CompetitionStatusWithin = "Dentro da competição"
)

// LeaderboardEntry é a posição de um vendedor na competição de vendas
type LeaderboardEntry struct {
	Position         int     `json:"position"`
	OwnerID          string  `json:"owner_id"`
	OwnerName        string  `json:"owner_name"`
	SeatsCapped      float64 `json:"seatsCapped"`
	SeatsRaw         float64 `json:"seatsRaw"`
	DealsCount       int     `json:"dealsCount"`
	Eligible         bool    `json:"eligible"`
	MissingSeats     float64 `json:"missingSeats"`
	Status           string  `json:"status"`
	PreviousPosition int     `json:"previous_position"`
	PositionChange   int     `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
}

// GoalAttainment compara um valor realizado com a meta. Attainment é nulo quando não há meta.
type GoalAttainment struct {
	Realized   float64  `json:"realizado"`
	Target     float64  `json:"meta"`
	Attainment *float64 `json:"atingimento"`
}

// HasGoal indica se existe meta cadastrada para o período
func (g GoalAttainment) HasGoal() bool {
	return g.Attainment != nil
}

// GoalScope agrupa as metas de faturamento, seats e negócios de um período
type GoalScope struct {
	Revenue GoalAttainment `json:"faturamento"`
	Seats   GoalAttainment `json:"seats"`
	Deals   GoalAttainment `json:"negocios"`
}

// GoalTracking é o acompanhamento mensal e anual das metas
type GoalTracking struct {
	Year    int       `json:"ano"`
	Month   int       `json:"mes"`
	Monthly GoalScope `json:"mensal"`
	Annual  GoalScope `json:"anual"`
}

// Realized são os totais realizados usados no acompanhamento de metas
type Realized struct {
	Revenue float64
	Seats   float64
	Deals   int
}

// CompetitionReport é o view-model do módulo de competição de vendas
type CompetitionReport struct {
	Filters     FilterState        `json:"filtros"`
	Threshold   float64            `json:"meta_seats"`
	Leaderboard []LeaderboardEntry `json:"ranking"`
	Goals       GoalTracking       `json:"metas"`
}

// CompetitionRankingResponse é o ranking persistido de um mês
type CompetitionRankingResponse struct {
	Ranking    []CompetitionRankingItem `json:"ranking"`
	LastUpdate time.Time                `json:"last_update"`
}

// CompetitionRankingItem é uma linha do ranking persistido
type CompetitionRankingItem struct {
	ID               int       `json:"id"`
	OwnerID          string    `json:"owner_id"`
	Month            string    `json:"month"` // Formato mm-yyyy (ex: 01-2024)
	OwnerName        string    `json:"owner_name"`
	SeatsCapped      float64   `json:"seats_capped"`
	SeatsRaw         float64   `json:"seats_raw"`
	DealsCount       int       `json:"deals_count"`
	Position         int       `json:"position"`
	PositionChange   int       `json:"position_change"`
	PreviousPosition int       `json:"previous_position"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
