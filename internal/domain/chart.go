package domain

// ChartItem é o par nome/valor consumido pelos gráficos
type ChartItem struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
