package handler

import (
	"net/url"
	"strings"

	"github.com/goworksistemas/matriz-sub000/internal/domain"
)

// Prefixos das instâncias de filtro na query string, por exemplo global.owner=123
const (
	scopeGlobal = "global"
	scopeOwner  = "owner"
	scopeSDR    = "sdr"
	scopeStatus = "status"
)

// reportFiltersFromQuery separa os parâmetros por instância de filtro. Parâmetros sem
// prefixo pertencem ao filtro global.
func reportFiltersFromQuery(query url.Values) domain.ReportFilters {
	filters := domain.ReportFilters{
		Global: domain.FilterState{},
		Owner:  domain.FilterState{},
		SDR:    domain.FilterState{},
		Status: domain.FilterState{},
	}

	for param, values := range query {
		value := strings.TrimSpace(firstValue(values))
		if value == "" {
			continue
		}

		scope, key, found := strings.Cut(param, ".")
		if !found {
			filters.Global[param] = value
			continue
		}

		switch scope {
		case scopeGlobal:
			filters.Global[key] = value
		case scopeOwner:
			filters.Owner[key] = value
		case scopeSDR:
			filters.SDR[key] = value
		case scopeStatus:
			filters.Status[key] = value
		}
	}

	return filters
}

// filterStateFromQuery lê um único estado de filtro
func filterStateFromQuery(query url.Values) domain.FilterState {
	return reportFiltersFromQuery(query).Global
}

func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
