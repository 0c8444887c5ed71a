package filtering

import (
	"strconv"
	"time"

	"github.com/goworksistemas/matriz-sub000/internal/domain"
)

// DealSchema define os filtros do relatório de comissões
var DealSchema = NewSchema(
	Field[domain.Deal]{Key: domain.FilterClient, Kind: Contains, Text: func(d domain.Deal) string { return d.ClientName }},
	Field[domain.Deal]{Key: domain.FilterOwner, Kind: Exact, Text: func(d domain.Deal) string { return d.OwnerID }},
	Field[domain.Deal]{Key: domain.FilterSDR, Kind: Exact, Text: func(d domain.Deal) string {
		if d.SDRID == nil {
			return ""
		}
		return *d.SDRID
	}},
	Field[domain.Deal]{Key: domain.FilterProduct, Kind: Exact, Text: func(d domain.Deal) string { return d.Product }},
	Field[domain.Deal]{Key: domain.FilterProductKind, Kind: Exact, Text: func(d domain.Deal) string { return string(d.ProductKind) }},
	Field[domain.Deal]{Key: domain.FilterStage, Kind: Exact, Text: func(d domain.Deal) string { return d.Stage }},
	Field[domain.Deal]{Key: domain.FilterCommercialStatus, Kind: Exact, Text: func(d domain.Deal) string { return d.CommercialStatus }},
	Field[domain.Deal]{Key: domain.FilterFinancialStatus, Kind: Exact, Text: func(d domain.Deal) string { return d.FinancialStatus }},
	Field[domain.Deal]{Key: domain.FilterLegalStatus, Kind: Exact, Text: func(d domain.Deal) string { return d.LegalStatus }},
	Field[domain.Deal]{Key: domain.FilterImpactSale, Kind: Exact, Text: func(d domain.Deal) string { return strconv.FormatBool(d.ImpactSale) }},
	Field[domain.Deal]{Key: domain.FilterStartDate, Kind: DateFrom, Date: func(d domain.Deal) *time.Time { return d.CloseDate }},
	Field[domain.Deal]{Key: domain.FilterEndDate, Kind: DateTo, Date: func(d domain.Deal) *time.Time { return d.CloseDate }},
)

// LineItemSchema define os filtros da competição de vendas
var LineItemSchema = NewSchema(
	Field[domain.LineItem]{Key: domain.FilterYear, Kind: Numeric, Text: func(li domain.LineItem) string { return strconv.Itoa(li.Year) }},
	Field[domain.LineItem]{Key: domain.FilterMonth, Kind: Numeric, Text: func(li domain.LineItem) string { return strconv.Itoa(li.Month) }},
	Field[domain.LineItem]{Key: domain.FilterOwner, Kind: Exact, Text: func(li domain.LineItem) string { return li.OwnerID }},
	Field[domain.LineItem]{Key: domain.FilterProduct, Kind: Contains, Text: func(li domain.LineItem) string { return li.Name }},
)

// TaskSchema define os filtros do tracker de tarefas
var TaskSchema = NewSchema(
	Field[domain.Task]{Key: domain.FilterSearch, Kind: Contains, Text: func(t domain.Task) string { return t.Title }},
	Field[domain.Task]{Key: domain.FilterStatus, Kind: Exact, Text: func(t domain.Task) string { return t.Status }},
	Field[domain.Task]{Key: domain.FilterPriority, Kind: Exact, Text: func(t domain.Task) string { return t.Priority }},
	Field[domain.Task]{Key: domain.FilterDepartment, Kind: Exact, Text: func(t domain.Task) string { return t.Department }},
	Field[domain.Task]{Key: domain.FilterRequester, Kind: Exact, Text: func(t domain.Task) string { return t.Requester }},
	Field[domain.Task]{Key: domain.FilterExecutor, Kind: Member, Set: func(t domain.Task) []string { return t.Executors }},
	Field[domain.Task]{Key: domain.FilterDueStatus, Kind: Exact, Text: func(t domain.Task) string { return string(t.DueStatus) }},
	Field[domain.Task]{Key: domain.FilterStartDate, Kind: DateFrom, Date: func(t domain.Task) *time.Time { return t.DateEnd }},
	Field[domain.Task]{Key: domain.FilterEndDate, Kind: DateTo, Date: func(t domain.Task) *time.Time { return t.DateEnd }},
)
