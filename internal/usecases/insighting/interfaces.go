package insighting

import (
	"context"
)

// Insighter define a interface do pipeline de insights de adsets.
type Insighter interface {
	// GetDashboard executa uma rodada completa do pipeline: busca,
	// normalização, enriquecimento, filtro por campanha e cálculo de KPIs.
	GetDashboard(ctx context.Context, req *DashboardRequest) (*DashboardResponse, error)
}
