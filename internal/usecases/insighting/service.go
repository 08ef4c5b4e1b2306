package insighting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zeroum/adset-insights-api/infrastructure/integrator/meta/metaclient"
	"github.com/zeroum/adset-insights-api/internal/config"
	"github.com/zeroum/adset-insights-api/internal/domain"
)

// Status da resposta do dashboard, espelhando as mensagens de feedback da
// interface.
const (
	StatusOK     = "ok"
	StatusNoData = "no_data"
)

// DashboardRequest carrega os parâmetros de uma rodada do pipeline. O valor
// é montado do zero a cada requisição e nunca compartilhado entre chamadas.
type DashboardRequest struct {
	AccountID   string
	AccessToken string
	Filters     *domain.InsightFilters
	Campaign    string
	ManualReach float64
}

// DashboardResponse é a saída de uma rodada: a tabela filtrada nas duas
// ordenações de exibição, a lista de campanhas para o seletor e o relatório
// de KPIs.
type DashboardResponse struct {
	Status    string             `json:"status"`
	Table     []*domain.AdSetRow `json:"table"`
	Chart     []*domain.AdSetRow `json:"chart"`
	Campaigns []string           `json:"campaigns"`
	KPIs      *domain.KPIReport  `json:"kpis"`
}

// Service implementa o pipeline de insights sobre o cliente da Graph API.
type Service struct {
	cfg    *config.Config
	client metaclient.Client
}

// NewService cria o serviço de insights.
func NewService(cfg *config.Config, client metaclient.Client) Insighter {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

// GetDashboard executa uma rodada completa do pipeline. A rodada é
// estritamente sequencial entre etapas; a única concorrência interna é o
// fan-out limitado das consultas de segmentação.
func (s *Service) GetDashboard(ctx context.Context, req *DashboardRequest) (*DashboardResponse, error) {
	logger := logrus.WithFields(logrus.Fields{
		"account_id": req.AccountID,
		"campaign":   req.Campaign,
	})

	if req.Filters != nil && req.Filters.StartDate != nil && req.Filters.EndDate != nil {
		logger = logger.WithFields(logrus.Fields{
			"start_date": req.Filters.StartDate.Format(time.DateOnly),
			"end_date":   req.Filters.EndDate.Format(time.DateOnly),
		})
	}

	logger.Info("Iniciando rodada do pipeline de insights")

	resp, err := s.client.GetAdSetInsights(ctx, req.AccountID, req.AccessToken, req.Filters)
	if err != nil {
		return nil, err
	}

	rows, err := Normalize(resp)
	if err != nil {
		if err == ErrEmptyResult {
			logger.Info("Nenhuma campanha no período solicitado")
			return &DashboardResponse{
				Status:    StatusNoData,
				Table:     []*domain.AdSetRow{},
				Chart:     []*domain.AdSetRow{},
				Campaigns: []string{},
			}, nil
		}

		return nil, err
	}

	s.EnrichTargeting(ctx, rows, req.AccessToken)

	filtered := FilterByCampaign(rows, req.Campaign)

	reachValue, err := ResolveReach(filtered, req.Campaign, req.ManualReach)
	if err != nil {
		return nil, err
	}

	kpis, err := BuildKPIReport(filtered, reachValue)
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"rows_total":    len(rows),
		"rows_filtered": len(filtered),
	}).Info("Rodada do pipeline concluída")

	return &DashboardResponse{
		Status:    StatusOK,
		Table:     SortForTable(filtered),
		Chart:     SortForChart(filtered),
		Campaigns: Campaigns(rows),
		KPIs:      kpis,
	}, nil
}
