package insighting

import (
	"context"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/zeroum/adset-insights-api/infrastructure/integrator/meta/domain"
	"github.com/zeroum/adset-insights-api/infrastructure/integrator/meta/mocks"
	"github.com/zeroum/adset-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func dashboardRequest(campaign string, reach float64) *DashboardRequest {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	return &DashboardRequest{
		AccountID:   "act_123",
		AccessToken: "token",
		Filters: &domain.InsightFilters{
			StartDate: &start,
			EndDate:   &end,
		},
		Campaign:    campaign,
		ManualReach: reach,
	}
}

func TestGetDashboard_RodadaCompleta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := &Service{client: mockClient}

	mockClient.EXPECT().
		GetAdSetInsights(gomock.Any(), "act_123", "token", gomock.Any()).
		Return(&metadomain.AdSetInsightsResponse{
			Data: []metadomain.AdSetInsightRecord{
				{
					CampaignName: "A",
					AdSetName:    "X",
					AdSetID:      "1",
					Spend:        "10",
					Impressions:  "100",
					Reach:        "50",
					Actions: jsoniter.RawMessage(`[
						{"action_type":"link_click","value":"4"},
						{"action_type":"page_engagement","value":"2"}
					]`),
				},
			},
		}, nil)

	mockClient.EXPECT().
		GetAdSetTargeting(gomock.Any(), "1", "token").
		Return(&metadomain.AdSetTargeting{
			ID:        "1",
			Name:      "X",
			Targeting: &metadomain.TargetingSpec{AgeMin: intPtr(25), AgeMax: intPtr(45)},
		}, nil)

	response, err := service.GetDashboard(context.Background(), dashboardRequest("", 50))
	require.NoError(t, err)

	assert.Equal(t, StatusOK, response.Status)
	require.Len(t, response.Table, 1)
	require.Len(t, response.Chart, 1)
	assert.Equal(t, []string{"A"}, response.Campaigns)

	tableRow := response.Table[0]
	assert.Equal(t, "4", tableRow.Actions["link_click"])
	assert.Equal(t, "2", tableRow.Actions["page_engagement"])
	assert.Equal(t, 25, *tableRow.AgeMin)
	assert.Equal(t, 45, *tableRow.AgeMax)

	kpis := response.KPIs
	require.NotNil(t, kpis)
	assert.Equal(t, 10.0, kpis.TotalInvestment)
	assert.Equal(t, 4.0, kpis.LinkClicks)
	assert.Equal(t, 2.0, kpis.Engagement)
	assert.Equal(t, 100.0, kpis.Impressions)

	require.True(t, kpis.CTR.Defined)
	assert.Equal(t, 4.0, kpis.CTR.Value)

	require.True(t, kpis.Frequency.Defined)
	assert.Equal(t, 2.0, kpis.Frequency.Value)
}

func TestGetDashboard_FiltroPorCampanhaUsaSomaDoReach(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := &Service{client: mockClient}

	mockClient.EXPECT().
		GetAdSetInsights(gomock.Any(), "act_123", "token", gomock.Any()).
		Return(&metadomain.AdSetInsightsResponse{
			Data: []metadomain.AdSetInsightRecord{
				{CampaignName: "A", AdSetName: "X", AdSetID: "1", Spend: "10", Impressions: "100", Reach: "40"},
				{CampaignName: "A", AdSetName: "Y", AdSetID: "2", Spend: "10", Impressions: "60", Reach: "40"},
				{CampaignName: "B", AdSetName: "Z", AdSetID: "3", Spend: "99", Impressions: "500", Reach: "300"},
			},
		}, nil)

	mockClient.EXPECT().
		GetAdSetTargeting(gomock.Any(), gomock.Any(), "token").
		Return(nil, assert.AnError).
		Times(3)

	// O alcance manual (1000) deve ser ignorado quando há campanha
	// selecionada: vale a soma do reach das linhas filtradas (80).
	response, err := service.GetDashboard(context.Background(), dashboardRequest("A", 1000))
	require.NoError(t, err)

	require.Len(t, response.Table, 2)
	assert.ElementsMatch(t, []string{"A", "B"}, response.Campaigns)

	kpis := response.KPIs
	assert.Equal(t, 20.0, kpis.TotalInvestment)
	assert.Equal(t, 160.0, kpis.Impressions)
	require.True(t, kpis.Frequency.Defined)
	assert.Equal(t, 2.0, kpis.Frequency.Value, "160 impressões / 80 de alcance somado")

	// Enriquecimento parcial é aceitável: todas as consultas falharam e a
	// rodada seguiu com os campos nulos.
	assert.Nil(t, response.Table[0].AgeMin)
}

func TestGetDashboard_SemDados(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := &Service{client: mockClient}

	mockClient.EXPECT().
		GetAdSetInsights(gomock.Any(), "act_123", "token", gomock.Any()).
		Return(&metadomain.AdSetInsightsResponse{Data: []metadomain.AdSetInsightRecord{}}, nil)

	response, err := service.GetDashboard(context.Background(), dashboardRequest("", 100))
	require.NoError(t, err)

	assert.Equal(t, StatusNoData, response.Status)
	assert.Empty(t, response.Table)
	assert.Empty(t, response.Chart)
	assert.Nil(t, response.KPIs)
}

func TestGetDashboard_ErroDaAPIAbortaAntesDaNormalizacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := &Service{client: mockClient}

	mockClient.EXPECT().
		GetAdSetInsights(gomock.Any(), "act_123", "token", gomock.Any()).
		Return(&metadomain.AdSetInsightsResponse{
			Error: &metadomain.ErrorDetails{Message: "Invalid OAuth access token", Code: 190},
		}, nil)

	// Nenhuma chamada de segmentação esperada: o erro curto-circuita o
	// pipeline antes do enriquecimento e do cálculo de KPIs.
	response, err := service.GetDashboard(context.Background(), dashboardRequest("", 100))

	require.Error(t, err)
	assert.Nil(t, response)
	assert.IsType(t, &APIError{}, err)
}
