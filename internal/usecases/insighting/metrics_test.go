package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeroum/adset-insights-api/internal/domain"
)

func row(campaign, adset, spend string, actions map[string]string) *domain.AdSetRow {
	return &domain.AdSetRow{
		CampaignName: campaign,
		AdSetName:    adset,
		AdSetID:      adset,
		Spend:        spend,
		Impressions:  "0",
		Reach:        "0",
		Actions:      actions,
	}
}

func TestTotalInvestment(t *testing.T) {
	rows := []*domain.AdSetRow{
		row("A", "X", "10.00", nil),
		row("A", "Y", "5.50", nil),
	}

	total, err := TotalInvestment(rows)

	require.NoError(t, err)
	assert.Equal(t, 15.50, total)
}

func TestTotalInvestment_TabelaVazia(t *testing.T) {
	total, err := TotalInvestment([]*domain.AdSetRow{})

	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestTotalInvestment_ValorCorrompido(t *testing.T) {
	rows := []*domain.AdSetRow{
		row("A", "X", "10.00", nil),
		row("A", "Y", "abc", nil),
	}

	// Corrupção numérica num agregado é erro imediato, diferente do ruído
	// de formato absorvido na extração de ações.
	_, err := TotalInvestment(rows)
	assert.Error(t, err)
}

func TestBuildKPIReport(t *testing.T) {
	rows := []*domain.AdSetRow{
		{
			CampaignName: "A",
			AdSetName:    "X",
			AdSetID:      "1",
			Spend:        "10",
			Impressions:  "100",
			Reach:        "50",
			Actions: map[string]string{
				"link_click":                        "4",
				"page_engagement":                   "2",
				"messaging_conversation_started_7d": "0",
			},
		},
	}

	report, err := BuildKPIReport(rows, 50)
	require.NoError(t, err)

	assert.Equal(t, 10.0, report.TotalInvestment)
	assert.Equal(t, "R$ 10,00", report.TotalInvestmentDisplay)
	assert.Equal(t, 100.0, report.Impressions)
	assert.Equal(t, 4.0, report.LinkClicks)
	assert.Equal(t, 2.0, report.Engagement)

	require.True(t, report.CTR.Defined)
	assert.Equal(t, 4.0, report.CTR.Value)

	require.True(t, report.Frequency.Defined)
	assert.Equal(t, 2.0, report.Frequency.Value)

	require.True(t, report.CostPerClick.Defined)
	assert.Equal(t, 2.5, report.CostPerClick.Value)

	require.True(t, report.CostPerEngagement.Defined)
	assert.Equal(t, 5.0, report.CostPerEngagement.Value)

	// Denominador zero vira o sentinela, nunca uma divisão por zero.
	assert.Equal(t, 0.0, report.TotalMessages)
	assert.False(t, report.CostPerMessage.Defined)
}

func TestBuildKPIReport_DenominadoresZerados(t *testing.T) {
	rows := []*domain.AdSetRow{
		{
			CampaignName: "A",
			AdSetName:    "X",
			AdSetID:      "1",
			Spend:        "25.90",
			Impressions:  "0",
			Reach:        "0",
			Actions:      map[string]string{},
		},
	}

	report, err := BuildKPIReport(rows, 0)
	require.NoError(t, err)

	assert.Equal(t, 25.90, report.TotalInvestment)
	assert.False(t, report.CostPerMessage.Defined)
	assert.False(t, report.Frequency.Defined, "frequency com reach externo zero deve ser indefinida")
	assert.False(t, report.CTR.Defined)
	assert.False(t, report.CostPerClick.Defined)
	assert.False(t, report.CostPerEngagement.Defined)
}

func TestBuildKPIReport_TabelaVazia(t *testing.T) {
	report, err := BuildKPIReport([]*domain.AdSetRow{}, 0)
	require.NoError(t, err)

	assert.Equal(t, 0.0, report.TotalInvestment)
	assert.Equal(t, 0.0, report.TotalMessages)
	assert.Equal(t, 0.0, report.Impressions)
	assert.False(t, report.Frequency.Defined)
}

func TestBuildKPIReport_ColunaDeAcaoAusente(t *testing.T) {
	// Tabela sem a coluna link_click: a soma é zero e o custo por clique é
	// indefinido.
	rows := []*domain.AdSetRow{
		row("A", "X", "10", map[string]string{"page_engagement": "3"}),
	}

	report, err := BuildKPIReport(rows, 10)
	require.NoError(t, err)

	assert.Equal(t, 0.0, report.LinkClicks)
	assert.False(t, report.CostPerClick.Defined)
	assert.Equal(t, 3.0, report.Engagement)
}

func TestRatio_MarshalJSON(t *testing.T) {
	defined, err := domain.DefinedRatio(2.5).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "2.5", string(defined))

	undefined, err := domain.UndefinedRatio().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"N/A"`, string(undefined))
}
