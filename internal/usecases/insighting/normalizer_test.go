package insighting

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/zeroum/adset-insights-api/infrastructure/integrator/meta/domain"
	"github.com/zeroum/adset-insights-api/internal/domain"
)

func TestNormalize_ErroDaAPI(t *testing.T) {
	resp := &metadomain.AdSetInsightsResponse{
		Error: &metadomain.ErrorDetails{
			Message: "Invalid OAuth access token",
			Type:    "OAuthException",
			Code:    190,
		},
	}

	rows, err := Normalize(resp)

	require.Error(t, err)
	assert.Nil(t, rows)

	apiErr, ok := err.(*APIError)
	require.True(t, ok, "o payload de erro deve ser classificado como APIError")
	assert.True(t, apiErr.IsAuthError())
}

func TestNormalize_ListaVazia(t *testing.T) {
	resp := &metadomain.AdSetInsightsResponse{
		Data: []metadomain.AdSetInsightRecord{},
	}

	rows, err := Normalize(resp)

	assert.Nil(t, rows)
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestNormalize_PreenchimentoDaTabelaInteira(t *testing.T) {
	resp := &metadomain.AdSetInsightsResponse{
		Data: []metadomain.AdSetInsightRecord{
			{
				CampaignName: "A",
				AdSetName:    "X",
				AdSetID:      "1",
				Spend:        "10",
				Actions:      jsoniter.RawMessage(`[{"action_type":"link_click","value":"4"}]`),
			},
			{
				CampaignName: "A",
				AdSetName:    "Y",
				AdSetID:      "2",
				Spend:        "5",
				Actions:      jsoniter.RawMessage(`[{"action_type":"page_engagement","value":"7"}]`),
			},
			{
				CampaignName: "B",
				AdSetName:    "Z",
				AdSetID:      "3",
				Spend:        "2",
			},
		},
	}

	rows, err := Normalize(resp)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Toda coluna de ação da união existe em toda linha depois da
	// normalização; entradas esparsas viram "0".
	for _, row := range rows {
		assert.Contains(t, row.Actions, "link_click")
		assert.Contains(t, row.Actions, "page_engagement")
	}

	assert.Equal(t, "4", rows[0].Actions["link_click"])
	assert.Equal(t, "0", rows[0].Actions["page_engagement"])
	assert.Equal(t, "0", rows[1].Actions["link_click"])
	assert.Equal(t, "7", rows[1].Actions["page_engagement"])
	assert.Equal(t, "0", rows[2].Actions["link_click"])
	assert.Equal(t, "0", rows[2].Actions["page_engagement"])

	// A ordem de entrada é preservada.
	assert.Equal(t, "X", rows[0].AdSetName)
	assert.Equal(t, "Y", rows[1].AdSetName)
	assert.Equal(t, "Z", rows[2].AdSetName)

	// Campos escalares ausentes viram "0".
	assert.Equal(t, "0", rows[2].Impressions)
	assert.Equal(t, "0", rows[2].Reach)
}

func TestNormalize_RenomeiaColunasPontilhadas(t *testing.T) {
	resp := &metadomain.AdSetInsightsResponse{
		Data: []metadomain.AdSetInsightRecord{
			{
				CampaignName: "A",
				AdSetName:    "X",
				AdSetID:      "1",
				Actions: jsoniter.RawMessage(`[
					{"action_type":"onsite_conversion.post_save","value":"3"},
					{"action_type":"onsite_conversion.messaging_conversation_started_7d","value":"8"}
				]`),
			},
			{
				CampaignName: "A",
				AdSetName:    "Y",
				AdSetID:      "2",
			},
		},
	}

	rows, err := Normalize(resp)
	require.NoError(t, err)

	for _, row := range rows {
		assert.NotContains(t, row.Actions, domain.RawActionPostSave)
		assert.NotContains(t, row.Actions, domain.RawActionMessagingStarted)
		assert.Contains(t, row.Actions, domain.ActionPostSave)
		assert.Contains(t, row.Actions, domain.ActionMessagingStarted7d)
	}

	assert.Equal(t, "3", rows[0].Actions[domain.ActionPostSave])
	assert.Equal(t, "8", rows[0].Actions[domain.ActionMessagingStarted7d])

	// A renomeação acontece depois do preenchimento: a linha sem ações
	// também ganha as colunas renomeadas, com "0".
	assert.Equal(t, "0", rows[1].Actions[domain.ActionPostSave])
	assert.Equal(t, "0", rows[1].Actions[domain.ActionMessagingStarted7d])
}

func TestNormalize_LinhaSemCampoActions(t *testing.T) {
	resp := &metadomain.AdSetInsightsResponse{
		Data: []metadomain.AdSetInsightRecord{
			{
				CampaignName: "A",
				AdSetName:    "X",
				AdSetID:      "1",
				Actions:      jsoniter.RawMessage(`[{"action_type":"link_click","value":"4"}]`),
			},
			{
				CampaignName: "A",
				AdSetName:    "Sem ações",
				AdSetID:      "2",
			},
		},
	}

	rows, err := Normalize(resp)
	require.NoError(t, err)

	assert.Equal(t, "0", rows[1].Actions["link_click"])
}
