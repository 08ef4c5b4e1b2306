package domain

import "time"

// Nomes canônicos das colunas derivadas de ações. As duas primeiras são
// renomeadas a partir dos nomes pontilhados que a API do Meta retorna.
const (
	ActionPostSave            = "post_save"
	ActionMessagingStarted7d  = "messaging_conversation_started_7d"
	ActionLinkClick           = "link_click"
	ActionPageEngagement      = "page_engagement"
	RawActionPostSave         = "onsite_conversion.post_save"
	RawActionMessagingStarted = "onsite_conversion.messaging_conversation_started_7d"
)

// AdSetRow representa uma linha normalizada de insights no nível de conjunto
// de anúncios. Os campos escalares vêm direto da API como strings numéricas;
// Actions contém as colunas dinâmicas derivadas das ações, já preenchidas
// para toda a tabela (entradas esparsas viram "0").
type AdSetRow struct {
	CampaignName string `json:"campaign_name"`
	AdSetName    string `json:"adset_name"`
	AdSetID      string `json:"adset_id"`
	Spend        string `json:"spend"`
	CPC          string `json:"cpc"`
	CTR          string `json:"ctr"`
	Clicks       string `json:"clicks"`
	Impressions  string `json:"impressions"`
	Reach        string `json:"reach"`
	Frequency    string `json:"frequency"`

	Actions map[string]string `json:"actions"`

	// Preenchidos pelo enriquecimento de segmentação. Nulos quando a
	// consulta de segmentação falhou ou não retornou dados.
	AgeMin *int `json:"age_min"`
	AgeMax *int `json:"age_max"`
}

// Action retorna o valor de uma coluna derivada de ação, ou "0" quando a
// coluna não existe na tabela.
func (r *AdSetRow) Action(name string) string {
	if r.Actions == nil {
		return "0"
	}

	if v, ok := r.Actions[name]; ok {
		return v
	}

	return "0"
}

// InsightFilters define o intervalo de datas de uma consulta de insights.
type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}
