package metadomain

import jsoniter "github.com/json-iterator/go"

// AdSetInsightRecord é uma linha crua retornada pelo endpoint de insights no
// nível adset. Todos os campos numéricos chegam como strings. O campo
// Actions fica como RawMessage de propósito: o formato varia entre contas e
// entradas malformadas não podem derrubar o lote inteiro (a extração
// tolerante acontece na normalização).
type AdSetInsightRecord struct {
	CampaignName string              `json:"campaign_name"`
	AdSetName    string              `json:"adset_name"`
	AdSetID      string              `json:"adset_id"`
	Spend        string              `json:"spend"`
	CPC          string              `json:"cpc"`
	CTR          string              `json:"ctr"`
	Clicks       string              `json:"clicks"`
	Impressions  string              `json:"impressions"`
	Reach        string              `json:"reach"`
	Frequency    string              `json:"frequency"`
	Actions      jsoniter.RawMessage `json:"actions"`
}

// Action é uma entrada bem formada da lista de ações de um registro.
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
}

// AdSetInsightsResponse é o payload completo do endpoint de insights: ou uma
// lista de registros em Data, ou um objeto de erro da Graph API.
type AdSetInsightsResponse struct {
	Data   []AdSetInsightRecord `json:"data"`
	Paging Paging               `json:"paging"`
	Error  *ErrorDetails        `json:"error"`
}
