package insighting

import (
	metadomain "github.com/zeroum/adset-insights-api/infrastructure/integrator/meta/domain"
	"github.com/zeroum/adset-insights-api/internal/domain"
)

// renamedActionColumns mapeia os nomes pontilhados da API para os nomes
// curtos usados pelo dashboard. A renomeação acontece depois do
// preenchimento da tabela; colisões não ocorrem por construção.
var renamedActionColumns = map[string]string{
	domain.RawActionPostSave:         domain.ActionPostSave,
	domain.RawActionMessagingStarted: domain.ActionMessagingStarted7d,
}

// Normalize converte o lote cru da API na tabela de linhas normalizadas,
// preservando a ordem de entrada.
//
// Antes de qualquer normalização o payload é classificado: objeto de erro
// da API vira *APIError e lista de dados vazia vira ErrEmptyResult — ambos
// abortam o pipeline antes do cálculo de KPIs.
//
// O conjunto de colunas de ação de cada linha é a união sobre todas as
// linhas: uma ação que nunca disparou para um adset entra como "0" naquela
// linha. Campos escalares ausentes também viram "0".
func Normalize(resp *metadomain.AdSetInsightsResponse) ([]*domain.AdSetRow, error) {
	if resp == nil {
		return nil, &APIError{}
	}

	if resp.Error != nil {
		return nil, &APIError{Details: resp.Error}
	}

	if len(resp.Data) == 0 {
		return nil, ErrEmptyResult
	}

	rows := make([]*domain.AdSetRow, 0, len(resp.Data))
	allActionColumns := make(map[string]bool)

	for i := range resp.Data {
		record := &resp.Data[i]
		actions := ExtractActions(record.Actions)

		for name := range actions {
			allActionColumns[name] = true
		}

		rows = append(rows, &domain.AdSetRow{
			CampaignName: record.CampaignName,
			AdSetName:    record.AdSetName,
			AdSetID:      record.AdSetID,
			Spend:        fillZero(record.Spend),
			CPC:          fillZero(record.CPC),
			CTR:          fillZero(record.CTR),
			Clicks:       fillZero(record.Clicks),
			Impressions:  fillZero(record.Impressions),
			Reach:        fillZero(record.Reach),
			Frequency:    fillZero(record.Frequency),
			Actions:      actions,
		})
	}

	// Preenchimento da tabela inteira: toda coluna de ação existe em toda
	// linha depois deste passo.
	for _, row := range rows {
		for name := range allActionColumns {
			if _, ok := row.Actions[name]; !ok {
				row.Actions[name] = "0"
			}
		}
	}

	for _, row := range rows {
		for rawName, shortName := range renamedActionColumns {
			if value, ok := row.Actions[rawName]; ok {
				row.Actions[shortName] = value
				delete(row.Actions, rawName)
			}
		}
	}

	return rows, nil
}

func fillZero(value string) string {
	if value == "" {
		return "0"
	}

	return value
}
