package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/zeroum/adset-insights-api/infrastructure/integrator/meta/domain"
	"github.com/zeroum/adset-insights-api/internal/domain"
)

// insightFields é a lista fixa de campos solicitados no nível adset.
const insightFields = "campaign_name,adset_name,adset_id,spend,cpc,ctr,clicks,impressions,reach,actions,frequency"

// GetAdSetInsights busca uma página de insights no nível adset para uma
// conta. Os parâmetros da requisição são montados do zero a cada chamada —
// nada de estado compartilhado entre requisições.
func (c *MetaClient) GetAdSetInsights(ctx context.Context, accountID string, token string, filters *domain.InsightFilters) (*metadomain.AdSetInsightsResponse, error) {
	baseURL := fmt.Sprintf("%s/%s/insights", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("level", "adset")
	params.Add("fields", insightFields)
	params.Add("access_token", token)

	if filters != nil && filters.StartDate != nil && filters.EndDate != nil {
		timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}",
			filters.StartDate.Format(time.DateOnly),
			filters.EndDate.Format(time.DateOnly),
		)
		params.Add("time_range", timeRange)
	}

	body, err := c.doRequest(ctx, baseURL+"?"+params.Encode())
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao buscar insights de adsets")
		return nil, err
	}

	var response metadomain.AdSetInsightsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON de insights")
		return nil, errors.Wrap(err, "erro ao decodificar resposta de insights")
	}

	return &response, nil
}
