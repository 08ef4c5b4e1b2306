package metaclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/zeroum/adset-insights-api/infrastructure/integrator/meta/domain"
)

// GetAdSetTargeting busca nome e segmentação de um conjunto de anúncios.
// A falha de uma consulta individual não é fatal para o pipeline; quem chama
// decide absorver o erro.
func (c *MetaClient) GetAdSetTargeting(ctx context.Context, adSetID string, token string) (*metadomain.AdSetTargeting, error) {
	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, adSetID)

	params := url.Values{}
	params.Add("fields", "name,targeting")
	params.Add("access_token", token)

	body, err := c.doRequest(ctx, baseURL+"?"+params.Encode())
	if err != nil {
		logrus.WithError(err).WithField("adset_id", adSetID).Warn("Erro ao buscar segmentação do adset")
		return nil, err
	}

	var response metadomain.AdSetTargeting
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).WithField("adset_id", adSetID).Warn("Erro ao decodificar JSON de segmentação")
		return nil, errors.Wrap(err, "erro ao decodificar resposta de segmentação")
	}

	if response.Error != nil {
		return nil, errors.Errorf("erro da Graph API ao buscar segmentação: %s", response.Error.Message)
	}

	return &response, nil
}
