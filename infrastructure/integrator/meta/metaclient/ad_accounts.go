package metaclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/zeroum/adset-insights-api/infrastructure/integrator/meta/domain"
)

// ListAdAccounts busca as contas de anúncio visíveis para o token
// (me/adaccounts), ordenadas por nome. Uma página de até 100 contas é
// suficiente para o seletor de clientes do dashboard.
func (c *MetaClient) ListAdAccounts(ctx context.Context, token string) ([]metadomain.AdAccount, error) {
	baseURL := fmt.Sprintf("%s/me/adaccounts", c.Cfg.Meta.URL)

	params := url.Values{}
	params.Add("fields", "name,id")
	params.Add("sort", "name_ascending")
	params.Add("limit", "100")
	params.Add("access_token", token)

	body, err := c.doRequest(ctx, baseURL+"?"+params.Encode())
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar contas de anúncio")
		return nil, err
	}

	var response metadomain.AdAccountsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON de contas")
		return nil, errors.Wrap(err, "erro ao decodificar resposta de contas")
	}

	if response.Error != nil {
		return nil, errors.Errorf("erro da Graph API ao listar contas: %s", response.Error.Message)
	}

	if response.Data == nil {
		return nil, errors.New("no data found")
	}

	return response.Data, nil
}
