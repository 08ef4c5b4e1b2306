package metaclient

import (
	"context"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	metadomain "github.com/zeroum/adset-insights-api/infrastructure/integrator/meta/domain"
	"github.com/zeroum/adset-insights-api/internal/config"
	"github.com/zeroum/adset-insights-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetAdSetInsights(ctx context.Context, accountID string, token string, filters *domain.InsightFilters) (*metadomain.AdSetInsightsResponse, error)
	GetAdSetTargeting(ctx context.Context, adSetID string, token string) (*metadomain.AdSetTargeting, error)
	ListAdAccounts(ctx context.Context, token string) ([]metadomain.AdAccount, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

// NewClient cria o cliente da Graph API. O timeout vem da configuração para
// que uma consulta de segmentação travada não segure o pipeline inteiro.
func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Meta.RequestTimeout,
		},
	}
}

// doRequest executa um GET na Graph API e devolve o corpo da resposta.
// Erros de transporte são fatais para a chamada; erros de negócio vêm no
// corpo e são tratados por quem decodifica.
func (c *MetaClient) doRequest(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	return body, nil
}
