package account

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/zeroum/adset-insights-api/infrastructure/integrator/meta/metaclient"
	"github.com/zeroum/adset-insights-api/internal/domain"
)

// AccountService lista as contas de anúncio visíveis para a credencial do
// usuário, no formato do seletor de clientes do dashboard.
type AccountService interface {
	ListAccountOptions(ctx context.Context, token string) ([]*domain.AccountOption, error)
}

type Service struct {
	client metaclient.Client
}

func NewService(client metaclient.Client) AccountService {
	return &Service{
		client: client,
	}
}

// ListAccountOptions busca me/adaccounts e transforma cada par {id, name}
// em {value, label}, ordenado por label.
func (s *Service) ListAccountOptions(ctx context.Context, token string) ([]*domain.AccountOption, error) {
	accounts, err := s.client.ListAdAccounts(ctx, token)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar contas de anúncio do Meta")
		return nil, err
	}

	options := make([]*domain.AccountOption, 0, len(accounts))
	for _, account := range accounts {
		options = append(options, &domain.AccountOption{
			Value: account.ID,
			Label: account.Name,
		})
	}

	sort.Slice(options, func(i, j int) bool {
		return options[i].Label < options[j].Label
	})

	return options, nil
}
