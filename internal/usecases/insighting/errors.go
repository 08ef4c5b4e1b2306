package insighting

import (
	"fmt"

	"github.com/pkg/errors"
	metadomain "github.com/zeroum/adset-insights-api/infrastructure/integrator/meta/domain"
)

// ErrEmptyResult indica uma resposta válida da API, porém sem nenhuma linha
// de dados no período solicitado. Não é um erro da API: o dashboard mostra
// "não existem campanhas deste cliente no intervalo de tempo solicitado".
var ErrEmptyResult = errors.New("não existem campanhas no intervalo de tempo solicitado")

// APIError indica que o payload trouxe o objeto de erro da Graph API.
// A execução do pipeline é abortada: normalizar um payload de erro não faz
// sentido.
type APIError struct {
	Details *metadomain.ErrorDetails
}

func (e *APIError) Error() string {
	if e.Details == nil {
		return "erro desconhecido da Graph API"
	}

	return fmt.Sprintf("erro da Graph API (código %d): %s", e.Details.Code, e.Details.Message)
}

// IsAuthError repassa a verificação de credencial inválida dos detalhes.
func (e *APIError) IsAuthError() bool {
	return e.Details != nil && e.Details.IsAuthError()
}
