package handler

import (
	"net/http"

	"github.com/zeroum/adset-insights-api/internal/usecases/account"
	"github.com/zeroum/adset-insights-api/pkg/apiErrors"
	"github.com/zeroum/adset-insights-api/pkg/log"
)

// AdAccountList responde com as contas de anúncio visíveis para o token, no
// formato {value, label} do seletor de clientes.
func AdAccountList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		token := r.URL.Query().Get("access_token")
		if token == "" {
			logger.Warn("accounts: access_token ausente")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros obrigatórios ausentes", []string{"access_token"})
			return
		}

		options, err := service.ListAccountOptions(r.Context(), token)
		if err != nil {
			logger.WithField("error", err.Error()).Error("accounts: falha ao listar contas")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao listar contas de anúncio", nil)
			return
		}

		logger.WithField("total_accounts", len(options)).Info("accounts: contas listadas com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(options); err != nil {
			logger.WithField("error", err.Error()).Error("accounts: falha ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
