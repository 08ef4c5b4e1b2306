package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/zeroum/adset-insights-api/internal/domain"
	"github.com/zeroum/adset-insights-api/internal/usecases/insighting"
	"github.com/zeroum/adset-insights-api/pkg/apiErrors"
	"github.com/zeroum/adset-insights-api/pkg/log"
	"github.com/zeroum/adset-insights-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetAdSetInsights executa uma rodada do pipeline de insights para a conta
// indicada e responde com a tabela filtrada, as duas visões ordenadas e o
// relatório de KPIs.
func GetAdSetInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		query := r.URL.Query()

		token := query.Get("access_token")
		campaign := query.Get("campaign")
		startDateRaw := query.Get("start_date")
		endDateRaw := query.Get("end_date")
		reachRaw := query.Get("reach")

		// Modo "dia único" do dashboard: um único parâmetro date equivale a
		// um intervalo de um dia.
		if singleDate := query.Get("date"); singleDate != "" && startDateRaw == "" && endDateRaw == "" {
			startDateRaw = singleDate
			endDateRaw = singleDate
		}

		// Cada entrada obrigatória ausente é reportada individualmente,
		// antes de qualquer chamada de rede.
		missing := make([]string, 0)
		if token == "" {
			missing = append(missing, "access_token")
		}
		if accountID == "" {
			missing = append(missing, "account_id")
		}
		if startDateRaw == "" {
			missing = append(missing, "start_date")
		}
		if endDateRaw == "" {
			missing = append(missing, "end_date")
		}
		if campaign == "" && reachRaw == "" {
			missing = append(missing, "reach")
		}

		if len(missing) > 0 {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"missing":    missing,
			}).Warn("insights: parâmetros obrigatórios ausentes")

			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros obrigatórios ausentes", missing)
			return
		}

		startDate, err := utils.ParseDate(startDateRaw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválido, use YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(endDateRaw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválido, use YYYY-MM-DD", nil)
			return
		}

		manualReach := 0.0
		if reachRaw != "" {
			manualReach, err = strconv.ParseFloat(reachRaw, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "reach inválido, use um número", nil)
				return
			}
		}

		req := &insighting.DashboardRequest{
			AccountID:   accountID,
			AccessToken: token,
			Filters: &domain.InsightFilters{
				StartDate: startDate,
				EndDate:   endDate,
			},
			Campaign:    campaign,
			ManualReach: manualReach,
		}

		response, err := service.GetDashboard(r.Context(), req)
		if err != nil {
			writeInsightError(w, logger, accountID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("insights: falha ao codificar resposta")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// writeInsightError traduz a taxonomia de erros do pipeline para respostas
// HTTP padronizadas.
func writeInsightError(w http.ResponseWriter, logger log.Logger, accountID string, err error) {
	logger = logger.WithFields(log.Fields{
		"account_id": accountID,
		"error":      err.Error(),
	})

	if apiErr, ok := err.(*insighting.APIError); ok {
		if apiErr.IsAuthError() {
			logger.Warn("insights: credencial inválida ou expirada")
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido ou expirado. Verifique o token e o código do cliente.", nil)
			return
		}

		logger.Error("insights: a Graph API retornou um erro")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, apiErr.Error(), nil)
		return
	}

	logger.Error("insights: falha na rodada do pipeline")
	apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao carregar os dados. Verifique se o token é válido ou se o código de cliente está correto.", nil)
}
