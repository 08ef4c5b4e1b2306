package handler

import (
	"net/http"

	"github.com/zeroum/adset-insights-api/internal/api/handler/router"
	"github.com/zeroum/adset-insights-api/internal/usecases/account"
	"github.com/zeroum/adset-insights-api/internal/usecases/insighting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/adAccounts/:id/adsets/insights",
			Method:  http.MethodGet,
			Handler: GetAdSetInsights(service),
		},
	}
}

func AdAccounts(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: AdAccountList(service),
		},
	}
}
