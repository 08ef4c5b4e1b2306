package insighting

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/zeroum/adset-insights-api/internal/domain"
	"github.com/zeroum/adset-insights-api/pkg/utils"
)

// As agregações são deliberadamente fail-fast: uma coluna numérica corrompida
// invalida o agregado inteiro, ao contrário da extração de ações que absorve
// ruído de formato. Corrupção numérica silenciosa num KPI é pior que um erro.

// sumColumn soma uma coluna escalar da tabela convertendo cada valor para
// float. Tabela vazia soma zero.
func sumColumn(rows []*domain.AdSetRow, column string, get func(*domain.AdSetRow) string) (float64, error) {
	total := 0.0

	for _, row := range rows {
		value, err := strconv.ParseFloat(get(row), 64)
		if err != nil {
			return 0, errors.Wrapf(err, "valor inválido na coluna %s do adset %s", column, row.AdSetName)
		}

		total += value
	}

	return total, nil
}

// sumActionColumn soma uma coluna derivada de ação. Coluna ausente na tabela
// soma zero; valor presente porém inválido é erro.
func sumActionColumn(rows []*domain.AdSetRow, column string) (float64, error) {
	total := 0.0

	for _, row := range rows {
		raw, ok := row.Actions[column]
		if !ok {
			continue
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "valor inválido na coluna %s do adset %s", column, row.AdSetName)
		}

		total += value
	}

	return total, nil
}

// TotalInvestment soma a coluna spend da tabela.
func TotalInvestment(rows []*domain.AdSetRow) (float64, error) {
	total, err := sumColumn(rows, "spend", func(r *domain.AdSetRow) string { return r.Spend })
	if err != nil {
		return 0, err
	}

	return utils.RoundWithTwoDecimalPlace(total), nil
}

// ratioOf calcula uma razão com política explícita para denominador zero:
// o sentinela indefinido, nunca uma divisão por zero propagada.
func ratioOf(numerator, denominator float64) domain.Ratio {
	if denominator == 0 {
		return domain.UndefinedRatio()
	}

	return domain.DefinedRatio(utils.RoundWithTwoDecimalPlace(numerator / denominator))
}

// BuildKPIReport calcula o conjunto fixo de KPIs sobre a tabela (completa ou
// filtrada). reachValue é o alcance usado no cálculo de frequência: o valor
// externo quando nenhuma campanha está selecionada, ou a soma da coluna
// reach das linhas filtradas (ver ResolveReach).
func BuildKPIReport(rows []*domain.AdSetRow, reachValue float64) (*domain.KPIReport, error) {
	totalInvestment, err := TotalInvestment(rows)
	if err != nil {
		return nil, err
	}

	totalMessages, err := sumActionColumn(rows, domain.ActionMessagingStarted7d)
	if err != nil {
		return nil, err
	}

	impressions, err := sumColumn(rows, "impressions", func(r *domain.AdSetRow) string { return r.Impressions })
	if err != nil {
		return nil, err
	}

	linkClicks, err := sumActionColumn(rows, domain.ActionLinkClick)
	if err != nil {
		return nil, err
	}

	engagement, err := sumActionColumn(rows, domain.ActionPageEngagement)
	if err != nil {
		return nil, err
	}

	ctr := domain.UndefinedRatio()
	if impressions > 0 {
		ctr = domain.DefinedRatio(utils.RoundWithTwoDecimalPlace(linkClicks / impressions * 100))
	}

	return &domain.KPIReport{
		TotalInvestment:        totalInvestment,
		TotalInvestmentDisplay: domain.FormatBRL(totalInvestment),
		TotalMessages:          totalMessages,
		CostPerMessage:         ratioOf(totalInvestment, totalMessages),
		Impressions:            impressions,
		Frequency:              ratioOf(impressions, reachValue),
		CTR:                    ctr,
		LinkClicks:             linkClicks,
		CostPerClick:           ratioOf(totalInvestment, linkClicks),
		Engagement:             engagement,
		CostPerEngagement:      ratioOf(totalInvestment, engagement),
	}, nil
}
