package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Ratio representa um KPI de razão cujo denominador pode ser zero. No lugar
// de propagar uma divisão por zero, o valor indefinido é serializado como o
// sentinela "N/A".
type Ratio struct {
	Value   float64
	Defined bool
}

// DefinedRatio cria uma razão válida.
func DefinedRatio(value float64) Ratio {
	return Ratio{Value: value, Defined: true}
}

// UndefinedRatio cria o sentinela de razão indefinida.
func UndefinedRatio() Ratio {
	return Ratio{}
}

func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Defined {
		return []byte(`"N/A"`), nil
	}

	return []byte(strconv.FormatFloat(r.Value, 'f', -1, 64)), nil
}

func (r *Ratio) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "N/A" || s == "null" {
		*r = UndefinedRatio()
		return nil
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}

	*r = DefinedRatio(value)
	return nil
}

// KPIReport agrega os indicadores calculados sobre a tabela de insights
// (completa ou filtrada por campanha). Valores transitórios: recalculados a
// cada mudança de seleção, nunca persistidos.
type KPIReport struct {
	TotalInvestment        float64 `json:"total_investment"`
	TotalInvestmentDisplay string  `json:"total_investment_display"`
	TotalMessages          float64 `json:"total_msg"`
	CostPerMessage         Ratio   `json:"cost_per_msg"`
	Impressions            float64 `json:"impressions"`
	Frequency              Ratio   `json:"frequency"`
	CTR                    Ratio   `json:"ctr"`
	LinkClicks             float64 `json:"clicks_link"`
	CostPerClick           Ratio   `json:"cost_click"`
	Engagement             float64 `json:"engagement"`
	CostPerEngagement      Ratio   `json:"cost_engagement"`
}

// FormatBRL formata um valor monetário no padrão brasileiro usado pelo
// dashboard (R$ 1234,56).
func FormatBRL(value float64) string {
	return strings.Replace(fmt.Sprintf("R$ %.2f", value), ".", ",", 1)
}
