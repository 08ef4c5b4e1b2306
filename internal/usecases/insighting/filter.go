package insighting

import (
	"sort"

	"github.com/zeroum/adset-insights-api/internal/domain"
)

// FilterByCampaign seleciona as linhas da campanha indicada. Seletor vazio
// devolve todas as linhas. O conteúdo das linhas não é alterado e a ordem de
// entrada é preservada.
func FilterByCampaign(rows []*domain.AdSetRow, campaign string) []*domain.AdSetRow {
	if campaign == "" {
		return rows
	}

	filtered := make([]*domain.AdSetRow, 0, len(rows))
	for _, row := range rows {
		if row.CampaignName == campaign {
			filtered = append(filtered, row)
		}
	}

	return filtered
}

// SortForTable devolve uma cópia ordenada de forma ascendente por adset_name,
// a visão tabular do dashboard.
func SortForTable(rows []*domain.AdSetRow) []*domain.AdSetRow {
	sorted := make([]*domain.AdSetRow, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AdSetName < sorted[j].AdSetName
	})

	return sorted
}

// SortForChart devolve uma cópia ordenada de forma descendente por
// adset_name, a visão usada pelos gráficos. As duas visões derivam do mesmo
// conjunto filtrado; não são filtros diferentes.
func SortForChart(rows []*domain.AdSetRow) []*domain.AdSetRow {
	sorted := make([]*domain.AdSetRow, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AdSetName > sorted[j].AdSetName
	})

	return sorted
}

// Campaigns lista os nomes distintos de campanha presentes na tabela, em
// ordem alfabética, para o seletor do dashboard.
func Campaigns(rows []*domain.AdSetRow) []string {
	seen := make(map[string]bool)
	names := make([]string, 0)

	for _, row := range rows {
		if row.CampaignName == "" || seen[row.CampaignName] {
			continue
		}

		seen[row.CampaignName] = true
		names = append(names, row.CampaignName)
	}

	sort.Strings(names)

	return names
}

// ResolveReach determina o alcance usado no cálculo de frequência conforme o
// escopo da seleção: sem campanha selecionada vale o alcance informado
// manualmente; com campanha selecionada vale a soma da coluna reach das
// linhas filtradas.
func ResolveReach(filtered []*domain.AdSetRow, campaign string, manualReach float64) (float64, error) {
	if campaign == "" {
		return manualReach, nil
	}

	return sumColumn(filtered, "reach", func(r *domain.AdSetRow) string { return r.Reach })
}
