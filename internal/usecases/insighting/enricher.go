package insighting

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	metadomain "github.com/zeroum/adset-insights-api/infrastructure/integrator/meta/domain"
	"github.com/zeroum/adset-insights-api/internal/domain"
)

// Número máximo de consultas de segmentação simultâneas.
const maxConcurrentLookups = 5

// EnrichTargeting preenche age_min/age_max de cada linha consultando a
// segmentação do adset na Graph API.
//
// As consultas são deduplicadas por adset_id e executadas com concorrência
// limitada por semáforo; o resultado é juntado de volta na tabela pela
// chave. Falha ou resposta vazia de uma consulta individual deixa os campos
// da linha nulos e nunca aborta a execução: enriquecimento parcial é
// aceitável.
func (s *Service) EnrichTargeting(ctx context.Context, rows []*domain.AdSetRow, token string) {
	uniqueIDs := make([]string, 0, len(rows))
	seen := make(map[string]bool)

	for _, row := range rows {
		if row.AdSetID == "" || seen[row.AdSetID] {
			continue
		}

		seen[row.AdSetID] = true
		uniqueIDs = append(uniqueIDs, row.AdSetID)
	}

	if len(uniqueIDs) == 0 {
		return
	}

	semaphore := make(chan struct{}, maxConcurrentLookups)

	var wg sync.WaitGroup
	var mutex sync.Mutex

	targetingByAdSet := make(map[string]*metadomain.TargetingSpec)

	for _, adSetID := range uniqueIDs {
		wg.Add(1)

		go func(adSetID string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			targeting, err := s.client.GetAdSetTargeting(ctx, adSetID, token)
			if err != nil {
				logrus.WithError(err).WithField("adset_id", adSetID).Warn("Erro ao buscar segmentação do adset, mantendo campos nulos")
				return
			}

			if targeting == nil || targeting.Targeting == nil {
				logrus.WithField("adset_id", adSetID).Debug("Adset sem dados de segmentação")
				return
			}

			mutex.Lock()
			targetingByAdSet[adSetID] = targeting.Targeting
			mutex.Unlock()
		}(adSetID)
	}

	wg.Wait()

	for _, row := range rows {
		if spec, ok := targetingByAdSet[row.AdSetID]; ok {
			row.AgeMin = spec.AgeMin
			row.AgeMax = spec.AgeMax
		}
	}
}
