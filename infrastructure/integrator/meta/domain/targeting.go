package metadomain

// TargetingSpec é o sub-objeto "targeting" de um conjunto de anúncios.
// Só os limites de idade interessam ao dashboard.
type TargetingSpec struct {
	AgeMin *int `json:"age_min"`
	AgeMax *int `json:"age_max"`
}

// AdSetTargeting é a resposta da consulta de segmentação de um adset
// (fields=name,targeting).
type AdSetTargeting struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Targeting *TargetingSpec `json:"targeting"`
	Error     *ErrorDetails  `json:"error"`
}
