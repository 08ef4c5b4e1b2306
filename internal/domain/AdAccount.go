package domain

// AccountOption é o formato consumido pelo seletor de clientes do dashboard:
// o par {id, name} da API renomeado para {value, label}, ordenado por label.
type AccountOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
