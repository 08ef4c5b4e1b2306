package insighting

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ExtractActions achata a lista de ações de um registro em um mapa de
// action_type para valor.
//
// A extração é tolerante de propósito: entradas sem action_type ou sem
// value são puladas, e um campo actions ausente ou fora do formato esperado
// vira um mapa vazio em vez de erro — uma linha malformada não pode abortar
// o lote inteiro. Quando o mesmo action_type aparece mais de uma vez, a
// última ocorrência vence.
func ExtractActions(raw jsoniter.RawMessage) map[string]string {
	actions := make(map[string]string)

	if len(raw) == 0 {
		return actions
	}

	var entries []map[string]jsoniter.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return actions
	}

	for _, entry := range entries {
		rawType, hasType := entry["action_type"]
		rawValue, hasValue := entry["value"]
		if !hasType || !hasValue {
			continue
		}

		var actionType, value string
		if err := json.Unmarshal(rawType, &actionType); err != nil {
			continue
		}
		if err := json.Unmarshal(rawValue, &value); err != nil {
			continue
		}

		actions[actionType] = value
	}

	return actions
}
