package metadomain

// ErrorDetails contém os detalhes de erro retornados pela Graph API do Meta.
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
	ErrorData    any    `json:"error_data,omitempty"`
}

// IsAuthError verifica se o erro indica credencial inválida ou expirada.
// O código 190 representa token expirado; os subcódigos 460, 463 e 467
// são variações de problemas de token.
func (e *ErrorDetails) IsAuthError() bool {
	return e.Code == 190 ||
		(e.Type == "OAuthException" && (e.ErrorSubcode == 460 || e.ErrorSubcode == 463 || e.ErrorSubcode == 467))
}
