package metadomain

// AdAccount é uma conta de anúncio retornada por me/adaccounts.
type AdAccount struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AdAccountsResponse é o payload de me/adaccounts.
type AdAccountsResponse struct {
	Data   []AdAccount   `json:"data"`
	Paging Paging        `json:"paging"`
	Error  *ErrorDetails `json:"error"`
}
