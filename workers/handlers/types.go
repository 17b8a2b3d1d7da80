package handlers

type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Field   string `json:"field"`
}

type APIResponseAddress struct {
	Status string `json:"status"`
	ID     string `json:"id"`
	// bridge address to send funds to
	Address string `json:"address"`
}

type APIStateResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
