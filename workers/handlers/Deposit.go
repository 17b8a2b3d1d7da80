package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"goltobridge/types"

	"github.com/google/uuid"
)

type DepositRequest struct {
	Address         string `json:"address"`
	CaptchaResponse string `json:"captcha_response"`
	// optional; either vocabulary is accepted, defaults to LTO20 -> LTO
	FromToken string `json:"from_token"`
	ToToken   string `json:"to_token"`
}

// Deposit resolves the bridge address to send wrapped tokens to in order to
// receive native tokens at req.Address.
func Deposit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Error reading request body: %s", err.Error())
		responseJSON(w, &APIResponse{
			Status:  "error",
			Message: "Error reading request body",
		}, http.StatusBadRequest)
		return
	}

	var req DepositRequest
	err = json.Unmarshal(body, &req)
	if err != nil {
		log.Printf("Error unmarshalling request body: %s\n", err.Error())
		responseJSON(w, &APIResponse{
			Status:  "error",
			Message: "Cannot unmarshal input JSON",
		}, http.StatusBadRequest)
		return
	}

	if req.Address == "" {
		responseJSON(w, &APIResponse{
			Status:  "error",
			Field:   "address",
			Message: "No receiving address provided",
		}, http.StatusBadRequest)
		return
	}

	reqID := uuid.New().String()

	address, err := Resolver.ResolveDeposit(r.Context(), req.Address, req.CaptchaResponse,
		types.TokenType(req.FromToken), types.TokenType(req.ToToken))
	if err != nil {
		log.Printf("Error resolving deposit address [%s]: %s\n", reqID, err.Error())
		responseJSON(w, &APIResponse{
			Status:  "error",
			Message: "Cannot obtain deposit address",
		}, http.StatusBadGateway)
		return
	}

	log.Printf("Resolved deposit address [%s] for %s: %s", reqID, req.Address, address)

	responseJSON(w, &APIResponseAddress{
		Status:  "ok",
		ID:      reqID,
		Address: address,
	}, http.StatusOK)
}
