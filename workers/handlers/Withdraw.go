package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"goltobridge/types"

	ethav "github.com/KOREAN139/ethereum-address-validator"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

type WithdrawRequest struct {
	Recipient       string `json:"recipient"`
	CaptchaResponse string `json:"captcha_response"`
	// optional target wrapped form, defaults to LTO20
	ToToken string `json:"to_token"`
}

// Withdraw resolves the native-chain address to send tokens to in order to
// receive the wrapped form at req.Recipient. Recipients live on EVM chains
// for every wrapped form this client knows about.
func Withdraw(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Error reading request body: %s", err.Error())
		responseJSON(w, &APIResponse{
			Status:  "error",
			Message: "Error reading request body",
		}, http.StatusBadRequest)
		return
	}

	var req WithdrawRequest
	err = json.Unmarshal(body, &req)
	if err != nil {
		log.Printf("Error unmarshalling request body: %s\n", err.Error())
		responseJSON(w, &APIResponse{
			Status:  "error",
			Message: "Cannot unmarshal input JSON",
		}, http.StatusBadRequest)
		return
	}

	if req.Recipient == "" {
		responseJSON(w, &APIResponse{
			Status:  "error",
			Field:   "recipient",
			Message: "No recipient address provided",
		}, http.StatusBadRequest)
		return
	}

	if err := ethav.Validate(common.HexToAddress(req.Recipient).Hex()); err != nil {
		log.Printf("Error validating EVM address '%s': %s\n", req.Recipient, err.Error())
		responseJSON(w, &APIResponse{
			Status:  "error",
			Field:   "recipient",
			Message: "No recipient address or invalid address provided",
		}, http.StatusBadRequest)
		return
	}

	reqID := uuid.New().String()

	address, err := Resolver.ResolveWithdraw(r.Context(), req.Recipient, req.CaptchaResponse,
		types.TokenType(req.ToToken))
	if err != nil {
		log.Printf("Error resolving withdraw address [%s]: %s\n", reqID, err.Error())
		responseJSON(w, &APIResponse{
			Status:  "error",
			Message: "Cannot obtain withdrawal address",
		}, http.StatusBadGateway)
		return
	}

	log.Printf("Resolved withdraw address [%s] for %s: %s", reqID, req.Recipient, address)

	responseJSON(w, &APIResponseAddress{
		Status:  "ok",
		ID:      reqID,
		Address: address,
	}, http.StatusOK)
}
