package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
)

type FaucetRequest struct {
	Recipient       string `json:"recipient"`
	CaptchaResponse string `json:"captcha_response"`
}

// Faucet forwards a captcha-gated test-token claim to the bridge.
func Faucet(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Error reading request body: %s", err.Error())
		responseJSON(w, &APIResponse{
			Status:  "error",
			Message: "Error reading request body",
		}, http.StatusBadRequest)
		return
	}

	var req FaucetRequest
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

	if err := Bridge.Faucet(r.Context(), req.Recipient, req.CaptchaResponse); err != nil {
		log.Printf("Error claiming faucet for %s: %s\n", req.Recipient, err.Error())
		responseJSON(w, &APIResponse{
			Status:  "error",
			Message: "Faucet claim failed",
		}, http.StatusBadGateway)
		return
	}

	responseJSON(w, &APIResponse{
		Status: "ok",
	}, http.StatusOK)
}
