package handlers

import (
	"encoding/json"
	"net/http"

	"goltobridge/bridge"
	"goltobridge/resolver"
)

var (
	// wired once from main before the HTTP worker starts
	Resolver *resolver.Resolver
	Bridge   *bridge.Client
)

func Setup(r *resolver.Resolver, b *bridge.Client) {
	Resolver = r
	Bridge = b
}

func responseJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func responsePlain(w http.ResponseWriter, data []byte, code int) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(code)
	w.Write(data)
}
