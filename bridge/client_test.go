package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"goltobridge/types"
)

func TestGenerateAddress(t *testing.T) {
	var seen GenerateAddressRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/generate-address" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&seen); err != nil {
			t.Fatal(err)
		}
		json.NewEncoder(w).Encode(map[string]string{"address": "bridgeAddr1", "extra": "ignored"})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	addr, err := client.GenerateAddress(context.Background(), GenerateAddressRequest{
		FromToken:       "LTO20",
		ToToken:         "LTO",
		ToAddress:       "addr1",
		CaptchaResponse: "capcha1",
	})
	if err != nil {
		t.Fatalf("GenerateAddress: %v", err)
	}
	if addr != "bridgeAddr1" {
		t.Errorf("address = %q, want bridgeAddr1", addr)
	}
	if seen.FromToken != "LTO20" || seen.ToToken != "LTO" || seen.ToAddress != "addr1" || seen.CaptchaResponse != "capcha1" {
		t.Errorf("wire payload mismatch: %+v", seen)
	}
}

func TestGenerateAddressErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "captcha rejected", http.StatusForbidden)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("{truncated"))
			},
		},
		{
			name: "missing address field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"ok"}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(Config{BaseURL: server.URL})
			if _, err := client.GenerateAddress(context.Background(), GenerateAddressRequest{}); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestStatsDerive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stats" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"burn_rate": 0.35,
			"burned": 12345678,
			"volume": {
				"lto": {"burn_fee": 100000000, "in": 1},
				"lto20": {"burn_fee": 250000000},
				"binance": {"burn_fee": 49999999}
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	resp, err := client.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	stats := resp.Derive()
	if stats.BurnRate != 0.35 {
		t.Errorf("BurnRate = %v, want 0.35", stats.BurnRate)
	}
	if stats.BurnedTokens != 12345678 {
		t.Errorf("BurnedTokens = %v, want 12345678", stats.BurnedTokens)
	}
	wantFees := map[types.TokenType]float64{
		types.TOKEN_LTO:     1,
		types.TOKEN_LTO20:   3, // 2.5 rounds half away from zero
		types.TOKEN_BINANCE: 0, // 0.49999999 rounds down
	}
	for token, want := range wantFees {
		if got := stats.BurnFees[token]; got != want {
			t.Errorf("BurnFees[%s] = %v, want %v", token, got, want)
		}
	}
}

func TestFaucet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/faucet" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req FaucetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req.Recipient != "addr9" || req.CaptchaResponse != "capcha9" {
			t.Errorf("faucet payload mismatch: %+v", req)
		}
		w.Write([]byte(`{"whatever":true}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	if err := client.Faucet(context.Background(), "addr9", "capcha9"); err != nil {
		t.Fatalf("Faucet: %v", err)
	}
}
