package bridge

import (
	"math"

	"goltobridge/types"
)

// Wire types of the bridge-conversion API. Token fields always carry
// canonical tags by the time a request is built.

type GenerateAddressRequest struct {
	FromToken       string `json:"from_token"`
	ToToken         string `json:"to_token"`
	ToAddress       string `json:"to_address"`
	CaptchaResponse string `json:"captcha_response"`
}

// only the address field is consumed, whatever else the service sends along
type GenerateAddressResponse struct {
	Address string `json:"address"`
}

type FaucetRequest struct {
	Recipient       string `json:"recipient"`
	CaptchaResponse string `json:"captcha_response"`
}

type VolumeBucket struct {
	BurnFee float64 `json:"burn_fee"`
}

type StatsResponse struct {
	BurnRate float64 `json:"burn_rate"`
	Burned   float64 `json:"burned"`
	Volume   struct {
		LTO     VolumeBucket `json:"lto"`
		LTO20   VolumeBucket `json:"lto20"`
		Binance VolumeBucket `json:"binance"`
	} `json:"volume"`
}

// Stats are the derived values the facade exposes. Fees come in the service's
// minor unit and are divided down for display.
type Stats struct {
	BurnRate     float64                     `json:"burnRate"`
	BurnedTokens float64                     `json:"burnedTokens"`
	BurnFees     map[types.TokenType]float64 `json:"burnFees"`
}

func (r *StatsResponse) Derive() Stats {
	return Stats{
		BurnRate:     r.BurnRate,
		BurnedTokens: r.Burned,
		BurnFees: map[types.TokenType]float64{
			types.TOKEN_LTO:     math.Round(r.Volume.LTO.BurnFee / 1e8),
			types.TOKEN_LTO20:   math.Round(r.Volume.LTO20.BurnFee / 1e8),
			types.TOKEN_BINANCE: math.Round(r.Volume.Binance.BurnFee / 1e8),
		},
	}
}
