package handlers

import (
	"math/big"
	"net/http"

	"goltobridge/EVMRPC"
	"goltobridge/config"
	"goltobridge/types"
)

func BalanceLTO20(w http.ResponseWriter, r *http.Request) {
	BalanceEVM(w, r, types.TOKEN_LTO20)
}

func BalanceBinance(w http.ResponseWriter, r *http.Request) {
	BalanceEVM(w, r, types.TOKEN_BINANCE)
}

// BalanceEVM reports the wrapped token's circulating supply on its home
// chain, in whole tokens. With an ?address= query it reports that holder's
// balance instead.
func BalanceEVM(w http.ResponseWriter, r *http.Request, token types.TokenType) {
	var supplyBI *big.Int
	var err error
	if holder := r.URL.Query().Get("address"); holder != "" {
		supplyBI, err = EVMRPC.TokenBalance(token, holder)
	} else {
		supplyBI, err = EVMRPC.TokenTotalSupply(token)
	}
	if err != nil {
		responsePlain(w, []byte("error"), http.StatusInternalServerError)
		return
	}

	divisor, _ := big.NewInt(0).SetString(config.TOKEN_DECIMALS_DIVISOR, 10)
	supplyBI = supplyBI.Div(supplyBI, divisor)
	responsePlain(w, []byte(supplyBI.String()), 200)
}
