package types

import "testing"

func TestNormalizeTokenType(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want TokenType
	}{
		{name: "legacy mainnet", tag: "mainnet", want: TOKEN_LTO},
		{name: "legacy erc20", tag: "erc20", want: TOKEN_LTO20},
		{name: "legacy bep20", tag: "bep20", want: TOKEN_BINANCE},
		{name: "canonical native", tag: "LTO", want: TOKEN_LTO},
		{name: "canonical erc20", tag: "LTO20", want: TOKEN_LTO20},
		{name: "canonical bep20", tag: "BINANCE", want: TOKEN_BINANCE},
		{name: "unknown passes through", tag: "WAVES", want: TokenType("WAVES")},
		{name: "empty passes through", tag: "", want: TokenType("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTokenType(tt.tag); got != tt.want {
				t.Errorf("NormalizeTokenType(%q) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}

func TestNormalizeTokenTypeIdempotent(t *testing.T) {
	for _, tag := range []string{"mainnet", "erc20", "bep20", "LTO", "LTO20", "BINANCE", "WAVES"} {
		once := NormalizeTokenType(tag)
		twice := NormalizeTokenType(string(once))
		if once != twice {
			t.Errorf("normalization of %q is not idempotent: %q != %q", tag, once, twice)
		}
	}
}

func TestCacheKeyFormats(t *testing.T) {
	if got := DepositKey("3JuijVBB7NCwCz2Ae5HhCDsqCXzeBLRTyeL", TOKEN_LTO20, TOKEN_LTO); got != "3JuijVBB7NCwCz2Ae5HhCDsqCXzeBLRTyeL:LTO20:LTO" {
		t.Errorf("unexpected deposit key %q", got)
	}
	if got := WithdrawKey("recipient42", TOKEN_LTO20); got != "recipient42LTO20" {
		t.Errorf("unexpected withdraw key %q", got)
	}
}
