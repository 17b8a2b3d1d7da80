package stats

import (
	"testing"

	"goltobridge/bridge"
	"goltobridge/types"
)

func TestRecordAndCurrent(t *testing.T) {
	if got := Current(); got != nil {
		t.Fatalf("Current before any Record = %+v, want nil", got)
	}

	Record(bridge.Stats{
		BurnRate:     0.5,
		BurnedTokens: 42,
		BurnFees: map[types.TokenType]float64{
			types.TOKEN_LTO: 1,
		},
	})

	got := Current()
	if got == nil {
		t.Fatal("Current after Record = nil")
	}
	if got.BurnRate != 0.5 || got.BurnedTokens != 42 || got.BurnFees[types.TOKEN_LTO] != 1 {
		t.Errorf("unexpected snapshot %+v", got)
	}

	// a newer snapshot replaces the old one
	Record(bridge.Stats{BurnRate: 0.6})
	if got := Current(); got.BurnRate != 0.6 {
		t.Errorf("BurnRate after second Record = %v, want 0.6", got.BurnRate)
	}
}
