// Package resolver answers deposit and withdraw address requests from the
// persisted cache first and only goes to the remote bridge on a miss.
package resolver

import (
	"context"

	"golang.org/x/sync/singleflight"

	"goltobridge/bridge"
	"goltobridge/cache"
	"goltobridge/types"
)

// AddressClient is the slice of the bridge API the resolver needs.
type AddressClient interface {
	GenerateAddress(ctx context.Context, req bridge.GenerateAddressRequest) (string, error)
}

type Resolver struct {
	cache    *cache.AddressCache
	client   AddressClient
	inflight singleflight.Group
}

func New(c *cache.AddressCache, client AddressClient) *Resolver {
	return &Resolver{cache: c, client: client}
}

// ResolveDeposit returns the bridge address to send wrapped tokens to when
// converting into the native token. Zero-value tokens default to the
// ERC20-wrapped → native pair. Token tags may come in either vocabulary;
// they are normalized before the cache key and the wire payload are built,
// so both spellings of the same request share one entry.
func (r *Resolver) ResolveDeposit(ctx context.Context, address, captcha string, from, to types.TokenType) (string, error) {
	if from == "" {
		from = types.TOKEN_LTO20
	}
	if to == "" {
		to = types.TOKEN_LTO
	}
	from = types.NormalizeTokenType(string(from))
	to = types.NormalizeTokenType(string(to))

	return r.resolve(ctx, types.NAMESPACE_DEPOSIT, types.DepositKey(address, from, to), bridge.GenerateAddressRequest{
		FromToken:       string(from),
		ToToken:         string(to),
		ToAddress:       address,
		CaptchaResponse: captcha,
	})
}

// ResolveWithdraw returns the native-chain address to send tokens to when
// converting out to a wrapped form. The source token is always native; a
// zero-value target defaults to the ERC20-wrapped form.
func (r *Resolver) ResolveWithdraw(ctx context.Context, recipient, captcha string, to types.TokenType) (string, error) {
	if to == "" {
		to = types.TOKEN_LTO20
	}
	to = types.NormalizeTokenType(string(to))

	return r.resolve(ctx, types.NAMESPACE_WITHDRAW, types.WithdrawKey(recipient, to), bridge.GenerateAddressRequest{
		FromToken:       string(types.TOKEN_LTO),
		ToToken:         string(to),
		ToAddress:       recipient,
		CaptchaResponse: captcha,
	})
}

// resolve is the shared path: cache hit returns with no network activity and
// no captcha consumption; misses for the same key are coalesced so exactly
// one remote call is issued however many callers are waiting. The result is
// persisted before any caller observes it; a remote failure leaves the cache
// untouched.
func (r *Resolver) resolve(ctx context.Context, ns types.Namespace, key string, req bridge.GenerateAddressRequest) (string, error) {
	if addr, found := r.cache.Lookup(ns, key); found {
		return addr, nil
	}

	// namespaces share the flight group, keep their keys apart
	flightKey := string(ns) + "\x00" + key

	// the flight is shared state: once the remote call is in progress it runs
	// to completion and lands in the cache even if every caller, the origin
	// included, abandons its wait
	callCtx := context.WithoutCancel(ctx)

	v, err, _ := r.inflight.Do(flightKey, func() (interface{}, error) {
		// a queued caller may arrive after the previous flight already
		// populated the entry
		if addr, found := r.cache.Lookup(ns, key); found {
			return addr, nil
		}

		addr, err := r.client.GenerateAddress(callCtx, req)
		if err != nil {
			return nil, err
		}
		if err := r.cache.Put(ns, key, addr); err != nil {
			return nil, err
		}
		return addr, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
