package cache

import (
	"encoding/json"
	"fmt"
	"sync"

	"goltobridge/types"
)

// AddressCache memoizes bridge-generated addresses so that repeating a request
// for the same (address, token pair) never re-hits the network or burns a
// second captcha token. Two independent namespaces, opaque string values,
// no eviction and no expiry: one entry per pair a client has ever bridged.
type AddressCache struct {
	Deposit  map[string]string `json:"deposit"`
	Withdraw map[string]string `json:"withdraw"`

	mu    sync.Mutex
	store Store
}

// Load reads the persisted cache from store. Absent or unparseable persisted
// content is recoverable: the cache starts empty and is re-persisted right
// away so that subsequent reads are well-formed. An error is returned only
// when that recovery write itself fails.
func Load(store Store) (*AddressCache, error) {
	c := &AddressCache{
		Deposit:  map[string]string{},
		Withdraw: map[string]string{},
		store:    store,
	}

	content, err := store.Read()
	if err == nil {
		err = json.Unmarshal(content, c)
	}
	if err != nil {
		c.Deposit = map[string]string{}
		c.Withdraw = map[string]string{}
		if perr := c.persist(); perr != nil {
			return nil, fmt.Errorf("cannot reset persisted address cache: %w", perr)
		}
		return c, nil
	}

	// persisted nulls must not surface as nil maps
	if c.Deposit == nil {
		c.Deposit = map[string]string{}
	}
	if c.Withdraw == nil {
		c.Withdraw = map[string]string{}
	}
	return c, nil
}

// Lookup returns the cached bridge address for key, if any. No side effects.
func (c *AddressCache) Lookup(ns types.Namespace, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	bucket := c.bucket(ns)
	if bucket == nil {
		return "", false
	}
	value, found := bucket[key]
	return value, found
}

// Put inserts or overwrites the entry and persists the full structure before
// returning, so a crash right after a successful remote call cannot lose the
// mapping.
func (c *AddressCache) Put(ns types.Namespace, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	bucket := c.bucket(ns)
	if bucket == nil {
		return fmt.Errorf("unknown cache namespace %q", ns)
	}

	prev, existed := bucket[key]
	bucket[key] = value
	if err := c.persist(); err != nil {
		// an entry that was never durably recorded must not serve later
		// lookups as a hit
		if existed {
			bucket[key] = prev
		} else {
			delete(bucket, key)
		}
		return err
	}
	return nil
}

// Len reports the number of entries in a namespace.
func (c *AddressCache) Len(ns types.Namespace) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.bucket(ns))
}

func (c *AddressCache) bucket(ns types.Namespace) map[string]string {
	switch ns {
	case types.NAMESPACE_DEPOSIT:
		return c.Deposit
	case types.NAMESPACE_WITHDRAW:
		return c.Withdraw
	}
	return nil
}

func (c *AddressCache) persist() error {
	jsonData, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return c.store.Write(jsonData)
}
