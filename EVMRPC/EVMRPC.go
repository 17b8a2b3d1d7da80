package EVMRPC

import (
	"context"
	"fmt"
	"log"
	"math/big"
	"strings"

	"goltobridge/config"
	"goltobridge/types"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// minimal read-only slice of the ERC20 ABI, enough for supply and balances
const erc20ABI = `[
	{"constant":true,"inputs":[],"name":"totalSupply","outputs":[{"name":"","type":"uint256"}],"type":"function"},
	{"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"type":"function"}
]`

func WithClient[T any](token types.TokenType, f func(client *ethclient.Client) (T, error)) (res T, err error) {
	chain, ok := config.EVMChains[token]
	if !ok {
		err = fmt.Errorf("no EVM chain configured for token %s", token)
		return
	}

	var client *ethclient.Client
	for attempt := 0; attempt < config.EVM_RETRIES; attempt++ {
		for _, url := range chain.RPCList {
			client, err = ethclient.Dial(url)
			if err != nil {
				log.Println(fmt.Sprintf("Error connecting to %s: %s", url, err.Error()))
				continue
			}

			res, err = f(client)
			client.Close()
			if err == nil {
				return
			}
		}
	}
	return
}

// TokenTotalSupply reads the wrapped token's total supply on its home chain,
// in the token's minor unit.
func TokenTotalSupply(token types.TokenType) (*big.Int, error) {
	return callUint256(token, "totalSupply")
}

// TokenBalance reads the wrapped token balance of holder, in the token's
// minor unit.
func TokenBalance(token types.TokenType, holder string) (*big.Int, error) {
	return callUint256(token, "balanceOf", common.HexToAddress(holder))
}

func callUint256(token types.TokenType, method string, args ...interface{}) (*big.Int, error) {
	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, err
	}

	data, err := parsed.Pack(method, args...)
	if err != nil {
		return nil, err
	}

	return WithClient(token, func(client *ethclient.Client) (*big.Int, error) {
		contract := common.HexToAddress(config.EVMChains[token].ContractAddress)
		out, err := client.CallContract(context.Background(), ethereum.CallMsg{To: &contract, Data: data}, nil)
		if err != nil {
			log.Println(fmt.Sprintf("Error calling %s: %s", method, err.Error()))
			return nil, err
		}

		results, err := parsed.Unpack(method, out)
		if err != nil {
			return nil, err
		}
		return results[0].(*big.Int), nil
	})
}
