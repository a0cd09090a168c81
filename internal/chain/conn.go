package chain

import (
	"context"
	"math/big"

	gsrpc "github.com/centrifuge/go-substrate-rpc-client/v4"
	"github.com/centrifuge/go-substrate-rpc-client/v4/registry/retriever"
	"github.com/centrifuge/go-substrate-rpc-client/v4/registry/state"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/pkg/errors"

	"DotNFT/pkg/logx"
)

// Conn is one open connection to a network. The caller owns it and must Close it.
type Conn struct {
	network Network
	api     *gsrpc.SubstrateAPI
	meta    *types.Metadata
	genesis types.Hash
	events  retriever.EventRetriever
}

// ChainInfo is what the node reports about itself.
type ChainInfo struct {
	Name     string
	Symbol   string
	Decimals uint
}

// AccountData holds the raw balances of System.Account.
type AccountData struct {
	Nonce    uint32
	Free     *big.Int
	Reserved *big.Int
	Frozen   *big.Int
}

type accountInfo struct {
	Nonce       types.U32
	Consumers   types.U32
	Providers   types.U32
	Sufficients types.U32
	Data        struct {
		Free     types.U128
		Reserved types.U128
		Frozen   types.U128
		Flags    types.U128
	}
}

// Dial connects to n and loads the runtime metadata.
func Dial(ctx context.Context, n Network) (*Conn, error) {
	type result struct {
		conn *Conn
		err  error
	}
	done := make(chan result, 1)
	go func() {
		c, err := dial(n)
		done <- result{c, err}
	}()

	select {
	case <-ctx.Done():
		// the dial goroutine closes whatever it opened once it returns
		go func() {
			if r := <-done; r.conn != nil {
				r.conn.Close()
			}
		}()
		return nil, ctx.Err()
	case r := <-done:
		return r.conn, r.err
	}
}

func dial(n Network) (*Conn, error) {
	api, err := gsrpc.NewSubstrateAPI(n.RPCURL)
	if err != nil {
		return nil, errors.Wrapf(err, "connect %s", n.RPCURL)
	}
	c := &Conn{network: n, api: api}

	meta, err := api.RPC.State.GetMetadataLatest()
	if err != nil {
		c.Close()
		return nil, errors.Wrap(err, "get metadata")
	}
	c.meta = meta

	genesis, err := api.RPC.Chain.GetBlockHash(0)
	if err != nil {
		c.Close()
		return nil, errors.Wrap(err, "get genesis hash")
	}
	c.genesis = genesis

	events, err := retriever.NewDefaultEventRetriever(state.NewEventProvider(api.RPC.State), api.RPC.State)
	if err != nil {
		c.Close()
		return nil, errors.Wrap(err, "create event retriever")
	}
	c.events = events

	logx.S().Debugw("chain connected", "network", n.ID, "rpc", n.RPCURL, "genesis", genesis.Hex())
	return c, nil
}

func (c *Conn) Close() {
	if c == nil || c.api == nil {
		return
	}
	c.api.Client.Close()
	c.api = nil
}

func (c *Conn) Network() Network { return c.network }

// ChainInfo reads the chain name and token properties.
func (c *Conn) ChainInfo(ctx context.Context) (ChainInfo, error) {
	if err := ctx.Err(); err != nil {
		return ChainInfo{}, err
	}
	name, err := c.api.RPC.System.Chain()
	if err != nil {
		return ChainInfo{}, errors.Wrap(err, "system_chain")
	}
	props, err := c.api.RPC.System.Properties()
	if err != nil {
		return ChainInfo{}, errors.Wrap(err, "system_properties")
	}
	info := ChainInfo{Name: string(name), Symbol: "Unknown"}
	if props.IsTokenSymbol {
		info.Symbol = string(props.AsTokenSymbol)
	}
	if props.IsTokenDecimals {
		info.Decimals = uint(props.AsTokenDecimals)
	}
	return info, nil
}

// QueryAccount reads System.Account for pubKey. ok is false when the account does not exist.
func (c *Conn) QueryAccount(ctx context.Context, pubKey []byte) (*AccountData, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	key, err := types.CreateStorageKey(c.meta, "System", "Account", pubKey)
	if err != nil {
		return nil, false, errors.Wrap(err, "create System.Account key")
	}
	var info accountInfo
	ok, err := c.api.RPC.State.GetStorageLatest(key, &info)
	if err != nil {
		return nil, false, errors.Wrap(err, "query System.Account")
	}
	if !ok {
		return nil, false, nil
	}
	return &AccountData{
		Nonce:    uint32(info.Nonce),
		Free:     bigOrZero(info.Data.Free),
		Reserved: bigOrZero(info.Data.Reserved),
		Frozen:   bigOrZero(info.Data.Frozen),
	}, true, nil
}

func bigOrZero(v types.U128) *big.Int {
	if v.Int == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v.Int)
}
