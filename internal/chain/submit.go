package chain

import (
	"context"
	"encoding/hex"
	"strings"

	"github.com/centrifuge/go-substrate-rpc-client/v4/registry/parser"
	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"

	"DotNFT/pkg/logx"
)

var (
	ErrExtrinsicInvalid = errors.New("extrinsic rejected by the pool as invalid")
	ErrExtrinsicDropped = errors.New("extrinsic dropped from the pool")

	errSubscriptionClosed = errors.New("extrinsic status subscription closed")
)

// Signer is the account that pays for and authorises a submission.
type Signer interface {
	Address() string
	KeyringPair() signature.KeyringPair
}

// Outcome is a submitted extrinsic. BlockHash is empty until it is in a block.
type Outcome struct {
	BlockHash      string  `json:"blockHash,omitempty"`
	ExtrinsicHash  string  `json:"extrinsicHash"`
	ExtrinsicIndex uint32  `json:"extrinsicIndex"`
	Events         []Event `json:"-"` // this extrinsic's events in emission order
}

// Included reports whether the extrinsic reached a block.
func (o *Outcome) Included() bool { return o != nil && o.BlockHash != "" }

// statusStream is the part of an author subscription waitInBlock reads.
type statusStream interface {
	Chan() <-chan types.ExtrinsicStatus
	Err() <-chan error
}

// Submit signs calls as one extrinsic, submits it and waits until it is in a block.
// Several calls are wrapped in Utility.batch_all. A rejected dispatch is returned as *DispatchError.
// Once the extrinsic has left for the pool, errors come with an Outcome carrying its hash.
// Nothing is retried.
func (c *Conn) Submit(ctx context.Context, signer Signer, calls ...Call) (*Outcome, error) {
	call, err := Prepare(calls)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := logx.With("chain").With("call", call.Name(), "operations", len(calls), "network", c.network.ID)

	tc, err := Bind(c.meta, call)
	if err != nil {
		return nil, err
	}
	ext := types.NewExtrinsic(tc)

	rv, err := c.api.RPC.State.GetRuntimeVersionLatest()
	if err != nil {
		return nil, errors.Wrap(err, "get runtime version")
	}
	nonce, err := c.api.RPC.System.AccountNextIndex(signer.Address())
	if err != nil {
		return nil, errors.Wrap(err, "get account nonce")
	}

	err = ext.Sign(signer.KeyringPair(), types.SignatureOptions{
		BlockHash:          c.genesis,
		Era:                types.ExtrinsicEra{IsMortalEra: false},
		GenesisHash:        c.genesis,
		Nonce:              types.NewUCompactFromUInt(uint64(nonce)),
		SpecVersion:        rv.SpecVersion,
		Tip:                types.NewUCompactFromUInt(0),
		TransactionVersion: rv.TransactionVersion,
	})
	if err != nil {
		return nil, errors.Wrap(err, "sign extrinsic")
	}

	encoded, err := codec.Encode(ext)
	if err != nil {
		return nil, errors.Wrap(err, "encode extrinsic")
	}
	out := &Outcome{ExtrinsicHash: ExtrinsicHash(encoded)}
	log.Infow("submitting extrinsic", "nonce", uint32(nonce), "extrinsic", out.ExtrinsicHash)

	sub, err := c.api.RPC.Author.SubmitAndWatchExtrinsic(ext)
	if err != nil {
		return nil, errors.Wrap(err, "submit extrinsic")
	}
	defer sub.Unsubscribe()

	blockHash, err := waitInBlock(ctx, sub)
	if err != nil {
		return out, err
	}
	out.BlockHash = blockHash.Hex()
	log.Infow("extrinsic in block", "block", out.BlockHash, "extrinsic", out.ExtrinsicHash)

	idx, err := c.extrinsicIndex(blockHash, encoded)
	if err != nil {
		return out, err
	}
	raw, err := c.events.GetEvents(blockHash)
	if err != nil {
		return out, errors.Wrapf(err, "get events of block %s", out.BlockHash)
	}
	out.ExtrinsicIndex = idx
	out.Events = EventsOf(raw, idx)
	if err := CheckDispatch(out.Events); err != nil {
		log.Errorw("dispatch failed", "block", out.BlockHash, "err", err)
		return out, err
	}
	return out, nil
}

func waitInBlock(ctx context.Context, sub statusStream) (types.Hash, error) {
	for {
		select {
		case <-ctx.Done():
			return types.Hash{}, ctx.Err()
		case err := <-sub.Err():
			if err == nil {
				return types.Hash{}, errSubscriptionClosed
			}
			return types.Hash{}, errors.Wrap(err, "extrinsic status subscription")
		case st, ok := <-sub.Chan():
			if !ok {
				return types.Hash{}, errSubscriptionClosed
			}
			switch {
			case st.IsInBlock:
				return st.AsInBlock, nil
			case st.IsFinalized:
				return st.AsFinalized, nil
			case st.IsInvalid:
				return types.Hash{}, ErrExtrinsicInvalid
			case st.IsDropped:
				return types.Hash{}, ErrExtrinsicDropped
			case st.IsUsurped:
				return types.Hash{}, errors.New("extrinsic usurped by another with the same nonce")
			case st.IsFinalityTimeout:
				return types.Hash{}, errors.New("extrinsic finality timeout")
			}
		}
	}
}

// extrinsicIndex finds the position of our extrinsic inside the block by its encoding.
func (c *Conn) extrinsicIndex(blockHash types.Hash, encoded []byte) (uint32, error) {
	var block struct {
		Block struct {
			Extrinsics []string `json:"extrinsics"`
		} `json:"block"`
	}
	if err := c.api.Client.Call(&block, "chain_getBlock", blockHash.Hex()); err != nil {
		return 0, errors.Wrapf(err, "get block %s", blockHash.Hex())
	}
	idx, ok := IndexOf(block.Block.Extrinsics, encoded)
	if !ok {
		return 0, errors.Errorf("extrinsic not found in block %s", blockHash.Hex())
	}
	return idx, nil
}

// IndexOf returns the position of encoded among the hex-encoded extrinsics of a block.
func IndexOf(extrinsics []string, encoded []byte) (uint32, bool) {
	want := "0x" + hex.EncodeToString(encoded)
	for i, x := range extrinsics {
		if strings.EqualFold(x, want) {
			return uint32(i), true
		}
	}
	return 0, false
}

// EventsOf keeps the events emitted while applying extrinsic idx.
func EventsOf(events []*parser.Event, idx uint32) []Event {
	var out []Event
	for _, ev := range events {
		if ev == nil || ev.Phase == nil {
			continue
		}
		if !ev.Phase.IsApplyExtrinsic || ev.Phase.AsApplyExtrinsic != idx {
			continue
		}
		out = append(out, fromDecoded(ev.Name, ev.Fields))
	}
	return out
}

// ExtrinsicHash is blake2b-256 of the encoded extrinsic, as block explorers show it.
func ExtrinsicHash(encoded []byte) string {
	sum := blake2b.Sum256(encoded)
	return "0x" + hex.EncodeToString(sum[:])
}
