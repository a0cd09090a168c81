package chain

import (
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/pkg/errors"
)

// Call is a runtime call before it is bound to chain metadata.
// Args are encoded in order with SCALE; Inner is only set for batches.
type Call struct {
	Pallet string
	Method string
	Args   []any
	Inner  []Call
}

func (c Call) Name() string { return c.Pallet + "." + c.Method }

// CreateCollection is Nfts.create with the admin as issuer: no max supply,
// issuer-only minting, free of charge, no time window, default item settings.
func CreateCollection(admin []byte) Call {
	return Call{
		Pallet: "Nfts",
		Method: "create",
		Args: []any{
			AccountIDAddress(admin),
			collectionConfig{
				MintSettings: mintSettings{MintType: MintTypeIssuer},
			},
		},
	}
}

func SetCollectionMetadata(collection uint32, data string) Call {
	return Call{
		Pallet: "Nfts",
		Method: "set_collection_metadata",
		Args:   []any{types.NewU32(collection), types.NewBytes([]byte(data))},
	}
}

func Mint(collection, item uint32, owner []byte) Call {
	return Call{
		Pallet: "Nfts",
		Method: "mint",
		Args: []any{
			types.NewU32(collection),
			types.NewU32(item),
			AccountIDAddress(owner),
			none{}, // witness_data
		},
	}
}

func SetMetadata(collection, item uint32, data string) Call {
	return Call{
		Pallet: "Nfts",
		Method: "set_metadata",
		Args:   []any{types.NewU32(collection), types.NewU32(item), types.NewBytes([]byte(data))},
	}
}

// BatchAll is Utility.batch_all: the inner calls apply together or not at all.
func BatchAll(calls []Call) Call {
	inner := make([]Call, len(calls))
	copy(inner, calls)
	return Call{Pallet: "Utility", Method: "batch_all", Inner: inner}
}

// Prepare turns the operations of one submission into the single call that is signed:
// one operation goes out bare, several are wrapped in an atomic batch.
func Prepare(calls []Call) (Call, error) {
	switch len(calls) {
	case 0:
		return Call{}, errors.New("nothing to submit")
	case 1:
		return calls[0], nil
	default:
		return BatchAll(calls), nil
	}
}

// Bind resolves call indices against meta.
func Bind(meta *types.Metadata, c Call) (types.Call, error) {
	if len(c.Inner) == 0 {
		tc, err := types.NewCall(meta, c.Name(), c.Args...)
		if err != nil {
			return types.Call{}, errors.Wrapf(err, "build call %s", c.Name())
		}
		return tc, nil
	}
	inner := make([]types.Call, 0, len(c.Inner))
	for _, ic := range c.Inner {
		tc, err := Bind(meta, ic)
		if err != nil {
			return types.Call{}, err
		}
		inner = append(inner, tc)
	}
	tc, err := types.NewCall(meta, c.Name(), inner)
	if err != nil {
		return types.Call{}, errors.Wrapf(err, "build call %s", c.Name())
	}
	return tc, nil
}

// AccountIDAddress is MultiAddress::Id(AccountId32).
type AccountIDAddress []byte

func (a AccountIDAddress) Encode(e scale.Encoder) error {
	if len(a) != 32 {
		return errors.Errorf("account id must be 32 bytes, got %d", len(a))
	}
	if err := e.PushByte(0); err != nil {
		return err
	}
	return e.Write(a)
}

// MintType mirrors pallet_nfts::MintType for the variants without payload.
type MintType byte

const MintTypeIssuer MintType = 0

func (m MintType) Encode(e scale.Encoder) error { return e.PushByte(byte(m)) }

// none encodes Option::None regardless of the option's inner type.
type none struct{}

func (none) Encode(e scale.Encoder) error { return e.PushByte(0) }

type mintSettings struct {
	MintType            MintType
	Price               none // Option<Balance>
	StartBlock          none // Option<BlockNumber>
	EndBlock            none // Option<BlockNumber>
	DefaultItemSettings types.U64
}

type collectionConfig struct {
	Settings     types.U64
	MaxSupply    none // Option<u32>
	MintSettings mintSettings
}
