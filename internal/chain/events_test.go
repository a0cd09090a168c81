package chain

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/centrifuge/go-substrate-rpc-client/v4/registry"
	"github.com/centrifuge/go-substrate-rpc-client/v4/registry/parser"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func created(collection uint32, owner []byte) Event {
	return Event{Name: "Nfts.Created", Fields: map[string]any{
		"collection": types.NewU32(collection),
		"creator":    owner,
		"owner":      owner,
	}}
}

func TestExtractUint32_CollectionCreated(t *testing.T) {
	bob := bytes.Repeat([]byte{0xBB}, 32)
	events := []Event{
		{Name: "Balances.Withdraw"},
		created(11, bob),
		created(12, alice),
		{Name: "System.ExtrinsicSuccess"},
	}

	id, err := ExtractUint32(events, CollectionCreatedRule(alice))
	require.NoError(t, err)
	assert.Equal(t, uint32(12), id)
}

func TestExtractUint32_NotFound(t *testing.T) {
	_, err := ExtractUint32([]Event{{Name: "System.ExtrinsicSuccess"}}, CollectionCreatedRule(alice))
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestExtractUint32_Ambiguous(t *testing.T) {
	events := []Event{created(1, alice), created(2, alice)}

	_, err := ExtractUint32(events, CollectionCreatedRule(alice))
	assert.ErrorIs(t, err, ErrAmbiguousEvent)

	firstMatch := EventRule{Name: "Nfts.Created", Field: "collection"}
	id, err := ExtractUint32(events, firstMatch)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), id)
}

func TestExtractUint32_BadField(t *testing.T) {
	events := []Event{{Name: "Nfts.Created", Fields: map[string]any{"collection": "seven"}}}
	_, err := ExtractUint32(events, EventRule{Name: "Nfts.Created", Field: "collection"})
	assert.Error(t, err)

	_, err = ExtractUint32(events, EventRule{Name: "Nfts.Created", Field: "missing"})
	assert.Error(t, err)
}

func TestUint32(t *testing.T) {
	compact := types.NewUCompactFromUInt(77)
	tests := []struct {
		name string
		in   any
		want uint32
		ok   bool
	}{
		{"U32", types.NewU32(5), 5, true},
		{"uint64", uint64(6), 6, true},
		{"int negative", -1, 0, false},
		{"compact", compact, 77, true},
		{"big", big.NewInt(8), 8, true},
		{"too big", uint64(1) << 40, 0, false},
		{"decoded wrapper", registry.DecodedFields{{Name: "inner", Value: types.NewU32(9)}}, 9, true},
		{"string", "9", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Uint32(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccountBytes(t *testing.T) {
	var arr [32]byte
	copy(arr[:], alice)

	got, ok := AccountBytes(arr)
	require.True(t, ok)
	assert.Equal(t, alice, got)

	fields := registry.DecodedFields{}
	for _, b := range alice {
		fields = append(fields, &registry.DecodedField{Value: types.NewU8(b)})
	}
	got, ok = AccountBytes(registry.DecodedFields{{Name: "0", Value: fields}})
	require.True(t, ok)
	assert.Equal(t, alice, got)

	_, ok = AccountBytes([]byte{1, 2})
	assert.False(t, ok)
}

func TestCheckDispatch(t *testing.T) {
	assert.NoError(t, CheckDispatch([]Event{{Name: "System.ExtrinsicSuccess"}}))

	err := CheckDispatch([]Event{{
		Name: "System.ExtrinsicFailed",
		Fields: map[string]any{"dispatch_error": registry.DecodedFields{
			{Name: "Module", Value: registry.DecodedFields{
				{Name: "index", Value: types.NewU8(52)},
				{Name: "error", Value: "NoPermission"},
			}},
		}},
	}})
	var de *DispatchError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "System.ExtrinsicFailed", de.Event)
	assert.Contains(t, de.Descriptor, "Module")
	assert.Contains(t, de.Descriptor, "NoPermission")

	err = CheckDispatch([]Event{{Name: "Utility.BatchInterrupted", Fields: map[string]any{"index": types.NewU32(3), "error": "Token"}}})
	require.True(t, errors.As(err, &de))
	assert.Contains(t, de.Descriptor, "3")
}

func TestEventsOf(t *testing.T) {
	apply := func(i uint32) *types.Phase { return &types.Phase{IsApplyExtrinsic: true, AsApplyExtrinsic: i} }
	raw := []*parser.Event{
		{Name: "System.ExtrinsicSuccess", Phase: apply(0)},
		{Name: "Nfts.Created", Phase: apply(2), Fields: registry.DecodedFields{{Name: "collection", Value: types.NewU32(4)}}},
		{Name: "System.ExtrinsicSuccess", Phase: apply(2)},
		{Name: "Session.NewSession", Phase: &types.Phase{IsFinalization: true}},
		nil,
	}

	got := EventsOf(raw, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "Nfts.Created", got[0].Name)
	assert.Equal(t, types.NewU32(4), got[0].Fields["collection"])
	assert.Equal(t, "System.ExtrinsicSuccess", got[1].Name)
}

func TestIndexOf(t *testing.T) {
	idx, ok := IndexOf([]string{"0x0102", "0xABCD", "0x0304"}, []byte{0xab, 0xcd})
	require.True(t, ok)
	assert.Equal(t, uint32(1), idx)

	_, ok = IndexOf([]string{"0x01"}, []byte{0x02})
	assert.False(t, ok)
}

func TestExtrinsicHash(t *testing.T) {
	h := ExtrinsicHash([]byte("abc"))
	assert.Len(t, h, 66)
	assert.Equal(t, h, ExtrinsicHash([]byte("abc")))
	assert.NotEqual(t, h, ExtrinsicHash([]byte("abd")))
}
