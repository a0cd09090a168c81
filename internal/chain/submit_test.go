package chain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStream struct {
	statuses chan types.ExtrinsicStatus
	errs     chan error
}

func newFakeStream(statuses ...types.ExtrinsicStatus) *fakeStream {
	f := &fakeStream{
		statuses: make(chan types.ExtrinsicStatus, len(statuses)),
		errs:     make(chan error, 1),
	}
	for _, st := range statuses {
		f.statuses <- st
	}
	return f
}

func (f *fakeStream) Chan() <-chan types.ExtrinsicStatus { return f.statuses }
func (f *fakeStream) Err() <-chan error                  { return f.errs }

func TestWaitInBlock_SkipsPoolStatuses(t *testing.T) {
	block := types.NewHash([]byte{0x01, 0x02})
	s := newFakeStream(
		types.ExtrinsicStatus{IsReady: true},
		types.ExtrinsicStatus{IsFuture: true},
		types.ExtrinsicStatus{IsInBlock: true, AsInBlock: block},
	)

	got, err := waitInBlock(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, block, got)
}

func TestWaitInBlock_Finalized(t *testing.T) {
	block := types.NewHash([]byte{0x09})
	got, err := waitInBlock(context.Background(), newFakeStream(types.ExtrinsicStatus{IsFinalized: true, AsFinalized: block}))
	require.NoError(t, err)
	assert.Equal(t, block, got)
}

func TestWaitInBlock_Rejections(t *testing.T) {
	tests := []struct {
		name string
		st   types.ExtrinsicStatus
		want error
	}{
		{"invalid", types.ExtrinsicStatus{IsInvalid: true}, ErrExtrinsicInvalid},
		{"dropped", types.ExtrinsicStatus{IsDropped: true}, ErrExtrinsicDropped},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := waitInBlock(context.Background(), newFakeStream(types.ExtrinsicStatus{IsReady: true}, tt.st))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := waitInBlock(context.Background(), newFakeStream(types.ExtrinsicStatus{IsUsurped: true}))
	assert.Error(t, err)
}

func TestWaitInBlock_SubscriptionError(t *testing.T) {
	s := newFakeStream()
	s.errs <- errors.New("socket closed")

	_, err := waitInBlock(context.Background(), s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "socket closed")
}

func TestWaitInBlock_ClosedStream(t *testing.T) {
	s := newFakeStream()
	close(s.statuses)

	_, err := waitInBlock(context.Background(), s)
	assert.ErrorIs(t, err, errSubscriptionClosed)
}

func TestWaitInBlock_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := waitInBlock(ctx, newFakeStream(types.ExtrinsicStatus{IsReady: true}))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestOutcome_Included(t *testing.T) {
	var none *Outcome
	assert.False(t, none.Included())
	assert.False(t, (&Outcome{ExtrinsicHash: "0x01"}).Included())
	assert.True(t, (&Outcome{ExtrinsicHash: "0x01", BlockHash: "0x02"}).Included())
}
