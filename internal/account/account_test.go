package account

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// standard BIP-39 test vector phrase (all-zero entropy)
const testPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestValidateMnemonic(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{"valid 12", testPhrase, true},
		{"extra whitespace", "  " + strings.ReplaceAll(testPhrase, " ", "   ") + "\n", true},
		{"empty", "", false},
		{"11 words", strings.TrimSuffix(testPhrase, " about"), false},
		{"bad checksum", strings.Replace(testPhrase, "about", "abandon", 1), false},
		{"unknown word", strings.Replace(testPhrase, "about", "zzzz", 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMnemonic(tt.in)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidMnemonic)
			}
		})
	}
}

func TestDerive_Deterministic(t *testing.T) {
	a1, err := Derive(testPhrase, 0)
	require.NoError(t, err)
	a2, err := Derive("  "+testPhrase+"  ", 0)
	require.NoError(t, err)

	assert.Equal(t, a1.Address(), a2.Address())
	assert.Equal(t, a1.PublicKey(), a2.PublicKey())
	assert.Len(t, a1.PublicKey(), 32)
	// SS58 format 0 addresses start with "1"
	assert.True(t, strings.HasPrefix(a1.Address(), "1"), a1.Address())
}

func TestDerive_SS58FormatChangesOnlyEncoding(t *testing.T) {
	polkadot, err := Derive(testPhrase, 0)
	require.NoError(t, err)
	generic, err := Derive(testPhrase, 42)
	require.NoError(t, err)

	assert.NotEqual(t, polkadot.Address(), generic.Address())
	assert.Equal(t, polkadot.PublicKey(), generic.PublicKey())
	assert.True(t, strings.HasPrefix(generic.Address(), "5"), generic.Address())
}

func TestDerive_RejectsInvalidMnemonic(t *testing.T) {
	_, err := Derive("not a real phrase", 0)
	assert.ErrorIs(t, err, ErrInvalidMnemonic)
}

func TestSignVerify(t *testing.T) {
	a, err := Derive(testPhrase, 0)
	require.NoError(t, err)

	msg := []byte("dot-nft signing payload")
	sig, err := a.Sign(msg)
	require.NoError(t, err)
	assert.Len(t, sig, 64)

	ok, err := a.Verify(msg, sig)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.Verify([]byte("tampered"), sig)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEVMAddress(t *testing.T) {
	a, err := Derive(testPhrase, 0)
	require.NoError(t, err)

	addr := a.EVMAddress()
	assert.True(t, common.IsHexAddress(addr))
	assert.Equal(t, addr, a.EVMAddress())

	ethKey := common.HexToAddress("0x00000000000000000000000000000000deadbeef")
	id := append(ethKey.Bytes(), ethDerivedSuffix...)
	assert.Equal(t, ethKey.Hex(), EVMAddress(id))
}

func TestMask(t *testing.T) {
	assert.Equal(t, "abandon ... about (12 words)", Mask(testPhrase))
	assert.Equal(t, "", Mask(""))
	assert.NotContains(t, Mask("secret"), "secret")
}
