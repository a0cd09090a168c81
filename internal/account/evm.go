package account

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
)

var ethDerivedSuffix = bytes.Repeat([]byte{0xEE}, 12)

// EVMAddress is the H160 address Asset Hub's Ethereum-compatible contract layer (Revive)
// maps an AccountId32 to. Accounts that were themselves mapped from an Ethereum key carry
// the Ethereum address bytes followed by twelve 0xEE bytes; everything else is keccak256(id)[12:].
func EVMAddress(accountID []byte) string {
	if len(accountID) == 32 && bytes.Equal(accountID[20:], ethDerivedSuffix) {
		return common.BytesToAddress(accountID[:20]).Hex()
	}
	return common.BytesToAddress(gethcrypto.Keccak256(accountID)[12:]).Hex()
}

func (a *Account) EVMAddress() string { return EVMAddress(a.pair.PublicKey) }
