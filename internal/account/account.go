package account

import (
	"errors"
	"fmt"
	"strings"

	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	bip39 "github.com/tyler-smith/go-bip39"
)

var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// Account is an sr25519 identity derived from a mnemonic. It lives in memory only.
type Account struct {
	pair signature.KeyringPair
}

// Normalize collapses whitespace so "  a  b " and "a b" derive the same key.
func Normalize(mnemonic string) string {
	return strings.Join(strings.Fields(mnemonic), " ")
}

// WordCountOK reports whether the phrase has 12 or 24 words.
func WordCountOK(mnemonic string) bool {
	n := len(strings.Fields(mnemonic))
	return n == 12 || n == 24
}

// ValidateMnemonic checks the word count and the BIP-39 checksum.
func ValidateMnemonic(mnemonic string) error {
	mn := Normalize(mnemonic)
	if mn == "" {
		return fmt.Errorf("%w: mnemonic seed is required", ErrInvalidMnemonic)
	}
	if !WordCountOK(mn) {
		return fmt.Errorf("%w: must be either 12 or 24 words", ErrInvalidMnemonic)
	}
	if !bip39.IsMnemonicValid(mn) {
		return fmt.Errorf("%w: unknown word or bad checksum", ErrInvalidMnemonic)
	}
	return nil
}

// Derive builds the account for mnemonic the way Substrate wallets do
// (mini secret from the BIP-39 entropy, no derivation path, no password).
// The address is SS58-encoded with ss58Format.
func Derive(mnemonic string, ss58Format uint16) (*Account, error) {
	mn := Normalize(mnemonic)
	if err := ValidateMnemonic(mn); err != nil {
		return nil, err
	}
	pair, err := signature.KeyringPairFromSecret(mn, ss58Format)
	if err != nil {
		return nil, fmt.Errorf("derive sr25519 keypair: %w", err)
	}
	return &Account{pair: pair}, nil
}

func (a *Account) Address() string { return a.pair.Address }

func (a *Account) PublicKey() []byte {
	out := make([]byte, len(a.pair.PublicKey))
	copy(out, a.pair.PublicKey)
	return out
}

// KeyringPair exposes the signing handle to the extrinsic builder.
func (a *Account) KeyringPair() signature.KeyringPair { return a.pair }

// Sign returns an sr25519 signature over msg.
func (a *Account) Sign(msg []byte) ([]byte, error) {
	sig, err := signature.Sign(msg, a.pair.URI)
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	return sig, nil
}

// Verify checks sig over msg against this account's public key.
func (a *Account) Verify(msg, sig []byte) (bool, error) {
	return signature.Verify(msg, sig, a.pair.URI)
}

// Mask keeps the first and last word of a phrase for display.
func Mask(mnemonic string) string {
	words := strings.Fields(mnemonic)
	switch len(words) {
	case 0:
		return ""
	case 1, 2:
		return strings.Repeat("*** ", len(words)-1) + "***"
	}
	return fmt.Sprintf("%s ... %s (%d words)", words[0], words[len(words)-1], len(words))
}
