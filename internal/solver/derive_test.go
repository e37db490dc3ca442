package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abdorrahmani/polysolve/internal/alphabet"
	"github.com/abdorrahmani/polysolve/internal/cipher"
)

func TestDeriveCyclewordVigenere(t *testing.T) {
	for _, key := range []string{"WOMBAT", "POLYALPHABETIC"} {
		ct := encryptPeriodic(t, cipher.Vigenere, false, alphabet.Straight(), alphabet.Straight(), key, austen)
		tb := cipher.New(cipher.Vigenere, false, alphabet.Straight(), alphabet.Straight())
		cycle := make([]byte, len(key))
		DeriveCycleword(tb, ct, len(key), cycle)
		require.Equal(t, key, alphabet.ToText(cycle))
	}
}

func TestDeriveCyclewordBeaufort(t *testing.T) {
	ct := encryptPeriodic(t, cipher.Beaufort, false, alphabet.Straight(), alphabet.Straight(), "REGXYLV", austen)
	tb := cipher.New(cipher.Beaufort, false, alphabet.Straight(), alphabet.Straight())
	cycle := make([]byte, 7)
	DeriveCycleword(tb, ct, 7, cycle)
	require.Equal(t, "REGXYLV", alphabet.ToText(cycle))
}

func TestDeriveCyclewordQuagmire1(t *testing.T) {
	// With the true plaintext alphabet fixed, each column is a known
	// substitution and the derivation pins the whole cycleword.
	william, _ := keyedAlphabet(t, "WILLIAM")
	ct := encryptPeriodic(t, cipher.Quagmire1, false, william, alphabet.Straight(), "WEBSTER", sanbornText)
	tb := cipher.New(cipher.Quagmire1, false, william, alphabet.Straight())
	cycle := make([]byte, 7)
	DeriveCycleword(tb, ct, 7, cycle)
	require.Equal(t, "WEBSTER", alphabet.ToText(cycle))
}

func TestDeriveCyclewordQuagmire3(t *testing.T) {
	kryptos, _ := keyedAlphabet(t, "KRYPTOS")
	ct := encryptPeriodic(t, cipher.Quagmire3, false, kryptos, kryptos, "KOMITET", austen)
	tb := cipher.New(cipher.Quagmire3, false, kryptos, kryptos)
	cycle := make([]byte, 7)
	DeriveCycleword(tb, ct, 7, cycle)

	// The derived cycleword must decrypt back to the plaintext.
	pt := make([]byte, len(ct))
	tb.Decrypt(cycle, ct, pt)
	require.Equal(t, austen, alphabet.ToText(pt))
}
