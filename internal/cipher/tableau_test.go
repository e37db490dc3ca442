package cipher

import (
	"math/rand"
	"testing"

	"github.com/abdorrahmani/polysolve/internal/alphabet"
)

func mustKeyword(t *testing.T, w string) alphabet.Keyed {
	t.Helper()
	a, _, err := alphabet.FromKeyword(w)
	if err != nil {
		t.Fatalf("FromKeyword(%q) failed: %v", w, err)
	}
	return a
}

func mustIndices(t *testing.T, s string) []byte {
	t.Helper()
	idx, err := alphabet.ToIndices(s)
	if err != nil {
		t.Fatalf("ToIndices failed: %v", err)
	}
	return idx
}

func TestVigenereKnownVector(t *testing.T) {
	tb := New(Vigenere, false, alphabet.Straight(), alphabet.Straight())
	key := mustIndices(t, "KEY")
	pt := mustIndices(t, "HELLO")
	ct := make([]byte, len(pt))
	tb.Encrypt(key, pt, ct)
	if got := alphabet.ToText(ct); got != "RIJVS" {
		t.Errorf("Vigenere encrypt = %v, want RIJVS", got)
	}
	back := make([]byte, len(ct))
	tb.Decrypt(key, ct, back)
	if got := alphabet.ToText(back); got != "HELLO" {
		t.Errorf("Vigenere decrypt = %v, want HELLO", got)
	}
}

func TestQuagmire3KryptosVector(t *testing.T) {
	// The published sculpture panel: Quagmire III with both alphabets
	// keyed on KRYPTOS and a seven-letter cycleword.
	kryptos := mustKeyword(t, "KRYPTOS")
	tb := New(Quagmire3, false, kryptos, kryptos)
	key := mustIndices(t, "KOMITET")
	ct := mustIndices(t, "MFABBMNNQEYEZIAIABLJJEFXNWJOTNPVDIBHQNNSIMRJPZIXOEJXROJVTNPFILBBJNSNTGLDRISJZWQCSDVIFKNNMVOIXTQOP")
	pt := make([]byte, len(ct))
	tb.Decrypt(key, ct, pt)

	const want = "MAINTAININGAHEADINGOFEASTNORTHEASTTHIRTYTHREEDEGREESFROMTHEWESTBERLINCLOCKYOUWILLSEEFURTHERINFORM"
	if got := alphabet.ToText(pt); got != want {
		t.Errorf("Quagmire III decrypt = %v, want %v", got, want)
	}

	back := make([]byte, len(pt))
	tb.Encrypt(key, pt, back)
	if got := alphabet.ToText(back); got != alphabet.ToText(ct) {
		t.Error("Quagmire III encrypt does not invert decrypt")
	}
}

func TestBeaufortSelfInverse(t *testing.T) {
	tb := New(Beaufort, false, alphabet.Straight(), alphabet.Straight())
	key := mustIndices(t, "REGXYLV")
	pt := mustIndices(t, "ITISATRUTHUNIVERSALLYACKNOWLEDGED")
	ct := make([]byte, len(pt))
	tb.Encrypt(key, pt, ct)
	back := make([]byte, len(ct))
	tb.Decrypt(key, ct, back)
	if got := alphabet.ToText(back); got != alphabet.ToText(pt) {
		t.Errorf("Beaufort round trip = %v, want %v", got, alphabet.ToText(pt))
	}
	// decrypt and encrypt are the same operation
	again := make([]byte, len(ct))
	tb.Encrypt(key, ct, again)
	if got := alphabet.ToText(again); got != alphabet.ToText(pt) {
		t.Error("Beaufort encrypt should equal decrypt")
	}
}

func TestPortaSelfInverse(t *testing.T) {
	tb := New(Porta, false, alphabet.Straight(), alphabet.Straight())
	key := mustIndices(t, "GOSLING")
	pt := mustIndices(t, "BETWEENSUBTLESHADINGANDTHEABSENCEOFLIGHT")
	ct := make([]byte, len(pt))
	tb.Encrypt(key, pt, ct)
	back := make([]byte, len(ct))
	tb.Decrypt(key, ct, back)
	if got := alphabet.ToText(back); got != alphabet.ToText(pt) {
		t.Errorf("Porta round trip = %v, want %v", got, alphabet.ToText(pt))
	}
	again := make([]byte, len(ct))
	tb.Encrypt(key, ct, again)
	if got := alphabet.ToText(again); got != alphabet.ToText(pt) {
		t.Error("Porta encrypt should equal decrypt")
	}
	// Porta always maps across the halves of the alphabet.
	for i, c := range ct {
		if (pt[i] < 13) == (c < 13) {
			t.Fatalf("Porta output at %d stayed in the same half", i)
		}
	}
}

func TestRoundTripAllTypes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pt1 := mustKeyword(t, "WILLIAM")
	ct1 := mustKeyword(t, "PARABOLA")
	types := []struct {
		name    string
		typ     Type
		variant bool
		pt      alphabet.Keyed
		ct      alphabet.Keyed
	}{
		{"vigenere", Vigenere, false, alphabet.Straight(), alphabet.Straight()},
		{"vigenere variant", Vigenere, true, alphabet.Straight(), alphabet.Straight()},
		{"quagmire1", Quagmire1, false, pt1, alphabet.Straight()},
		{"quagmire2", Quagmire2, false, alphabet.Straight(), ct1},
		{"quagmire3", Quagmire3, false, pt1, pt1},
		{"quagmire4", Quagmire4, false, pt1, ct1},
		{"quagmire4 variant", Quagmire4, true, pt1, ct1},
		{"beaufort", Beaufort, false, alphabet.Straight(), alphabet.Straight()},
		{"porta", Porta, false, alphabet.Straight(), alphabet.Straight()},
	}
	for _, tt := range types {
		t.Run(tt.name, func(t *testing.T) {
			tb := New(tt.typ, tt.variant, tt.pt, tt.ct)
			for _, n := range []int{1, 7, 100, 10000} {
				msg := make([]byte, n)
				for i := range msg {
					msg[i] = byte(rng.Intn(alphabet.Size))
				}
				key := make([]byte, 1+rng.Intn(12))
				for i := range key {
					key[i] = byte(rng.Intn(alphabet.Size))
				}
				ct := make([]byte, n)
				back := make([]byte, n)
				tb.Encrypt(key, msg, ct)
				tb.Decrypt(key, ct, back)
				for i := range msg {
					if msg[i] != back[i] {
						t.Fatalf("decrypt(encrypt(m)) != m at %d for n=%d", i, n)
					}
				}
				tb.Decrypt(key, msg, back)
				tb.Encrypt(key, back, ct)
				for i := range msg {
					if msg[i] != ct[i] {
						t.Fatalf("encrypt(decrypt(c)) != c at %d for n=%d", i, n)
					}
				}
			}
		})
	}
}

func TestAutokeyRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	kryptos := mustKeyword(t, "KRYPTOS")
	types := []struct {
		name string
		typ  Type
		pt   alphabet.Keyed
		ct   alphabet.Keyed
	}{
		{"autokey straight", AutokeyVigenere, alphabet.Straight(), alphabet.Straight()},
		{"autokey quagmire3", Autokey3, kryptos, kryptos},
		{"autokey beaufort sub", Beaufort, alphabet.Straight(), alphabet.Straight()},
		{"autokey porta sub", Porta, alphabet.Straight(), alphabet.Straight()},
	}
	for _, tt := range types {
		t.Run(tt.name, func(t *testing.T) {
			tb := New(tt.typ, false, tt.pt, tt.ct)
			msg := make([]byte, 500)
			for i := range msg {
				msg[i] = byte(rng.Intn(alphabet.Size))
			}
			primer := mustIndices(t, "JAMESHERBERTSANBORNJR")
			ct := make([]byte, len(msg))
			back := make([]byte, len(msg))
			tb.EncryptAutokey(primer, msg, ct, nil)
			tb.DecryptAutokey(primer, ct, back, nil)
			for i := range msg {
				if msg[i] != back[i] {
					t.Fatalf("autokey round trip mismatch at %d", i)
				}
			}
		})
	}
}

func TestAutokeyKeystreamNeverRestarts(t *testing.T) {
	tb := New(AutokeyVigenere, false, alphabet.Straight(), alphabet.Straight())
	primer := mustIndices(t, "KEY")
	pt := mustIndices(t, "HELLOHELLOHELLO")
	ct := make([]byte, len(pt))
	tb.EncryptAutokey(primer, pt, ct, nil)
	// Beyond the primer region the running key is the plaintext itself,
	// not the repeated primer, so the ciphertext must differ from the
	// periodic Vigenere encryption under the same key.
	periodic := New(Vigenere, false, alphabet.Straight(), alphabet.Straight())
	pct := make([]byte, len(pt))
	periodic.Encrypt(primer, pt, pct)
	same := true
	for i := range ct {
		if ct[i] != pct[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("autokey ciphertext equals periodic ciphertext; keystream restarted")
	}
}
