package solver

import (
	"testing"

	"github.com/abdorrahmani/polysolve/internal/alphabet"
	"github.com/abdorrahmani/polysolve/internal/cipher"
	"github.com/abdorrahmani/polysolve/internal/ngram"
)

// Opening of Pride and Prejudice, long enough that every column of a
// short period carries a solid monogram sample.
const austen = "ITISATRUTHUNIVERSALLYACKNOWLEDGEDTHATASINGLEMANINPOSSESSIONOFAGOODFORTUNE" +
	"MUSTBEINWANTOFAWIFEHOWEVERLITTLEKNOWNTHEFEELINGSORVIEWSOFSUCHAMANMAYBEONHIS" +
	"FIRSTENTERINGANEIGHBOURHOODTHISTRUTHISSOWELLFIXEDINTHEMINDSOFTHESURROUNDING" +
	"FAMILIESTHATHEISCONSIDEREDTHERIGHTFULPROPERTYOFSOMEONEOROTHEROFTHEIRDAUGHTERS" +
	"MYDEARMRBENNETSAIDHISLADYTOHIMONEDAYHAVEYOUHEARDTHATNETHERFIELDPARKISLETATLAST"

// The K2 panel opening used by the Quagmire I scenario.
const sanbornText = "ITWASTOTALLYINVISIBLEHOWSTHATPOSSIBLETHEYUSEDTHEEARTHSMAGNETICFIELDTHE" +
	"INFORMATIONWASGATHEREDANDTRANSMITTEDUNDERGRUUNDTOANUNKNOWNLOCATIONDOESLANGLEY" +
	"KNOWABOUTTHISTHEYSHOULDITSBURIEDOUTTHERESOMEWHEREWHOKNOWSTHEEXACTLOCATIONONLYWW" +
	"THISWASHISLASTMESSAGETHIRTYEIGHTDEGREESFIFTYSEVENMINUTESSIXPOINTFIVESECONDSNORTH" +
	"SEVENTYSEVENDEGREESEIGHTMINUTESFORTYFOURSECONDSWESTIDBYROWS"

func indices(t *testing.T, s string) []byte {
	t.Helper()
	idx, err := alphabet.ToIndices(s)
	if err != nil {
		t.Fatalf("ToIndices failed: %v", err)
	}
	return idx
}

func keyedAlphabet(t *testing.T, w string) (alphabet.Keyed, int) {
	t.Helper()
	a, prefix, err := alphabet.FromKeyword(w)
	if err != nil {
		t.Fatalf("FromKeyword(%q) failed: %v", w, err)
	}
	return a, prefix
}

// testModel builds a tiny trigram model; ranking precision does not
// matter for tests that rely on the closed-form cycleword derivation.
func testModel() *ngram.Model {
	grams := map[string]float64{
		"THE": 330, "AND": 160, "ING": 115, "HER": 80, "ENT": 70,
		"THA": 65, "NTH": 60, "WAS": 58, "ETH": 55, "FOR": 50,
		"DTH": 45, "HAT": 44, "SHE": 42, "ION": 40, "HIS": 38,
	}
	counts := make(map[int]float64, len(grams))
	for g, c := range grams {
		idx := 0
		pow := 1
		for i := 0; i < len(g); i++ {
			idx += int(g[i]-'A') * pow
			pow *= alphabet.Size
		}
		counts[idx] = c
	}
	return ngram.FromCounts(3, counts)
}

func encryptPeriodic(t *testing.T, typ cipher.Type, variant bool, pt, ct alphabet.Keyed, key, text string) []byte {
	t.Helper()
	tb := cipher.New(typ, variant, pt, ct)
	msg := indices(t, text)
	k := indices(t, key)
	out := make([]byte, len(msg))
	tb.Encrypt(k, msg, out)
	return out
}
