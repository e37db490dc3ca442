package alphabet

import (
	"math"
	"testing"
)

func TestStraight(t *testing.T) {
	a := Straight()
	if got := a.String(); got != "ABCDEFGHIJKLMNOPQRSTUVWXYZ" {
		t.Errorf("Straight() = %v, want the identity alphabet", got)
	}
	if !a.Valid() {
		t.Error("Straight() is not a valid permutation")
	}
}

func TestFromKeyword(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		want    string
		prefix  int
		wantErr bool
	}{
		{
			name:    "kryptos",
			keyword: "KRYPTOS",
			want:    "KRYPTOSABCDEFGHIJLMNQUVWXZ",
			prefix:  7,
		},
		{
			name:    "repeated letters collapse",
			keyword: "WILLIAM",
			want:    "WILAMBCDEFGHJKNOPQRSTUVXYZ",
			prefix:  5,
		},
		{
			name:    "lowercase accepted",
			keyword: "komitet",
			want:    "KOMITEABCDFGHJLNPQRSUVWXYZ",
			prefix:  6,
		},
		{
			name:    "empty keyword gives straight alphabet",
			keyword: "",
			want:    "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
			prefix:  0,
		},
		{
			name:    "non-alphabetic keyword",
			keyword: "K3Y",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, prefix, err := FromKeyword(tt.keyword)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromKeyword(%q) error = %v, wantErr %v", tt.keyword, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := a.String(); got != tt.want {
				t.Errorf("FromKeyword(%q) = %v, want %v", tt.keyword, got, tt.want)
			}
			if prefix != tt.prefix {
				t.Errorf("prefix = %d, want %d", prefix, tt.prefix)
			}
			if !a.Valid() {
				t.Errorf("FromKeyword(%q) is not a permutation", tt.keyword)
			}
		})
	}
}

func TestInverse(t *testing.T) {
	a, _, err := FromKeyword("KRYPTOS")
	if err != nil {
		t.Fatalf("FromKeyword failed: %v", err)
	}
	inv := a.Inverse()
	for i := 0; i < Size; i++ {
		if inv[a[i]] != byte(i) {
			t.Fatalf("inverse mismatch at %d", i)
		}
	}
}

func TestToIndicesRoundTrip(t *testing.T) {
	text := "MAINTAININGAHEADING"
	idx, err := ToIndices(text)
	if err != nil {
		t.Fatalf("ToIndices failed: %v", err)
	}
	if got := ToText(idx); got != text {
		t.Errorf("round trip = %v, want %v", got, text)
	}

	if _, err := ToIndices("NOT VALID"); err == nil {
		t.Error("expected error for text with spaces")
	}
}

func TestIndexOfCoincidence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "single letter repeated", text: "AAAAAA", want: 1},
		{name: "all distinct", text: "ABCDEF", want: 0},
		{name: "too short", text: "A", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := ToIndices(tt.text)
			if err != nil {
				t.Fatalf("ToIndices failed: %v", err)
			}
			if got := IndexOfCoincidence(idx); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("IndexOfCoincidence(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestEntropy(t *testing.T) {
	idx, _ := ToIndices("AAAA")
	if got := Entropy(idx); got != 0 {
		t.Errorf("entropy of a constant sequence = %v, want 0", got)
	}

	idx, _ = ToIndices("ABCD")
	want := math.Log(4)
	if got := Entropy(idx); math.Abs(got-want) > 1e-12 {
		t.Errorf("entropy of four distinct letters = %v, want %v", got, want)
	}
}

func TestMonogramsSumToOne(t *testing.T) {
	sum := 0.0
	for _, f := range Monograms {
		sum += f
	}
	if math.Abs(sum-1) > 0.001 {
		t.Errorf("monogram frequencies sum to %v, want 1", sum)
	}
}

func TestChiSquaredPrefersEnglish(t *testing.T) {
	english, _ := ToIndices("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOGANDTHENSOMEMORETEXT")
	skewed, _ := ToIndices("ZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZ")
	if ChiSquared(english) >= ChiSquared(skewed) {
		t.Error("chi-squared should be lower for English-like text than for a constant run")
	}
}
