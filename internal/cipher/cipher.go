package cipher

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies a member of the polyalphabetic cipher family.
type Type int

const (
	Vigenere Type = iota
	Quagmire1
	Quagmire2
	Quagmire3
	Quagmire4
	Beaufort
	Porta
	AutokeyVigenere
	Autokey1
	Autokey2
	Autokey3
	Autokey4
)

var typeNames = map[Type]string{
	Vigenere:        "vigenere",
	Quagmire1:       "quagmire1",
	Quagmire2:       "quagmire2",
	Quagmire3:       "quagmire3",
	Quagmire4:       "quagmire4",
	Beaufort:        "beaufort",
	Porta:           "porta",
	AutokeyVigenere: "autokey",
	Autokey1:        "autokey1",
	Autokey2:        "autokey2",
	Autokey3:        "autokey3",
	Autokey4:        "autokey4",
}

var typeAliases = map[string]Type{
	"vig":       Vigenere,
	"vigenere":  Vigenere,
	"q1":        Quagmire1,
	"q2":        Quagmire2,
	"q3":        Quagmire3,
	"q4":        Quagmire4,
	"quagmire1": Quagmire1,
	"quagmire2": Quagmire2,
	"quagmire3": Quagmire3,
	"quagmire4": Quagmire4,
	"beau":      Beaufort,
	"beaufort":  Beaufort,
	"porta":     Porta,
	"auto":      AutokeyVigenere,
	"autokey":   AutokeyVigenere,
	"auto0":     AutokeyVigenere,
	"auto1":     Autokey1,
	"auto2":     Autokey2,
	"auto3":     Autokey3,
	"auto4":     Autokey4,
}

// ParseType resolves a -type argument, either the numeric enum value or a
// case-insensitive alias (vig, q1..q4, beau, porta, auto, auto1..auto4).
func ParseType(s string) (Type, error) {
	if n, err := strconv.Atoi(s); err == nil {
		t := Type(n)
		if t < Vigenere || t > Autokey4 {
			return 0, fmt.Errorf("cipher type %d out of range [0,11]", n)
		}
		return t, nil
	}
	if t, ok := typeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("unknown cipher type %q", s)
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("type(%d)", int(t))
}

// IsAutokey reports whether the keystream is aperiodic (primer plus
// recovered plaintext) rather than a repeating cycleword.
func (t Type) IsAutokey() bool {
	return t >= AutokeyVigenere
}

// Sub returns the tableau the cipher decrypts with. For autokey members
// this is the periodic counterpart; periodic members return themselves.
func (t Type) Sub() Type {
	switch t {
	case AutokeyVigenere:
		return Vigenere
	case Autokey1:
		return Quagmire1
	case Autokey2:
		return Quagmire2
	case Autokey3:
		return Quagmire3
	case Autokey4:
		return Quagmire4
	default:
		return t
	}
}

// IsQuagmire reports whether the tableau carries keyed alphabets.
func (t Type) IsQuagmire() bool {
	s := t.Sub()
	return s >= Quagmire1 && s <= Quagmire4
}
