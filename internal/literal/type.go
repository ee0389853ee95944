//go:generate go run github.com/dmarkham/enumer -type=Base -trimprefix=Base -transform=kebab
//go:generate go run github.com/dmarkham/enumer -type=Kind -trimprefix=Kind -transform=kebab
//go:generate go run github.com/dmarkham/enumer -type=Special -trimprefix=Special -transform=kebab
//go:generate go run github.com/dmarkham/enumer -type=Grammar -trimprefix=Grammar -transform=kebab
package literal

// Base is the radix an integer literal was written in. It is parse-time
// metadata only and never changes the numeric value.
type Base int

const (
	BaseDecimal Base = iota
	BaseHex
	BaseBinary
	BaseOctal
)

// Radix returns the numeric radix of b.
func (b Base) Radix() int {
	switch b {
	case BaseHex:
		return 16
	case BaseBinary:
		return 2
	case BaseOctal:
		return 8
	default:
		return 10
	}
}

// Prefix returns the literal prefix of b, empty for decimal.
func (b Base) Prefix() string {
	switch b {
	case BaseHex:
		return "0x"
	case BaseBinary:
		return "0b"
	case BaseOctal:
		return "0o"
	default:
		return ""
	}
}

// Kind tags which arm of Value is populated.
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindSpecial
)

type Special int

const (
	SpecialPositiveInfinity Special = iota
	SpecialNegativeInfinity
	SpecialNotANumber
)

// Grammar names one alternative of the numeric literal grammar. The
// declaration order is the order Parse tries them in.
type Grammar int

const (
	GrammarSpecial Grammar = iota
	GrammarNonDecimalInteger
	GrammarScientific
	GrammarBasicFloat
	GrammarDecimalInteger
)
