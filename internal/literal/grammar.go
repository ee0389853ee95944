package literal

import "strings"

// match is what a grammar alternative captured from a literal. Only the
// fields relevant to the matching alternative are set.
type match struct {
	grammar  Grammar
	negative bool
	signed   bool   // an explicit '+' or '-' was present
	base     Base   // integer alternatives
	digits   string // integer digits without sign or prefix
	special  Special
}

// alternative is one arm of the numeric literal grammar. matchFn must
// consume the whole input to succeed.
type alternative struct {
	grammar Grammar
	matchFn func(text string) (match, bool)
}

// alternatives lists the grammar in priority order. The first full match
// wins; the arms are disjoint by construction.
var alternatives = []alternative{
	{GrammarSpecial, matchSpecial},
	{GrammarNonDecimalInteger, matchNonDecimalInteger},
	{GrammarScientific, matchScientific},
	{GrammarBasicFloat, matchBasicFloat},
	{GrammarDecimalInteger, matchDecimalInteger},
}

// scanner walks a literal one byte at a time. All literal syntax is ASCII.
type scanner struct {
	src string
	pos int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

// sign consumes an optional '+' or '-'.
func (s *scanner) sign() (signed, negative bool) {
	switch s.peek() {
	case '-':
		s.pos++
		return true, true
	case '+':
		s.pos++
		return true, false
	}
	return false, false
}

// accept consumes the next byte if it is one of chars.
func (s *scanner) accept(chars string) bool {
	if s.eof() || strings.IndexByte(chars, s.src[s.pos]) < 0 {
		return false
	}
	s.pos++
	return true
}

// run consumes the longest prefix whose bytes satisfy valid.
func (s *scanner) run(valid func(byte) bool) string {
	start := s.pos
	for !s.eof() && valid(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

func (s *scanner) rest() string {
	return s.src[s.pos:]
}

// significand consumes digits with an optional decimal point. It reports
// whether any digit was seen and whether a point was consumed.
func (s *scanner) significand() (digits, point bool) {
	whole := s.run(isDecimalDigit)
	if s.accept(".") {
		point = true
		frac := s.run(isDecimalDigit)
		return whole != "" || frac != "", point
	}
	return whole != "", point
}

func isDecimalDigit(c byte) bool { return '0' <= c && c <= '9' }
func isBinaryDigit(c byte) bool  { return c == '0' || c == '1' }
func isOctalDigit(c byte) bool   { return '0' <= c && c <= '7' }

func isHexDigit(c byte) bool {
	return isDecimalDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// matchSpecial matches [+-]?(inf|infinity|nan), case-insensitively. A
// signed nan still matches here so the caller can reject it by name.
func matchSpecial(text string) (match, bool) {
	s := scanner{src: text}
	signed, negative := s.sign()
	m := match{grammar: GrammarSpecial, signed: signed, negative: negative}
	switch word := s.rest(); {
	case strings.EqualFold(word, "inf"), strings.EqualFold(word, "infinity"):
		m.special = SpecialPositiveInfinity
		if negative {
			m.special = SpecialNegativeInfinity
		}
	case strings.EqualFold(word, "nan"):
		m.special = SpecialNotANumber
	default:
		return match{}, false
	}
	return m, true
}

// matchNonDecimalInteger matches [+-]?0(x|b|o)digits with digits valid for
// the radix. No point or exponent may follow.
func matchNonDecimalInteger(text string) (match, bool) {
	s := scanner{src: text}
	signed, negative := s.sign()
	if !s.accept("0") {
		return match{}, false
	}
	m := match{grammar: GrammarNonDecimalInteger, signed: signed, negative: negative}
	var valid func(byte) bool
	switch {
	case s.accept("xX"):
		m.base, valid = BaseHex, isHexDigit
	case s.accept("bB"):
		m.base, valid = BaseBinary, isBinaryDigit
	case s.accept("oO"):
		m.base, valid = BaseOctal, isOctalDigit
	default:
		return match{}, false
	}
	m.digits = s.run(valid)
	if m.digits == "" || !s.eof() {
		return match{}, false
	}
	return m, true
}

// matchScientific matches a significand (integer or basic float) followed
// by e or E, an optional sign and at least one exponent digit.
func matchScientific(text string) (match, bool) {
	s := scanner{src: text}
	signed, negative := s.sign()
	if digits, _ := s.significand(); !digits {
		return match{}, false
	}
	if !s.accept("eE") {
		return match{}, false
	}
	s.sign()
	if s.run(isDecimalDigit) == "" || !s.eof() {
		return match{}, false
	}
	return match{grammar: GrammarScientific, signed: signed, negative: negative}, true
}

// matchBasicFloat matches digits '.' digits* or digits* '.' digits.
func matchBasicFloat(text string) (match, bool) {
	s := scanner{src: text}
	signed, negative := s.sign()
	digits, point := s.significand()
	if !digits || !point || !s.eof() {
		return match{}, false
	}
	return match{grammar: GrammarBasicFloat, signed: signed, negative: negative}, true
}

func matchDecimalInteger(text string) (match, bool) {
	s := scanner{src: text}
	signed, negative := s.sign()
	digits := s.run(isDecimalDigit)
	if digits == "" || !s.eof() {
		return match{}, false
	}
	return match{
		grammar:  GrammarDecimalInteger,
		signed:   signed,
		negative: negative,
		base:     BaseDecimal,
		digits:   digits,
	}, true
}

// classify runs the alternatives in order over an already trimmed literal.
func classify(text string) (match, bool) {
	for _, alt := range alternatives {
		if m, ok := alt.matchFn(text); ok {
			return m, true
		}
	}
	return match{}, false
}
