package parser

import (
	"strconv"
	"strings"

	"github.com/zayadnimrod/fairychess/piece"
)

// scanner is a minimal peekable rune cursor, the cursor the recursive
// descent below drives its parse functions from.
type scanner struct {
	runes []rune
	pos   int
}

func newScanner(text string) *scanner {
	var runes []rune
	for _, r := range text {
		if r == ' ' || r == '\t' {
			continue
		}
		runes = append(runes, r)
	}
	return &scanner{runes: runes}
}

func (s *scanner) peek() (rune, bool) {
	if s.pos >= len(s.runes) {
		return 0, false
	}
	return s.runes[s.pos], true
}

func (s *scanner) advance() {
	s.pos++
}

func (s *scanner) index() int {
	return s.pos
}

func (s *scanner) expect(r rune) error {
	got, ok := s.peek()
	if !ok {
		return errUnexpectedEOF()
	}
	if got != r {
		return errExpectedCharacter([]string{string(r)}, got, s.index())
	}
	s.advance()
	return nil
}

// Parse compiles a move-notation string into a RawExpr, the direct
// image of the grammar documented in doc.go.
func Parse(text string) (*RawExpr, error) {
	s := newScanner(text)
	expr, err := parseSeq(s)
	if err != nil {
		return nil, err
	}
	if _, ok := s.peek(); ok {
		return nil, errExpectedEOF(s.index())
	}
	return expr, nil
}

// parseSeq ::= Modded ('*' Seq)?
func parseSeq(s *scanner) (*RawExpr, error) {
	head, err := parseModded(s)
	if err != nil {
		return nil, err
	}
	if r, ok := s.peek(); ok && r == '*' {
		s.advance()
		tail, err := parseSeq(s)
		if err != nil {
			return nil, err
		}
		return &RawExpr{Kind: RawSeq, Head: head, Tail: tail}, nil
	}
	return &RawExpr{Kind: RawSeq, Head: head, Tail: nil}, nil
}

// parseModded ::= Option ( '|' | '-' | '/' | '^' ExpArg | '?' )*
func parseModded(s *scanner) (*RawExpr, error) {
	inner, err := parseOption(s)
	if err != nil {
		return nil, err
	}

	var mods []piece.Mod
loop:
	for {
		r, ok := s.peek()
		if !ok {
			break
		}
		switch r {
		case '|':
			mods = append(mods, piece.Mod{Kind: piece.VerticalMirror})
			s.advance()
		case '-':
			mods = append(mods, piece.Mod{Kind: piece.HorizontalMirror})
			s.advance()
		case '/':
			mods = append(mods, piece.Mod{Kind: piece.DiagonalMirror})
			s.advance()
		case '?':
			// '?' desugars to '^[0..1]'.
			mods = append(mods, piece.ExpRange(0, 1))
			s.advance()
		case '^':
			s.advance()
			m, err := parseExponentiationModifier(s)
			if err != nil {
				return nil, err
			}
			mods = append(mods, m)
		default:
			break loop
		}
	}

	if len(mods) == 0 {
		return inner, nil
	}
	return &RawExpr{Kind: RawModded, Inner: inner, Mods: mods}, nil
}

// parseExponentiationModifier parses the text following '^':
//
//	ExpArg ::= UInt | '[' UInt '..' ( UInt | '*' ) ']' | '*'
//
// A bare '^*' desugars to '^[1..*)'.
func parseExponentiationModifier(s *scanner) (piece.Mod, error) {
	r, ok := s.peek()
	if !ok {
		return piece.Mod{}, errUnexpectedEOF()
	}

	if r == '*' {
		s.advance()
		return piece.ExpInfinite(1), nil
	}

	if r == '[' {
		s.advance()
		lo, err := parseUint(s)
		if err != nil {
			return piece.Mod{}, err
		}
		if err := s.expect('.'); err != nil {
			return piece.Mod{}, err
		}
		if err := s.expect('.'); err != nil {
			return piece.Mod{}, err
		}

		hr, ok := s.peek()
		if !ok {
			return piece.Mod{}, errUnexpectedEOF()
		}
		if hr == '*' {
			s.advance()
			if err := s.expect(']'); err != nil {
				return piece.Mod{}, err
			}
			return piece.ExpInfinite(lo), nil
		}

		hi, err := parseUint(s)
		if err != nil {
			return piece.Mod{}, err
		}
		if err := s.expect(']'); err != nil {
			return piece.Mod{}, err
		}
		if hi <= lo {
			return piece.Mod{}, errUpperExpLessThanLower(lo, hi)
		}
		return piece.ExpRange(lo, hi), nil
	}

	n, err := parseUint(s)
	if err != nil {
		return piece.Mod{}, err
	}
	return piece.Exp(n), nil
}

// parseOption ::= '{' Seq (',' Seq)* '}' | '{' '}' | '(' Seq ')' | Jump
func parseOption(s *scanner) (*RawExpr, error) {
	r, ok := s.peek()
	if !ok {
		return nil, errUnexpectedEOF()
	}

	switch r {
	case '{':
		s.advance()
		if closing, ok := s.peek(); ok && closing == '}' {
			s.advance()
			return &RawExpr{Kind: RawOptions}, nil
		}

		first, err := parseSeq(s)
		if err != nil {
			return nil, err
		}
		options := []*RawExpr{first}
		for {
			r, ok := s.peek()
			if !ok {
				return nil, errUnexpectedEOF()
			}
			if r != ',' {
				break
			}
			s.advance()
			next, err := parseSeq(s)
			if err != nil {
				return nil, err
			}
			options = append(options, next)
		}
		if err := s.expect('}'); err != nil {
			return nil, err
		}
		return &RawExpr{Kind: RawOptions, Options: options}, nil

	case '(':
		s.advance()
		inner, err := parseSeq(s)
		if err != nil {
			return nil, err
		}
		if err := s.expect(')'); err != nil {
			return nil, err
		}
		return &RawExpr{Kind: RawGroup, Inner: inner}, nil

	case '[':
		return parseJump(s)

	default:
		return nil, errExpectedCharacter([]string{"{", "(", "["}, r, s.index())
	}
}

// parseJump ::= '[' Int ',' Int ']'
func parseJump(s *scanner) (*RawExpr, error) {
	if err := s.expect('['); err != nil {
		return nil, err
	}
	x, err := parseInteger(s)
	if err != nil {
		return nil, err
	}
	if err := s.expect(','); err != nil {
		return nil, err
	}
	y, err := parseInteger(s)
	if err != nil {
		return nil, err
	}
	if err := s.expect(']'); err != nil {
		return nil, err
	}

	j := piece.Jump{X: x, Y: y}
	if j.IsZero() {
		return nil, errNotAValidJump()
	}
	return &RawExpr{Kind: RawJump, Jump: j}, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// parseInteger consumes an optionally '-'-signed run of digits.
func parseInteger(s *scanner) (int, error) {
	start := s.index()

	var b strings.Builder
	if r, ok := s.peek(); ok && r == '-' {
		b.WriteRune(r)
		s.advance()
	}

	digits := 0
	for {
		r, ok := s.peek()
		if !ok || !isDigit(r) {
			break
		}
		b.WriteRune(r)
		s.advance()
		digits++
	}
	if digits == 0 {
		got, ok := s.peek()
		if !ok {
			return 0, errUnexpectedEOF()
		}
		return 0, errExpectedCharacter([]string{"0-9"}, got, s.index())
	}

	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, errIntegerParsing(err, start)
	}
	return n, nil
}

// parseUint consumes an unsigned run of digits, for exponent arguments.
func parseUint(s *scanner) (uint, error) {
	start := s.index()

	var b strings.Builder
	digits := 0
	for {
		r, ok := s.peek()
		if !ok || !isDigit(r) {
			break
		}
		b.WriteRune(r)
		s.advance()
		digits++
	}
	if digits == 0 {
		got, ok := s.peek()
		if !ok {
			return 0, errUnexpectedEOF()
		}
		return 0, errExpectedCharacter([]string{"0-9"}, got, s.index())
	}

	n, err := strconv.ParseUint(b.String(), 10, 64)
	if err != nil {
		return 0, errNotAValidExponent(err, int64(len(b.String())), start)
	}
	return uint(n), nil
}
