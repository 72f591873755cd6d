package infix

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a classified lexical unit of an expression.
type Token struct {
	// Kind is the token's variant.
	Kind TokenKind
	// Sym is the operator character when Kind is TokenOp.
	Sym rune
	// Val is the numeric value when Kind is TokenNum.
	Val float64
	// Pos is the 1-based rune column at which the token starts.
	Pos int
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNum:
		return t.Kind.String() + ":" + strconv.FormatFloat(t.Val, 'g', -1, 64) + "@" + strconv.Itoa(t.Pos)
	case TokenOp:
		return t.Kind.String() + ":" + string(t.Sym) + "@" + strconv.Itoa(t.Pos)
	default:
		return t.Kind.String() + "@" + strconv.Itoa(t.Pos)
	}
}

// TokenKind classifies a Token.
type TokenKind int

const (
	tokenNone TokenKind = iota
	// TokenNum is a floating-point literal, possibly signed.
	TokenNum
	// TokenOp is a single-character operator.
	TokenOp
	// TokenLeftBracket is (.
	TokenLeftBracket
	// TokenRightBracket is ).
	TokenRightBracket
)

func (k TokenKind) String() string {
	switch k {
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	case TokenLeftBracket:
		return "LeftBracket"
	case TokenRightBracket:
		return "RightBracket"
	default:
		return "None"
	}
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	prev TokenKind
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// Tokenize scans src into the complete token sequence of one expression.
// Empty or all-whitespace input yields an empty sequence with no error.
// Bracket balance and operator support are not checked here; those are
// Evaluate's concern.
func Tokenize(src io.RuneScanner) ([]Token, error) {
	l := &lexer{src: src, rune: 1}
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		l.prev = tok.Kind
		toks = append(toks, tok)
	}
}

// TokenizeString is a shortcut to tokenize a string expression.
func TokenizeString(src string) ([]Token, error) {
	return Tokenize(strings.NewReader(src))
}

// next scans one token, skipping whitespace. At the end of the input the
// error is io.EOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	tok := Token{Pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			tok.Pos++
			continue
		case r == '(':
			tok.Kind = TokenLeftBracket
			return tok, nil
		case r == ')':
			tok.Kind = TokenRightBracket
			return tok, nil
		case (r == '+' || r == '-') && l.prev != TokenNum:
			// Start of a signed number literal. A sign is a binary
			// operator only when a number immediately precedes it.
			l.buf.WriteRune(r)
			return l.number(tok)
		case '0' <= r && r <= '9':
			l.unreadRune()
			return l.number(tok)
		default:
			// Any other single character is an operator token. Whether
			// it is a supported operator is decided at evaluation time.
			tok.Kind = TokenOp
			tok.Sym = r
			return tok, nil
		}
	}
}

// number scans the rest of a float literal into buf and parses it.
func (l *lexer) number(tok Token) (Token, error) {
	if err := l.scanNum(); err != nil {
		return tok, err
	}
	text := l.buf.String()
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return tok, &NumberError{Col: tok.Pos, Text: text}
	}
	tok.Kind = TokenNum
	tok.Val = v
	return tok, nil
}

// scanNum appends to buf the longest run of runes that could still extend a
// floating-point literal: digits, one dot before any exponent marker, one
// e or E after at least one digit, and a sign immediately following the
// marker. The first rune outside that shape ends the run; ParseFloat then
// decides whether the run itself is a valid literal.
func (l *lexer) scanNum() error {
	var dig, dot, e, le bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch {
		case '0' <= r && r <= '9':
			if !e {
				dig = true
			}
			le = false
		case r == '.':
			if dot || e {
				l.unreadRune()
				return nil
			}
			dot = true
		case r == 'e', r == 'E':
			if !dig || e {
				l.unreadRune()
				return nil
			}
			e = true
			le = true
		case r == '+', r == '-':
			if !le {
				l.unreadRune()
				return nil
			}
			le = false
		default:
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}
