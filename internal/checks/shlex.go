package checks

import (
	"errors"
	"strings"
)

// ErrNoClosingQuotation is returned by SplitWords for an unterminated quote.
var ErrNoClosingQuotation = errors.New("no closing quotation")

const (
	wordRunes    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"
	spaceRunes   = " \t\r\n"
	quoteRunes   = `'"`
	commentRunes = "#"
)

type lexState uint8

const (
	lexSpace lexState = iota
	lexWord
	lexQuote
)

// SplitWords breaks line into shell-ish words the way a classic, non-POSIX
// shell lexer does:
//
//   - a word is a run of letters, digits, '_' and any of extra;
//   - quoted text is one token and keeps its quotes;
//   - '#' outside quotes ends the line;
//   - every other character is a token of its own.
//
// A quote met inside a word does not open a quoted section, it just becomes
// part of the word. There are no escapes.
func SplitWords(line, extra string) ([]string, error) {
	var (
		tokens []string
		tok    strings.Builder
		state  = lexSpace
		quote  rune
	)
	isWord := func(r rune) bool {
		return strings.ContainsRune(wordRunes, r) || strings.ContainsRune(extra, r)
	}
	flush := func() {
		if tok.Len() > 0 {
			tokens = append(tokens, tok.String())
			tok.Reset()
		}
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch state {
		case lexQuote:
			tok.WriteRune(r)
			if r == quote {
				flush()
				state = lexSpace
			}
		case lexWord:
			switch {
			case strings.ContainsRune(spaceRunes, r):
				flush()
				state = lexSpace
			case strings.ContainsRune(commentRunes, r):
				flush()
				return tokens, nil
			case isWord(r), strings.ContainsRune(quoteRunes, r):
				tok.WriteRune(r)
			default:
				// символ не из слова: закрываем слово и перечитываем его
				flush()
				state = lexSpace
				i--
			}
		default:
			switch {
			case strings.ContainsRune(spaceRunes, r):
			case strings.ContainsRune(commentRunes, r):
				return tokens, nil
			case isWord(r):
				tok.WriteRune(r)
				state = lexWord
			case strings.ContainsRune(quoteRunes, r):
				tok.WriteRune(r)
				quote = r
				state = lexQuote
			default:
				tokens = append(tokens, string(r))
			}
		}
	}
	if state == lexQuote {
		return nil, ErrNoClosingQuotation
	}
	flush()
	return tokens, nil
}
