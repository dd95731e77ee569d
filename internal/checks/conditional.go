package checks

import "bashate/internal/diag"

// NonPOSIXComparison is E044: =~, < and > inside a single-bracket test.
// Only simple one-line conditionals are recognised. A line the tokenizer
// cannot split (an unclosed quote) yields nothing.
func NonPOSIXComparison(line string) (Violation, bool) {
	tokens, err := SplitWords(line, "[]=~")
	if err != nil {
		return Violation{}, false
	}

	inBracket := false
	for _, tok := range tokens {
		switch tok {
		case "[":
			inBracket = true
		case "]":
			inBracket = false
		case "=~", "<", ">":
			if inBracket {
				return violation(diag.NonPOSIXComparison), true
			}
		}
	}
	return Violation{}, false
}
