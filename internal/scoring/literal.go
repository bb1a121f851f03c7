package scoring

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const listSpace = " \t\r\n"

// parseStringList reads a bracketed, comma-separated list of single- or
// double-quoted string literals. Backslash escapes follow the dataset's
// Python source: \' and \" always stand for the quote, unknown escapes are
// kept verbatim, and a trailing comma is allowed.
func parseStringList(literal string) ([]string, error) {
	rest := strings.TrimSpace(literal)
	if !strings.HasPrefix(rest, "[") || !strings.HasSuffix(rest, "]") {
		return nil, fmt.Errorf("parse answer choices %q: not a list", literal)
	}
	rest = rest[1 : len(rest)-1]
	values := []string{}
	for {
		rest = strings.TrimLeft(rest, listSpace)
		if rest == "" {
			return values, nil
		}
		quote := rest[0]
		if quote != '\'' && quote != '"' {
			return nil, fmt.Errorf("parse answer choices %q: element %d is not a quoted string", literal, len(values))
		}
		end, err := closingQuote(rest, quote)
		if err != nil {
			return nil, fmt.Errorf("parse answer choices %q: element %d: %w", literal, len(values), err)
		}
		value, err := unescape(rest[1:end])
		if err != nil {
			return nil, fmt.Errorf("parse answer choices %q: element %d: %w", literal, len(values), err)
		}
		values = append(values, value)

		rest = strings.TrimLeft(rest[end+1:], listSpace)
		if rest == "" {
			return values, nil
		}
		if rest[0] != ',' {
			return nil, fmt.Errorf("parse answer choices %q: expected ',' after element %d", literal, len(values)-1)
		}
		rest = rest[1:]
	}
}

// closingQuote returns the index of the quote ending the literal that opens at s[0].
func closingQuote(s string, quote byte) (int, error) {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '\n':
			return 0, fmt.Errorf("newline in string")
		case quote:
			return i, nil
		}
	}
	return 0, fmt.Errorf("unterminated string")
}

func unescape(body string) (string, error) {
	if !strings.Contains(body, `\`) {
		return body, nil
	}
	var b strings.Builder
	for body != "" {
		if body[0] != '\\' {
			r, size := utf8.DecodeRuneInString(body)
			b.WriteRune(r)
			body = body[size:]
			continue
		}
		if len(body) > 1 {
			switch next := body[1]; {
			case next == '\'' || next == '"':
				b.WriteByte(next)
				body = body[2:]
				continue
			case !strings.ContainsRune(`\abfnrtvxuU01234567`, rune(next)):
				b.WriteString(body[:2])
				body = body[2:]
				continue
			}
		}
		r, _, tail, err := strconv.UnquoteChar(body, 0)
		if err != nil {
			return "", fmt.Errorf("bad escape in %q: %w", body, err)
		}
		b.WriteRune(r)
		body = tail
	}
	return b.String(), nil
}
