package system

import (
	"bufio"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	defaultCommentChar = '%'
	defaultEscapeChar  = '/'

	messagesCategory    = "LC_MESSAGES"
	messagesCategoryEnd = "END LC_MESSAGES"
)

// messages type is used to describe LC_MESSAGES category of a locale definition source.
type messages struct {
	found    bool
	yesExpr  string
	noExpr   string
	copyFrom string
}

// parseMessages reads LC_MESSAGES category from locale definition source in localedef format.
func parseMessages(r io.Reader) (messages, error) {
	var (
		m           messages
		commentChar = rune(defaultCommentChar)
		escapeChar  = rune(defaultEscapeChar)
		inMessages  bool
		pending     string
		lineNum     int
	)

	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineNum++

		raw := scanner.Text()

		if pending == "" {
			trimmed := strings.TrimSpace(raw)
			if trimmed == "" || strings.HasPrefix(trimmed, string(commentChar)) {
				continue
			}

			// directives may end with escape char itself, so they never continue
			switch keyword, value := splitKeyword(trimmed); keyword {
			case "comment_char":
				commentChar = firstRune(value, commentChar)

				continue
			case "escape_char":
				escapeChar = firstRune(value, escapeChar)

				continue
			}
		}

		line := pending + strings.TrimRight(raw, " \t")
		pending = ""

		if isContinued(line, escapeChar) {
			pending = strings.TrimSuffix(line, string(escapeChar))

			continue
		}

		line = strings.TrimSpace(line)

		keyword, value := splitKeyword(line)

		if !inMessages {
			if keyword == messagesCategory {
				inMessages = true
				m.found = true
			}

			continue
		}

		if line == messagesCategoryEnd {
			return m, nil
		}

		var err error

		switch keyword {
		case "yesexpr":
			m.yesExpr, err = decodeString(value, escapeChar)
		case "noexpr":
			m.noExpr, err = decodeString(value, escapeChar)
		case "copy":
			m.copyFrom, err = decodeString(value, escapeChar)
		}

		if err != nil {
			return messages{}, errors.Errorf("line %d: invalid %s: %v", lineNum, keyword, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return messages{}, errors.WithMessage(err, "failed to read locale definition")
	}

	if inMessages {
		return messages{}, errors.Errorf("missing %q", messagesCategoryEnd)
	}

	return m, nil
}

func splitKeyword(line string) (string, string) {
	if line == messagesCategoryEnd {
		return line, ""
	}

	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}

	return line[:i], strings.TrimSpace(line[i+1:])
}

// isContinued reports whether line ends with an odd number of escape chars.
func isContinued(line string, escapeChar rune) bool {
	count := 0

	for _, r := range slices.Backward([]rune(line)) {
		if r != escapeChar {
			break
		}

		count++
	}

	return count%2 == 1
}

func firstRune(value string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(value)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}

	return r
}

// decodeString decodes quoted localedef string with <Uxxxx> symbols and escaped characters.
func decodeString(value string, escapeChar rune) (string, error) {
	if len(value) < 2 || value[0] != '"' {
		return "", errors.Errorf("expected quoted string, got %q", value)
	}

	var sb strings.Builder

	runes := []rune(value[1:])

	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; {
		case r == escapeChar:
			if i+1 >= len(runes) {
				return "", errors.New("unterminated escape sequence")
			}

			i++
			sb.WriteRune(runes[i])
		case r == '<':
			end := i + 1
			for end < len(runes) && runes[end] != '>' {
				end++
			}

			if end >= len(runes) {
				return "", errors.New("unterminated symbolic name")
			}

			decoded, err := decodeSymbol(string(runes[i+1 : end]))
			if err != nil {
				return "", err
			}

			sb.WriteRune(decoded)

			i = end
		case r == '"':
			if rest := strings.TrimSpace(string(runes[i+1:])); rest != "" {
				return "", errors.Errorf("unexpected %q after string", rest)
			}

			return sb.String(), nil
		default:
			sb.WriteRune(r)
		}
	}

	return "", errors.New("unterminated string")
}

func decodeSymbol(symbol string) (rune, error) {
	if len(symbol) != 5 && len(symbol) != 9 || symbol[0] != 'U' {
		return 0, errors.Errorf("unsupported symbolic name <%s>", symbol)
	}

	code, err := strconv.ParseUint(symbol[1:], 16, 32)
	if err != nil || !utf8.ValidRune(rune(code)) {
		return 0, errors.Errorf("invalid code point <%s>", symbol)
	}

	return rune(code), nil
}
