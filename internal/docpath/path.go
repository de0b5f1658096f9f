package docpath

import (
	"strconv"
	"strings"
)

// TokenKind distinguishes mapping keys from sequence indices.
type TokenKind int

const (
	// KeyToken addresses a mapping entry.
	KeyToken TokenKind = iota
	// IndexToken addresses a sequence position.
	IndexToken
)

// Token is one step of a Path.
type Token struct {
	Kind  TokenKind
	Key   string
	Index int
}

// Path is a parsed sequence of tokens from the document root.
type Path []Token

// Key returns a key token.
func Key(k string) Token {
	return Token{Kind: KeyToken, Key: k}
}

// Index returns an index token.
func Index(i int) Token {
	return Token{Kind: IndexToken, Index: i}
}

// Parse tokenizes a path such as "workExperience[0].responsibilities[2]".
//
// Parts are separated by '.', and each part is an optional key followed by any
// number of "[n]" suffixes. Empty parts are skipped. A part that looks numeric
// without brackets ("a.0") stays a key token.
func Parse(path string) (Path, error) {
	tokens := make(Path, 0, strings.Count(path, ".")+strings.Count(path, "[")+1)

	for _, part := range strings.Split(path, ".") {
		open := strings.IndexByte(part, '[')
		key := part
		if open >= 0 {
			key = part[:open]
		}
		if strings.ContainsRune(key, ']') {
			return nil, malformed(path, "unexpected ']'")
		}
		if key != "" {
			tokens = append(tokens, Key(key))
		}
		if open < 0 {
			continue
		}

		rest := part[open:]
		for rest != "" {
			if rest[0] != '[' {
				return nil, malformed(path, "unexpected text after index")
			}
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, malformed(path, "unterminated index")
			}
			idx, err := parseIndex(rest[1:end])
			if err != nil {
				return nil, malformed(path, err.Error())
			}
			tokens = append(tokens, Index(idx))
			rest = rest[end+1:]
		}
	}

	return tokens, nil
}

// String renders the path in canonical form.
func (p Path) String() string {
	var sb strings.Builder
	for i, tok := range p {
		switch tok.Kind {
		case IndexToken:
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(tok.Index))
			sb.WriteByte(']')
		default:
			if i > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(tok.Key)
		}
	}
	return sb.String()
}

func parseIndex(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

func malformed(path, msg string) *PathError {
	return &PathError{Path: path, Message: msg, Cause: ErrMalformedPath}
}
