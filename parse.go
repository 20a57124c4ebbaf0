package karyajson

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxDepth is the nesting depth enforced when ParseOpt.MaxDepth is
// zero. Arrays and objects each contribute one level.
const DefaultMaxDepth = 10000

// ParseOpt controls parse behavior. The zero value selects the defaults.
type ParseOpt struct {
	// MaxDepth caps container nesting. 0 means DefaultMaxDepth; a
	// negative value disables the check entirely.
	MaxDepth int
}

// Parse reads one complete JSON value from text. Trailing non-whitespace
// input after the value is an error. Failures are reported as *ParseError;
// Parse never panics and never retries.
func Parse(text string, opts ...ParseOpt) (Value, error) {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	maxDepth := opt.MaxDepth
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}
	p := &parser{in: []rune(text), maxDepth: maxDepth}

	p.skipWhitespace()
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if p.pos < len(p.in) {
		return nil, p.errf(CodeInvalidJSON, "unexpected trailing characters")
	}
	return v, nil
}

// ParseBytes is Parse for a byte slice of UTF-8 text.
func ParseBytes(data []byte, opts ...ParseOpt) (Value, error) {
	return Parse(string(data), opts...)
}

// parser holds the decoded input and a forward-only cursor. One parser
// serves exactly one Parse call; nothing is shared or reused.
type parser struct {
	in       []rune
	pos      int
	depth    int
	maxDepth int
}

func (p *parser) errf(code, format string, args ...any) *ParseError {
	return &ParseError{Code: code, Message: fmt.Sprintf(format, args...), Offset: p.pos}
}

func (p *parser) peek() (rune, bool) {
	if p.pos < len(p.in) {
		return p.in[p.pos], true
	}
	return 0, false
}

func (p *parser) next() (rune, bool) {
	c, ok := p.peek()
	if ok {
		p.pos++
	}
	return c, ok
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.in) && unicode.IsSpace(p.in[p.pos]) {
		p.pos++
	}
}

// enter tracks one level of container nesting; recursion depth equals
// JSON nesting depth, so this is the recursion bound as well.
func (p *parser) enter() *ParseError {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return p.errf(CodeMaxDepth, "max depth exceeded")
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

// parseValue dispatches on the first significant character.
func (p *parser) parseValue() (Value, *ParseError) {
	p.skipWhitespace()

	c, ok := p.peek()
	if !ok {
		return nil, p.errf(CodeInvalidJSON, "unexpected end of input")
	}
	switch {
	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return Str(s), nil
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	case c == 't' || c == 'f':
		return p.parseBoolean()
	case c == 'n':
		if err := p.expectLiteral("null"); err != nil {
			return nil, err
		}
		return Null{}, nil
	case c == '[':
		return p.parseArray()
	case c == '{':
		return p.parseObject()
	default:
		return nil, p.errf(CodeInvalidJSON, "unexpected character: %q", c)
	}
}

// parseString scans a quoted string, decoding the escape sequences the
// grammar allows. Each \uXXXX group decodes to one code unit; groups are
// not combined into surrogate pairs, and a group that is not a valid
// scalar value is rejected.
func (p *parser) parseString() (string, *ParseError) {
	if err := p.expectChar('"'); err != nil {
		return "", err
	}
	var sb []rune
	escaped := false

	for {
		c, ok := p.next()
		if !ok {
			break
		}
		if escaped {
			escaped = false
			switch c {
			case '"', '\\', '/':
				sb = append(sb, c)
			case 'b':
				sb = append(sb, '\b')
			case 'f':
				sb = append(sb, '\f')
			case 'n':
				sb = append(sb, '\n')
			case 'r':
				sb = append(sb, '\r')
			case 't':
				sb = append(sb, '\t')
			case 'u':
				r, err := p.parseUnicodeEscape()
				if err != nil {
					return "", err
				}
				sb = append(sb, r)
			default:
				return "", p.errf(CodeInvalidJSON, "invalid escape sequence: \\%c", c)
			}
			continue
		}
		switch {
		case c == '"':
			return string(sb), nil
		case c == '\\':
			escaped = true
		case unicode.IsControl(c):
			return "", p.errf(CodeInvalidJSON, "control characters are not allowed in strings")
		default:
			sb = append(sb, c)
		}
	}
	return "", p.errf(CodeInvalidJSON, "unterminated string")
}

func (p *parser) parseUnicodeEscape() (rune, *ParseError) {
	var cp rune
	for i := 0; i < 4; i++ {
		c, ok := p.next()
		if !ok {
			return 0, p.errf(CodeInvalidJSON, "unexpected end of unicode escape sequence")
		}
		d, ok := hexDigit(c)
		if !ok {
			return 0, p.errf(CodeInvalidJSON, "invalid unicode escape sequence: %q", c)
		}
		cp = cp<<4 | d
	}
	if !utf8.ValidRune(cp) {
		return 0, p.errf(CodeInvalidJSON, "invalid unicode code point: %d", cp)
	}
	return cp, nil
}

func hexDigit(c rune) (rune, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// parseNumber accumulates a literal matching the JSON number grammar and
// then disambiguates: no fraction and no exponent parses as Int, falling
// back to Float on 64-bit overflow; otherwise always Float.
func (p *parser) parseNumber() (Value, *ParseError) {
	start := p.pos
	hasFrac := false
	hasExp := false

	if c, ok := p.peek(); ok && c == '-' {
		p.pos++
	}

	// Integer part: a lone zero, or a nonzero digit run. A zero followed
	// by more digits consumes only the zero; the remainder fails later as
	// trailing input or a delimiter error.
	switch c, ok := p.peek(); {
	case ok && c == '0':
		p.pos++
	case ok && c >= '1' && c <= '9':
		for {
			c, ok := p.peek()
			if !ok || c < '0' || c > '9' {
				break
			}
			p.pos++
		}
	default:
		return nil, p.errf(CodeInvalidJSON, "invalid number format")
	}

	if c, ok := p.peek(); ok && c == '.' {
		hasFrac = true
		p.pos++
		digits := false
		for {
			c, ok := p.peek()
			if !ok || c < '0' || c > '9' {
				break
			}
			digits = true
			p.pos++
		}
		if !digits {
			return nil, p.errf(CodeInvalidJSON, "expected digits after decimal point")
		}
	}

	if c, ok := p.peek(); ok && (c == 'e' || c == 'E') {
		hasExp = true
		p.pos++
		if c, ok := p.peek(); ok && (c == '+' || c == '-') {
			p.pos++
		}
		digits := false
		for {
			c, ok := p.peek()
			if !ok || c < '0' || c > '9' {
				break
			}
			digits = true
			p.pos++
		}
		if !digits {
			return nil, p.errf(CodeInvalidJSON, "expected digits in exponent")
		}
	}

	lit := string(p.in[start:p.pos])
	if !hasFrac && !hasExp {
		if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return Int(n), nil
		}
		// Overflowing integer literals degrade to Float.
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, p.errf(CodeInvalidJSON, "invalid number: %s", lit)
	}
	return Float(f), nil
}

func (p *parser) parseBoolean() (Value, *ParseError) {
	c, _ := p.peek()
	if c == 't' {
		if err := p.expectLiteral("true"); err != nil {
			return nil, err
		}
		return Bool(true), nil
	}
	if err := p.expectLiteral("false"); err != nil {
		return nil, err
	}
	return Bool(false), nil
}

func (p *parser) parseArray() (Value, *ParseError) {
	if err := p.expectChar('['); err != nil {
		return nil, err
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	arr := Arr{}
	p.skipWhitespace()
	if c, ok := p.peek(); ok && c == ']' {
		p.pos++
		return arr, nil
	}

	for {
		p.skipWhitespace()
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
		p.skipWhitespace()

		c, ok := p.next()
		if !ok {
			return nil, p.errf(CodeInvalidJSON, "unterminated array")
		}
		switch c {
		case ',':
		case ']':
			return arr, nil
		default:
			return nil, p.errf(CodeInvalidJSON, "expected ',' or ']', found %q", c)
		}
	}
}

func (p *parser) parseObject() (Value, *ParseError) {
	if err := p.expectChar('{'); err != nil {
		return nil, err
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	obj := Obj{}
	p.skipWhitespace()
	if c, ok := p.peek(); ok && c == '}' {
		p.pos++
		return obj, nil
	}

	for {
		p.skipWhitespace()
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}
		p.skipWhitespace()
		if err := p.expectChar(':'); err != nil {
			return nil, err
		}
		p.skipWhitespace()
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		// Last write wins on duplicate keys.
		obj[key] = v
		p.skipWhitespace()

		c, ok := p.next()
		if !ok {
			return nil, p.errf(CodeInvalidJSON, "unterminated object")
		}
		switch c {
		case ',':
		case '}':
			return obj, nil
		default:
			return nil, p.errf(CodeInvalidJSON, "expected ',' or '}', found %q", c)
		}
	}
}

func (p *parser) expectChar(expected rune) *ParseError {
	c, ok := p.next()
	if !ok {
		return p.errf(CodeInvalidJSON, "expected %q, found end of input", expected)
	}
	if c != expected {
		return p.errf(CodeInvalidJSON, "expected %q, found %q", expected, c)
	}
	return nil
}

func (p *parser) expectLiteral(literal string) *ParseError {
	for _, expected := range literal {
		c, ok := p.next()
		if !ok {
			return p.errf(CodeInvalidJSON, "expected %q, found end of input", expected)
		}
		if c != expected {
			return p.errf(CodeInvalidJSON, "expected %q, found %q", expected, c)
		}
	}
	return nil
}
