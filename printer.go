package logsniff

import (
	"errors"
	"fmt"

	"pkt.systems/logsniff/internal/ansi"
)

// printer re-emits one already validated JSON value, either indented or
// compact, wrapping each token in its palette colour. Object keys are written
// in input order; nothing is decoded, so strings and numbers keep their exact
// source spelling.
type printer struct {
	src     []byte
	pos     int
	buf     []byte
	pal     ColorPalette
	indent  string
	compact bool
}

var errInvalidJSON = errors.New("json: invalid")

func (p *printer) reset(src []byte, pal ColorPalette, indent string, compact bool) {
	p.src = src
	p.pos = 0
	p.buf = p.buf[:0]
	p.pal = pal
	p.indent = indent
	p.compact = compact
}

func (p *printer) clear() {
	p.src = nil
	p.pos = 0
	p.pal = ColorPalette{}
	p.indent = ""
	p.compact = false
	if cap(p.buf) > maxScratchCap {
		p.buf = nil
	} else {
		p.buf = p.buf[:0]
	}
}

func (p *printer) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d", errInvalidJSON, fmt.Sprintf(format, args...), p.pos)
}

// print formats the whole source value into p.buf.
func (p *printer) print() error {
	b, ok := p.readNonSpace()
	if !ok {
		return p.errorf("empty input")
	}
	if err := p.value(0, b); err != nil {
		return err
	}
	if _, ok := p.readNonSpace(); ok {
		return p.errorf("trailing data")
	}
	return nil
}

func (p *printer) value(depth int, first byte) error {
	switch first {
	case '{':
		return p.object(depth)
	case '[':
		return p.array(depth)
	case '"':
		return p.str(p.pal.String)
	case 't', 'f', 'n':
		return p.literal(first)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return p.number()
	default:
		return p.errorf("unexpected character %q", first)
	}
}

func (p *printer) object(depth int) error {
	p.styledByte(p.pal.Brackets, '{')
	b, ok := p.readNonSpace()
	if !ok {
		return p.errorf("unterminated object")
	}
	if b == '}' {
		p.styledByte(p.pal.Brackets, '}')
		return nil
	}
	p.newline(depth + 1)
	for {
		if b != '"' {
			return p.errorf("expected object key")
		}
		if err := p.str(p.pal.Key); err != nil {
			return err
		}
		if b, ok = p.readNonSpace(); !ok || b != ':' {
			return p.errorf("expected ':' after object key")
		}
		if p.compact {
			p.styled(p.pal.Punctuation, ":")
		} else {
			p.styled(p.pal.Punctuation, ": ")
		}
		if b, ok = p.readNonSpace(); !ok {
			return p.errorf("missing object value")
		}
		if err := p.value(depth+1, b); err != nil {
			return err
		}
		if b, ok = p.readNonSpace(); !ok {
			return p.errorf("unterminated object")
		}
		switch b {
		case ',':
			p.styled(p.pal.Punctuation, ",")
			p.newline(depth + 1)
			if b, ok = p.readNonSpace(); !ok {
				return p.errorf("unterminated object")
			}
		case '}':
			p.newline(depth)
			p.styledByte(p.pal.Brackets, '}')
			return nil
		default:
			return p.errorf("expected ',' or '}'")
		}
	}
}

func (p *printer) array(depth int) error {
	p.styledByte(p.pal.Brackets, '[')
	b, ok := p.readNonSpace()
	if !ok {
		return p.errorf("unterminated array")
	}
	if b == ']' {
		p.styledByte(p.pal.Brackets, ']')
		return nil
	}
	p.newline(depth + 1)
	for {
		if err := p.value(depth+1, b); err != nil {
			return err
		}
		if b, ok = p.readNonSpace(); !ok {
			return p.errorf("unterminated array")
		}
		switch b {
		case ',':
			p.styled(p.pal.Punctuation, ",")
			p.newline(depth + 1)
			if b, ok = p.readNonSpace(); !ok {
				return p.errorf("unterminated array")
			}
		case ']':
			p.newline(depth)
			p.styledByte(p.pal.Brackets, ']')
			return nil
		default:
			return p.errorf("expected ',' or ']'")
		}
	}
}

// str copies a string token verbatim; the opening quote has been consumed.
func (p *printer) str(style string) error {
	start := p.pos - 1
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		p.pos++
		switch {
		case c == '\\':
			p.pos++
		case c == '"':
			p.styledBytes(style, p.src[start:p.pos])
			return nil
		case c < 0x20:
			return p.errorf("invalid control character in string")
		}
	}
	return p.errorf("unterminated string")
}

func (p *printer) literal(first byte) error {
	var lit, style string
	switch first {
	case 't':
		lit, style = "true", p.pal.True
	case 'f':
		lit, style = "false", p.pal.False
	default:
		lit, style = "null", p.pal.Null
	}
	start := p.pos - 1
	if len(p.src)-start < len(lit) || string(p.src[start:start+len(lit)]) != lit {
		return p.errorf("invalid literal")
	}
	p.pos = start + len(lit)
	p.styled(style, lit)
	return nil
}

func (p *printer) number() error {
	start := p.pos - 1
	for p.pos < len(p.src) && !isTerminator(p.src[p.pos]) {
		p.pos++
	}
	p.styledBytes(p.pal.Number, p.src[start:p.pos])
	return nil
}

func (p *printer) newline(depth int) {
	if p.compact {
		return
	}
	p.buf = append(p.buf, '\n')
	for range depth {
		p.buf = append(p.buf, p.indent...)
	}
}

func (p *printer) styled(style, s string) {
	if style != "" {
		p.buf = append(p.buf, style...)
	}
	p.buf = append(p.buf, s...)
	if style != "" {
		p.buf = append(p.buf, ansi.Reset...)
	}
}

func (p *printer) styledBytes(style string, b []byte) {
	if style != "" {
		p.buf = append(p.buf, style...)
	}
	p.buf = append(p.buf, b...)
	if style != "" {
		p.buf = append(p.buf, ansi.Reset...)
	}
}

func (p *printer) styledByte(style string, b byte) {
	if style != "" {
		p.buf = append(p.buf, style...)
	}
	p.buf = append(p.buf, b)
	if style != "" {
		p.buf = append(p.buf, ansi.Reset...)
	}
}

func (p *printer) readNonSpace() (byte, bool) {
	for p.pos < len(p.src) {
		b := p.src[p.pos]
		p.pos++
		if b > ' ' {
			return b, true
		}
	}
	return 0, false
}

func isTerminator(b byte) bool {
	return b <= ' ' || b == ',' || b == '}' || b == ']'
}
