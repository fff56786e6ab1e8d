package vtype

import (
	"strings"

	"github.com/vastcore/vast/pkg/vasterr"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokQuoted
	tokPunct
)

type token struct {
	kind tokenKind
	text string
}

// lex tokenizes the textual type grammar: identifiers/keywords, quoted
// strings, and the punctuation '<', '>', '{', '}', ',', ':', '#', '=', '(',
// ')'.
func lex(input string) ([]token, error) {
	var toks []token
	r := []rune(input)
	i, n := 0, len(r)
	for i < n {
		c := r[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case strings.ContainsRune("<>{},:#=()", c):
			toks = append(toks, token{tokPunct, string(c)})
			i++
		case c == '"':
			j := i + 1
			var b strings.Builder
			closed := false
			for j < n {
				if r[j] == '\\' && j+1 < n {
					b.WriteRune(r[j+1])
					j += 2
					continue
				}
				if r[j] == '"' {
					closed = true
					j++
					break
				}
				b.WriteRune(r[j])
				j++
			}
			if !closed {
				return nil, vasterr.New(vasterr.SyntaxError, "unterminated quoted string")
			}
			toks = append(toks, token{tokQuoted, b.String()})
			i = j
		case isIdentRune(c, true):
			j := i + 1
			for j < n && isIdentRune(r[j], false) {
				j++
			}
			toks = append(toks, token{tokIdent, string(r[i:j])})
			i = j
		default:
			return nil, vasterr.New(vasterr.SyntaxError, "unexpected character '"+string(c)+"'")
		}
	}
	return toks, nil
}

func isIdentRune(c rune, first bool) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_', c == '-':
		return true
	case c >= '0' && c <= '9':
		return !first
	default:
		return false
	}
}

var anonKeywords = map[string]bool{
	"none": true, "bool": true, "int": true, "count": true, "real": true,
	"duration": true, "time": true, "string": true, "pattern": true,
	"addr": true, "subnet": true, "port": true, "enum": true, "vector": true,
	"set": true, "map": true, "record": true, "alias": true,
}

type parser struct {
	toks   []token
	pos    int
	symtab map[string]Type
}

func (p *parser) peek() token {
	if p.pos >= len(p.toks) {
		return token{kind: tokEOF}
	}
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) expectPunct(s string) error {
	t := p.next()
	if t.kind != tokPunct || t.text != s {
		return vasterr.New(vasterr.SyntaxError, "expected '"+s+"', got '"+t.text+"'")
	}
	return nil
}

// Parse parses s against the textual type grammar. symtab resolves bare
// identifiers referencing an already-known named type; it may be nil.
func Parse(s string, symtab map[string]Type) (Type, error) {
	toks, err := lex(s)
	if err != nil {
		return Type{}, err
	}
	p := &parser{toks: toks, symtab: symtab}
	t, err := p.parseType()
	if err != nil {
		return Type{}, err
	}
	if p.peek().kind != tokEOF {
		return Type{}, vasterr.New(vasterr.SyntaxError, "unexpected trailing input: '"+p.peek().text+"'")
	}
	return t, nil
}

func (p *parser) parseType() (Type, error) {
	tok := p.peek()
	switch {
	case tok.kind == tokPunct && tok.text == "(":
		return p.parseSignature()
	case tok.kind == tokIdent && anonKeywords[tok.text]:
		return p.parseAnonType()
	case tok.kind == tokIdent:
		p.next()
		if p.symtab != nil {
			if t, ok := p.symtab[tok.text]; ok {
				return t, nil
			}
		}
		return Type{}, vasterr.New(vasterr.UnknownSymbol, "unknown type identifier: "+tok.text)
	default:
		return Type{}, vasterr.New(vasterr.SyntaxError, "expected a type, got '"+tok.text+"'")
	}
}

// parseSignature parses '(' identifier '=' anon-type attr* ')'.
func (p *parser) parseSignature() (Type, error) {
	if err := p.expectPunct("("); err != nil {
		return Type{}, err
	}
	name := p.next()
	if name.kind != tokIdent {
		return Type{}, vasterr.New(vasterr.SyntaxError, "expected a type name, got '"+name.text+"'")
	}
	if err := p.expectPunct("="); err != nil {
		return Type{}, err
	}
	body, err := p.parseAnonBody()
	if err != nil {
		return Type{}, err
	}
	attrs, err := p.parseAttrs()
	if err != nil {
		return Type{}, err
	}
	if err := p.expectPunct(")"); err != nil {
		return Type{}, err
	}
	return body.WithName(name.text).WithAttributes(attrs), nil
}

// parseAnonType parses an anon-type together with its own trailing
// attributes, when it appears outside of a signature.
func (p *parser) parseAnonType() (Type, error) {
	body, err := p.parseAnonBody()
	if err != nil {
		return Type{}, err
	}
	attrs, err := p.parseAttrs()
	if err != nil {
		return Type{}, err
	}
	return body.WithAttributes(attrs), nil
}

func (p *parser) parseAnonBody() (Type, error) {
	tok := p.next()
	if tok.kind != tokIdent || !anonKeywords[tok.text] {
		return Type{}, vasterr.New(vasterr.SyntaxError, "expected an anonymous type keyword, got '"+tok.text+"'")
	}
	switch tok.text {
	case "none":
		return None(), nil
	case "bool":
		return Bool(), nil
	case "int":
		return Integer(), nil
	case "count":
		return Count(), nil
	case "real":
		return Real(), nil
	case "duration":
		return Duration(), nil
	case "time":
		return Time(), nil
	case "string":
		return Str(), nil
	case "pattern":
		return Pattern(), nil
	case "addr":
		return Address(), nil
	case "subnet":
		return Subnet(), nil
	case "port":
		return Port(), nil
	case "enum":
		return p.parseEnum()
	case "vector":
		return p.parseUnary(Vector)
	case "set":
		return p.parseUnary(Set)
	case "map":
		return p.parseMap()
	case "record":
		return p.parseRecord()
	case "alias":
		return p.parseUnary(Alias)
	}
	return Type{}, vasterr.New(vasterr.SyntaxError, "unreachable: unknown anon keyword '"+tok.text+"'")
}

func (p *parser) parseEnum() (Type, error) {
	if err := p.expectPunct("{"); err != nil {
		return Type{}, err
	}
	var names []string
	for {
		tok := p.next()
		if tok.kind != tokIdent {
			return Type{}, vasterr.New(vasterr.SyntaxError, "expected an enum member name, got '"+tok.text+"'")
		}
		names = append(names, tok.text)
		if p.peek().kind == tokPunct && p.peek().text == "," {
			p.next()
			continue
		}
		break
	}
	if err := p.expectPunct("}"); err != nil {
		return Type{}, err
	}
	return Enum(names...), nil
}

func (p *parser) parseUnary(ctor func(Type) Type) (Type, error) {
	if err := p.expectPunct("<"); err != nil {
		return Type{}, err
	}
	elem, err := p.parseType()
	if err != nil {
		return Type{}, err
	}
	if err := p.expectPunct(">"); err != nil {
		return Type{}, err
	}
	return ctor(elem), nil
}

func (p *parser) parseMap() (Type, error) {
	if err := p.expectPunct("<"); err != nil {
		return Type{}, err
	}
	key, err := p.parseType()
	if err != nil {
		return Type{}, err
	}
	if err := p.expectPunct(","); err != nil {
		return Type{}, err
	}
	value, err := p.parseType()
	if err != nil {
		return Type{}, err
	}
	if err := p.expectPunct(">"); err != nil {
		return Type{}, err
	}
	return Map(key, value), nil
}

func (p *parser) parseRecord() (Type, error) {
	if err := p.expectPunct("{"); err != nil {
		return Type{}, err
	}
	var fields []Field
	for {
		f, err := p.parseField()
		if err != nil {
			return Type{}, err
		}
		fields = append(fields, f)
		if p.peek().kind == tokPunct && p.peek().text == "," {
			p.next()
			continue
		}
		break
	}
	if err := p.expectPunct("}"); err != nil {
		return Type{}, err
	}
	return Record(fields...), nil
}

func (p *parser) parseField() (Field, error) {
	name, err := p.parseIdentOrQuoted()
	if err != nil {
		return Field{}, err
	}
	if err := p.expectPunct(":"); err != nil {
		return Field{}, err
	}
	t, err := p.parseType()
	if err != nil {
		return Field{}, err
	}
	return Field{Name: name, Type: t}, nil
}

func (p *parser) parseIdentOrQuoted() (string, error) {
	tok := p.next()
	if tok.kind == tokIdent || tok.kind == tokQuoted {
		return tok.text, nil
	}
	return "", vasterr.New(vasterr.SyntaxError, "expected a name, got '"+tok.text+"'")
}

func (p *parser) parseAttrs() ([]Attribute, error) {
	var attrs []Attribute
	for p.peek().kind == tokPunct && p.peek().text == "#" {
		p.next()
		key, err := p.parseIdentOrQuoted()
		if err != nil {
			return nil, err
		}
		attr := Attribute{Key: key}
		if p.peek().kind == tokPunct && p.peek().text == "=" {
			p.next()
			val, err := p.parseIdentOrQuoted()
			if err != nil {
				return nil, err
			}
			attr.Value = val
			attr.HasValue = true
		}
		attrs = append(attrs, attr)
	}
	return attrs, nil
}
