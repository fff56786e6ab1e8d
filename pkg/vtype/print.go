package vtype

import "strings"

// Print renders t in the textual grammar. Named types print as a
// parenthesized signature `(name = anon-type attr*)` so that the result is
// self-contained: it never depends on an external symbol table to parse
// back, including at every nesting level.
func Print(t Type) string {
	if t.Name() != "" {
		return "(" + PrintSignature(t) + ")"
	}
	return printAnonBody(t) + printAttrs(t.Attributes())
}

// PrintSignature renders t's definition as `name = anon-type attr*`, with no
// enclosing parentheses. It is meant for declaring a named type at the top
// of a schema, as opposed to referencing one inline.
func PrintSignature(t Type) string {
	return t.Name() + " = " + printAnonBody(t) + printAttrs(t.Attributes())
}

func printAnonBody(t Type) string {
	switch t.Kind() {
	case KindNone:
		return "none"
	case KindBool:
		return "bool"
	case KindInteger:
		return "int"
	case KindCount:
		return "count"
	case KindReal:
		return "real"
	case KindDuration:
		return "duration"
	case KindTime:
		return "time"
	case KindString:
		return "string"
	case KindPattern:
		return "pattern"
	case KindAddress:
		return "addr"
	case KindSubnet:
		return "subnet"
	case KindPort:
		return "port"
	case KindEnum:
		return "enum {" + strings.Join(t.EnumNames(), ", ") + "}"
	case KindVector:
		return "vector<" + Print(t.Elem()) + ">"
	case KindSet:
		return "set<" + Print(t.Elem()) + ">"
	case KindMap:
		return "map<" + Print(t.Key()) + ", " + Print(t.Value()) + ">"
	case KindRecord:
		fields := make([]string, len(t.Fields()))
		for i, f := range t.Fields() {
			fields[i] = printIdentOrQuoted(f.Name) + ": " + Print(f.Type)
		}
		return "record {" + strings.Join(fields, ", ") + "}"
	case KindAlias:
		return "alias<" + Print(t.Elem()) + ">"
	default:
		return "invalid"
	}
}

func printAttrs(attrs []Attribute) string {
	var b strings.Builder
	for _, a := range attrs {
		b.WriteString(" #")
		b.WriteString(a.Key)
		if a.HasValue {
			b.WriteString("=")
			b.WriteString(printQuotedOrUnquoted(a.Value))
		}
	}
	return b.String()
}

func isSimpleIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func printIdentOrQuoted(s string) string {
	if isSimpleIdent(s) {
		return s
	}
	return quoteString(s)
}

func printQuotedOrUnquoted(s string) string {
	if isSimpleIdent(s) {
		return s
	}
	return quoteString(s)
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
