package format

import (
	"bytes"
	"encoding/json"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteEDN writes an EDN rendering of v.
//
// Values go through JSON first so struct tags decide field names; the result
// only ever contains maps, vectors, strings, numbers, booleans and nil.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return err
	}

	var buf bytes.Buffer
	p := ednPrinter{buf: &buf, pretty: pretty}
	p.value(x, 0)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

type ednPrinter struct {
	buf    *bytes.Buffer
	pretty bool
}

func (p ednPrinter) value(v any, depth int) {
	switch t := v.(type) {
	case nil:
		p.buf.WriteString("nil")
	case bool:
		p.buf.WriteString(strconv.FormatBool(t))
	case string:
		p.buf.WriteString(strconv.Quote(t))
	case json.Number:
		p.buf.WriteString(t.String())
	case []any:
		p.open('[', len(t) == 0)
		for i, it := range t {
			p.sep(i, depth+1)
			p.value(it, depth+1)
		}
		p.close(']', len(t) == 0, depth)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		p.open('{', len(keys) == 0)
		for i, k := range keys {
			p.sep(i, depth+1)
			p.buf.WriteString(ednKeyword(k))
			p.buf.WriteByte(' ')
			p.value(t[k], depth+1)
		}
		p.close('}', len(keys) == 0, depth)
	}
}

func (p ednPrinter) open(c byte, empty bool) {
	p.buf.WriteByte(c)
	if p.pretty && !empty {
		p.buf.WriteByte('\n')
	}
}

func (p ednPrinter) sep(i, depth int) {
	if p.pretty {
		if i > 0 {
			p.buf.WriteByte('\n')
		}
		p.buf.WriteString(strings.Repeat("  ", depth))
		return
	}
	if i > 0 {
		p.buf.WriteByte(' ')
	}
}

func (p ednPrinter) close(c byte, empty bool, depth int) {
	if p.pretty && !empty {
		p.buf.WriteByte('\n')
		p.buf.WriteString(strings.Repeat("  ", depth))
	}
	p.buf.WriteByte(c)
}

// ednKeyword turns a JSON key into a keyword, e.g. "listData" -> :listData.
func ednKeyword(s string) string {
	return ":" + strings.ReplaceAll(strings.TrimSpace(s), " ", "-")
}
