package lisp

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
)

// FormatString returns the printed representation of v.  Reading the result
// produces a value Equal to v for all values except functions.
func FormatString(v *Cell) string {
	var buf strings.Builder
	_, _ = Format(&buf, v)
	return buf.String()
}

// Format writes the printed representation of v to w.
func Format(w io.Writer, v *Cell) (int, error) {
	f := &formatter{w: w}
	f.cell(v)
	return f.n, f.err
}

// Display writes v to w the way print shows it: strings are written raw and
// everything else as Format would.
func Display(w io.Writer, v *Cell) (int, error) {
	if v != nil && v.Type == LString {
		return io.WriteString(w, v.Str)
	}
	return Format(w, v)
}

// FormatNumber renders x in the shortest decimal form that reads back as x.
func FormatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

type formatter struct {
	w   io.Writer
	n   int
	err error
}

func (f *formatter) write(s string) {
	if f.err != nil {
		return
	}
	n, err := io.WriteString(f.w, s)
	f.n += n
	f.err = err
}

func (f *formatter) cell(v *Cell) {
	if v == nil {
		f.write(NilSymbol)
		return
	}
	switch v.Type {
	case LNil:
		f.write(NilSymbol)
	case LNumber:
		f.write(FormatNumber(v.Num))
	case LSymbol:
		f.write(v.Str)
	case LString:
		f.write(`"` + stringEscaper.Replace(v.Str) + `"`)
	case LCons:
		f.list(v)
	case LSubr:
		f.write(fmt.Sprintf("<subr: %s>", v.Str))
	case LFsubr:
		f.write(fmt.Sprintf("<fsubr: %s>", v.Str))
	case LFunc:
		f.write(fmt.Sprintf("<func: %s>", v.Str))
	default:
		panic(fmt.Sprintf("unknown cell type: %v", v.Type))
	}
}

func (f *formatter) list(v *Cell) {
	f.write("(")
	it := NewListIterator(v)
	for i := 0; it.Next(); i++ {
		if i > 0 {
			f.write(" ")
		}
		f.cell(it.Value())
	}
	if it.Err() != nil {
		f.write(" . ")
		f.cell(it.Rest())
	}
	f.write(")")
}
