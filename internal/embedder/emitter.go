package embedder

import (
	"bufio"
	"fmt"
	"io"
)

// ValuesPerLine is the number of byte literals written on each line of an array body.
const ValuesPerLine = 16

// literals holds the rendered form of every byte value ("%3d, ").
var literals = func() [256]string {
	var t [256]string
	for i := range t {
		t[i] = fmt.Sprintf("%3d, ", i)
	}
	return t
}()

// Emitter writes the declarations and definitions text for a sequence of embedded arrays.
type Emitter struct {
	defs  *bufio.Writer
	decls *bufio.Writer
}

// NewEmitter returns an Emitter writing definitions to defs and declarations to decls.
func NewEmitter(defs, decls io.Writer) *Emitter {
	return &Emitter{
		defs:  bufio.NewWriter(defs),
		decls: bufio.NewWriter(decls),
	}
}

// Begin writes the leading directives. declarationsName is the name the
// definitions file uses to include the declarations file.
func (e *Emitter) Begin(declarationsName string) error {
	if _, err := e.decls.WriteString("#pragma once\n"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(e.defs, "#include <%s>\n", declarationsName)
	return err
}

// Add appends the declaration and definition of one array.
func (e *Emitter) Add(symbol string, data []byte) error {
	if _, err := fmt.Fprintf(e.decls, "extern const unsigned char %s[%d];\n", symbol, len(data)); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(e.defs, "const unsigned char %s[%d] = {", symbol, len(data)); err != nil {
		return err
	}
	for i, b := range data {
		if i%ValuesPerLine == 0 {
			e.defs.WriteString("\n    ")
		}
		e.defs.WriteString(literals[b])
	}
	// bufio.Writer errors are sticky, so this reports any failure from the loop.
	_, err := e.defs.WriteString("\n};\n")
	return err
}

// Flush writes any buffered text to the underlying writers.
func (e *Emitter) Flush() error {
	if err := e.decls.Flush(); err != nil {
		return err
	}
	return e.defs.Flush()
}
