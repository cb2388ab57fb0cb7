// Package embedder turns binary files into C declarations and definitions
// that embed their contents as const unsigned char arrays.
//
// For every input, the declarations file receives
//
//	extern const unsigned char name[n];
//
// and the definitions file receives the matching array with the bytes written
// as decimal literals, sixteen per line. The definitions file includes the
// declarations file by its base name.
package embedder

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Options controls optional behavior of Convert. The zero value writes outputs
// atomically and emits every input as-is.
type Options struct {
	// InPlace writes directly to the destination files. A failed run then leaves
	// whatever was written so far on disk.
	InPlace bool
	// CheckSymbols rejects inputs whose derived names are not valid C
	// identifiers or collide with an earlier input.
	CheckSymbols bool
	// Progress, if set, is called after each input has been written.
	Progress func(done, total int)
}

// Convert reads every input in order and writes the definitions and
// declarations files for them. Inputs may be empty, in which case both outputs
// hold only their leading directive.
//
// Parameters:
//   - definitionsPath: The array definitions file to create or truncate.
//   - declarationsPath: The extern declarations file to create or truncate.
//   - inputs: The binary files to embed, in output order.
//   - opts: Additional conversion options.
//
// Returns:
//   - error: An *AccessError if a file cannot be read or written, or an error
//     wrapping ErrInvalidSymbol or ErrDuplicateSymbol when checking symbols.
func Convert(definitionsPath, declarationsPath string, inputs []string, opts Options) error {
	if opts.CheckSymbols {
		if err := CheckSymbols(inputs); err != nil {
			return err
		}
	}

	defs, err := createOutput(definitionsPath, opts.InPlace)
	if err != nil {
		return err
	}
	defer defs.close()

	decls, err := createOutput(declarationsPath, opts.InPlace)
	if err != nil {
		return err
	}
	defer decls.close()

	em := NewEmitter(defs, decls)
	if err := em.Begin(filepath.Base(declarationsPath)); err != nil {
		return err
	}

	var total int64
	for i, in := range inputs {
		data, err := os.ReadFile(in)
		if err != nil {
			em.Flush()
			return accessError("read", in, err)
		}

		sym := SymbolName(in)
		if err := em.Add(sym, data); err != nil {
			return err
		}
		total += int64(len(data))
		slog.Debug("Embedded input", "path", in, "symbol", sym, "bytes", len(data))

		if opts.Progress != nil {
			opts.Progress(i+1, len(inputs))
		}
	}

	if err := em.Flush(); err != nil {
		return err
	}
	if err := decls.commit(); err != nil {
		return err
	}
	if err := defs.commit(); err != nil {
		return err
	}

	slog.Info("Wrote embedded data",
		"definitions", definitionsPath,
		"declarations", declarationsPath,
		"inputs", len(inputs),
		"bytes", total)
	return nil
}
