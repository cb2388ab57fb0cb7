package embedder

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
)

// decodeArray extracts the byte values of the array named sym from definitions text.
func decodeArray(t *testing.T, defs, sym string) []byte {
	t.Helper()
	prefix := "const unsigned char " + sym + "["
	start := strings.Index(defs, prefix)
	if start < 0 {
		t.Fatalf("array %s not found", sym)
	}
	body := defs[start:]
	open := strings.Index(body, "{")
	end := strings.Index(body, "};")
	if open < 0 || end < 0 {
		t.Fatalf("array %s is not terminated", sym)
	}

	var out []byte
	for _, field := range strings.Split(body[open+1:end], ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil || v < 0 || v > 255 {
			t.Fatalf("array %s: bad literal %q", sym, field)
		}
		out = append(out, byte(v))
	}
	return out
}

func emit(t *testing.T, declName string, arrays map[string][]byte, order []string) (string, string) {
	t.Helper()
	var defs, decls bytes.Buffer
	em := NewEmitter(&defs, &decls)
	if err := em.Begin(declName); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	for _, sym := range order {
		if err := em.Add(sym, arrays[sym]); err != nil {
			t.Fatalf("Add(%s) failed: %v", sym, err)
		}
	}
	if err := em.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	return defs.String(), decls.String()
}

func TestEmitter_SoundExample(t *testing.T) {
	defs, decls := emit(t, "sound.h", map[string][]byte{"sound": make([]byte, 20)}, []string{"sound"})

	wantDecls := "#pragma once\nextern const unsigned char sound[20];\n"
	if decls != wantDecls {
		t.Errorf("declarations = %q, want %q", decls, wantDecls)
	}

	wantDefs := "#include <sound.h>\n" +
		"const unsigned char sound[20] = {\n" +
		"    " + strings.Repeat("  0, ", 16) + "\n" +
		"    " + strings.Repeat("  0, ", 4) + "\n" +
		"};\n"
	if defs != wantDefs {
		t.Errorf("definitions = %q, want %q", defs, wantDefs)
	}
}

func TestEmitter_ValueFormatting(t *testing.T) {
	defs, _ := emit(t, "x.h", map[string][]byte{"x": {0, 7, 42, 255}}, []string{"x"})

	want := "    " + "  0, " + "  7, " + " 42, " + "255, " + "\n};\n"
	if !strings.HasSuffix(defs, want) {
		t.Errorf("definitions = %q, want suffix %q", defs, want)
	}
}

func TestEmitter_Empty(t *testing.T) {
	defs, decls := emit(t, "empty.h", nil, nil)
	if decls != "#pragma once\n" {
		t.Errorf("declarations = %q", decls)
	}
	if defs != "#include <empty.h>\n" {
		t.Errorf("definitions = %q", defs)
	}
}

func TestEmitter_EmptyArray(t *testing.T) {
	defs, decls := emit(t, "e.h", map[string][]byte{"e": {}}, []string{"e"})
	if !strings.Contains(decls, "extern const unsigned char e[0];\n") {
		t.Errorf("declarations = %q", decls)
	}
	if !strings.HasSuffix(defs, "const unsigned char e[0] = {\n};\n") {
		t.Errorf("definitions = %q", defs)
	}
}

func TestEmitter_LineWrap(t *testing.T) {
	for _, n := range []int{1, 15, 16, 17, 32, 33, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			data := make([]byte, n)
			for i := range data {
				data[i] = byte(i * 7)
			}
			defs, _ := emit(t, "d.h", map[string][]byte{"d": data}, []string{"d"})

			lines := strings.Split(strings.TrimSuffix(defs, "\n"), "\n")
			// include, header, body..., terminator
			body := lines[2 : len(lines)-1]
			wantLines := (n + ValuesPerLine - 1) / ValuesPerLine
			if len(body) != wantLines {
				t.Fatalf("got %d body lines, want %d", len(body), wantLines)
			}
			for i, line := range body {
				if !strings.HasPrefix(line, "    ") {
					t.Errorf("line %d not indented: %q", i, line)
				}
				want := ValuesPerLine
				if i == len(body)-1 && n%ValuesPerLine != 0 {
					want = n % ValuesPerLine
				}
				if got := strings.Count(line, ","); got != want {
					t.Errorf("line %d has %d values, want %d", i, got, want)
				}
			}
			if lines[len(lines)-1] != "};" {
				t.Errorf("last line = %q, want \"};\"", lines[len(lines)-1])
			}
		})
	}
}

func TestEmitter_RoundTrip(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	arrays := map[string][]byte{
		"all":   all,
		"small": {1, 2, 3},
		"zero":  {},
	}
	order := []string{"small", "all", "zero"}
	defs, decls := emit(t, "rt.h", arrays, order)

	for _, sym := range order {
		got := decodeArray(t, defs, sym)
		if !bytes.Equal(got, arrays[sym]) {
			t.Errorf("%s: decoded %v, want %v", sym, got, arrays[sym])
		}
		decl := fmt.Sprintf("extern const unsigned char %s[%d];", sym, len(arrays[sym]))
		if !strings.Contains(decls, decl) {
			t.Errorf("declarations missing %q", decl)
		}
	}
}

// failWriter accepts limit bytes, then fails every write.
type failWriter struct {
	limit int
	err   error
}

func (w *failWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		n := w.limit
		w.limit = 0
		return n, w.err
	}
	w.limit -= len(p)
	return len(p), nil
}

func TestEmitter_WriteErrors(t *testing.T) {
	errFull := errors.New("no space left on device")
	data := bytes.Repeat([]byte{0xab}, 10000)

	t.Run("definitions", func(t *testing.T) {
		var decls bytes.Buffer
		em := NewEmitter(&failWriter{limit: 100, err: errFull}, &decls)
		err := em.Begin("x.h")
		if err == nil {
			err = em.Add("x", data)
		}
		if err == nil {
			err = em.Flush()
		}
		if !errors.Is(err, errFull) {
			t.Errorf("error = %v, want %v", err, errFull)
		}
	})

	t.Run("declarations", func(t *testing.T) {
		var defs bytes.Buffer
		em := NewEmitter(&defs, &failWriter{limit: 0, err: errFull})
		if err := em.Begin("x.h"); err != nil {
			t.Fatalf("Begin failed before flush: %v", err)
		}
		if err := em.Add("x", []byte{1}); err != nil {
			t.Fatalf("Add failed before flush: %v", err)
		}
		if err := em.Flush(); !errors.Is(err, errFull) {
			t.Errorf("Flush error = %v, want %v", err, errFull)
		}
	})
}
