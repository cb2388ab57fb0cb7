package embedder

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// output is one generated file. Unless written in place, content goes to a
// temporary sibling that replaces the destination on commit.
type output struct {
	path string
	tmp  string
	f    *os.File
	done bool
}

func createOutput(path string, inPlace bool) (*output, error) {
	o := &output{path: path}
	if inPlace {
		f, err := os.Create(path)
		if err != nil {
			return nil, accessError("create", path, err)
		}
		o.f = f
		return o, nil
	}

	dir, base := filepath.Split(path)
	o.tmp = filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(o.tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	if err != nil {
		return nil, accessError("create", path, err)
	}
	// Keep the permissions of the file being replaced.
	if fi, err := os.Stat(path); err == nil {
		if err := f.Chmod(fi.Mode().Perm()); err != nil {
			f.Close()
			os.Remove(o.tmp)
			return nil, accessError("create", path, err)
		}
	}
	o.f = f
	return o, nil
}

func (o *output) Write(p []byte) (int, error) {
	n, err := o.f.Write(p)
	if err != nil {
		return n, accessError("write", o.path, err)
	}
	return n, nil
}

// commit closes the file and moves it into place.
func (o *output) commit() error {
	o.done = true
	if err := o.f.Close(); err != nil {
		o.discard()
		return accessError("write", o.path, err)
	}
	if o.tmp == "" {
		return nil
	}
	if err := os.Rename(o.tmp, o.path); err != nil {
		o.discard()
		return accessError("replace", o.path, err)
	}
	return nil
}

// close releases the file if it was not committed. A temporary file is
// removed; an in-place file keeps whatever was written.
func (o *output) close() {
	if o.done {
		return
	}
	o.done = true
	o.f.Close()
	o.discard()
}

func (o *output) discard() {
	if o.tmp != "" {
		os.Remove(o.tmp)
	}
}
