// SPDX-License-Identifier: GPL-2.0-or-later

package pack

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const (
	// Separator splits an archive from an entry in a path like
	// "id1/pak0.pak:maps/start.map".
	Separator = ":"
	entrySize = 64
)

type header struct {
	ID     [4]byte
	Offset int32
	Size   int32
}

type entry struct {
	Name   [56]byte
	Offset int32
	Size   int32
}

type Pack struct {
	f     *os.File
	files map[string]*qfile
	name  string
}

type qfile struct {
	offset int64
	size   int64
}

// Open returns a io.SectionReader or os.ErrNotExist if the pak has no entry
// with the provided name.
func (p *Pack) Open(name string) (*io.SectionReader, error) {
	q, ok := p.files[name]
	if !ok {
		return nil, os.ErrNotExist
	}

	return io.NewSectionReader(p.f, q.offset, q.size), nil
}

func (p *Pack) ReadFile(name string) ([]byte, error) {
	r, err := p.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "%s%s%s", p.name, Separator, name)
	}
	return io.ReadAll(r)
}

// Names returns the sorted names of all entries with the given suffix.
func (p *Pack) Names(suffix string) []string {
	var n []string
	for name := range p.files {
		if strings.HasSuffix(strings.ToLower(name), suffix) {
			n = append(n, name)
		}
	}
	sort.Strings(n)
	return n
}

func (p *Pack) String() string {
	return p.name
}

func (p *Pack) Close() error {
	return p.f.Close()
}

func newPack(name string) (*Pack, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return &Pack{f: f, name: name}, nil
}

func (p *Pack) init() error {
	var h header
	if err := binary.Read(p.f, binary.LittleEndian, &h); err != nil {
		return err
	}
	magic := []byte("PACK")
	if !bytes.Equal(magic, h.ID[:]) {
		return errors.New("Not a pack")
	}
	r, err := p.f.Seek(int64(h.Offset), 0)
	if err != nil {
		return err
	}
	if r != int64(h.Offset) {
		return errors.New("Not long enough")
	}
	filenum := h.Size / entrySize
	p.files = make(map[string]*qfile, filenum)
	for i := int32(0); i < filenum; i++ {
		var e entry
		if err := binary.Read(p.f, binary.LittleEndian, &e); err != nil {
			return err
		}
		n := bytes.IndexByte(e.Name[:], 0)
		if n < 0 {
			n = len(e.Name)
		}
		name := string(e.Name[:n])
		if p.files[name] != nil {
			return errors.Errorf("file %s is not unique in pack", name)
		}
		p.files[name] = &qfile{
			offset: int64(e.Offset),
			size:   int64(e.Size),
		}
	}
	return nil
}

func NewPackReader(name string) (*Pack, error) {
	p, err := newPack(name)
	if err != nil {
		return nil, err
	}
	if err := p.init(); err != nil {
		p.Close()
		return nil, errors.Wrapf(err, "File %s", name)
	}
	return p, nil
}

// SplitPath splits "archive.pak:entry" into the archive and the entry name.
func SplitPath(path string) (string, string, bool) {
	i := strings.Index(strings.ToLower(path), ".pak"+Separator)
	if i < 0 {
		return "", "", false
	}
	i += len(".pak")
	return path[:i], path[i+len(Separator):], true
}

// ReadFile reads a plain file or, for a path split by SplitPath, an entry
// of an archive.
func ReadFile(path string) ([]byte, error) {
	pak, name, ok := SplitPath(path)
	if !ok {
		return os.ReadFile(path)
	}
	p, err := NewPackReader(pak)
	if err != nil {
		return nil, err
	}
	defer p.Close()
	return p.ReadFile(name)
}
