// SPDX-License-Identifier: GPL-2.0-or-later

package pack

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

type File struct {
	Name string
	Data []byte
}

// Write writes files as a pack. The directory follows the file data.
func Write(w io.Writer, files []File) error {
	offset := int32(binary.Size(header{}))
	entries := make([]entry, 0, len(files))
	for _, f := range files {
		var e entry
		if len(f.Name) >= len(e.Name) {
			return errors.Errorf("file name %s is too long for a pack", f.Name)
		}
		copy(e.Name[:], f.Name)
		e.Offset = offset
		e.Size = int32(len(f.Data))
		entries = append(entries, e)
		offset += e.Size
	}
	h := header{
		ID:     [4]byte{'P', 'A', 'C', 'K'},
		Offset: offset,
		Size:   int32(len(entries) * entrySize),
	}
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return err
	}
	for _, f := range files {
		if _, err := w.Write(f.Data); err != nil {
			return err
		}
	}
	return binary.Write(w, binary.LittleEndian, entries)
}
