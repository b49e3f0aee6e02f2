// Package npy writes NumPy .npy (format version 1.0) array files.
// Arrays are C-order, little-endian, with shapes fixed at call time.
package npy

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	magic = "\x93NUMPY"

	DtypeBool    = "|b1"
	DtypeFloat32 = "<f4"
)

var (
	ErrShapeMismatch = errors.New("npy data length does not match shape")
)

func formatShape(shape []int) string {
	if len(shape) == 1 {
		return "(" + strconv.Itoa(shape[0]) + ",)"
	}
	parts := make([]string, len(shape))
	for i, s := range shape {
		parts[i] = strconv.Itoa(s)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func numElems(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}

// writeHeader emits the magic string, version and the padded header dict.
// Total preamble length is a multiple of 64, as numpy itself produces.
func writeHeader(w io.Writer, descr string, shape []int) error {
	header := fmt.Sprintf("{'descr': '%s', 'fortran_order': False, 'shape': %s, }", descr, formatShape(shape))
	pad := 64 - (len(magic)+4+len(header)+1)%64
	if pad == 64 {
		pad = 0
	}
	header += strings.Repeat(" ", pad) + "\n"
	if _, err := io.WriteString(w, magic+"\x01\x00"); err != nil {
		return err
	}
	var hLen [2]byte
	binary.LittleEndian.PutUint16(hLen[:], uint16(len(header)))
	if _, err := w.Write(hLen[:]); err != nil {
		return err
	}
	_, err := io.WriteString(w, header)
	return err
}

// SaveBool writes data as a |b1 array of the given shape.
func SaveBool(w io.Writer, data []bool, shape []int) error {
	if len(data) != numElems(shape) {
		return ErrShapeMismatch
	}
	if err := writeHeader(w, DtypeBool, shape); err != nil {
		return err
	}
	buf := make([]byte, len(data))
	for i, v := range data {
		if v {
			buf[i] = 1
		}
	}
	_, err := w.Write(buf)
	return err
}

// SaveFloat32 writes data as a <f4 array of the given shape.
func SaveFloat32(w io.Writer, data []float32, shape []int) error {
	if len(data) != numElems(shape) {
		return ErrShapeMismatch
	}
	if err := writeHeader(w, DtypeFloat32, shape); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, data)
}
