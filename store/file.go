// SPDX-License-Identifier: MIT

package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/densela/matrix"

	"github.com/edsrzf/mmap-go"
)

const (
	magic          = "DENSEMAT"
	formatVersion  = uint32(1)
	headSize       = 32
	cellSize       = 8
	maxInt         = int64(^uint(0) >> 1)
	offVersion     = 8
	offReserved    = 12
	offRows        = 16
	offCols        = 24
	opCreate       = "Create"
	opOpen         = "Open"
	opOpenRW       = "OpenRW"
	opAt           = "At"
	opSet          = "Set"
	opDense        = "Dense"
	opFlush        = "Flush"
	opClose        = "Close"
	opSave         = "Save"
	opLoad         = "Load"
	opValidateHead = "validateHead"
)

// File is a matrix image mapped into memory.
// It satisfies matrix.Matrix; reads and writes go straight to the mapping.
type File struct {
	data     mmap.MMap
	file     *os.File
	rows     int
	cols     int
	writable bool
	closed   bool
}

// Compile-time check.
var _ matrix.Matrix = (*File)(nil)

// fileSize returns the exact byte size of an image with the given shape.
func fileSize(rows, cols int) int64 {
	return headSize + int64(rows)*int64(cols)*cellSize
}

// Create writes m into path and returns the image mapped read-write.
// An existing file at path is truncated.
//
// Implementation:
//   - Stage 1: validate m (nil → shape).
//   - Stage 2: snapshot every cell in row-major order, rejecting NaN/±Inf.
//   - Stage 3: create and size the file, map it RDWR.
//   - Stage 4: write the header and the snapshot, then flush.
//
// Behavior highlights:
//   - Cells are read before path is touched, so m may be a *File mapped from path itself.
//   - A failed call leaves an existing file at path unchanged unless the failure is an OS or mmap error.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrInvalidDimensions, matrix.ErrNaNInf, errors from m.At,
//     OS and mmap errors.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the snapshot.
func Create(path string, m matrix.Matrix) (f *File, err error) {
	if err = matrix.ValidateNonNilShape(m); err != nil {
		return nil, storeErrorf(opCreate, err)
	}
	cells, err := snapshot(m)
	if err != nil {
		return nil, storeErrorf(opCreate, err)
	}

	f = &File{rows: m.Rows(), cols: m.Cols(), writable: true}
	if f.file, err = os.Create(path); err != nil {
		return nil, storeErrorf(opCreate, err)
	}
	defer func() {
		if err != nil {
			f.release()
			f = nil
		}
	}()

	if err = f.file.Truncate(fileSize(f.rows, f.cols)); err != nil {
		return f, storeErrorf(opCreate, err)
	}
	if f.data, err = mmap.Map(f.file, mmap.RDWR, 0); err != nil {
		return f, storeErrorf(opCreate, err)
	}

	copy(f.data[:len(magic)], magic)
	binary.LittleEndian.PutUint32(f.data[offVersion:], formatVersion)
	binary.LittleEndian.PutUint32(f.data[offReserved:], 0)
	binary.LittleEndian.PutUint64(f.data[offRows:], uint64(f.rows))
	binary.LittleEndian.PutUint64(f.data[offCols:], uint64(f.cols))
	for idx, v := range cells {
		f.put(idx/f.cols, idx%f.cols, v)
	}

	if err = f.data.Flush(); err != nil {
		return f, storeErrorf(opCreate, err)
	}

	return f, nil
}

// snapshot copies m into a row-major buffer. Files only hold finite values,
// the same rule Set enforces.
func snapshot(m matrix.Matrix) ([]float64, error) {
	rows, cols := m.Rows(), m.Cols()
	cells := make([]float64, rows*cols)

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, matrix.ErrNaNInf)
			}
			cells[i*cols+j] = v
		}
	}

	return cells, nil
}

// Open maps an existing image read-only.
// Errors: ErrCorrupt, OS and mmap errors.
func Open(path string) (*File, error) {
	f, err := open(path, false)
	if err != nil {
		return nil, storeErrorf(opOpen, err)
	}

	return f, nil
}

// OpenRW maps an existing image read-write; Set and Flush persist to disk.
// Errors: ErrCorrupt, OS and mmap errors.
func OpenRW(path string) (*File, error) {
	f, err := open(path, true)
	if err != nil {
		return nil, storeErrorf(opOpenRW, err)
	}

	return f, nil
}

func open(path string, writable bool) (f *File, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	flag, prot := os.O_RDONLY, mmap.RDONLY
	if writable {
		flag, prot = os.O_RDWR, mmap.RDWR
	}

	f = &File{writable: writable}
	if f.file, err = os.OpenFile(path, flag, 0); err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			f.release()
			f = nil
		}
	}()

	if err = f.validateHead(info.Size()); err != nil {
		return f, err
	}
	if f.data, err = mmap.Map(f.file, prot, 0); err != nil {
		return f, err
	}

	return f, nil
}

// validateHead reads the header through the file handle and fills rows/cols.
func (f *File) validateHead(size int64) error {
	if size < headSize {
		return storeErrorf(opValidateHead, fmt.Errorf("size %d below header: %w", size, ErrCorrupt))
	}
	if _, err := f.file.Seek(0, io.SeekStart); err != nil {
		return err
	}

	b := make([]byte, headSize)
	if _, err := io.ReadFull(f.file, b); err != nil {
		return err
	}

	if string(b[:len(magic)]) != magic {
		return storeErrorf(opValidateHead, fmt.Errorf("bad magic %q: %w", b[:len(magic)], ErrCorrupt))
	}
	if v := binary.LittleEndian.Uint32(b[offVersion:]); v != formatVersion {
		return storeErrorf(opValidateHead, fmt.Errorf("version %d: %w", v, ErrCorrupt))
	}

	rows := int64(binary.LittleEndian.Uint64(b[offRows:]))
	cols := int64(binary.LittleEndian.Uint64(b[offCols:]))
	if rows <= 0 || cols <= 0 {
		return storeErrorf(opValidateHead, fmt.Errorf("shape %dx%d: %w", rows, cols, ErrCorrupt))
	}
	// Reject shapes whose payload cannot fit in an int64 before multiplying.
	if cols > (maxInt-headSize)/cellSize/rows {
		return storeErrorf(opValidateHead, fmt.Errorf("shape %dx%d overflows: %w", rows, cols, ErrCorrupt))
	}
	if want := headSize + rows*cols*cellSize; size != want {
		return storeErrorf(opValidateHead, fmt.Errorf("size %d, want %d: %w", size, want, ErrCorrupt))
	}

	f.rows, f.cols = int(rows), int(cols)

	return nil
}

// release unmaps and closes whatever f holds, ignoring errors. Used on failed construction.
func (f *File) release() {
	if f.data != nil {
		_ = f.data.Unmap()
		f.data = nil
	}
	if f.file != nil {
		_ = f.file.Close()
		f.file = nil
	}
	f.closed = true
}

// offset returns the byte offset of cell (i,j) or an error.
func (f *File) offset(tag string, i, j int) (int, error) {
	if f.closed {
		return 0, storeErrorf(tag, ErrClosed)
	}
	if i < 0 || i >= f.rows || j < 0 || j >= f.cols {
		return 0, storeErrorf(tag, fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, f.rows, f.cols, matrix.ErrOutOfRange))
	}

	return headSize + (i*f.cols+j)*cellSize, nil
}

// put writes v at (i,j) without checks.
func (f *File) put(i, j int, v float64) {
	off := headSize + (i*f.cols+j)*cellSize
	binary.LittleEndian.PutUint64(f.data[off:off+cellSize], math.Float64bits(v))
}

// Rows returns the number of rows.
func (f *File) Rows() int { return f.rows }

// Cols returns the number of columns.
func (f *File) Cols() int { return f.cols }

// At reads cell (i,j) from the mapping.
// Errors: ErrClosed, matrix.ErrOutOfRange.
func (f *File) At(i, j int) (float64, error) {
	off, err := f.offset(opAt, i, j)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(binary.LittleEndian.Uint64(f.data[off : off+cellSize])), nil
}

// Set writes cell (i,j) into the mapping. Non-finite values are rejected,
// matching the default policy of matrix.Dense.
// Errors: ErrClosed, ErrReadOnly, matrix.ErrOutOfRange, matrix.ErrNaNInf.
func (f *File) Set(i, j int, v float64) error {
	off, err := f.offset(opSet, i, j)
	if err != nil {
		return err
	}
	if !f.writable {
		return storeErrorf(opSet, ErrReadOnly)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return storeErrorf(opSet, matrix.ErrNaNInf)
	}
	binary.LittleEndian.PutUint64(f.data[off:off+cellSize], math.Float64bits(v))

	return nil
}

// Dense copies the image into a fresh in-memory *matrix.Dense.
// Errors: ErrClosed, matrix.ErrNaNInf for non-finite cells.
func (f *File) Dense() (*matrix.Dense, error) {
	if f.closed {
		return nil, storeErrorf(opDense, ErrClosed)
	}

	d, err := matrix.NewDense(f.rows, f.cols)
	if err != nil {
		return nil, storeErrorf(opDense, err)
	}
	var i, j int
	var v float64
	for i = 0; i < f.rows; i++ {
		for j = 0; j < f.cols; j++ {
			if v, err = f.At(i, j); err != nil {
				return nil, storeErrorf(opDense, err)
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, storeErrorf(opDense, err)
			}
		}
	}

	return d, nil
}

// Clone returns an in-memory copy. It returns nil if the file is closed or was
// edited outside this package to hold non-finite cells; use Dense to see the error.
func (f *File) Clone() matrix.Matrix {
	d, err := f.Dense()
	if err != nil {
		return nil
	}

	return d
}

// Flush syncs pending writes to disk. It is a no-op for read-only files.
// Errors: ErrClosed, mmap errors.
func (f *File) Flush() error {
	if f.closed {
		return storeErrorf(opFlush, ErrClosed)
	}
	if !f.writable {
		return nil
	}
	if err := f.data.Flush(); err != nil {
		return storeErrorf(opFlush, err)
	}

	return nil
}

// Close flushes (if writable), unmaps and closes the file. Calling Close again returns nil.
func (f *File) Close() error {
	if f.closed {
		return nil
	}

	var errs []error
	if f.writable {
		if err := f.data.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := f.data.Unmap(); err != nil {
		errs = append(errs, err)
	}
	if err := f.file.Close(); err != nil {
		errs = append(errs, err)
	}
	f.data, f.file, f.closed = nil, nil, true

	if err := errors.Join(errs...); err != nil {
		return storeErrorf(opClose, err)
	}

	return nil
}

// Save writes m to path and closes the image.
func Save(path string, m matrix.Matrix) error {
	f, err := Create(path, m)
	if err != nil {
		return storeErrorf(opSave, err)
	}
	if err = f.Close(); err != nil {
		return storeErrorf(opSave, err)
	}

	return nil
}

// Load reads the image at path into memory.
func Load(path string) (*matrix.Dense, error) {
	f, err := Open(path)
	if err != nil {
		return nil, storeErrorf(opLoad, err)
	}
	d, err := f.Dense()
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return nil, storeErrorf(opLoad, err)
	}

	return d, nil
}
