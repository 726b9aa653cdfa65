package strcore

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Tape is dense Arrow-style storage for a string collection (spec §3, §4.C):
// two parallel arrays, a monotonically non-decreasing offsets array and a
// buffer holding each string's bytes followed by one NUL sentinel. Stored
// length is offsets[i+1]-offsets[i]-1; the terminator itself is never
// reported by At or Length.
//
// Tape implements Collection, so it can be handed directly to Sort and
// Intersect.
type Tape struct {
	offsets []uint32
	buffer  []byte
}

// Len returns the number of strings on the tape.
func (t *Tape) Len() int {
	if len(t.offsets) == 0 {
		return 0
	}
	return len(t.offsets) - 1
}

// At returns the stored bytes for string i, excluding the NUL terminator.
// The returned slice aliases the tape's buffer; it is valid only until the
// next Append or Assign call.
func (t *Tape) At(i int) []byte {
	start, end := t.offsets[i], t.offsets[i+1]
	return t.buffer[start : end-1]
}

// Length returns the stored length of string i (terminator excluded).
func (t *Tape) Length(i int) int {
	return int(t.offsets[i+1]-t.offsets[i]) - 1
}

// Assign replaces the tape's contents with strs in two passes: the first
// counts N and the total payload size, the second allocates exactly the
// required capacity and writes every string followed by a NUL (spec §4.C).
func (t *Tape) Assign(strs [][]byte) {
	n := len(strs)
	var total int
	for _, s := range strs {
		total += len(s)
	}

	offsets := make([]uint32, n+1)
	buffer := make([]byte, total+n)

	var pos uint32
	for i, s := range strs {
		offsets[i] = pos
		pos += uint32(copy(buffer[pos:], s))
		buffer[pos] = 0
		pos++
	}
	offsets[n] = pos

	t.offsets = offsets
	t.buffer = buffer
}

// Append adds span to the tape in amortised O(1) time: buffer and offsets
// capacity double whenever the next write would overflow (spec §4.C).
func (t *Tape) Append(span []byte) {
	if len(t.offsets) == 0 {
		t.offsets = make([]uint32, 1, 8)
		t.offsets[0] = 0
	}

	needed := len(t.buffer) + len(span) + 1
	if needed > cap(t.buffer) {
		newCap := nextPow2(needed)
		grown := make([]byte, len(t.buffer), newCap)
		copy(grown, t.buffer)
		t.buffer = grown
	}
	base := len(t.buffer)
	t.buffer = t.buffer[:base+len(span)+1]
	copy(t.buffer[base:], span)
	t.buffer[base+len(span)] = 0

	if len(t.offsets) == cap(t.offsets) {
		newCap := nextPow2(len(t.offsets) + 1)
		grown := make([]uint32, len(t.offsets), newCap)
		copy(grown, t.offsets)
		t.offsets = grown
	}
	t.offsets = append(t.offsets, uint32(len(t.buffer)))
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// View borrows the tape's storage as immutable spans: the offsets array and
// the byte buffer (spec §4.C). Callers must not mutate the returned slices.
func (t *Tape) View() (offsets []uint32, buffer []byte) {
	return t.offsets, t.buffer
}

const tapeWireVersion uint32 = 1

// WriteTo serializes the tape to w as the Arrow-compatible on-wire format
// (spec §6 "Persisted formats"): a version word, the offsets array, and the
// raw buffer. This mirrors the teacher's Table.WriteTo — a small fixed
// header followed by the payload arrays in one pass.
func (t *Tape) WriteTo(w io.Writer) (int64, error) {
	var n int64
	var hdr [12]byte
	binary.LittleEndian.PutUint32(hdr[0:4], tapeWireVersion)
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(len(t.offsets)))
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(len(t.buffer)))
	nn, err := w.Write(hdr[:])
	n += int64(nn)
	if err != nil {
		return n, err
	}

	offBytes := make([]byte, 4*len(t.offsets))
	for i, off := range t.offsets {
		binary.LittleEndian.PutUint32(offBytes[4*i:], off)
	}
	nn, err = w.Write(offBytes)
	n += int64(nn)
	if err != nil {
		return n, err
	}

	nn, err = w.Write(t.buffer)
	n += int64(nn)
	return n, err
}

// ReadFrom deserializes a tape previously written by WriteTo, replacing the
// receiver's contents.
func (t *Tape) ReadFrom(r io.Reader) (int64, error) {
	var n int64
	var hdr [12]byte
	nn, err := io.ReadFull(r, hdr[:])
	n += int64(nn)
	if err != nil {
		return n, err
	}
	if binary.LittleEndian.Uint32(hdr[0:4]) != tapeWireVersion {
		return n, ErrInvalidUTF8
	}
	numOffsets := binary.LittleEndian.Uint32(hdr[4:8])
	bufLen := binary.LittleEndian.Uint32(hdr[8:12])

	offBytes := make([]byte, 4*numOffsets)
	nn, err = io.ReadFull(r, offBytes)
	n += int64(nn)
	if err != nil {
		return n, err
	}
	offsets := make([]uint32, numOffsets)
	for i := range offsets {
		offsets[i] = binary.LittleEndian.Uint32(offBytes[4*i:])
	}

	buffer := make([]byte, bufLen)
	nn, err = io.ReadFull(r, buffer)
	n += int64(nn)
	if err != nil {
		return n, err
	}

	t.offsets = offsets
	t.buffer = buffer
	return n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (t *Tape) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := t.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (t *Tape) UnmarshalBinary(data []byte) error {
	_, err := t.ReadFrom(bytes.NewReader(data))
	return err
}
