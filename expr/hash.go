package expr

import (
	"crypto/sha256"
	"encoding/binary"
	"strconv"
)

// hashSeed is mixed into every Hash() to namespace-separate the distinct
// Value kinds from one another (two values with the same byte encoding but
// different kinds must not collide).
type hashSeed byte

const (
	seedBoolean hashSeed = iota
	seedInteger
	seedReal
	seedString
	seedEnum
	seedArray
	seedRecord
	seedUnary
	seedBinary
)

// digest builds a 256-bit hash over a sequence of byte chunks. No
// ecosystem library in the example pack offers content-addressed hashing
// (the corpus's only hash-adjacent dependency, cespare/xxhash, is
// non-cryptographic and pulled in transitively by a Prometheus client no
// component here uses); spec §4.3/§4.9 requires a 256-bit cryptographic
// hash specifically to make collisions a non-concern, so crypto/sha256 is
// used directly.
func digest(seed hashSeed, chunks ...[]byte) [32]byte {
	h := sha256.New()
	h.Write([]byte{byte(seed)})
	for _, c := range chunks {
		var lenBuf [8]byte
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(c)))
		h.Write(lenBuf[:])
		h.Write(c)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Hash implements Value.
func (b BooleanValue) Hash() [32]byte {
	v := byte(0)
	if b {
		v = 1
	}
	return digest(seedBoolean, []byte{v})
}

// Hash implements Value.
func (i IntegerValue) Hash() [32]byte {
	return digest(seedInteger, []byte(strconv.FormatInt(int64(i), 10)))
}

// Hash implements Value.
func (r RealValue) Hash() [32]byte {
	return digest(seedReal, []byte(strconv.FormatFloat(float64(r), 'g', -1, 64)))
}

// Hash implements Value.
func (s StringValue) Hash() [32]byte {
	return digest(seedString, []byte(s))
}

// Hash implements Value.
func (e EnumerationValue) Hash() [32]byte {
	return digest(seedEnum, []byte(strconv.Itoa(e.Ordinal)), []byte(e.Label))
}

// Hash implements Value.
func (a *ArrayValue) Hash() [32]byte {
	chunks := make([][]byte, 0, len(a.Shape)+len(a.Elements))
	for _, dim := range a.Shape {
		chunks = append(chunks, []byte(strconv.Itoa(dim)))
	}
	for _, el := range a.Elements {
		h := el.Hash()
		chunks = append(chunks, h[:])
	}
	return digest(seedArray, chunks...)
}

// Hash implements Value.
func (r *RecordValue) Hash() [32]byte {
	chunks := [][]byte{[]byte(r.ClassName)}
	for _, f := range r.Fields {
		chunks = append(chunks, []byte(f.Name))
		h := f.Value.Hash()
		chunks = append(chunks, h[:])
	}
	return digest(seedRecord, chunks...)
}

// Hash implements Value.
func (u *UnaryValue) Hash() [32]byte {
	h := u.Operand.Hash()
	return digest(seedUnary, []byte(u.Op), h[:])
}

// Hash implements Value.
func (b *BinaryValue) Hash() [32]byte {
	lh, rh := b.Left.Hash(), b.Right.Hash()
	return digest(seedBinary, []byte(b.Op), lh[:], rh[:])
}
