/*
Package binser implements a compact little-endian binary codec over
caller-supplied buffers.

Values are written as the plain concatenation of their encodings, with no
framing, length prefixes, or version tags. The encoded length of every
supported type is a pure function of the type itself, with one exception:
CString values occupy their content length plus a single zero terminator.

Fundamental types:

	- bool: a single byte, 0x00 or 0x01.
	- int8-int64, uint8-uint64, int, uint: little-endian two's complement,
	  occupying the type's in-memory size.
	- float32, float64: IEEE-754 bits, little-endian.
	- defined integer types: encoded exactly as their underlying
	  representation; the symbolic value is irrelevant.
	- [N]T: N consecutive encodings of T in index order, no separators.
	- structs: a raw copy of the struct's memory image, padding included,
	  provided every field is itself fixed-size. The image is therefore
	  coupled to the compiler's layout for the target architecture and is
	  not portable across differing ABIs.
	- CString: content bytes followed by one zero byte. Serialize-only;
	  decoding a zero-terminated run from an untrusted buffer without a
	  known bound is unsafe, so round-trip text should use byte arrays.

To encode, bind values with Serialize and write them with To. The buffer is
borrowed from the caller and never grows:

	buf := make([]byte, 64)
	n, err := binser.Serialize(uint16(1234), int8(-5), float32(3.5)).To(buf)

To decode, construct a cursor with Deserialize and read into pointers:

	var a uint16
	var b int8
	var c float32
	d, err := binser.Deserialize(buf[:n])
	if err != nil {
		// nil input buffer
	}
	err = d.To(&a, &b, &c)

A cursor consumes its input as it reads and is single-pass. When the input
runs short the default policy is to degrade rather than fail: scalars and
structs decode to their zero value without consuming anything, and arrays
decode as many whole elements as fit and zero the rest. DeserializeStrict
builds a cursor that reports ErrShortSource instead, for callers that must
distinguish a decoded zero from a truncation default.

Neither path allocates buffer memory, performs I/O, or blocks. A single
Serializer or Deserializer must not be shared between goroutines; distinct
instances over distinct buffers are independent.
*/
package binser
