package bitconv

import "github.com/yyyoichi/bitstream-go"

// BytesToBools unpacks b into bits, most significant bit first.
func BytesToBools(b []byte) []bool {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range b {
		w.Write8(0, 8, v)
	}
	return readAll(w.Data(), w.Bits())
}

// BoolsToBytes packs bits into bytes, most significant bit first.
// A trailing partial byte is zero padded.
func BoolsToBytes(bits []bool) []byte {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range bits {
		w.WriteBool(v)
	}
	r := bitstream.NewBitReader(w.Data(), 0, 0)
	r.SetBits(w.Bits())

	out := make([]byte, (len(bits)+7)/8)
	for i := range bits {
		if bit, _ := r.ReadBitAt(i); bit {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}

func readAll(data []uint64, n int) []bool {
	r := bitstream.NewBitReader(data, 0, 0)
	r.SetBits(n)
	bits := make([]bool, n)
	for i := range bits {
		bits[i], _ = r.ReadBitAt(i)
	}
	return bits
}
