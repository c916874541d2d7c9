package strmark

// Mark converts between a message and the bit sequence stored in an image.
type Mark interface {
	Encode(src string) (mark []bool, err error)
	Decode(mark []bool) (src string, err error)
}
