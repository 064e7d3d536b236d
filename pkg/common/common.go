package common

// uint32 ==> []byte, len(buffer) bytes are written
func UintAsBytes(val uint32, buffer []byte, bigEndian bool) {
	n := len(buffer)
	for i := 0; i < n; i++ {
		if bigEndian {
			v := val >> ((n - i - 1) << 3)
			buffer[i] = byte(v) & 0xff
		} else {
			buffer[i] = byte(val) & 0xff
			val = val >> 8
		}
	}
}

// bytes ==> uint32, at most 4 bytes are meaningful
func BytesAsUint32(buffer []byte, bigEndian bool) uint32 {
	ret := uint32(0)

	n := len(buffer)
	for i := 0; i < n; i++ {
		if bigEndian {
			ret = ret<<8 + uint32(buffer[i])
		} else {
			ret += uint32(buffer[i]) << uint32(i*8)
		}
	}

	return ret
}

// SignExtend treats the low bits*8 bits of val as a two's-complement number.
func SignExtend(val uint32, bytes int) int32 {
	shift := uint(32 - bytes*8)
	return int32(val<<shift) >> shift
}
