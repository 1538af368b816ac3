package conv

const hexd = "0123456789ABCDEF"

// ByteHex formats b as two uppercase hex digits without 0x.
// Used for console status lines; avoids fmt on MCU builds.
func ByteHex(b byte) string {
	return string([]byte{hexd[b>>4], hexd[b&0xF]})
}
