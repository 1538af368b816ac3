package conv

import "testing"

func TestByteHex(t *testing.T) {
	cases := []struct {
		in   byte
		want string
	}{
		{0x00, "00"},
		{0x0A, "0A"},
		{0x1E, "1E"},
		{0x4F, "4F"},
		{0xFF, "FF"},
	}
	for _, c := range cases {
		if got := ByteHex(c.in); got != c.want {
			t.Errorf("ByteHex(%#02x) = %q, want %q", c.in, got, c.want)
		}
	}
}
