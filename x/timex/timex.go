package timex

import "time"

// NowMs returns Unix milliseconds as int64.
func NowMs() int64 { return time.Now().UnixMilli() }

// SinceMs returns milliseconds elapsed since a NowMs snapshot.
func SinceMs(start int64) int64 { return NowMs() - start }
