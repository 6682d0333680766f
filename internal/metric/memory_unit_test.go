package metric

import "testing"

func TestMaxrssMegabytes(t *testing.T) {
	cases := []struct {
		goos   string
		maxrss int64
		want   float64
	}{
		{"linux", 2048, 2},
		{"darwin", 2 * 1024 * 1024, 2},
		{"freebsd", 1024, 1},
	}
	for _, c := range cases {
		if got := maxrssMegabytes(c.goos, c.maxrss); got != c.want {
			t.Errorf("maxrssMegabytes(%q, %d) = %v, want %v", c.goos, c.maxrss, got, c.want)
		}
	}
}
