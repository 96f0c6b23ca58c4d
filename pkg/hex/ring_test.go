package hex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/hextile/pkg/hex"
)

func TestRing_RadiusZero(t *testing.T) {
	ring := hex.New(3, -2).Circle(0)
	assert.Equal(t, 1, ring.Len())

	a, ok := ring.Next()
	require.True(t, ok)
	assert.Equal(t, hex.New(3, -2), a)

	_, ok = ring.Next()
	assert.False(t, ok)
	_, ok = ring.Next()
	assert.False(t, ok, "exhausted ring stays exhausted")
}

func TestRing_Order(t *testing.T) {
	want := []hex.Axial{
		hex.New(0, 2), hex.New(-1, 2), hex.New(-2, 2), hex.New(-2, 1),
		hex.New(-2, 0), hex.New(-1, -1), hex.New(0, -2), hex.New(1, -2),
		hex.New(2, -2), hex.New(2, -1), hex.New(2, 0), hex.New(1, 1),
	}
	assert.Equal(t, want, hex.Axial{}.Circle(2).Collect())
}

func TestRing_OrderAroundCenter(t *testing.T) {
	want := []hex.Axial{
		hex.New(1, 1), hex.New(0, 1), hex.New(-1, 1), hex.New(-1, 0),
		hex.New(-1, -1), hex.New(0, -2), hex.New(1, -3), hex.New(2, -3),
		hex.New(3, -3), hex.New(3, -2), hex.New(3, -1), hex.New(2, 0),
	}
	ring := hex.New(1, -1).Circle(2)
	var got []hex.Axial
	for {
		a, ok := ring.Next()
		if !ok {
			break
		}
		got = append(got, a)
	}
	assert.Equal(t, want, got)
}

func TestRing_Cardinality(t *testing.T) {
	centers := []hex.Axial{hex.New(0, 0), hex.New(5, -3), hex.New(-7, 11)}
	for _, c := range centers {
		for radius := uint(1); radius <= 6; radius++ {
			got := c.Circle(radius).Collect()
			require.Len(t, got, 6*int(radius))

			seen := make(map[hex.Axial]bool, len(got))
			for _, a := range got {
				assert.False(t, seen[a], "duplicate %v in ring %d around %v", a, radius, c)
				seen[a] = true
				assert.Equal(t, int(radius), a.DistanceTo(c))
			}
		}
	}
}

func TestRing_Neighbours(t *testing.T) {
	c := hex.New(2, 2)
	got := c.Neighbours().Collect()
	require.Len(t, got, 6)
	for _, n := range got {
		assert.Equal(t, 1, c.DistanceTo(n))
	}
	assert.Equal(t, hex.New(2, 3), got[0])
}

func TestRing_AllStopsEarly(t *testing.T) {
	ring := hex.Axial{}.Circle(3)
	n := 0
	for range ring.All() {
		n++
		if n == 4 {
			break
		}
	}
	assert.Equal(t, 4, n)

	// The ring resumes where the consumer stopped.
	assert.Len(t, ring.Collect(), 18-4)
}

func TestSpiral(t *testing.T) {
	c := hex.New(-1, 4)
	got := hex.Spiral(c, 3)
	require.Len(t, got, 1+6+12+18)
	assert.Equal(t, c, got[0])

	seen := make(map[hex.Axial]bool)
	for _, a := range got {
		assert.False(t, seen[a])
		seen[a] = true
		assert.LessOrEqual(t, a.DistanceTo(c), 3)
	}
	assert.Equal(t, []hex.Axial{c}, hex.Spiral(c, 0))
}
