package interval_test

import (
	"math"
	"testing"

	"github.com/benjaminpotter/go-efsm/interval"
	"github.com/stretchr/testify/assert"
)

func TestCanonical_CollapsesExtremes(t *testing.T) {
	iv := interval.Canonical(math.MinInt, math.MaxInt)
	assert.Nil(t, iv.Lower)
	assert.Nil(t, iv.Upper)
}

func TestCanonical_KeepsExplicitEndpoints(t *testing.T) {
	iv := interval.Closed(10, 15)
	assert.NotNil(t, iv.Lower)
	assert.NotNil(t, iv.Upper)
	assert.Equal(t, 10, *iv.Lower)
	assert.Equal(t, 15, *iv.Upper)
}

func TestExplicit_RoundTripsThroughCanonical(t *testing.T) {
	original := interval.AtLeast(10)
	lower, upper := original.Explicit()
	roundTripped := interval.Canonical(lower, upper)
	assert.Equal(t, original, roundTripped)
}

// TestIntersect_Scenarios exercises spec section 8 scenario S6's vectors.
func TestIntersect_Scenarios(t *testing.T) {
	cases := []struct {
		name     string
		a, b     interval.Interval[int]
		want     interval.Interval[int]
		wantSome bool
	}{
		{
			name:     "lower-bounded meets upper-bounded overlapping",
			a:        interval.AtLeast(10),
			b:        interval.AtMost(15),
			want:     interval.Closed(10, 15),
			wantSome: true,
		},
		{
			name:     "lower-bounded meets fully unbounded",
			a:        interval.AtLeast(10),
			b:        interval.Unbounded[int](),
			want:     interval.AtLeast(10),
			wantSome: true,
		},
		{
			name:     "disjoint bounds yield no intersection",
			a:        interval.AtLeast(20),
			b:        interval.AtMost(15),
			wantSome: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := c.a.Intersect(c.b)
			assert.Equal(t, c.wantSome, ok)
			if c.wantSome {
				assert.Equal(t, c.want, got)
			}
		})
	}
}

func TestContains(t *testing.T) {
	iv := interval.Closed(10, 15)
	assert.True(t, iv.Contains(10))
	assert.True(t, iv.Contains(15))
	assert.True(t, iv.Contains(12))
	assert.False(t, iv.Contains(9))
	assert.False(t, iv.Contains(16))
}

func TestContainsInterval(t *testing.T) {
	outer := interval.AtLeast(0)
	inner := interval.Closed(5, 10)
	assert.True(t, outer.ContainsInterval(inner))
	assert.False(t, inner.ContainsInterval(outer))
	assert.True(t, inner.ContainsInterval(inner))
}

func TestWiden_IsConvexHull(t *testing.T) {
	iv := interval.Closed(10, 20)
	iv.Widen(interval.Closed(5, 15))
	assert.Equal(t, interval.Closed(5, 20), iv)

	// widening by an already-contained interval is a no-op
	before := iv
	iv.Widen(interval.Closed(12, 13))
	assert.Equal(t, before, iv)
}

func TestString_SubstitutesExtremesForUnbounded(t *testing.T) {
	iv := interval.AtLeast(uint8(3))
	assert.Equal(t, "[3, 255]", iv.String())
}
