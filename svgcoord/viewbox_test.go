package svgcoord

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAspectRatio(t *testing.T) {
	tests := []struct {
		s    string
		want AspectRatio
	}{
		{"", AspectRatio{}},
		{"xMidYMid meet", AspectRatio{}},
		{"xMinYMax", AspectRatio{X: AlignMin, Y: AlignMax}},
		{"xMaxYMin slice", AspectRatio{X: AlignMax, Y: AlignMin, Mode: AspectSlice}},
		{"XMAXYMID SLICE", AspectRatio{X: AlignMax, Y: AlignMid, Mode: AspectSlice}},
		{"defer xMinYMin meet", AspectRatio{X: AlignMin, Y: AlignMin, Defer: true}},
		{"defer", AspectRatio{Defer: true}},
		{"none", AspectRatio{Mode: AspectNone}},
		{"defer none", AspectRatio{Mode: AspectNone, Defer: true}},
		{"xMinYMi slice", AspectRatio{}},
		{"xLowYMid", AspectRatio{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseAspectRatio(tt.s), "ParseAspectRatio(%q)", tt.s)
	}
}

func TestAnchorPoint(t *testing.T) {
	r := Bounds{X: 10, Y: 20, W: 100, H: 50}
	assert.Equal(t, Point{60, 45}, AspectRatio{}.AnchorPoint(r))
	assert.Equal(t, Point{10, 70}, AspectRatio{X: AlignMin, Y: AlignMax}.AnchorPoint(r))
	assert.Equal(t, Point{110, 20}, AspectRatio{X: AlignMax, Y: AlignMin}.AnchorPoint(r))
}

func TestParseViewBox(t *testing.T) {
	tests := []struct {
		s    string
		want Bounds
		ok   bool
	}{
		{"", Bounds{}, false},
		{"0 0 100 50", Bounds{0, 0, 100, 50}, true},
		{"-10,5,20,30", Bounds{-10, 5, 20, 30}, true},
		{" 0, 0  24px 24px ", Bounds{0, 0, 24, 24}, true},
		{"0 0 100", Bounds{}, false},
		{"0 0 100 50 2", Bounds{}, false},
		{"0 0 0 50", Bounds{}, false},
		{"0 0 100 abc", Bounds{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseViewBox(tt.s)
		assert.Equal(t, tt.ok, ok, "ParseViewBox(%q)", tt.s)
		assert.Equal(t, tt.want, got, "ParseViewBox(%q)", tt.s)
	}
}

func TestResolveViewportStretch(t *testing.T) {
	vb, m, ok := ResolveViewport("0 0 100 100", "", Bounds{W: 200, H: 200})
	require.True(t, ok)
	assert.Equal(t, Bounds{0, 0, 100, 100}, vb)
	assert.Equal(t, Matrix2D{2, 0, 0, 2, 0, 0}, m)
	assert.Equal(t, Point{0, 0}, m.TransformPoint(Point{0, 0}))

	// the origin of the viewBox goes to the origin of the viewport
	_, m, ok = ResolveViewport("10 20 100 50", "", Bounds{W: 200, H: 200})
	require.True(t, ok)
	assert.Equal(t, Point{0, 0}, m.TransformPoint(Point{10, 20}))
	assert.Equal(t, Point{200, 200}, m.TransformPoint(Point{110, 70}))

	// none stretches as well
	_, m2, ok := ResolveViewport("10 20 100 50", "none", Bounds{W: 200, H: 200})
	require.True(t, ok)
	assert.Equal(t, m, m2)
}

func TestResolveViewportAspect(t *testing.T) {
	element := Bounds{W: 100, H: 100}

	_, meet, ok := ResolveViewport("0 0 100 50", "xMidYMid meet", element)
	require.True(t, ok)
	assert.Equal(t, 1., meet.A)
	assert.Equal(t, 1., meet.D)
	assert.Equal(t, Point{50, 50}, meet.TransformPoint(Point{50, 25}))
	assert.Equal(t, Point{0, 25}, meet.TransformPoint(Point{0, 0}))

	_, slice, ok := ResolveViewport("0 0 100 50", "xMidYMid slice", element)
	require.True(t, ok)
	assert.Equal(t, 2., slice.A)
	assert.Equal(t, 2., slice.D)
	assert.Equal(t, Point{50, 50}, slice.TransformPoint(Point{50, 25}))
	// overflows horizontally
	assert.Equal(t, Point{-50, 0}, slice.TransformPoint(Point{0, 0}))
	assert.Equal(t, Point{150, 100}, slice.TransformPoint(Point{100, 50}))
}

func TestResolveViewportAlign(t *testing.T) {
	element := Bounds{W: 100, H: 100}
	tests := []struct {
		par    string
		origin Point // image of the viewBox origin
	}{
		{"xMinYMin meet", Point{0, 0}},
		{"xMidYMid meet", Point{0, 25}},
		{"xMaxYMax meet", Point{0, 50}},
		{"xMinYMin slice", Point{0, 0}},
		{"xMaxYMax slice", Point{-100, 0}},
		{"defer xMaxYMax slice", Point{-100, 0}},
	}
	for _, tt := range tests {
		_, m, ok := ResolveViewport("20 10 100 50", tt.par, element)
		require.True(t, ok)
		if diff := cmp.Diff(tt.origin, m.TransformPoint(Point{20, 10}), approx); diff != "" {
			t.Errorf("%q: viewBox origin mismatch (-want +got):\n%s", tt.par, diff)
		}
	}
}

func TestResolveViewportTallViewBox(t *testing.T) {
	// tall viewBox in a wide viewport: meet fits the height
	_, m, ok := ResolveViewport("0 0 50 100", "xMinYMid meet", Bounds{W: 400, H: 200})
	require.True(t, ok)
	assert.Equal(t, 2., m.A)
	assert.Equal(t, Point{0, 0}, m.TransformPoint(Point{0, 0}))
	assert.Equal(t, Point{100, 200}, m.TransformPoint(Point{50, 100}))
}

func TestResolveViewportFailure(t *testing.T) {
	for _, vb := range []string{"", "   ", "0 0 10", "0 0 0 0", "1 2 3 4 5"} {
		got, m, ok := ResolveViewport(vb, "xMidYMid", Bounds{W: 10, H: 10})
		assert.False(t, ok, vb)
		assert.Equal(t, Bounds{}, got)
		assert.Equal(t, Identity, m)
	}
}

func TestResolveElementViewportDeferImage(t *testing.T) {
	element := Bounds{W: 100, H: 100}
	_, want, ok := ResolveElementViewport("svg", "0 0 100 50", "xMidYMid slice", element)
	require.True(t, ok)
	_, got, ok := ResolveElementViewport("image", "0 0 100 50", "defer xMidYMid slice", element)
	require.True(t, ok)
	assert.Equal(t, want, got)
}
