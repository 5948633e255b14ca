package dyntype

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScaler(l Level) *Scaler {
	return NewScaler(WithEnvironment(StaticEnvironment(l)))
}

func TestScaler_Defaults(t *testing.T) {
	s := NewScaler()
	assert.Equal(t, DefaultLevel, s.Level())

	v, err := s.Transform(32, Body)
	require.NoError(t, err)
	assert.Equal(t, 32.0, v)
}

func TestScaler_TransformErrors(t *testing.T) {
	_, err := newTestScaler(Level(42)).Transform(10, Body)
	assert.ErrorIs(t, err, ErrUnsupportedLevel)

	_, err = NewScaler().Transform(10, TextStyle(42))
	assert.ErrorIs(t, err, ErrUnsupportedTextStyle)
}

func TestScaledValue_Value(t *testing.T) {
	bounds, err := MinMax(30, 78)
	require.NoError(t, err)

	tests := []struct {
		level Level
		want  float64
	}{
		{XSmall, 30},
		{Large, 32},
		{XXLarge, 32 * 21.0 / 17.0},
		{Accessibility2, 32 * 33.0 / 17.0},
		{Accessibility5, 78},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			v := newTestScaler(tt.level).Value(32, bounds, Body)
			got, err := v.Value()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestScaledValue_ReadsEnvironmentOnEveryCall(t *testing.T) {
	var level atomic.Int64
	level.Store(int64(Large))

	s := NewScaler(WithEnvironment(EnvironmentFunc(func() Level {
		return Level(level.Load())
	})))
	v := s.Value(17, Unbounded(), Body)

	got, err := v.Value()
	require.NoError(t, err)
	assert.InDelta(t, 17.0, got, 1e-9)

	level.Store(int64(Accessibility3))
	got, err = v.Value()
	require.NoError(t, err)
	assert.InDelta(t, 40.0, got, 1e-9)
}

func TestScaledValue_Identity(t *testing.T) {
	s := NewScaler(
		WithEnvironment(StaticEnvironment(Accessibility5)),
		WithMetrics(IdentityMetrics{}),
	)
	v := s.Value(50, AtMost(45), Caption)
	got, err := v.Value()
	require.NoError(t, err)
	assert.Equal(t, 45.0, got)

	assert.Equal(t, 50.0, v.Base())
	assert.Equal(t, Caption, v.Style())
}

func TestScaledPointSize(t *testing.T) {
	bounds, err := MinMax(13, 30)
	require.NoError(t, err)

	p := newTestScaler(Accessibility4).PointSize(14, bounds, Body)
	got, err := p.PointSize()
	require.NoError(t, err)
	assert.Equal(t, 30.0, got)

	got, err = p.ValueAt(Small)
	require.NoError(t, err)
	assert.InDelta(t, 14*15.0/17.0, got, 1e-9)
}

func TestScaledSize_AxesAreIndependent(t *testing.T) {
	s := newTestScaler(Accessibility5)

	z, err := s.Size(Size{Width: 100, Height: 20}, nil, &Size{Width: 120, Height: 1000}, Body)
	require.NoError(t, err)

	got, err := z.Size()
	require.NoError(t, err)
	assert.Equal(t, 120.0, got.Width)
	assert.InDelta(t, 20*53.0/17.0, got.Height, 1e-9)

	got, err = z.SizeAt(XSmall)
	require.NoError(t, err)
	assert.InDelta(t, 100*14.0/17.0, got.Width, 1e-9)
	assert.InDelta(t, 20*14.0/17.0, got.Height, 1e-9)

	assert.Equal(t, Size{Width: 100, Height: 20}, z.Base())
}

func TestScaledSize_InvertedBounds(t *testing.T) {
	_, err := NewScaler().Size(Size{Width: 10, Height: 10}, &Size{Width: 1, Height: 50}, &Size{Width: 2, Height: 40}, Body)
	require.ErrorIs(t, err, ErrInvertedBounds)
	assert.Contains(t, err.Error(), "height")
}

func TestScaledInsets_EdgesAreIndependent(t *testing.T) {
	base := Insets{Top: 8, Leading: 16, Bottom: 8, Trailing: 16}
	min := &Insets{Top: 10, Leading: 0, Bottom: 0, Trailing: 0}
	max := &Insets{Top: 100, Leading: 20, Bottom: 100, Trailing: 100}

	in, err := newTestScaler(Accessibility1).Insets(base, min, max, Body)
	require.NoError(t, err)

	got, err := in.Insets()
	require.NoError(t, err)
	assert.InDelta(t, 8*28.0/17.0, got.Top, 1e-9)
	assert.Equal(t, 20.0, got.Leading)
	assert.InDelta(t, 8*28.0/17.0, got.Bottom, 1e-9)
	assert.InDelta(t, 16*28.0/17.0, got.Trailing, 1e-9)

	got, err = in.InsetsAt(XSmall)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.Top)
	assert.InDelta(t, 8*14.0/17.0, got.Bottom, 1e-9)

	assert.Equal(t, base, in.Base())
}

func TestScaledInsets_InvertedBounds(t *testing.T) {
	_, err := NewScaler().Insets(Insets{}, &Insets{Trailing: 5}, &Insets{Trailing: 4}, Body)
	require.ErrorIs(t, err, ErrInvertedBounds)
	assert.Contains(t, err.Error(), "trailing")
}

func TestScaledInsets_UnsupportedLevel(t *testing.T) {
	in, err := newTestScaler(Level(77)).Insets(Insets{Top: 1}, nil, nil, Body)
	require.NoError(t, err)

	_, err = in.Insets()
	assert.ErrorIs(t, err, ErrUnsupportedLevel)
}
