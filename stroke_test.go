package rasterx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStrokeDefaults(t *testing.T) {
	s := NewStroke(2.0)
	assert.Equal(t, 2.0, s.Width)
	assert.Equal(t, 4.0, s.MiterLimit)
	assert.InDelta(t, 1.01, s.InnerMiterLimit, 1e-9)
	assert.Equal(t, CapButt, s.LineCap)
	assert.Equal(t, JoinMiter, s.LineJoin)
	assert.Empty(t, s.Dashes)
}

func TestAddDashAccumulates(t *testing.T) {
	s := NewStroke(1.0)
	s.AddDash(5, 3).AddDash(1, 1)
	assert.Len(t, s.Dashes, 2)
	assert.Equal(t, Dash{DashLen: 5, GapLen: 3}, s.Dashes[0])
	assert.Equal(t, Dash{DashLen: 1, GapLen: 1}, s.Dashes[1])
}

func TestLineCapConversion(t *testing.T) {
	assert.NotPanics(t, func() {
		CapButt.toBasics()
		CapSquare.toBasics()
		CapRound.toBasics()
	})
}

func TestLineJoinConversion(t *testing.T) {
	assert.NotPanics(t, func() {
		JoinMiter.toBasics()
		JoinMiterRevert.toBasics()
		JoinRound.toBasics()
		JoinBevel.toBasics()
		JoinMiterRound.toBasics()
	})
}

func TestInnerJoinConversion(t *testing.T) {
	assert.NotPanics(t, func() {
		InnerBevel.toBasics()
		InnerMiter.toBasics()
		InnerJag.toBasics()
		InnerRound.toBasics()
	})
}
