package rasterx

import "rasterx/internal/basics"

// LineCap selects how open subpath endpoints are capped by Stroke.
type LineCap int

const (
	CapButt LineCap = iota
	CapSquare
	CapRound
)

func (c LineCap) toBasics() basics.LineCap {
	switch c {
	case CapSquare:
		return basics.SquareCap
	case CapRound:
		return basics.RoundCap
	default:
		return basics.ButtCap
	}
}

// LineJoin selects how stroke segments meet at interior vertices.
type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinMiterRevert
	JoinRound
	JoinBevel
	JoinMiterRound
)

func (j LineJoin) toBasics() basics.LineJoin {
	switch j {
	case JoinMiterRevert:
		return basics.MiterJoinRevert
	case JoinRound:
		return basics.RoundJoin
	case JoinBevel:
		return basics.BevelJoin
	case JoinMiterRound:
		return basics.MiterJoinRound
	default:
		return basics.MiterJoin
	}
}

// InnerJoin selects how inner (concave) stroke corners are resolved.
type InnerJoin int

const (
	InnerBevel InnerJoin = iota
	InnerMiter
	InnerJag
	InnerRound
)

func (j InnerJoin) toBasics() basics.InnerJoin {
	switch j {
	case InnerMiter:
		return basics.InnerMiter
	case InnerJag:
		return basics.InnerJag
	case InnerRound:
		return basics.InnerRound
	default:
		return basics.InnerBevel
	}
}

// Dash is one on/off pair of a dash pattern, in path-length units.
type Dash struct {
	DashLen, GapLen float64
}

// Stroke holds the parameters used to convert a Path into a filled outline
// polygon. Zero-value Stroke uses the library defaults (matching the
// reference rasterizer: half-width 0.5, miter limit 4, butt caps, miter
// joins).
type Stroke struct {
	Width            float64
	MiterLimit       float64
	InnerMiterLimit  float64
	ApproximateScale float64
	LineCap          LineCap
	LineJoin         LineJoin
	InnerJoin        InnerJoin
	Shorten          float64
	Dashes           []Dash
	DashStart        float64
}

// NewStroke returns a Stroke with the reference defaults and the given width.
func NewStroke(width float64) *Stroke {
	return &Stroke{
		Width:            width,
		MiterLimit:       4.0,
		InnerMiterLimit:  1.01,
		ApproximateScale: 1.0,
		LineCap:          CapButt,
		LineJoin:         JoinMiter,
		InnerJoin:        InnerBevel,
	}
}

// AddDash appends one dash/gap pair to the dash pattern. An empty pattern
// means a solid stroke.
func (s *Stroke) AddDash(dashLen, gapLen float64) *Stroke {
	s.Dashes = append(s.Dashes, Dash{DashLen: dashLen, GapLen: gapLen})
	return s
}
