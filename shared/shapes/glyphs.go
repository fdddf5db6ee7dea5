package shapes

import (
	"VoxelForge/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

// Os algarismos são montados com cascas elipsoidais (recortadas por meio-plano)
// e traços na fatia Z central da região. Todos usam normal para cima.

var vc = util.NewVoxelCoord

// glyphFrame guarda as medidas derivadas da região usadas por todos os algarismos.
type glyphFrame struct {
	first, last util.VoxelCoord
	midX, midY  int32
	midZ        int32
	height      int32
	quarter     int32 // first.Y + height/4
	upperMid    int32 // meio da metade de cima
}

func newGlyphFrame(first, last util.VoxelCoord) glyphFrame {
	f := glyphFrame{
		first:  first,
		last:   last,
		midX:   mid(first.X, last.X),
		midY:   mid(first.Y, last.Y),
		midZ:   mid(first.Z, last.Z),
		height: last.Y - first.Y,
	}
	f.quarter = first.Y + f.height/4
	f.upperMid = (f.midY + last.Y) / 2
	return f
}

// upperBowl é a casca que ocupa a metade de cima da região.
func (f glyphFrame) upperBowl(p util.VoxelCoord) bool {
	return OnEllipsoidShell(vc(f.first.X, f.midY, f.first.Z), f.last, p)
}

// lowerBowl é a casca da base até top.
func (f glyphFrame) lowerBowl(top int32, p util.VoxelCoord) bool {
	return OnEllipsoidShell(f.first, vc(f.last.X, top, f.last.Z), p)
}

func (f glyphFrame) stroke(x0, y0, x1, y1 int32) [2]util.VoxelCoord {
	return line(vc(x0, y0, f.midZ), vc(x1, y1, f.midZ))
}

func glyph(hit bool, p util.VoxelCoord, color mgl32.Vec4) (Placement, bool) {
	if !hit {
		return Placement{}, false
	}
	return placed(p, color, up)
}

func glyph2(p, first, last util.VoxelCoord, color mgl32.Vec4) (Placement, bool) {
	f := newGlyphFrame(first, last)
	lowFirst := vc(first.X, first.Y-f.height/2-5, first.Z)
	lowLast := vc(last.X, f.midY+5, last.Z)

	hit := f.upperBowl(p) && (p.Y >= f.upperMid || p.X >= f.midX) ||
		OnEllipsoidShell(lowFirst, lowLast, p) && p.X < f.midX ||
		onLine(f.stroke(first.X, first.Y, last.X, first.Y), p)
	return glyph(hit, p, color)
}

func glyph3(p, first, last util.VoxelCoord, color mgl32.Vec4) (Placement, bool) {
	f := newGlyphFrame(first, last)
	hit := f.upperBowl(p) && (p.Y >= f.upperMid || p.X >= f.midX) ||
		f.lowerBowl(f.midY+5, p) && (p.Y <= f.quarter || p.X >= f.midX)
	return glyph(hit, p, color)
}

func glyph4(p, first, last util.VoxelCoord, color mgl32.Vec4) (Placement, bool) {
	f := newGlyphFrame(first, last)
	stem := (f.midX + last.X) / 2

	hit := onLine(f.stroke(stem, first.Y, stem, last.Y), p) ||
		onLine(f.stroke(stem, last.Y, first.X, f.quarter), p) ||
		onLine(f.stroke(first.X, f.quarter, last.X, f.quarter), p)
	return glyph(hit, p, color)
}

func glyph5(p, first, last util.VoxelCoord, color mgl32.Vec4) (Placement, bool) {
	f := newGlyphFrame(first, last)
	waist := last.Y - f.height/2
	capLeft := first.X + f.height/16

	hit := onLine(f.stroke(capLeft, last.Y-2, last.X, last.Y-2), p) &&
		p.X > first.X+f.height/15 && p.X < last.X-f.height/16 ||
		onLine(f.stroke(capLeft, last.Y-2, first.X+2, waist), p) && p.Y >= waist ||
		onLine(f.stroke(first.X+2, waist, f.midX, waist), p) && p.X <= f.midX ||
		f.lowerBowl(waist+3, p) && (p.Y <= (first.Y+waist)/2 || p.X >= f.midX)
	return glyph(hit, p, color)
}

func glyph6(p, first, last util.VoxelCoord, color mgl32.Vec4) (Placement, bool) {
	f := newGlyphFrame(first, last)
	stemX := first.X + 2

	hit := f.lowerBowl(last.Y-f.height/2+3, p) ||
		f.upperBowl(p) && p.Y >= f.upperMid ||
		onLine(f.stroke(stemX, last.Y, stemX, first.Y), p) && p.Y <= f.upperMid && p.Y >= f.quarter
	return glyph(hit, p, color)
}

func glyph7(p, first, last util.VoxelCoord, color mgl32.Vec4) (Placement, bool) {
	f := newGlyphFrame(first, last)
	hit := onLine(f.stroke(first.X, last.Y-2, last.X, last.Y-2), p) ||
		onLine(f.stroke(last.X, last.Y-2, f.midX, first.Y+2), p)
	return glyph(hit, p, color)
}

func glyph8(p, first, last util.VoxelCoord, color mgl32.Vec4) (Placement, bool) {
	f := newGlyphFrame(first, last)
	hit := f.upperBowl(p) || f.lowerBowl(f.midY+5, p)
	return glyph(hit, p, color)
}

func glyph9(p, first, last util.VoxelCoord, color mgl32.Vec4) (Placement, bool) {
	f := newGlyphFrame(first, last)
	stemX := last.X - 4

	hit := f.lowerBowl(last.Y-f.height/2+3, p) && p.Y <= f.quarter ||
		f.upperBowl(p) ||
		onLine(f.stroke(stemX, last.Y, stemX, first.Y), p) && p.Y <= f.upperMid && p.Y >= f.quarter
	return glyph(hit, p, color)
}
