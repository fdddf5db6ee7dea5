package shapes

import (
	"fmt"

	"VoxelForge/shared/util"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ShapeKind identifica um modelo procedural. O valor numérico é o id usado
// nos comandos de texto (/place, /delete).
type ShapeKind uint8

const (
	CheckerBox      ShapeKind = iota // Caixa oca com ladrilhos brancos alternados
	Pillar                           // Coluna vertical (também o algarismo 1)
	Glyph2                           // Algarismos 2..9 traçados no plano XY
	Glyph3
	Glyph4
	Glyph5
	Glyph6
	Glyph7
	Glyph8
	Glyph9
	HollowBoxVertical // Caixa oca, normal só no topo e na base
	HollowBoxFaces    // Caixa oca, normal para fora em todas as faces
	GroundPlate       // Fatia única no piso com normal levemente perturbada
	Dome              // Casca elipsoidal com normal para cima (algarismo 0)
	Sphere            // Casca elipsoidal com normal radial

	shapeKindCount

	// UnknownShape é o kind dado a ids fora do catálogo: não produz voxels.
	UnknownShape ShapeKind = 0xFF
)

// CheckerTile é o lado do ladrilho do CheckerBox em voxels.
const CheckerTile int32 = 64

const (
	defaultDepthStrength  float32 = 0.5
	defaultNormalStrength float32 = 1.0
)

var shapeNames = [shapeKindCount]string{
	"checker_box", "pillar",
	"glyph_2", "glyph_3", "glyph_4", "glyph_5", "glyph_6", "glyph_7", "glyph_8", "glyph_9",
	"hollow_box_vertical", "hollow_box_faces", "ground_plate", "dome", "sphere",
}

var up = mgl32.Vec3{0, 1, 0}

// Placement é o voxel produzido por um classificador de modelo.
type Placement struct {
	Position       mgl32.Vec3
	Color          mgl32.Vec4
	Normal         mgl32.Vec3
	DepthStrength  float32
	NormalStrength float32
}

// ShapeCount é o número de modelos conhecidos.
const ShapeCount = int(shapeKindCount)

// ParseShapeKind converte um id numérico. Ids desconhecidos viram UnknownShape com ok false.
func ParseShapeKind(id int32) (ShapeKind, bool) {
	if id < 0 || id >= int32(shapeKindCount) {
		return UnknownShape, false
	}
	return ShapeKind(id), true
}

// Valid indica se o kind pertence ao conjunto fechado de modelos.
func (k ShapeKind) Valid() bool {
	return k < shapeKindCount
}

func (k ShapeKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("shape(%d)", uint8(k))
	}
	return shapeNames[k]
}

// Next retorna o próximo modelo, voltando ao primeiro depois do último.
func (k ShapeKind) Next() ShapeKind {
	return (k + 1) % shapeKindCount
}

// Prev retorna o modelo anterior, voltando ao último antes do primeiro.
func (k ShapeKind) Prev() ShapeKind {
	return (k + shapeKindCount - 1) % shapeKindCount
}

// Classify decide se existe voxel deste modelo em p para a região [first, last].
func (k ShapeKind) Classify(p, first, last util.VoxelCoord, color mgl32.Vec4) (Placement, bool) {
	switch k {
	case CheckerBox:
		return checkerBox(p, first, last, color)
	case Pillar:
		return pillar(p, first, last, color)
	case Glyph2:
		return glyph2(p, first, last, color)
	case Glyph3:
		return glyph3(p, first, last, color)
	case Glyph4:
		return glyph4(p, first, last, color)
	case Glyph5:
		return glyph5(p, first, last, color)
	case Glyph6:
		return glyph6(p, first, last, color)
	case Glyph7:
		return glyph7(p, first, last, color)
	case Glyph8:
		return glyph8(p, first, last, color)
	case Glyph9:
		return glyph9(p, first, last, color)
	case HollowBoxVertical:
		return hollowBoxVertical(p, first, last, color)
	case HollowBoxFaces:
		return hollowBoxFaces(p, first, last, color)
	case GroundPlate:
		return groundPlate(p, first, last, color)
	case Dome:
		return dome(p, first, last, color)
	case Sphere:
		return sphere(p, first, last, color)
	}
	return Placement{}, false
}

// ClassifyPlacement é a forma livre de ShapeKind.Classify usada pelos chunks.
func ClassifyPlacement(x, y, z int32, first, last util.VoxelCoord, color mgl32.Vec4, kind ShapeKind) (Placement, bool) {
	return kind.Classify(util.VoxelCoord{X: x, Y: y, Z: z}, first, last, color)
}

func placed(p util.VoxelCoord, color mgl32.Vec4, normal mgl32.Vec3) (Placement, bool) {
	return Placement{
		Position:       p.Vec(),
		Color:          color,
		Normal:         normal,
		DepthStrength:  defaultDepthStrength,
		NormalStrength: defaultNormalStrength,
	}, true
}

func line(a, b util.VoxelCoord) [2]util.VoxelCoord { return [2]util.VoxelCoord{a, b} }

func onLine(l [2]util.VoxelCoord, p util.VoxelCoord) bool {
	return OnLineSegment(l[0], l[1], p)
}

// --- caixas ---

func checkerBox(p, first, last util.VoxelCoord, color mgl32.Vec4) (Placement, bool) {
	if !onBoxFace(first, last, p) {
		return Placement{}, false
	}
	if (util.FloorDiv(p.X, CheckerTile)+util.FloorDiv(p.Z, CheckerTile))&1 == 0 {
		color = mgl32.Vec4{1, 1, 1, color[3]}
	}
	return placed(p, color, verticalFaceNormal(first, last, p))
}

func hollowBoxVertical(p, first, last util.VoxelCoord, color mgl32.Vec4) (Placement, bool) {
	if !onBoxFace(first, last, p) {
		return Placement{}, false
	}
	return placed(p, color, verticalFaceNormal(first, last, p))
}

func hollowBoxFaces(p, first, last util.VoxelCoord, color mgl32.Vec4) (Placement, bool) {
	if !onBoxFace(first, last, p) {
		return Placement{}, false
	}
	var n mgl32.Vec3
	if p.X == first.X {
		n[0] = -1
	}
	if p.X == last.X {
		n[0] = 1
	}
	if p.Z == first.Z {
		n[2] = -1
	}
	if p.Z == last.Z {
		n[2] = 1
	}
	if n[0] == 0 && n[2] == 0 {
		n = verticalFaceNormal(first, last, p)
	}
	return placed(p, color, n)
}

// verticalFaceNormal aponta para baixo na base, para cima no topo e é nula nas laterais.
func verticalFaceNormal(first, last, p util.VoxelCoord) mgl32.Vec3 {
	var n mgl32.Vec3
	if p.Y == first.Y {
		n[1] = -1
	}
	if p.Y == last.Y {
		n[1] = 1
	}
	return n
}

func groundPlate(p, first, _ util.VoxelCoord, color mgl32.Vec4) (Placement, bool) {
	if p.Y != first.Y {
		return Placement{}, false
	}
	x, z := float32(p.X), float32(p.Z)
	n := mgl32.Vec3{
		0.03 * math32.Sin(z*z*z*x*x),
		1,
		0.03 * math32.Sin(z*z*x*x*x),
	}
	return placed(p, color, n)
}

// --- cascas ---

func dome(p, first, last util.VoxelCoord, color mgl32.Vec4) (Placement, bool) {
	if !OnEllipsoidShell(first, last, p) {
		return Placement{}, false
	}
	return placed(p, color, up)
}

func sphere(p, first, last util.VoxelCoord, color mgl32.Vec4) (Placement, bool) {
	if !OnEllipsoidShell(first, last, p) {
		return Placement{}, false
	}
	center := first.Vec().Add(last.Vec()).Mul(0.5)
	return placed(p, color, p.Vec().Sub(center).Normalize())
}

// --- traços ---

func pillar(p, first, last util.VoxelCoord, color mgl32.Vec4) (Placement, bool) {
	mx, mz := mid(first.X, last.X), mid(first.Z, last.Z)
	if !onLine(line(vc(mx, first.Y, mz), vc(mx, last.Y, mz)), p) {
		return Placement{}, false
	}
	return placed(p, color, up)
}
