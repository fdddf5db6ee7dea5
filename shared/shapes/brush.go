package shapes

import (
	"fmt"

	"VoxelForge/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

// BrushKind identifica um pincel. O valor numérico é o id usado em /draw.
type BrushKind uint8

const (
	Recolor BrushKind = iota // Troca a cor
	Glaze                    // Troca a cor com alfa 0.5
	Fire                     // Troca a cor, marca o voxel como fogo e acende uma luz

	brushKindCount

	// UnknownBrush é o kind dado a ids fora do catálogo: não pinta nada.
	UnknownBrush BrushKind = 0xFF
)

const glazeAlpha float32 = 0.5

var brushNames = [brushKindCount]string{"recolor", "glaze", "fire"}

// BrushCount é o número de pincéis conhecidos.
const BrushCount = int(brushKindCount)

// ParseBrushKind converte um id numérico. Ids desconhecidos viram UnknownBrush com ok false.
func ParseBrushKind(id int32) (BrushKind, bool) {
	if id < 0 || id >= int32(brushKindCount) {
		return UnknownBrush, false
	}
	return BrushKind(id), true
}

func (k BrushKind) Valid() bool {
	return k < brushKindCount
}

func (k BrushKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("brush(%d)", uint8(k))
	}
	return brushNames[k]
}

// Next retorna o próximo pincel em ciclo.
func (k BrushKind) Next() BrushKind {
	return (k + 1) % brushKindCount
}

// Prev retorna o pincel anterior em ciclo.
func (k BrushKind) Prev() BrushKind {
	return (k + brushKindCount - 1) % brushKindCount
}

// EmitsLight indica se voxels pintados com este pincel acendem uma luz.
func (k BrushKind) EmitsLight() bool {
	return k == Fire
}

// Paint retorna a nova cor de um voxel existente em p, ou false se o pincel não o altera.
func (k BrushKind) Paint(p, first, last util.VoxelCoord, color mgl32.Vec4) (mgl32.Vec4, bool) {
	switch k {
	case Recolor, Fire:
		return color, true
	case Glaze:
		return mgl32.Vec4{color[0], color[1], color[2], glazeAlpha}, true
	}
	return mgl32.Vec4{}, false
}

// ClassifyBrushPaint é a forma livre de BrushKind.Paint usada pelos chunks.
func ClassifyBrushPaint(x, y, z int32, first, last util.VoxelCoord, color mgl32.Vec4, kind BrushKind) (mgl32.Vec4, bool) {
	return kind.Paint(util.VoxelCoord{X: x, Y: y, Z: z}, first, last, color)
}
