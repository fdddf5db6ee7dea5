// Package voxel guarda o mundo de voxels esparso: chunks com armazenamento em
// arena, o gerenciador que roteia edições de região entre chunks e a mira por
// ray march.
package voxel

import (
	"VoxelForge/shared/shapes"
	"VoxelForge/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

// Material governa efeitos auxiliares do voxel.
type Material uint8

const (
	MaterialObject Material = iota
	MaterialFire
)

func (m Material) String() string {
	switch m {
	case MaterialObject:
		return "object"
	case MaterialFire:
		return "fire"
	}
	return "unknown"
}

// Instance é a unidade editável: um cubo unitário em uma posição inteira.
type Instance struct {
	Position       mgl32.Vec3 // Inteira, guardada em float para o renderizador
	Color          mgl32.Vec4
	Normal         mgl32.Vec3
	DepthStrength  float32
	NormalStrength float32
	Material       Material
}

// Coord retorna a posição inteira do voxel.
func (i Instance) Coord() util.VoxelCoord {
	return util.RoundVec(i.Position)
}

// Transform retorna a matriz de modelo usada no buffer de instâncias.
func (i Instance) Transform() mgl32.Mat4 {
	return mgl32.Translate3D(i.Position[0], i.Position[1], i.Position[2])
}

func fromPlacement(p shapes.Placement) Instance {
	return Instance{
		Position:       p.Position,
		Color:          p.Color,
		Normal:         p.Normal,
		DepthStrength:  p.DepthStrength,
		NormalStrength: p.NormalStrength,
		Material:       MaterialObject,
	}
}
