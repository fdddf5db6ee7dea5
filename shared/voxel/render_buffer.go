package voxel

import "github.com/go-gl/mathgl/mgl32"

// InstanceRecord é o layout fixo de um voxel no buffer de instâncias.
type InstanceRecord struct {
	Transform      mgl32.Mat4
	Color          mgl32.Vec4
	Normal         mgl32.Vec3
	DepthStrength  float32
	NormalStrength float32
}

// RenderBuffer é o retrato dos voxels de um chunk na última mutação.
// Nunca é alterado depois de publicado: cada mutação troca o buffer inteiro.
type RenderBuffer struct {
	Records []InstanceRecord
	Version uint64
}

// Count retorna o número de instâncias a desenhar.
func (b *RenderBuffer) Count() int {
	if b == nil {
		return 0
	}
	return len(b.Records)
}

func newRecord(inst Instance) InstanceRecord {
	return InstanceRecord{
		Transform:      inst.Transform(),
		Color:          inst.Color,
		Normal:         inst.Normal,
		DepthStrength:  inst.DepthStrength,
		NormalStrength: inst.NormalStrength,
	}
}
