package voxel

import (
	"VoxelForge/shared/util"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraPose é o que a mira precisa da câmera ortográfica.
// Left e Forward são horizontais: Left acompanha o eixo x da tela, Forward o
// eixo y (para baixo na tela, em direção ao observador).
type CameraPose struct {
	Eye           mgl32.Vec3
	Target        mgl32.Vec3
	Left          mgl32.Vec3
	Forward       mgl32.Vec3
	UnitsPerPixel float32 // Unidades de mundo por pixel da tela
}

// TargetQuery descreve uma consulta de mira.
type TargetQuery struct {
	Pose           CameraPose
	Cursor         mgl32.Vec2 // Deslocamento do cursor em relação ao centro da tela, em pixels
	SampleRatio    float32
	PlaceOnSurface bool  // Desloca o alvo para fora pela normal do voxel atingido
	SnapGrid       int32 // > 0 arredonda o alvo para múltiplos deste valor
}

// TargetResult é o voxel mirado.
type TargetResult struct {
	Found  bool
	Coord  util.VoxelCoord // Alvo final (após deslocamento e encaixe)
	Hit    util.VoxelCoord // Voxel persistente atingido
	Normal mgl32.Vec3      // Normal do voxel atingido
}

// Ray devolve origem e alvo do raio do cursor para a pose e deslocamento dados.
func (q TargetQuery) Ray() (origin, target mgl32.Vec3) {
	ratio := q.SampleRatio
	if ratio <= 0 {
		ratio = 1
	}
	scale := q.Pose.UnitsPerPixel * ratio
	offset := q.Pose.Left.Mul(q.Cursor[0] * scale).Add(q.Pose.Forward.Mul(q.Cursor[1] * scale))
	return q.Pose.Eye.Add(offset), q.Pose.Target.Add(offset)
}

// TargetVoxel desce um plano horizontal de MarchConfig.Top até Floor, cruzando
// o raio do cursor a cada passo, e para no primeiro voxel persistente achado.
// Varrendo de cima para baixo, o voxel mais alto sob o cursor sempre vence.
// O resultado depende apenas da consulta e do conteúdo dos chunks.
func (m *ChunkManager) TargetVoxel(q TargetQuery) TargetResult {
	origin, target := q.Ray()
	dir := target.Sub(origin)
	if math32.Abs(dir[1]) < 1e-6 {
		return TargetResult{}
	}

	steps := int(math32.Floor((m.march.Top-m.march.Floor)/m.march.Step)) + 1
	for i := 0; i < steps; i++ {
		y := m.march.Top - float32(i)*m.march.Step
		t := (y - origin[1]) / dir[1]
		candidate := util.TruncVec(origin.Add(dir.Mul(t)))

		c, ok := m.chunks[chunkKey{util.ChunkCoord(candidate, m.edge), Persistent}]
		if !ok {
			continue
		}
		inst, ok := c.Lookup(candidate)
		if !ok {
			continue
		}
		return m.resolveTarget(q, candidate, inst)
	}
	return TargetResult{}
}

func (m *ChunkManager) resolveTarget(q TargetQuery, hit util.VoxelCoord, inst Instance) TargetResult {
	res := TargetResult{Found: true, Hit: hit, Coord: hit, Normal: inst.Normal}
	if q.PlaceOnSurface {
		res.Coord = util.RoundVec(hit.Vec().Add(inst.Normal))
	}
	if q.SnapGrid > 0 {
		res.Coord = util.VoxelCoord{
			X: snap(res.Coord.X, q.SnapGrid),
			Y: snap(res.Coord.Y, q.SnapGrid),
			Z: snap(res.Coord.Z, q.SnapGrid),
		}
	}
	return res
}

func snap(v, grid int32) int32 {
	return int32(math32.Round(float32(v)/float32(grid))) * grid
}
