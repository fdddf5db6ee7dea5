package render

import (
	"log"
	"unsafe"

	"VoxelForge/shared/command"
	"VoxelForge/shared/voxel"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Índices de shader.locs usados pelo desenho instanciado.
const (
	locMatrixMVP   = 6
	locMatrixModel = 9
)

// batch guarda as matrizes de um chunk agrupadas pela cor de exibição.
// Só é refeito quando a versão do buffer do chunk ou o modo de exibição muda.
type batch struct {
	version uint64
	view    command.ViewMode
	buckets map[rl.Color][]rl.Matrix
}

// VoxelRenderer desenha os chunks com um cubo instanciado por voxel.
type VoxelRenderer struct {
	shader   rl.Shader
	cube     rl.Mesh
	material rl.Material

	viewModeLoc   int32
	sunDirLoc     int32
	lightCountLoc int32
	lightPosLoc   int32
	lightColorLoc int32

	batches map[*voxel.Chunk]*batch

	lightPos   []float32
	lightColor []float32
}

// NewVoxelRenderer carrega shader e malha. Exige a janela aberta.
func NewVoxelRenderer() *VoxelRenderer {
	r := &VoxelRenderer{
		batches:    make(map[*voxel.Chunk]*batch),
		lightPos:   make([]float32, 0, maxShaderLights*3),
		lightColor: make([]float32, 0, maxShaderLights*3),
	}

	r.shader = rl.LoadShaderFromMemory(voxelVertexShader, voxelFragmentShader)
	locs := unsafe.Slice(r.shader.Locs, 32)
	locs[locMatrixMVP] = rl.GetShaderLocation(r.shader, "mvp")
	locs[locMatrixModel] = rl.GetShaderLocationAttrib(r.shader, "instanceTransform")

	r.viewModeLoc = rl.GetShaderLocation(r.shader, "viewMode")
	r.sunDirLoc = rl.GetShaderLocation(r.shader, "sunDir")
	r.lightCountLoc = rl.GetShaderLocation(r.shader, "lightCount")
	r.lightPosLoc = rl.GetShaderLocation(r.shader, "lightPos")
	r.lightColorLoc = rl.GetShaderLocation(r.shader, "lightColor")

	r.cube = rl.GenMeshCube(1, 1, 1)
	r.material = rl.LoadMaterialDefault()
	r.material.Shader = r.shader

	rl.SetShaderValue(r.shader, r.sunDirLoc, []float32{0.4, 1, 0.25}, rl.ShaderUniformVec3)

	log.Println("[Render] Shader de voxels carregado")
	return r
}

// Draw desenha os chunks do mundo no modo de exibição dado. Voxels opacos
// primeiro, translúcidos (indicador, vidrado) por cima.
func (r *VoxelRenderer) Draw(world *voxel.ChunkManager, view command.ViewMode, showGrid bool) {
	rl.SetShaderValue(r.shader, r.viewModeLoc, []float32{float32(view)}, rl.ShaderUniformFloat)
	r.uploadLights(world.Lights())

	chunks := world.Chunks()
	for pass := 0; pass < 2; pass++ {
		translucent := pass == 1
		for _, c := range chunks {
			if c.Role == voxel.TerrainIndicator && !showGrid {
				continue
			}
			b := r.batchFor(c, view)
			for color, transforms := range b.buckets {
				if (color.A < 255) != translucent {
					continue
				}
				r.material.Maps.Color = color
				rl.DrawMeshInstanced(r.cube, r.material, transforms, len(transforms))
			}
		}
	}
}

func (r *VoxelRenderer) batchFor(c *voxel.Chunk, view command.ViewMode) *batch {
	buf := c.RenderBuffer()
	b, ok := r.batches[c]
	if ok && b.version == buf.Version && b.view == view {
		return b
	}
	if !ok {
		b = &batch{buckets: make(map[rl.Color][]rl.Matrix)}
		r.batches[c] = b
	}

	for k, v := range b.buckets {
		b.buckets[k] = v[:0]
	}
	for _, rec := range buf.Records {
		key := toRLColor(DisplayColor(rec, view))
		b.buckets[key] = append(b.buckets[key], toRLMatrix(rec.Transform))
	}
	for k, v := range b.buckets {
		if len(v) == 0 {
			delete(b.buckets, k)
		}
	}
	b.version, b.view = buf.Version, view
	return b
}

func (r *VoxelRenderer) uploadLights(pool *voxel.LightPool) {
	r.lightPos = r.lightPos[:0]
	r.lightColor = r.lightColor[:0]
	for _, l := range pool.Active() {
		if len(r.lightPos) == maxShaderLights*3 {
			break
		}
		r.lightPos = append(r.lightPos, l.Position[0], l.Position[1], l.Position[2])
		r.lightColor = append(r.lightColor, l.Color[0], l.Color[1], l.Color[2])
	}
	n := len(r.lightPos) / 3
	rl.SetShaderValue(r.shader, r.lightCountLoc, []float32{float32(n)}, rl.ShaderUniformFloat)
	if n > 0 {
		rl.SetShaderValueV(r.shader, r.lightPosLoc, r.lightPos, rl.ShaderUniformVec3, int32(n))
		rl.SetShaderValueV(r.shader, r.lightColorLoc, r.lightColor, rl.ShaderUniformVec3, int32(n))
	}
}

// Unload libera shader e malha.
func (r *VoxelRenderer) Unload() {
	rl.UnloadShader(r.shader)
	rl.UnloadMesh(&r.cube)
}

// DisplayColor é a cor com que um voxel aparece em cada modo de exibição.
func DisplayColor(rec voxel.InstanceRecord, view command.ViewMode) mgl32.Vec4 {
	switch view {
	case command.ViewNormal:
		n := rec.Normal.Mul(0.5).Add(mgl32.Vec3{0.5, 0.5, 0.5})
		flat := mgl32.Vec3{0.5, 0.5, 0.5}
		n = flat.Add(n.Sub(flat).Mul(rec.NormalStrength))
		return n.Vec4(1)
	case command.ViewDepth:
		return mgl32.Vec4{rec.DepthStrength, 0, 0, 1}
	}
	return rec.Color
}

func toRLColor(c mgl32.Vec4) rl.Color {
	ch := func(v float32) uint8 {
		return uint8(math32.Round(mgl32.Clamp(v, 0, 1) * 255))
	}
	return rl.NewColor(ch(c[0]), ch(c[1]), ch(c[2]), ch(c[3]))
}

// toRLMatrix converte de mgl32 (coluna por coluna) para rl.Matrix, em que Mi
// também segue a ordem de coluna do OpenGL.
func toRLMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

// ToRLCamera monta a câmera ortográfica do raylib a partir da pose.
func ToRLCamera(pose voxel.CameraPose, fovy float32) rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(pose.Eye[0], pose.Eye[1], pose.Eye[2]),
		Target:     rl.NewVector3(pose.Target[0], pose.Target[1], pose.Target[2]),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       fovy,
		Projection: rl.CameraOrthographic,
	}
}
