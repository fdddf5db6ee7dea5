package camera

import (
	"VoxelForge/shared/config"
	"VoxelForge/shared/editor"
	"VoxelForge/shared/voxel"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var up = mgl32.Vec3{0, 1, 0}

// Passos de movimento: o alvo anda em saltos inteiros para o cursor não
// tremer entre voxels vizinhos.
const (
	forwardQuantum float32 = 3
	leftQuantum    float32 = 1
	pivotSpeed     float32 = 50
)

// OrbitCamera é a câmera ortográfica que gira em torno de um ponto no chão.
// Não depende da janela: recebe editor.FrameInput e entrega uma voxel.CameraPose.
type OrbitCamera struct {
	Position mgl32.Vec3 // Ponto no chão em torno do qual a câmera orbita
	Yaw      float32    // Rotação acumulada em pixels de mouse

	Speed       float32
	Sensitivity float32 // Radianos por pixel de rotação
	Radius      float32 // Distância horizontal do olho ao alvo
	Height      float32
	Fovy        float32 // Altura da vista em unidades do mundo

	forwardCarry, leftCarry float32

	pivot mgl32.Vec2 // Deslocamento suavizado do alvo em direção ao cursor

	eye, target, forward, left mgl32.Vec3
}

// New cria a câmera com os parâmetros da configuração.
func New(cfg *config.Config) *OrbitCamera {
	c := &OrbitCamera{
		Speed:       cfg.CameraSpeed,
		Sensitivity: cfg.CameraSensitivity,
		Radius:      cfg.CameraRadius,
		Height:      cfg.CameraHeight,
		Fovy:        cfg.CameraFovy,
	}
	c.Update(editor.FrameInput{})
	return c
}

// Update aplica rotação, movimento e o deslocamento do alvo pelo cursor.
// Botão direito segurado gira a câmera; WASD anda no plano; Up/Down sobe e desce.
func (c *OrbitCamera) Update(in editor.FrameInput) {
	if in.MouseRight {
		c.Yaw += in.Look[0]
	}

	angle := c.Yaw * c.Sensitivity
	offset := mgl32.Vec3{math32.Sin(angle) * c.Radius, 0, math32.Cos(angle) * c.Radius}
	c.forward = offset.Normalize()
	c.left = up.Cross(c.forward).Normalize()

	step := in.DT * c.Speed
	if in.Forward {
		c.forwardCarry -= step
	}
	if in.Back {
		c.forwardCarry += step
	}
	if in.Left {
		c.leftCarry -= step
	}
	if in.Right {
		c.leftCarry += step
	}
	if in.Up {
		c.Position[1] += step
	}
	if in.Down {
		c.Position[1] -= step
	}

	fwd := c.forwardCarry - math32.Mod(c.forwardCarry, forwardQuantum)
	lft := c.leftCarry - math32.Mod(c.leftCarry, leftQuantum)
	c.Position = c.Position.Add(c.forward.Mul(fwd)).Add(c.left.Mul(lft))
	c.forwardCarry -= fwd
	c.leftCarry -= lft

	c.followCursor(in)

	px := c.pivot[0] - math32.Mod(c.pivot[0], leftQuantum)
	py := c.pivot[1] - math32.Mod(c.pivot[1], forwardQuantum)
	c.target = c.Position.Add(c.left.Mul(px)).Add(c.forward.Mul(py))
	c.eye = c.target.Add(mgl32.Vec3{offset[0], c.Height, offset[2]})
}

// followCursor puxa o alvo devagar na direção do cursor, como um olhar que
// acompanha o mouse. Desligado quando não há tela.
func (c *OrbitCamera) followCursor(in editor.FrameInput) {
	if in.Screen[0] == 0 || in.Screen[1] == 0 {
		return
	}
	aspect := in.Screen[0] / in.Screen[1]
	off := in.CursorOffset()
	goal := mgl32.Vec2{off[0] / 2, off[1] * aspect / 2}

	for i := 0; i < 2; i++ {
		d := goal[i] - c.pivot[i]
		s := math32.Sqrt(math32.Abs(d))
		if s <= 1 {
			continue
		}
		if d < 0 {
			s = -s
		}
		c.pivot[i] += s * in.DT * pivotSpeed
	}
}

// UnitsPerPixel converte pixels da tela em unidades do mundo.
func (c *OrbitCamera) UnitsPerPixel(screenHeight float32) float32 {
	if screenHeight <= 0 {
		return 1
	}
	return c.Fovy / screenHeight
}

// Pose entrega o que a mira precisa.
func (c *OrbitCamera) Pose(screenHeight float32) voxel.CameraPose {
	return voxel.CameraPose{
		Eye:           c.eye,
		Target:        c.target,
		Left:          c.left,
		Forward:       c.forward,
		UnitsPerPixel: c.UnitsPerPixel(screenHeight),
	}
}
