package util

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// WorldLimit é o maior |x|, |y| ou |z| aceito numa edição. Mantém folga para
// as contas de célula em int32 com qualquer aresta até MaxChunkEdge.
const (
	WorldLimit   int32 = 1<<30 - 1
	MaxChunkEdge int32 = 1 << 20
)

// VoxelCoord é uma coordenada inteira no grid de voxels do mundo.
// X = leste/oeste, Y = vertical, Z = norte/sul
type VoxelCoord struct {
	X, Y, Z int32
}

// NewVoxelCoord cria uma nova coordenada de voxel.
func NewVoxelCoord(x, y, z int32) VoxelCoord {
	return VoxelCoord{X: x, Y: y, Z: z}
}

// Add soma duas coordenadas.
func (c VoxelCoord) Add(other VoxelCoord) VoxelCoord {
	return VoxelCoord{
		X: c.X + other.X,
		Y: c.Y + other.Y,
		Z: c.Z + other.Z,
	}
}

// Sub subtrai duas coordenadas.
func (c VoxelCoord) Sub(other VoxelCoord) VoxelCoord {
	return VoxelCoord{
		X: c.X - other.X,
		Y: c.Y - other.Y,
		Z: c.Z - other.Z,
	}
}

// InWorld informa se os três eixos estão dentro de ±WorldLimit.
func (c VoxelCoord) InWorld() bool {
	return inLimit(c.X) && inLimit(c.Y) && inLimit(c.Z)
}

func inLimit(v int32) bool {
	return v >= -WorldLimit && v <= WorldLimit
}

// Vec retorna a coordenada como vetor float (posição de renderização).
func (c VoxelCoord) Vec() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.X), float32(c.Y), float32(c.Z)}
}

// String retorna a representação em string da coordenada.
func (c VoxelCoord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

// TruncVec converte uma posição float para coordenada inteira truncando em direção a zero.
func TruncVec(v mgl32.Vec3) VoxelCoord {
	return VoxelCoord{X: int32(v[0]), Y: int32(v[1]), Z: int32(v[2])}
}

// RoundVec converte uma posição float para a coordenada inteira mais próxima.
func RoundVec(v mgl32.Vec3) VoxelCoord {
	return VoxelCoord{
		X: int32(math32.Round(v[0])),
		Y: int32(math32.Round(v[1])),
		Z: int32(math32.Round(v[2])),
	}
}

// Box é uma região inclusiva [First, Last] alinhada aos eixos.
type Box struct {
	First, Last VoxelCoord
}

// NewBox cria uma caixa normalizada (First <= Last em cada eixo).
func NewBox(a, b VoxelCoord) Box {
	return Box{
		First: VoxelCoord{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)},
		Last:  VoxelCoord{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)},
	}
}

// Contains verifica se a coordenada está dentro da caixa (inclusivo).
func (b Box) Contains(c VoxelCoord) bool {
	return c.X >= b.First.X && c.X <= b.Last.X &&
		c.Y >= b.First.Y && c.Y <= b.Last.Y &&
		c.Z >= b.First.Z && c.Z <= b.Last.Z
}

// Empty retorna true se algum eixo estiver invertido.
func (b Box) Empty() bool {
	return b.First.X > b.Last.X || b.First.Y > b.Last.Y || b.First.Z > b.Last.Z
}

// Intersect retorna a interseção das duas caixas. O resultado pode ser vazio.
func (b Box) Intersect(o Box) Box {
	return Box{
		First: VoxelCoord{max(b.First.X, o.First.X), max(b.First.Y, o.First.Y), max(b.First.Z, o.First.Z)},
		Last:  VoxelCoord{min(b.Last.X, o.Last.X), min(b.Last.Y, o.Last.Y), min(b.Last.Z, o.Last.Z)},
	}
}

// Volume retorna o número de coordenadas inteiras da caixa.
func (b Box) Volume() int64 {
	if b.Empty() {
		return 0
	}
	return int64(b.Last.X-b.First.X+1) * int64(b.Last.Y-b.First.Y+1) * int64(b.Last.Z-b.First.Z+1)
}

// Each percorre todas as coordenadas da caixa em ordem x, y, z.
func (b Box) Each(fn func(c VoxelCoord)) {
	for x := b.First.X; x <= b.Last.X; x++ {
		for y := b.First.Y; y <= b.Last.Y; y++ {
			for z := b.First.Z; z <= b.Last.Z; z++ {
				fn(VoxelCoord{x, y, z})
			}
		}
	}
}

func (b Box) String() string {
	return fmt.Sprintf("%v..%v", b.First, b.Last)
}

// FloorDiv divide arredondando para baixo (a divisão de Go trunca em direção a zero).
func FloorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// ChunkCoord retorna a célula do grid de chunks que contém c.
// Cada chunk cobre [cell*edge - edge/2, cell*edge + edge/2 - 1].
func ChunkCoord(c VoxelCoord, edge int32) VoxelCoord {
	half := edge / 2
	return VoxelCoord{
		X: FloorDiv(c.X+half, edge),
		Y: FloorDiv(c.Y+half, edge),
		Z: FloorDiv(c.Z+half, edge),
	}
}

// ChunkBounds retorna a região de voxels coberta pela célula do grid.
func ChunkBounds(cell VoxelCoord, edge int32) Box {
	half := edge / 2
	first := VoxelCoord{cell.X*edge - half, cell.Y*edge - half, cell.Z*edge - half}
	return Box{
		First: first,
		Last:  first.Add(VoxelCoord{edge - 1, edge - 1, edge - 1}),
	}
}

// CellRange retorna o intervalo inclusivo de células cobertas pela caixa.
func CellRange(b Box, edge int32) Box {
	return Box{First: ChunkCoord(b.First, edge), Last: ChunkCoord(b.Last, edge)}
}
