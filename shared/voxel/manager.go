package voxel

import (
	"cmp"
	"log"
	"slices"

	"VoxelForge/shared/config"
	"VoxelForge/shared/shapes"
	"VoxelForge/shared/util"

	"github.com/dustin/go-humanize"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/samber/lo"
)

// MarchConfig controla o ray march da mira.
type MarchConfig struct {
	Top   float32 // Altitude inicial
	Floor float32 // Abaixo disso a mira desiste
	Step  float32 // Passo vertical por amostra
}

// Options configura um ChunkManager.
type Options struct {
	ChunkEdge     int32
	LightPoolSize int
	March         MarchConfig
}

// OptionsFromConfig extrai as opções do mundo da configuração.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		ChunkEdge:     cfg.ChunkEdge,
		LightPoolSize: cfg.LightPoolSize,
		March: MarchConfig{
			Top:   cfg.MarchTop,
			Floor: cfg.MarchFloor,
			Step:  cfg.MarchStep,
		},
	}
}

type chunkKey struct {
	Grid util.VoxelCoord
	Role Role
}

// EditStats resume uma edição roteada.
type EditStats struct {
	Chunks        int // Chunks visitados
	Created       int // Chunks criados nesta edição
	Removed       int
	Added         int
	Painted       int
	LightsDropped int
}

// ManagerStats é um retrato do mundo para HUD e logs.
type ManagerStats struct {
	Chunks int
	Voxels map[Role]int
	Lights int
}

// ChunkManager é dono dos chunks, indexados por (célula, papel).
//
// Chunks são criados na primeira edição que toca sua célula e nunca são
// removidos: um chunk esvaziado continua residente e desenha 0 instâncias.
// Não é seguro para uso concorrente; tudo roda na thread do frame.
type ChunkManager struct {
	edge   int32
	march  MarchConfig
	chunks map[chunkKey]*Chunk
	lights *LightPool
}

// NewChunkManager cria um gerenciador vazio.
func NewChunkManager(opts Options) *ChunkManager {
	if opts.ChunkEdge < 2 {
		opts.ChunkEdge = 128
	}
	if opts.March.Step <= 0 {
		opts.March = MarchConfig{Top: 256, Floor: -256, Step: 0.4}
	}
	return &ChunkManager{
		edge:   opts.ChunkEdge,
		march:  opts.March,
		chunks: make(map[chunkKey]*Chunk),
		lights: NewLightPool(opts.LightPoolSize),
	}
}

// Edge retorna a aresta dos chunks em voxels.
func (m *ChunkManager) Edge() int32 {
	return m.edge
}

// Lights retorna o pool de luzes compartilhado.
func (m *ChunkManager) Lights() *LightPool {
	return m.lights
}

// Chunk retorna o chunk da célula e papel dados, se existir.
func (m *ChunkManager) Chunk(grid util.VoxelCoord, role Role) (*Chunk, bool) {
	c, ok := m.chunks[chunkKey{grid, role}]
	return c, ok
}

// Chunks retorna todos os chunks em ordem estável (papel, depois x, y, z).
func (m *ChunkManager) Chunks() []*Chunk {
	out := lo.Values(m.chunks)
	slices.SortFunc(out, func(a, b *Chunk) int {
		return cmp.Or(
			cmp.Compare(a.Role, b.Role),
			cmp.Compare(a.Grid.X, b.Grid.X),
			cmp.Compare(a.Grid.Y, b.Grid.Y),
			cmp.Compare(a.Grid.Z, b.Grid.Z),
		)
	})
	return out
}

// Lookup retorna o voxel persistente na posição p.
func (m *ChunkManager) Lookup(p util.VoxelCoord) (Instance, bool) {
	c, ok := m.chunks[chunkKey{util.ChunkCoord(p, m.edge), Persistent}]
	if !ok {
		return Instance{}, false
	}
	return c.Lookup(p)
}

// Stats conta chunks, voxels por papel e luzes acesas.
func (m *ChunkManager) Stats() ManagerStats {
	s := ManagerStats{
		Chunks: len(m.chunks),
		Voxels: make(map[Role]int, 3),
		Lights: m.lights.Len(),
	}
	for k, c := range m.chunks {
		s.Voxels[k.Role] += c.Len()
	}
	return s
}

func (m *ChunkManager) getOrCreate(grid util.VoxelCoord, role Role) (*Chunk, bool) {
	key := chunkKey{grid, role}
	if c, ok := m.chunks[key]; ok {
		return c, false
	}
	c := NewChunk(grid, role, m.edge)
	m.chunks[key] = c
	return c, true
}

// RouteEdit divide a caixa [first, last] nas células do grid que ela cobre e
// chama Chunk.Place em cada uma, criando os chunks que faltarem.
// Cada chunk recebe a região de edição inteira e o recorte da sua célula.
func (m *ChunkManager) RouteEdit(first, last util.VoxelCoord, color mgl32.Vec4, del bool, role Role, kind shapes.ShapeKind) EditStats {
	var stats EditStats
	if !first.InWorld() || !last.InWorld() {
		log.Printf("[Chunks] AVISO: edição fora do mundo ignorada: %v..%v", first, last)
		return stats
	}
	edit := util.NewBox(first, last)

	util.CellRange(edit, m.edge).Each(func(cell util.VoxelCoord) {
		clip := edit.Intersect(util.ChunkBounds(cell, m.edge))
		c, created := m.getOrCreate(cell, role)
		if created {
			stats.Created++
		}
		res := c.Place(edit.First, edit.Last, clip.First, clip.Last, color, del, kind)
		stats.Chunks++
		stats.Removed += res.Removed
		stats.Added += res.Added
	})

	if role == Persistent && stats.Created > 0 {
		log.Printf("[Chunks] %d chunks criados (%s no total)", stats.Created, humanize.Comma(int64(len(m.chunks))))
	}
	return stats
}

// RouteDraw repinta os voxels persistentes em [first, last] com o pincel brush.
// Células sem chunk persistente são ignoradas.
func (m *ChunkManager) RouteDraw(first, last util.VoxelCoord, color mgl32.Vec4, brush shapes.BrushKind) EditStats {
	var stats EditStats
	if !first.InWorld() || !last.InWorld() {
		log.Printf("[Chunks] AVISO: pintura fora do mundo ignorada: %v..%v", first, last)
		return stats
	}
	region := util.NewBox(first, last)

	util.CellRange(region, m.edge).Each(func(cell util.VoxelCoord) {
		c, ok := m.chunks[chunkKey{cell, Persistent}]
		if !ok {
			return
		}
		res := c.Draw(region.First, region.Last, color, brush, m.lights)
		stats.Chunks++
		stats.Painted += res.Painted
		stats.LightsDropped += res.LightsDropped
	})

	if stats.LightsDropped > 0 {
		log.Printf("[Lights] pool cheio (%d/%d): %d luzes descartadas", m.lights.Len(), m.lights.Cap(), stats.LightsDropped)
	}
	return stats
}

// SeedGrid cria as linhas verdes do grid no plano y=0 para as células dentro
// de um disco de radiusCells células. Ficam em chunks TerrainIndicator, que a
// mira e os comandos ignoram.
func (m *ChunkManager) SeedGrid(radiusCells int32) int {
	gridColor := mgl32.Vec4{0, 1, 0, 1}
	total := 0

	for cx := -radiusCells; cx <= radiusCells; cx++ {
		for cz := -radiusCells; cz <= radiusCells; cz++ {
			if cx*cx+cz*cz > radiusCells*radiusCells {
				continue
			}
			cell := util.VoxelCoord{X: cx, Y: util.ChunkCoord(util.VoxelCoord{}, m.edge).Y, Z: cz}
			c, _ := m.getOrCreate(cell, TerrainIndicator)
			b := c.Bounds()
			for i := int32(0); i < m.edge; i++ {
				for _, p := range []util.VoxelCoord{
					{X: b.First.X + i, Y: 0, Z: b.First.Z},
					{X: b.First.X, Y: 0, Z: b.First.Z + i},
				} {
					c.put(p, Instance{
						Position: p.Vec(),
						Color:    gridColor,
						Normal:   mgl32.Vec3{0, 1, 0},
						Material: MaterialObject,
					})
				}
			}
			c.rebuild()
			total += c.Len()
		}
	}

	log.Printf("[Chunks] grid semeado: %s voxels em raio %d", humanize.Comma(int64(total)), radiusCells)
	return total
}
