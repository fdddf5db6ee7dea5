package voxel

import (
	"VoxelForge/shared/shapes"
	"VoxelForge/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

// Role classifica o conteúdo de um chunk. Chunks de papéis diferentes podem
// ocupar a mesma célula do grid sem colidir.
type Role uint8

const (
	TerrainIndicator Role = iota // Linhas do grid no chão
	CursorIndicator              // Prévia da ferramenta, refeita a cada frame
	Persistent                   // Voxels do mundo
)

func (r Role) String() string {
	switch r {
	case TerrainIndicator:
		return "terrain"
	case CursorIndicator:
		return "cursor"
	case Persistent:
		return "persistent"
	}
	return "unknown"
}

// Handle identifica um slot da arena. A geração invalida handles de slots reaproveitados.
type Handle struct {
	Index uint32
	Gen   uint32
}

type slot struct {
	inst  Instance
	coord util.VoxelCoord
	gen   uint32
	live  bool
}

// Chunk é um cubo de aresta fixa do grid de voxels.
//
// Os voxels vivem numa arena de slots estáveis: remover um voxel libera o slot
// (geração incrementada, índice na pilha de livres) sem deslocar os outros,
// então o índice posição→handle só recebe remoções e inserções pontuais.
// Um chunk nunca contém voxels fora de Bounds().
type Chunk struct {
	Grid util.VoxelCoord
	Role Role

	bounds util.Box
	slots  []slot
	free   []uint32
	index  map[util.VoxelCoord]Handle
	buffer *RenderBuffer
}

// PlaceResult resume uma chamada de Place.
type PlaceResult struct {
	Removed int
	Added   int
}

// DrawResult resume uma chamada de Draw.
type DrawResult struct {
	Painted       int
	LightsClaimed int
	LightsDropped int
}

// NewChunk cria um chunk vazio com buffer de renderização vazio.
func NewChunk(grid util.VoxelCoord, role Role, edge int32) *Chunk {
	return &Chunk{
		Grid:   grid,
		Role:   role,
		bounds: util.ChunkBounds(grid, edge),
		index:  make(map[util.VoxelCoord]Handle),
		buffer: &RenderBuffer{},
	}
}

// Bounds retorna a região de voxels coberta pelo chunk.
func (c *Chunk) Bounds() util.Box {
	return c.bounds
}

// Contains informa se p cai dentro da região do chunk.
func (c *Chunk) Contains(p util.VoxelCoord) bool {
	return c.bounds.Contains(p)
}

// Len retorna o número de voxels vivos.
func (c *Chunk) Len() int {
	return len(c.index)
}

// FreeSlots retorna quantos slots da arena aguardam reuso.
func (c *Chunk) FreeSlots() int {
	return len(c.free)
}

// Lookup retorna o voxel na posição p.
func (c *Chunk) Lookup(p util.VoxelCoord) (Instance, bool) {
	if !c.Contains(p) {
		return Instance{}, false
	}
	h, ok := c.index[p]
	if !ok {
		return Instance{}, false
	}
	return c.Get(h)
}

// Get retorna o voxel do handle, se o handle ainda for válido.
func (c *Chunk) Get(h Handle) (Instance, bool) {
	if int(h.Index) >= len(c.slots) {
		return Instance{}, false
	}
	s := &c.slots[h.Index]
	if !s.live || s.gen != h.Gen {
		return Instance{}, false
	}
	return s.inst, true
}

// Each chama fn para cada voxel vivo, na ordem dos slots.
func (c *Chunk) Each(fn func(inst Instance)) {
	for i := range c.slots {
		if c.slots[i].live {
			fn(c.slots[i].inst)
		}
	}
}

// RenderBuffer retorna o buffer publicado pela última mutação.
func (c *Chunk) RenderBuffer() *RenderBuffer {
	return c.buffer
}

// Place apaga todos os voxels do chunk dentro de [editFirst, editLast] e, se
// del for false, repovoa [clipFirst, clipLast] com o modelo kind.
// A região de edição é sempre limpa inteira; o clip só restringe o repovoamento.
func (c *Chunk) Place(editFirst, editLast, clipFirst, clipLast util.VoxelCoord, color mgl32.Vec4, del bool, kind shapes.ShapeKind) PlaceResult {
	var res PlaceResult

	edit := util.Box{First: editFirst, Last: editLast}
	c.eachIn(edit.Intersect(c.bounds), func(h Handle) {
		c.remove(h)
		res.Removed++
	})

	if !del {
		clip := util.Box{First: clipFirst, Last: clipLast}.Intersect(edit).Intersect(c.bounds)
		if !clip.Empty() {
			clip.Each(func(p util.VoxelCoord) {
				if pl, ok := kind.Classify(p, editFirst, editLast, color); ok {
					c.put(p, fromPlacement(pl))
					res.Added++
				}
			})
		}
	}

	c.rebuild()
	return res
}

// Draw repinta os voxels existentes em [first, last] com o pincel brush.
// O pincel de fogo marca os voxels como fogo e ocupa uma luz por voxel que
// acabou de virar fogo; repintar um voxel que já é fogo não ocupa outra.
// O chunk passa a ser Persistent.
func (c *Chunk) Draw(first, last util.VoxelCoord, color mgl32.Vec4, brush shapes.BrushKind, lights *LightPool) DrawResult {
	var res DrawResult

	region := util.Box{First: first, Last: last}
	c.eachIn(region.Intersect(c.bounds), func(h Handle) {
		s := &c.slots[h.Index]
		painted, ok := brush.Paint(s.coord, first, last, color)
		if !ok {
			return
		}
		s.inst.Color = painted
		res.Painted++

		if brush.EmitsLight() {
			if s.inst.Material == MaterialFire {
				return
			}
			s.inst.Material = MaterialFire
			if lights == nil {
				return
			}
			if _, ok := lights.Claim(s.inst.Position, painted); ok {
				res.LightsClaimed++
			} else {
				res.LightsDropped++
			}
		}
	})

	c.Role = Persistent
	c.rebuild()
	return res
}

// eachIn visita os handles vivos dentro de region. Escolhe entre sondar o
// índice por coordenada ou varrer a arena, o que for menor.
func (c *Chunk) eachIn(region util.Box, fn func(h Handle)) {
	if region.Empty() || len(c.index) == 0 {
		return
	}
	if region.Volume() < int64(len(c.index)) {
		region.Each(func(p util.VoxelCoord) {
			if h, ok := c.index[p]; ok {
				fn(h)
			}
		})
		return
	}
	for i := range c.slots {
		s := &c.slots[i]
		if s.live && region.Contains(s.coord) {
			fn(Handle{Index: uint32(i), Gen: s.gen})
		}
	}
}

// put insere ou sobrescreve o voxel em p, reaproveitando slots livres.
func (c *Chunk) put(p util.VoxelCoord, inst Instance) Handle {
	if h, ok := c.index[p]; ok {
		c.slots[h.Index].inst = inst
		return h
	}

	var idx uint32
	if n := len(c.free); n > 0 {
		idx = c.free[n-1]
		c.free = c.free[:n-1]
	} else {
		idx = uint32(len(c.slots))
		c.slots = append(c.slots, slot{})
	}

	s := &c.slots[idx]
	s.inst = inst
	s.coord = p
	s.live = true
	h := Handle{Index: idx, Gen: s.gen}
	c.index[p] = h
	return h
}

func (c *Chunk) remove(h Handle) {
	s := &c.slots[h.Index]
	if !s.live || s.gen != h.Gen {
		return
	}
	delete(c.index, s.coord)
	s.live = false
	s.gen++
	s.inst = Instance{}
	c.free = append(c.free, h.Index)
}

// rebuild publica um novo buffer de renderização com os voxels vivos.
func (c *Chunk) rebuild() {
	records := make([]InstanceRecord, 0, len(c.index))
	for i := range c.slots {
		if c.slots[i].live {
			records = append(records, newRecord(c.slots[i].inst))
		}
	}
	c.buffer = &RenderBuffer{
		Records: records,
		Version: c.buffer.Version + 1,
	}
}
