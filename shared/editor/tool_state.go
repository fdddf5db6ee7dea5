package editor

import (
	"VoxelForge/shared/shapes"
	"VoxelForge/shared/util"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/samber/lo"
)

// ToolMode é a ferramenta ativa.
type ToolMode uint8

const (
	ModeNormal ToolMode = iota
	ModeBrush
	ModePlace

	toolModeCount
)

// Next avança o ciclo Normal → Brush → Place → Normal.
func (m ToolMode) Next() ToolMode {
	return (m + 1) % toolModeCount
}

func (m ToolMode) String() string {
	switch m {
	case ModeBrush:
		return "Brush"
	case ModePlace:
		return "Place"
	}
	return "Normal"
}

const (
	MinSampleRatio  float32 = 1
	MaxSampleRatio  float32 = 4
	SampleRatioStep float32 = 0.25

	maxBrushRadius int32 = 32
	maxModelRadius int32 = 64
	maxModelHeight int32 = 128
)

var (
	defaultBrushColor = mgl32.Vec4{1, 0.55, 0.1, 1}
	defaultModelColor = mgl32.Vec4{0.8, 0.8, 0.85, 1}
)

// BrushState é o estado da ferramenta Brush.
type BrushState struct {
	Kind   shapes.BrushKind
	Radius int32
	Color  mgl32.Vec4
}

// ModelState é o estado da ferramenta Place.
type ModelState struct {
	Kind   shapes.ShapeKind
	Name   string
	Scale  int32 // Grid de encaixe com Control
	Height int32
	Radius int32
	Color  mgl32.Vec4
}

// ToolState agrupa a ferramenta ativa e o estado de cada uma.
// É passado por ponteiro a Editor.Update; nada disso é global.
type ToolState struct {
	Mode        ToolMode
	Brush       BrushState
	Model       ModelState
	SampleRatio float32
	Pulse       float32 // Fase do brilho do indicador, em [0, 1)
}

// NewToolState cria o estado inicial com as pegadas do catálogo.
func NewToolState(cat *shapes.Catalog) *ToolState {
	t := &ToolState{
		Mode:        ModeNormal,
		SampleRatio: MinSampleRatio,
		Brush:       BrushState{Color: defaultBrushColor},
		Model:       ModelState{Color: defaultModelColor},
	}
	t.SetBrush(cat, shapes.Recolor)
	t.SetModel(cat, shapes.HollowBoxFaces)
	return t
}

// SetBrush troca o pincel e adota o raio do catálogo.
func (t *ToolState) SetBrush(cat *shapes.Catalog, kind shapes.BrushKind) {
	e := cat.Brush(kind)
	t.Brush.Kind = kind
	t.Brush.Radius = lo.Clamp(e.Radius, 0, maxBrushRadius)
}

// SetModel troca o modelo e adota nome, escala e pegada do catálogo.
func (t *ToolState) SetModel(cat *shapes.Catalog, kind shapes.ShapeKind) {
	e := cat.Model(kind)
	t.Model.Kind = kind
	t.Model.Name = e.Name
	t.Model.Scale = e.Scale
	t.Model.Height = lo.Clamp(e.Height, 1, maxModelHeight)
	t.Model.Radius = lo.Clamp(e.Radius, 0, maxModelRadius)
}

// IndicatorBox é a região coberta pela ferramenta ativa com alvo em c.
func (t *ToolState) IndicatorBox(c util.VoxelCoord) util.Box {
	switch t.Mode {
	case ModeBrush:
		r := t.Brush.Radius
		return util.Box{
			First: c.Sub(util.NewVoxelCoord(r, r, r)),
			Last:  c.Add(util.NewVoxelCoord(r, r, r)),
		}
	case ModePlace:
		r, h := t.Model.Radius, t.Model.Height
		return util.Box{
			First: c.Sub(util.NewVoxelCoord(r, 0, r)),
			Last:  c.Add(util.NewVoxelCoord(r, h-1, r)),
		}
	}
	return util.Box{First: c, Last: c}
}

func (t *ToolState) adjustSampleRatio(dir float32) {
	t.SampleRatio = lo.Clamp(t.SampleRatio+dir*SampleRatioStep, MinSampleRatio, MaxSampleRatio)
}

func (t *ToolState) adjustSize(dir int32, alt bool) {
	switch t.Mode {
	case ModeBrush:
		t.Brush.Radius = lo.Clamp(t.Brush.Radius+dir, 0, maxBrushRadius)
	case ModePlace:
		if alt {
			t.Model.Height = lo.Clamp(t.Model.Height+dir, 1, maxModelHeight)
		} else {
			t.Model.Radius = lo.Clamp(t.Model.Radius+dir, 0, maxModelRadius)
		}
	}
}

func (t *ToolState) cycle(cat *shapes.Catalog, forward bool) {
	switch t.Mode {
	case ModeBrush:
		next := t.Brush.Kind.Prev()
		if forward {
			next = t.Brush.Kind.Next()
		}
		t.SetBrush(cat, next)
	case ModePlace:
		next := t.Model.Kind.Prev()
		if forward {
			next = t.Model.Kind.Next()
		}
		t.SetModel(cat, next)
	}
}
