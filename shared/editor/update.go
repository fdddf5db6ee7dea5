package editor

import (
	"VoxelForge/shared/command"
	"VoxelForge/shared/shapes"
	"VoxelForge/shared/util"
	"VoxelForge/shared/voxel"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	pulseRate   float32 = 0.75 // Ciclos por segundo
	pulseLevels float32 = 16   // O indicador só é redesenhado quando o brilho muda de nível
)

var (
	normalIndicatorColor = mgl32.Vec3{1, 1, 1}
	deleteIndicatorColor = mgl32.Vec3{1, 0.2, 0.2}
)

// Result é o que um frame de Update produziu.
type Result struct {
	Target       voxel.TargetResult
	Indicator    util.Box
	HasIndicator bool
	Command      string          // Linha a enviar ao Dispatcher (vazia se nenhuma)
	Edit         voxel.EditStats // Edição local do Brush neste frame
	ModeChanged  bool
}

// Editor guarda o estado entre frames que não pertence à ferramenta:
// bordas de tecla, último clique e o indicador desenhado.
type Editor struct {
	world   *voxel.ChunkManager
	catalog *shapes.Catalog

	indicator      util.Box
	indicatorColor mgl32.Vec4
	hasIndicator   bool

	prevFirst     util.VoxelCoord
	prevMouseDown bool

	tabLatch, priorLatch, nextLatch bool
}

// NewEditor cria um editor sobre o mundo dado.
func NewEditor(world *voxel.ChunkManager, catalog *shapes.Catalog) *Editor {
	return &Editor{world: world, catalog: catalog}
}

// Update roda um frame: brilho, scroll, troca de ferramenta, mira,
// indicador e clique.
func (e *Editor) Update(in FrameInput, pose voxel.CameraPose, tools *ToolState) Result {
	var res Result

	tools.Pulse = util.Wrap01(tools.Pulse + in.DT*pulseRate)

	if in.Scroll != 0 {
		dir := int32(1)
		if in.Scroll < 0 {
			dir = -1
		}
		if in.Control {
			tools.adjustSampleRatio(float32(dir))
		} else {
			tools.adjustSize(dir, in.Alt)
		}
	}
	if in.Prior && !e.priorLatch {
		tools.cycle(e.catalog, false)
	}
	if in.Next && !e.nextLatch {
		tools.cycle(e.catalog, true)
	}
	e.priorLatch, e.nextLatch = in.Prior, in.Next

	if in.Tab && !e.tabLatch {
		tools.Mode = tools.Mode.Next()
		res.ModeChanged = true
	}
	e.tabLatch = in.Tab

	deleting := tools.Mode == ModePlace && in.Alt
	q := voxel.TargetQuery{
		Pose:           pose,
		Cursor:         in.CursorOffset(),
		SampleRatio:    tools.SampleRatio,
		PlaceOnSurface: tools.Mode == ModePlace && !deleting,
	}
	if tools.Mode == ModePlace && in.Control {
		q.SnapGrid = tools.Model.Scale
	}
	res.Target = e.world.TargetVoxel(q)

	if res.Target.Found {
		res.Indicator = tools.IndicatorBox(res.Target.Coord)
		res.HasIndicator = true
		e.showIndicator(res.Indicator, e.indicatorTint(tools, deleting))
	} else {
		e.clearIndicator()
	}

	if in.MouseLeft && res.Target.Found && (!e.prevMouseDown || res.Indicator.First != e.prevFirst) {
		switch tools.Mode {
		case ModeBrush:
			res.Edit = e.world.RouteDraw(res.Indicator.First, res.Indicator.Last, tools.Brush.Color, tools.Brush.Kind)
		case ModePlace:
			verb := command.VerbPlace
			if deleting {
				verb = command.VerbDelete
			}
			res.Command = command.FormatEdit(verb, res.Indicator.First, res.Indicator.Last, tools.Model.Color, int32(tools.Model.Kind))
		}
	}
	e.prevMouseDown = in.MouseLeft
	if res.Target.Found {
		e.prevFirst = res.Indicator.First
	}
	return res
}

// Indicator retorna a caixa do indicador desenhado, se houver.
func (e *Editor) Indicator() (util.Box, bool) {
	return e.indicator, e.hasIndicator
}

func (e *Editor) indicatorTint(tools *ToolState, deleting bool) mgl32.Vec4 {
	var rgb mgl32.Vec3
	switch {
	case deleting:
		rgb = deleteIndicatorColor
	case tools.Mode == ModeBrush:
		rgb = tools.Brush.Color.Vec3()
	case tools.Mode == ModePlace:
		rgb = tools.Model.Color.Vec3()
	default:
		rgb = normalIndicatorColor
	}
	level := math32.Floor(tools.Pulse*pulseLevels) / pulseLevels
	return rgb.Vec4(0.25 + 0.5*level)
}

// showIndicator troca o indicador anterior pela caixa dada. Não faz nada se
// caixa e cor não mudaram.
func (e *Editor) showIndicator(box util.Box, color mgl32.Vec4) {
	if e.hasIndicator && e.indicator == box && e.indicatorColor == color {
		return
	}
	e.clearIndicator()
	e.world.RouteEdit(box.First, box.Last, color, false, voxel.CursorIndicator, shapes.HollowBoxFaces)
	e.indicator, e.indicatorColor, e.hasIndicator = box, color, true
}

func (e *Editor) clearIndicator() {
	if !e.hasIndicator {
		return
	}
	e.world.RouteEdit(e.indicator.First, e.indicator.Last, mgl32.Vec4{}, true, voxel.CursorIndicator, shapes.UnknownShape)
	e.hasIndicator = false
}
