package voxel

import (
	"testing"

	"VoxelForge/shared/shapes"
	"VoxelForge/shared/util"
)

func newTestManager(edge int32, lights int) *ChunkManager {
	return NewChunkManager(Options{
		ChunkEdge:     edge,
		LightPoolSize: lights,
		March:         MarchConfig{Top: 64, Floor: -64, Step: 0.4},
	})
}

func TestRouteEditChunkCoverage(t *testing.T) {
	const edge = 128
	tests := []struct {
		name        string
		first, last int32
		wantCells   int
	}{
		{"dentro da célula zero", 0, edge/2 - 1, 1},
		{"atravessa a fronteira", edge/2 - 1, edge / 2, 2},
		{"exatamente na fronteira", edge / 2, edge / 2, 1},
		{"três células", -edge/2 - 1, edge / 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(edge, 4)
			stats := m.RouteEdit(vc(tt.first, 0, 0), vc(tt.last, 0, 0), red, false, Persistent, shapes.HollowBoxVertical)
			if stats.Chunks != tt.wantCells || stats.Created != tt.wantCells {
				t.Errorf("stats = %+v, want %d chunks", stats, tt.wantCells)
			}
			if want := int(tt.last - tt.first + 1); stats.Added != want {
				t.Errorf("Added = %d, want %d", stats.Added, want)
			}
		})
	}
}

func TestRouteEditSplitsAcrossChunks(t *testing.T) {
	m := newTestManager(16, 4)
	first, last := vc(-20, -3, -20), vc(20, 3, 20)
	stats := m.RouteEdit(first, last, red, false, Persistent, shapes.HollowBoxFaces)

	if stats.Chunks != 3*1*3 {
		t.Fatalf("Chunks = %d, want 9", stats.Chunks)
	}
	// Toda a superfície existe, independentemente do chunk que a guarda
	n := 0
	util.Box{First: first, Last: last}.Each(func(p util.VoxelCoord) {
		_, ok := m.Lookup(p)
		onFace := p.X == first.X || p.X == last.X || p.Y == first.Y || p.Y == last.Y || p.Z == first.Z || p.Z == last.Z
		if ok != onFace {
			t.Fatalf("%v: ok=%v face=%v", p, ok, onFace)
		}
		if ok {
			n++
		}
	})
	if n != stats.Added {
		t.Errorf("lookup achou %d, Added=%d", n, stats.Added)
	}

	del := m.RouteEdit(first, last, red, true, Persistent, shapes.HollowBoxFaces)
	if del.Removed != n || del.Created != 0 {
		t.Errorf("delete = %+v", del)
	}
}

func TestRolesDoNotCollide(t *testing.T) {
	m := newTestManager(32, 4)
	p := vc(1, 1, 1)
	m.RouteEdit(p, p, red, false, Persistent, shapes.HollowBoxVertical)
	m.RouteEdit(p, p, green, false, CursorIndicator, shapes.HollowBoxVertical)
	m.RouteEdit(p, p, green, true, CursorIndicator, shapes.HollowBoxVertical)

	inst, ok := m.Lookup(p)
	if !ok || inst.Color != red {
		t.Errorf("voxel persistente alterado pela prévia: %+v, %v", inst, ok)
	}
	if _, ok := m.Chunk(vc(0, 0, 0), CursorIndicator); !ok {
		t.Error("chunk de prévia vazio deveria continuar residente")
	}
}

func TestRouteDrawOnlyPersistent(t *testing.T) {
	m := newTestManager(32, 4)
	m.RouteEdit(vc(0, 0, 0), vc(3, 0, 0), red, false, CursorIndicator, shapes.HollowBoxVertical)
	stats := m.RouteDraw(vc(0, 0, 0), vc(3, 0, 0), green, shapes.Recolor)
	if stats.Chunks != 0 || stats.Painted != 0 {
		t.Errorf("draw tocou chunk não persistente: %+v", stats)
	}

	m.RouteEdit(vc(0, 0, 0), vc(3, 0, 0), red, false, Persistent, shapes.HollowBoxVertical)
	stats = m.RouteDraw(vc(0, 0, 0), vc(40, 0, 0), green, shapes.Recolor)
	if stats.Chunks != 1 || stats.Painted != 4 {
		t.Errorf("stats = %+v", stats)
	}
	if _, ok := m.Chunk(vc(1, 0, 0), Persistent); ok {
		t.Error("draw não deve criar chunks")
	}
}

func TestRouteDrawFireDropsWhenPoolFull(t *testing.T) {
	m := newTestManager(32, 3)
	m.RouteEdit(vc(0, 0, 0), vc(9, 0, 0), red, false, Persistent, shapes.HollowBoxVertical)
	stats := m.RouteDraw(vc(0, 0, 0), vc(9, 0, 0), green, shapes.Fire)
	if stats.Painted != 10 || stats.LightsDropped != 7 {
		t.Errorf("stats = %+v", stats)
	}
	if got := len(m.Lights().Active()); got != 3 {
		t.Errorf("luzes ativas = %d", got)
	}
}

func TestChunksStableOrder(t *testing.T) {
	m := newTestManager(16, 1)
	m.RouteEdit(vc(20, 0, 0), vc(20, 0, 0), red, false, Persistent, shapes.HollowBoxVertical)
	m.RouteEdit(vc(-20, 0, 0), vc(-20, 0, 0), red, false, Persistent, shapes.HollowBoxVertical)
	m.RouteEdit(vc(0, 0, 0), vc(0, 0, 0), red, false, CursorIndicator, shapes.HollowBoxVertical)

	chunks := m.Chunks()
	if len(chunks) != 3 {
		t.Fatalf("len = %d", len(chunks))
	}
	if chunks[0].Role != CursorIndicator || chunks[1].Grid.X != -1 || chunks[2].Grid.X != 1 {
		t.Errorf("ordem inesperada: %v/%v %v %v", chunks[0].Role, chunks[0].Grid, chunks[1].Grid, chunks[2].Grid)
	}
}

func TestSeedGrid(t *testing.T) {
	m := newTestManager(16, 1)
	n := m.SeedGrid(1)
	// Disco de raio 1: 5 células, 2*16-1 voxels de linha cada
	if n != 5*31 {
		t.Errorf("voxels = %d, want %d", n, 5*31)
	}
	stats := m.Stats()
	if stats.Voxels[TerrainIndicator] != n || stats.Voxels[Persistent] != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if _, ok := m.Lookup(vc(-8, 0, -8)); ok {
		t.Error("grid não deveria aparecer como voxel persistente")
	}
}

func TestRouteFireRepaintKeepsOneLight(t *testing.T) {
	m := newTestManager(32, 64)
	one := vc(3, 0, 3)
	m.RouteEdit(one, one, red, false, Persistent, shapes.HollowBoxVertical)
	for i := 0; i < 5; i++ {
		m.RouteDraw(one, one, green, shapes.Fire)
	}
	if got := m.Lights().Len(); got != 1 {
		t.Errorf("luzes em uso = %d, esperado 1", got)
	}
}

func TestRouteOutsideWorldIsIgnored(t *testing.T) {
	m := newTestManager(128, 4)
	far := vc(2147483600, 0, 0)
	if stats := m.RouteEdit(far, far, red, false, Persistent, shapes.HollowBoxVertical); stats != (EditStats{}) {
		t.Errorf("RouteEdit = %+v", stats)
	}
	if stats := m.RouteDraw(far, far, red, shapes.Fire); stats != (EditStats{}) {
		t.Errorf("RouteDraw = %+v", stats)
	}
	if len(m.Chunks()) != 0 {
		t.Errorf("chunks criados: %d", len(m.Chunks()))
	}

	edge := vc(util.WorldLimit, -util.WorldLimit, 0)
	stats := m.RouteEdit(edge, edge, red, false, Persistent, shapes.HollowBoxVertical)
	if stats.Added != 1 {
		t.Errorf("voxel no limite do mundo: %+v", stats)
	}
	if _, ok := m.Lookup(edge); !ok {
		t.Error("voxel no limite do mundo não encontrado")
	}
}
