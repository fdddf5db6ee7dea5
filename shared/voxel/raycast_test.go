package voxel

import (
	"testing"

	"VoxelForge/shared/shapes"

	"github.com/go-gl/mathgl/mgl32"
)

// topDown olha reto para baixo: cursor x vira +X, cursor y vira +Z, 1 unidade por pixel.
func topDown() CameraPose {
	return CameraPose{
		Eye:           mgl32.Vec3{0.5, 500, 0.5},
		Target:        mgl32.Vec3{0.5, 0, 0.5},
		Left:          mgl32.Vec3{1, 0, 0},
		Forward:       mgl32.Vec3{0, 0, 1},
		UnitsPerPixel: 1,
	}
}

func TestTargetVoxelHitsTopmost(t *testing.T) {
	m := newTestManager(32, 1)
	// Coluna em (3, 0..4, 7): normal -Y na base, +Y no topo
	m.RouteEdit(vc(3, 0, 7), vc(3, 4, 7), red, false, Persistent, shapes.HollowBoxVertical)

	res := m.TargetVoxel(TargetQuery{Pose: topDown(), Cursor: mgl32.Vec2{3, 7}, SampleRatio: 1})
	if !res.Found {
		t.Fatal("coluna não encontrada")
	}
	if res.Hit != vc(3, 4, 7) || res.Coord != res.Hit {
		t.Errorf("res = %+v, want topo (3,4,7)", res)
	}
	if res.Normal != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("normal = %v", res.Normal)
	}
}

func TestTargetVoxelPlaceOnSurfaceAndSnap(t *testing.T) {
	m := newTestManager(32, 1)
	m.RouteEdit(vc(3, 0, 7), vc(3, 4, 7), red, false, Persistent, shapes.HollowBoxVertical)

	q := TargetQuery{Pose: topDown(), Cursor: mgl32.Vec2{3, 7}, SampleRatio: 1, PlaceOnSurface: true}
	res := m.TargetVoxel(q)
	if res.Coord != vc(3, 5, 7) {
		t.Errorf("place-on-surface = %v, want (3,5,7)", res.Coord)
	}

	q.SnapGrid = 4
	res = m.TargetVoxel(q)
	if res.Coord != vc(4, 4, 8) {
		t.Errorf("snap = %v, want (4,4,8)", res.Coord)
	}
}

func TestTargetVoxelSampleRatioScalesCursor(t *testing.T) {
	m := newTestManager(32, 1)
	m.RouteEdit(vc(6, 0, 6), vc(6, 0, 6), red, false, Persistent, shapes.HollowBoxVertical)

	res := m.TargetVoxel(TargetQuery{Pose: topDown(), Cursor: mgl32.Vec2{3, 3}, SampleRatio: 2})
	if !res.Found || res.Hit != vc(6, 0, 6) {
		t.Errorf("res = %+v", res)
	}
}

func TestTargetVoxelMisses(t *testing.T) {
	m := newTestManager(32, 1)
	if res := m.TargetVoxel(TargetQuery{Pose: topDown(), SampleRatio: 1}); res.Found {
		t.Errorf("mundo vazio retornou %+v", res)
	}

	m.RouteEdit(vc(0, 0, 0), vc(0, 0, 0), red, false, Persistent, shapes.HollowBoxVertical)
	flat := topDown()
	flat.Target = mgl32.Vec3{100, 500, 0}
	if res := m.TargetVoxel(TargetQuery{Pose: flat, SampleRatio: 1}); res.Found {
		t.Errorf("raio horizontal retornou %+v", res)
	}

	// Voxels abaixo do piso do march não são alcançados
	m.RouteEdit(vc(9, -100, 9), vc(9, -100, 9), red, false, Persistent, shapes.HollowBoxVertical)
	if res := m.TargetVoxel(TargetQuery{Pose: topDown(), Cursor: mgl32.Vec2{9, 9}, SampleRatio: 1}); res.Found {
		t.Errorf("voxel abaixo do piso retornou %+v", res)
	}
}

func TestTargetVoxelIsDeterministic(t *testing.T) {
	m := newTestManager(16, 1)
	m.RouteEdit(vc(-10, 0, -10), vc(10, 6, 10), red, false, Persistent, shapes.HollowBoxFaces)

	pose := CameraPose{
		Eye:           mgl32.Vec3{300, 400, 300},
		Target:        mgl32.Vec3{0, 0, 0},
		Left:          mgl32.Vec3{0.7071, 0, -0.7071},
		Forward:       mgl32.Vec3{0.7071, 0, 0.7071},
		UnitsPerPixel: 0.05,
	}
	q := TargetQuery{Pose: pose, Cursor: mgl32.Vec2{40, -25}, SampleRatio: 1.5}
	want := m.TargetVoxel(q)
	if !want.Found {
		t.Fatal("pose de teste não atinge a caixa")
	}
	for i := 0; i < 10; i++ {
		if got := m.TargetVoxel(q); got != want {
			t.Fatalf("chamada %d: %+v != %+v", i, got, want)
		}
	}
}

func TestTargetIgnoresIndicatorChunks(t *testing.T) {
	m := newTestManager(32, 1)
	m.RouteEdit(vc(2, 0, 2), vc(2, 0, 2), red, false, CursorIndicator, shapes.HollowBoxVertical)
	m.SeedGrid(1)
	if res := m.TargetVoxel(TargetQuery{Pose: topDown(), Cursor: mgl32.Vec2{2, 2}, SampleRatio: 1}); res.Found {
		t.Errorf("mira atingiu chunk não persistente: %+v", res)
	}
}
