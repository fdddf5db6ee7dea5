package util

import "testing"

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int32
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{-8, 2, -4},
		{0, 5, 0},
		{-1, 128, -1},
		{127, 128, 0},
	}
	for _, tt := range tests {
		if got := FloorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestChunkCoordBoundary(t *testing.T) {
	const edge = 128
	tests := []struct {
		name string
		in   int32
		want int32
	}{
		{"centro", 0, 0},
		{"ultimo da celula zero", edge/2 - 1, 0},
		{"primeiro da celula um", edge / 2, 1},
		{"primeiro negativo da celula zero", -edge / 2, 0},
		{"ultimo da celula menos um", -edge/2 - 1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChunkCoord(VoxelCoord{tt.in, tt.in, tt.in}, edge)
			if got.X != tt.want || got.Y != tt.want || got.Z != tt.want {
				t.Errorf("ChunkCoord(%d) = %v, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestChunkBoundsRoundTrip(t *testing.T) {
	const edge = 64
	for _, cell := range []VoxelCoord{{0, 0, 0}, {-1, 2, -3}, {5, -5, 0}} {
		b := ChunkBounds(cell, edge)
		if ChunkCoord(b.First, edge) != cell || ChunkCoord(b.Last, edge) != cell {
			t.Errorf("bounds %v não pertencem à célula %v", b, cell)
		}
		if b.Volume() != edge*edge*edge {
			t.Errorf("volume = %d, want %d", b.Volume(), edge*edge*edge)
		}
	}
}

func TestBoxIntersect(t *testing.T) {
	a := NewBox(VoxelCoord{5, 5, 5}, VoxelCoord{-5, -5, -5})
	b := Box{First: VoxelCoord{0, 0, 0}, Last: VoxelCoord{10, 10, 10}}

	got := a.Intersect(b)
	want := Box{First: VoxelCoord{0, 0, 0}, Last: VoxelCoord{5, 5, 5}}
	if got != want {
		t.Errorf("Intersect = %v, want %v", got, want)
	}

	far := Box{First: VoxelCoord{20, 20, 20}, Last: VoxelCoord{30, 30, 30}}
	if !a.Intersect(far).Empty() {
		t.Error("caixas disjuntas deveriam ter interseção vazia")
	}
}

func TestBoxEachVisitsVolume(t *testing.T) {
	b := Box{First: VoxelCoord{-1, 0, 2}, Last: VoxelCoord{1, 1, 3}}
	n := int64(0)
	b.Each(func(c VoxelCoord) {
		if !b.Contains(c) {
			t.Fatalf("coordenada %v fora da caixa", c)
		}
		n++
	})
	if n != b.Volume() {
		t.Errorf("visitou %d coordenadas, volume %d", n, b.Volume())
	}
}

func TestWrap01(t *testing.T) {
	cases := []struct{ in, want float32 }{
		{0, 0},
		{0.25, 0.25},
		{1, 0},
		{1.5, 0.5},
		{-0.25, 0.75},
	}
	for _, c := range cases {
		if got := Wrap01(c.in); got != c.want {
			t.Errorf("Wrap01(%v) = %v, esperado %v", c.in, got, c.want)
		}
	}
}

func TestNewBoxNormalizes(t *testing.T) {
	b := NewBox(VoxelCoord{3, -1, 7}, VoxelCoord{-2, 4, 7})
	want := Box{First: VoxelCoord{-2, -1, 7}, Last: VoxelCoord{3, 4, 7}}
	if b != want {
		t.Errorf("NewBox = %v, want %v", b, want)
	}
}

func TestInWorld(t *testing.T) {
	tests := []struct {
		c    VoxelCoord
		want bool
	}{
		{VoxelCoord{0, 0, 0}, true},
		{VoxelCoord{WorldLimit, -WorldLimit, 0}, true},
		{VoxelCoord{WorldLimit + 1, 0, 0}, false},
		{VoxelCoord{0, 0, -WorldLimit - 1}, false},
	}
	for _, tt := range tests {
		if got := tt.c.InWorld(); got != tt.want {
			t.Errorf("InWorld(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestChunkCoordAtWorldLimit(t *testing.T) {
	const edge = MaxChunkEdge
	for _, v := range []int32{WorldLimit, -WorldLimit} {
		c := VoxelCoord{v, v, v}
		if !ChunkBounds(ChunkCoord(c, edge), edge).Contains(c) {
			t.Errorf("célula de %v não contém a coordenada", c)
		}
	}
}
