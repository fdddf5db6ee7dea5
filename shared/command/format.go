package command

import (
	"strconv"
	"strings"

	"VoxelForge/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

// FormatEdit monta a linha de um comando de edição. Os floats usam a menor
// representação que volta ao mesmo float32 em Parse.
func FormatEdit(verb Verb, first, last util.VoxelCoord, color mgl32.Vec4, id int32) string {
	var b strings.Builder
	b.WriteString(verb.String())
	for _, v := range []int32{first.X, first.Y, first.Z, last.X, last.Y, last.Z} {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	for _, c := range color {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(float64(c), 'g', -1, 32))
	}
	b.WriteByte(' ')
	b.WriteString(strconv.FormatInt(int64(id), 10))
	return b.String()
}

// FormatRequest é FormatEdit aplicado a um Request.
func FormatRequest(r Request) string {
	if !r.Verb.IsEdit() {
		return r.Verb.String()
	}
	return FormatEdit(r.Verb, r.First, r.Last, r.Color, r.ID)
}
