// Package shapes contém os predicados geométricos e os classificadores de
// modelos e pincéis usados pelas edições de região.
//
// Todos os classificadores são funções puras: a mesma entrada sempre produz a
// mesma saída e nenhum estado é mantido entre chamadas.
package shapes

import (
	"VoxelForge/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// LineThickness é a distância máxima (em voxels) até a reta para pertencer ao segmento.
	LineThickness float32 = 3.0
	// ShellThickness é o quanto os semi-eixos da elipsoide interna encolhem.
	ShellThickness float32 = 5.0
)

// OnLineSegment retorna true se point está a menos de LineThickness da reta
// first→last e na mesma fatia Z do ponto médio do segmento.
// A restrição de fatia torna a "linha" um traço 2D dentro do mundo 3D.
func OnLineSegment(first, last, point util.VoxelCoord) bool {
	if point.Z != (first.Z+last.Z)/2 {
		return false
	}
	seg := last.Vec().Sub(first.Vec())
	segLen := seg.Len()
	if segLen == 0 {
		return false
	}
	toPoint := last.Vec().Sub(point.Vec())
	distance := seg.Cross(toPoint).Len() / segLen
	return distance < LineThickness
}

// OnEllipsoidShell retorna true se point está dentro da elipsoide inscrita em
// [first, last] e fora da elipsoide interna com semi-eixos reduzidos por
// ShellThickness. O resultado é uma casca, nunca um sólido.
func OnEllipsoidShell(first, last, point util.VoxelCoord) bool {
	a := float32((last.X - first.X) / 2)
	b := float32((last.Y - first.Y) / 2)
	c := float32((last.Z - first.Z) / 2)
	if a == 0 || b == 0 || c == 0 {
		return false
	}

	p := mgl32.Vec3{
		float32(point.X-first.X) - a,
		float32(point.Y-first.Y) - b,
		float32(point.Z-first.Z) - c,
	}
	px, py, pz := p[0]*p[0], p[1]*p[1], p[2]*p[2]

	outer := px/(a*a) + py/(b*b) + pz/(c*c)

	aa, bb, cc := a-ShellThickness, b-ShellThickness, c-ShellThickness
	inner := px/(aa*aa) + py/(bb*bb) + pz/(cc*cc)

	return inner > 1 && outer < 1
}

// onBoxFace retorna true se p está em alguma face da caixa [first, last].
func onBoxFace(first, last, p util.VoxelCoord) bool {
	return p.X == first.X || p.X == last.X ||
		p.Y == first.Y || p.Y == last.Y ||
		p.Z == first.Z || p.Z == last.Z
}

// mid retorna o ponto médio inteiro (truncado) de dois valores.
func mid(a, b int32) int32 {
	return (a + b) / 2
}
