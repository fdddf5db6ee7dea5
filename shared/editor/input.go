// Package editor roda a atualização por frame: ferramenta ativa, mira,
// indicador do cursor e a decisão de editar ou emitir um comando.
package editor

import "github.com/go-gl/mathgl/mgl32"

// FrameInput é o que o controle entrega a cada frame, já sem eventos brutos.
type FrameInput struct {
	DT float32 // Segundos desde o último frame

	Forward, Back, Left, Right, Up, Down bool

	Look   mgl32.Vec2 // Delta de rotação
	Scroll float32

	Cursor mgl32.Vec2 // Posição do ponteiro em pixels
	Screen mgl32.Vec2 // Tamanho da tela em pixels

	MouseLeft, MouseRight bool

	Control, Alt, Tab, Prior, Next bool
}

// CursorOffset é a posição do ponteiro relativa ao centro da tela.
func (in FrameInput) CursorOffset() mgl32.Vec2 {
	return in.Cursor.Sub(in.Screen.Mul(0.5))
}
