package app

import (
	"strings"

	"VoxelForge/shared/console"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	consoleLines    = 12
	consoleFontSize = 16
	maxConsoleInput = 256
)

// updateConsole trata a digitação no console local. F3 abre e fecha,
// Enter envia, Esc fecha sem enviar.
func (a *App) updateConsole() {
	if rl.IsKeyPressed(rl.KeyF3) {
		a.consoleOpen = !a.consoleOpen
		a.consoleInput = a.consoleInput[:0]
		return
	}
	if !a.consoleOpen {
		return
	}

	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if len(a.consoleInput) < maxConsoleInput {
			a.consoleInput = append(a.consoleInput, rune(ch))
		}
	}

	// Backspace segurado repete a cada 3 frames depois de meio segundo
	if rl.IsKeyDown(rl.KeyBackspace) {
		a.backspaceHeld++
	} else {
		a.backspaceHeld = 0
	}
	repeat := a.backspaceHeld > 30 && a.backspaceHeld%3 == 0
	if (rl.IsKeyPressed(rl.KeyBackspace) || repeat) && len(a.consoleInput) > 0 {
		a.consoleInput = a.consoleInput[:len(a.consoleInput)-1]
	}

	switch {
	case rl.IsKeyPressed(rl.KeyEnter):
		line := strings.TrimSpace(string(a.consoleInput))
		a.consoleInput = a.consoleInput[:0]
		a.execute(line)
	case rl.IsKeyPressed(rl.KeyEscape):
		a.consoleOpen = false
		a.consoleInput = a.consoleInput[:0]
	}
}

// drawConsole desenha as últimas linhas e, se aberto, a linha de digitação.
func (a *App) drawConsole() {
	lines := a.history.Tail(consoleLines)
	if !a.consoleOpen && len(lines) == 0 {
		return
	}

	x := int32(10)
	lineH := int32(consoleFontSize + 4)
	y := int32(rl.GetScreenHeight()) - lineH*int32(consoleLines+2)

	if a.consoleOpen {
		rl.DrawRectangle(x-5, y-5, 640, lineH*int32(consoleLines+1)+10, rl.NewColor(0, 0, 0, 170))
	}

	for i, l := range lines {
		rl.DrawText(l.Text, x, y+int32(i)*lineH, consoleFontSize, lineColor(l))
	}

	if a.consoleOpen {
		prompt := "> " + string(a.consoleInput)
		if (a.frameCount/30)%2 == 0 {
			prompt += "_"
		}
		rl.DrawText(prompt, x, y+int32(consoleLines)*lineH, consoleFontSize, rl.RayWhite)
	}
}

func lineColor(l console.Line) rl.Color {
	alpha := uint8(255)
	if l.Kind == console.KindCommand {
		alpha = 160
	}
	return rl.NewColor(
		uint8(l.Color[0]*255),
		uint8(l.Color[1]*255),
		uint8(l.Color[2]*255),
		alpha,
	)
}
