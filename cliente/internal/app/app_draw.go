package app

import (
	"fmt"

	"VoxelForge/cliente/internal/render"
	"VoxelForge/shared/editor"
	"VoxelForge/shared/voxel"

	"github.com/dustin/go-humanize"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw renderiza a cena.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(30, 30, 40, 255))

	a.drawScene()
	a.drawHUD()
	a.drawConsole()

	rl.EndDrawing()
}

// drawScene renderiza a cena 3D.
func (a *App) drawScene() {
	pose := a.Cam.Pose(float32(rl.GetScreenHeight()))
	rl.BeginMode3D(render.ToRLCamera(pose, a.Cam.Fovy))
	a.renderer.Draw(a.world, a.dispatcher.View(), a.Config.ShowGrid)
	rl.EndMode3D()
}

// drawHUD desenha a interface sobreposta.
func (a *App) drawHUD() {
	if !a.Config.ShowDebugInfo {
		return
	}

	width := int32(340)
	height := int32(230)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)
	rl.DrawText(a.dispatcher.View().String(), x+215, y+10, 20, rl.SkyBlue)

	rl.DrawLine(x+10, y+35, x+width-10, y+35, rl.NewColor(100, 100, 100, 100))

	// Ferramenta
	rl.DrawText("FERRAMENTA", x+10, y+45, 12, rl.Gray)
	rl.DrawText(a.toolLabel(), x+10, y+60, 16, rl.White)
	rl.DrawText(fmt.Sprintf("Amostragem: %.2fx", a.tools.SampleRatio), x+10, y+80, 14, rl.LightGray)

	target := "Mira: -"
	if t := a.lastResult.Target; t.Found {
		target = fmt.Sprintf("Mira: %s", t.Coord)
	}
	rl.DrawText(target, x+10, y+98, 14, rl.LightGray)

	rl.DrawLine(x+10, y+118, x+width-10, y+118, rl.NewColor(100, 100, 100, 100))

	// Mundo
	stats := a.world.Stats()
	rl.DrawText("MUNDO", x+10, y+128, 12, rl.Gray)
	rl.DrawText(fmt.Sprintf("Chunks: %s | Voxels: %s",
		humanize.Comma(int64(stats.Chunks)),
		humanize.Comma(int64(stats.Voxels[voxel.Persistent]))), x+10, y+143, 14, rl.White)
	rl.DrawText(fmt.Sprintf("Luzes: %d/%d (descartadas: %d)",
		stats.Lights, a.world.Lights().Cap(), a.world.Lights().Dropped()), x+10, y+161, 14, rl.LightGray)
	if a.bridge != nil {
		rl.DrawText(fmt.Sprintf("Consoles remotos: %d", a.bridge.Clients()), x+10, y+179, 14, rl.LightGray)
	}

	rl.DrawText("Tab: Ferramenta | PgUp/PgDn: Modelo | F3: Console", x+10, y+205, 12, rl.SkyBlue)
}

func (a *App) toolLabel() string {
	switch a.tools.Mode {
	case editor.ModeBrush:
		b := a.tools.Brush
		return fmt.Sprintf("Brush: %s (raio %d)", a.catalog.Brush(b.Kind).Name, b.Radius)
	case editor.ModePlace:
		m := a.tools.Model
		return fmt.Sprintf("Place: %s (raio %d, altura %d)", m.Name, m.Radius, m.Height)
	}
	return "Normal"
}
