package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"VoxelForge/cliente/internal/camera"
	"VoxelForge/cliente/internal/render"
	"VoxelForge/shared/command"
	"VoxelForge/shared/config"
	"VoxelForge/shared/console"
	"VoxelForge/shared/editor"
	"VoxelForge/shared/shapes"
	"VoxelForge/shared/voxel"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// App é a aplicação principal do VoxelForge.
type App struct {
	Config *config.Config

	Cam *camera.OrbitCamera

	world      *voxel.ChunkManager
	catalog    *shapes.Catalog
	tools      *editor.ToolState
	editor     *editor.Editor
	dispatcher *command.Dispatcher
	renderer   *render.VoxelRenderer

	history *console.History
	journal *console.Journal
	bridge  *console.Bridge
	sink    console.Sink

	stopBridge context.CancelFunc

	// Console local
	consoleOpen   bool
	consoleInput  []rune
	backspaceHeld int

	frameCount int
	lastResult editor.Result
}

// New monta o mundo, o console e os comandos iniciais. Não abre a janela.
func New(cfg *config.Config) (*App, error) {
	cat, err := shapes.DefaultCatalog()
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar catálogo: %w", err)
	}

	a := &App{
		Config:  cfg,
		catalog: cat,
		history: console.NewHistory(cfg.ConsoleHistory),
		world:   voxel.NewChunkManager(voxel.OptionsFromConfig(cfg)),
	}

	sinks := []console.Sink{a.history}
	if cfg.JournalPath != "" {
		a.journal, err = console.OpenJournal(cfg.JournalPath)
		if err != nil {
			return nil, err
		}
		if recent, err := a.journal.Recent(cfg.ConsoleHistory); err == nil {
			for _, l := range recent {
				a.history.Write(l)
			}
		}
		sinks = append(sinks, a.journal)
	}
	if cfg.BridgeAddr != "" {
		a.bridge = console.NewBridge()
		sinks = append(sinks, a.bridge)
	}
	a.sink = console.Multi(sinks...)

	a.dispatcher = command.NewDispatcher(a.world, a.sink)
	a.tools = editor.NewToolState(cat)
	a.editor = editor.NewEditor(a.world, cat)
	a.Cam = camera.New(cfg)

	a.world.SeedGrid(cfg.GridRadius)
	for _, line := range cfg.StartupCommands {
		a.dispatcher.Execute(line)
	}
	return a, nil
}

// Run abre a janela e roda o loop principal até ela ser fechada.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning)

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}
	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(0)

	log.Println("[VoxelForge] Janela inicializada com sucesso")
	log.Printf("[VoxelForge] Resolução: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	a.renderer = render.NewVoxelRenderer()

	if a.bridge != nil {
		ctx, cancel := context.WithCancel(context.Background())
		a.stopBridge = cancel
		go func() {
			if err := a.bridge.Serve(ctx, a.Config.BridgeAddr); err != nil {
				log.Printf("[Bridge] %v", err)
			}
		}()
	}

	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
}

// update roda a lógica de um frame.
func (a *App) update() {
	a.frameCount++

	a.updateConsole()
	a.updateInput()

	in := a.readFrameInput()
	a.Cam.Update(in)
	pose := a.Cam.Pose(in.Screen[1])

	res := a.editor.Update(in, pose, a.tools)
	if res.ModeChanged {
		log.Printf("[Editor] Ferramenta: %s", a.tools.Mode)
	}
	if res.Command != "" {
		a.execute(res.Command)
	}
	a.lastResult = res

	a.drainBridge()
}

// execute ecoa a linha no console e a aplica ao mundo.
func (a *App) execute(line string) {
	if line == "" {
		return
	}
	// Chat já vira linha própria no dispatcher
	if strings.HasPrefix(line, "/") {
		a.sink.Write(console.NewLine(console.KindCommand, line))
	}
	a.dispatcher.Execute(line)
}

// drainBridge aplica as linhas vindas de consoles remotos.
func (a *App) drainBridge() {
	if a.bridge == nil {
		return
	}
	for _, msg := range a.bridge.Drain() {
		log.Printf("[Bridge] %s: %s", msg.Client, msg.Text)
		a.execute(msg.Text)
	}
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	if a.stopBridge != nil {
		a.stopBridge()
	}
	if a.renderer != nil {
		a.renderer.Unload()
	}
	if a.journal != nil {
		if err := a.journal.Close(); err != nil {
			log.Printf("[Journal] Erro ao fechar: %v", err)
		}
	}
	if err := a.Config.Save(config.DefaultPath()); err != nil {
		log.Printf("[VoxelForge] Erro ao salvar configurações: %v", err)
	}
}
