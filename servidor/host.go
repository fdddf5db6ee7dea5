package main

import (
	"context"
	"log"
	"strings"
	"time"

	"VoxelForge/shared/command"
	"VoxelForge/shared/config"
	"VoxelForge/shared/console"
	"VoxelForge/shared/voxel"

	"github.com/dustin/go-humanize"
)

// Host mantém um mundo sem janela, editado apenas por consoles remotos.
type Host struct {
	cfg        *config.Config
	world      *voxel.ChunkManager
	dispatcher *command.Dispatcher
	history    *console.History
	bridge     *console.Bridge // nil nos testes
	sink       console.Sink

	ticks uint64
}

// NewHost monta o mundo e roda os comandos iniciais. journal e bridge podem ser nil.
func NewHost(cfg *config.Config, journal *console.Journal, bridge *console.Bridge) *Host {
	h := &Host{
		cfg:     cfg,
		world:   voxel.NewChunkManager(voxel.OptionsFromConfig(cfg)),
		history: console.NewHistory(cfg.ConsoleHistory),
		bridge:  bridge,
	}

	sinks := []console.Sink{h.history}
	if journal != nil {
		sinks = append(sinks, journal)
	}
	if bridge != nil {
		sinks = append(sinks, bridge)
	}
	h.sink = console.Multi(sinks...)
	h.dispatcher = command.NewDispatcher(h.world, h.sink)

	h.world.SeedGrid(cfg.GridRadius)
	for _, line := range cfg.StartupCommands {
		h.Apply(line)
	}
	return h
}

// Apply ecoa e executa uma linha de comando no mundo.
func (h *Host) Apply(line string) error {
	if line == "" {
		return nil
	}
	if strings.HasPrefix(line, "/") {
		h.sink.Write(console.NewLine(console.KindCommand, line))
	}
	_, err := h.dispatcher.Execute(line)
	return err
}

// Tick aplica tudo que chegou dos consoles remotos desde o último tick.
func (h *Host) Tick() int {
	h.ticks++
	if h.bridge == nil {
		return 0
	}
	inbound := h.bridge.Drain()
	for _, msg := range inbound {
		log.Printf("[Host] %s: %s", msg.Client, msg.Text)
		if err := h.Apply(msg.Text); err != nil {
			log.Printf("[Host] Comando rejeitado: %v", err)
		}
	}
	return len(inbound)
}

// Run roda o loop de ticks até o contexto terminar.
func (h *Host) Run(ctx context.Context) {
	rate := h.cfg.TickRate
	if rate <= 0 {
		rate = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	status := time.NewTicker(30 * time.Second)
	defer status.Stop()

	log.Printf("[Host] Loop iniciado a %d ticks/s", rate)
	for {
		select {
		case <-ctx.Done():
			log.Println("[Host] Loop encerrado")
			return
		case <-ticker.C:
			h.Tick()
		case <-status.C:
			h.logStatus()
		}
	}
}

func (h *Host) logStatus() {
	stats := h.world.Stats()
	clients := 0
	if h.bridge != nil {
		clients = h.bridge.Clients()
	}
	log.Printf("[Host] Chunks: %s | Voxels: %s | Luzes: %d | Consoles: %d",
		humanize.Comma(int64(stats.Chunks)),
		humanize.Comma(int64(stats.Voxels[voxel.Persistent])),
		stats.Lights, clients)
}
