package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"VoxelForge/shared/config"
	"VoxelForge/shared/console"
	"VoxelForge/shared/util"
)

func main() {
	configPath := flag.String("config", "servidor.toml", "Arquivo de configuração (.toml ou .json)")
	addr := flag.String("addr", "", "Endereço do console remoto (padrão: :8080)")
	flag.Parse()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("[Servidor] Configuração inválida: %v", err)
	}
	if *addr != "" {
		cfg.BridgeAddr = *addr
	}
	if cfg.BridgeAddr == "" {
		cfg.BridgeAddr = ":8080"
	}

	logFile := util.SetupLogging(util.LogRotation{
		Path:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	defer logFile.Close()

	log.Println("╔══════════════════════════════════════╗")
	log.Println("║     VoxelForge Servidor v0.1.0       ║")
	log.Println("╚══════════════════════════════════════╝")

	var journal *console.Journal
	if cfg.JournalPath != "" {
		journal, err = console.OpenJournal(cfg.JournalPath)
		if err != nil {
			log.Fatalf("[Servidor] %v", err)
		}
		defer journal.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bridge := console.NewBridge()
	host := NewHost(cfg, journal, bridge)

	go func() {
		if err := bridge.Serve(ctx, cfg.BridgeAddr); err != nil {
			log.Printf("[Bridge] %v", err)
			stop()
		}
	}()
	log.Printf("[Servidor] Console remoto em ws://%s%s", cfg.BridgeAddr, console.Route)

	host.Run(ctx)
}
