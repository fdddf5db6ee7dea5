package main

import (
	"flag"
	"log"
	"runtime"

	"VoxelForge/cliente/internal/app"
	"VoxelForge/shared/config"
	"VoxelForge/shared/util"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	configPath := flag.String("config", "", "Arquivo de configuração (.toml ou .json)")
	bridge := flag.String("bridge", "", "Endereço para aceitar consoles remotos (ex: :8080)")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	flag.Parse()

	// Carregar configurações
	cfg := config.Load()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("[VoxelForge] Configuração inválida: %v", err)
		}
	}

	// Flags sobrescrevem o config salvo
	if *bridge != "" {
		cfg.BridgeAddr = *bridge
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}

	logFile := util.SetupLogging(util.LogRotation{
		Path:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	defer logFile.Close()

	log.Println("╔══════════════════════════════════════╗")
	log.Println("║         VoxelForge v0.1.0            ║")
	log.Println("║      Editor de voxels em 3D          ║")
	log.Println("╚══════════════════════════════════════╝")

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("[VoxelForge] Falha ao iniciar: %v", err)
	}
	application.Run()
}
