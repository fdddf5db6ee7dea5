package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"VoxelForge/shared/util"

	"github.com/BurntSushi/toml"
	"github.com/jinzhu/copier"
)

// ErrInvalid é retornado por Validate quando algum campo está fora da faixa aceita.
var ErrInvalid = errors.New("configuração inválida")

// Config armazena as configurações do VoxelForge.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width" toml:"window_width"`
	WindowHeight int32  `json:"window_height" toml:"window_height"`
	WindowTitle  string `json:"window_title" toml:"window_title"`
	Fullscreen   bool   `json:"fullscreen" toml:"fullscreen"`
	TargetFPS    int32  `json:"target_fps" toml:"target_fps"`

	// Mundo
	ChunkEdge     int32 `json:"chunk_edge" toml:"chunk_edge"` // Aresta do chunk em voxels (par)
	GridRadius    int32 `json:"grid_radius" toml:"grid_radius"`
	LightPoolSize int   `json:"light_pool_size" toml:"light_pool_size"`

	// Mira (ray march)
	MarchTop   float32 `json:"march_top" toml:"march_top"`
	MarchFloor float32 `json:"march_floor" toml:"march_floor"`
	MarchStep  float32 `json:"march_step" toml:"march_step"`

	// Câmera
	CameraSpeed       float32 `json:"camera_speed" toml:"camera_speed"`
	CameraSensitivity float32 `json:"camera_sensitivity" toml:"camera_sensitivity"`
	CameraRadius      float32 `json:"camera_radius" toml:"camera_radius"`
	CameraHeight      float32 `json:"camera_height" toml:"camera_height"`
	CameraFovy        float32 `json:"camera_fovy" toml:"camera_fovy"` // Altura da vista ortográfica em unidades

	// Console
	ConsoleHistory int    `json:"console_history" toml:"console_history"`
	JournalPath    string `json:"journal_path" toml:"journal_path"` // Vazio desliga o histórico em SQLite
	BridgeAddr     string `json:"bridge_addr" toml:"bridge_addr"`   // Vazio desliga o console remoto

	// Comandos executados ao abrir o mundo, antes do primeiro frame
	StartupCommands []string `json:"startup_commands" toml:"startup_commands"`

	// Logs
	LogFile       string `json:"log_file" toml:"log_file"`
	LogMaxSizeMB  int    `json:"log_max_size_mb" toml:"log_max_size_mb"`
	LogMaxBackups int    `json:"log_max_backups" toml:"log_max_backups"`
	LogMaxAgeDays int    `json:"log_max_age_days" toml:"log_max_age_days"`

	// Servidor headless
	TickRate int32 `json:"tick_rate" toml:"tick_rate"`

	// Debug
	ShowDebugInfo bool `json:"show_debug_info" toml:"show_debug_info"`
	ShowGrid      bool `json:"show_grid" toml:"show_grid"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "VoxelForge",
		Fullscreen:   false,
		TargetFPS:    60,

		ChunkEdge:     128,
		GridRadius:    4,
		LightPoolSize: 64,

		MarchTop:   256,
		MarchFloor: -256,
		MarchStep:  0.4,

		CameraSpeed:       300,
		CameraSensitivity: 0.002,
		CameraRadius:      2828.427125,
		CameraHeight:      1000,
		CameraFovy:        256,

		ConsoleHistory: 200,
		JournalPath:    "saves/console.db",
		BridgeAddr:     "",

		StartupCommands: []string{
			"/place -128 -1 -128 127 -1 127 0.35 0.4 0.35 1 12",
		},

		LogFile:       "voxelforge.log",
		LogMaxSizeMB:  10,
		LogMaxBackups: 3,
		LogMaxAgeDays: 7,

		TickRate: 30,

		ShowDebugInfo: true,
		ShowGrid:      true,
	}
}

// DefaultPath retorna o caminho do config.json ao lado do executável.
func DefaultPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações do caminho padrão.
// Se o arquivo não existir ou estiver corrompido, retorna as configurações padrão.
func Load() *Config {
	cfg, err := LoadFile(DefaultPath())
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// LoadFile lê um arquivo JSON ou TOML (pela extensão) sobre os valores padrão.
// Arquivo inexistente não é erro: retorna os padrões.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("falha ao ler %s: %w", path, err)
		}
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao ler %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("falha ao decodificar %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Save salva as configurações em um arquivo JSON.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// Clone retorna uma cópia independente da configuração.
func (c *Config) Clone() *Config {
	out := &Config{}
	if err := copier.CopyWithOption(out, c, copier.Option{DeepCopy: true}); err != nil {
		cp := *c
		return &cp
	}
	return out
}

// Validate confere os campos que o núcleo assume válidos.
func (c *Config) Validate() error {
	switch {
	case c.ChunkEdge < 2 || c.ChunkEdge%2 != 0 || c.ChunkEdge > util.MaxChunkEdge:
		return fmt.Errorf("%w: chunk_edge %d deve ser par, entre 2 e %d", ErrInvalid, c.ChunkEdge, util.MaxChunkEdge)
	case c.MarchStep <= 0:
		return fmt.Errorf("%w: march_step deve ser positivo", ErrInvalid)
	case c.MarchTop <= c.MarchFloor:
		return fmt.Errorf("%w: march_top deve ficar acima de march_floor", ErrInvalid)
	case c.LightPoolSize < 0:
		return fmt.Errorf("%w: light_pool_size negativo", ErrInvalid)
	case c.ConsoleHistory <= 0:
		return fmt.Errorf("%w: console_history deve ser positivo", ErrInvalid)
	}
	return nil
}
