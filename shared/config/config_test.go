package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nada.json"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.ChunkEdge != DefaultConfig().ChunkEdge {
		t.Errorf("ChunkEdge = %d", cfg.ChunkEdge)
	}
}

func TestSaveLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")
	cfg := DefaultConfig()
	cfg.ChunkEdge = 64
	cfg.BridgeAddr = ":9000"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got.ChunkEdge != 64 || got.BridgeAddr != ":9000" {
		t.Errorf("got %+v", got)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "servidor.toml")
	data := "chunk_edge = 32\ntick_rate = 10\nbridge_addr = \":7000\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.ChunkEdge != 32 || cfg.TickRate != 10 || cfg.BridgeAddr != ":7000" {
		t.Errorf("got edge=%d tick=%d addr=%q", cfg.ChunkEdge, cfg.TickRate, cfg.BridgeAddr)
	}
	// Campos ausentes mantêm o padrão
	if cfg.MarchStep != DefaultConfig().MarchStep {
		t.Errorf("MarchStep = %v", cfg.MarchStep)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"padrao", func(c *Config) {}, true},
		{"aresta impar", func(c *Config) { c.ChunkEdge = 63 }, false},
		{"aresta grande demais", func(c *Config) { c.ChunkEdge = 1 << 21 }, false},
		{"passo zero", func(c *Config) { c.MarchStep = 0 }, false},
		{"topo abaixo do piso", func(c *Config) { c.MarchTop = -300 }, false},
		{"historico zero", func(c *Config) { c.ConsoleHistory = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.ok && err != nil {
				t.Errorf("erro inesperado: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := DefaultConfig()
	b := a.Clone()
	b.WindowTitle = "outro"
	b.StartupCommands[0] = "/get"
	if a.WindowTitle == "outro" {
		t.Error("Clone compartilha estado com o original")
	}
	if a.StartupCommands[0] == "/get" {
		t.Error("Clone compartilha a lista de comandos iniciais")
	}
}
