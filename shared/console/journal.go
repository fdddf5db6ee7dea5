package console

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// LineModel é o esquema de uma linha do console no banco.
type LineModel struct {
	ID        uint `gorm:"primaryKey"`
	Kind      uint8
	Text      string
	R, G, B   float32
	CreatedAt time.Time `gorm:"index"`
}

func (LineModel) TableName() string { return "console_lines" }

// Journal grava o histórico do console (comandos, respostas e chat) em SQLite.
// Não guarda o mundo de voxels: só o que passou pelo console.
type Journal struct {
	db *gorm.DB
}

// OpenJournal abre (ou cria) o banco no caminho dado e roda a migração.
func OpenJournal(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("falha ao criar diretório do diário: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}
	if err := db.AutoMigrate(&LineModel{}); err != nil {
		return nil, fmt.Errorf("falha na migração do diário: %w", err)
	}

	log.Printf("[Journal] Diário do console aberto: %s", path)
	return &Journal{db: db}, nil
}

// Write grava a linha. Falhas são apenas logadas.
func (j *Journal) Write(line Line) {
	at := line.At
	if at.IsZero() {
		at = time.Now()
	}
	m := LineModel{
		Kind:      uint8(line.Kind),
		Text:      line.Text,
		R:         line.Color[0],
		G:         line.Color[1],
		B:         line.Color[2],
		CreatedAt: at,
	}
	if err := j.db.Create(&m).Error; err != nil {
		log.Printf("[Journal] Erro ao gravar linha: %v", err)
	}
}

// Recent retorna as últimas n linhas, da mais antiga para a mais nova.
func (j *Journal) Recent(n int) ([]Line, error) {
	var models []LineModel
	if err := j.db.Order("id desc").Limit(n).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("falha ao ler diário: %w", err)
	}
	slices.Reverse(models)

	lines := make([]Line, len(models))
	for i, m := range models {
		lines[i] = Line{
			Kind:  Kind(m.Kind),
			Text:  m.Text,
			Color: mgl32.Vec3{m.R, m.G, m.B},
			At:    m.CreatedAt,
		}
	}
	return lines, nil
}

// Count retorna o total de linhas gravadas.
func (j *Journal) Count() (int64, error) {
	var n int64
	err := j.db.Model(&LineModel{}).Count(&n).Error
	return n, err
}

// Close fecha a conexão com o banco.
func (j *Journal) Close() error {
	sqlDB, err := j.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
