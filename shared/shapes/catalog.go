package shapes

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// ModelEntry descreve um modelo e a pegada padrão da ferramenta Place.
type ModelEntry struct {
	ID     int32  `yaml:"id"`
	Name   string `yaml:"name"`
	Radius int32  `yaml:"radius"` // Meia largura em X/Z
	Height int32  `yaml:"height"`
	Scale  int32  `yaml:"scale"` // Tamanho do grid de encaixe
}

// BrushEntry descreve um pincel.
type BrushEntry struct {
	ID     int32  `yaml:"id"`
	Name   string `yaml:"name"`
	Radius int32  `yaml:"radius"`
}

// Catalog indexa os modelos e pincéis conhecidos.
type Catalog struct {
	Models  []ModelEntry `yaml:"models"`
	Brushes []BrushEntry `yaml:"brushes"`

	models  map[ShapeKind]ModelEntry
	brushes map[BrushKind]BrushEntry
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// DefaultCatalog retorna o catálogo embutido no binário (carregado uma vez).
func DefaultCatalog() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = ParseCatalog(catalogYAML)
	})
	return defaultCatalog, defaultErr
}

// ParseCatalog decodifica um catálogo YAML e confere que cada id existe.
func ParseCatalog(data []byte) (*Catalog, error) {
	c := &Catalog{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("falha ao decodificar catálogo: %w", err)
	}

	c.models = make(map[ShapeKind]ModelEntry, len(c.Models))
	for _, m := range c.Models {
		kind, ok := ParseShapeKind(m.ID)
		if !ok {
			return nil, fmt.Errorf("catálogo: modelo com id desconhecido %d", m.ID)
		}
		if m.Radius < 0 || m.Height < 1 || m.Scale < 1 {
			return nil, fmt.Errorf("catálogo: pegada inválida para %q", m.Name)
		}
		c.models[kind] = m
	}

	c.brushes = make(map[BrushKind]BrushEntry, len(c.Brushes))
	for _, b := range c.Brushes {
		kind, ok := ParseBrushKind(b.ID)
		if !ok {
			return nil, fmt.Errorf("catálogo: pincel com id desconhecido %d", b.ID)
		}
		c.brushes[kind] = b
	}
	return c, nil
}

// Model retorna a entrada do modelo. Modelos fora do catálogo recebem uma pegada mínima.
func (c *Catalog) Model(kind ShapeKind) ModelEntry {
	if m, ok := c.models[kind]; ok {
		return m
	}
	return ModelEntry{ID: int32(kind), Name: kind.String(), Radius: 4, Height: 8, Scale: 8}
}

// Brush retorna a entrada do pincel.
func (c *Catalog) Brush(kind BrushKind) BrushEntry {
	if b, ok := c.brushes[kind]; ok {
		return b
	}
	return BrushEntry{ID: int32(kind), Name: kind.String(), Radius: 1}
}
