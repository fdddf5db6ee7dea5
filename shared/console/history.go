package console

import "sync"

// History guarda as últimas linhas do console em memória para o overlay.
type History struct {
	mu    sync.Mutex
	lines []Line
	max   int
}

// NewHistory cria um histórico limitado a max linhas.
func NewHistory(max int) *History {
	if max <= 0 {
		max = 1
	}
	return &History{lines: make([]Line, 0, max), max: max}
}

// Write adiciona uma linha, descartando a mais antiga quando cheio.
func (h *History) Write(line Line) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.lines) == h.max {
		copy(h.lines, h.lines[1:])
		h.lines = h.lines[:h.max-1]
	}
	h.lines = append(h.lines, line)
}

// Lines retorna uma cópia das linhas, da mais antiga para a mais nova.
func (h *History) Lines() []Line {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Line, len(h.lines))
	copy(out, h.lines)
	return out
}

// Tail retorna as últimas n linhas.
func (h *History) Tail(n int) []Line {
	lines := h.Lines()
	n = max(n, 0)
	if n < len(lines) {
		return lines[len(lines)-n:]
	}
	return lines
}

// Len retorna o número de linhas guardadas.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.lines)
}
