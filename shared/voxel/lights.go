package voxel

import "github.com/go-gl/mathgl/mgl32"

// Light é uma luz pontual acesa por um voxel de fogo.
type Light struct {
	Position mgl32.Vec3
	Color    mgl32.Vec4
}

// LightPool é um conjunto de capacidade fixa de luzes.
// Os slots livres ficam numa pilha; luzes nunca são liberadas e, com o pool
// cheio, novas luzes são descartadas (apenas contadas).
type LightPool struct {
	slots   []Light
	used    []bool
	free    []int
	dropped int
}

// NewLightPool cria um pool com a capacidade dada.
func NewLightPool(capacity int) *LightPool {
	p := &LightPool{
		slots: make([]Light, capacity),
		used:  make([]bool, capacity),
		free:  make([]int, capacity),
	}
	// O slot 0 fica no topo da pilha
	for i := range p.free {
		p.free[i] = capacity - 1 - i
	}
	return p
}

// Claim ocupa um slot livre com a luz dada. Retorna false se o pool estiver cheio.
func (p *LightPool) Claim(position mgl32.Vec3, color mgl32.Vec4) (int, bool) {
	n := len(p.free)
	if n == 0 {
		p.dropped++
		return -1, false
	}
	idx := p.free[n-1]
	p.free = p.free[:n-1]
	p.slots[idx] = Light{Position: position, Color: color}
	p.used[idx] = true
	return idx, true
}

// Active retorna uma cópia das luzes acesas, na ordem dos slots.
func (p *LightPool) Active() []Light {
	out := make([]Light, 0, p.Len())
	for i, l := range p.slots {
		if p.used[i] {
			out = append(out, l)
		}
	}
	return out
}

// Len retorna quantos slots estão ocupados.
func (p *LightPool) Len() int {
	return len(p.slots) - len(p.free)
}

// Cap retorna a capacidade do pool.
func (p *LightPool) Cap() int {
	return len(p.slots)
}

// Dropped retorna quantas luzes foram descartadas por falta de slot.
func (p *LightPool) Dropped() int {
	return p.dropped
}
