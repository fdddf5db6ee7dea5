// Package console transporta as linhas do console: histórico em memória,
// diário em SQLite e a ponte websocket para consoles remotos.
package console

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/samber/lo"
)

// Kind classifica uma linha do console.
type Kind uint8

const (
	KindServer  Kind = iota // Resposta do servidor a um comando
	KindChat                // Mensagem de chat
	KindCommand             // Comando digitado (entrada)
	KindError               // Falha ao interpretar um comando
)

func (k Kind) String() string {
	switch k {
	case KindServer:
		return "server"
	case KindChat:
		return "chat"
	case KindCommand:
		return "command"
	case KindError:
		return "error"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

var (
	ServerColor = mgl32.Vec3{0.8, 0.8, 0.8}
	ErrorColor  = mgl32.Vec3{1, 0.35, 0.3}
)

// Line é uma linha exibida no console.
type Line struct {
	Kind  Kind
	Text  string
	Color mgl32.Vec3
	At    time.Time
}

// NewLine cria uma linha com a cor padrão do tipo e o horário atual.
func NewLine(kind Kind, text string) Line {
	color := ServerColor
	if kind == KindError {
		color = ErrorColor
	}
	return Line{Kind: kind, Text: text, Color: color, At: time.Now()}
}

// Sink recebe linhas do console. Implementações não podem bloquear a thread do frame.
type Sink interface {
	Write(line Line)
}

// SinkFunc adapta uma função a Sink.
type SinkFunc func(line Line)

func (f SinkFunc) Write(line Line) { f(line) }

type multiSink []Sink

func (m multiSink) Write(line Line) {
	for _, s := range m {
		s.Write(line)
	}
}

// Multi repassa cada linha a todos os sinks não nulos, em ordem.
func Multi(sinks ...Sink) Sink {
	return multiSink(lo.Filter(sinks, func(s Sink, _ int) bool { return s != nil }))
}
