package command

import (
	"encoding/hex"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ChatLine é uma mensagem de chat com cor opcional.
type ChatLine struct {
	Text     string
	Color    mgl32.Vec3
	HasColor bool
}

// DefaultChatColor é a cor de mensagens sem prefixo.
var DefaultChatColor = mgl32.Vec3{1, 1, 1}

// ParseChat separa o prefixo "rrggbb:" (três bytes em hex) do texto.
// Sem prefixo válido, a linha inteira é o texto e a cor é a padrão.
func ParseChat(line string) ChatLine {
	prefix, text, found := strings.Cut(line, ":")
	if found && len(prefix) == 6 {
		if raw, err := hex.DecodeString(prefix); err == nil {
			return ChatLine{
				Text:     strings.TrimSpace(text),
				Color:    mgl32.Vec3{float32(raw[0]) / 255, float32(raw[1]) / 255, float32(raw[2]) / 255},
				HasColor: true,
			}
		}
	}
	return ChatLine{Text: line, Color: DefaultChatColor}
}
