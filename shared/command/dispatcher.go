package command

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"VoxelForge/shared/console"
	"VoxelForge/shared/shapes"
	"VoxelForge/shared/voxel"
)

// ViewMode é o alvo de renderização exibido na tela.
type ViewMode uint8

const (
	ViewOutput ViewMode = iota
	ViewDiffuse
	ViewNormal
	ViewDepth
)

func (v ViewMode) String() string {
	switch v {
	case ViewDiffuse:
		return "diffuse"
	case ViewNormal:
		return "normal"
	case ViewDepth:
		return "depth"
	}
	return "output"
}

var viewByVerb = map[Verb]ViewMode{
	VerbDiffuse: ViewDiffuse,
	VerbNormal:  ViewNormal,
	VerbDepth:   ViewDepth,
	VerbOutput:  ViewOutput,
}

// Dispatcher aplica as linhas do console ao mundo e reporta o resultado no sink.
// Roda na thread do frame.
type Dispatcher struct {
	world *voxel.ChunkManager
	sink  console.Sink
	view  ViewMode
}

// NewDispatcher cria um despachante. sink pode ser nil.
func NewDispatcher(world *voxel.ChunkManager, sink console.Sink) *Dispatcher {
	if sink == nil {
		sink = console.Multi()
	}
	return &Dispatcher{world: world, sink: sink}
}

// View retorna o modo de visualização escolhido pelo último /diffuse, /normal, /depth ou /output.
func (d *Dispatcher) View() ViewMode {
	return d.view
}

// Execute interpreta e aplica uma linha. Falhas de parse são reportadas no
// sink e devolvidas; o mundo não é alterado nesse caso.
func (d *Dispatcher) Execute(line string) (Request, error) {
	req, err := Parse(line)
	if err != nil {
		if !errors.Is(err, ErrEmpty) {
			d.sink.Write(console.NewLine(console.KindError, failureText(err)))
		}
		return req, err
	}

	switch {
	case req.Verb == VerbChat:
		d.sink.Write(console.Line{
			Kind:  console.KindChat,
			Text:  req.Chat.Text,
			Color: req.Chat.Color,
		})

	case req.Verb == VerbPlace || req.Verb == VerbDelete:
		kind, ok := shapes.ParseShapeKind(req.ID)
		if !ok {
			log.Printf("[Command] AVISO: modelo desconhecido %d em %s", req.ID, req.Verb)
		}
		del := req.Verb == VerbDelete
		d.world.RouteEdit(req.First, req.Last, req.Color, del, voxel.Persistent, kind)
		if del {
			d.report(req, "deleted")
		} else {
			d.report(req, "placed")
		}

	case req.Verb == VerbDraw:
		brush, ok := shapes.ParseBrushKind(req.ID)
		if !ok {
			log.Printf("[Command] AVISO: pincel desconhecido %d", req.ID)
		}
		d.world.RouteDraw(req.First, req.Last, req.Color, brush)
		d.report(req, "drawn")

	case req.Verb == VerbGet:
		// reservado

	default:
		if view, ok := viewByVerb[req.Verb]; ok {
			d.view = view
			d.sink.Write(console.NewLine(console.KindServer, "Texture changed"))
		}
	}
	return req, nil
}

func (d *Dispatcher) report(req Request, action string) {
	text := fmt.Sprintf("Model %s at %d %d %d ; %d %d %d ID = %d", action,
		req.First.X, req.First.Y, req.First.Z,
		req.Last.X, req.Last.Y, req.Last.Z, req.ID)
	d.sink.Write(console.NewLine(console.KindServer, text))
}

// failureText é a mensagem mostrada ao usuário para um erro de Parse.
func failureText(err error) string {
	switch {
	case errors.Is(err, ErrInsufficientArgs):
		return "Insufficient args"
	case errors.Is(err, ErrMalformedArgument):
		return "Malformed argument" + strings.TrimPrefix(err.Error(), ErrMalformedArgument.Error())
	default:
		return "Fail to parse command"
	}
}
