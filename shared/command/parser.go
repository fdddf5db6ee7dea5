// Package command decodifica o protocolo de texto do console e aplica as
// edições ao mundo.
package command

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"VoxelForge/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

// Prefix marca uma linha como comando; o resto é chat.
const Prefix = "/"

// editArgs é o número de tokens numéricos depois do verbo em /place, /delete e /draw.
const editArgs = 11

var (
	ErrInsufficientArgs  = errors.New("argumentos insuficientes")
	ErrMalformedArgument = errors.New("argumento malformado")
	ErrUnknownVerb       = errors.New("verbo desconhecido")
	ErrEmpty             = errors.New("comando vazio")

	errNotFinite = errors.New("cor não finita")
)

// Verb é o verbo de um comando.
type Verb uint8

const (
	VerbChat Verb = iota
	VerbPlace
	VerbDelete
	VerbDraw
	VerbGet
	VerbDiffuse
	VerbNormal
	VerbDepth
	VerbOutput
)

var verbNames = map[Verb]string{
	VerbPlace:   "/place",
	VerbDelete:  "/delete",
	VerbDraw:    "/draw",
	VerbGet:     "/get",
	VerbDiffuse: "/diffuse",
	VerbNormal:  "/normal",
	VerbDepth:   "/depth",
	VerbOutput:  "/output",
}

var verbsByName = func() map[string]Verb {
	m := make(map[string]Verb, len(verbNames))
	for v, name := range verbNames {
		m[name] = v
	}
	return m
}()

func (v Verb) String() string {
	if name, ok := verbNames[v]; ok {
		return name
	}
	return "chat"
}

// IsEdit indica se o verbo carrega uma região (/place, /delete, /draw).
func (v Verb) IsEdit() bool {
	return v == VerbPlace || v == VerbDelete || v == VerbDraw
}

// Request é um comando decodificado.
type Request struct {
	Verb  Verb
	First util.VoxelCoord
	Last  util.VoxelCoord
	Color mgl32.Vec4
	ID    int32 // Modelo em /place e /delete, pincel em /draw

	Chat ChatLine // Preenchido só para VerbChat
}

// Parse decodifica uma linha do console. Linhas que não começam com Prefix
// viram chat. Erros: ErrEmpty, ErrUnknownVerb, ErrInsufficientArgs e
// ErrMalformedArgument (embrulhado com a posição e o token).
func Parse(line string) (Request, error) {
	if strings.TrimSpace(line) == "" {
		return Request{}, ErrEmpty
	}
	if !strings.HasPrefix(line, Prefix) {
		return Request{Verb: VerbChat, Chat: ParseChat(line)}, nil
	}

	tokens := strings.Fields(line)
	verb, ok := verbsByName[tokens[0]]
	if !ok {
		return Request{}, fmt.Errorf("%w: %q", ErrUnknownVerb, tokens[0])
	}

	req := Request{Verb: verb}
	if !verb.IsEdit() {
		return req, nil
	}

	args := tokens[1:]
	if len(args) < editArgs {
		return Request{}, fmt.Errorf("%w: %s espera %d argumentos, recebeu %d", ErrInsufficientArgs, verb, editArgs, len(args))
	}

	var ints [7]int32
	for i, idx := range []int{0, 1, 2, 3, 4, 5, 10} {
		v, err := strconv.ParseInt(args[idx], 10, 32)
		if err != nil {
			return Request{}, malformed(idx, args[idx], err)
		}
		ints[i] = int32(v)
	}
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(args[6+i], 32)
		if err != nil {
			return Request{}, malformed(6+i, args[6+i], err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Request{}, malformed(6+i, args[6+i], errNotFinite)
		}
		req.Color[i] = float32(v)
	}

	req.First = util.VoxelCoord{X: ints[0], Y: ints[1], Z: ints[2]}
	req.Last = util.VoxelCoord{X: ints[3], Y: ints[4], Z: ints[5]}
	for i, c := range []util.VoxelCoord{req.First, req.Last} {
		if !c.InWorld() {
			return Request{}, fmt.Errorf("%w: canto %d %v fora de ±%d", ErrMalformedArgument, i+1, c, util.WorldLimit)
		}
	}
	req.ID = ints[6]
	return req, nil
}

func malformed(pos int, token string, cause error) error {
	return fmt.Errorf("%w: argumento %d %q: %v", ErrMalformedArgument, pos+1, token, cause)
}
