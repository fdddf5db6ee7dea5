package console

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"VoxelForge/shared/util"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Route é o caminho HTTP do websocket do console.
const Route = "/console"

const (
	clientQueueSize = 256
	writeWait       = 5 * time.Second
)

// Inbound é uma linha digitada num console remoto.
type Inbound struct {
	Client uuid.UUID
	Text   string
}

type remote struct {
	id   uuid.UUID
	conn *websocket.Conn
	out  *util.RingBuffer[[]byte]
	wake chan struct{}
	done chan struct{}
	once sync.Once
}

func (r *remote) close() {
	r.once.Do(func() {
		close(r.done)
		r.conn.Close()
	})
}

// Bridge liga consoles remotos ao console local por websocket.
// Write é chamado só pela thread do frame; cada cliente tem seu próprio
// buffer circular e uma goroutine de escrita, então um cliente lento nunca
// trava o frame (as linhas excedentes são descartadas).
type Bridge struct {
	mu       sync.Mutex
	clients  map[uuid.UUID]*remote
	inbound  *util.ThreadSafeQueue[Inbound]
	upgrader websocket.Upgrader
	dropped  atomic.Uint64
}

// NewBridge cria uma ponte sem clientes.
func NewBridge() *Bridge {
	return &Bridge{
		clients: make(map[uuid.UUID]*remote),
		inbound: util.NewThreadSafeQueue[Inbound](),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler retorna o handler HTTP que aceita conexões websocket.
func (b *Bridge) Handler() http.Handler {
	return http.HandlerFunc(b.serveWs)
}

func (b *Bridge) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Bridge] Erro no upgrade: %v", err)
		return
	}

	c := &remote{
		id:   uuid.New(),
		conn: conn,
		out:  util.NewRingBuffer[[]byte](clientQueueSize),
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}

	b.mu.Lock()
	b.clients[c.id] = c
	total := len(b.clients)
	b.mu.Unlock()
	log.Printf("[Bridge] Console remoto conectado: %s (Total: %d)", c.id, total)

	go b.writeLoop(c)
	b.readLoop(c)

	b.mu.Lock()
	delete(b.clients, c.id)
	total = len(b.clients)
	b.mu.Unlock()
	c.close()
	log.Printf("[Bridge] Console remoto desconectado: %s (Total: %d)", c.id, total)
}

func (b *Bridge) readLoop(c *remote) {
	for {
		typ, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[Bridge] Erro de leitura (%s): %v", c.id, err)
			}
			return
		}

		text := string(data)
		if typ == websocket.BinaryMessage {
			line, err := DecodeLine(data)
			if err != nil {
				log.Printf("[Bridge] Frame descartado (%s): %v", c.id, err)
				continue
			}
			text = line.Text
		}
		if text == "" {
			continue
		}
		b.inbound.Push(Inbound{Client: c.id, Text: text})
	}
}

func (b *Bridge) writeLoop(c *remote) {
	for {
		select {
		case <-c.done:
			return
		case <-c.wake:
		}

		for {
			msg, err := c.out.Dequeue()
			if err != nil {
				break
			}
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
				log.Printf("[Bridge] Erro de escrita (%s): %v", c.id, err)
				c.close()
				return
			}
		}
	}
}

// Write envia a linha a todos os consoles remotos. Deve ser chamado só pela thread do frame.
func (b *Bridge) Write(line Line) {
	msg := EncodeLine(line)

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, c := range b.clients {
		if err := c.out.Enqueue(msg); err != nil {
			b.dropped.Add(1)
			continue
		}
		select {
		case c.wake <- struct{}{}:
		default:
		}
	}
}

// Drain retorna as linhas recebidas desde a última chamada, em ordem de chegada.
func (b *Bridge) Drain() []Inbound {
	return b.inbound.Drain()
}

// Clients retorna o número de consoles conectados.
func (b *Bridge) Clients() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}

// Dropped retorna quantas linhas foram descartadas por clientes lentos.
func (b *Bridge) Dropped() uint64 {
	return b.dropped.Load()
}

// Close desconecta todos os clientes.
func (b *Bridge) Close() {
	b.mu.Lock()
	clients := make([]*remote, 0, len(b.clients))
	for _, c := range b.clients {
		clients = append(clients, c)
	}
	b.mu.Unlock()

	for _, c := range clients {
		c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "encerrando"),
			time.Now().Add(time.Second))
		c.close()
	}
}

// Serve escuta em addr (rota Route) até o contexto ser cancelado.
func (b *Bridge) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("falha ao escutar em %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle(Route, b.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	log.Printf("[Bridge] Console remoto escutando em ws://%s%s", ln.Addr(), Route)

	select {
	case <-ctx.Done():
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("servidor do console parou: %w", err)
		}
		return nil
	}

	b.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("falha ao encerrar servidor do console: %w", err)
	}
	return nil
}
