package server

import (
	"context"
	"io"
	"log"
	"net"
	"net/http"
	"os"

	"github.com/gorilla/websocket"
	"github.com/sourcegraph/jsonrpc2"
	wsrpc "github.com/sourcegraph/jsonrpc2/websocket"
)

type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

func (stdrwc) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}

// ServeConn serves one client over a Content-Length framed stream. The
// returned channel closes when the client disconnects.
func (svc *Service) ServeConn(ctx context.Context, rwc io.ReadWriteCloser) <-chan struct{} {
	stream := jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{})
	return jsonrpc2.NewConn(ctx, stream, svc.Handler(), svc.connOpts()...).DisconnectNotify()
}

// ServeStdio serves a single client on stdin and stdout until it
// disconnects.
func (svc *Service) ServeStdio(ctx context.Context) {
	<-svc.ServeConn(ctx, stdrwc{})
}

// Serve accepts clients from lis until it fails, serving each on its own
// connection.
func (svc *Service) Serve(ctx context.Context, lis net.Listener) (err error) {
	connectionCount := 0
	for {
		var conn net.Conn
		conn, err = lis.Accept()
		if err != nil {
			return
		}

		connectionCount++
		connectionID := connectionCount
		if svc.Verbose {
			log.Printf("server: connection #%d from %v", connectionID, conn.RemoteAddr())
		}

		done := svc.ServeConn(ctx, conn)
		go func() {
			<-done
			if svc.Verbose {
				log.Printf("server: connection #%d closed", connectionID)
			}
		}()
	}
}

// ListenAndServe serves TCP clients on addr.
func (svc *Service) ListenAndServe(ctx context.Context, addr string) (err error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return
	}
	defer lis.Close()

	log.Printf("server: listening for TCP connections on %v", lis.Addr())

	return svc.Serve(ctx, lis)
}

// WebsocketHandler serves one client per websocket connection, one
// JSON-RPC message per websocket message.
func (svc *Service) WebsocketHandler() http.Handler {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("server: websocket: %v", err)
			return
		}

		if svc.Verbose {
			log.Printf("server: websocket connection from %v", conn.RemoteAddr())
		}

		stream := wsrpc.NewObjectStream(conn)
		<-jsonrpc2.NewConn(r.Context(), stream, svc.Handler(), svc.connOpts()...).DisconnectNotify()
	})
}

// ListenAndServeWebsocket serves websocket clients on addr at path /ws.
func (svc *Service) ListenAndServeWebsocket(addr string) (err error) {
	mux := http.NewServeMux()
	mux.Handle("/ws", svc.WebsocketHandler())

	log.Printf("server: listening for websocket connections on %v/ws", addr)

	return http.ListenAndServe(addr, mux)
}
