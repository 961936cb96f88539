package target

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"io"
	"net"

	"github.com/sourcegraph/jsonrpc2"
)

// The wire protocol between a serving process and a connecting session has
// two methods. "target/snapshot" returns the image's type and symbol tables;
// "target/read" reads a run of memory on demand. Addresses travel as strings
// for the same reason image files spell them that way.

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

// codeReadFault reports a read of unmapped target memory.
const codeReadFault = -32001

const maxReadSize = 1 << 20

type readParams struct {
	Address string `json:"address"`
	Size    int    `json:"size"`
}

type readResult struct {
	Data string `json:"data"`
}

type server struct {
	t *Target
}

func (s *server) handler() jsonrpc2.Handler {
	return routingHandler(map[string]method{
		"target/snapshot": s.snapshot,
		"target/read":     s.read,
	})
}

type method func(context.Context, jsonrpc2.JSONRPC2, json.RawMessage) (any, error)

func routingHandler(methods map[string]method) jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		fn, ok := methods[req.Method]
		if !ok {
			return nil, errMethodNotFound
		}
		var params json.RawMessage
		if req.Params != nil {
			params = *req.Params
		}
		return fn(ctx, conn, params)
	})
}

func (s *server) snapshot(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return s.t.snapshot(), nil
}

func (s *server) read(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params readParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	if params.Size < 0 || params.Size > maxReadSize {
		return nil, errInvalidParams
	}
	addr, err := parseAddress(params.Address)
	if err != nil {
		return nil, errInvalidParams
	}
	buf := make([]byte, params.Size)
	if err := s.t.readMemory(addr, buf); err != nil {
		return nil, &jsonrpc2.Error{Code: codeReadFault, Message: err.Error()}
	}
	return readResult{Data: hex.EncodeToString(buf)}, nil
}

// ServeConn serves the target on a single connection. It returns immediately;
// the returned channel is closed when the peer disconnects.
func (t *Target) ServeConn(ctx context.Context, stream io.ReadWriteCloser) <-chan struct{} {
	s := &server{t: t}
	conn := jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(stream, jsonrpc2.VSCodeObjectCodec{}),
		s.handler())
	return conn.DisconnectNotify()
}

// Serve accepts connections on ln and serves the target to each. It returns
// when the listener fails, or with a nil error once ctx is canceled.
func (t *Target) Serve(ctx context.Context, ln net.Listener) error {
	go func() {
		<-ctx.Done()
		ln.Close()
	}()
	for {
		rwc, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		t.ServeConn(ctx, rwc)
	}
}
