package target

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/sourcegraph/jsonrpc2"
)

// Connect dials a serving process, fetches its image snapshot and builds a
// target whose memory reads are forwarded over the connection.
func Connect(ctx context.Context, addr string) (*Target, error) {
	var d net.Dialer
	netConn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to %s: %v", addr, err)
	}
	t, err := ConnectStream(ctx, netConn)
	if err != nil {
		return nil, fmt.Errorf("cannot load target from %s: %v", addr, err)
	}
	return t, nil
}

// ConnectStream builds a remote target over an established connection.
func ConnectStream(ctx context.Context, stream io.ReadWriteCloser) (*Target, error) {
	conn := jsonrpc2.NewConn(context.Background(),
		jsonrpc2.NewBufferedStream(stream, jsonrpc2.VSCodeObjectCodec{}),
		routingHandler(nil))
	var img Image
	if err := conn.Call(ctx, "target/snapshot", nil, &img); err != nil {
		conn.Close()
		return nil, err
	}
	t, err := newTarget(&img, &remoteMemory{conn: conn})
	if err != nil {
		conn.Close()
		return nil, err
	}
	t.close = conn.Close
	return t, nil
}

// remoteMemory forwards reads to the serving process.
type remoteMemory struct {
	conn *jsonrpc2.Conn
}

func (m *remoteMemory) ReadMemory(addr uint64, buf []byte) error {
	params := readParams{Address: fmt.Sprintf("0x%x", addr), Size: len(buf)}
	var result readResult
	if err := m.conn.Call(context.Background(), "target/read", params, &result); err != nil {
		var rpcErr *jsonrpc2.Error
		if errors.As(err, &rpcErr) {
			return errors.New(rpcErr.Message)
		}
		return err
	}
	data, err := hex.DecodeString(result.Data)
	if err != nil || len(data) != len(buf) {
		return fmt.Errorf("cannot read %d bytes at address 0x%x: malformed response", len(buf), addr)
	}
	copy(buf, data)
	return nil
}
