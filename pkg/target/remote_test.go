package target_test

import (
	"context"
	"net"
	"strings"
	"testing"

	"github.com/delphix/sdb-go/pkg/target"
	"github.com/delphix/sdb-go/pkg/target/targettest"
)

func connectRemote(t *testing.T) (*target.Target, *target.Target) {
	t.Helper()
	tgt := targettest.New(t)
	clientConn, serverConn := net.Pipe()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	tgt.ServeConn(ctx, serverConn)
	remote, err := target.ConnectStream(ctx, clientConn)
	if err != nil {
		t.Fatalf("ConnectStream: %v", err)
	}
	t.Cleanup(func() { remote.Close() })
	return tgt, remote
}

func TestRemoteSymbols(t *testing.T) {
	_, remote := connectRemote(t)

	obj, err := remote.Symbol("global_int")
	if err != nil {
		t.Fatal(err)
	}
	if v, err := obj.Int64(); err != nil || v != 16909060 {
		t.Errorf("remote global_int = %d, %v", v, err)
	}

	_, err = remote.Symbol("no_such_symbol")
	if err == nil || !strings.Contains(err.Error(), "could not find symbol") {
		t.Errorf("bad error for missing remote symbol: %v", err)
	}
}

func TestRemoteRenderMatchesLocal(t *testing.T) {
	local, remote := connectRemote(t)

	for _, name := range []string{"global_struct", "global_cstruct", "test_name"} {
		lobj, err := local.Symbol(name)
		if err != nil {
			t.Fatal(err)
		}
		robj, err := remote.Symbol(name)
		if err != nil {
			t.Fatal(err)
		}
		lout, err := lobj.Render()
		if err != nil {
			t.Fatal(err)
		}
		rout, err := robj.Render()
		if err != nil {
			t.Fatal(err)
		}
		if lout != rout {
			t.Errorf("%s renders differently over the wire:\nlocal:\n%s\nremote:\n%s", name, lout, rout)
		}
	}
}

func TestRemoteReadFault(t *testing.T) {
	_, remote := connectRemote(t)

	obj, err := remote.Symbol("global_void_ptr")
	if err != nil {
		t.Fatal(err)
	}
	_, err = obj.Uint64()
	if err == nil || !strings.Contains(err.Error(), "cannot read 8 bytes at address 0xffff88d26353c108") {
		t.Errorf("bad error for remote unmapped read: %v", err)
	}
}
