// Copyright (c) 2014-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/helixchain/helixd/helixjson"
	"github.com/helixchain/helixd/util"
	"github.com/helixchain/helixd/util/chainhash"
)

// testTimeout is the amount of time the tests below wait for results from the
// client before considering them hung.
const testTimeout = 5 * time.Second

// newTestWsServer returns an httptest server that upgrades every incoming
// connection to a websocket and invokes the passed handler for each JSON-RPC
// request read from it. The handler is invoked from the connection read loop,
// so writes from it are properly serialized.
func newTestWsServer(t *testing.T, handler func(conn *websocket.Conn, req *helixjson.Request)) *httptest.Server {
	t.Helper()

	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("unable to upgrade connection: %v", err)
			return
		}
		defer conn.Close()

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}

			var req helixjson.Request
			if err := json.Unmarshal(msg, &req); err != nil {
				continue
			}
			handler(conn, &req)
		}
	}))
}

// newTestClient returns a websocket client connected to the passed test
// server with auto reconnect disabled so tests shut down cleanly.
func newTestClient(t *testing.T, serverURL string, ntfnHandlers *NotificationHandlers, timeout time.Duration) *Client {
	t.Helper()

	u, err := url.Parse(serverURL)
	if err != nil {
		t.Fatalf("unable to parse test server URL: %v", err)
	}

	connCfg := &ConnConfig{
		Host:                 u.Host,
		Endpoint:             "ws",
		User:                 "user",
		Pass:                 "pass",
		DisableTLS:           true,
		DisableAutoReconnect: true,
		RequestTimeout:       timeout,
	}
	client, err := New(connCfg, ntfnHandlers)
	if err != nil {
		t.Fatalf("unable to create client: %v", err)
	}
	return client
}

// respond writes a JSON-RPC response for the passed request with the given
// result to the websocket connection.
func respond(t *testing.T, conn *websocket.Conn, req *helixjson.Request, result interface{}) {
	t.Helper()

	marshalled, err := helixjson.MarshalResponse(req.ID, result, nil)
	if err != nil {
		t.Errorf("unable to marshal response: %v", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, marshalled); err != nil {
		t.Errorf("unable to write response: %v", err)
	}
}

// notify writes a JSON-RPC notification with the passed method and raw params
// to the websocket connection.
func notify(t *testing.T, conn *websocket.Conn, method string, params ...interface{}) {
	t.Helper()

	rawParams := make([]json.RawMessage, 0, len(params))
	for _, param := range params {
		marshalled, err := json.Marshal(param)
		if err != nil {
			t.Errorf("unable to marshal notification param: %v", err)
			return
		}
		rawParams = append(rawParams, marshalled)
	}
	ntfn := &helixjson.Request{
		JSONRPC: "1.0",
		Method:  method,
		Params:  rawParams,
	}
	marshalled, err := json.Marshal(ntfn)
	if err != nil {
		t.Errorf("unable to marshal notification: %v", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, marshalled); err != nil {
		t.Errorf("unable to write notification: %v", err)
	}
}

// TestGetBlockCount ensures a simple command round trip works as expected.
func TestGetBlockCount(t *testing.T) {
	server := newTestWsServer(t, func(conn *websocket.Conn, req *helixjson.Request) {
		if req.Method != "getblockcount" {
			t.Errorf("unexpected method %q", req.Method)
			return
		}
		respond(t, conn, req, int64(123456))
	})
	defer server.Close()

	client := newTestClient(t, server.URL, nil, 0)
	defer client.Shutdown()

	count, err := client.GetBlockCount()
	if err != nil {
		t.Fatalf("GetBlockCount: %v", err)
	}
	if count != 123456 {
		t.Fatalf("GetBlockCount: got %d, want 123456", count)
	}
}

// TestResponseCorrelation ensures responses which arrive in a different order
// than their requests were issued are routed to the futures that issued them.
func TestResponseCorrelation(t *testing.T) {
	// Hold the requests until both have arrived, then answer them in
	// reverse order.
	var mtx sync.Mutex
	var pending []*helixjson.Request
	server := newTestWsServer(t, func(conn *websocket.Conn, req *helixjson.Request) {
		mtx.Lock()
		defer mtx.Unlock()

		pending = append(pending, req)
		if len(pending) < 2 {
			return
		}

		respond(t, conn, pending[1], float64(7.5))
		respond(t, conn, pending[0], int64(42))
	})
	defer server.Close()

	client := newTestClient(t, server.URL, nil, 0)
	defer client.Shutdown()

	countFuture := client.GetBlockCountAsync()
	diffFuture := client.GetDifficultyAsync()

	count, err := countFuture.Receive()
	if err != nil {
		t.Fatalf("GetBlockCount receive: %v", err)
	}
	if count != 42 {
		t.Fatalf("GetBlockCount: got %d, want 42", count)
	}

	difficulty, err := diffFuture.Receive()
	if err != nil {
		t.Fatalf("GetDifficulty receive: %v", err)
	}
	if difficulty != 7.5 {
		t.Fatalf("GetDifficulty: got %v, want 7.5", difficulty)
	}
}

// TestRequestTimeout ensures a request that the server never answers fails
// with ErrRequestTimeout while the connection remains usable for subsequent
// requests, and that a late reply for the abandoned request is ignored.
func TestRequestTimeout(t *testing.T) {
	// Ignore the first getblockcount request entirely and answer
	// everything else immediately.
	var mtx sync.Mutex
	ignored := false
	server := newTestWsServer(t, func(conn *websocket.Conn, req *helixjson.Request) {
		mtx.Lock()
		defer mtx.Unlock()

		if !ignored {
			ignored = true
			// Answer the abandoned request well after the client
			// timeout to exercise the late reply path.
			id := req.ID
			time.AfterFunc(500*time.Millisecond, func() {
				mtx.Lock()
				defer mtx.Unlock()
				late := &helixjson.Request{ID: id}
				respond(t, conn, late, int64(1))
			})
			return
		}
		respond(t, conn, req, int64(99))
	})
	defer server.Close()

	client := newTestClient(t, server.URL, nil, 100*time.Millisecond)
	defer client.Shutdown()

	_, err := client.GetBlockCount()
	if err != ErrRequestTimeout {
		t.Fatalf("expected ErrRequestTimeout, got %v", err)
	}

	// The connection must still be usable.
	count, err := client.GetBlockCount()
	if err != nil {
		t.Fatalf("GetBlockCount after timeout: %v", err)
	}
	if count != 99 {
		t.Fatalf("GetBlockCount after timeout: got %d, want 99", count)
	}

	// Give the late reply time to arrive and ensure the client survives
	// it and remains usable.
	time.Sleep(600 * time.Millisecond)
	count, err = client.GetBlockCount()
	if err != nil {
		t.Fatalf("GetBlockCount after late reply: %v", err)
	}
	if count != 99 {
		t.Fatalf("GetBlockCount after late reply: got %d, want 99",
			count)
	}
}

// TestNotifications ensures notifications are routed to their registered
// handlers, that notifications without a registered handler are silently
// dropped, and that unrecognized notification methods are delivered to
// OnUnknownNotification.
func TestNotifications(t *testing.T) {
	blockHeader := []byte{0x01, 0x02, 0x03, 0x04}
	txHashStr := "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"

	server := newTestWsServer(t, func(conn *websocket.Conn, req *helixjson.Request) {
		switch req.Method {
		case "notifyblocks", "notifynewtransactions":
			respond(t, conn, req, nil)

		case "ping":
			// Deliver a burst of notifications before the ping
			// response: one without a registered handler (silently
			// dropped), one registered, one recognized transaction
			// notification, and one unknown method.
			notify(t, conn, "blockdisconnected", "01020304")
			notify(t, conn, "blockconnected", "01020304", []string{})
			notify(t, conn, "txaccepted", txHashStr, float64(1.5))
			notify(t, conn, "somefuturemethod", "data")
			respond(t, conn, req, nil)
		}
	})
	defer server.Close()

	blockConnected := make(chan []byte, 1)
	txAccepted := make(chan *chainhash.Hash, 1)
	txAmount := make(chan util.Amount, 1)
	unknown := make(chan string, 1)
	ntfnHandlers := &NotificationHandlers{
		OnBlockConnected: func(header []byte, transactions [][]byte) {
			blockConnected <- header
		},
		OnTxAccepted: func(hash *chainhash.Hash, amount util.Amount) {
			txAccepted <- hash
			txAmount <- amount
		},
		OnUnknownNotification: func(method string, params []json.RawMessage) {
			unknown <- method
		},
	}

	client := newTestClient(t, server.URL, ntfnHandlers, 0)
	defer client.Shutdown()

	if err := client.NotifyBlocks(); err != nil {
		t.Fatalf("NotifyBlocks: %v", err)
	}
	if err := client.NotifyNewTransactions(false); err != nil {
		t.Fatalf("NotifyNewTransactions: %v", err)
	}
	if err := client.Ping(); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	select {
	case header := <-blockConnected:
		if len(header) != len(blockHeader) {
			t.Fatalf("OnBlockConnected: got header %x, want %x",
				header, blockHeader)
		}
		for i := range header {
			if header[i] != blockHeader[i] {
				t.Fatalf("OnBlockConnected: got header %x, "+
					"want %x", header, blockHeader)
			}
		}
	case <-time.After(testTimeout):
		t.Fatal("timeout waiting for OnBlockConnected")
	}

	select {
	case hash := <-txAccepted:
		if hash.String() != txHashStr {
			t.Fatalf("OnTxAccepted: got hash %s, want %s", hash,
				txHashStr)
		}
	case <-time.After(testTimeout):
		t.Fatal("timeout waiting for OnTxAccepted")
	}
	select {
	case amount := <-txAmount:
		if amount != 150000000 {
			t.Fatalf("OnTxAccepted: got amount %d, want 150000000",
				amount)
		}
	case <-time.After(testTimeout):
		t.Fatal("timeout waiting for OnTxAccepted amount")
	}

	select {
	case method := <-unknown:
		if method != "somefuturemethod" {
			t.Fatalf("OnUnknownNotification: got method %q, want "+
				"somefuturemethod", method)
		}
	case <-time.After(testTimeout):
		t.Fatal("timeout waiting for OnUnknownNotification")
	}
}

// TestMalformedMessages ensures the client tolerates invalid frames and
// replies with unexpected ids without affecting outstanding requests.
func TestMalformedMessages(t *testing.T) {
	server := newTestWsServer(t, func(conn *websocket.Conn, req *helixjson.Request) {
		// Send several invalid frames before the real response.
		conn.WriteMessage(websocket.TextMessage, []byte("not json"))
		conn.WriteMessage(websocket.TextMessage, []byte("{}"))
		conn.WriteMessage(websocket.TextMessage, []byte(`{"id":null}`))

		// A reply for a request that was never issued.
		unexpected := &helixjson.Request{ID: float64(9999)}
		respond(t, conn, unexpected, int64(1))

		respond(t, conn, req, int64(7))
	})
	defer server.Close()

	client := newTestClient(t, server.URL, nil, 0)
	defer client.Shutdown()

	count, err := client.GetBlockCount()
	if err != nil {
		t.Fatalf("GetBlockCount: %v", err)
	}
	if count != 7 {
		t.Fatalf("GetBlockCount: got %d, want 7", count)
	}
}

// TestDisconnectErrorsPending ensures all outstanding requests are answered
// with ErrClientDisconnect when the connection is lost and auto reconnect is
// disabled.
func TestDisconnectErrorsPending(t *testing.T) {
	server := newTestWsServer(t, func(conn *websocket.Conn, req *helixjson.Request) {
		// Never answer. Drop the connection instead.
		conn.Close()
	})
	defer server.Close()

	client := newTestClient(t, server.URL, nil, 0)
	defer client.Shutdown()

	_, err := client.GetBlockCount()
	if err != ErrClientDisconnect {
		t.Fatalf("expected ErrClientDisconnect, got %v", err)
	}
}

// TestShutdownErrorsPending ensures all outstanding requests are answered with
// ErrClientShutdown when the client shuts down, and that new requests issued
// after shutdown fail the same way.
func TestShutdownErrorsPending(t *testing.T) {
	started := make(chan struct{}, 1)
	server := newTestWsServer(t, func(conn *websocket.Conn, req *helixjson.Request) {
		// Never answer so the request stays pending.
		started <- struct{}{}
	})
	defer server.Close()

	client := newTestClient(t, server.URL, nil, 0)

	future := client.GetBlockCountAsync()
	select {
	case <-started:
	case <-time.After(testTimeout):
		t.Fatal("timeout waiting for request to reach the server")
	}
	client.Shutdown()

	if _, err := future.Receive(); err != ErrClientShutdown {
		t.Fatalf("expected ErrClientShutdown, got %v", err)
	}

	if _, err := client.GetBlockCount(); err != ErrClientShutdown {
		t.Fatalf("post-shutdown request: expected ErrClientShutdown, "+
			"got %v", err)
	}

	client.WaitForShutdown()
}

// TestHTTPPostMode ensures the client works over HTTP POST and rejects
// websocket-only features in that mode.
func TestHTTPPostMode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req helixjson.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("unable to decode request: %v", err)
			return
		}
		if req.Method != "getblockcount" {
			t.Errorf("unexpected method %q", req.Method)
			return
		}

		marshalled, err := helixjson.MarshalResponse(req.ID, int64(555), nil)
		if err != nil {
			t.Errorf("unable to marshal response: %v", err)
			return
		}
		w.Write(marshalled)
	}))
	defer server.Close()

	u, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("unable to parse test server URL: %v", err)
	}
	connCfg := &ConnConfig{
		Host:         u.Host,
		User:         "user",
		Pass:         "pass",
		DisableTLS:   true,
		HTTPPostMode: true,
	}
	client, err := New(connCfg, nil)
	if err != nil {
		t.Fatalf("unable to create client: %v", err)
	}
	defer client.Shutdown()

	count, err := client.GetBlockCount()
	if err != nil {
		t.Fatalf("GetBlockCount: %v", err)
	}
	if count != 555 {
		t.Fatalf("GetBlockCount: got %d, want 555", count)
	}

	// Websocket-only features must be rejected.
	if err := client.NotifyBlocks(); err != ErrWebsocketsRequired {
		t.Fatalf("NotifyBlocks: expected ErrWebsocketsRequired, got %v",
			err)
	}
	if _, err := client.Session(); err != ErrWebsocketsRequired {
		t.Fatalf("Session: expected ErrWebsocketsRequired, got %v", err)
	}
}

// TestNotConnected ensures requests issued before the websocket connection is
// established fail with ErrClientNotConnected.
func TestNotConnected(t *testing.T) {
	connCfg := &ConnConfig{
		Host:                "127.0.0.1:0",
		Endpoint:            "ws",
		User:                "user",
		Pass:                "pass",
		DisableTLS:          true,
		DisableConnectOnNew: true,
	}
	client, err := New(connCfg, nil)
	if err != nil {
		t.Fatalf("unable to create client: %v", err)
	}
	defer client.Shutdown()

	if _, err := client.GetBlockCount(); err != ErrClientNotConnected {
		t.Fatalf("expected ErrClientNotConnected, got %v", err)
	}
}
