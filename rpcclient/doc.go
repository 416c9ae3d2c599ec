// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2015-2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package rpcclient implements a websocket-enabled Helix JSON-RPC client.

Overview

This client provides a robust and easy to use client for interfacing with a
Helix RPC server that uses a helixd compatible JSON-RPC API.

In addition to the compatible standard HTTP POST JSON-RPC API, helixd
provides a websocket interface that is more efficient than the standard
HTTP POST method of accessing RPC. The section below discusses the differences
between HTTP POST and websockets.

By default, this client assumes the RPC server supports websockets and has
TLS enabled.

Websockets vs HTTP POST

In HTTP POST-based JSON-RPC, every request creates a new HTTP connection,
issues the call, waits for the response, and closes the connection. This adds
quite a bit of overhead to every call and lacks flexibility for features such as
notifications.

In contrast, the websocket-based JSON-RPC interface provided by helixd
only uses a single connection that remains open and allows
asynchronous bi-directional communication.

The websocket interface supports all of the same commands as HTTP POST, but they
can be invoked without having to go through a connect/disconnect cycle for every
call. In addition, the websocket interface provides other nice features such as
the ability to register for asynchronous notifications of various events.

Synchronous vs Asynchronous API

The client provides both a synchronous (blocking) and asynchronous API.

The synchronous (blocking) API is typically sufficient for most use cases. It
works by issuing the RPC and blocking until the response is received. This
allows  straightforward code where you have the response as soon as the function
returns.

The asynchronous API works on the concept of futures. When you invoke the async
version of a command, it will quickly return an instance of a type that promises
to provide the result of the RPC at some future time. In the background, the
RPC call is issued and the result is stored in the returned instance. Invoking
the Receive method on the returned instance will either return the result
immediately if it has already arrived, or block until it has. This is useful
since it provides the caller with greater control over concurrency.

Notifications

The first important part of notifications is to realize that they will only
work when connected via websockets. This should intuitively make sense
because HTTP POST mode does not keep a connection open!

All notifications provided by helixd require registration to opt-in. For
example, if you want to be notified when blocks are connected and disconnected
from the main chain, you register via the NotifyBlocks (or NotifyBlocksAsync)
function.

Notification Handlers

Notifications are exposed by the client through the use of callback handlers
which are setup via a NotificationHandlers instance that is specified by the
caller when creating the client.

Notification handlers run on a dedicated dispatch goroutine which is decoupled
from the main read loop, so a handler never blocks response correlation for
in-flight commands and it is safe to issue RPC calls from within a handler.
Handlers for a single client are invoked one at a time in the order the
notifications arrived, so a slow handler delays delivery of the notifications
queued behind it, though never the read loop itself.

Automatic Reconnection

By default, when running in websockets mode, this client will automatically
keep trying to reconnect to the RPC server should the connection be lost. There
is a back-off in between each connection attempt until it reaches one try per
minute. Once a connection is re-established, all previously registered
notifications are automatically re-registered and any in-flight commands are
re-issued. This means from the caller's perspective, the request simply takes
longer to complete.

The caller may invoke the Shutdown method on the client to force the client
to cease reconnect attempts and return errors for any outstanding requests.

The automatic reconnection can be disabled by setting the DisableAutoReconnect
flag to true in the connection config when creating the client.

Errors

There are 3 categories of errors that will be returned throughout this package:

  - Errors related to the client connection such as authentication, endpoint,
    disconnect, and shutdown
  - Errors that occur before communicating with the remote server such as
    command creation and marshaling errors or issues talking to the remote
    server
  - Errors returned from the remote server in response to a command (type
    helixjson.RPCError)

The first category of errors are typically one of ErrInvalidAuth,
ErrInvalidEndpoint, ErrClientNotConnected, ErrClientDisconnect,
ErrClientShutdown, ErrNotWebsocketClient, or ErrRequestTimeout.

The third category of errors, that is errors returned by the server, can be
detected by type asserting the error in a *helixjson.RPCError. For example, to
detect if a command is unimplemented by the remote RPC server:

  count, err := client.GetBlockCount()
  if err != nil {
	  if jerr, ok := err.(*helixjson.RPCError); ok {
		  switch jerr.Code {
		  case helixjson.ErrRPCMethodNotFound:
			  // Handle unknown command error

		  // Handle other specific errors you care about
		  }
	  }

	  // Log or otherwise handle the error knowing it was not one returned
	  // from the remote RPC server.
  }

Example Usage

The following full-blown client examples are in the examples directory:

 - helixdwebsockets
   Connects to a helixd RPC server using TLS-secured websockets, registers for
   block connected and block disconnected notifications, and gets the current
   block count
*/
package rpcclient
