// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - client side of the donationd JSON-RPC services
//
// operations needing an authority fetch the program id and the
// signer nonce from the node and sign the instruction message locally
package rpccalls

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/donationd/account"
)

// Client - to hold RPC connections streams
type Client struct {
	conn      net.Conn
	client    *rpc.Client
	verbose   bool
	handle    io.Writer // if verbose is set output items here
	programId *account.PublicKey
}

// NewClient - create a RPC connection to a donationd
func NewClient(connect string, plain bool, verbose bool, handle io.Writer) (*Client, error) {

	var conn net.Conn
	var err error
	if plain {
		conn, err = net.Dial("tcp", connect)
	} else {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true,
		}
		conn, err = tls.Dial("tcp", connect, tlsConfig)
	}
	if nil != err {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the donationd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

func (client *Client) call(method string, arguments interface{}, reply interface{}) error {
	if client.verbose {
		fmt.Fprintf(client.handle, "%s: %+v\n", method, arguments)
	}
	err := client.client.Call(method, arguments, reply)
	if nil != err {
		return err
	}
	if client.verbose {
		fmt.Fprintf(client.handle, "reply: %+v\n", reply)
	}
	return nil
}
