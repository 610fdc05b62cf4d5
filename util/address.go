// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/donationd/fault"
)

// ListenAddress - resolve a configured listen string into the network
// and canonical address to pass to net.Listen
//
//   127.0.0.1:2130  =>  tcp4  127.0.0.1:2130
//   [::1]:2130      =>  tcp6  [::1]:2130
//   *:2130          =>  tcp   [::]:2130   (all interfaces, both families)
func ListenAddress(listen string) (string, string, error) {
	listen = strings.TrimSpace(listen)
	if strings.HasPrefix(listen, "*:") {
		port, err := checkPort(listen[2:])
		if nil != err {
			return "", "", err
		}
		return "tcp", "[::]:" + port, nil
	}

	host, port, err := net.SplitHostPort(listen)
	if nil != err {
		return "", "", fault.ErrInvalidIpAddress
	}

	ip := net.ParseIP(strings.TrimSpace(host))
	if nil == ip {
		return "", "", fault.ErrInvalidIpAddress
	}

	port, err = checkPort(port)
	if nil != err {
		return "", "", err
	}

	if nil != ip.To4() {
		return "tcp4", ip.String() + ":" + port, nil
	}
	return "tcp6", "[" + ip.String() + "]:" + port, nil
}

// port in 1..65535 with any leading zeros removed
func checkPort(port string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err || n < 1 || n > 65535 {
		return "", fault.ErrInvalidPortNumber
	}
	return strconv.Itoa(n), nil
}
