// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bootstrap binds the HTTP listener.
//
// Candidate ports are tried in order on a single host and the first one
// that binds is returned as an open listener, ready to be handed to the
// server. There is no retry and no backoff.
package bootstrap

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	fferrors "github.com/flavorfinds/flavorfinds/pkg/errors"
)

// DefaultHost is the loopback address the server binds to.
const DefaultHost = "127.0.0.1"

// DefaultPorts is the fixed, ordered list of candidate ports.
var DefaultPorts = []int{8000, 8001, 8002, 8003, 8004, 8080, 8081}

// Listen returns a TCP listener on the first port in ports that can be
// bound on host. It returns a PORT_EXHAUSTED error when none can.
func Listen(ctx context.Context, host string, ports []int) (net.Listener, error) {
	var lc net.ListenConfig
	var lastErr error

	for _, port := range ports {
		if err := ctx.Err(); err != nil {
			return nil, fferrors.Wrap(fferrors.ErrCodeUnavailable, "port selection canceled", err)
		}

		addr := net.JoinHostPort(host, strconv.Itoa(port))
		ln, err := lc.Listen(ctx, "tcp", addr)
		if err != nil {
			slog.Info("port is busy, trying next port", "port", port, "error", err)
			lastErr = err
			continue
		}

		slog.Info("bound listener", "address", ln.Addr().String())
		return ln, nil
	}

	slog.Error("all ports are busy", "host", host, "ports", ports)
	return nil, fferrors.WrapWithContext(fferrors.ErrCodePortExhausted,
		"all ports are busy", lastErr, map[string]any{
			"host":  host,
			"ports": ports,
		})
}
