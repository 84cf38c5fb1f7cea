// Copyright 2019 Michael J. Fromberger. All Rights Reserved.
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

package dbnet

import (
	"context"
	"log"
	"net"

	"github.com/creachadair/taskgroup"

	"github.com/ohsayan/skyhashd/auth"
	"github.com/ohsayan/skyhashd/corestore"
	"github.com/ohsayan/skyhashd/registry"
)

// MaxConcurrentConnections bounds how many connection handlers may run at
// once, grounded on the teacher's own concurrency cap in
// storage/wbstore/wrapper.go (taskgroup.New(nil).Limit(128)); every handler
// holds exactly one permit for its lifetime, released on every exit path
// including a panic, since taskgroup's start function already wraps the
// task body in a recover-and-release closure.
const MaxConcurrentConnections = 256

// Server accepts connections on a listener and serves each with its own
// Connection state machine, up to MaxConcurrentConnections concurrently.
type Server struct {
	Listener net.Listener
	Registry *corestore.Registry
	Oracle   registry.Oracle
	Auth     auth.Provider
}

// Serve runs the accept loop until ctx is done or Accept reports any
// error; no accept error is retried. It blocks until every in-flight
// connection has finished.
func (s *Server) Serve(ctx context.Context) error {
	g, start := taskgroup.New(nil).Limit(MaxConcurrentConnections)

	go func() {
		<-ctx.Done()
		s.Listener.Close()
	}()

	for {
		conn, err := s.Listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return g.Wait()
			default:
			}
			log.Printf("dbnet: accept: %v", err)
			return g.Wait()
		}
		start(func() error {
			defer conn.Close()
			c := NewConnection(conn, s.Registry, s.Oracle, s.Auth)
			if err := c.Serve(ctx); err != nil {
				log.Printf("dbnet: connection %v: %v", conn.RemoteAddr(), err)
			}
			return nil
		})
	}
}
