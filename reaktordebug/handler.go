// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

// Package reaktordebug renders a reaktor engine's tracked object graph as
// a human-readable dump, alongside the host's runtime information. It may
// leak sensitive field values and is only useful for debugging.
package reaktordebug

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/go-reaktor/reaktor"
)

var Version = "v0.1.0"

// Dump renders obj's reactive subgraph, as tracked by rk, followed by a
// system information block in the same style as the graph dump itself.
func Dump(rk *reaktor.Reaktor, obj any) string {
	var builder strings.Builder
	builder.WriteString("Reaktor: reactive object-graph observation\n")
	builder.WriteString("Version: ")
	builder.WriteString(Version)
	builder.WriteString("\n\n")
	builder.WriteString("Graph Dump:\n")
	builder.WriteString(rk.DumpGraph(obj))
	builder.WriteString("\nSystem Information:\n")
	builder.WriteString(systemInfo())
	return builder.String()
}

func systemInfo() string {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	var builder strings.Builder
	builder.WriteString("Time: ")
	builder.WriteString(time.Now().Format(time.RFC3339))
	builder.WriteByte('\n')
	builder.WriteString("Hostname: ")
	builder.WriteString(hostname)
	builder.WriteByte('\n')
	builder.WriteString("OS: ")
	builder.WriteString(runtime.GOOS)
	builder.WriteByte('\n')
	builder.WriteString("Arch: ")
	builder.WriteString(runtime.GOARCH)
	builder.WriteByte('\n')
	builder.WriteString("Go Version: ")
	builder.WriteString(runtime.Version())
	builder.WriteByte('\n')
	builder.WriteString("Pid: ")
	builder.WriteString(strconv.Itoa(os.Getpid()))
	builder.WriteByte('\n')
	builder.WriteString("CPU Cores: ")
	builder.WriteString(fmt.Sprintf("%d", runtime.NumCPU()))
	builder.WriteByte('\n')
	builder.WriteString("Number of Goroutines: ")
	builder.WriteString(fmt.Sprintf("%d", runtime.NumGoroutine()))
	builder.WriteByte('\n')
	builder.WriteString("Allocated Memory: ")
	builder.WriteString(fmt.Sprintf("%d bytes", memStats.Alloc))
	builder.WriteByte('\n')
	builder.WriteString("System Memory: ")
	builder.WriteString(fmt.Sprintf("%d bytes", memStats.Sys))
	builder.WriteByte('\n')
	return builder.String()
}
