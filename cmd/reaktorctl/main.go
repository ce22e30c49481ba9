// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

// Command reaktorctl loads a YAML document, activates it as a reactive
// object graph, prints every change made to it, then (if the document
// has a top-level "__demo__" list) replays a small scripted sequence of
// edits to demonstrate bubbling.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-reaktor/reaktor"
	"github.com/go-reaktor/reaktor/internal/slogpretty"
	"github.com/go-reaktor/reaktor/reaktordebug"
	"gopkg.in/yaml.v3"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: reaktorctl <file.yaml>")
		os.Exit(2)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "reaktorctl:", err)
		os.Exit(1)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		fmt.Fprintln(os.Stderr, "reaktorctl:", err)
		os.Exit(1)
	}

	logger := slog.New(slogpretty.DefaultHandler)
	rk := reaktor.New(reaktor.WithLogger(logger))

	demo, _ := decoded["__demo__"].([]any)
	delete(decoded, "__demo__")

	root := toReactive(decoded).(*reaktor.Mapping[string, any])
	if _, err := rk.Activate(root); err != nil {
		fmt.Fprintln(os.Stderr, "reaktorctl: activate:", err)
		os.Exit(1)
	}

	_ = rk.On(root, func(c reaktor.Change) {
		logger.Info(c.String(), "key", c.Key.Render(), "source", c.Source.String())
	}, reaktor.WithPattern("*"))

	for _, step := range demo {
		applyDemoStep(root, step)
	}

	fmt.Println(reaktordebug.Dump(rk, root))
}

// toReactive recursively wraps a yaml.v3-decoded value's maps and
// sequences in this package's container types, so mutations anywhere in
// the loaded document are observable, not just at the root.
func toReactive(v any) any {
	switch x := v.(type) {
	case map[string]any:
		converted := make(map[string]any, len(x))
		for k, val := range x {
			converted[k] = toReactive(val)
		}
		return reaktor.NewMapping(converted, reaktor.StringKeyOf)
	case []any:
		converted := make([]any, len(x))
		for i, val := range x {
			converted[i] = toReactive(val)
		}
		return reaktor.NewSequence(converted)
	default:
		return v
	}
}

// applyDemoStep interprets one `__demo__` entry, expected to be a mapping
// with a "set" key naming a top-level field and a "value" to assign.
func applyDemoStep(root *reaktor.Mapping[string, any], step any) {
	entry, ok := step.(map[string]any)
	if !ok {
		return
	}
	field, ok := entry["set"].(string)
	if !ok {
		return
	}
	root.Set(field, entry["value"])
}
