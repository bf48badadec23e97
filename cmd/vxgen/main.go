// Copyright 2026 go-vx Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Command vxgen stamps the per-width vector files of package vx.
//
// The lane cores (lanes.go, mathlanes.go, half.go, color.go) are hand
// written; everything width-shaped in vec1.go through vec16.go comes
// out of this generator. Regenerate after changing the op table:
//
//	go generate ./vx
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

var widths = []int{1, 2, 4, 8, 16}

func main() {
	outDir := flag.String("out", ".", "directory to write the vec*.go files to")
	flag.Parse()

	for _, n := range widths {
		var buf bytes.Buffer
		emitFile(&buf, n)

		name := filepath.Join(*outDir, fmt.Sprintf("vec%d.go", n))
		src, err := imports.Process(name, buf.Bytes(), nil)
		if err != nil {
			log.Fatalf("vxgen: formatting %s: %v", name, err)
		}
		if err := os.WriteFile(name, src, 0o644); err != nil {
			log.Fatalf("vxgen: %v", err)
		}
		fmt.Printf("vxgen: wrote %s\n", name)
	}
}
