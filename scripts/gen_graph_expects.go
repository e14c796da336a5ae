package main

import (
	"flag"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

var (
	examplesDir = flag.String("examples", "examples", "directory of .mspl example programs")
	expectsDir  = flag.String("expects", "testdata", "directory to write .dot expectations into")
)

func main() {
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	names, err := filepath.Glob(filepath.Join(*examplesDir, "*.mspl"))
	if err != nil {
		log.Fatalln(err)
	}
	if len(names) == 0 {
		log.Fatalf("no example programs under %v", *examplesDir)
	}

	if err := os.MkdirAll(*expectsDir, 0755); err != nil {
		log.Fatalln(err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, name := range names {
		name := name
		eg.Go(func() error {
			base := strings.TrimSuffix(filepath.Base(name), ".mspl")
			out := filepath.Join(*expectsDir, base)
			cmd := exec.CommandContext(ctx, "go", "run", ".", "-graph", out, name)
			cmd.Stderr = os.Stderr
			if err := cmd.Run(); err != nil {
				return err
			}
			log.Printf("wrote %v.dot from %v", out, name)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}
