// Command org2opml converts an org-mode file into an OPML outline written
// next to it as <file>.opml.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"org2opml/internal/config"
	"org2opml/internal/outline"
	"org2opml/internal/service"
	"org2opml/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("org2opml", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: org2opml <file.org>\n\nWrites the outline to <file.org>%s.\n", config.OutputSuffix)
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	svc, err := newService(cfg)
	if err != nil {
		logger.Error("configure converter", "module", "cmd", "action", "configure", "result", "failed", "error", err)
		return 1
	}
	return convert(ctx, svc, fs.Arg(0), stdout)
}

func newService(cfg config.Config) (service.ConvertService, error) {
	keywords, err := outline.LoadKeywordTable(cfg.KeywordsFile)
	if err != nil {
		return nil, err
	}
	tagOrder, err := outline.ParseTagOrder(cfg.TagOrder)
	if err != nil {
		return nil, err
	}
	transformer := outline.New(outline.Options{Keywords: keywords, TagOrder: tagOrder})
	return service.NewConvertService(service.NewFileLoader(), transformer), nil
}

func convert(ctx context.Context, svc service.ConvertService, input string, stdout io.Writer) int {
	result, err := svc.Convert(ctx, input)
	if err != nil {
		logger.Error("conversion failed", "module", "cmd", "action", "convert", "resource", "document", "result", "failed", "input", input, "error", err)
		return 1
	}
	fmt.Fprintln(stdout, result.OutputPath)
	return 0
}
