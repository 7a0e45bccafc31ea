// generate — создание seed-файла с тестовыми объявлениями.
//
//	generate -count 10 -out mocks.json -data ./data
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pribylovaa/buy-and-sell/internal/generator"
	"github.com/pribylovaa/buy-and-sell/internal/idgen"
)

func main() {
	var (
		count   int
		out     string
		dataDir string
	)
	flag.IntVar(&count, "count", generator.DefaultCount, "number of offers to generate")
	flag.StringVar(&out, "out", "mocks.json", "output file")
	flag.StringVar(&dataDir, "data", "data", "directory with titles/sentences/categories/comments .txt")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	dict, err := generator.LoadDictionary(dataDir)
	if err != nil {
		log.Error("dictionary_load_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	ids, err := idgen.New()
	if err != nil {
		log.Error("idgen_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	offers, err := generator.New(ids, nil).Offers(dict, count)
	if err != nil {
		log.Error("generate_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	if err := generator.WriteFile(out, offers); err != nil {
		log.Error("write_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("file_created", slog.String("path", out), slog.Int("offers", len(offers)))
}
