package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"selection-lab/classifier/lexicon"
	"selection-lab/infrastructure/grpc/server"
	"selection-lab/infrastructure/wire"
	"selection-lab/runtime"

	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"google.golang.org/grpc"
)

// Settings may also come from SPECIALIST_* environment variables,
// flags passed by the launcher win.
type settings struct {
	ID         string `envconfig:"ID" default:"lexicon"`
	Port       int    `envconfig:"PORT" default:"50061"`
	Level      string `envconfig:"LOG_LEVEL" default:"INFO"`
	LexiconDir string `envconfig:"LEXICON_DIR"`
}

func main() {
	var s settings
	if err := envconfig.Process("specialist", &s); err != nil {
		log.Fatalf("invalid environment: %v", err)
	}

	id := flag.String("id", s.ID, "Specialist ID")
	port := flag.Int("port", s.Port, "gRPC port")
	level := flag.String("level", s.Level, "Log Level")
	lexiconDir := flag.String("lexicon", s.LexiconDir, "Directory of <label>.txt word lists, embedded lists when empty")
	flag.Parse()

	logger := logs.GetLoggerFromString(lo.FromPtr(level))

	data, err := loadLexicon(*lexiconDir)
	if err != nil {
		log.Fatalf("failed to load lexicon: %v", err)
	}
	classifier, err := lexicon.New(data.Entries, logger)
	if err != nil {
		log.Fatalf("failed to build classifier: %v", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", *port))
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	g := grpc.NewServer()
	wire.RegisterClassifierServiceServer(g, server.NewClassifierServer(*id, classifier, logger))

	logger.Info("Specialist starting", "id", *id, "port", *port, "labels", data.Labels, "words", data.Words)
	if err := g.Serve(lis); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}

func loadLexicon(dir string) (*runtime.LexiconData, error) {
	if dir == "" {
		return runtime.LoadDefaultLexicon()
	}
	return runtime.NewLexiconLoader(os.DirFS(dir)).LoadAll(".")
}
