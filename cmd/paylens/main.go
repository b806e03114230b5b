package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/upidesk/paylens/internal/export"
	"github.com/upidesk/paylens/internal/extraction"
	"github.com/upidesk/paylens/internal/ocr"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-version" || arg == "-v" {
			fmt.Println(version)
			os.Exit(0)
		}
	}

	fs := ff.NewFlagSet("paylens")
	var (
		sourceFlag   = fs.StringLong("source", "auto", "Document source type: 'screenshot', 'passbook', 'camera' or 'auto'")
		outPath      = fs.StringLong("out", "extracted.csv", "Output CSV file path")
		readerType   = fs.StringLong("reader", "tesseract", "OCR reader: 'tesseract', 'gemini' or 'ollama'")
		tesseractBin = fs.StringLong("tesseract-bin", "", "Path to tesseract binary (auto-detected if empty)")
		geminiKey    = fs.StringLong("gemini-key", "", "Google Gemini API key (or set GEMINI_API_KEY env var)")
		geminiModel  = fs.StringLong("gemini-model", "gemini-2.5-pro", "Google Gemini model name")
		ollamaURL    = fs.StringLong("ollama-url", "http://localhost:11434", "Ollama API base URL")
		ollamaModel  = fs.StringLong("ollama-model", "llava", "Ollama vision model name")
		cachePath    = fs.StringLong("cache", "", "Path to a bbolt OCR text cache (disabled if empty)")
		showVersion  = fs.BoolLong("version", "Show version information")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("PAYLENS"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	paths := fs.GetArgs()
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintln(os.Stderr, "error: at least one image path is required")
		os.Exit(1)
	}

	source, err := ocr.ParseSourceType(*sourceFlag)
	if err != nil {
		slog.Error("Invalid source type", "error", err)
		os.Exit(1)
	}

	// Initialize the OCR reader
	var reader ocr.TextReader
	switch *readerType {
	case "tesseract":
		slog.Info("Initializing Tesseract reader...")
		reader, err = ocr.NewTesseract(*tesseractBin)
		if err != nil {
			slog.Error("Failed to initialize Tesseract", "error", err)
			os.Exit(1)
		}
	case "gemini":
		apiKey := *geminiKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			slog.Error("Gemini API key is required. Set --gemini-key flag or GEMINI_API_KEY environment variable")
			os.Exit(1)
		}
		slog.Info("Initializing Gemini reader...", "model", *geminiModel)
		reader, err = ocr.NewGemini(apiKey, *geminiModel)
		if err != nil {
			slog.Error("Failed to initialize Gemini", "error", err)
			os.Exit(1)
		}
	case "ollama":
		slog.Info("Initializing Ollama reader...", "url", *ollamaURL, "model", *ollamaModel)
		reader, err = ocr.NewOllama(*ollamaURL, *ollamaModel)
		if err != nil {
			slog.Error("Failed to initialize Ollama", "error", err)
			os.Exit(1)
		}
	default:
		slog.Error("Invalid reader type", "type", *readerType, "valid", "tesseract, gemini or ollama")
		os.Exit(1)
	}

	if *cachePath != "" {
		slog.Info("Using OCR text cache", "path", *cachePath)
		reader, err = ocr.NewCache(*cachePath, reader)
		if err != nil {
			slog.Error("Failed to open OCR cache", "error", err)
			os.Exit(1)
		}
	}
	defer reader.Close()

	extractor := extraction.NewExtractor(reader)

	progress := func(current, total int, message string) {
		slog.Info(message, "current", current, "total", total)
	}

	records, summary, err := extractor.ExtractAll(paths, progress, source)
	if err != nil {
		slog.Error("Batch extraction failed", "error", err)
		os.Exit(1)
	}

	writer := &export.CSVWriter{}
	if err := writer.WriteToFile(*outPath, source, records); err != nil {
		slog.Error("Failed to write CSV", "error", err)
		os.Exit(1)
	}

	slog.Info("Done",
		"output", *outPath,
		"success", summary.Success,
		"failed", summary.Failed,
		"duplicates", summary.Duplicates,
	)
	for _, e := range summary.Errors {
		slog.Warn("Document failed", "file", e.File, "error", e.Message)
	}
}
