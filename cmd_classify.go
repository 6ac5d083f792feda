package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fivemoreminix/glslmode/pkg/glsl"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

type classifyOptions struct {
	format string
	start  int
	end    int
}

// spanRecord is a span with its one-based position and text for output.
type spanRecord struct {
	glsl.Span
	Line int    `json:"line"`
	Col  int    `json:"col"`
	Text string `json:"text"`
}

type classifyRecord struct {
	Path  string       `json:"path"`
	Spans []spanRecord `json:"spans"`
}

func newClassifyCmd(flags *globalFlags) *cobra.Command {
	var opts classifyOptions

	cmd := &cobra.Command{
		Use:   "classify [FILE...]",
		Short: "Print the classified spans of GLSL source",
		Long: `Reads each FILE, or standard input when no FILE is given or FILE is -,
and prints one span per line as "path:line:col: category text".
With --format json every input becomes one JSON object per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != "text" && opts.format != "json" {
				return fmt.Errorf("unknown format %q", opts.format)
			}
			cfg, err := LoadConfig(flags.configPath)
			if err != nil {
				return err
			}
			classifier, err := cfg.Classifier()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				args = []string{"-"}
			}
			for _, path := range args {
				content, err := readInput(cmd.InOrStdin(), path)
				if err != nil {
					return err
				}
				if path != "-" && !IsGLSLFile(path, content) {
					slog.Warn("File does not look like GLSL", slog.String("path", path))
				}
				spans, err := classifySource(classifier, content, opts.start, opts.end)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if err := writeSpans(cmd.OutOrStdout(), opts.format, path, content, spans); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text or json")
	cmd.Flags().IntVar(&opts.start, "start", 0, "Byte offset to classify from")
	cmd.Flags().IntVar(&opts.end, "end", -1, "Byte offset to classify up to; -1 is the end of the input")
	return cmd
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file %s: %w", path, err)
	}
	return content, nil
}

// classifySource classifies the whole content, or only [start, end) when a
// range narrower than the content is asked for.
func classifySource(c *glsl.Classifier, content []byte, start, end int) ([]glsl.Span, error) {
	if end == -1 {
		end = len(content)
	}
	if start == 0 && end == len(content) {
		return c.Classify(content), nil
	}
	return c.ClassifyRange(content, start, end)
}

func writeSpans(w io.Writer, format, path string, content []byte, spans []glsl.Span) error {
	records := make([]spanRecord, 0, len(spans))
	line, lineStart, pos := 1, 0, 0
	for _, s := range spans {
		// Spans are sorted, so the line count only moves forward.
		for ; pos < s.Start; pos++ {
			if content[pos] == '\n' {
				line++
				lineStart = pos + 1
			}
		}
		records = append(records, spanRecord{
			Span: s,
			Line: line,
			Col:  s.Start - lineStart + 1,
			Text: s.Text(content),
		})
	}

	if format == "json" {
		json := jsoniter.ConfigCompatibleWithStandardLibrary
		return json.NewEncoder(w).Encode(classifyRecord{Path: path, Spans: records})
	}

	var buf bytes.Buffer
	for _, r := range records {
		fmt.Fprintf(&buf, "%s:%d:%d: %s %s\n", path, r.Line, r.Col, r.Category, r.Text)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
