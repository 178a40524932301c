package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cours-de-latin/langdata"
)

func (c *cli) measureCmd() *cobra.Command {
	var (
		asCSV     bool
		format    string
		tokenizer string
	)
	cmd := &cobra.Command{
		Use:   "measure [FILE...]",
		Short: "Report readability grades and style measures",
		Long: `Report readability grades and style measures of one file, or of standard
input when no file is given. Input must be tokenized (tokens separated by
spaces, one sentence per line, blank line between paragraphs) unless
--tokenizer names a command that does this (stdin to stdout).

With --csv, any number of files is accepted and one row per file is written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "text", "yaml", "json":
			default:
				return fmt.Errorf("unknown format %q", format)
			}
			if len(args) > 1 && !asCSV {
				return errors.New("more than one file requires --csv")
			}
			lang, err := c.language()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				m, err := c.measureReader(ctx, lang, cmd.InOrStdin(), tokenizer)
				if err != nil {
					return fmt.Errorf("<stdin>: %w", err)
				}
				if asCSV {
					return langdata.WriteCSV(out, []string{"<stdin>"}, []*langdata.Measures{m})
				}
				return writeMeasures(out, m, format)
			}

			results := make([]*langdata.Measures, 0, len(args))
			for _, path := range args {
				m, err := c.measureFile(ctx, lang, path, tokenizer)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				results = append(results, m)
			}
			if asCSV {
				return langdata.WriteCSV(out, args, results)
			}
			return writeMeasures(out, results[0], format)
		},
	}
	cmd.Flags().BoolVar(&asCSV, "csv", false, "write one CSV row per file")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, yaml or json")
	cmd.Flags().StringVarP(&tokenizer, "tokenizer", "T", "", "tokenizer command reading stdin and writing stdout")
	return cmd
}

// measureReader measures standard input line by line.
func (c *cli) measureReader(ctx context.Context, lang *langdata.Language, r io.Reader, tokenizer string) (*langdata.Measures, error) {
	if tokenizer != "" {
		text, err := tokenize(ctx, tokenizer, r)
		if err != nil {
			return nil, err
		}
		r = strings.NewReader(text)
	}

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	c.log.Debug("measuring lines", zap.Int("lines", len(lines)))
	return lang.MeasureLines(lines)
}

// measureFile measures a file read as a single string.
func (c *cli) measureFile(ctx context.Context, lang *langdata.Language, path, tokenizer string) (*langdata.Measures, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var text string
	if tokenizer != "" {
		text, err = tokenize(ctx, tokenizer, f)
	} else {
		var b []byte
		b, err = io.ReadAll(f)
		text = string(b)
	}
	if err != nil {
		return nil, err
	}
	c.log.Debug("measuring file", zap.String("path", path), zap.Int("bytes", len(text)))
	return lang.Measure(text)
}

// tokenize pipes input through an external tokenizer command.
func tokenize(ctx context.Context, command string, input io.Reader) (string, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", errors.New("empty tokenizer command")
	}
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)
	cmd.Stdin = input
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("tokenizer %q: %w: %s", fields[0], err, strings.TrimSpace(stderr.String()))
	}
	return string(out), nil
}

func writeMeasures(w io.Writer, m *langdata.Measures, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(4)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	default:
		return langdata.WriteText(w, m)
	}
}
