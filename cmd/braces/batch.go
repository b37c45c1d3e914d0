package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/agilira/orpheus/pkg/orpheus"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/braces"
)

// JobFile is the YAML document read by the batch command.
//
//	continue_on_error: true
//	jobs:
//	  - name: greeting
//	    format: "hello, {}!"
//	    args: ["str:world"]
type JobFile struct {
	ContinueOnError bool  `yaml:"continue_on_error"`
	Jobs            []Job `yaml:"jobs"`
}

// Job is one format call.
type Job struct {
	Name   string   `yaml:"name"`
	Format string   `yaml:"format"`
	Args   []string `yaml:"args"`
}

func loadJobs(path string) (JobFile, error) {
	var jf JobFile
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return jf, orpheus.NotFoundError("batch", fmt.Sprintf("job file '%s' not found", path))
	}
	if err != nil {
		return jf, err
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&jf); err != nil && !errors.Is(err, io.EOF) {
		return jf, fmt.Errorf("decode %s: %w", path, err)
	}
	for i, job := range jf.Jobs {
		if job.Name == "" {
			jf.Jobs[i].Name = fmt.Sprintf("job-%d", i+1)
		}
	}
	return jf, nil
}

// runJobs renders every job, writing one "name: output" line per success.
// A failed job stops the run unless the file sets continue_on_error, in
// which case failures are logged and counted.
func runJobs(w io.Writer, logger *slog.Logger, jf JobFile) error {
	alloc := braces.NewPoolAllocator()
	failed := 0
	for _, job := range jf.Jobs {
		logger.Debug("running job", "job", job.Name, "format", job.Format, "args", len(job.Args))

		out, err := runJob(alloc, job)
		if err != nil {
			if !jf.ContinueOnError {
				return orpheus.ExecutionError(job.Name, err.Error())
			}
			logger.Warn("job failed", "job", job.Name, "err", err)
			failed++
			continue
		}
		if _, err := braces.Fprintln(w, "{}: {}", job.Name, out); err != nil {
			return err
		}
	}
	if failed > 0 {
		logger.Info("batch finished with failures", "jobs", len(jf.Jobs), "failed", failed)
	}
	return nil
}

func runJob(alloc braces.Allocator, job Job) (string, error) {
	values, err := parseValues(job.Args)
	if err != nil {
		return "", err
	}
	return braces.FormatWith(alloc, job.Format, values...)
}
