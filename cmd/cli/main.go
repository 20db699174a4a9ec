package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resumelens/resume-optimizer/internal/client"
)

func main() {
	serverURL := flag.String("server", "http://localhost:5000", "Analysis service base URL")
	resumePath := flag.String("resume", "", "Path to resume file (pdf or docx)")
	jobDescription := flag.String("jd", "", "Job description text (optional)")
	jdPath := flag.String("jd-file", "", "Path to a job description text file (optional)")
	timeout := flag.Duration("timeout", 2*time.Minute, "Request timeout")
	flag.Parse()

	if strings.TrimSpace(*resumePath) == "" {
		log.Fatal("❌ -resume is required")
	}

	api := client.NewClient(*serverURL, *timeout)
	ctx := context.Background()

	// Advisory only: a failed probe never blocks submission.
	if api.Probe(ctx) {
		fmt.Printf("✅ Connected to %s\n", *serverURL)
	} else {
		fmt.Printf("⚠️ Not connected to %s\n", *serverURL)
	}

	data, err := os.ReadFile(*resumePath)
	if err != nil {
		log.Fatalf("❌ Failed to read resume: %v", err)
	}

	file := client.PendingFile{
		Name: filepath.Base(*resumePath),
		Size: int64(len(data)),
		Data: data,
	}

	if err := client.ValidateFile(file.Name, file.Size); err != nil {
		log.Fatalf("❌ %v", err)
	}

	jd := *jobDescription
	if *jdPath != "" {
		jdBytes, err := os.ReadFile(*jdPath)
		if err != nil {
			log.Fatalf("❌ Failed to read job description: %v", err)
		}
		jd = string(jdBytes)
	}

	state := client.NewState().
		WithFile(file).
		WithJobDescription(jd).
		Submitting()

	fmt.Printf("🔄 Analyzing %s...\n\n", file.Name)

	result, err := api.Submit(ctx, *state.File, state.JobDescription)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrConnectionFailed):
			log.Fatal("❌ Connection failed. Is the server running?")
		case errors.Is(err, client.ErrUnparseableAnalysis):
			log.Fatal("❌ Could not parse analysis")
		default:
			log.Fatalf("❌ %v", err)
		}
	}

	state = state.Completed(result)
	client.RenderAnalysis(os.Stdout, state.Result)
}
