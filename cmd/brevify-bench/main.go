// brevify-bench measures /summarize latency against a running server using
// article-length samples.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type summarizeRequest struct {
	Text   string `json:"text"`
	Mode   string `json:"mode"`
	Length string `json:"length"`
}

type summarizeResponse struct {
	Summary   string `json:"summary"`
	Mode      string `json:"mode"`
	Length    string `json:"length"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

type result struct {
	Sample    string
	Chars     int
	Mode      string
	Run       int
	ElapsedMs int64
	WallMs    int64
	OutChars  int
	Error     string
}

func main() {
	url := flag.String("url", "http://localhost:8090", "API base URL")
	runs := flag.Int("runs", 3, "Number of runs per sample")
	mode := flag.String("mode", "paragraph", "Summarization mode")
	length := flag.String("length", "medium", "Length tier")
	quality := flag.Bool("quality", false, "Quality mode: show input/output per sample (1 run, no timing table)")
	jsonOut := flag.String("json", "", "Write results to JSON file (e.g. results.json)")
	warmup := flag.Bool("warmup", false, "Run one warmup request per sample before measuring")
	flag.Parse()

	baseURL := strings.TrimRight(*url, "/")
	client := &http.Client{Timeout: 180 * time.Second}

	if *quality {
		runQualityMode(client, baseURL, *mode, *length)
		return
	}

	fmt.Printf("Benchmarking %s (mode=%s, length=%s, %d runs per sample", baseURL, *mode, *length, *runs)
	if *warmup {
		fmt.Print(", warmup enabled")
	}
	fmt.Println(")")

	var results []result
	var failures int
	for _, sample := range Samples {
		if *warmup {
			fmt.Printf("  Warming up %s...", sample.Name)
			w := benchmark(client, baseURL, *mode, *length, sample, 0)
			if w.Error != "" {
				fmt.Printf(" FAILED (%s)\n", w.Error)
			} else {
				fmt.Printf(" %dms (discarded)\n", w.ElapsedMs)
			}
		}
		for run := 1; run <= *runs; run++ {
			fmt.Printf("  Running %s (run %d/%d)...", sample.Name, run, *runs)
			r := benchmark(client, baseURL, *mode, *length, sample, run)
			results = append(results, r)
			if r.Error != "" {
				fmt.Printf(" FAILED (%s)\n", r.Error)
				failures++
			} else {
				fmt.Printf(" %dms\n", r.ElapsedMs)
			}
		}
	}

	fmt.Println()
	printTable(results)
	printSummary(results)

	if *jsonOut != "" {
		if err := writeJSON(*jsonOut, results, baseURL, *mode, *length); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
		} else {
			fmt.Printf("\nResults written to %s\n", *jsonOut)
		}
	}

	if failures > 0 {
		os.Exit(1)
	}
}

func benchmark(client *http.Client, baseURL, mode, length string, sample Sample, run int) result {
	fail := func(err string) result {
		return result{Sample: sample.Name, Chars: len(sample.Text), Mode: mode, Run: run, Error: err}
	}

	payload, _ := json.Marshal(summarizeRequest{Text: sample.Text, Mode: mode, Length: length})

	req, err := http.NewRequest(http.MethodPost, baseURL+"/summarize", strings.NewReader(string(payload)))
	if err != nil {
		return fail(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	wallMs := time.Since(start).Milliseconds()

	if err != nil {
		return fail(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fail(fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var sr summarizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return fail(err.Error())
	}

	return result{
		Sample:    sample.Name,
		Chars:     len(sample.Text),
		Mode:      mode,
		Run:       run,
		ElapsedMs: sr.ElapsedMs,
		WallMs:    wallMs,
		OutChars:  len(sr.Summary),
	}
}

func runQualityMode(client *http.Client, baseURL, mode, length string) {
	fmt.Printf("Quality test against %s (mode=%s, length=%s)\n", baseURL, mode, length)
	fmt.Println(strings.Repeat("=", 72))

	var failures int
	for i, sample := range Samples {
		fmt.Printf("\n--- %d/%d: %s (%d chars) ---\n", i+1, len(Samples), sample.Name, len(sample.Text))
		fmt.Printf("IN:  %s\n", sample.Text)

		r := benchmark(client, baseURL, mode, length, sample, 1)
		if r.Error != "" {
			fmt.Printf("ERR: %s\n", r.Error)
			failures++
			continue
		}

		// Re-issue to show the output text; benchmark only keeps sizes.
		payload, _ := json.Marshal(summarizeRequest{Text: sample.Text, Mode: mode, Length: length})
		resp, err := client.Post(baseURL+"/summarize", "application/json", strings.NewReader(string(payload)))
		if err != nil {
			fmt.Printf("ERR: %s\n", err)
			failures++
			continue
		}
		var sr summarizeResponse
		if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
			resp.Body.Close()
			fmt.Printf("ERR: %s\n", err)
			failures++
			continue
		}
		resp.Body.Close()

		fmt.Printf("OUT: %s\n", sr.Summary)
		fmt.Printf("     [%dms, %d->%d chars]\n", sr.ElapsedMs, len(sample.Text), len(sr.Summary))
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 72))
	fmt.Printf("Done: %d/%d passed\n", len(Samples)-failures, len(Samples))
	if failures > 0 {
		os.Exit(1)
	}
}

func printTable(results []result) {
	fmt.Println("| Sample | Chars | Mode | Run | Elapsed (ms) | Wall (ms) | Out Chars | Ratio |")
	fmt.Println("|--------|-------|------|-----|--------------|-----------|-----------|-------|")
	for _, r := range results {
		if r.Error != "" {
			fmt.Printf("| %-6s | %5d | %-9s | %d | %12s | %9s | %9s | %5s |\n",
				r.Sample, r.Chars, r.Mode, r.Run, "FAIL", "-", "-", "-")
			continue
		}
		ratio := float64(r.OutChars) / float64(r.Chars)
		fmt.Printf("| %-6s | %5d | %-9s | %d | %12d | %9d | %9d | %5.2f |\n",
			r.Sample, r.Chars, r.Mode, r.Run, r.ElapsedMs, r.WallMs, r.OutChars, ratio)
	}
}

func printSummary(results []result) {
	var ok []result
	for _, r := range results {
		if r.Error == "" {
			ok = append(ok, r)
		}
	}

	failed := len(results) - len(ok)

	if len(ok) == 0 {
		fmt.Printf("\nSummary: all %d runs failed\n", len(results))
		return
	}

	var totalElapsed int64
	var totalChars int
	minElapsed := ok[0].ElapsedMs
	maxElapsed := ok[0].ElapsedMs
	minSample := ok[0].Sample
	maxSample := ok[0].Sample

	for _, r := range ok {
		totalElapsed += r.ElapsedMs
		totalChars += r.Chars
		if r.ElapsedMs < minElapsed {
			minElapsed = r.ElapsedMs
			minSample = r.Sample
		}
		if r.ElapsedMs > maxElapsed {
			maxElapsed = r.ElapsedMs
			maxSample = r.Sample
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("- Avg ms/char: %.2f\n", float64(totalElapsed)/float64(totalChars))
	fmt.Printf("- Min elapsed: %dms (%s)\n", minElapsed, minSample)
	fmt.Printf("- Max elapsed: %dms (%s)\n", maxElapsed, maxSample)
	fmt.Printf("- Total runs: %d (%d ok, %d failed)\n", len(results), len(ok), failed)
}

type jsonReport struct {
	Timestamp string   `json:"timestamp"`
	URL       string   `json:"url"`
	Mode      string   `json:"mode"`
	Length    string   `json:"length"`
	Results   []result `json:"results"`
}

func writeJSON(path string, results []result, baseURL, mode, length string) error {
	report := jsonReport{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       baseURL,
		Mode:      mode,
		Length:    length,
		Results:   results,
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
