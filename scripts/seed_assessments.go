// seed_assessments.go — standalone script that submits AIQ assessments to the API,
// either read from a file (one comma-separated answer vector per line) or random.
//
// Usage:
//
//	go run scripts/seed_assessments.go -api http://localhost:8700 -n 50 -user seed
//	go run scripts/seed_assessments.go -file answers.txt -dry-run
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"strconv"
	"strings"
)

type assessmentRequest struct {
	Answers []int  `json:"answers"`
	UserID  string `json:"user_id,omitempty"`
}

type assessmentResponse struct {
	ID         string  `json:"assessment_id"`
	Type       string  `json:"aiq_type"`
	Confidence float64 `json:"confidence_level"`
}

const questionCount = 10

func main() {
	apiURL := flag.String("api", "http://localhost:8700", "AIQ API base URL")
	file := flag.String("file", "", "answer vectors, one comma-separated line each")
	n := flag.Int("n", 20, "random submissions when -file is not set")
	user := flag.String("user", "seed", "user_id prefix; each submission gets a numeric suffix")
	seed := flag.Uint64("seed", 1, "random seed")
	dryRun := flag.Bool("dry-run", false, "print submissions without posting")
	flag.Parse()

	var vectors [][]int
	if *file != "" {
		var err error
		vectors, err = readVectors(*file)
		if err != nil {
			log.Fatalf("read %s: %v", *file, err)
		}
	} else {
		r := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
		for i := 0; i < *n; i++ {
			vectors = append(vectors, randomVector(r))
		}
	}

	log.Printf("prepared %d submissions", len(vectors))

	if *dryRun {
		for i, v := range vectors {
			fmt.Printf("[%d] %s-%d %v\n", i+1, *user, i+1, v)
		}
		return
	}

	client := &http.Client{}
	created, skipped := 0, 0
	counts := make(map[string]int)
	for i, v := range vectors {
		body, _ := json.Marshal(assessmentRequest{Answers: v, UserID: fmt.Sprintf("%s-%d", *user, i+1)})
		req, err := http.NewRequest("POST", *apiURL+"/api/v1/aiq/assessments", bytes.NewReader(body))
		if err != nil {
			log.Printf("skip #%d: %v", i+1, err)
			skipped++
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			log.Printf("skip #%d: %v", i+1, err)
			skipped++
			continue
		}
		var out assessmentResponse
		decodeErr := json.NewDecoder(resp.Body).Decode(&out)
		resp.Body.Close()

		if resp.StatusCode != http.StatusCreated || decodeErr != nil {
			log.Printf("skip #%d: status %d", i+1, resp.StatusCode)
			skipped++
			continue
		}
		created++
		counts[out.Type]++
	}

	log.Printf("done: %d created, %d skipped", created, skipped)
	for t, c := range counts {
		log.Printf("  %s: %d", t, c)
	}
}

// randomVector biases each respondent toward a personal baseline so the
// generated set spreads across types and confidence levels.
func randomVector(r *rand.Rand) []int {
	base := 1 + r.IntN(4)
	v := make([]int, questionCount)
	for i := range v {
		a := base + r.IntN(3) - 1
		v[i] = min(max(a, 1), 4)
	}
	return v
}

func readVectors(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var vectors [][]int
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		var v []int
		for _, field := range strings.Split(text, ",") {
			a, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			v = append(v, a)
		}
		vectors = append(vectors, v)
	}
	return vectors, scanner.Err()
}
