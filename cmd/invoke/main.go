// Command invoke is a development utility that triggers a workflow on a
// running server and prints the response envelope.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "Base URL of the hookflow server")
	id := flag.String("id", "", "Workflow id to invoke")
	data := flag.String("data", "", "JSON payload (empty for none)")
	apiKey := flag.String("api-key", "", "API key credential")
	token := flag.String("token", "", "Bearer token credential")
	flag.Parse()

	if *id == "" {
		log.Fatal("missing -id")
	}

	req, err := http.NewRequest("POST", strings.TrimRight(*addr, "/")+"/"+*id, strings.NewReader(*data))
	if err != nil {
		log.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if *apiKey != "" {
		req.Header.Set("x-api-key", *apiKey)
	}
	if *token != "" {
		req.Header.Set("Authorization", "Bearer "+*token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("Failed to read response: %v", err)
	}

	fmt.Printf("%s\n%s\n", resp.Status, body)
}
