package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

const (
	defaultAPIBase = "http://localhost:8080"
)

var (
	apiBase    string
	client     = &http.Client{Timeout: 30 * time.Second}
	testDate   string
	createdIDs = make(map[string]string) // track created resources for cleanup
)

func main() {
	fmt.Println("=== Mindful Hub E2E Smoke Test ===")
	fmt.Println()

	apiBase = getEnv("API_BASE_URL", defaultAPIBase)
	fmt.Printf("API Base: %s\n", apiBase)
	fmt.Println()

	// Test date (today)
	testDate = time.Now().Format("2006-01-02")

	steps := []struct {
		name string
		fn   func() error
	}{
		{"Healthz", testHealthz},
		{"Create Journal Entry", testCreateJournalEntry},
		{"List Journal Entries", testListJournalEntries},
		{"Update Journal Entry", testUpdateJournalEntry},
		{"Upsert Mood", testUpsertMood},
		{"Mood Stats", testMoodStats},
		{"List Assessments", testListAssessments},
		{"Score Assessment", testScoreAssessment},
		{"List Assessment Results", testListAssessmentResults},
		{"Library Categories", testLibraryCategories},
		{"Library Tracks", testLibraryTracks},
		{"Create Report (CSV)", testCreateReportCSV},
		{"Download Report", testDownloadReport},
		{"Delete Report", testDeleteReport},
		{"Delete Journal Entry", testDeleteJournalEntry},
	}

	failed := false
	for i, step := range steps {
		fmt.Printf("[%d/%d] %s... ", i+1, len(steps), step.name)
		if err := step.fn(); err != nil {
			fmt.Printf("❌ FAILED\n")
			fmt.Printf("  Error: %v\n\n", err)
			failed = true
			break
		}
		fmt.Printf("✅ OK\n")
	}

	fmt.Println()
	if failed {
		fmt.Println("❌ SMOKE TEST FAILED")
		os.Exit(1)
	}

	fmt.Println("✅ ALL SMOKE TESTS PASSED")
}

func testHealthz() error {
	resp, err := client.Get(apiBase + "/healthz")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return unexpectedStatus(resp)
	}

	return nil
}

func testCreateJournalEntry() error {
	payload := map[string]any{
		"title":   "Smoke test entry",
		"content": "Written by the smoke test to verify journal CRUD.",
		"mood":    "calm",
		"tags":    []string{"smoke"},
	}

	var entry struct {
		ID string `json:"id"`
	}
	if err := postJSON("/v1/journal", payload, http.StatusCreated, &entry); err != nil {
		return err
	}
	if entry.ID == "" {
		return fmt.Errorf("no entry ID in response")
	}

	createdIDs["journal"] = entry.ID
	return nil
}

func testListJournalEntries() error {
	var body struct {
		Entries []struct {
			ID string `json:"id"`
		} `json:"entries"`
	}
	if err := getJSON("/v1/journal", &body); err != nil {
		return err
	}

	for _, e := range body.Entries {
		if e.ID == createdIDs["journal"] {
			return nil
		}
	}
	return fmt.Errorf("created entry not found in list")
}

func testUpdateJournalEntry() error {
	id := createdIDs["journal"]
	if id == "" {
		return fmt.Errorf("no journal entry ID")
	}

	payload := map[string]any{"title": "Smoke test entry (updated)"}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("PATCH", apiBase+"/v1/journal/"+id, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return unexpectedStatus(resp)
	}

	var entry struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&entry); err != nil {
		return err
	}
	if entry.Title != "Smoke test entry (updated)" {
		return fmt.Errorf("title not updated: %q", entry.Title)
	}

	return nil
}

func testUpsertMood() error {
	payload := map[string]any{
		"date":      testDate,
		"mood":      "happy",
		"intensity": 4,
		"note":      "smoke test",
	}

	var entry struct {
		ID   string `json:"id"`
		Date string `json:"date"`
	}
	if err := postJSON("/v1/moods", payload, http.StatusOK, &entry); err != nil {
		return err
	}
	if entry.Date != testDate {
		return fmt.Errorf("unexpected date: %q", entry.Date)
	}

	createdIDs["mood"] = entry.ID
	return nil
}

func testMoodStats() error {
	var stats struct {
		TotalEntries int `json:"total_entries"`
	}
	if err := getJSON("/v1/moods/stats", &stats); err != nil {
		return err
	}
	if stats.TotalEntries < 1 {
		return fmt.Errorf("expected at least 1 mood entry, got %d", stats.TotalEntries)
	}

	return nil
}

func testListAssessments() error {
	var body struct {
		Assessments []struct {
			ID string `json:"id"`
		} `json:"assessments"`
	}
	if err := getJSON("/v1/assessments", &body); err != nil {
		return err
	}
	if len(body.Assessments) != 4 {
		return fmt.Errorf("expected 4 assessments, got %d", len(body.Assessments))
	}

	return nil
}

func testScoreAssessment() error {
	// Fetch the anxiety questionnaire and answer every question with 1
	var assessment struct {
		Questions []struct {
			ID string `json:"id"`
		} `json:"questions"`
	}
	if err := getJSON("/v1/assessments/anxiety", &assessment); err != nil {
		return err
	}
	if len(assessment.Questions) == 0 {
		return fmt.Errorf("no questions in assessment")
	}

	answers := make(map[string]int, len(assessment.Questions))
	for _, q := range assessment.Questions {
		answers[q.ID] = 1
	}

	var result struct {
		ID    string `json:"id"`
		Score int    `json:"score"`
		Level string `json:"level"`
	}
	if err := postJSON("/v1/assessments/anxiety/score", map[string]any{"answers": answers}, http.StatusOK, &result); err != nil {
		return err
	}
	if result.Level == "" {
		return fmt.Errorf("no level in result")
	}

	createdIDs["result"] = result.ID
	return nil
}

func testListAssessmentResults() error {
	var body struct {
		Results []struct {
			ID string `json:"id"`
		} `json:"results"`
	}
	if err := getJSON("/v1/assessments/results", &body); err != nil {
		return err
	}

	for _, r := range body.Results {
		if r.ID == createdIDs["result"] {
			return nil
		}
	}
	return fmt.Errorf("saved result not found in history")
}

func testLibraryCategories() error {
	var body struct {
		Categories []struct {
			ID string `json:"id"`
		} `json:"categories"`
	}
	if err := getJSON("/v1/library/categories", &body); err != nil {
		return err
	}
	if len(body.Categories) != 6 {
		return fmt.Errorf("expected 6 categories, got %d", len(body.Categories))
	}

	return nil
}

func testLibraryTracks() error {
	var body struct {
		Tracks []struct {
			ID string `json:"id"`
		} `json:"tracks"`
	}
	if err := getJSON("/v1/library/tracks", &body); err != nil {
		return err
	}
	if len(body.Tracks) != 15 {
		return fmt.Errorf("expected 15 tracks, got %d", len(body.Tracks))
	}

	return nil
}

func testCreateReportCSV() error {
	from := time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	payload := map[string]any{
		"from":   from,
		"to":     testDate,
		"format": "csv",
	}

	var report struct {
		ID          string `json:"id"`
		DownloadURL string `json:"download_url"`
		Status      string `json:"status"`
	}
	if err := postJSON("/v1/reports", payload, http.StatusCreated, &report); err != nil {
		return err
	}
	if report.Status != "ready" {
		return fmt.Errorf("report status: %q", report.Status)
	}
	if report.DownloadURL == "" {
		return fmt.Errorf("no download URL")
	}

	createdIDs["report"] = report.ID
	createdIDs["report_url"] = report.DownloadURL
	return nil
}

func testDownloadReport() error {
	url := createdIDs["report_url"]
	if url == "" {
		return fmt.Errorf("no report download URL")
	}

	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return unexpectedStatus(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if len(data) < 10 {
		return fmt.Errorf("report too small: %d bytes", len(data))
	}

	return nil
}

func testDeleteReport() error {
	return deleteResource("/v1/reports/" + createdIDs["report"])
}

func testDeleteJournalEntry() error {
	return deleteResource("/v1/journal/" + createdIDs["journal"])
}

// Helper functions

func getJSON(path string, out any) error {
	resp, err := client.Get(apiBase + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return unexpectedStatus(resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func postJSON(path string, payload any, wantStatus int, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := client.Post(apiBase+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return unexpectedStatus(resp)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func deleteResource(path string) error {
	req, err := http.NewRequest("DELETE", apiBase+path, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return unexpectedStatus(resp)
	}

	return nil
}

func unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return fmt.Errorf("status=%d body=%s", resp.StatusCode, string(body))
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
