package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CheckinRequest is the check-in payload
type CheckinRequest struct {
	PlaceID string  `json:"placeId"`
	UserLat float64 `json:"userLat"`
	UserLng float64 `json:"userLng"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	StatusCounts       map[int]int
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// Scenario defines one simulated client action
type Scenario struct {
	Name   string
	Method string
	Path   string
	Authed bool
	Body   func(placeID string, placeLat, placeLng float64) any
}

func scenarios() []Scenario {
	checkinBody := func(latOffset float64) func(string, float64, float64) any {
		return func(placeID string, placeLat, placeLng float64) any {
			return CheckinRequest{
				PlaceID: placeID,
				UserLat: placeLat + latOffset,
				UserLng: placeLng,
			}
		}
	}

	return []Scenario{
		{"Check-in near", http.MethodPost, "/api/checkins", true, checkinBody(0.0005)},
		{"Check-in far", http.MethodPost, "/api/checkins", true, checkinBody(0.01)},
		{"Profile", http.MethodGet, "/api/profile", true, nil},
		{"Leaderboard", http.MethodGet, "/api/leaderboard", false, nil},
		{"Places", http.MethodGet, "/api/places", false, nil},
	}
}

// mintToken signs a short-lived HS256 token for a simulated user. Only
// useful against a server running in jwt verification mode with the same
// secret.
func mintToken(secret string, userIndex int) (string, error) {
	claims := jwt.MapClaims{
		"sub":   fmt.Sprintf("load-user-%d", userIndex),
		"email": fmt.Sprintf("load-user-%d@example.com", userIndex),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	users := flag.Int("users", 3, "Number of simulated users to distribute load across")
	baseURL := flag.String("url", "http://localhost:3001", "Base URL for the API")
	secret := flag.String("secret", "dev-only-secret-change-me", "JWT signing secret (jwt auth mode)")
	placeID := flag.String("place", "", "Place id to check in at (required for check-in scenarios)")
	placeLat := flag.Float64("lat", 1.3138, "Latitude of the target place")
	placeLng := flag.Float64("lng", 103.8159, "Longitude of the target place")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	if *users < 1 {
		*users = 1
	}

	// Mint one token per simulated user up front
	tokens := make([]string, *users)
	for i := range tokens {
		token, err := mintToken(*secret, i)
		if err != nil {
			fmt.Println("Failed to mint token:", err)
			return
		}
		tokens[i] = token
	}

	allScenarios := scenarios()
	if *placeID == "" {
		fmt.Println("No -place given; skipping check-in scenarios")
		allScenarios = allScenarios[2:]
	}

	fmt.Printf("Load testing %s across %d simulated users\n", *baseURL, *users)
	fmt.Printf("Scenarios: %d\n", len(allScenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour, // Start with a high value that will be replaced
		StatusCounts:    make(map[int]int),
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *placeID, *placeLat, *placeLng, *delayMs, tokens, allScenarios, jobs, results, stats)
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	go func() {
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}
			stats.StatusCounts[result.StatusCode]++

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime

			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	wg.Wait()
	close(results)

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

func worker(baseURL, placeID string, placeLat, placeLng float64, delayMs int,
	tokens []string, allScenarios []Scenario, jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		scenario := allScenarios[rand.Intn(len(allScenarios))]
		token := tokens[rand.Intn(len(tokens))]

		stats.Lock.Lock()
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		var bodyReader *bytes.Buffer
		if scenario.Body != nil {
			jsonData, err := json.Marshal(scenario.Body(placeID, placeLat, placeLng))
			if err != nil {
				results <- TestResult{Success: false, Error: err}
				continue
			}
			bodyReader = bytes.NewBuffer(jsonData)
		} else {
			bodyReader = bytes.NewBuffer(nil)
		}

		req, err := http.NewRequest(scenario.Method, baseURL+scenario.Path, bodyReader)
		if err != nil {
			results <- TestResult{Success: false, Error: err}
			continue
		}

		req.Header.Set("Content-Type", "application/json")
		if scenario.Authed {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		startTime := time.Now()
		resp, err := client.Do(req)
		responseTime := time.Since(startTime)

		result := TestResult{
			ResponseTime: responseTime,
		}

		if err != nil {
			result.Success = false
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			// 4xx responses count as success: duplicate check-ins and
			// out-of-range rejections are expected outcomes here.
			result.Success = resp.StatusCode < 500
			if !result.Success {
				result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func printResults(stats *TestStats) {
	rawTps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sortedTimes := make([]time.Duration, len(stats.ResponseTimes))
		copy(sortedTimes, stats.ResponseTimes)

		// Simple bubble sort (OK for small datasets)
		for i := 0; i < len(sortedTimes); i++ {
			for j := i + 1; j < len(sortedTimes); j++ {
				if sortedTimes[i] > sortedTimes[j] {
					sortedTimes[i], sortedTimes[j] = sortedTimes[j], sortedTimes[i]
				}
			}
		}

		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p95 = sortedTimes[len(sortedTimes)*95/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Requests/sec:        %.2f\n", rawTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- STATUS DISTRIBUTION -----------------")
	for status, count := range stats.StatusCounts {
		fmt.Printf("HTTP %d: %d requests (%.1f%%)\n", status, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	totalScenarios := 0
	for _, count := range stats.ScenarioStats {
		totalScenarios += count
	}
	for scenario, count := range stats.ScenarioStats {
		if count > 0 {
			fmt.Printf("%-15s: %d requests (%.1f%%)\n", scenario, count,
				float64(count)/float64(totalScenarios)*100)
		}
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
