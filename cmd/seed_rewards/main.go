package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"intern_rewards/internal/db"
	"intern_rewards/internal/domain"
	"intern_rewards/internal/repository"
	"intern_rewards/internal/service"
)

// The catalog is externally curated; this tool loads a default set so a fresh
// tenant has something to show. Re-running updates existing items by title.
//
// With APP_URL set it seeds through the running app's keyed catalog endpoint,
// so already-connected clients receive the updated catalog on their rewards
// feed. Without APP_URL it writes to Postgres directly, for seeding before
// the app is up.
var catalog = []domain.Reward{
	{Title: "Company T-Shirt", Description: "Limited edition intern tee", Icon: "👕", Points: 10, SortOrder: 1},
	{Title: "Coffee Voucher", Description: "A week of free coffee", Icon: "☕", Points: 25, SortOrder: 2},
	{Title: "Wireless Earbuds", Description: "For your fundraising calls", Icon: "🎧", Points: 50, SortOrder: 3},
	{Title: "Dinner for Two", Description: "Celebrate with a friend", Icon: "🍽️", Points: 100, SortOrder: 4},
	{Title: "Weekend Getaway", Description: "Top fundraiser retreat", Icon: "✈️", Points: 250, SortOrder: 5},
}

func main() {
	if appURL := os.Getenv("APP_URL"); appURL != "" {
		seedViaAPI(appURL, os.Getenv("INTERNAL_API_KEY"))
		return
	}
	seedDirect()
}

func seedViaAPI(appURL, key string) {
	if key == "" {
		log.Fatal("INTERNAL_API_KEY not set")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	for i := range catalog {
		// sort_order is not part of the reward's public JSON shape, so the
		// request body is built explicitly
		body, err := json.Marshal(map[string]any{
			"title":       catalog[i].Title,
			"description": catalog[i].Description,
			"icon":        catalog[i].Icon,
			"points":      catalog[i].Points,
			"sort_order":  catalog[i].SortOrder,
		})
		if err != nil {
			log.Fatalf("encode %q failed: %v", catalog[i].Title, err)
		}

		req, err := http.NewRequest(http.MethodPut, appURL+"/api/v1/rewards", bytes.NewReader(body))
		if err != nil {
			log.Fatalf("build request for %q failed: %v", catalog[i].Title, err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Internal-Key", key)

		resp, err := client.Do(req)
		if err != nil {
			log.Fatalf("seed %q failed: %v", catalog[i].Title, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			log.Fatalf("seed %q failed: %s", catalog[i].Title, resp.Status)
		}
		log.Printf("seeded %q points=%d\n", catalog[i].Title, catalog[i].Points)
	}

	fmt.Printf("catalog seeded via %s: %d rewards\n", appURL, len(catalog))
}

func seedDirect() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	tenant := os.Getenv("TENANT_ID")
	if tenant == "" {
		tenant = "default-tenant"
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	// no app to notify in direct mode
	svc := service.NewCatalogService(repository.NewRewardRepository(pool, tenant), nil)
	ctx := context.Background()

	for i := range catalog {
		if err := svc.UpsertReward(ctx, &catalog[i]); err != nil {
			log.Fatalf("seed %q failed: %v", catalog[i].Title, err)
		}
		log.Printf("seeded %q id=%d points=%d\n", catalog[i].Title, catalog[i].ID, catalog[i].Points)
	}

	log.Printf("catalog seeded: %d rewards for tenant %s\n", len(catalog), tenant)
}
