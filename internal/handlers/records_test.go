package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/gofiber/template/html/v2"

	"cvetrack/internal/config"
	"cvetrack/internal/store"
	"cvetrack/internal/testutil"
)

// indexTemplate mirrors the data the real listing template consumes,
// flattened so assertions can grep the rendered body.
const indexTemplate = `Last updated: {{.LastUpdated}}
{{if .Flash}}Flash: {{.Flash}}
{{end}}{{range .Records}}[{{.ID}}]{{end}}
Page {{.Page}} of {{.TotalPages}} ({{.Total}} total)`

func listingApp(t *testing.T, repo *store.CSVRepository, meta *store.RefreshMeta) *fiber.App {
	t.Helper()

	views := t.TempDir()
	if err := os.WriteFile(filepath.Join(views, "index.html"), []byte(indexTemplate), 0o644); err != nil {
		t.Fatalf("failed to write template: %v", err)
	}

	app := fiber.New(fiber.Config{Views: html.New(views, ".html")})
	sessionMiddleware, _ := session.NewWithStore(session.Config{})
	app.Use(sessionMiddleware)

	cfg := &config.Config{SiteTitle: "CVE Tracker"}
	app.Get("/", NewRecordHandler(repo, meta, cfg).Index)
	return app
}

func getListing(t *testing.T, app *fiber.App, target string) string {
	t.Helper()

	req, _ := http.NewRequest("GET", target, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s failed: %v", target, err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("request %s: status %d", target, resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	return string(body)
}

func TestRecordHandler_Index(t *testing.T) {
	repo := testutil.TestRepo(t)
	meta := testutil.TestMeta(t)
	if _, err := repo.Append(testutil.TestRecords("CVE-A", "CVE-B", "CVE-C")); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	app := listingApp(t, repo, meta)
	body := getListing(t, app, "/")

	// Default ordering is newest first.
	if !strings.Contains(body, "[CVE-C][CVE-B][CVE-A]") {
		t.Errorf("body = %q, want records newest first", body)
	}
	if !strings.Contains(body, "Last updated: Never") {
		t.Errorf("body = %q, want Never before any refresh", body)
	}
	if !strings.Contains(body, "Page 1 of 1 (3 total)") {
		t.Errorf("body = %q, want single page of 3", body)
	}
}

func TestRecordHandler_IndexTextFilter(t *testing.T) {
	repo := testutil.TestRepo(t)
	meta := testutil.TestMeta(t)
	records := testutil.TestRecords("CVE-A", "CVE-B")
	records[0].Description = "Remote code execution"
	records[1].Description = "Local privilege escalation"
	if _, err := repo.Append(records); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	app := listingApp(t, repo, meta)
	body := getListing(t, app, "/?q=REMOTE")

	if !strings.Contains(body, "[CVE-A]") {
		t.Errorf("body = %q, want CVE-A to match case-insensitively", body)
	}
	if strings.Contains(body, "CVE-B") {
		t.Errorf("body = %q, want CVE-B filtered out", body)
	}
}

func TestRecordHandler_IndexOutOfRangePage(t *testing.T) {
	repo := testutil.TestRepo(t)
	meta := testutil.TestMeta(t)
	if _, err := repo.Append(testutil.TestRecords("CVE-A")); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	app := listingApp(t, repo, meta)
	body := getListing(t, app, "/?page=9")

	if strings.Contains(body, "[CVE-") {
		t.Errorf("body = %q, want no records on an out-of-range page", body)
	}
	if !strings.Contains(body, "Page 9 of 1 (1 total)") {
		t.Errorf("body = %q, want requested page echoed with real totals", body)
	}
}

func TestRecordHandler_IndexShowsFlash(t *testing.T) {
	repo := testutil.TestRepo(t)
	meta := testutil.TestMeta(t)

	app := listingApp(t, repo, meta)
	app.Get("/seed-flash", func(c fiber.Ctx) error {
		setFlash(c, "5 new CVEs added.")
		return c.SendString("ok")
	})

	req, _ := http.NewRequest("GET", "/seed-flash", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("seed request failed: %v", err)
	}

	req2, _ := http.NewRequest("GET", "/", nil)
	for _, c := range resp.Cookies() {
		req2.AddCookie(c)
	}
	resp2, err := app.Test(req2)
	if err != nil {
		t.Fatalf("listing request failed: %v", err)
	}
	body, _ := io.ReadAll(resp2.Body)
	if !strings.Contains(string(body), "Flash: 5 new CVEs added.") {
		t.Errorf("body = %q, want flash rendered", body)
	}

	// The flash is consumed on first render.
	req3, _ := http.NewRequest("GET", "/", nil)
	for _, c := range resp.Cookies() {
		req3.AddCookie(c)
	}
	resp3, err := app.Test(req3)
	if err != nil {
		t.Fatalf("second listing request failed: %v", err)
	}
	body3, _ := io.ReadAll(resp3.Body)
	if strings.Contains(string(body3), "Flash:") {
		t.Errorf("body = %q, want flash cleared after first render", body3)
	}
}
