package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/liangyc/courtwatch/internal/announce"
	"github.com/liangyc/courtwatch/internal/filter"
	"github.com/liangyc/courtwatch/internal/runner"
)

func sampleReport() *runner.Report {
	date := time.Date(2025, time.May, 20, 0, 0, 0, 0, announce.Timezone)
	a := announce.Announcement{
		Candidate: announce.Candidate{
			Site:     "興雅國中",
			Title:    "羽球館夜間開放時段調整",
			URL:      "https://www.syajh.tp.edu.tw/news.php?id=881",
			DateText: "2025-05-20",
		},
		Date: date,
	}
	return &runner.Report{
		Announcements: []announce.Announcement{a},
		Traces: []runner.SiteTrace{
			{
				Site:  "興雅國中",
				Pages: []string{"https://www.syajh.tp.edu.tw/news_list.php"},
				Decisions: []filter.Decision{
					{Candidate: a.Candidate, Outcome: filter.Accepted, Reason: "matched \"羽球\", 12 days old", AgeDays: 12},
					{
						Candidate: announce.Candidate{Site: "興雅國中", Title: "段考日程公告", URL: "https://www.syajh.tp.edu.tw/news.php?id=880", DateText: "2025-05-19"},
						Outcome:   filter.RejectedNoKeyword,
						Reason:    "title has none of 羽球",
						AgeDays:   13,
					},
				},
			},
		},
	}
}

func TestWriteReportText(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReport(&buf, sampleReport(), FormatText, Options{})
	if err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "羽球館夜間開放時段調整") {
		t.Errorf("expected announcement title in output:\n%s", out)
	}
	if !strings.Contains(out, "2025-05-20") {
		t.Errorf("expected resolved date in output:\n%s", out)
	}
	if strings.Contains(out, "rejected_no_keyword") {
		t.Errorf("trace should be hidden without verbose:\n%s", out)
	}
}

func TestWriteReportVerboseTrace(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReport(&buf, sampleReport(), FormatText, Options{Verbose: true})
	if err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "accepted") || !strings.Contains(out, "rejected_no_keyword") {
		t.Errorf("expected decision outcomes in verbose output:\n%s", out)
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("color disabled by default options:\n%s", out)
	}
}

func TestWriteReportColor(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReport(&buf, sampleReport(), FormatText, Options{Verbose: true, Color: true})
	if err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	if !strings.Contains(buf.String(), ansiGreen) {
		t.Error("expected green accepted outcome in colored output")
	}
}

func TestWriteReportJSON(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReport(&buf, sampleReport(), FormatJSON, Options{})
	if err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}

	var decoded runner.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Announcements) != 1 {
		t.Errorf("expected 1 announcement in JSON, got %d", len(decoded.Announcements))
	}
	if len(decoded.Traces) != 1 || len(decoded.Traces[0].Decisions) != 2 {
		t.Errorf("expected full trace in JSON output")
	}
}

func TestWriteReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReport(&buf, &runner.Report{}, FormatText, Options{})
	if err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No matching announcements") {
		t.Errorf("expected empty-result message, got:\n%s", buf.String())
	}
}

func TestWriteReportUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, sampleReport(), "yaml", Options{}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
