package services

import (
	"strings"
	"testing"
	"time"

	"agorahub/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildDebateExport(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	debate := models.Debate{
		ID:          primitive.NewObjectID(),
		Topic:       "Universal Basic Income",
		CreatorName: "Alice",
		CreatedAt:   created,
	}
	arguments := []models.Argument{
		{Side: models.SideFor, Text: "It reduces poverty", AuthorName: "Alice", CreatedAt: created},
		{Side: models.SideAgainst, Text: "It costs too much", AuthorName: "Bob", CreatedAt: created.Add(time.Minute)},
	}

	export := BuildDebateExport(debate, arguments)

	if export.Topic != debate.Topic {
		t.Errorf("Expected topic %q, got %q", debate.Topic, export.Topic)
	}
	if export.ID != debate.ID.Hex() {
		t.Errorf("Expected id %s, got %s", debate.ID.Hex(), export.ID)
	}
	if len(export.Arguments) != 2 {
		t.Fatalf("Expected 2 arguments, got %d", len(export.Arguments))
	}
	if export.Arguments[0].Side != "for" || export.Arguments[1].Side != "against" {
		t.Errorf("Expected sides preserved in order, got %s/%s", export.Arguments[0].Side, export.Arguments[1].Side)
	}
	if export.Arguments[1].CreatedAt != "2026-03-14T09:31:00Z" {
		t.Errorf("Expected RFC3339 timestamp, got %s", export.Arguments[1].CreatedAt)
	}
}

func TestMarshalDebateExportEscapesEntities(t *testing.T) {
	debate := models.Debate{
		ID:          primitive.NewObjectID(),
		Topic:       `Taxes & "fairness" <now>`,
		CreatorName: "Alice",
		CreatedAt:   time.Now(),
	}
	arguments := []models.Argument{
		{Side: models.SideFor, Text: `a < b && c > d, it's "obvious"`, AuthorName: `O'Brien`, CreatedAt: time.Now()},
	}

	out, err := MarshalDebateExport(BuildDebateExport(debate, arguments))
	if err != nil {
		t.Fatalf("Failed to marshal export: %v", err)
	}
	doc := string(out)

	if !strings.HasPrefix(doc, "<?xml") {
		t.Error("Expected XML declaration header")
	}
	for _, raw := range []string{`a < b`, `c > d`, `&& `, `"obvious"`} {
		if strings.Contains(doc, raw) {
			t.Errorf("Expected %q to be escaped, document: %s", raw, doc)
		}
	}
	for _, escaped := range []string{"&lt;", "&gt;", "&amp;", "&#34;", "&#39;"} {
		if !strings.Contains(doc, escaped) {
			t.Errorf("Expected entity %s in document: %s", escaped, doc)
		}
	}
}
