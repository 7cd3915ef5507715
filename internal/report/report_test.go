package report

import (
	"strings"
	"testing"
	"time"

	"github.com/prn-tf/mira-movil/internal/domain"
)

func TestTextRendererRender(t *testing.T) {
	movements := []*domain.MovementRecord{
		domain.NewMovementRecord("eq-1", "Excavadora Principal", domain.MovementExit, "Proyecto Norte", "2024-07-20", "jperez", "Inicio de excavación"),
		domain.NewMovementRecord("eq-2", "Grúa Torre", domain.MovementEntry, "Bodega Central", "2024-07-22", "mgonzalez", ""),
	}
	filters := Filters{DateFrom: "2024-07-01", DateTo: "2024-07-31", Project: "Norte"}
	generatedAt := time.Date(2024, 7, 25, 14, 30, 0, 0, time.UTC)

	content, contentType, err := TextRenderer{}.Render(filters, movements, generatedAt)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if contentType != "text/plain; charset=utf-8" {
		t.Errorf("content type = %q", contentType)
	}

	body := string(content)
	for _, want := range []string{
		"Range: 2024-07-01 to 2024-07-31",
		"Project: Norte",
		"Movements: 2",
		"Excavadora Principal",
		"by=jperez",
		"notes=Inicio de excavación",
		"2024-07-22",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("report body missing %q:\n%s", want, body)
		}
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	if _, err := store.Get("missing"); err != ErrArtifactNotFound {
		t.Errorf("Get on empty store: %v, want ErrArtifactNotFound", err)
	}

	artifact := &Artifact{
		ID:          "a-1",
		Filename:    "movement-report-2024-07-25.txt",
		ContentType: "text/plain; charset=utf-8",
		Content:     []byte("body"),
		CreatedAt:   time.Now(),
	}
	if err := store.Put(artifact); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := store.Get("a-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Filename != artifact.Filename || string(got.Content) != "body" {
		t.Errorf("unexpected artifact: %+v", got)
	}
}
