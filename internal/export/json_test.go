package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/san-kum/algoviz/internal/algo"
)

type decoded struct {
	ID     string `json:"id"`
	Family string `json:"family"`
	Op     string `json:"op"`
	Steps  []struct {
		Index      int                 `json:"index"`
		Kind       string              `json:"kind"`
		State      json.RawMessage     `json:"state"`
		Highlights map[string][]string `json:"highlights"`
		Message    string              `json:"message"`
		Error      string              `json:"error"`
	} `json:"steps"`
}

func TestWriteJSON(t *testing.T) {
	seq := algo.BinarySearch(algo.NewArray(10, 20, 30, 40, 50), 30)
	data := NewExportData("searching", "binary", algo.Operands{Target: algo.Int(30)}, seq)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, data); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var got decoded
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, err := uuid.Parse(got.ID); err != nil {
		t.Errorf("id %q is not a uuid: %v", got.ID, err)
	}
	if got.Family != "searching" || got.Op != "binary" {
		t.Errorf("family/op = %s/%s", got.Family, got.Op)
	}
	if len(got.Steps) != seq.Len() {
		t.Fatalf("steps = %d, want %d", len(got.Steps), seq.Len())
	}
	last := got.Steps[len(got.Steps)-1]
	if last.Index != seq.Len()-1 || last.Kind != "array" {
		t.Errorf("last step index/kind = %d/%s", last.Index, last.Kind)
	}
	if want := []string{"2"}; len(last.Highlights["found"]) != 1 || last.Highlights["found"][0] != want[0] {
		t.Errorf("found highlight = %v, want %v", last.Highlights["found"], want)
	}

	var arr struct {
		Items []int `json:"items"`
	}
	if err := json.Unmarshal(last.State, &arr); err != nil {
		t.Fatalf("state: %v", err)
	}
	if len(arr.Items) != 5 {
		t.Errorf("state items = %v", arr.Items)
	}
}

func TestExportJSON_Diagnostic(t *testing.T) {
	seq := algo.Pop(algo.NewStack())
	path := filepath.Join(t.TempDir(), "run.json")

	if err := ExportJSON(path, NewExportData("stack", "pop", algo.Operands{}, seq)); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got decoded
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got.Steps) != 1 {
		t.Fatalf("steps = %d, want 1", len(got.Steps))
	}
	if got.Steps[0].Error != "pop: step: underflow: Stack underflow: nothing to pop" {
		t.Errorf("error = %q", got.Steps[0].Error)
	}
}

func TestExportJSON_TreeState(t *testing.T) {
	seq := algo.TreeInsert(algo.BuildTree(5, 3), 8)
	data := NewExportData("bst", "insert", algo.Operands{Value: algo.Int(8)}, seq)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, data); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"right"`)) {
		t.Error("tree state should serialise child links")
	}
}
