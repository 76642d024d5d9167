package source

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	apperrors "github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/platform/errors"
)

const sample = `# Spells

Intro text is ignored.

## Fire Basics
### Spark:
* **Tier**: 1
* **Input**: Pay Fire
* **Flavor**: A small flame.

### Ember:
  * **tier**: 2
* **Output**: Gain Water
## Water Basics
### Drip:
* **Tier**: 1
BREAK
### Ignored:
* **Tier**: 5
`

func TestScan_Blocks(t *testing.T) {
	blocks, err := ScanString(sample)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	type summary struct {
		Name string
		Set  string
		Line int
		Tier string
	}
	var got []summary
	for _, b := range blocks {
		got = append(got, summary{Name: b.Name, Set: b.Set, Line: b.Line, Tier: b.String("Tier", "")})
	}
	want := []summary{
		{Name: "Spark", Set: "Fire Basics", Line: 6, Tier: "1"},
		{Name: "Ember", Set: "Fire Basics", Line: 11, Tier: "2"},
		{Name: "Drip", Set: "Water Basics", Line: 15, Tier: "1"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Scan() mismatch (-want +got):\n%s", diff)
	}

	flavor, ok := blocks[0].Lookup("flavor")
	if !ok || flavor.Value != "A small flame." || flavor.Label != "Flavor" {
		t.Fatalf("Lookup(flavor) = %+v, %v", flavor, ok)
	}
}

func TestScan_BlockBeforeAnySet(t *testing.T) {
	blocks, err := ScanString("### Lone:\n* **Tier**: 1\n")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(blocks) != 1 || blocks[0].Set != "" {
		t.Fatalf("blocks = %+v", blocks)
	}
}

func TestScan_MalformedHeading(t *testing.T) {
	_, err := ScanString("### Missing colon\n")
	if !apperrors.HasCode(err, apperrors.CodeParseMalformedHeading) {
		t.Fatalf("Scan() error = %v, want malformed heading", err)
	}
}

func TestScan_LastLabelWins(t *testing.T) {
	blocks, err := ScanString("### A:\n* **Tier**: 1\n* **Tier**: 3\n")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if got := blocks[0].String("Tier", ""); got != "3" {
		t.Fatalf("Tier = %q, want 3", got)
	}
	if blocks[0].Len() != 1 {
		t.Fatalf("Len() = %d, want 1", blocks[0].Len())
	}
}

func TestScan_ReaderError(t *testing.T) {
	long := "### A:\n* **Flavor**: " + strings.Repeat("x", 2*1024*1024) + "\n"
	if _, err := ScanString(long); err == nil {
		t.Fatal("expected error for oversized line")
	}
}
