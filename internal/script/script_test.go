package script

import (
	"reflect"
	"testing"

	"github.com/harten/deploy/internal/build"
)

func TestSections(t *testing.T) {
	boost, err := build.NewBuild("boost/1.74", []string{"gcc"})
	if err != nil {
		t.Fatal(err)
	}
	cooltool, err := build.NewBuild("cooltool", []string{"gcc", "boost/1.74"})
	if err != nil {
		t.Fatal(err)
	}

	sections := Sections([]build.Build{boost, cooltool})
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	want := [][]string{
		{"module purge", "module load gcc", "build boost 1.74"},
		{"module purge", "module load gcc", "module load boost/1.74", "build cooltool"},
	}
	for i, section := range sections {
		if !reflect.DeepEqual(section.Commands, want[i]) {
			t.Fatalf("section %d commands = %v, want %v", i, section.Commands, want[i])
		}
	}
	flat := Flatten(sections)
	if len(flat) != 7 {
		t.Fatalf("expected 7 flattened commands, got %d: %v", len(flat), flat)
	}
}

func TestSectionsEmptyPlan(t *testing.T) {
	if got := Sections(nil); len(got) != 0 {
		t.Fatalf("expected no sections for an empty plan, got %v", got)
	}
}
