package build

import "testing"

func TestNewBuildKeepsDependencyOrder(t *testing.T) {
	b, err := NewBuild("cooltool", []string{"gcc", "boost", "cmake/3.20"})
	if err != nil {
		t.Fatalf("NewBuild returned error: %v", err)
	}
	deps := b.Dependencies()
	want := []string{"gcc/*/default", "boost/*/default", "cmake/3.20/default"}
	if len(deps) != len(want) {
		t.Fatalf("expected %d dependencies, got %d", len(want), len(deps))
	}
	for i, dep := range deps {
		if dep.String() != want[i] {
			t.Fatalf("dependency %d = %s, want %s", i, dep, want[i])
		}
	}
}

func TestNewBuildRejectsBadDependency(t *testing.T) {
	if _, err := NewBuild("cooltool", []string{"gcc", ""}); err == nil {
		t.Fatal("expected error for empty dependency spec")
	}
}

func TestBuildString(t *testing.T) {
	b, err := NewBuild("bar", []string{"foo", "baz"})
	if err != nil {
		t.Fatal(err)
	}
	want := "bar/*/default(foo/*/default; baz/*/default)"
	if got := b.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestDeploymentContains(t *testing.T) {
	foo, _ := NewBuild("foo", nil)
	bar, _ := NewBuild("bar", []string{"foo", "baz"})
	d := NewDeployment([]Build{foo, bar})

	if !d.Contains(foo.Package()) {
		t.Fatal("deployment should contain foo")
	}
	if !d.Contains(bar.Package()) {
		t.Fatal("deployment should contain bar")
	}
	baz, _ := ParsePackage("baz")
	if d.Contains(baz) {
		t.Fatal("baz is only a dependency, not a declared build")
	}
}

func TestDeploymentBuildsAreCopies(t *testing.T) {
	foo, _ := NewBuild("foo", nil)
	var d Deployment
	d.Append(foo)

	builds := d.Builds()
	other, _ := NewBuild("other", nil)
	builds[0] = other
	if !d.Contains(foo.Package()) {
		t.Fatal("mutating the returned slice must not change the deployment")
	}
}
