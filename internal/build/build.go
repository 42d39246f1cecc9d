package build

import (
	"fmt"
	"strings"
)

// Build pairs a package with the ordered list of packages that must be loaded
// before it can be built. Builds are read-only once the configuration that
// declared them has been loaded.
type Build struct {
	pkg  Package
	deps []Package
}

// NewBuild parses a build declaration from its package spec and dependency
// spec strings. Dependency order is preserved.
func NewBuild(spec string, depSpecs []string) (Build, error) {
	pkg, err := ParsePackage(spec)
	if err != nil {
		return Build{}, err
	}
	deps := make([]Package, 0, len(depSpecs))
	for _, depSpec := range depSpecs {
		dep, err := ParsePackage(depSpec)
		if err != nil {
			return Build{}, fmt.Errorf("build %s: %w", pkg, err)
		}
		deps = append(deps, dep)
	}
	return Build{pkg: pkg, deps: deps}, nil
}

// Package returns the package this build produces.
func (b Build) Package() Package { return b.pkg }

// Dependencies returns the declared dependency packages in declaration order.
// The returned slice is a copy.
func (b Build) Dependencies() []Package {
	if len(b.deps) == 0 {
		return nil
	}
	deps := make([]Package, len(b.deps))
	copy(deps, b.deps)
	return deps
}

func (b Build) String() string {
	specs := make([]string, len(b.deps))
	for i, dep := range b.deps {
		specs[i] = dep.String()
	}
	return fmt.Sprintf("%s(%s)", b.pkg, strings.Join(specs, "; "))
}

// Deployment is an ordered collection of Builds for one target site. Order
// follows the site configuration and is the tie-breaker for everything
// downstream, so appends must happen in declaration order.
type Deployment struct {
	builds []Build
}

// NewDeployment wraps an already-ordered build list.
func NewDeployment(builds []Build) Deployment {
	return Deployment{builds: builds}
}

// Append adds a build at the end of the deployment.
func (d *Deployment) Append(b Build) {
	d.builds = append(d.builds, b)
}

// Builds returns the builds in declaration order. The returned slice is a copy.
func (d Deployment) Builds() []Build {
	if len(d.builds) == 0 {
		return nil
	}
	builds := make([]Build, len(d.builds))
	copy(builds, d.builds)
	return builds
}

// Len returns the number of declared builds.
func (d Deployment) Len() int { return len(d.builds) }

// Contains reports whether some build in the deployment produces the given
// package.
func (d Deployment) Contains(pkg Package) bool {
	for _, b := range d.builds {
		if b.pkg == pkg {
			return true
		}
	}
	return false
}
