package build

import (
	"fmt"
	"strings"
)

// DefaultVariant is assumed whenever a package spec does not name one.
const DefaultVariant = "default"

// Package identifies a single piece of software as it appears in a site
// configuration. Specs have the form "name", "name/version" or
// "name/version/variant"; a missing version acts as a wildcard and a missing
// variant defaults to "default". Packages are value types and compare by the
// full (name, version, variant) triple.
type Package struct {
	name    string
	version string // empty means wildcard
	variant string
}

// ParsePackage builds a Package from its spec string.
func ParsePackage(spec string) (Package, error) {
	parts := strings.SplitN(spec, "/", 3)
	pkg := Package{variant: DefaultVariant}
	pkg.name = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		pkg.version = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		pkg.variant = strings.TrimSpace(parts[2])
	}
	if pkg.name == "" {
		return Package{}, fmt.Errorf("build: package name is required in %q", spec)
	}
	if pkg.variant == "" {
		pkg.variant = DefaultVariant
	}
	return pkg, nil
}

// Name returns the plain package name, without version or variant.
func (p Package) Name() string { return p.name }

// Version returns the version specifier, or the empty string for a wildcard.
func (p Package) Version() string { return p.version }

// Variant returns the build variant.
func (p Package) Variant() string { return p.variant }

// Wildcard reports whether the package matches any version.
func (p Package) Wildcard() bool { return p.version == "" }

// String renders the canonical name/version/variant form, with "*" standing
// in for a wildcard version.
func (p Package) String() string {
	version := p.version
	if version == "" {
		version = "*"
	}
	return fmt.Sprintf("%s/%s/%s", p.name, version, p.variant)
}

// LoadCommand returns the shell command that makes this package available
// prior to a build.
func (p Package) LoadCommand() string {
	switch {
	case p.version == "":
		return fmt.Sprintf("module load %s", p.name)
	case p.variant != DefaultVariant:
		return fmt.Sprintf("module load %s/%s/%s", p.name, p.version, p.variant)
	default:
		return fmt.Sprintf("module load %s/%s", p.name, p.version)
	}
}

// BuildCommand returns the shell command that hands this package to the
// external Builder tool. Module loads are not included.
func (p Package) BuildCommand() string {
	switch {
	case p.version == "":
		return fmt.Sprintf("build %s", p.name)
	case p.variant != DefaultVariant:
		return fmt.Sprintf("build %s %s %s", p.name, p.version, p.variant)
	default:
		return fmt.Sprintf("build %s %s", p.name, p.version)
	}
}
