package content

import (
	"fmt"
	"slices"
)

// Category is the single classification every post carries.
type Category string

const (
	CategoryCloud      Category = "cloud"
	CategoryKubernetes Category = "kubernetes"
	CategoryVMware     Category = "vmware"
	CategoryAutomation Category = "automation"
	CategoryHomelab    Category = "homelab"
	CategoryCareer     Category = "career"
	CategoryApps       Category = "apps"
)

// DefaultCategory applies when front matter names none.
const DefaultCategory = CategoryAutomation

var categories = []Category{
	CategoryCloud,
	CategoryKubernetes,
	CategoryVMware,
	CategoryAutomation,
	CategoryHomelab,
	CategoryCareer,
	CategoryApps,
}

// Tag is a label from the fixed tag vocabulary.
type Tag string

const (
	TagPython      Tag = "python"
	TagAnsible     Tag = "ansible"
	TagTerraform   Tag = "terraform"
	TagPowerShell  Tag = "powershell"
	TagDocker      Tag = "docker"
	TagNSX         Tag = "nsx"
	TagAWS         Tag = "aws"
	TagAzure       Tag = "azure"
	TagKubernetes  Tag = "kubernetes"
	TagRaspberryPi Tag = "raspberry-pi"
	TagVSphere     Tag = "vsphere"
	TagTanzu       Tag = "tanzu"
	TagSwift       Tag = "swift"
)

var tags = []Tag{
	TagPython,
	TagAnsible,
	TagTerraform,
	TagPowerShell,
	TagDocker,
	TagNSX,
	TagAWS,
	TagAzure,
	TagKubernetes,
	TagRaspberryPi,
	TagVSphere,
	TagTanzu,
	TagSwift,
}

// Categories returns the category vocabulary in navigation order.
func Categories() []Category { return slices.Clone(categories) }

// Tags returns the tag vocabulary.
func Tags() []Tag { return slices.Clone(tags) }

// IsValidCategory reports whether s is exactly one of the categories.
func IsValidCategory(s string) bool {
	return slices.Contains(categories, Category(s))
}

// IsValidTag reports whether s is exactly one of the tags. Matching is
// case-sensitive and whitespace is not trimmed.
func IsValidTag(s string) bool {
	return slices.Contains(tags, Tag(s))
}

// ParseCategory converts s to a Category.
func ParseCategory(s string) (Category, error) {
	if !IsValidCategory(s) {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return Category(s), nil
}

// ParseTag converts s to a Tag.
func ParseTag(s string) (Tag, error) {
	if !IsValidTag(s) {
		return "", fmt.Errorf("unknown tag %q", s)
	}
	return Tag(s), nil
}

func (c Category) String() string { return string(c) }

func (t Tag) String() string { return string(t) }
