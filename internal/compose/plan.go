package compose

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Slide plan entry types.
const (
	SlideTransition   = "transition"
	SlidePivotSummary = "pivot_summary"
	SlidePivotDetail  = "pivot_dbl_click"
	SlideTopCustomers = "top_customers"
	SlideShipMode     = "ship_mode_analysis"
)

// Filter restricts a pivot slide to rows where a column equals a value.
type Filter struct {
	Column string `yaml:"column"`
	Equals string `yaml:"equals"`
}

// PlanSlide is one entry of a slide plan.
type PlanSlide struct {
	Type     string  `yaml:"type"`
	Title    string  `yaml:"title"`
	Subtitle string  `yaml:"subtitle,omitempty"`
	Pivot    string  `yaml:"pivot,omitempty"`
	Filter   *Filter `yaml:"filter,omitempty"`
}

// DefaultPlan is the built-in superstore deck: summary pivots by segment,
// region, and category, the customer and ship-mode analyses, and an appendix
// of per-region and per-category detail pivots.
func DefaultPlan() []PlanSlide {
	return []PlanSlide{
		{Type: SlideTransition, Title: "Superstore Analysis", Subtitle: "a decksmith use case"},
		{Type: SlidePivotSummary, Pivot: "Segment", Title: "Segment"},
		{Type: SlidePivotSummary, Pivot: "Region", Title: "Region"},
		{Type: SlidePivotSummary, Pivot: "Category", Title: "Category"},
		{Type: SlideTopCustomers, Title: "Top Performing Customers"},
		{Type: SlideShipMode, Title: "Ship Mode Comparison"},
		{Type: SlideTransition, Title: "Appendix"},
		{Type: SlidePivotDetail, Pivot: "State", Title: "Region: East", Filter: &Filter{Column: "Region", Equals: "East"}},
		{Type: SlidePivotDetail, Pivot: "State", Title: "Region: West", Filter: &Filter{Column: "Region", Equals: "West"}},
		{Type: SlidePivotDetail, Pivot: "State", Title: "Region: South", Filter: &Filter{Column: "Region", Equals: "South"}},
		{Type: SlidePivotDetail, Pivot: "State", Title: "Region: Central", Filter: &Filter{Column: "Region", Equals: "Central"}},
		{Type: SlidePivotDetail, Pivot: "Sub-Category", Title: "Category: Furniture", Filter: &Filter{Column: "Category", Equals: "Furniture"}},
		{Type: SlidePivotDetail, Pivot: "Sub-Category", Title: "Category: Technology", Filter: &Filter{Column: "Category", Equals: "Technology"}},
		{Type: SlidePivotDetail, Pivot: "Sub-Category", Title: "Category: Office Supplies", Filter: &Filter{Column: "Category", Equals: "Office Supplies"}},
	}
}

// LoadPlan reads and validates a slide plan from a YAML file.
func LoadPlan(path string) ([]PlanSlide, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("plan file not found: %s — check that the path is correct", path)
		}
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	var plan []PlanSlide
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}
	if len(plan) == 0 {
		return nil, fmt.Errorf("plan %s contains no slides", path)
	}
	for i, s := range plan {
		if err := validatePlanSlide(s); err != nil {
			return nil, fmt.Errorf("plan %s, slide %d: %w", path, i+1, err)
		}
	}
	return plan, nil
}

func validatePlanSlide(s PlanSlide) error {
	switch s.Type {
	case SlideTransition, SlideTopCustomers, SlideShipMode:
	case SlidePivotSummary, SlidePivotDetail:
		if s.Pivot == "" {
			return fmt.Errorf("%s slides need a pivot column", s.Type)
		}
	case "":
		return fmt.Errorf("missing slide type")
	default:
		return fmt.Errorf("unknown slide type %q", s.Type)
	}
	if s.Title == "" {
		return fmt.Errorf("missing slide title")
	}
	if s.Filter != nil && (s.Filter.Column == "" || s.Filter.Equals == "") {
		return fmt.Errorf("filter needs both column and equals")
	}
	return nil
}
