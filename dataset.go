package wrapped

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed data/default.toml
var defaultDatasetTOML []byte

// Theme is the palette slides draw with.
type Theme struct {
	Background Color `toml:"background" yaml:"background" json:"background"`
	Text       Color `toml:"text" yaml:"text" json:"text"`
	Primary    Color `toml:"primary" yaml:"primary" json:"primary"`
	Secondary  Color `toml:"secondary" yaml:"secondary" json:"secondary"`
	Accent     Color `toml:"accent" yaml:"accent" json:"accent"`
	Muted      Color `toml:"muted" yaml:"muted" json:"muted"`
	Purple     Color `toml:"purple" yaml:"purple" json:"purple"`
	Yellow     Color `toml:"yellow" yaml:"yellow" json:"yellow"`
	Danger     Color `toml:"danger" yaml:"danger" json:"danger"`
}

// Copy holds the prose of the intro, the outro and every slide heading.
type Copy struct {
	Name          string `toml:"name" yaml:"name" json:"name"`
	Year          int    `toml:"year" yaml:"year" json:"year"`
	Tagline       string `toml:"tagline" yaml:"tagline" json:"tagline"`
	Hint          string `toml:"hint" yaml:"hint" json:"hint"`
	Time          string `toml:"time" yaml:"time" json:"time"`
	Labor         string `toml:"labor" yaml:"labor" json:"labor"`
	LaborUnit     string `toml:"labor_unit" yaml:"labor_unit" json:"labor_unit"`
	Funnel        string `toml:"funnel" yaml:"funnel" json:"funnel"`
	Classes       string `toml:"classes" yaml:"classes" json:"classes"`
	Travel        string `toml:"travel" yaml:"travel" json:"travel"`
	FlightsLabel  string `toml:"flights_label" yaml:"flights_label" json:"flights_label"`
	CitiesLabel   string `toml:"cities_label" yaml:"cities_label" json:"cities_label"`
	TripsLabel    string `toml:"trips_label" yaml:"trips_label" json:"trips_label"`
	Photos        string `toml:"photos" yaml:"photos" json:"photos"`
	Music         string `toml:"music" yaml:"music" json:"music"`
	Therapy       string `toml:"therapy" yaml:"therapy" json:"therapy"`
	Code          string `toml:"code" yaml:"code" json:"code"`
	Tokens        string `toml:"tokens" yaml:"tokens" json:"tokens"`
	TokensBlurb   string `toml:"tokens_blurb" yaml:"tokens_blurb" json:"tokens_blurb"`
	Conversations string `toml:"conversations" yaml:"conversations" json:"conversations"`
	Gacha         string `toml:"gacha" yaml:"gacha" json:"gacha"`
	GachaCaption  string `toml:"gacha_caption" yaml:"gacha_caption" json:"gacha_caption"`
	Growth        string `toml:"growth" yaml:"growth" json:"growth"`
	Radar         string `toml:"radar" yaml:"radar" json:"radar"`
	RadarSubtitle string `toml:"radar_subtitle" yaml:"radar_subtitle" json:"radar_subtitle"`
	Farewell      string `toml:"farewell" yaml:"farewell" json:"farewell"`
	FarewellQuote string `toml:"farewell_quote" yaml:"farewell_quote" json:"farewell_quote"`
	Restart       string `toml:"restart" yaml:"restart" json:"restart"`
}

// Stat is a labeled count.
type Stat struct {
	Label string `toml:"label" yaml:"label" json:"label"`
	Value int    `toml:"value" yaml:"value" json:"value"`
	Color Color  `toml:"color" yaml:"color" json:"color"`
}

// FunnelStage is one step of the job search funnel.
type FunnelStage struct {
	Stage string `toml:"stage" yaml:"stage" json:"stage"`
	Count int    `toml:"count" yaml:"count" json:"count"`
	Color Color  `toml:"color" yaml:"color" json:"color"`
}

// Discipline is a class or activity with a secondary achievement.
type Discipline struct {
	Category string `toml:"category" yaml:"category" json:"category"`
	Count    int    `toml:"count" yaml:"count" json:"count"`
	SubValue int    `toml:"sub_value" yaml:"sub_value" json:"sub_value"`
	SubLabel string `toml:"sub_label" yaml:"sub_label" json:"sub_label"`
	Color    Color  `toml:"color" yaml:"color" json:"color"`
}

// TravelSummary aggregates the year's trips.
type TravelSummary struct {
	Trips   int `toml:"trips" yaml:"trips" json:"trips"`
	Cities  int `toml:"cities" yaml:"cities" json:"cities"`
	Flights int `toml:"flights" yaml:"flights" json:"flights"`
}

// Destination is a place and the photos taken there.
type Destination struct {
	Destination string `toml:"destination" yaml:"destination" json:"destination"`
	Photos      int    `toml:"photos" yaml:"photos" json:"photos"`
	Color       Color  `toml:"color" yaml:"color" json:"color"`
}

// BubbleSize is the size class of a conversation bubble.
type BubbleSize string

const (
	BubbleLarge  BubbleSize = "lg"
	BubbleMedium BubbleSize = "md"
	BubbleSmall  BubbleSize = "sm"
)

// Valid reports whether s is one of the known sizes.
func (s BubbleSize) Valid() bool {
	switch s {
	case BubbleLarge, BubbleMedium, BubbleSmall:
		return true
	}
	return false
}

// Diameter returns the bubble diameter in pixels for a layout unit. Unknown
// sizes get the medium diameter.
func (s BubbleSize) Diameter(unit float64) float64 {
	switch s {
	case BubbleLarge:
		return 10 * unit
	case BubbleSmall:
		return 6 * unit
	default:
		return 8 * unit
	}
}

// FontSize returns the label size matching the bubble diameter.
func (s BubbleSize) FontSize() float64 {
	switch s {
	case BubbleLarge:
		return 22
	case BubbleSmall:
		return 14
	default:
		return 18
	}
}

// Topic is a recurring conversation theme.
type Topic struct {
	Text string     `toml:"text" yaml:"text" json:"text"`
	Size BubbleSize `toml:"size" yaml:"size" json:"size"`
}

// Collection counts characters pulled in one gacha game.
type Collection struct {
	Game  string `toml:"game" yaml:"game" json:"game"`
	Chars int    `toml:"chars" yaml:"chars" json:"chars"`
	Color Color  `toml:"color" yaml:"color" json:"color"`
}

// Transformation is a before/after pair of personal traits.
type Transformation struct {
	Before string `toml:"before" yaml:"before" json:"before"`
	After  string `toml:"after" yaml:"after" json:"after"`
}

// Dataset is everything the slideshow displays. It is immutable once loaded.
type Dataset struct {
	Theme            Theme            `toml:"theme" yaml:"theme" json:"theme"`
	Copy             Copy             `toml:"copy" yaml:"copy" json:"copy"`
	TimeDistribution []Slice          `toml:"time_distribution" yaml:"time_distribution" json:"time_distribution"`
	LaborStats       []Stat           `toml:"labor_stats" yaml:"labor_stats" json:"labor_stats"`
	JobFunnel        []FunnelStage    `toml:"job_funnel" yaml:"job_funnel" json:"job_funnel"`
	Classes          []Discipline     `toml:"classes" yaml:"classes" json:"classes"`
	TravelSummary    TravelSummary    `toml:"travel_summary" yaml:"travel_summary" json:"travel_summary"`
	Travel           []Destination    `toml:"travel" yaml:"travel" json:"travel"`
	Music            []Stat           `toml:"music" yaml:"music" json:"music"`
	TherapyPlus      []Stat           `toml:"therapy_plus" yaml:"therapy_plus" json:"therapy_plus"`
	CodeStats        []Stat           `toml:"code_stats" yaml:"code_stats" json:"code_stats"`
	CursorTokens     string           `toml:"cursor_tokens" yaml:"cursor_tokens" json:"cursor_tokens"`
	Conversations    []Topic          `toml:"conversations" yaml:"conversations" json:"conversations"`
	Gacha            []Collection     `toml:"gacha" yaml:"gacha" json:"gacha"`
	Transformations  []Transformation `toml:"transformations" yaml:"transformations" json:"transformations"`
	EmotionalRadar   []Trait          `toml:"emotional_radar" yaml:"emotional_radar" json:"emotional_radar"`
}

// Format identifies a dataset encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath picks the encoding from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("wrapped: unsupported dataset extension %q (want .toml, .yaml, .yml or .json)", filepath.Ext(path))
	}
}

// LoadDataset reads a dataset file, choosing the decoder by extension.
// Unknown keys are rejected. The result is not validated; call Validate.
func LoadDataset(path string) (*Dataset, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	d, err := ParseDataset(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// ParseDataset decodes data in the given format.
func ParseDataset(data []byte, format Format) (*Dataset, error) {
	d := &Dataset{}
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), d)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOML dataset: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("unknown dataset keys: %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(d); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML dataset: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(d); err != nil {
			return nil, fmt.Errorf("failed to parse JSON dataset: %w", err)
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return nil, errors.New("failed to parse JSON dataset: unexpected content after the top-level object")
		}
	default:
		return nil, fmt.Errorf("wrapped: unknown dataset format %q", format)
	}
	return d, nil
}

// DefaultDataset returns a fresh copy of the embedded dataset.
func DefaultDataset() *Dataset {
	d, err := ParseDataset(defaultDatasetTOML, FormatTOML)
	if err != nil {
		panic("wrapped: embedded dataset is invalid: " + err.Error())
	}
	return d
}

// --- Validation ---

// ValidationError is one problem found in a dataset, located by field path.
type ValidationError struct {
	Field   string
	Problem string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Problem
}

type validator struct {
	errs []error
}

func (v *validator) fail(field, format string, args ...any) {
	v.errs = append(v.errs, &ValidationError{Field: field, Problem: fmt.Sprintf(format, args...)})
}

func (v *validator) nonEmpty(field, s string) {
	if strings.TrimSpace(s) == "" {
		v.fail(field, "must not be empty")
	}
}

func (v *validator) nonNegative(field string, n float64) {
	switch {
	case math.IsNaN(n) || math.IsInf(n, 0):
		v.fail(field, "must be a finite number, got %v", n)
	case n < 0:
		v.fail(field, "must not be negative, got %v", n)
	}
}

func (v *validator) list(field string, n int) {
	if n == 0 {
		v.fail(field, "must have at least one entry")
	}
}

// Validate checks every record the slides rely on and returns all problems
// joined, each a *ValidationError. A nil result means the dataset is usable.
func (d *Dataset) Validate() error {
	v := &validator{}

	v.list("time_distribution", len(d.TimeDistribution))
	total := 0.0
	for i, s := range d.TimeDistribution {
		f := fmt.Sprintf("time_distribution[%d]", i)
		v.nonEmpty(f+".label", s.Label)
		v.nonNegative(f+".value", s.Value)
		if finite(s.Value) {
			total += max(s.Value, 0)
		}
	}
	if len(d.TimeDistribution) > 0 && total == 0 {
		v.fail("time_distribution", "values must not all be zero")
	}

	validateStats(v, "labor_stats", d.LaborStats)
	validateStats(v, "music", d.Music)
	validateStats(v, "therapy_plus", d.TherapyPlus)
	validateStats(v, "code_stats", d.CodeStats)

	v.list("job_funnel", len(d.JobFunnel))
	for i, s := range d.JobFunnel {
		f := fmt.Sprintf("job_funnel[%d]", i)
		v.nonEmpty(f+".stage", s.Stage)
		v.nonNegative(f+".count", float64(s.Count))
	}

	v.list("classes", len(d.Classes))
	for i, c := range d.Classes {
		f := fmt.Sprintf("classes[%d]", i)
		v.nonEmpty(f+".category", c.Category)
		v.nonNegative(f+".count", float64(c.Count))
		v.nonNegative(f+".sub_value", float64(c.SubValue))
	}

	v.nonNegative("travel_summary.trips", float64(d.TravelSummary.Trips))
	v.nonNegative("travel_summary.cities", float64(d.TravelSummary.Cities))
	v.nonNegative("travel_summary.flights", float64(d.TravelSummary.Flights))

	v.list("travel", len(d.Travel))
	for i, t := range d.Travel {
		f := fmt.Sprintf("travel[%d]", i)
		v.nonEmpty(f+".destination", t.Destination)
		v.nonNegative(f+".photos", float64(t.Photos))
	}

	v.nonEmpty("cursor_tokens", d.CursorTokens)

	v.list("conversations", len(d.Conversations))
	for i, c := range d.Conversations {
		f := fmt.Sprintf("conversations[%d]", i)
		v.nonEmpty(f+".text", c.Text)
		if !c.Size.Valid() {
			v.fail(f+".size", "must be one of lg, md, sm, got %q", c.Size)
		}
	}

	v.list("gacha", len(d.Gacha))
	for i, g := range d.Gacha {
		f := fmt.Sprintf("gacha[%d]", i)
		v.nonEmpty(f+".game", g.Game)
		v.nonNegative(f+".chars", float64(g.Chars))
	}

	v.list("transformations", len(d.Transformations))
	for i, t := range d.Transformations {
		f := fmt.Sprintf("transformations[%d]", i)
		v.nonEmpty(f+".before", t.Before)
		v.nonEmpty(f+".after", t.After)
	}

	if len(d.EmotionalRadar) < 3 {
		v.fail("emotional_radar", "needs at least 3 traits, got %d", len(d.EmotionalRadar))
	}
	for i, t := range d.EmotionalRadar {
		f := fmt.Sprintf("emotional_radar[%d]", i)
		v.nonEmpty(f+".name", t.Name)
		if !(t.Score >= 0 && t.Score <= RadarMaxScore) {
			v.fail(f+".score", "must be within [0, %v], got %v", RadarMaxScore, t.Score)
		}
	}

	return errors.Join(v.errs...)
}

func validateStats(v *validator, field string, stats []Stat) {
	v.list(field, len(stats))
	for i, s := range stats {
		f := fmt.Sprintf("%s[%d]", field, i)
		v.nonEmpty(f+".label", s.Label)
		v.nonNegative(f+".value", float64(s.Value))
	}
}

// ValidationErrors unpacks the problems joined by Validate.
func ValidationErrors(err error) []*ValidationError {
	if err == nil {
		return nil
	}
	var errs []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	} else {
		errs = []error{err}
	}
	out := make([]*ValidationError, 0, len(errs))
	for _, e := range errs {
		var ve *ValidationError
		if errors.As(e, &ve) {
			out = append(out, ve)
		}
	}
	return out
}
