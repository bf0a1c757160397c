// Package onet parses the tab-delimited O*NET reference files the loader
// feeds into the occupation catalog.
package onet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Scale IDs used in Skills.txt / Knowledge.txt.
const (
	scaleImportance = "IM"
	scaleLevel      = "LV"
)

// Occupation is one row of Occupation Data.txt.
type Occupation struct {
	SOCCode     string
	Title       string
	Description string
}

// Element is one skill or knowledge element for an occupation, with the
// separate IM (importance) and LV (level) rows already collapsed.
type Element struct {
	SOCCode    string
	ElementID  string
	Name       string
	Importance *float64
	Level      *float64
}

// JobZone is one row of Job Zones.txt.
type JobZone struct {
	SOCCode string
	Zone    int
}

// InterestProfile carries the six RIASEC scores for one occupation from
// Interests.txt. Dimensions the file never rates stay nil.
type InterestProfile struct {
	SOCCode string
	R       *float64
	I       *float64
	A       *float64
	S       *float64
	E       *float64
	C       *float64
}

// ReadOccupations parses Occupation Data.txt.
func ReadOccupations(r io.Reader) ([]Occupation, error) {
	rows, idx, err := readTable(r, "O*NET-SOC Code", "Title")
	if err != nil {
		return nil, err
	}

	out := make([]Occupation, 0, len(rows))
	for _, row := range rows {
		out = append(out, Occupation{
			SOCCode:     field(row, idx, "O*NET-SOC Code"),
			Title:       field(row, idx, "Title"),
			Description: field(row, idx, "Description"),
		})
	}
	return out, nil
}

// ReadElements parses Skills.txt or Knowledge.txt. The files carry one row
// per (occupation, element, scale); importance and level rows are merged
// into a single Element per (SOC code, element ID), preserving the order of
// first appearance.
func ReadElements(r io.Reader) ([]Element, error) {
	rows, idx, err := readTable(r, "O*NET-SOC Code", "Element ID", "Element Name", "Scale ID", "Data Value")
	if err != nil {
		return nil, err
	}

	type key struct{ soc, element string }
	merged := make(map[key]*Element, len(rows)/2)
	order := make([]key, 0, len(rows)/2)

	for _, row := range rows {
		value, err := strconv.ParseFloat(field(row, idx, "Data Value"), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid data value for %s/%s: %w",
				field(row, idx, "O*NET-SOC Code"), field(row, idx, "Element ID"), err)
		}

		k := key{soc: field(row, idx, "O*NET-SOC Code"), element: field(row, idx, "Element ID")}
		el, ok := merged[k]
		if !ok {
			el = &Element{SOCCode: k.soc, ElementID: k.element, Name: field(row, idx, "Element Name")}
			merged[k] = el
			order = append(order, k)
		}

		switch field(row, idx, "Scale ID") {
		case scaleImportance:
			v := value
			el.Importance = &v
		case scaleLevel:
			v := value
			el.Level = &v
		}
	}

	out := make([]Element, 0, len(order))
	for _, k := range order {
		out = append(out, *merged[k])
	}
	return out, nil
}

// ReadJobZones parses Job Zones.txt.
func ReadJobZones(r io.Reader) ([]JobZone, error) {
	rows, idx, err := readTable(r, "O*NET-SOC Code", "Job Zone")
	if err != nil {
		return nil, err
	}

	out := make([]JobZone, 0, len(rows))
	for _, row := range rows {
		zone, err := strconv.Atoi(field(row, idx, "Job Zone"))
		if err != nil {
			return nil, fmt.Errorf("invalid job zone for %s: %w", field(row, idx, "O*NET-SOC Code"), err)
		}
		out = append(out, JobZone{SOCCode: field(row, idx, "O*NET-SOC Code"), Zone: zone})
	}
	return out, nil
}

// ReadInterests parses Interests.txt, folding the per-dimension rows into
// one profile per occupation. A later row for the same dimension overwrites
// an earlier one. Profiles come back in order of first appearance.
func ReadInterests(r io.Reader) ([]InterestProfile, error) {
	rows, idx, err := readTable(r, "O*NET-SOC Code", "Element Name", "Data Value")
	if err != nil {
		return nil, err
	}

	profiles := make(map[string]*InterestProfile)
	order := make([]string, 0)

	for _, row := range rows {
		soc := field(row, idx, "O*NET-SOC Code")
		element := strings.ToLower(field(row, idx, "Element Name"))

		value, err := strconv.ParseFloat(field(row, idx, "Data Value"), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid interest value for %s: %w", soc, err)
		}

		p, ok := profiles[soc]
		if !ok {
			p = &InterestProfile{SOCCode: soc}
			profiles[soc] = p
			order = append(order, soc)
		}

		v := value
		switch {
		case strings.Contains(element, "realistic"):
			p.R = &v
		case strings.Contains(element, "investigative"):
			p.I = &v
		case strings.Contains(element, "artistic"):
			p.A = &v
		case strings.Contains(element, "social"):
			p.S = &v
		case strings.Contains(element, "enterprising"):
			p.E = &v
		case strings.Contains(element, "conventional"):
			p.C = &v
		}
	}

	out := make([]InterestProfile, 0, len(order))
	for _, soc := range order {
		out = append(out, *profiles[soc])
	}
	return out, nil
}

// readTable reads a tab-delimited O*NET file with a header row and returns
// the data rows plus a header-name index. The required columns must all be
// present.
func readTable(r io.Reader, required ...string) ([][]string, map[string]int, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, nil, fmt.Errorf("missing column %q", name)
		}
	}

	var rows [][]string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, row)
	}
	return rows, idx, nil
}

func field(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
