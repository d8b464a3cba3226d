package grades

import (
	"slices"
)

// Dataset is the immutable set of records loaded for the process lifetime.
type Dataset struct {
	records     []Record
	byID        map[int]int
	years       []string
	departments []string
}

func NewDataset(records []Record) *Dataset {
	d := &Dataset{
		records: records,
		byID:    make(map[int]int, len(records)),
	}
	seenYears := map[string]bool{}
	seenDepartments := map[string]bool{}
	for i, r := range records {
		d.byID[r.ID] = i
		if !seenYears[r.Year] {
			seenYears[r.Year] = true
			d.years = append(d.years, r.Year)
		}
		if !seenDepartments[r.Department] {
			seenDepartments[r.Department] = true
			d.departments = append(d.departments, r.Department)
		}
	}
	slices.Sort(d.years)
	slices.Reverse(d.years)
	slices.Sort(d.departments)
	return d
}

// Records returns the records in dataset order. Callers must not modify the
// returned slice.
func (d *Dataset) Records() []Record {
	return d.records
}

func (d *Dataset) Len() int {
	return len(d.records)
}

func (d *Dataset) FindByID(id int) (*Record, bool) {
	i, ok := d.byID[id]
	if !ok {
		return nil, false
	}
	r := d.records[i]
	return &r, true
}

// Years returns distinct year codes, most recent first.
func (d *Dataset) Years() []string {
	return d.years
}

func (d *Dataset) Terms() []Term {
	return []Term{TermFall, TermWinter, TermSpring, TermSummer}
}

func (d *Dataset) Departments() []string {
	return d.departments
}
