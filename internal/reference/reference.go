// Package reference holds the static state and department tables offered by
// the creation form.
package reference

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/Artexxx/HR-Employees/internal/dto"
)

//go:embed data/states.json data/departments.json
var files embed.FS

type Tables struct {
	States      []dto.State
	Departments []dto.Department

	stateNames  map[string]string
	departments map[string]struct{}
}

func Load() (*Tables, error) {
	var t Tables

	if err := readJSON("data/states.json", &t.States); err != nil {
		return nil, err
	}
	if err := readJSON("data/departments.json", &t.Departments); err != nil {
		return nil, err
	}

	t.stateNames = make(map[string]string, len(t.States))
	for _, s := range t.States {
		t.stateNames[s.Abbreviation] = s.Name
	}

	t.departments = make(map[string]struct{}, len(t.Departments))
	for _, d := range t.Departments {
		t.departments[d.Name] = struct{}{}
	}

	return &t, nil
}

// MustLoad паникует, если встроенные справочники повреждены.
func MustLoad() *Tables {
	t, err := Load()
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Tables) HasState(code string) bool {
	_, ok := t.stateNames[code]
	return ok
}

func (t *Tables) StateName(code string) string {
	return t.stateNames[code]
}

func (t *Tables) HasDepartment(name string) bool {
	_, ok := t.departments[name]
	return ok
}

func readJSON(name string, out any) error {
	data, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("files.ReadFile %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("json.Unmarshal %s: %w", name, err)
	}
	return nil
}

func (t *Tables) StateCodes() []string {
	out := make([]string, 0, len(t.States))
	for _, s := range t.States {
		out = append(out, s.Abbreviation)
	}
	return out
}

func (t *Tables) DepartmentNames() []string {
	out := make([]string, 0, len(t.Departments))
	for _, d := range t.Departments {
		out = append(out, d.Name)
	}
	return out
}
