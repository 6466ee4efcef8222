// internal/catalog/loader.go
package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"

	"career-risk-workers/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var defaultData embed.FS

// document is the on-disk shape of the reference tables. The tables may be
// split across several YAML files; each file contributes the sections it holds.
type document struct {
	Version      string                                  `yaml:"version"`
	Questions    []Question                              `yaml:"questions"`
	Occupations  []Occupation                            `yaml:"occupations"`
	SkillRisks   map[string]models.SkillRiskEntry        `yaml:"skillRisks"`
	ReskillPaths map[string]models.ReskillRecommendation `yaml:"reskillPaths"`
	ToolKits     map[string]ToolKit                      `yaml:"toolKits"`
}

// LoadDefault builds the catalog shipped inside the binary.
func LoadDefault() (*Catalog, error) {
	sub, err := fs.Sub(defaultData, "data")
	if err != nil {
		return nil, fmt.Errorf("open embedded catalog: %w", err)
	}
	return LoadFS(sub)
}

// LoadPath loads a catalog from a single YAML file or from every *.yaml file in
// a directory. An empty path falls back to the embedded default.
func LoadPath(p string) (*Catalog, error) {
	if p == "" {
		return LoadDefault()
	}
	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("stat catalog path %s: %w", p, err)
	}
	if info.IsDir() {
		return LoadFS(os.DirFS(p))
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open catalog file %s: %w", p, err)
	}
	defer f.Close()
	return Load(f)
}

// LoadFS merges every top-level *.yaml file of fsys in lexical order.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list catalog files: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(names)

	var doc document
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read catalog file %s: %w", name, err)
		}
		if err := decodeInto(&doc, bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("decode catalog file %s: %w", path.Base(name), err)
		}
	}
	return build(doc)
}

// Load decodes a single YAML document holding every table.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	if err := decodeInto(&doc, r); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return build(doc)
}

func decodeInto(doc *document, r io.Reader) error {
	var part document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&part); err != nil && err != io.EOF {
		return err
	}

	if part.Version != "" {
		doc.Version = part.Version
	}
	doc.Questions = append(doc.Questions, part.Questions...)
	doc.Occupations = append(doc.Occupations, part.Occupations...)
	doc.SkillRisks = mergeMap(doc.SkillRisks, part.SkillRisks)
	doc.ReskillPaths = mergeMap(doc.ReskillPaths, part.ReskillPaths)
	doc.ToolKits = mergeMap(doc.ToolKits, part.ToolKits)
	return nil
}

func mergeMap[V any](dst, src map[string]V) map[string]V {
	if dst == nil {
		dst = make(map[string]V, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func build(doc document) (*Catalog, error) {
	if err := validate(doc); err != nil {
		return nil, err
	}

	c := &Catalog{
		version:         doc.Version,
		questions:       doc.Questions,
		occupations:     doc.Occupations,
		skillRisks:      doc.SkillRisks,
		reskillPaths:    doc.ReskillPaths,
		toolKits:        doc.ToolKits,
		questionIndex:   make(map[string]int, len(doc.Questions)),
		occupationIndex: make(map[string]int, len(doc.Occupations)),
	}
	if c.skillRisks == nil {
		c.skillRisks = map[string]models.SkillRiskEntry{}
	}
	if c.reskillPaths == nil {
		c.reskillPaths = map[string]models.ReskillRecommendation{}
	}
	if c.toolKits == nil {
		c.toolKits = map[string]ToolKit{}
	}
	for i, q := range c.questions {
		c.questionIndex[q.ID] = i
	}
	for i, o := range c.occupations {
		c.occupationIndex[o.ID] = i
	}
	return c, nil
}
