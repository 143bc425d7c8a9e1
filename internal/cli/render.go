// Package cli renderiza ovejas, familias y predicciones en la terminal con lipgloss.
// Consume las mismas vistas formateadas que las páginas HTML.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sheep-breeding-web/internal/domain/breeding"
	"sheep-breeding-web/internal/domain/sheep"
)

var (
	colorAccent = lipgloss.Color("#8BC34A")
	colorMuted  = lipgloss.Color("#7A869A")
	colorWarn   = lipgloss.Color("#FFC107")
)

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	cell   lipgloss.Style
	muted  lipgloss.Style
	warn   lipgloss.Style
}

// Renderer escribe en w. Los colores se apagan solos si w no es una terminal.
type Renderer struct {
	w io.Writer
	s styles
}

func NewRenderer(w io.Writer) *Renderer {
	lr := lipgloss.NewRenderer(w)
	return &Renderer{
		w: w,
		s: styles{
			title:  lr.NewStyle().Bold(true).Foreground(colorAccent),
			header: lr.NewStyle().Bold(true).Underline(true),
			label:  lr.NewStyle().Width(10),
			cell:   lr.NewStyle().Width(9).Align(lipgloss.Right),
			muted:  lr.NewStyle().Foreground(colorMuted),
			warn:   lr.NewStyle().Foreground(colorWarn),
		},
	}
}

// SheepList imprime "id  nombre" por línea.
func (r *Renderer) SheepList(items []sheep.Sheep) {
	r.line(r.s.title.Render("Sheep List"))
	if len(items) == 0 {
		r.line(r.s.muted.Render("no sheep registered"))
		return
	}
	for _, s := range items {
		name := sheep.DisplayName(s.Name)
		if s.Name == nil || *s.Name == "" {
			name = r.s.muted.Render(name)
		}
		r.line(fmt.Sprintf("%s %s", r.s.label.Render(strconv.Itoa(s.ID)), name))
	}
}

func (r *Renderer) Sheep(v sheep.SheepView) {
	r.line(r.s.title.Render(fmt.Sprintf("#%d %s", v.ID, v.Name)))
	r.line("Parent relationship: " + v.ParentRelationship)

	for _, c := range v.Categories {
		r.line("")
		r.line(r.s.header.Render(string(c.Category)))
		r.line(fmt.Sprintf("Phenotype: %s   Hidden allele: %s", c.Phenotype, c.HiddenAllele))
		if !c.HasPrior && !c.HasInferred {
			r.line(r.s.muted.Render("no distributions"))
			continue
		}
		r.gradeHeader()
		if c.HasPrior {
			r.distribution(string(sheep.DistributionPrior), c.Prior)
		}
		if c.HasInferred {
			r.distribution(string(sheep.DistributionInferred), c.Inferred)
		}
	}
}

func (r *Renderer) Family(f sheep.Family) {
	r.line(r.s.title.Render(fmt.Sprintf("Family of #%d %s", f.Sheep.ID, sheep.DisplayName(f.Sheep.Name))))

	r.line(r.s.header.Render("Parents"))
	if f.Parents == nil {
		r.line(r.s.muted.Render(sheep.NoParentsPlaceholder))
	} else {
		r.sheepRef(f.Parents.Parent1)
		r.sheepRef(f.Parents.Parent2)
	}

	r.sheepSection("Children", f.Children)
	r.sheepSection("Partners", f.Partners)
}

func (r *Renderer) Prediction(v sheep.PredictionView) {
	r.line(r.s.title.Render(fmt.Sprintf("Predicted child of #%d x #%d", v.Sheep1ID, v.Sheep2ID)))
	if len(v.Categories) == 0 {
		r.line(r.s.muted.Render("no distributions"))
		return
	}
	r.gradeHeader()
	for _, c := range v.Categories {
		r.distribution(string(c.Category), c.Distribution)
	}
}

func (r *Renderer) Relationships(items []breeding.Relationship) {
	r.line(r.s.title.Render("Relationships"))
	if len(items) == 0 {
		r.line(r.s.muted.Render("no relationships registered"))
		return
	}
	r.line(r.s.label.Render("ID") + r.s.label.Render("Parent 1") + r.s.label.Render("Parent 2") + "Offspring")
	for _, rel := range items {
		r.line(r.s.label.Render(strconv.Itoa(rel.ID)) +
			r.s.label.Render(strconv.Itoa(rel.Parent1ID)) +
			r.s.label.Render(strconv.Itoa(rel.Parent2ID)) +
			strconv.Itoa(rel.Offspring()))
	}
}

func (r *Renderer) gradeHeader() {
	var b strings.Builder
	b.WriteString(r.s.label.Render(""))
	for _, g := range sheep.Grades {
		b.WriteString(r.s.cell.Render(string(g)))
	}
	b.WriteString(r.s.cell.Render("Σ"))
	r.line(b.String())
}

func (r *Renderer) distribution(label string, row sheep.DistributionRow) {
	var b strings.Builder
	b.WriteString(r.s.label.Render(label))
	for _, c := range row.Cells {
		b.WriteString(r.s.cell.Render(c.Percent))
	}
	total := r.s.cell.Render(row.Total)
	if !row.Normalized {
		total = r.s.warn.Render(total)
	}
	b.WriteString(total)
	r.line(b.String())
}

func (r *Renderer) sheepSection(title string, items []sheep.Sheep) {
	r.line(r.s.header.Render(title))
	if len(items) == 0 {
		r.line(r.s.muted.Render("none"))
		return
	}
	for _, s := range items {
		r.sheepRef(s)
	}
}

func (r *Renderer) sheepRef(s sheep.Sheep) {
	r.line(fmt.Sprintf("  #%d %s", s.ID, sheep.DisplayName(s.Name)))
}

func (r *Renderer) line(s string) {
	_, _ = fmt.Fprintln(r.w, s)
}
