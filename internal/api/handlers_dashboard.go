package api

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/dgallion1/evaldash/internal/report"
	"github.com/dgallion1/evaldash/internal/source"
	"github.com/dgallion1/evaldash/internal/viz"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

// The confusion-matrix panel is a fixed illustrative placeholder, not
// derived from parsed data.
var (
	confusionLabels = []string{"Class 0", "Class 1"}
	confusionCells  = [][]int{{1, 0}, {0, 1}}
)

type sectionView struct {
	Name string
	Body string
}

type dashboardData struct {
	Title    string
	Status   source.Status
	Message  string
	LoadedAt time.Time

	HasClassification bool
	Classification    string

	HasDistribution bool
	Distribution    []viz.Bar

	Sections []sectionView

	ConfusionLabels []string
	ConfusionRows   [][]int
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	snap := s.src.Current()

	data := dashboardData{
		Title:           s.cfg.Title,
		Status:          snap.Status,
		Message:         snap.Message,
		LoadedAt:        snap.LoadedAt,
		Distribution:    viz.DistributionBars(snap.Report),
		ConfusionLabels: confusionLabels,
		ConfusionRows:   confusionCells,
	}
	data.HasDistribution = len(data.Distribution) > 0
	if body, ok := snap.Report.Sections[report.SectionClassificationReport]; ok {
		data.HasClassification = true
		data.Classification = body
	}
	data.Sections = extraSections(snap.Report)

	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, data); err != nil {
		s.log.Error("dashboard render failed", "error", err)
		http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleDistributionChart(w http.ResponseWriter, r *http.Request) {
	snap := s.src.Current()

	var buf bytes.Buffer
	err := viz.RenderDistributionPNG(&buf, snap.Report, s.cfg.ChartWidth, s.cfg.ChartHeight)
	if errors.Is(err, viz.ErrNoDistribution) {
		jsonError(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		s.log.Error("chart render failed", "error", err)
		jsonError(w, "failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

// extraSections returns every section except the classification report,
// sorted by name, with display-friendly titles.
func extraSections(rep report.Report) []sectionView {
	names := make([]string, 0, len(rep.Sections))
	for name := range rep.Sections {
		if name == report.SectionClassificationReport {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	views := make([]sectionView, 0, len(names))
	for _, name := range names {
		views = append(views, sectionView{
			Name: titleWords(name),
			Body: rep.Sections[name],
		})
	}
	return views
}

func titleWords(name string) string {
	words := strings.Split(name, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
