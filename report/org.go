package report

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/rustyeddy/tradejournal/analytics"
)

var orgFuncs = template.FuncMap{
	"money": func(x float64) string { return fmt.Sprintf("%.2f", x) },
	"pct":   func(x float64) string { return fmt.Sprintf("%.2f%%", x) },
	"rr":    func(x float64) string { return fmt.Sprintf("%.2f", x) },
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
	"stamp": stamp,
	"inc":   func(i int) int { return i + 1 },
}

var orgTmpl = template.Must(template.New("report").Funcs(orgFuncs).Parse(OrgTemplate))

type orgGroup struct {
	Title string
	Stats []analytics.GroupStat
}

type orgView struct {
	Header
	Title string
	analytics.Report
	Groups []orgGroup
}

// WriteOrg renders r as an Org-mode document.
func WriteOrg(w io.Writer, h Header, r analytics.Report) error {
	v := orgView{
		Header: h,
		Title:  h.title(),
		Report: r,
		Groups: []orgGroup{
			{"By Session", r.Sessions},
			{"By Weekday", r.Weekdays},
			{"By Setup", r.Setups},
			{"By Symbol", r.Symbols},
		},
	}
	if err := orgTmpl.Execute(w, v); err != nil {
		return fmt.Errorf("render org report: %w", err)
	}
	return nil
}

const OrgTemplate = `* REPORT: {{.Title}}
:PROPERTIES:
{{- if .Source}}
:JOURNAL:     {{.Source}}
{{- end}}
{{- if .Filter}}
:FILTER:      {{.Filter}}
{{- end}}
:TRADES:      {{.Snapshot.TotalTrades}}
:WINS:        {{.Snapshot.Wins}}
:LOSSES:      {{.Snapshot.Losses}}
:WIN_RATE:    {{printf "%.2f" .Snapshot.WinRate}}
:NET_PL:      {{money .Snapshot.NetPnL}}
:MAX_DD:      {{money .Snapshot.MaxDrawdown}}
:CONSISTENCY: {{.Snapshot.ConsistencyScore}}
:CREATED:     [{{(orTime .Generated).Format "2006-01-02 Mon 15:04"}}]
:END:

** Performance Summary
- Net P/L:          *{{money .Snapshot.NetPnL}}*
- Win Rate:         *{{pct .Snapshot.WinRate}}*
- Avg Win / Loss:   *{{money .Snapshot.AvgWin}}* / *{{money .Snapshot.AvgLoss}}*
- Profit Factor:    *{{if ne .Snapshot.ProfitFactor 0.0}}{{printf "%.2f" .Snapshot.ProfitFactor}}{{else}}n/a{{end}}*
- Expectancy:       *{{money .Snapshot.Expectancy}}* per trade, *{{money .Snapshot.ProjectedGain}}* per 100
- Avg RR:           *{{rr .Snapshot.AvgRRR}}* (planned {{rr .Snapshot.AvgPlannedRR}})
- Max Drawdown:     *{{money .Snapshot.MaxDrawdown}}* (avg {{money .Snapshot.AvgDrawdown}})
- Streaks:          *{{.Snapshot.MaxWinStreak}}* wins, *{{.Snapshot.MaxLossStreak}}* losses
- Consistency:      *{{.Snapshot.ConsistencyScore}}/100*

** Trade Distribution
| Outcome    | Count |
|------------+-------|
| Wins       | {{.Snapshot.Wins}} |
| Losses     | {{.Snapshot.Losses}} |
| Breakevens | {{.Snapshot.Breakevens}} |
| Total      | {{.Snapshot.TotalTrades}} |
{{- range .Groups}}
{{- if .Stats}}

** {{.Title}}
| Group | Trades | Win% | P/L | Avg RR |
|-------+--------+------+-----+--------|
{{- range .Stats}}
| {{.Key}} | {{.Trades}} | {{printf "%.1f" .WinRate}} | {{money .PnL}} | {{rr .AvgRR}} |
{{- end}}
{{- end}}
{{- end}}
{{- if .Equity}}

** Equity Curve
| # | Time | Cumulative |
|---+------+------------|
{{- range .Equity}}
| {{inc .Index}} | {{stamp .Time}} | {{money .Cumulative}} |
{{- end}}
{{- end}}
`
