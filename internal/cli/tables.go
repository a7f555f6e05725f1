package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aretw0/inkwell/pkg/domain"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// WriteTransitions prints every transition of def as a table, marking the
// current value of each region from snap.
func WriteTransitions(w io.Writer, def domain.Definition, snap domain.Snapshot) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Region", "State", "Command", "Target", "Actions"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, r := range def.Regions {
		for _, s := range r.States {
			state := string(s.Value)
			if snap.Matches(r.ID, s.Value) {
				state = "*" + state
			}
			if s.Value == r.Initial {
				state += " (initial)"
			}
			for _, t := range s.On {
				table.Append([]string{
					string(r.ID),
					state,
					string(t.Event),
					string(t.Target),
					strings.Join(t.Actions, ", "),
				})
			}
		}
	}
	table.Render()
}

// WriteSnapshot prints the value of every region in definition order.
func WriteSnapshot(w io.Writer, def domain.Definition, snap domain.Snapshot) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Region", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	for _, r := range def.Regions {
		table.Append([]string{string(r.ID), string(snap[r.ID])})
	}
	table.Render()
}

// WriteMetrics gathers g and prints one row per series.
func WriteMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Labels", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			table.Append([]string{mf.GetName(), formatLabels(m.GetLabel()), formatValue(mf.GetType(), m)})
		}
	}
	table.Render()
	return nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%s", p.GetName(), p.GetValue()))
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}

func formatValue(typ dto.MetricType, m *dto.Metric) string {
	switch typ {
	case dto.MetricType_COUNTER:
		return fmt.Sprintf("%g", m.GetCounter().GetValue())
	case dto.MetricType_GAUGE:
		return fmt.Sprintf("%g", m.GetGauge().GetValue())
	case dto.MetricType_HISTOGRAM:
		h := m.GetHistogram()
		return fmt.Sprintf("n=%d sum=%.6fs", h.GetSampleCount(), h.GetSampleSum())
	}
	return "-"
}
