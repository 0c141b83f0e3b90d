package reconcile

import (
	"github.com/shopspring/decimal"
)

// fallbackName is used for unmatched lines that carry no name.
const fallbackName = "Unknown Part"

// Reconcile classifies every line against snapshot and returns the resulting plan.
// It never mutates snapshot. In real mode stock levels are tracked in a call-local
// view, so a part listed twice is deducted twice.
func Reconcile(lines []Line, snapshot Snapshot, opts Options) *Plan {
	plan := &Plan{
		BuildStatus: opts.BuildStatus(),
		BuildParts:  make([]BuildPart, 0, len(lines)),
		Report: Report{
			Success:    true,
			Simulation: opts.Simulate,
			Results:    make([]Result, 0, len(lines)),
			Alerts:     []Alert{},
		},
	}

	stock := make(map[string]int)
	report := &plan.Report

	for _, line := range lines {
		qty := line.Quantity
		if qty < 0 {
			qty = 0
		}

		part, found := snapshot.Lookup(line.PartNumber)
		if !found {
			name := line.Name
			if name == "" {
				name = fallbackName
			}
			report.Alerts = append(report.Alerts, Alert{
				Type:       AlertMissing,
				PartNumber: line.PartNumber,
				Name:       name,
				Needed:     qty,
			})
			report.Results = append(report.Results, Result{
				PartNumber: line.PartNumber,
				Name:       name,
				Needed:     qty,
				Status:     StatusMissing,
			})
			plan.BuildParts = append(plan.BuildParts, BuildPart{PartNumber: line.PartNumber, Quantity: line.Quantity, Name: line.Name})
			continue
		}

		current, seen := stock[part.PartNumber]
		if !seen {
			current = part.InStock
		}
		newStock := current - qty
		lineTotal := part.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
		plan.TotalCost = plan.TotalCost.Add(lineTotal)

		status := classify(newStock, part.MinRequired)
		switch status {
		case StatusInsufficient:
			report.Alerts = append(report.Alerts, Alert{
				Type:       AlertInsufficient,
				PartNumber: line.PartNumber,
				Name:       part.Name,
				Needed:     qty,
				Available:  current,
				Shortage:   intPtr(-newStock),
			})
		case StatusLow:
			report.Alerts = append(report.Alerts, Alert{
				Type:       AlertLow,
				PartNumber: line.PartNumber,
				Name:       part.Name,
				Needed:     qty,
				Available:  current,
				Remaining:  intPtr(newStock),
				Minimum:    intPtr(part.MinRequired),
			})
		}

		if !opts.Simulate {
			stock[part.PartNumber] = newStock
			plan.StockChanges = append(plan.StockChanges, StockChange{PartID: part.ID, PartNumber: part.PartNumber, NewStock: newStock})
			plan.SpendIncrements = append(plan.SpendIncrements, lineTotal)
		}

		report.Results = append(report.Results, Result{
			PartNumber: line.PartNumber,
			Name:       part.Name,
			Needed:     qty,
			Available:  current,
			Remaining:  intPtr(newStock),
			Status:     status,
			UnitPrice:  part.UnitPrice,
			TotalPrice: lineTotal,
		})
		plan.BuildParts = append(plan.BuildParts, BuildPart{PartNumber: line.PartNumber, Quantity: line.Quantity, Name: line.Name})
	}

	report.Summary = summarize(report.Results, report.Alerts)
	report.Summary.TotalCost = plan.TotalCost
	return plan
}

func classify(newStock, minRequired int) Status {
	switch {
	case newStock < 0:
		return StatusInsufficient
	case newStock <= minRequired:
		return StatusLow
	default:
		return StatusOK
	}
}

func summarize(results []Result, alerts []Alert) Summary {
	s := Summary{TotalParts: len(results)}
	for _, a := range alerts {
		switch a.Type {
		case AlertMissing:
			s.Missing++
		case AlertInsufficient:
			s.Insufficient++
		case AlertLow:
			s.LowStock++
		}
	}
	for _, r := range results {
		if r.Status == StatusOK {
			s.OK++
		}
	}
	return s
}

func intPtr(v int) *int {
	return &v
}
