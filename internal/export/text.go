package export

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const logisticalBadge = " [LOGISTICAL BENEFIT]"

// Text renders the roster as plain text. Numbers are formatted for tag.
// Units are grouped by role in order of first appearance, with logistical
// units listed last within their role.
func Text(roster *Roster, tag language.Tag) string {
	p := message.NewPrinter(tag)
	var b strings.Builder

	b.WriteString(roster.Name)
	b.WriteString("\n")
	p.Fprintf(&b, "%s - %s (%s)\n", roster.Army, roster.Faction, roster.Allegiance)
	if roster.PointsLimit > 0 {
		p.Fprintf(&b, "Total Points: %d / %d pts\n", roster.TotalPoints, roster.PointsLimit)
	} else {
		p.Fprintf(&b, "Total Points: %d pts\n", roster.TotalPoints)
	}
	if roster.OverLimit {
		b.WriteString("Over the points limit\n")
	}
	for _, w := range roster.Warnings {
		b.WriteString("! ")
		b.WriteString(w)
		b.WriteString("\n")
	}

	for _, det := range roster.Detachments {
		b.WriteString("\n")
		p.Fprintf(&b, "%s (%d pts)\n", det.Name, det.Points)
		b.WriteString(strings.Repeat("-", 40))
		b.WriteString("\n")

		if len(det.Units) == 0 {
			b.WriteString("No units\n")
			continue
		}

		for _, group := range groupByRole(det.Units) {
			b.WriteString(strings.ToUpper(group.role))
			b.WriteString("\n")
			for _, unit := range group.units {
				writeUnit(&b, p, unit)
			}
		}
	}

	return b.String()
}

func writeUnit(b *strings.Builder, p *message.Printer, unit Unit) {
	name := unit.Name
	if unit.Logistical {
		name += logisticalBadge
	}
	p.Fprintf(b, "  %s  %d pts\n", name, unit.Points)

	if len(unit.SpecialRules) > 0 {
		b.WriteString("    Special Rules: ")
		b.WriteString(strings.Join(unit.SpecialRules, ", "))
		b.WriteString("\n")
	}
	if len(unit.Wargear) > 0 {
		b.WriteString("    Wargear: ")
		b.WriteString(strings.Join(unit.Wargear, ", "))
		b.WriteString("\n")
	}
	if unit.PrimeBenefit != nil {
		b.WriteString("    Prime: ")
		b.WriteString(unit.PrimeBenefit.Name)
		b.WriteString("\n")
		if unit.PrimeBenefit.Description != "" {
			b.WriteString("      ")
			b.WriteString(unit.PrimeBenefit.Description)
			b.WriteString("\n")
		}
	}
}

type roleGroup struct {
	role  string
	units []Unit
}

func groupByRole(units []Unit) []roleGroup {
	var groups []roleGroup
	index := make(map[string]int)
	for _, unit := range units {
		i, ok := index[unit.Role]
		if !ok {
			i = len(groups)
			index[unit.Role] = i
			groups = append(groups, roleGroup{role: unit.Role})
		}
		groups[i].units = append(groups[i].units, unit)
	}

	for i := range groups {
		regular := make([]Unit, 0, len(groups[i].units))
		var logistical []Unit
		for _, unit := range groups[i].units {
			if unit.Logistical {
				logistical = append(logistical, unit)
				continue
			}
			regular = append(regular, unit)
		}
		groups[i].units = append(regular, logistical...)
	}

	return groups
}
